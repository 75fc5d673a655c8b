//go:generate mockery --name SchemaService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"log/slog"

	"go_workout_tracker/internal/repository"

	"gorm.io/gorm"
)

// SchemaService runs maintenance operations against the store.
type SchemaService interface {
	Initialize(ctx context.Context) error
	CheckConnection(ctx context.Context) (string, error)
}

type schemaService struct {
	db         *gorm.DB
	schemaRepo repository.SchemaRepository
	logger     *slog.Logger
}

func NewSchemaService(db *gorm.DB, schemaRepo repository.SchemaRepository, logger *slog.Logger) SchemaService {
	if logger == nil {
		logger = slog.Default()
	}
	return &schemaService{db: db, schemaRepo: schemaRepo, logger: logger}
}

// Initialize creates missing tables and indexes.
func (s *schemaService) Initialize(ctx context.Context) error {
	return s.schemaRepo.Bootstrap(ctx, s.db)
}

// CheckConnection pings the store and returns its version string.
func (s *schemaService) CheckConnection(ctx context.Context) (string, error) {
	sqlDB, err := s.db.DB()
	if err != nil {
		return "", err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		s.logger.ErrorContext(ctx, "Database ping failed", slog.Any("error", err))
		return "", err
	}
	return s.schemaRepo.Version(ctx, s.db)
}
