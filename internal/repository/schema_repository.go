//go:generate mockery --name SchemaRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"go_workout_tracker/internal/middleware"

	"gorm.io/gorm"
)

// MigrationsFS holds the Postgres migrations used by cmd/migrate. The first
// migration doubles as the bootstrap DDL.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

//go:embed schema/sqlite.sql
var sqliteSchema string

const postgresBootstrapFile = "migrations/000001_create_workout_tables.up.sql"

type SchemaRepository interface {
	Bootstrap(ctx context.Context, db *gorm.DB) error
	Version(ctx context.Context, db *gorm.DB) (string, error)
}

type gormSchemaRepository struct{}

func NewGormSchemaRepository() SchemaRepository {
	return &gormSchemaRepository{}
}

// Bootstrap creates the tables and indexes if they are missing. Every
// statement is create-if-absent, so it is safe to call repeatedly.
func (r *gormSchemaRepository) Bootstrap(ctx context.Context, db *gorm.DB) error {
	logger := middleware.GetLogger(ctx)
	ddl, err := schemaFor(db.Dialector.Name())
	if err != nil {
		return fmt.Errorf("gormSchemaRepository.Bootstrap: %w", err)
	}
	statements := splitStatements(ddl)

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range statements {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Error bootstrapping schema", "error", err, "dialect", db.Dialector.Name())
		return fmt.Errorf("gormSchemaRepository.Bootstrap: %w", err)
	}
	logger.Info("Schema bootstrapped", "dialect", db.Dialector.Name(), "statements", len(statements))
	return nil
}

func (r *gormSchemaRepository) Version(ctx context.Context, db *gorm.DB) (string, error) {
	query := "SELECT version()"
	if db.Dialector.Name() == DriverSQLite {
		query = "SELECT sqlite_version()"
	}
	var version string
	if err := db.WithContext(ctx).Raw(query).Scan(&version).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error reading database version", "error", err)
		return "", fmt.Errorf("gormSchemaRepository.Version: %w", err)
	}
	return version, nil
}

func schemaFor(dialect string) (string, error) {
	switch dialect {
	case DriverPostgres:
		b, err := MigrationsFS.ReadFile(postgresBootstrapFile)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case DriverSQLite:
		return sqliteSchema, nil
	default:
		return "", fmt.Errorf("no schema for dialect %q", dialect)
	}
}

// splitStatements splits a DDL script on semicolons. The scripts contain no
// string literals with semicolons.
func splitStatements(script string) []string {
	var out []string
	for _, part := range strings.Split(script, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
