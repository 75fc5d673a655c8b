//go:generate mockery --name ProgramService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"log/slog"

	"go_workout_tracker/internal/model"
	"go_workout_tracker/internal/repository"

	"gorm.io/gorm"
)

type ProgramService interface {
	ListPrograms(ctx context.Context) ([]model.WorkoutProgram, error)
	GetProgram(ctx context.Context, id int64) (*model.ProgramDetail, error)
	CreateProgram(ctx context.Context, req *model.CreateProgramRequest) (*model.WorkoutProgram, error)
	UpdateProgram(ctx context.Context, id int64, req *model.UpdateProgramRequest) (*model.WorkoutProgram, error)
	DeleteProgram(ctx context.Context, id int64) error
}

type programService struct {
	db           *gorm.DB
	programRepo  repository.ProgramRepository
	exerciseRepo repository.ExerciseRepository
	logger       *slog.Logger
}

func NewProgramService(db *gorm.DB, programRepo repository.ProgramRepository, exerciseRepo repository.ExerciseRepository, logger *slog.Logger) ProgramService {
	if logger == nil {
		logger = slog.Default()
	}
	return &programService{
		db:           db,
		programRepo:  programRepo,
		exerciseRepo: exerciseRepo,
		logger:       logger,
	}
}

func (s *programService) ListPrograms(ctx context.Context) ([]model.WorkoutProgram, error) {
	return s.programRepo.FindAll(ctx, s.db)
}

// GetProgram returns the program with its exercises attached, or
// model.ErrNotFound.
func (s *programService) GetProgram(ctx context.Context, id int64) (*model.ProgramDetail, error) {
	program, err := s.programRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	exercises, err := s.exerciseRepo.FindByProgramID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []model.Exercise{}
	}
	return &model.ProgramDetail{WorkoutProgram: *program, Exercises: exercises}, nil
}

func (s *programService) CreateProgram(ctx context.Context, req *model.CreateProgramRequest) (*model.WorkoutProgram, error) {
	if req == nil || req.Name == "" {
		return nil, model.ErrInvalidInput
	}
	program := &model.WorkoutProgram{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.programRepo.Create(ctx, s.db, program); err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "Program created", slog.Int64("program_id", program.ID))
	return program, nil
}

// UpdateProgram replaces name and description. An omitted description is
// stored as "".
func (s *programService) UpdateProgram(ctx context.Context, id int64, req *model.UpdateProgramRequest) (*model.WorkoutProgram, error) {
	if req == nil || req.Name == "" {
		return nil, model.ErrInvalidInput
	}
	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
	}
	return s.programRepo.Update(ctx, s.db, id, updates)
}

func (s *programService) DeleteProgram(ctx context.Context, id int64) error {
	return s.programRepo.Delete(ctx, s.db, id)
}
