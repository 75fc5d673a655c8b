//go:generate mockery --name ExerciseService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"log/slog"

	"go_workout_tracker/internal/model"
	"go_workout_tracker/internal/repository"

	"gorm.io/gorm"
)

type ExerciseService interface {
	GetExercise(ctx context.Context, id int64) (*model.Exercise, error)
	AddExercise(ctx context.Context, req *model.CreateExerciseRequest) (*model.Exercise, error)
	UpdateExercise(ctx context.Context, id int64, req *model.UpdateExerciseRequest) (*model.Exercise, error)
	DeleteExercise(ctx context.Context, id int64) error
}

type exerciseService struct {
	db           *gorm.DB
	exerciseRepo repository.ExerciseRepository
	logger       *slog.Logger
}

func NewExerciseService(db *gorm.DB, exerciseRepo repository.ExerciseRepository, logger *slog.Logger) ExerciseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &exerciseService{
		db:           db,
		exerciseRepo: exerciseRepo,
		logger:       logger,
	}
}

func (s *exerciseService) GetExercise(ctx context.Context, id int64) (*model.Exercise, error) {
	return s.exerciseRepo.FindByID(ctx, s.db, id)
}

// AddExercise inserts an exercise into an existing program. A missing program
// surfaces as a wrapped model.ErrForeignKeyViolation from the store.
func (s *exerciseService) AddExercise(ctx context.Context, req *model.CreateExerciseRequest) (*model.Exercise, error) {
	if req == nil || req.Name == "" || req.Reps == "" || req.Sets <= 0 || req.ProgramID <= 0 {
		return nil, model.ErrInvalidInput
	}
	exercise := &model.Exercise{
		ProgramID: req.ProgramID,
		Name:      req.Name,
		Sets:      req.Sets,
		Reps:      req.Reps,
		RPE:       roundRPE(req.RPE),
		Notes:     req.Notes,
	}
	if req.OrderIndex != nil {
		exercise.OrderIndex = *req.OrderIndex
	}
	if err := s.exerciseRepo.Create(ctx, s.db, exercise); err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "Exercise added",
		slog.Int64("exercise_id", exercise.ID),
		slog.Int64("program_id", exercise.ProgramID),
	)
	return exercise, nil
}

// UpdateExercise replaces name, sets, reps, rpe and notes. order_index changes
// only when the request carries one.
func (s *exerciseService) UpdateExercise(ctx context.Context, id int64, req *model.UpdateExerciseRequest) (*model.Exercise, error) {
	if req == nil || req.Name == "" || req.Reps == "" || req.Sets <= 0 {
		return nil, model.ErrInvalidInput
	}
	var rpe interface{} // untyped nil writes NULL
	if r := roundRPE(req.RPE); r != nil {
		rpe = *r
	}
	updates := map[string]interface{}{
		"name":  req.Name,
		"sets":  req.Sets,
		"reps":  req.Reps,
		"rpe":   rpe,
		"notes": req.Notes,
	}
	if req.OrderIndex != nil {
		updates["order_index"] = *req.OrderIndex
	}
	return s.exerciseRepo.Update(ctx, s.db, id, updates)
}

func (s *exerciseService) DeleteExercise(ctx context.Context, id int64) error {
	return s.exerciseRepo.Delete(ctx, s.db, id)
}
