//go:generate mockery --name ExerciseRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_workout_tracker/internal/middleware"
	"go_workout_tracker/internal/model"

	"gorm.io/gorm"
)

type ExerciseRepository interface {
	FindByProgramID(ctx context.Context, db *gorm.DB, programID int64) ([]model.Exercise, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*model.Exercise, error)
	Create(ctx context.Context, db *gorm.DB, exercise *model.Exercise) error
	Update(ctx context.Context, db *gorm.DB, id int64, updates map[string]interface{}) (*model.Exercise, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}

type gormExerciseRepository struct{}

func NewGormExerciseRepository() ExerciseRepository {
	return &gormExerciseRepository{}
}

// FindByProgramID returns the program's exercises ordered by order_index, then id.
func (r *gormExerciseRepository) FindByProgramID(ctx context.Context, db *gorm.DB, programID int64) ([]model.Exercise, error) {
	logger := middleware.GetLogger(ctx)
	exercises := []model.Exercise{}
	result := db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("order_index ASC").
		Order("id ASC").
		Find(&exercises)
	if result.Error != nil {
		logger.Error("Error listing exercises in DB", "error", result.Error, "program_id", programID)
		return nil, fmt.Errorf("gormExerciseRepository.FindByProgramID: %w", result.Error)
	}
	return exercises, nil
}

func (r *gormExerciseRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*model.Exercise, error) {
	logger := middleware.GetLogger(ctx)
	var exercise model.Exercise
	result := db.WithContext(ctx).Where("id = ?", id).First(&exercise)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding exercise by ID in DB", "error", result.Error, "exercise_id", id)
		return nil, fmt.Errorf("gormExerciseRepository.FindByID: %w", result.Error)
	}
	return &exercise, nil
}

func (r *gormExerciseRepository) Create(ctx context.Context, db *gorm.DB, exercise *model.Exercise) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(exercise)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			logger.Warn("Exercise references a missing program", "program_id", exercise.ProgramID, "error", result.Error)
			return fmt.Errorf("gormExerciseRepository.Create: program %d does not exist: %w", exercise.ProgramID, model.ErrForeignKeyViolation)
		}
		logger.Error("Error creating exercise in DB", "error", result.Error, "program_id", exercise.ProgramID, "name", exercise.Name)
		return fmt.Errorf("gormExerciseRepository.Create: %w", result.Error)
	}
	return nil
}

// Update overwrites the given columns and reads the row back.
// model.ErrNotFound is returned when no row has the id.
func (r *gormExerciseRepository) Update(ctx context.Context, db *gorm.DB, id int64, updates map[string]interface{}) (*model.Exercise, error) {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(&model.Exercise{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating exercise in DB", "error", result.Error, "exercise_id", id)
		return nil, fmt.Errorf("gormExerciseRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, model.ErrNotFound
	}
	return r.FindByID(ctx, db, id)
}

// Delete removes the exercise. A missing id is not an error.
func (r *gormExerciseRepository) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Exercise{})
	if result.Error != nil {
		logger.Error("Error deleting exercise in DB", "error", result.Error, "exercise_id", id)
		return fmt.Errorf("gormExerciseRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Debug("Delete matched no exercise", "exercise_id", id)
	}
	return nil
}
