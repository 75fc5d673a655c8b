//go:generate mockery --name ProgramRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_workout_tracker/internal/middleware"
	"go_workout_tracker/internal/model"

	"gorm.io/gorm"
)

type ProgramRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]model.WorkoutProgram, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*model.WorkoutProgram, error)
	Create(ctx context.Context, db *gorm.DB, program *model.WorkoutProgram) error
	Update(ctx context.Context, db *gorm.DB, id int64, updates map[string]interface{}) (*model.WorkoutProgram, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}

type gormProgramRepository struct{}

func NewGormProgramRepository() ProgramRepository {
	return &gormProgramRepository{}
}

func (r *gormProgramRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.WorkoutProgram, error) {
	logger := middleware.GetLogger(ctx)
	programs := []model.WorkoutProgram{}
	result := db.WithContext(ctx).Order("updated_at DESC").Order("id DESC").Find(&programs)
	if result.Error != nil {
		logger.Error("Error listing programs in DB", "error", result.Error)
		return nil, fmt.Errorf("gormProgramRepository.FindAll: %w", result.Error)
	}
	return programs, nil
}

func (r *gormProgramRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*model.WorkoutProgram, error) {
	logger := middleware.GetLogger(ctx)
	var program model.WorkoutProgram
	result := db.WithContext(ctx).Where("id = ?", id).First(&program)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding program by ID in DB", "error", result.Error, "program_id", id)
		return nil, fmt.Errorf("gormProgramRepository.FindByID: %w", result.Error)
	}
	return &program, nil
}

// Create inserts program. ID, CreatedAt and UpdatedAt are filled in; both
// timestamps come from the same clock reading.
func (r *gormProgramRepository) Create(ctx context.Context, db *gorm.DB, program *model.WorkoutProgram) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(program)
	if result.Error != nil {
		logger.Error("Error creating program in DB", "error", result.Error, "name", program.Name)
		return fmt.Errorf("gormProgramRepository.Create: %w", result.Error)
	}
	return nil
}

// Update overwrites the given columns and refreshes updated_at, then reads the
// row back. model.ErrNotFound is returned when no row has the id.
func (r *gormProgramRepository) Update(ctx context.Context, db *gorm.DB, id int64, updates map[string]interface{}) (*model.WorkoutProgram, error) {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(&model.WorkoutProgram{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating program in DB", "error", result.Error, "program_id", id)
		return nil, fmt.Errorf("gormProgramRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, model.ErrNotFound
	}
	return r.FindByID(ctx, db, id)
}

// Delete removes the program and, through ON DELETE CASCADE, its exercises.
// A missing id is not an error.
func (r *gormProgramRepository) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.WorkoutProgram{})
	if result.Error != nil {
		logger.Error("Error deleting program in DB", "error", result.Error, "program_id", id)
		return fmt.Errorf("gormProgramRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Debug("Delete matched no program", "program_id", id)
	}
	return nil
}
