// internal/model/program.go
package model

import "time"

// WorkoutProgram is a named collection of exercises.
type WorkoutProgram struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

func (WorkoutProgram) TableName() string {
	return "workout_programs"
}

// ProgramDetail is a program together with its exercises in display order.
type ProgramDetail struct {
	WorkoutProgram
	Exercises []Exercise `json:"exercises"`
}

// CreateProgramRequest is the body of POST /programs.
type CreateProgramRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// UpdateProgramRequest is the body of PUT /programs/{id}. Every field is
// replaced, so an omitted description is stored as "".
type UpdateProgramRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}
