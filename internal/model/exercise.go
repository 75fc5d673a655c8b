// internal/model/exercise.go
package model

import "time"

// Exercise is a single movement prescription inside a program.
type Exercise struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProgramID  int64     `gorm:"not null;index" json:"programId"`
	Name       string    `gorm:"not null" json:"name"`
	Sets       int       `gorm:"not null" json:"sets"`
	Reps       string    `gorm:"not null" json:"reps"` // "12" or a range like "8-10"
	RPE        *float64  `gorm:"column:rpe" json:"rpe"`
	Notes      string    `gorm:"not null" json:"notes"`
	OrderIndex int       `gorm:"not null" json:"orderIndex"`
	CreatedAt  time.Time `gorm:"not null" json:"createdAt"`
}

func (Exercise) TableName() string {
	return "exercises"
}

// CreateExerciseRequest is the body of POST /exercises.
type CreateExerciseRequest struct {
	ProgramID  int64    `json:"programId" validate:"required,gt=0"`
	Name       string   `json:"name" validate:"required"`
	Sets       int      `json:"sets" validate:"required,gt=0"`
	Reps       string   `json:"reps" validate:"required"`
	RPE        *float64 `json:"rpe" validate:"omitempty,gte=1,lte=10,rpe_step"`
	Notes      string   `json:"notes"`
	OrderIndex *int     `json:"orderIndex"`
}

// UpdateExerciseRequest is the body of PUT /exercises/{id}.
// OrderIndex keeps its stored value when omitted; every other field is replaced.
type UpdateExerciseRequest struct {
	Name       string   `json:"name" validate:"required"`
	Sets       int      `json:"sets" validate:"required,gt=0"`
	Reps       string   `json:"reps" validate:"required"`
	RPE        *float64 `json:"rpe" validate:"omitempty,gte=1,lte=10,rpe_step"`
	Notes      string   `json:"notes"`
	OrderIndex *int     `json:"orderIndex"`
}
