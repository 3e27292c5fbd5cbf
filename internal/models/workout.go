package models

import "time"

// Workout represents a workout plan (PostgreSQL). Exercise content lives in
// MongoDB; WorkoutExercise rows reference the Mongo document by hex ID.
type Workout struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100"`
	Description string    `json:"description"`
	Difficulty  string    `json:"difficulty" gorm:"size:20"` // beginner, intermediate, advanced
	DurationMin int       `json:"duration_min"`
	CreatedBy   uint      `json:"created_by" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Exercises []WorkoutExercise `json:"exercises,omitempty" gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE"`
}

// WorkoutExercise links a workout to an exercise document with per-workout
// prescription (sets/reps/rest).
type WorkoutExercise struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	WorkoutID  uint   `json:"workout_id" gorm:"index"`
	ExerciseID string `json:"exercise_id" gorm:"size:24"` // Mongo ObjectID hex
	Sets       int    `json:"sets"`
	Reps       int    `json:"reps"`
	RestSec    int    `json:"rest_sec"`
	Position   int    `json:"position"`
}

type CreateWorkoutRequest struct {
	Name        string                   `json:"name" validate:"required,min=2,max=100"`
	Description string                   `json:"description" validate:"max=2000"`
	Difficulty  string                   `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	DurationMin int                      `json:"duration_min" validate:"required,min=1,max=600"`
	Exercises   []WorkoutExerciseRequest `json:"exercises" validate:"dive"`
}

type WorkoutExerciseRequest struct {
	ExerciseID string `json:"exercise_id" validate:"required,len=24"`
	Sets       int    `json:"sets" validate:"required,min=1,max=20"`
	Reps       int    `json:"reps" validate:"required,min=1,max=100"`
	RestSec    int    `json:"rest_sec" validate:"min=0,max=600"`
}

type UpdateWorkoutRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Difficulty  string `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	DurationMin int    `json:"duration_min,omitempty" validate:"omitempty,min=1,max=600"`
}
