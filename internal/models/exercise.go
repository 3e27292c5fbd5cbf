package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise represents an exercise library entry (MongoDB).
type Exercise struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	MuscleGroup  string             `json:"muscle_group" bson:"muscle_group"`
	Equipment    string             `json:"equipment" bson:"equipment"`
	Difficulty   string             `json:"difficulty" bson:"difficulty"`
	Instructions []string           `json:"instructions" bson:"instructions"`
	VideoURL     string             `json:"video_url,omitempty" bson:"video_url,omitempty"`
	ImageURL     string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

type CreateExerciseRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=100"`
	MuscleGroup  string   `json:"muscle_group" validate:"required,min=2,max=50"`
	Equipment    string   `json:"equipment" validate:"max=50"`
	Difficulty   string   `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Instructions []string `json:"instructions" validate:"dive,max=500"`
	VideoURL     string   `json:"video_url" validate:"omitempty,url"`
	ImageURL     string   `json:"image_url" validate:"omitempty,url"`
}

type UpdateExerciseRequest struct {
	Name         string   `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	MuscleGroup  string   `json:"muscle_group,omitempty" validate:"omitempty,min=2,max=50"`
	Equipment    string   `json:"equipment,omitempty" validate:"omitempty,max=50"`
	Difficulty   string   `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Instructions []string `json:"instructions,omitempty" validate:"omitempty,dive,max=500"`
	VideoURL     string   `json:"video_url,omitempty" validate:"omitempty,url"`
	ImageURL     string   `json:"image_url,omitempty" validate:"omitempty,url"`
}
