package models

import "time"

// Measurement represents a body measurement log entry (PostgreSQL).
type Measurement struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index"`
	WeightKg   float64   `json:"weight_kg"`
	BodyFatPct float64   `json:"body_fat_pct"`
	ChestCm    float64   `json:"chest_cm"`
	WaistCm    float64   `json:"waist_cm"`
	Notes      string    `json:"notes"`
	RecordedAt time.Time `json:"recorded_at" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateMeasurementRequest struct {
	WeightKg   float64 `json:"weight_kg" validate:"required,gt=0,lt=500"`
	BodyFatPct float64 `json:"body_fat_pct" validate:"min=0,max=100"`
	ChestCm    float64 `json:"chest_cm" validate:"min=0,max=300"`
	WaistCm    float64 `json:"waist_cm" validate:"min=0,max=300"`
	Notes      string  `json:"notes" validate:"max=500"`
	RecordedAt string  `json:"recorded_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
