package models

import "time"

// Schedule statuses.
const (
	ScheduleStatusScheduled = "scheduled"
	ScheduleStatusCompleted = "completed"
	ScheduleStatusMissed    = "missed"
)

// WorkoutSchedule represents a workout planned for a specific day (PostgreSQL).
type WorkoutSchedule struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        uint       `json:"user_id" gorm:"index"`
	WorkoutID     uint       `json:"workout_id" gorm:"index"`
	ScheduledDate time.Time  `json:"scheduled_date" gorm:"index"`
	ScheduledTime string     `json:"scheduled_time" gorm:"size:5"` // "15:04"
	Status        string     `json:"status" gorm:"size:20;default:scheduled;index"`
	ReminderSent  bool       `json:"reminder_sent" gorm:"default:false"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`

	Workout Workout `json:"workout,omitempty" gorm:"foreignKey:WorkoutID"`
}

type CreateScheduleRequest struct {
	WorkoutID     uint   `json:"workout_id" validate:"required"`
	ScheduledDate string `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	ScheduledTime string `json:"scheduled_time" validate:"required,datetime=15:04"`
}
