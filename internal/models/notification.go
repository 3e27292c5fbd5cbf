package models

import "time"

// Notification types. The set is open: anything else falls back to
// NotificationTypeSystem for icon/filter purposes.
const (
	NotificationTypeWorkoutReminder = "workout_reminder"
	NotificationTypeAchievement     = "achievement"
	NotificationTypeNewUser         = "new_user"
	NotificationTypeSystemStats     = "system_stats"
	NotificationTypeWorkoutAdded    = "workout_added"
	NotificationTypeSystem          = "system"
)

// Notification represents a user notification (PostgreSQL).
// Once created, only IsRead may change, and only from false to true.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index"`
	Type        string    `json:"type" gorm:"size:30;index"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	RelatedID   *uint     `json:"related_id,omitempty"`                  // entity that caused the notification
	RelatedType string    `json:"related_type,omitempty" gorm:"size:20"` // workout, schedule, user
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
