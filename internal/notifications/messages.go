package notifications

import (
	"fmt"
	"time"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
)

// EventData carries the payload fields for message generation. Each event
// type reads only the fields it needs; the rest stay zero.
type EventData struct {
	// workout_reminder
	ScheduledDate string
	ScheduledTime string // "15:04"
	WorkoutName   string

	// achievement
	Count int64

	// new_user
	FirstName string
	LastName  string
	Email     string

	// system_stats
	CompletedCount int64
	UserCount      int64
}

// GenerateMessage maps an event type and its payload to a title and message.
// Unknown event types fall through to a generic default so a notification is
// never blocked from being created.
func GenerateMessage(eventType string, data EventData) (title, message string) {
	switch eventType {
	case models.NotificationTypeWorkoutReminder:
		return "Workout Reminder",
			fmt.Sprintf("%s is scheduled for today at %s.", data.WorkoutName, formatClockTime(data.ScheduledTime))

	case models.NotificationTypeAchievement:
		encouragement := "Great job staying consistent!"
		if data.Count >= 10 {
			encouragement = "You're on fire!"
		}
		return "Achievement Unlocked",
			fmt.Sprintf("You've completed %d workouts this week! %s", data.Count, encouragement)

	case models.NotificationTypeNewUser:
		return "New User Registration",
			fmt.Sprintf("New user registered: %s %s (%s)", data.FirstName, data.LastName, data.Email)

	case models.NotificationTypeSystemStats:
		return "Daily Workout Stats",
			fmt.Sprintf("Today's workout stats: %d workouts completed by %d users.", data.CompletedCount, data.UserCount)

	default:
		return "Notification", "You have a new notification."
	}
}

// formatClockTime renders a "15:04" schedule time as an hour:minute display
// string. Unparseable input falls back to the raw value rather than failing.
func formatClockTime(value string) string {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return value
	}
	return t.Format("3:04 PM")
}
