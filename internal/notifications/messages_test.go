package notifications

import (
	"strings"
	"testing"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
)

func TestGenerateMessage(t *testing.T) {
	tests := []struct {
		name       string
		eventType  string
		data       EventData
		wantTitle  string
		wantInBody string
	}{
		{
			name:      "workout reminder",
			eventType: models.NotificationTypeWorkoutReminder,
			data: EventData{
				ScheduledDate: "2025-03-15",
				ScheduledTime: "18:30",
				WorkoutName:   "Leg Day",
			},
			wantTitle:  "Workout Reminder",
			wantInBody: "Leg Day is scheduled for today at 6:30 PM.",
		},
		{
			name:       "reminder with unparseable time keeps raw value",
			eventType:  models.NotificationTypeWorkoutReminder,
			data:       EventData{WorkoutName: "Push Day", ScheduledTime: "soonish"},
			wantTitle:  "Workout Reminder",
			wantInBody: "Push Day is scheduled for today at soonish.",
		},
		{
			name:       "achievement on fire",
			eventType:  models.NotificationTypeAchievement,
			data:       EventData{Count: 12},
			wantTitle:  "Achievement Unlocked",
			wantInBody: "You're on fire!",
		},
		{
			name:       "achievement consistent",
			eventType:  models.NotificationTypeAchievement,
			data:       EventData{Count: 3},
			wantTitle:  "Achievement Unlocked",
			wantInBody: "Great job staying consistent!",
		},
		{
			name:       "achievement boundary at ten",
			eventType:  models.NotificationTypeAchievement,
			data:       EventData{Count: 10},
			wantTitle:  "Achievement Unlocked",
			wantInBody: "You're on fire!",
		},
		{
			name:       "new user",
			eventType:  models.NotificationTypeNewUser,
			data:       EventData{FirstName: "Anjal", LastName: "Sotang", Email: "anjal@example.com"},
			wantTitle:  "New User Registration",
			wantInBody: "New user registered: Anjal Sotang (anjal@example.com)",
		},
		{
			name:       "system stats",
			eventType:  models.NotificationTypeSystemStats,
			data:       EventData{CompletedCount: 17, UserCount: 9},
			wantTitle:  "Daily Workout Stats",
			wantInBody: "Today's workout stats: 17 workouts completed by 9 users.",
		},
		{
			name:       "unknown type falls back",
			eventType:  "unknown_type",
			data:       EventData{},
			wantTitle:  "Notification",
			wantInBody: "You have a new notification.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, message := GenerateMessage(tt.eventType, tt.data)
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if !strings.Contains(message, tt.wantInBody) {
				t.Errorf("message = %q, want it to contain %q", message, tt.wantInBody)
			}
		})
	}
}

func TestGenerateMessageAchievementCountInBody(t *testing.T) {
	_, message := GenerateMessage(models.NotificationTypeAchievement, EventData{Count: 12})
	if !strings.Contains(message, "12 workouts this week") {
		t.Errorf("message = %q, want the count rendered", message)
	}
}
