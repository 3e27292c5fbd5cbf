package notifications

import (
	"testing"
	"time"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		want      string
	}{
		{"just now", now.Add(-30 * time.Second), "Just now"},
		{"boundary under a minute", now.Add(-59 * time.Second), "Just now"},
		{"one minute", now.Add(-90 * time.Second), "1 minutes ago"},
		{"minutes", now.Add(-45 * time.Minute), "45 minutes ago"},
		{"hours", now.Add(-2 * time.Hour), "2 hours ago"},
		{"days", now.Add(-2 * 24 * time.Hour), "2 days ago"},
		{"boundary under a week", now.Add(-7*24*time.Hour + time.Second), "6 days ago"},
		{"absolute date after a week", now.Add(-10 * 24 * time.Hour), "Mar 5, 2025"},
		{"zero time falls back", time.Time{}, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeAgo(tt.createdAt, now); got != tt.want {
				t.Errorf("TimeAgo() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatForDisplayPassesFieldsThrough(t *testing.T) {
	now := time.Now()
	relatedID := uint(7)
	n := models.Notification{
		ID:          42,
		Type:        models.NotificationTypeAchievement,
		Title:       "Achievement Unlocked",
		Message:     "You've completed 5 workouts this week! Great job staying consistent!",
		IsRead:      true,
		RelatedID:   &relatedID,
		RelatedType: "schedule",
		CreatedAt:   now.Add(-30 * time.Second),
	}

	got := FormatForDisplay(n, now)

	if got.ID != n.ID || got.Type != n.Type || got.Title != n.Title || got.Message != n.Message {
		t.Errorf("fields did not pass through: %+v", got)
	}
	if !got.IsRead {
		t.Error("IsRead should pass through unchanged")
	}
	if got.RelatedID == nil || *got.RelatedID != relatedID || got.RelatedType != "schedule" {
		t.Errorf("related reference did not pass through: %+v", got)
	}
	if got.TimeAgo != "Just now" {
		t.Errorf("TimeAgo = %q, want %q", got.TimeAgo, "Just now")
	}
}
