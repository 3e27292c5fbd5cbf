package notifications

import (
	"fmt"
	"time"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
)

// DisplayNotification is a notification flattened for display, with the
// relative time string precomputed.
type DisplayNotification struct {
	ID          uint   `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	IsRead      bool   `json:"is_read"`
	RelatedID   *uint  `json:"related_id,omitempty"`
	RelatedType string `json:"related_type,omitempty"`
	TimeAgo     string `json:"time_ago"`
}

// TimeAgo renders createdAt relative to now. A zero createdAt is treated as
// malformed input and rendered as "Unknown" rather than an error.
func TimeAgo(createdAt, now time.Time) string {
	if createdAt.IsZero() {
		return "Unknown"
	}

	seconds := int(now.Sub(createdAt).Seconds())
	switch {
	case seconds < 60:
		return "Just now"
	case seconds < 3600:
		return fmt.Sprintf("%d minutes ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%d hours ago", seconds/3600)
	case seconds < 7*86400:
		return fmt.Sprintf("%d days ago", seconds/86400)
	default:
		return createdAt.Format("Jan 2, 2006")
	}
}

// FormatForDisplay converts a stored notification into its display form.
// Pure transformation; all fields other than the timestamp pass through
// unchanged.
func FormatForDisplay(n models.Notification, now time.Time) DisplayNotification {
	return DisplayNotification{
		ID:          n.ID,
		Type:        n.Type,
		Title:       n.Title,
		Message:     n.Message,
		IsRead:      n.IsRead,
		RelatedID:   n.RelatedID,
		RelatedType: n.RelatedType,
		TimeAgo:     TimeAgo(n.CreatedAt, now),
	}
}
