package models

import "time"

// DeviceToken stores an FCM registration token for a user's device
// (PostgreSQL). Push to these tokens is best-effort; stale tokens are
// removed when FCM reports them unregistered.
type DeviceToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Token     string    `json:"token" gorm:"uniqueIndex;size:512"`
	Platform  string    `json:"platform" gorm:"size:20"` // web, android, ios
	CreatedAt time.Time `json:"created_at"`
}

type RegisterDeviceTokenRequest struct {
	Token    string `json:"token" validate:"required,max=512"`
	Platform string `json:"platform" validate:"required,oneof=web android ios"`
}
