package notifications

import (
	"context"
	"log"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/AnjalSotang/FYP-sub002/internal/models"
	"github.com/AnjalSotang/FYP-sub002/internal/repositories"
	"github.com/AnjalSotang/FYP-sub002/internal/ws"
)

// RelatedRef points a notification back at the entity that caused it.
// Informational only, not an ownership relation.
type RelatedRef struct {
	ID   uint
	Type string
}

// Service exposes the notification operations consumed by handlers, the
// scheduler and the inbox. The store is the source of truth; the websocket
// and FCM pushes are low-latency hints layered on top of it.
type Service interface {
	List(userID uint, page, limit int) ([]models.Notification, int64, error)
	UnreadCount(userID uint) (int64, error)
	MarkRead(notificationID uint) error
	MarkAllRead(userID uint) error
	DeleteAll(userID uint) error
	Notify(ctx context.Context, userID uint, eventType string, data EventData, related *RelatedRef) (*models.Notification, error)
}

type service struct {
	notifications repositories.NotificationRepository
	deviceTokens  repositories.DeviceTokenRepository
	hub           *ws.Hub
	fcm           *messaging.Client // nil when Firebase is not configured
}

// NewService creates the notification service. fcm may be nil; device push is
// then skipped.
func NewService(
	notificationRepo repositories.NotificationRepository,
	deviceTokenRepo repositories.DeviceTokenRepository,
	hub *ws.Hub,
	fcm *messaging.Client,
) Service {
	return &service{
		notifications: notificationRepo,
		deviceTokens:  deviceTokenRepo,
		hub:           hub,
		fcm:           fcm,
	}
}

func (s *service) List(userID uint, page, limit int) ([]models.Notification, int64, error) {
	return s.notifications.GetByUserID(userID, page, limit)
}

func (s *service) UnreadCount(userID uint) (int64, error) {
	return s.notifications.GetUnreadCount(userID)
}

func (s *service) MarkRead(notificationID uint) error {
	return s.notifications.MarkAsRead(notificationID)
}

func (s *service) MarkAllRead(userID uint) error {
	return s.notifications.MarkAllAsRead(userID)
}

func (s *service) DeleteAll(userID uint) error {
	return s.notifications.DeleteAll(userID)
}

// Notify generates the display text for the event, persists the notification
// and then pushes it to the recipient's live connections and registered
// devices. Push failures are logged, never surfaced: the stored row is the
// contract, the pushes are fire-and-forget.
func (s *service) Notify(ctx context.Context, userID uint, eventType string, data EventData, related *RelatedRef) (*models.Notification, error) {
	title, message := GenerateMessage(eventType, data)

	notification := &models.Notification{
		UserID:    userID,
		Type:      normalizeType(eventType),
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if related != nil {
		id := related.ID
		notification.RelatedID = &id
		notification.RelatedType = related.Type
	}

	if err := s.notifications.CreateNotification(notification); err != nil {
		return nil, err
	}

	if delivered := s.hub.Push(userID, notification); delivered > 0 {
		log.Printf("Pushed notification %d to %d connection(s) of user %d", notification.ID, delivered, userID)
	}

	s.sendDevicePush(ctx, userID, notification)

	return notification, nil
}

func normalizeType(eventType string) string {
	switch eventType {
	case models.NotificationTypeWorkoutReminder,
		models.NotificationTypeAchievement,
		models.NotificationTypeNewUser,
		models.NotificationTypeSystemStats,
		models.NotificationTypeWorkoutAdded:
		return eventType
	default:
		return models.NotificationTypeSystem
	}
}

// sendDevicePush forwards the notification to the user's registered FCM
// tokens. Tokens FCM reports as unregistered are pruned.
func (s *service) sendDevicePush(ctx context.Context, userID uint, notification *models.Notification) {
	if s.fcm == nil {
		return
	}

	tokens, err := s.deviceTokens.GetTokensByUserID(userID)
	if err != nil {
		log.Printf("Failed to load device tokens for user %d: %v", userID, err)
		return
	}

	for _, token := range tokens {
		msg := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: notification.Title,
				Body:  notification.Message,
			},
			Data: map[string]string{
				"type": notification.Type,
			},
		}
		if _, err := s.fcm.Send(ctx, msg); err != nil {
			if messaging.IsUnregistered(err) {
				if delErr := s.deviceTokens.DeleteToken(token); delErr != nil {
					log.Printf("Failed to prune stale device token: %v", delErr)
				}
				continue
			}
			log.Printf("Failed to send FCM push to user %d: %v", userID, err)
		}
	}
}
