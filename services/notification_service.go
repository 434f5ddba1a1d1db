package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BasedOctavian/LayoverApp-sub001/models"
)

// NotificationProfileStore is the profile access the dispatcher needs.
type NotificationProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	AppendNotification(ctx context.Context, userID string, notification models.Notification) error
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
	RemoveNotification(ctx context.Context, userID, notificationID string) error
	ClearNotifications(ctx context.Context, userID string) error
}

// PushSender delivers a push payload through the external gateway.
type PushSender interface {
	Send(ctx context.Context, token string, notification models.Notification) error
}

// Broadcaster hints connected clients about a fresh in-app notification.
type Broadcaster interface {
	Notify(userID string, notification models.Notification)
}

// NotificationService appends in-app notifications and fans out
// best-effort push/realtime delivery. The durable append always
// happens-before any delivery attempt; delivery failures are logged and
// never rolled back.
type NotificationService struct {
	Profiles  NotificationProfileStore
	Push      PushSender
	Broadcast Broadcaster
	Logger    *zap.SugaredLogger

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

func (ns *NotificationService) now() time.Time {
	if ns.Now != nil {
		return ns.Now()
	}
	return time.Now()
}

// Dispatch appends the notification to the recipient and then attempts
// realtime and push delivery. Only the append can fail the call.
func (ns *NotificationService) Dispatch(ctx context.Context, recipientID string, notification models.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	if notification.Timestamp == "" {
		notification.Timestamp = ns.now().UTC().Format(time.RFC3339)
	}
	notification.Read = false

	if err := ns.Profiles.AppendNotification(ctx, recipientID, notification); err != nil {
		return err
	}

	if ns.Broadcast != nil {
		ns.Broadcast.Notify(recipientID, notification)
	}

	ns.sendPush(ctx, recipientID, notification)
	return nil
}

func (ns *NotificationService) sendPush(ctx context.Context, recipientID string, notification models.Notification) {
	if ns.Push == nil {
		return
	}

	recipient, err := ns.Profiles.GetProfile(ctx, recipientID)
	if err != nil {
		ns.Logger.Warnw("push skipped, recipient profile unavailable", "recipient", recipientID, "error", err)
		return
	}
	if recipient.ExpoPushToken == "" || !pushEnabled(recipient.NotificationPrefs, notification.Type) {
		return
	}

	if err := ns.Push.Send(ctx, recipient.ExpoPushToken, notification); err != nil {
		deliveryErr := &NotificationDeliveryError{RecipientID: recipientID, Err: err}
		ns.Logger.Warnw("push delivery failed", "recipient", recipientID, "type", notification.Type, "error", deliveryErr)
	}
}

func pushEnabled(prefs models.NotificationPrefs, notificationType string) bool {
	switch notificationType {
	case models.NotificationTypeMatch:
		return prefs.Matches
	case models.NotificationTypeConnection:
		return prefs.Connections
	default:
		return false
	}
}

// ListNotifications returns the recipient's notifications, newest last.
func (ns *NotificationService) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	profile, err := ns.Profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.Notifications == nil {
		return []models.Notification{}, nil
	}
	return profile.Notifications, nil
}

// MarkRead flips the read flag on one notification.
func (ns *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	return ns.Profiles.MarkNotificationRead(ctx, userID, notificationID)
}

// Delete removes one notification from the owner's list.
func (ns *NotificationService) Delete(ctx context.Context, userID, notificationID string) error {
	return ns.Profiles.RemoveNotification(ctx, userID, notificationID)
}

// Clear removes every notification from the owner's list.
func (ns *NotificationService) Clear(ctx context.Context, userID string) error {
	return ns.Profiles.ClearNotifications(ctx, userID)
}
