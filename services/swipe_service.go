package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BasedOctavian/LayoverApp-sub001/models"
)

// SwipeResult reports the outcome of a processed swipe.
type SwipeResult struct {
	IsMatch bool `json:"isMatch"`
}

// SwipeProfileStore is the profile access a swipe needs.
type SwipeProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	ApplySwipe(ctx context.Context, actorID, targetID, direction string) error
}

// ConnectionCreator creates the pending connection for a liked pair.
type ConnectionCreator interface {
	CreateConnection(ctx context.Context, initiatorID, targetID string) (*models.Connection, bool, error)
}

// ChatCreator derives the chat paired with a connection.
type ChatCreator interface {
	EnsureChat(ctx context.Context, connection *models.Connection) (*models.Chat, error)
}

// Dispatcher fans a notification out to a recipient.
type Dispatcher interface {
	Dispatch(ctx context.Context, recipientID string, notification models.Notification) error
}

// SwipeService applies a single like or dislike: interaction-list update,
// mutual-like detection, connection/chat creation and notification fan-out,
// in that order.
type SwipeService struct {
	Profiles    SwipeProfileStore
	Connections ConnectionCreator
	Chats       ChatCreator
	Notifier    Dispatcher
	Logger      *zap.SugaredLogger
}

// ProcessSwipe records the actor's decision on the target. Re-applying the
// same direction is a no-op; a direction flip moves the target between the
// liked and disliked sets atomically, so the two never overlap.
func (ss *SwipeService) ProcessSwipe(ctx context.Context, actorID, targetID, direction string) (SwipeResult, error) {
	if actorID == "" || targetID == "" || actorID == targetID {
		return SwipeResult{}, ErrInvalidSwipe
	}
	if direction != models.SwipeDirectionLike && direction != models.SwipeDirectionDislike {
		return SwipeResult{}, ErrInvalidSwipe
	}

	if err := ss.Profiles.ApplySwipe(ctx, actorID, targetID, direction); err != nil {
		ss.Logger.Errorw("swipe list update failed", "actor", actorID, "target", targetID, "direction", direction, "error", err)
		return SwipeResult{}, err
	}

	if direction == models.SwipeDirectionDislike {
		return SwipeResult{}, nil
	}

	return ss.processLike(ctx, actorID, targetID)
}

func (ss *SwipeService) processLike(ctx context.Context, actorID, targetID string) (SwipeResult, error) {
	target, err := ss.Profiles.GetProfile(ctx, targetID)
	if err != nil {
		ss.Logger.Errorw("failed to load target profile for match check", "actor", actorID, "target", targetID, "error", err)
		return SwipeResult{}, err
	}

	// The match flag is computed from the target's liked set as read now;
	// a concurrent swipe from the other side settles on whichever call
	// lands second.
	isMatch := target.HasLiked(actorID)

	connection, _, err := ss.Connections.CreateConnection(ctx, actorID, targetID)
	if err != nil {
		ss.Logger.Errorw("connection creation failed", "actor", actorID, "target", targetID, "error", err)
		return SwipeResult{IsMatch: isMatch}, err
	}
	// Tolerated on failure: the connection exists and the next like on the
	// pair retries the derivation.
	if _, err := ss.Chats.EnsureChat(ctx, connection); err != nil {
		ss.Logger.Errorw("chat derivation failed", "connectionId", connection.ConnectionID, "error", err)
	}

	actor, err := ss.Profiles.GetProfile(ctx, actorID)
	if err != nil {
		ss.Logger.Warnw("failed to load actor profile for notification copy", "actor", actorID, "error", err)
		actor = &models.UserProfile{UserID: actorID}
	}

	// In-app delivery is best-effort from the swipe's point of view: a
	// missed notification is discoverable through the connection itself.
	if isMatch {
		ss.notify(ctx, targetID, matchNotification(actor.Name, actorID))
		ss.notify(ctx, actorID, matchNotification(target.Name, targetID))
	} else {
		ss.notify(ctx, targetID, connectionNotification(actor.Name, actorID))
	}

	return SwipeResult{IsMatch: isMatch}, nil
}

func (ss *SwipeService) notify(ctx context.Context, recipientID string, notification models.Notification) {
	if err := ss.Notifier.Dispatch(ctx, recipientID, notification); err != nil {
		ss.Logger.Warnw("notification dispatch failed", "recipient", recipientID, "type", notification.Type, "error", err)
	}
}

func matchNotification(counterpartName, counterpartID string) models.Notification {
	if counterpartName == "" {
		counterpartName = "someone"
	}
	return models.Notification{
		Title:         "It's a match!",
		Body:          fmt.Sprintf("You and %s liked each other", counterpartName),
		Type:          models.NotificationTypeMatch,
		MatchedUserID: counterpartID,
	}
}

func connectionNotification(senderName, senderID string) models.Notification {
	if senderName == "" {
		senderName = "Someone"
	}
	return models.Notification{
		Title:         "New connection request",
		Body:          fmt.Sprintf("%s wants to connect with you", senderName),
		Type:          models.NotificationTypeConnection,
		MatchedUserID: senderID,
	}
}
