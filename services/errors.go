package services

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAirport is raised when a feed is requested for a profile
	// that has no airport code configured. Surfaced to the UI as a
	// blocking message.
	ErrMissingAirport = errors.New("profile has no airport code configured")

	// ErrInvalidParticipants flags a connection write whose participants
	// are not exactly two distinct user ids. Programming-error class.
	ErrInvalidParticipants = errors.New("connection requires two distinct participants")

	// ErrInvalidSwipe covers malformed swipe requests (unknown direction,
	// self-swipe, missing ids).
	ErrInvalidSwipe = errors.New("invalid swipe request")

	// ErrItemNotFound is returned by store reads for absent documents.
	ErrItemNotFound = errors.New("item not found")

	// ErrFeedExhausted signals the card stack ran out of candidates.
	ErrFeedExhausted = errors.New("candidate feed exhausted")

	// ErrSwipeInFlight is returned when a swipe is requested while the
	// previous one from the same controller has not settled.
	ErrSwipeInFlight = errors.New("swipe already in flight")
)

// TransientStoreError wraps a store outage. Callers may retry; readers
// degrade to empty results instead of failing hard.
type TransientStoreError struct {
	Op  string
	Err error
}

func (e *TransientStoreError) Error() string {
	return fmt.Sprintf("store temporarily unavailable during %s: %v", e.Op, e.Err)
}

func (e *TransientStoreError) Unwrap() error { return e.Err }

// IsTransient reports whether err is a TransientStoreError.
func IsTransient(err error) bool {
	var t *TransientStoreError
	return errors.As(err, &t)
}

// NotificationDeliveryError reports a failed push or broadcast attempt.
// Always non-fatal: the in-app notification is already appended and is
// never rolled back.
type NotificationDeliveryError struct {
	RecipientID string
	Err         error
}

func (e *NotificationDeliveryError) Error() string {
	return fmt.Sprintf("notification delivery to %s failed: %v", e.RecipientID, e.Err)
}

func (e *NotificationDeliveryError) Unwrap() error { return e.Err }

// PartialResetError reports a reset interrupted mid-page. Deleted pages do
// not reappear, so the operation is safe to re-invoke.
type PartialResetError struct {
	UserID             string
	ConnectionsDeleted int
	ChatsDeleted       int
	Err                error
}

func (e *PartialResetError) Error() string {
	return fmt.Sprintf("reset for %s incomplete (connections deleted: %d, chats deleted: %d): %v",
		e.UserID, e.ConnectionsDeleted, e.ChatsDeleted, e.Err)
}

func (e *PartialResetError) Unwrap() error { return e.Err }
