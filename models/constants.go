package models

// Swipe directions
const (
	SwipeDirectionLike    = "like"
	SwipeDirectionDislike = "dislike"
)

// Connection statuses
const (
	ConnectionStatusPending   = "pending"
	ConnectionStatusDismissed = "dismissed"
)

// Chat statuses
const (
	ChatStatusPending = "pending"
	ChatStatusActive  = "active"
)

// Notification types
const (
	NotificationTypeMatch      = "match"
	NotificationTypeConnection = "connection"
)
