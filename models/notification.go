package models

// Notification is an in-app notification owned by the recipient profile.
type Notification struct {
	ID            string `dynamodbav:"id" json:"id"`
	Title         string `dynamodbav:"title" json:"title"`
	Body          string `dynamodbav:"body" json:"body"`
	Type          string `dynamodbav:"type" json:"type"` // match, connection
	MatchedUserID string `dynamodbav:"matchedUserId,omitempty" json:"matchedUserId,omitempty"`
	Timestamp     string `dynamodbav:"timestamp" json:"timestamp"` // RFC3339
	Read          bool   `dynamodbav:"read" json:"read"`
}
