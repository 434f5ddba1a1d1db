package models

// Chat is the conversation record derived 1:1 from a pending Connection.
// Liveness is tracked here, not on the Connection.
type Chat struct {
	ChatID       string   `dynamodbav:"chatId" json:"chatId"` // ✅ Partition Key
	Participants []string `dynamodbav:"participants,stringset" json:"participants"`
	Status       string   `dynamodbav:"status" json:"status"`             // pending, active
	ConnectionID string   `dynamodbav:"connectionId" json:"connectionId"` // Back-reference
	LastMessage  string   `dynamodbav:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	CreatedAt    string   `dynamodbav:"createdAt" json:"createdAt"`
}

// HasParticipant reports whether userID is one of the two participants.
func (c *Chat) HasParticipant(userID string) bool {
	return containsID(c.Participants, userID)
}

// ChatsTable is the DynamoDB table name for chats
const ChatsTable = "Chats"
