package models

// Connection records one user's interest in another. The participants set
// is unordered and must hold exactly two distinct ids.
type Connection struct {
	ConnectionID string   `dynamodbav:"connectionId" json:"connectionId"` // ✅ Partition Key
	Participants []string `dynamodbav:"participants,stringset" json:"participants"`
	Status       string   `dynamodbav:"status" json:"status"` // pending, dismissed
	Initiator    string   `dynamodbav:"initiator" json:"initiator"`
	CreatedAt    string   `dynamodbav:"createdAt" json:"createdAt"`
}

// HasParticipant reports whether userID is one of the two participants.
func (c *Connection) HasParticipant(userID string) bool {
	return containsID(c.Participants, userID)
}

// OtherParticipant returns the counterpart of userID, or "" when userID is
// not a participant.
func (c *Connection) OtherParticipant(userID string) string {
	for _, id := range c.Participants {
		if id != userID {
			return id
		}
	}
	return ""
}

// SamePair reports whether the connection joins exactly the given pair,
// regardless of order.
func (c *Connection) SamePair(userA, userB string) bool {
	return len(c.Participants) == 2 && c.HasParticipant(userA) && c.HasParticipant(userB)
}

// ConnectionsTable is the DynamoDB table name for connections
const ConnectionsTable = "Connections"
