package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfileHasLiked(t *testing.T) {
	profile := UserProfile{UserID: "user-a", LikedUsers: []string{"user-b", "user-c"}}

	assert.True(t, profile.HasLiked("user-b"))
	assert.False(t, profile.HasLiked("user-d"))
	assert.False(t, profile.HasLiked(""))
}

func TestUserProfileHasBlockRelation(t *testing.T) {
	profile := UserProfile{
		UserID:         "user-a",
		BlockedUsers:   []string{"user-b"},
		BlockedByUsers: []string{"user-c"},
	}

	assert.True(t, profile.HasBlockRelation("user-b"), "outgoing block")
	assert.True(t, profile.HasBlockRelation("user-c"), "incoming block")
	assert.False(t, profile.HasBlockRelation("user-d"))
}

func TestConnectionParticipants(t *testing.T) {
	connection := Connection{
		ConnectionID: "conn-1",
		Participants: []string{"user-a", "user-b"},
		Status:       ConnectionStatusPending,
	}

	assert.True(t, connection.HasParticipant("user-a"))
	assert.False(t, connection.HasParticipant("user-c"))

	assert.Equal(t, "user-b", connection.OtherParticipant("user-a"))
	assert.Equal(t, "user-a", connection.OtherParticipant("user-b"))

	assert.True(t, connection.SamePair("user-b", "user-a"), "order must not matter")
	assert.False(t, connection.SamePair("user-a", "user-c"))
}

func TestChatHasParticipant(t *testing.T) {
	chat := Chat{
		ChatID:       "chat-1",
		Participants: []string{"user-a", "user-b"},
		Status:       ChatStatusPending,
	}

	assert.True(t, chat.HasParticipant("user-b"))
	assert.False(t, chat.HasParticipant("user-c"))
}
