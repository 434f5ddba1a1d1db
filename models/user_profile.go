package models

// UserProfile is the persistent per-user document. Interaction lists are
// stored as DynamoDB string sets so membership updates stay idempotent.
type UserProfile struct {
	UserID            string            `dynamodbav:"userId" json:"userId"`                                     // ✅ Partition Key
	Name              string            `dynamodbav:"name,omitempty" json:"name,omitempty"`                     // Display name
	Age               int               `dynamodbav:"age,omitempty" json:"age,omitempty"`                       // Calculated age
	AirportCode       string            `dynamodbav:"airportCode,omitempty" json:"airportCode,omitempty"`       // Home airport, indexed via GSI
	LastActivityAt    string            `dynamodbav:"lastActivityAt,omitempty" json:"lastActivityAt,omitempty"` // RFC3339
	LikedUsers        []string          `dynamodbav:"likedUsers,stringset,omitempty" json:"likedUsers,omitempty"`
	DislikedUsers     []string          `dynamodbav:"dislikedUsers,stringset,omitempty" json:"dislikedUsers,omitempty"`
	BlockedUsers      []string          `dynamodbav:"blockedUsers,stringset,omitempty" json:"blockedUsers,omitempty"`
	BlockedByUsers    []string          `dynamodbav:"blockedByUsers,stringset,omitempty" json:"blockedByUsers,omitempty"`
	Notifications     []Notification    `dynamodbav:"notifications,omitempty" json:"notifications,omitempty"` // Append-only, trimmed client-side
	ExpoPushToken     string            `dynamodbav:"expoPushToken,omitempty" json:"expoPushToken,omitempty"`
	NotificationPrefs NotificationPrefs `dynamodbav:"notificationPrefs,omitempty" json:"notificationPrefs,omitempty"`
	ProfilePhotoKey   string            `dynamodbav:"profilePhotoKey,omitempty" json:"profilePhotoKey,omitempty"`
}

// NotificationPrefs gates push delivery per category. In-app notifications
// are always appended regardless of these flags.
type NotificationPrefs struct {
	Matches     bool `dynamodbav:"matches" json:"matches"`
	Connections bool `dynamodbav:"connections" json:"connections"`
}

// HasLiked reports whether the profile's liked set contains userID.
func (p *UserProfile) HasLiked(userID string) bool {
	return containsID(p.LikedUsers, userID)
}

// HasBlockRelation reports whether either side has blocked the other.
func (p *UserProfile) HasBlockRelation(userID string) bool {
	return containsID(p.BlockedUsers, userID) || containsID(p.BlockedByUsers, userID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// UsersTable is the DynamoDB table name for user profiles
const UsersTable = "Users"

// AirportCodeIndex is the GSI used to load an airport cohort for the feed
const AirportCodeIndex = "airportCode-index"
