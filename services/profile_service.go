package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/BasedOctavian/LayoverApp-sub001/models"
)

// ProfileService is the typed access layer over the Users table. All list
// mutations are single-document atomic updates.
type ProfileService struct {
	Dynamo DocumentStore
	Logger *zap.SugaredLogger
}

func profileKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
}

// GetProfile retrieves a user profile by id.
func (ps *ProfileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	item, err := ps.Dynamo.GetItem(ctx, models.UsersTable, profileKey(userID))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, &TransientStoreError{Op: "get profile", Err: err}
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile %s: %w", userID, err)
	}
	return &profile, nil
}

// ListProfilesByAirport loads the cohort of users sharing an airport code
// through the airportCode GSI.
func (ps *ProfileService) ListProfilesByAirport(ctx context.Context, airportCode string) ([]models.UserProfile, error) {
	keyCondition := "airportCode = :code"
	expressionValues := map[string]types.AttributeValue{
		":code": &types.AttributeValueMemberS{Value: airportCode},
	}

	items, err := ps.Dynamo.QueryItemsWithIndex(ctx, models.UsersTable, models.AirportCodeIndex, keyCondition, expressionValues, nil, 500)
	if err != nil {
		return nil, &TransientStoreError{Op: "list airport cohort", Err: err}
	}

	var profiles []models.UserProfile
	if err := attributevalue.UnmarshalListOfMaps(items, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal airport cohort: %w", err)
	}
	return profiles, nil
}

// ApplySwipe records a like or dislike on the actor's profile. The single
// ADD/DELETE update keeps the two sets disjoint and is idempotent: adding
// an id already present in a string set is a no-op.
func (ps *ProfileService) ApplySwipe(ctx context.Context, actorID, targetID, direction string) error {
	var updateExpression string
	switch direction {
	case models.SwipeDirectionLike:
		updateExpression = "ADD likedUsers :target DELETE dislikedUsers :target"
	case models.SwipeDirectionDislike:
		updateExpression = "ADD dislikedUsers :target DELETE likedUsers :target"
	default:
		return ErrInvalidSwipe
	}

	expressionValues := map[string]types.AttributeValue{
		":target": &types.AttributeValueMemberSS{Value: []string{targetID}},
	}

	if _, err := ps.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, profileKey(actorID), expressionValues, nil); err != nil {
		return &TransientStoreError{Op: "apply swipe", Err: err}
	}
	return nil
}

// ClearInteractionLists empties the actor's liked and disliked sets.
func (ps *ProfileService) ClearInteractionLists(ctx context.Context, userID string) error {
	updateExpression := "REMOVE likedUsers, dislikedUsers"
	if _, err := ps.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, profileKey(userID), nil, nil); err != nil {
		return &TransientStoreError{Op: "clear interaction lists", Err: err}
	}
	return nil
}

// Touch records user activity for the feed freshness window.
func (ps *ProfileService) Touch(ctx context.Context, userID string, at time.Time) error {
	updateExpression := "SET lastActivityAt = :at"
	expressionValues := map[string]types.AttributeValue{
		":at": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339)},
	}
	if _, err := ps.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, profileKey(userID), expressionValues, nil); err != nil {
		return &TransientStoreError{Op: "touch profile", Err: err}
	}
	return nil
}

// AppendNotification appends to the recipient's notification list without
// dropping existing entries.
func (ps *ProfileService) AppendNotification(ctx context.Context, userID string, notification models.Notification) error {
	marshaled, err := attributevalue.MarshalMap(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	updateExpression := "SET notifications = list_append(if_not_exists(notifications, :empty), :newItem)"
	expressionValues := map[string]types.AttributeValue{
		":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		":newItem": &types.AttributeValueMemberL{Value: []types.AttributeValue{
			&types.AttributeValueMemberM{Value: marshaled},
		}},
	}

	if _, err := ps.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, profileKey(userID), expressionValues, nil); err != nil {
		return &TransientStoreError{Op: "append notification", Err: err}
	}
	return nil
}

// MarkNotificationRead flips the read flag on a single notification.
func (ps *ProfileService) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	index, err := ps.findNotificationIndex(ctx, userID, notificationID)
	if err != nil {
		return err
	}

	updateExpression := fmt.Sprintf("SET notifications[%d].#r = :true", index)
	expressionValues := map[string]types.AttributeValue{
		":true": &types.AttributeValueMemberBOOL{Value: true},
	}
	expressionNames := map[string]string{"#r": "read"}

	if _, err := ps.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, profileKey(userID), expressionValues, expressionNames); err != nil {
		return &TransientStoreError{Op: "mark notification read", Err: err}
	}
	return nil
}

// RemoveNotification deletes a single notification from the owner's list.
func (ps *ProfileService) RemoveNotification(ctx context.Context, userID, notificationID string) error {
	index, err := ps.findNotificationIndex(ctx, userID, notificationID)
	if err != nil {
		return err
	}

	updateExpression := fmt.Sprintf("REMOVE notifications[%d]", index)
	if _, err := ps.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, profileKey(userID), nil, nil); err != nil {
		return &TransientStoreError{Op: "remove notification", Err: err}
	}
	return nil
}

// ClearNotifications empties the owner's notification list.
func (ps *ProfileService) ClearNotifications(ctx context.Context, userID string) error {
	updateExpression := "SET notifications = :empty"
	expressionValues := map[string]types.AttributeValue{
		":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
	}
	if _, err := ps.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, profileKey(userID), expressionValues, nil); err != nil {
		return &TransientStoreError{Op: "clear notifications", Err: err}
	}
	return nil
}

func (ps *ProfileService) findNotificationIndex(ctx context.Context, userID, notificationID string) (int, error) {
	profile, err := ps.GetProfile(ctx, userID)
	if err != nil {
		return 0, err
	}
	for i, n := range profile.Notifications {
		if n.ID == notificationID {
			return i, nil
		}
	}
	return 0, fmt.Errorf("notification '%s' not found for user %s: %w", notificationID, userID, ErrItemNotFound)
}
