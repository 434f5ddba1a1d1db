package services

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BasedOctavian/LayoverApp-sub001/models"
	"github.com/BasedOctavian/LayoverApp-sub001/utils"
)

// connectionScanPageSize bounds contains() scans; the store caps the
// filter-set size it will evaluate per request.
const connectionScanPageSize = 50

// ConnectionService owns the pairwise connection lifecycle: creation with
// participant validation, pending-pair dedup, dismissal and bulk delete.
type ConnectionService struct {
	Dynamo DocumentStore
	Logger *zap.SugaredLogger
}

func connectionKey(connectionID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"connectionId": &types.AttributeValueMemberS{Value: connectionID},
	}
}

// CreateConnection writes a new pending connection for the pair. When a
// pending connection already exists it is returned unchanged and created
// is false, keeping at most one active connection per unordered pair.
func (cs *ConnectionService) CreateConnection(ctx context.Context, initiatorID, targetID string) (*models.Connection, bool, error) {
	if initiatorID == "" || targetID == "" || initiatorID == targetID {
		return nil, false, ErrInvalidParticipants
	}

	existing, err := cs.FindPendingByPair(ctx, initiatorID, targetID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		cs.Logger.Debugw("pending connection already exists for pair",
			"connectionId", existing.ConnectionID, "initiator", initiatorID, "target", targetID)
		return existing, false, nil
	}

	connection := models.Connection{
		ConnectionID: uuid.NewString(),
		Participants: []string{initiatorID, targetID},
		Status:       models.ConnectionStatusPending,
		Initiator:    initiatorID,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := cs.Dynamo.PutItem(ctx, models.ConnectionsTable, connection); err != nil {
		return nil, false, &TransientStoreError{Op: "create connection", Err: err}
	}

	cs.Logger.Infow("connection created", "connectionId", connection.ConnectionID, "initiator", initiatorID, "target", targetID)
	return &connection, true, nil
}

// FindPendingByPair returns the pending connection joining the pair, or
// nil when none exists.
func (cs *ConnectionService) FindPendingByPair(ctx context.Context, userA, userB string) (*models.Connection, error) {
	filter := "contains(participants, :a) AND contains(participants, :b) AND #status = :pending"
	expressionValues := map[string]types.AttributeValue{
		":a":       &types.AttributeValueMemberS{Value: userA},
		":b":       &types.AttributeValueMemberS{Value: userB},
		":pending": &types.AttributeValueMemberS{Value: models.ConnectionStatusPending},
	}
	expressionNames := map[string]string{"#status": "status"}

	var startKey map[string]types.AttributeValue
	for {
		items, lastKey, err := cs.Dynamo.ScanPage(ctx, models.ConnectionsTable, filter, expressionValues, expressionNames, connectionScanPageSize, startKey)
		if err != nil {
			return nil, &TransientStoreError{Op: "find pending connection", Err: err}
		}

		for _, item := range items {
			var connection models.Connection
			if err := attributevalue.UnmarshalMap(item, &connection); err != nil {
				continue
			}
			if connection.SamePair(userA, userB) {
				return &connection, nil
			}
		}

		if len(lastKey) == 0 {
			return nil, nil
		}
		startKey = lastKey
	}
}

// DismissConnection moves a pending connection to its terminal dismissed
// state. Dismissing an already-dismissed connection is a no-op.
func (cs *ConnectionService) DismissConnection(ctx context.Context, connectionID string) error {
	item, err := cs.Dynamo.GetItem(ctx, models.ConnectionsTable, connectionKey(connectionID))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return ErrItemNotFound
		}
		return &TransientStoreError{Op: "dismiss connection", Err: err}
	}

	if utils.ExtractString(item, "status") == models.ConnectionStatusDismissed {
		return nil
	}

	updateExpression := "SET #status = :dismissed"
	expressionValues := map[string]types.AttributeValue{
		":dismissed": &types.AttributeValueMemberS{Value: models.ConnectionStatusDismissed},
	}
	expressionNames := map[string]string{"#status": "status"}

	if _, err := cs.Dynamo.UpdateItem(ctx, models.ConnectionsTable, updateExpression, connectionKey(connectionID), expressionValues, expressionNames); err != nil {
		return &TransientStoreError{Op: "dismiss connection", Err: err}
	}
	return nil
}

// ListPendingPartnerIDs collects the counterpart ids of every pending
// connection the user participates in, from both directions.
func (cs *ConnectionService) ListPendingPartnerIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	filter := "contains(participants, :uid) AND #status = :pending"
	expressionValues := map[string]types.AttributeValue{
		":uid":     &types.AttributeValueMemberS{Value: userID},
		":pending": &types.AttributeValueMemberS{Value: models.ConnectionStatusPending},
	}
	expressionNames := map[string]string{"#status": "status"}

	partners := make(map[string]struct{})
	var startKey map[string]types.AttributeValue
	for {
		items, lastKey, err := cs.Dynamo.ScanPage(ctx, models.ConnectionsTable, filter, expressionValues, expressionNames, connectionScanPageSize, startKey)
		if err != nil {
			return nil, &TransientStoreError{Op: "list pending partners", Err: err}
		}

		for _, item := range items {
			var connection models.Connection
			if err := attributevalue.UnmarshalMap(item, &connection); err != nil {
				continue
			}
			if other := connection.OtherParticipant(userID); other != "" {
				partners[other] = struct{}{}
			}
		}

		if len(lastKey) == 0 {
			return partners, nil
		}
		startKey = lastKey
	}
}

// DeleteParticipantPage deletes one page of connections referencing the
// user and reports how many were removed. Callers loop until a short page.
// Limit caps items evaluated before the filter, so one scan window can
// match fewer connections than remain in the table; the scan continues on
// the cursor until a full page of matches is collected or the table ends.
// A short return therefore means the table holds no further matches.
func (cs *ConnectionService) DeleteParticipantPage(ctx context.Context, userID string, pageSize int) (int, error) {
	filter := "contains(participants, :uid)"
	expressionValues := map[string]types.AttributeValue{
		":uid": &types.AttributeValueMemberS{Value: userID},
	}

	keys := make([]map[string]types.AttributeValue, 0, pageSize)
	var startKey map[string]types.AttributeValue
	for {
		items, lastKey, err := cs.Dynamo.ScanPage(ctx, models.ConnectionsTable, filter, expressionValues, nil, int32(pageSize), startKey)
		if err != nil {
			return 0, &TransientStoreError{Op: "scan connections page", Err: err}
		}
		for _, item := range items {
			if id := utils.ExtractString(item, "connectionId"); id != "" {
				keys = append(keys, connectionKey(id))
			}
		}
		if len(keys) >= pageSize || len(lastKey) == 0 {
			break
		}
		startKey = lastKey
	}

	if len(keys) == 0 {
		return 0, nil
	}

	if err := cs.Dynamo.BatchDeleteItems(ctx, models.ConnectionsTable, keys); err != nil {
		return 0, &TransientStoreError{Op: "delete connections page", Err: err}
	}
	return len(keys), nil
}
