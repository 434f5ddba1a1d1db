package services

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BasedOctavian/LayoverApp-sub001/models"
	"github.com/BasedOctavian/LayoverApp-sub001/utils"
)

// ChatService manages the chat records derived from connections. A chat is
// created pending alongside its connection and turns active on the first
// exchanged message.
type ChatService struct {
	Dynamo DocumentStore
	Logger *zap.SugaredLogger
}

func chatKey(chatID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"chatId": &types.AttributeValueMemberS{Value: chatID},
	}
}

// CreateChat derives the 1:1 chat for a freshly created connection.
func (cs *ChatService) CreateChat(ctx context.Context, connection *models.Connection) (*models.Chat, error) {
	chat := models.Chat{
		ChatID:       uuid.NewString(),
		Participants: connection.Participants,
		Status:       models.ChatStatusPending,
		ConnectionID: connection.ConnectionID,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := cs.Dynamo.PutItem(ctx, models.ChatsTable, chat); err != nil {
		return nil, &TransientStoreError{Op: "create chat", Err: err}
	}

	cs.Logger.Infow("chat created", "chatId", chat.ChatID, "connectionId", connection.ConnectionID)
	return &chat, nil
}

// EnsureChat returns the chat derived from the connection, creating it
// when the earlier derivation never landed.
func (cs *ChatService) EnsureChat(ctx context.Context, connection *models.Connection) (*models.Chat, error) {
	existing, err := cs.FindByConnection(ctx, connection.ConnectionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return cs.CreateChat(ctx, connection)
}

// FindByConnection returns the chat backed by the given connection, or nil
// when none exists.
func (cs *ChatService) FindByConnection(ctx context.Context, connectionID string) (*models.Chat, error) {
	filter := "connectionId = :cid"
	expressionValues := map[string]types.AttributeValue{
		":cid": &types.AttributeValueMemberS{Value: connectionID},
	}

	var startKey map[string]types.AttributeValue
	for {
		items, lastKey, err := cs.Dynamo.ScanPage(ctx, models.ChatsTable, filter, expressionValues, nil, connectionScanPageSize, startKey)
		if err != nil {
			return nil, &TransientStoreError{Op: "find chat by connection", Err: err}
		}

		for _, item := range items {
			var chat models.Chat
			if err := attributevalue.UnmarshalMap(item, &chat); err != nil {
				continue
			}
			return &chat, nil
		}

		if len(lastKey) == 0 {
			return nil, nil
		}
		startKey = lastKey
	}
}

// ActivateChat marks the chat active and stores the latest message
// preview. Liveness lives on the chat, not the connection.
func (cs *ChatService) ActivateChat(ctx context.Context, chatID, lastMessage string) error {
	updateExpression := "SET #status = :active, lastMessage = :msg"
	expressionValues := map[string]types.AttributeValue{
		":active": &types.AttributeValueMemberS{Value: models.ChatStatusActive},
		":msg":    &types.AttributeValueMemberS{Value: lastMessage},
	}
	expressionNames := map[string]string{"#status": "status"}

	if _, err := cs.Dynamo.UpdateItem(ctx, models.ChatsTable, updateExpression, chatKey(chatID), expressionValues, expressionNames); err != nil {
		return &TransientStoreError{Op: "activate chat", Err: err}
	}
	return nil
}

// ListPartnerIDs collects the counterpart ids of every chat the user
// participates in, regardless of status.
func (cs *ChatService) ListPartnerIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	filter := "contains(participants, :uid)"
	expressionValues := map[string]types.AttributeValue{
		":uid": &types.AttributeValueMemberS{Value: userID},
	}

	partners := make(map[string]struct{})
	var startKey map[string]types.AttributeValue
	for {
		items, lastKey, err := cs.Dynamo.ScanPage(ctx, models.ChatsTable, filter, expressionValues, nil, connectionScanPageSize, startKey)
		if err != nil {
			return nil, &TransientStoreError{Op: "list chat partners", Err: err}
		}

		for _, item := range items {
			var chat models.Chat
			if err := attributevalue.UnmarshalMap(item, &chat); err != nil {
				continue
			}
			for _, id := range chat.Participants {
				if id != userID {
					partners[id] = struct{}{}
				}
			}
		}

		if len(lastKey) == 0 {
			return partners, nil
		}
		startKey = lastKey
	}
}

// DeleteParticipantPage deletes one page of chats referencing the user and
// reports how many were removed. As with connections, Limit bounds the
// evaluated window, not the matches, so the scan follows the cursor until
// a full page of matches is collected or the table ends.
func (cs *ChatService) DeleteParticipantPage(ctx context.Context, userID string, pageSize int) (int, error) {
	filter := "contains(participants, :uid)"
	expressionValues := map[string]types.AttributeValue{
		":uid": &types.AttributeValueMemberS{Value: userID},
	}

	keys := make([]map[string]types.AttributeValue, 0, pageSize)
	var startKey map[string]types.AttributeValue
	for {
		items, lastKey, err := cs.Dynamo.ScanPage(ctx, models.ChatsTable, filter, expressionValues, nil, int32(pageSize), startKey)
		if err != nil {
			return 0, &TransientStoreError{Op: "scan chats page", Err: err}
		}
		for _, item := range items {
			if id := utils.ExtractString(item, "chatId"); id != "" {
				keys = append(keys, chatKey(id))
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

	if err := cs.Dynamo.BatchDeleteItems(ctx, models.ChatsTable, keys); err != nil {
		return 0, &TransientStoreError{Op: "delete chats page", Err: err}
	}
	return len(keys), nil
}
