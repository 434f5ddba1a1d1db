package services

import (
	"context"

	"go.uber.org/zap"
)

// InteractionClearer empties a user's liked/disliked sets.
type InteractionClearer interface {
	ClearInteractionLists(ctx context.Context, userID string) error
}

// ParticipantPageDeleter deletes one page of records referencing a user
// and reports how many were removed.
type ParticipantPageDeleter interface {
	DeleteParticipantPage(ctx context.Context, userID string, pageSize int) (int, error)
}

// ResetService performs the destructive, user-confirmed clearing of swipe
// history: interaction lists first, then every connection and chat
// referencing the user, deleted page by page. A failure mid-page leaves a
// partially cleaned state that a re-invocation finishes, since deleted
// pages do not reappear.
type ResetService struct {
	Profiles    InteractionClearer
	Connections ParticipantPageDeleter
	Chats       ParticipantPageDeleter
	Cache       *ProfileCache
	PageSize    int
	Logger      *zap.SugaredLogger
}

func (rs *ResetService) pageSize() int {
	if rs.PageSize > 0 {
		return rs.PageSize
	}
	return 50
}

// ResetHistory clears userID's interaction lists and cascades through all
// derived connections and chats.
func (rs *ResetService) ResetHistory(ctx context.Context, userID string) error {
	if err := rs.Profiles.ClearInteractionLists(ctx, userID); err != nil {
		return &PartialResetError{UserID: userID, Err: err}
	}

	connectionsDeleted, err := rs.drainPages(ctx, rs.Connections, userID)
	if err != nil {
		return &PartialResetError{UserID: userID, ConnectionsDeleted: connectionsDeleted, Err: err}
	}

	chatsDeleted, err := rs.drainPages(ctx, rs.Chats, userID)
	if err != nil {
		return &PartialResetError{UserID: userID, ConnectionsDeleted: connectionsDeleted, ChatsDeleted: chatsDeleted, Err: err}
	}

	if rs.Cache != nil {
		rs.Cache.Invalidate(userID)
	}

	rs.Logger.Infow("history reset complete", "userId", userID,
		"connectionsDeleted", connectionsDeleted, "chatsDeleted", chatsDeleted)
	return nil
}

// drainPages deletes fixed-size pages until a short page signals the end.
func (rs *ResetService) drainPages(ctx context.Context, deleter ParticipantPageDeleter, userID string) (int, error) {
	size := rs.pageSize()
	total := 0
	for {
		n, err := deleter.DeleteParticipantPage(ctx, userID, size)
		if err != nil {
			return total, err
		}
		total += n
		if n < size {
			return total, nil
		}
	}
}
