package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BasedOctavian/LayoverApp-sub001/models"
)

func newSwipeService(profiles *fakeProfileStore, connections *fakeConnectionStore, chats *fakeChatStore, notifier *fakeDispatcher) *SwipeService {
	return &SwipeService{
		Profiles:    profiles,
		Connections: connections,
		Chats:       chats,
		Notifier:    notifier,
		Logger:      zap.NewNop().Sugar(),
	}
}

func TestProcessSwipeRejectsInvalidInput(t *testing.T) {
	service := newSwipeService(newFakeProfileStore(), &fakeConnectionStore{}, &fakeChatStore{}, newFakeDispatcher())

	cases := []struct {
		name      string
		actor     string
		target    string
		direction string
	}{
		{"empty actor", "", "user-b", models.SwipeDirectionLike},
		{"empty target", "user-a", "", models.SwipeDirectionLike},
		{"self swipe", "user-a", "user-a", models.SwipeDirectionLike},
		{"unknown direction", "user-a", "user-b", "superlike"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.ProcessSwipe(context.Background(), tc.actor, tc.target, tc.direction)
			assert.ErrorIs(t, err, ErrInvalidSwipe)
		})
	}
}

func TestProcessSwipeFirstLikeCreatesPendingConnection(t *testing.T) {
	profiles := newFakeProfileStore(
		&models.UserProfile{UserID: "user-a", Name: "Ava", AirportCode: "JFK"},
		&models.UserProfile{UserID: "user-b", Name: "Ben", AirportCode: "JFK"},
	)
	connections := &fakeConnectionStore{}
	chats := &fakeChatStore{}
	notifier := newFakeDispatcher()
	service := newSwipeService(profiles, connections, chats, notifier)

	result, err := service.ProcessSwipe(context.Background(), "user-a", "user-b", models.SwipeDirectionLike)
	require.NoError(t, err)
	assert.False(t, result.IsMatch)

	assert.Equal(t, []string{"user-b"}, profiles.profiles["user-a"].LikedUsers)
	require.Len(t, connections.connections, 1)
	assert.Equal(t, models.ConnectionStatusPending, connections.connections[0].Status)
	assert.Equal(t, "user-a", connections.connections[0].Initiator)
	require.Len(t, chats.chats, 1)
	assert.Equal(t, connections.connections[0].ConnectionID, chats.chats[0].ConnectionID)

	// Only the target hears about a one-sided like.
	require.Len(t, notifier.dispatched["user-b"], 1)
	assert.Equal(t, models.NotificationTypeConnection, notifier.dispatched["user-b"][0].Type)
	assert.Equal(t, "user-a", notifier.dispatched["user-b"][0].MatchedUserID)
	assert.Empty(t, notifier.dispatched["user-a"])
}

func TestProcessSwipeMutualLikeIsMatch(t *testing.T) {
	profiles := newFakeProfileStore(
		&models.UserProfile{UserID: "user-a", Name: "Ava", AirportCode: "JFK"},
		&models.UserProfile{UserID: "user-b", Name: "Ben", AirportCode: "JFK"},
	)
	connections := &fakeConnectionStore{}
	chats := &fakeChatStore{}
	notifier := newFakeDispatcher()
	service := newSwipeService(profiles, connections, chats, notifier)

	first, err := service.ProcessSwipe(context.Background(), "user-a", "user-b", models.SwipeDirectionLike)
	require.NoError(t, err)
	assert.False(t, first.IsMatch)

	second, err := service.ProcessSwipe(context.Background(), "user-b", "user-a", models.SwipeDirectionLike)
	require.NoError(t, err)
	assert.True(t, second.IsMatch)

	// The reciprocal like reuses the pending pair instead of duplicating it.
	assert.Len(t, connections.connections, 1)
	assert.Len(t, chats.chats, 1)

	// Both sides get a match notification for the reciprocal like.
	require.Len(t, notifier.dispatched["user-a"], 1)
	assert.Equal(t, models.NotificationTypeMatch, notifier.dispatched["user-a"][0].Type)
	assert.Equal(t, "user-b", notifier.dispatched["user-a"][0].MatchedUserID)
	require.Len(t, notifier.dispatched["user-b"], 2)
	assert.Equal(t, models.NotificationTypeMatch, notifier.dispatched["user-b"][1].Type)
}

func TestProcessSwipeLikeIsIdempotent(t *testing.T) {
	profiles := newFakeProfileStore(
		&models.UserProfile{UserID: "user-a", Name: "Ava"},
		&models.UserProfile{UserID: "user-b", Name: "Ben"},
	)
	connections := &fakeConnectionStore{}
	service := newSwipeService(profiles, connections, &fakeChatStore{}, newFakeDispatcher())

	for i := 0; i < 3; i++ {
		_, err := service.ProcessSwipe(context.Background(), "user-a", "user-b", models.SwipeDirectionLike)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"user-b"}, profiles.profiles["user-a"].LikedUsers)
	assert.Empty(t, profiles.profiles["user-a"].DislikedUsers)
	assert.Len(t, connections.connections, 1)
}

func TestProcessSwipeDirectionFlipKeepsSetsDisjoint(t *testing.T) {
	profiles := newFakeProfileStore(
		&models.UserProfile{UserID: "user-a", Name: "Ava"},
		&models.UserProfile{UserID: "user-b", Name: "Ben"},
	)
	service := newSwipeService(profiles, &fakeConnectionStore{}, &fakeChatStore{}, newFakeDispatcher())
	ctx := context.Background()

	_, err := service.ProcessSwipe(ctx, "user-a", "user-b", models.SwipeDirectionLike)
	require.NoError(t, err)
	_, err = service.ProcessSwipe(ctx, "user-a", "user-b", models.SwipeDirectionDislike)
	require.NoError(t, err)

	actor := profiles.profiles["user-a"]
	assert.Empty(t, actor.LikedUsers)
	assert.Equal(t, []string{"user-b"}, actor.DislikedUsers)

	_, err = service.ProcessSwipe(ctx, "user-a", "user-b", models.SwipeDirectionLike)
	require.NoError(t, err)
	assert.Equal(t, []string{"user-b"}, actor.LikedUsers)
	assert.Empty(t, actor.DislikedUsers)
}

func TestProcessSwipeRederivesChatAfterFailedCreation(t *testing.T) {
	profiles := newFakeProfileStore(
		&models.UserProfile{UserID: "user-a", Name: "Ava"},
		&models.UserProfile{UserID: "user-b", Name: "Ben"},
	)
	connections := &fakeConnectionStore{}
	chats := &fakeChatStore{createErr: &TransientStoreError{Op: "create chat", Err: context.DeadlineExceeded}}
	service := newSwipeService(profiles, connections, chats, newFakeDispatcher())

	// The first like succeeds even though the chat derivation fails.
	_, err := service.ProcessSwipe(context.Background(), "user-a", "user-b", models.SwipeDirectionLike)
	require.NoError(t, err)
	require.Len(t, connections.connections, 1)
	assert.Empty(t, chats.chats)

	// A later like on the same pair reuses the pending connection and
	// derives the missing chat.
	chats.createErr = nil
	_, err = service.ProcessSwipe(context.Background(), "user-a", "user-b", models.SwipeDirectionLike)
	require.NoError(t, err)
	assert.Len(t, connections.connections, 1)
	require.Len(t, chats.chats, 1)
	assert.Equal(t, connections.connections[0].ConnectionID, chats.chats[0].ConnectionID)
}

func TestProcessSwipeDislikeCreatesNothing(t *testing.T) {
	profiles := newFakeProfileStore(
		&models.UserProfile{UserID: "user-a", Name: "Ava"},
		&models.UserProfile{UserID: "user-b", Name: "Ben"},
	)
	connections := &fakeConnectionStore{}
	chats := &fakeChatStore{}
	notifier := newFakeDispatcher()
	service := newSwipeService(profiles, connections, chats, notifier)

	result, err := service.ProcessSwipe(context.Background(), "user-a", "user-b", models.SwipeDirectionDislike)
	require.NoError(t, err)
	assert.False(t, result.IsMatch)

	assert.Empty(t, connections.connections)
	assert.Empty(t, chats.chats)
	assert.Empty(t, notifier.dispatched)
}

func TestProcessSwipeNotificationFailureDoesNotFailSwipe(t *testing.T) {
	profiles := newFakeProfileStore(
		&models.UserProfile{UserID: "user-a", Name: "Ava"},
		&models.UserProfile{UserID: "user-b", Name: "Ben"},
	)
	notifier := newFakeDispatcher()
	notifier.err = &NotificationDeliveryError{RecipientID: "user-b", Err: context.DeadlineExceeded}
	service := newSwipeService(profiles, &fakeConnectionStore{}, &fakeChatStore{}, notifier)

	result, err := service.ProcessSwipe(context.Background(), "user-a", "user-b", models.SwipeDirectionLike)
	require.NoError(t, err)
	assert.False(t, result.IsMatch)
	assert.Equal(t, []string{"user-b"}, profiles.profiles["user-a"].LikedUsers)
}

func TestProcessSwipeStoreFailureSurfaces(t *testing.T) {
	profiles := newFakeProfileStore(&models.UserProfile{UserID: "user-a"})
	profiles.applyErr = &TransientStoreError{Op: "update profile", Err: context.DeadlineExceeded}
	service := newSwipeService(profiles, &fakeConnectionStore{}, &fakeChatStore{}, newFakeDispatcher())

	_, err := service.ProcessSwipe(context.Background(), "user-a", "user-b", models.SwipeDirectionLike)
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}
