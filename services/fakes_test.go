package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BasedOctavian/LayoverApp-sub001/models"
)

// fakeProfileStore is an in-memory stand-in for the Users table.
type fakeProfileStore struct {
	mu       sync.Mutex
	profiles map[string]*models.UserProfile

	getErr    error
	applyErr  error
	appendErr error
	getCalls  int
	events    *[]string
}

func newFakeProfileStore(profiles ...*models.UserProfile) *fakeProfileStore {
	store := &fakeProfileStore{profiles: make(map[string]*models.UserProfile)}
	for _, p := range profiles {
		store.profiles[p.UserID] = p
	}
	return store
}

func (f *fakeProfileStore) record(event string) {
	if f.events != nil {
		*f.events = append(*f.events, event)
	}
}

func (f *fakeProfileStore) GetProfile(_ context.Context, userID string) (*models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, ErrItemNotFound
	}
	return profile, nil
}

func (f *fakeProfileStore) ListProfilesByAirport(_ context.Context, airportCode string) ([]models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	var cohort []models.UserProfile
	for _, p := range f.profiles {
		if p.AirportCode == airportCode {
			cohort = append(cohort, *p)
		}
	}
	sort.Slice(cohort, func(i, j int) bool { return cohort[i].UserID < cohort[j].UserID })
	return cohort, nil
}

func (f *fakeProfileStore) ApplySwipe(_ context.Context, actorID, targetID, direction string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.applyErr != nil {
		return f.applyErr
	}
	actor, ok := f.profiles[actorID]
	if !ok {
		return ErrItemNotFound
	}
	switch direction {
	case models.SwipeDirectionLike:
		actor.LikedUsers = addToSet(actor.LikedUsers, targetID)
		actor.DislikedUsers = removeFromSet(actor.DislikedUsers, targetID)
	case models.SwipeDirectionDislike:
		actor.DislikedUsers = addToSet(actor.DislikedUsers, targetID)
		actor.LikedUsers = removeFromSet(actor.LikedUsers, targetID)
	default:
		return ErrInvalidSwipe
	}
	return nil
}

func (f *fakeProfileStore) ClearInteractionLists(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[userID]
	if !ok {
		return ErrItemNotFound
	}
	profile.LikedUsers = nil
	profile.DislikedUsers = nil
	return nil
}

func (f *fakeProfileStore) AppendNotification(_ context.Context, userID string, notification models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	profile, ok := f.profiles[userID]
	if !ok {
		return ErrItemNotFound
	}
	profile.Notifications = append(profile.Notifications, notification)
	f.record("append")
	return nil
}

func (f *fakeProfileStore) MarkNotificationRead(_ context.Context, userID, notificationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[userID]
	if !ok {
		return ErrItemNotFound
	}
	for i := range profile.Notifications {
		if profile.Notifications[i].ID == notificationID {
			profile.Notifications[i].Read = true
			return nil
		}
	}
	return ErrItemNotFound
}

func (f *fakeProfileStore) RemoveNotification(_ context.Context, userID, notificationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[userID]
	if !ok {
		return ErrItemNotFound
	}
	for i := range profile.Notifications {
		if profile.Notifications[i].ID == notificationID {
			profile.Notifications = append(profile.Notifications[:i], profile.Notifications[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func (f *fakeProfileStore) ClearNotifications(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[userID]
	if !ok {
		return ErrItemNotFound
	}
	profile.Notifications = nil
	return nil
}

func addToSet(set []string, id string) []string {
	for _, v := range set {
		if v == id {
			return set
		}
	}
	return append(set, id)
}

func removeFromSet(set []string, id string) []string {
	for i, v := range set {
		if v == id {
			return append(set[:i], set[i+1:]...)
		}
	}
	return set
}

// fakeConnectionStore is an in-memory stand-in for the Connections table.
type fakeConnectionStore struct {
	mu          sync.Mutex
	connections []models.Connection

	createErr  error
	pageCalls  []int
	failOnPage int // 1-based page index that fails; 0 = never
}

func (f *fakeConnectionStore) CreateConnection(_ context.Context, initiatorID, targetID string) (*models.Connection, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, false, f.createErr
	}
	if initiatorID == "" || targetID == "" || initiatorID == targetID {
		return nil, false, ErrInvalidParticipants
	}
	for i := range f.connections {
		c := &f.connections[i]
		if c.Status == models.ConnectionStatusPending && c.SamePair(initiatorID, targetID) {
			return c, false, nil
		}
	}
	connection := models.Connection{
		ConnectionID: uuid.NewString(),
		Participants: []string{initiatorID, targetID},
		Status:       models.ConnectionStatusPending,
		Initiator:    initiatorID,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	f.connections = append(f.connections, connection)
	return &connection, true, nil
}

func (f *fakeConnectionStore) ListPendingPartnerIDs(_ context.Context, userID string) (map[string]struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	partners := make(map[string]struct{})
	for i := range f.connections {
		c := &f.connections[i]
		if c.Status == models.ConnectionStatusPending && c.HasParticipant(userID) {
			if other := c.OtherParticipant(userID); other != "" {
				partners[other] = struct{}{}
			}
		}
	}
	return partners, nil
}

func (f *fakeConnectionStore) DeleteParticipantPage(_ context.Context, userID string, pageSize int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOnPage > 0 && len(f.pageCalls)+1 == f.failOnPage {
		f.pageCalls = append(f.pageCalls, -1)
		return 0, &TransientStoreError{Op: "delete connections page", Err: context.DeadlineExceeded}
	}

	deleted := 0
	kept := f.connections[:0]
	for _, c := range f.connections {
		if deleted < pageSize && c.HasParticipant(userID) {
			deleted++
			continue
		}
		kept = append(kept, c)
	}
	f.connections = kept
	f.pageCalls = append(f.pageCalls, deleted)
	return deleted, nil
}

func (f *fakeConnectionStore) pendingCount(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for i := range f.connections {
		if f.connections[i].HasParticipant(userID) {
			count++
		}
	}
	return count
}

// fakeChatStore is an in-memory stand-in for the Chats table.
type fakeChatStore struct {
	mu    sync.Mutex
	chats []models.Chat

	createErr  error
	pageCalls  []int
	failOnPage int
}

func (f *fakeChatStore) CreateChat(_ context.Context, connection *models.Connection) (*models.Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	chat := models.Chat{
		ChatID:       uuid.NewString(),
		Participants: connection.Participants,
		Status:       models.ChatStatusPending,
		ConnectionID: connection.ConnectionID,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	f.chats = append(f.chats, chat)
	return &chat, nil
}

func (f *fakeChatStore) EnsureChat(ctx context.Context, connection *models.Connection) (*models.Chat, error) {
	f.mu.Lock()
	for i := range f.chats {
		if f.chats[i].ConnectionID == connection.ConnectionID {
			chat := f.chats[i]
			f.mu.Unlock()
			return &chat, nil
		}
	}
	f.mu.Unlock()
	return f.CreateChat(ctx, connection)
}

func (f *fakeChatStore) ListPartnerIDs(_ context.Context, userID string) (map[string]struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	partners := make(map[string]struct{})
	for i := range f.chats {
		if f.chats[i].HasParticipant(userID) {
			for _, id := range f.chats[i].Participants {
				if id != userID {
					partners[id] = struct{}{}
				}
			}
		}
	}
	return partners, nil
}

func (f *fakeChatStore) DeleteParticipantPage(_ context.Context, userID string, pageSize int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOnPage > 0 && len(f.pageCalls)+1 == f.failOnPage {
		f.pageCalls = append(f.pageCalls, -1)
		return 0, &TransientStoreError{Op: "delete chats page", Err: context.DeadlineExceeded}
	}

	deleted := 0
	kept := f.chats[:0]
	for _, c := range f.chats {
		if deleted < pageSize && c.HasParticipant(userID) {
			deleted++
			continue
		}
		kept = append(kept, c)
	}
	f.chats = kept
	f.pageCalls = append(f.pageCalls, deleted)
	return deleted, nil
}

// fakeDispatcher records dispatched notifications per recipient.
type fakeDispatcher struct {
	mu         sync.Mutex
	dispatched map[string][]models.Notification
	err        error
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{dispatched: make(map[string][]models.Notification)}
}

func (f *fakeDispatcher) Dispatch(_ context.Context, recipientID string, notification models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.dispatched[recipientID] = append(f.dispatched[recipientID], notification)
	return nil
}

// fakePushSender records push attempts.
type fakePushSender struct {
	mu     sync.Mutex
	sent   []string
	err    error
	events *[]string
}

func (f *fakePushSender) Send(_ context.Context, token string, _ models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.events != nil {
		*f.events = append(*f.events, "push")
	}
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, token)
	return nil
}

// fakeBroadcaster records realtime hints.
type fakeBroadcaster struct {
	mu       sync.Mutex
	notified []string
	events   *[]string
}

func (f *fakeBroadcaster) Notify(userID string, _ models.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.events != nil {
		*f.events = append(*f.events, "broadcast")
	}
	f.notified = append(f.notified, userID)
}
