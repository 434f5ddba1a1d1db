package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/BasedOctavian/LayoverApp-sub001/models"
)

// CohortLoader lists the users sharing an airport code.
type CohortLoader interface {
	ListProfilesByAirport(ctx context.Context, airportCode string) ([]models.UserProfile, error)
}

// PartnerLister reports the counterpart ids of records involving a user.
type PartnerLister interface {
	ListPendingPartnerIDs(ctx context.Context, userID string) (map[string]struct{}, error)
}

// ChatPartnerLister reports the counterpart ids of chats involving a user.
type ChatPartnerLister interface {
	ListPartnerIDs(ctx context.Context, userID string) (map[string]struct{}, error)
}

// FeedService builds the ephemeral candidate feed for a user: the airport
// cohort minus self, pending pairs, blocks in either direction and stale
// profiles. Read-only; feeds are regenerated on every fetch.
type FeedService struct {
	Cache           *ProfileCache
	Profiles        CohortLoader
	Connections     PartnerLister
	Chats           ChatPartnerLister
	FreshnessWindow time.Duration
	Logger          *zap.SugaredLogger

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

func (fs *FeedService) now() time.Time {
	if fs.Now != nil {
		return fs.Now()
	}
	return time.Now()
}

func (fs *FeedService) freshness() time.Duration {
	if fs.FreshnessWindow > 0 {
		return fs.FreshnessWindow
	}
	return time.Hour
}

// BuildFeed returns the ordered candidate list for userID. An unset
// airport code is a blocking configuration error; a store outage degrades
// to an empty feed with a recoverable error. No candidates is a valid
// empty result, not an error.
func (fs *FeedService) BuildFeed(ctx context.Context, userID string) ([]models.UserProfile, error) {
	requester, err := fs.Cache.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return []models.UserProfile{}, err
		}
		fs.Logger.Warnw("feed build failed loading requester", "userId", userID, "error", err)
		return []models.UserProfile{}, err
	}
	if requester.AirportCode == "" {
		return []models.UserProfile{}, ErrMissingAirport
	}

	cohort, err := fs.Profiles.ListProfilesByAirport(ctx, requester.AirportCode)
	if err != nil {
		fs.Logger.Warnw("feed build failed loading cohort", "userId", userID, "airportCode", requester.AirportCode, "error", err)
		return []models.UserProfile{}, err
	}

	pending, err := fs.pendingSet(ctx, userID)
	if err != nil {
		fs.Logger.Warnw("feed build failed loading pending pairs", "userId", userID, "error", err)
		return []models.UserProfile{}, err
	}

	cutoff := fs.now().Add(-fs.freshness())

	candidates := make([]models.UserProfile, 0, len(cohort))
	for _, candidate := range cohort {
		if candidate.UserID == userID {
			continue
		}
		if _, connected := pending[candidate.UserID]; connected {
			continue
		}
		if requester.HasBlockRelation(candidate.UserID) || candidate.HasBlockRelation(userID) {
			continue
		}
		if !fs.isFresh(candidate.LastActivityAt, cutoff) {
			continue
		}
		candidates = append(candidates, candidate)
	}

	// Stable arbitrary order; ranking is out of scope.
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].UserID < candidates[j].UserID
	})

	fs.Logger.Debugw("feed built", "userId", userID, "airportCode", requester.AirportCode, "candidates", len(candidates))
	return candidates, nil
}

// pendingSet unions the ids with a pending connection or any chat
// involving the requester, covering both directions.
func (fs *FeedService) pendingSet(ctx context.Context, userID string) (map[string]struct{}, error) {
	pending, err := fs.Connections.ListPendingPartnerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	chatPartners, err := fs.Chats.ListPartnerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	for id := range chatPartners {
		pending[id] = struct{}{}
	}
	return pending, nil
}

func (fs *FeedService) isFresh(lastActivityAt string, cutoff time.Time) bool {
	if lastActivityAt == "" {
		return false
	}
	at, err := time.Parse(time.RFC3339, lastActivityAt)
	if err != nil {
		return false
	}
	return !at.Before(cutoff)
}
