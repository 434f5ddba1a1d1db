package services

import (
	"context"
	"sync"

	"github.com/BasedOctavian/LayoverApp-sub001/models"
)

// SwipeFunc processes a confirmed swipe against the backend.
type SwipeFunc func(ctx context.Context, actorID, targetID, direction string) (SwipeResult, error)

// SwipeOutcome is the settled result of an optimistic swipe. Reinserted is
// true when the backend rejected the swipe and the candidate was put back
// at the top of the stack.
type SwipeOutcome struct {
	Target     models.UserProfile
	Result     SwipeResult
	Reinserted bool
	Err        error
}

// CardStackController is the client-side adapter over a feed snapshot: it
// presents one candidate at a time, advances optimistically on a
// gesture-confirmed swipe and settles the backend call asynchronously.
// One controller instance serves one user session; the in-flight guard
// serializes its swipes.
type CardStackController struct {
	mu           sync.Mutex
	userID       string
	cards        []models.UserProfile
	process      SwipeFunc
	isProcessing bool
}

// NewCardStackController wraps a freshly built feed for presentation.
func NewCardStackController(userID string, feed []models.UserProfile, process SwipeFunc) *CardStackController {
	cards := make([]models.UserProfile, len(feed))
	copy(cards, feed)
	return &CardStackController{
		userID:  userID,
		cards:   cards,
		process: process,
	}
}

// Current returns the candidate on top of the stack, or ErrFeedExhausted.
// The controller never refetches on its own.
func (c *CardStackController) Current() (*models.UserProfile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.cards) == 0 {
		return nil, ErrFeedExhausted
	}
	top := c.cards[0]
	return &top, nil
}

// Remaining reports how many candidates are left.
func (c *CardStackController) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cards)
}

// Swipe advances past the current candidate immediately and settles the
// backend call in the background. The returned channel delivers exactly
// one outcome; a rejected swipe re-inserts the candidate on top so the
// presentation layer can show it again.
func (c *CardStackController) Swipe(ctx context.Context, direction string) (<-chan SwipeOutcome, error) {
	c.mu.Lock()
	if c.isProcessing {
		c.mu.Unlock()
		return nil, ErrSwipeInFlight
	}
	if len(c.cards) == 0 {
		c.mu.Unlock()
		return nil, ErrFeedExhausted
	}

	target := c.cards[0]
	c.cards = c.cards[1:]
	c.isProcessing = true
	c.mu.Unlock()

	outcome := make(chan SwipeOutcome, 1)
	go func() {
		result, err := c.process(ctx, c.userID, target.UserID, direction)

		c.mu.Lock()
		c.isProcessing = false
		reinserted := false
		if err != nil {
			c.cards = append([]models.UserProfile{target}, c.cards...)
			reinserted = true
		}
		c.mu.Unlock()

		outcome <- SwipeOutcome{
			Target:     target,
			Result:     result,
			Reinserted: reinserted,
			Err:        err,
		}
		close(outcome)
	}()

	return outcome, nil
}
