package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/BasedOctavian/LayoverApp-sub001/services"
)

// FeedController handles HTTP requests for the candidate feed
type FeedController struct {
	FeedService *services.FeedService
}

// NewFeedController creates a new FeedController instance
func NewFeedController(feedService *services.FeedService) *FeedController {
	return &FeedController{FeedService: feedService}
}

// HandleGetFeed builds and returns the candidate feed for a user
func (fc *FeedController) HandleGetFeed(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	candidates, err := fc.FeedService.BuildFeed(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingAirport):
			// Blocking condition: the profile must be completed first.
			http.Error(w, "Set your home airport to start swiping", http.StatusConflict)
		case errors.Is(err, services.ErrItemNotFound):
			http.Error(w, "profile not found", http.StatusNotFound)
		case services.IsTransient(err):
			http.Error(w, "feed temporarily unavailable, try again", http.StatusServiceUnavailable)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"candidates": candidates,
	})
}
