package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BasedOctavian/LayoverApp-sub001/services"
)

// SwipeController handles HTTP requests for swipe actions
type SwipeController struct {
	SwipeService *services.SwipeService
}

// NewSwipeController creates a new SwipeController instance
func NewSwipeController(swipeService *services.SwipeService) *SwipeController {
	return &SwipeController{SwipeService: swipeService}
}

// HandleSwipe processes a like or dislike action
func (sc *SwipeController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID       string `json:"userId"`
		TargetUserID string `json:"targetUserId"`
		Direction    string `json:"direction"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.TargetUserID == "" || request.Direction == "" {
		http.Error(w, "userId, targetUserId, and direction are required", http.StatusBadRequest)
		return
	}

	result, err := sc.SwipeService.ProcessSwipe(r.Context(), request.UserID, request.TargetUserID, request.Direction)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSwipe):
			http.Error(w, "invalid swipe request", http.StatusBadRequest)
		case services.IsTransient(err):
			http.Error(w, "swipe could not be recorded, try again", http.StatusServiceUnavailable)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
