package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BasedOctavian/LayoverApp-sub001/services"
)

// ResetController handles HTTP requests for swipe-history resets
type ResetController struct {
	ResetService *services.ResetService
}

// NewResetController creates a new ResetController instance
func NewResetController(resetService *services.ResetService) *ResetController {
	return &ResetController{ResetService: resetService}
}

// HandleReset clears a user's swipe history and derived records. The
// operation is idempotent: a failed run can simply be re-invoked.
func (rc *ResetController) HandleReset(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	if err := rc.ResetService.ResetHistory(r.Context(), request.UserID); err != nil {
		var partial *services.PartialResetError
		if errors.As(err, &partial) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error":              "reset incomplete, safe to retry",
				"connectionsDeleted": partial.ConnectionsDeleted,
				"chatsDeleted":       partial.ChatsDeleted,
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "history reset"})
}
