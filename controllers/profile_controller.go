package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/BasedOctavian/LayoverApp-sub001/services"
)

// ProfileController handles HTTP requests for profile activity
type ProfileController struct {
	ProfileService *services.ProfileService
}

// NewProfileController creates a new ProfileController instance
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// HandleActivity records an activity heartbeat. The app pings this when the
// swipe screen opens so the user stays inside other users' freshness window.
func (pc *ProfileController) HandleActivity(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	if err := pc.ProfileService.Touch(r.Context(), userID, time.Now()); err != nil {
		if services.IsTransient(err) {
			http.Error(w, "store temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
