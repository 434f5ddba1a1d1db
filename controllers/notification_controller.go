package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/BasedOctavian/LayoverApp-sub001/services"
)

// NotificationController handles HTTP requests for a user's notifications
type NotificationController struct {
	NotificationService *services.NotificationService
}

// NewNotificationController creates a new NotificationController instance
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

// HandleList returns the user's notifications
func (nc *NotificationController) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	notifications, err := nc.NotificationService.ListNotifications(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"notifications": notifications})
}

// HandleMarkRead marks a single notification as read
func (nc *NotificationController) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := nc.NotificationService.MarkRead(r.Context(), vars["userId"], vars["notificationId"]); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, "notification not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes a single notification
func (nc *NotificationController) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := nc.NotificationService.Delete(r.Context(), vars["userId"], vars["notificationId"]); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, "notification not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleClear removes all notifications for a user
func (nc *NotificationController) HandleClear(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if err := nc.NotificationService.Clear(r.Context(), userID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
