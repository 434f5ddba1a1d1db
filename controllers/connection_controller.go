package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/BasedOctavian/LayoverApp-sub001/services"
)

// ConnectionController handles HTTP requests for connection state changes
type ConnectionController struct {
	ConnectionService *services.ConnectionService
	ChatService       *services.ChatService
}

// NewConnectionController creates a new ConnectionController instance
func NewConnectionController(connectionService *services.ConnectionService, chatService *services.ChatService) *ConnectionController {
	return &ConnectionController{ConnectionService: connectionService, ChatService: chatService}
}

// HandleDismiss moves a pending connection to dismissed. Dismissing an
// already-dismissed connection succeeds without a write.
func (cc *ConnectionController) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	connectionID := mux.Vars(r)["connectionId"]
	if connectionID == "" {
		http.Error(w, "connectionId is required", http.StatusBadRequest)
		return
	}

	if err := cc.ConnectionService.DismissConnection(r.Context(), connectionID); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, "connection not found", http.StatusNotFound)
			return
		}
		if services.IsTransient(err) {
			http.Error(w, "store temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleChatMessage records a message preview on the chat and activates it.
func (cc *ConnectionController) HandleChatMessage(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["chatId"]

	var request struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	if err := cc.ChatService.ActivateChat(r.Context(), chatID, request.Message); err != nil {
		if services.IsTransient(err) {
			http.Error(w, "store temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
