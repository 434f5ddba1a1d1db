package routes

import (
	"github.com/gorilla/mux"

	"github.com/BasedOctavian/LayoverApp-sub001/controllers"
	"github.com/BasedOctavian/LayoverApp-sub001/services"
)

// RegisterConnectionRoutes sets up connection and chat state routes
func RegisterConnectionRoutes(r *mux.Router, connectionService *services.ConnectionService, chatService *services.ChatService) {
	controller := controllers.NewConnectionController(connectionService, chatService)

	connectionRouter := r.PathPrefix("/api/connections").Subrouter()
	connectionRouter.HandleFunc("/{connectionId}/dismiss", controller.HandleDismiss).Methods("POST")

	chatRouter := r.PathPrefix("/api/chats").Subrouter()
	chatRouter.HandleFunc("/{chatId}/message", controller.HandleChatMessage).Methods("POST")
}
