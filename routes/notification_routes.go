package routes

import (
	"github.com/gorilla/mux"

	"github.com/BasedOctavian/LayoverApp-sub001/controllers"
	"github.com/BasedOctavian/LayoverApp-sub001/services"
)

// RegisterNotificationRoutes sets up notification management under /api/notifications
func RegisterNotificationRoutes(r *mux.Router, notificationService *services.NotificationService) {
	controller := controllers.NewNotificationController(notificationService)

	notificationRouter := r.PathPrefix("/api/notifications").Subrouter()
	notificationRouter.HandleFunc("/{userId}", controller.HandleList).Methods("GET")
	notificationRouter.HandleFunc("/{userId}", controller.HandleClear).Methods("DELETE")
	notificationRouter.HandleFunc("/{userId}/{notificationId}/read", controller.HandleMarkRead).Methods("POST")
	notificationRouter.HandleFunc("/{userId}/{notificationId}", controller.HandleDelete).Methods("DELETE")
}
