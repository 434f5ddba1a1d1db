package routes

import (
	"github.com/gorilla/mux"

	"github.com/BasedOctavian/LayoverApp-sub001/controllers"
	"github.com/BasedOctavian/LayoverApp-sub001/services"
)

// RegisterSwipeRoutes sets up routes for swipe processing under /api/swipe
func RegisterSwipeRoutes(r *mux.Router, swipeService *services.SwipeService) {
	controller := controllers.NewSwipeController(swipeService)

	swipeRouter := r.PathPrefix("/api/swipe").Subrouter()
	swipeRouter.HandleFunc("", controller.HandleSwipe).Methods("POST")
}
