package routes

import (
	"github.com/gorilla/mux"

	"github.com/BasedOctavian/LayoverApp-sub001/controllers"
	"github.com/BasedOctavian/LayoverApp-sub001/services"
)

// RegisterFeedRoutes sets up routes for candidate-feed operations under /api/feed
func RegisterFeedRoutes(r *mux.Router, feedService *services.FeedService) {
	controller := controllers.NewFeedController(feedService)

	feedRouter := r.PathPrefix("/api/feed").Subrouter()
	feedRouter.HandleFunc("/{userId}", controller.HandleGetFeed).Methods("GET")
}
