package routes

import (
	"github.com/gorilla/mux"

	"github.com/BasedOctavian/LayoverApp-sub001/controllers"
	"github.com/BasedOctavian/LayoverApp-sub001/services"
)

// RegisterProfileRoutes sets up profile activity routes under /api/profile
func RegisterProfileRoutes(r *mux.Router, profileService *services.ProfileService) {
	controller := controllers.NewProfileController(profileService)

	profileRouter := r.PathPrefix("/api/profile").Subrouter()
	profileRouter.HandleFunc("/{userId}/activity", controller.HandleActivity).Methods("POST")
}
