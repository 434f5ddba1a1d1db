package routes

import (
	"github.com/gorilla/mux"

	"github.com/BasedOctavian/LayoverApp-sub001/controllers"
	"github.com/BasedOctavian/LayoverApp-sub001/services"
)

// RegisterResetRoutes sets up routes for history resets under /api/reset
func RegisterResetRoutes(r *mux.Router, resetService *services.ResetService) {
	controller := controllers.NewResetController(resetService)

	resetRouter := r.PathPrefix("/api/reset").Subrouter()
	resetRouter.HandleFunc("", controller.HandleReset).Methods("POST")
}
