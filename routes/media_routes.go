package routes

import (
	"github.com/gorilla/mux"

	"github.com/BasedOctavian/LayoverApp-sub001/controllers"
	"github.com/BasedOctavian/LayoverApp-sub001/services"
)

// RegisterMediaRoutes sets up presigned-URL routes under /api/media
func RegisterMediaRoutes(r *mux.Router, mediaService *services.MediaService) {
	controller := controllers.NewMediaController(mediaService)

	mediaRouter := r.PathPrefix("/api/media").Subrouter()
	mediaRouter.HandleFunc("/uploadUrl", controller.HandleUploadURL).Methods("GET")
	mediaRouter.HandleFunc("/readUrl", controller.HandleReadURL).Methods("GET")
}
