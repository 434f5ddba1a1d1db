package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/BasedOctavian/LayoverApp-sub001/services"
)

// MediaController handles presigned-URL requests for profile photos
type MediaController struct {
	MediaService *services.MediaService
}

// NewMediaController creates a new MediaController instance
func NewMediaController(mediaService *services.MediaService) *MediaController {
	return &MediaController{MediaService: mediaService}
}

// HandleUploadURL returns a presigned upload URL for a new profile photo
func (mc *MediaController) HandleUploadURL(w http.ResponseWriter, r *http.Request) {
	fileName := r.URL.Query().Get("fileName")
	fileType := r.URL.Query().Get("fileType")
	if fileName == "" || fileType == "" {
		http.Error(w, "fileName and fileType are required", http.StatusBadRequest)
		return
	}

	url, key, err := mc.MediaService.GenerateUploadURL(r.Context(), fileName, fileType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"uploadUrl": url, "key": key})
}

// HandleReadURL returns a presigned read URL for a stored photo
func (mc *MediaController) HandleReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "key is required", http.StatusBadRequest)
		return
	}

	url, err := mc.MediaService.GenerateReadURL(r.Context(), key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"readUrl": url})
}
