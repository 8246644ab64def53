package server

import (
	"log"
	"net/http"

	"github.com/careerpilot/backend/internal/tutor"
)

// handleYouTubeVideos proxies a video search to the YouTube Data API.
func (s *Server) handleYouTubeVideos(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.errorResponse(w, http.StatusBadRequest, "q query parameter is required")
		return
	}

	videos, err := s.tutor.SearchVideos(r.Context(), query)
	if err != nil {
		log.Printf("[youtube_videos] search failed: %v", err)
		s.jsonResponse(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to fetch videos",
			"details": err.Error(),
		})
		return
	}

	if videos == nil {
		videos = []tutor.Video{}
	}
	s.jsonResponse(w, http.StatusOK, map[string][]tutor.Video{"videos": videos})
}

// handleRecommendedVideos returns the static curated video list.
func (s *Server) handleRecommendedVideos(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string][]tutor.Video{"videos": tutor.RecommendedVideos()})
}

// handleRecommendedCourses returns the curated course list, optionally
// filtered by the q query parameter.
func (s *Server) handleRecommendedCourses(w http.ResponseWriter, r *http.Request) {
	courses := tutor.RecommendedCourses(r.URL.Query().Get("q"))
	s.jsonResponse(w, http.StatusOK, map[string][]tutor.Course{"courses": courses})
}
