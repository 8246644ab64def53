package server

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/careerpilot/backend/internal/jobsearch"
	"github.com/careerpilot/backend/internal/pipeline"
)

// maxUploadBytes bounds multipart resume uploads.
const maxUploadBytes = 32 << 20 // 32 MB

// UploadResumeResponse is the envelope for /upload_resume/.
type UploadResumeResponse struct {
	Status          string                 `json:"status"`
	SkillsExtracted []string               `json:"skills_extracted"`
	Filters         pipeline.Filters       `json:"filters"`
	TotalJobs       int                    `json:"total_jobs"`
	Jobs            []jobsearch.JobPosting `json:"jobs"`
}

// handleUploadResume runs the aggregation pipeline for an uploaded resume.
// Optional query parameters: title, location, remote.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	document, ok := s.readUpload(w, r, "file")
	if !ok {
		return
	}

	remote := false
	if remoteStr := r.URL.Query().Get("remote"); remoteStr != "" {
		parsed, err := strconv.ParseBool(remoteStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid remote value: "+remoteStr)
			return
		}
		remote = parsed
	}

	filters := pipeline.Filters{
		Title:    r.URL.Query().Get("title"),
		Location: r.URL.Query().Get("location"),
		Remote:   remote,
	}

	result, err := s.runner.Run(r.Context(), document, filters)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("[upload_resume] pipeline failed: %v", err)
		}
		s.errorResponse(w, status, err.Error())
		return
	}

	jobs := result.Jobs
	if jobs == nil {
		jobs = []jobsearch.JobPosting{}
	}

	s.jsonResponse(w, http.StatusOK, UploadResumeResponse{
		Status:          "success",
		SkillsExtracted: result.Skills,
		Filters:         result.Filters,
		TotalJobs:       result.JobCount,
		Jobs:            jobs,
	})
}

// handleResumeScore evaluates an uploaded resume against an optional
// job_description form field.
func (s *Server) handleResumeScore(w http.ResponseWriter, r *http.Request) {
	document, ok := s.readUpload(w, r, "resume")
	if !ok {
		return
	}

	text, err := s.extractor.ExtractText(document)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	eval, err := s.scorer.Score(r.Context(), text, r.FormValue("job_description"))
	if err != nil {
		log.Printf("[resume_score] evaluation failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, eval)
}

// readUpload pulls the named multipart file out of the request, writing an
// error response and returning ok=false if it is missing or unreadable.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request, field string) ([]byte, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return nil, false
	}

	file, _, err := r.FormFile(field)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, field+" file is required")
		return nil, false
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file: "+err.Error())
		return nil, false
	}
	return data, true
}
