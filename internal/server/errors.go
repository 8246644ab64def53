package server

import (
	"errors"
	"net/http"

	"github.com/careerpilot/backend/internal/pipeline"
	"github.com/careerpilot/backend/internal/resume"
)

// HTTPStatus maps pipeline errors to HTTP status codes: input problems are
// the caller's fault, everything else is ours.
func HTTPStatus(err error) int {
	var noText *pipeline.NoTextError
	var badDocument *resume.ExtractionError
	var skillFailure *pipeline.SkillExtractionError

	switch {
	case errors.As(err, &noText), errors.As(err, &badDocument):
		return http.StatusBadRequest
	case errors.As(err, &skillFailure):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
