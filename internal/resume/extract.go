// Package resume extracts plain text from uploaded resume documents.
package resume

import (
	"fmt"
	"os"

	"code.sajari.com/docconv"
)

// ExtractionError indicates the uploaded document could not be parsed.
type ExtractionError struct {
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from document: %v", e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Extractor converts uploaded PDF documents into plain text.
type Extractor struct{}

// NewExtractor creates a document text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText extracts plain text from a PDF byte buffer. The buffer is
// staged in a temporary file that is removed on every exit path. Pages
// without extractable text contribute nothing; an unparseable document
// returns an ExtractionError.
func (e *Extractor) ExtractText(data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "resume-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	res, err := docconv.ConvertPath(tmpPath)
	if err != nil {
		return "", &ExtractionError{Cause: err}
	}

	return res.Body, nil
}
