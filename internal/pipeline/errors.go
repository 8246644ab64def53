package pipeline

import "fmt"

// NoTextError indicates the uploaded resume contained no extractable text.
// This is a client error: nothing downstream runs.
type NoTextError struct{}

func (e *NoTextError) Error() string {
	return "No readable text found in resume."
}

// SkillExtractionError indicates skill extraction failed or produced an
// empty set. Fatal to the request: every downstream search query would be
// meaningless without skills.
type SkillExtractionError struct {
	Cause error
}

func (e *SkillExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Skill extraction failed: %v", e.Cause)
	}
	return "Skill extraction failed."
}

func (e *SkillExtractionError) Unwrap() error {
	return e.Cause
}
