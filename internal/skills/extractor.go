// Package skills derives a ranked skill list from resume text via the LLM.
package skills

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/careerpilot/backend/internal/llm"
	"github.com/careerpilot/backend/internal/prompts"
)

// maxResumeChars bounds the prompt to respect model context limits.
const maxResumeChars = 4000

// extractionTemperature keeps skill extraction near-deterministic.
const extractionTemperature = 0.2

// ExtractionFailedError indicates the upstream LLM call itself failed
// (network, auth, quota). This is fatal to the pipeline: without skills no
// meaningful search is possible.
type ExtractionFailedError struct {
	Cause error
}

func (e *ExtractionFailedError) Error() string {
	return fmt.Sprintf("skill extraction failed: %v", e.Cause)
}

func (e *ExtractionFailedError) Unwrap() error {
	return e.Cause
}

// Extractor wraps the skill-extraction LLM call.
type Extractor struct {
	client llm.Client
}

// NewExtractor creates a skill extractor backed by the given LLM client.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{client: client}
}

// Extract derives an ordered skill list from resume text. Order reflects
// extraction confidence. Parse failures never propagate: if the model does
// not return a JSON array, the raw output is token-split instead.
func (e *Extractor) Extract(ctx context.Context, resumeText string) ([]string, error) {
	if len(resumeText) > maxResumeChars {
		resumeText = resumeText[:maxResumeChars]
	}

	system := prompts.MustGet("jobs.json", "extract-skills-system")
	prompt := prompts.Format(prompts.MustGet("jobs.json", "extract-skills"), map[string]string{
		"Resume": resumeText,
	})

	raw, err := e.client.Generate(ctx, system, prompt, extractionTemperature)
	if err != nil {
		return nil, &ExtractionFailedError{Cause: err}
	}

	raw = llm.CleanJSONBlock(raw)

	var skills []string
	if err := json.Unmarshal([]byte(raw), &skills); err == nil {
		return skills, nil
	}

	return splitSkills(raw), nil
}

// splitSkills is the parser of last resort: newline- and comma-split the raw
// model output and keep every non-empty trimmed token. It cannot fail.
func splitSkills(raw string) []string {
	raw = strings.ReplaceAll(raw, "\n", ",")
	var skills []string
	for _, token := range strings.Split(raw, ",") {
		if token = strings.TrimSpace(token); token != "" {
			skills = append(skills, token)
		}
	}
	return skills
}
