// Package score evaluates a resume against a job description using the LLM.
package score

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/xeipuuv/gojsonschema"

	"github.com/careerpilot/backend/internal/llm"
	"github.com/careerpilot/backend/internal/prompts"
)

// scoringTemperature keeps evaluations near-deterministic.
const scoringTemperature = 0.2

// evaluationSchema constrains the model output before it is trusted.
const evaluationSchema = `{
  "type": "object",
  "required": ["score", "strengths", "weaknesses", "suggestions"],
  "properties": {
    "score": {"type": "integer", "minimum": 0, "maximum": 100},
    "strengths": {"type": "array", "items": {"type": "string"}},
    "weaknesses": {"type": "array", "items": {"type": "string"}},
    "suggestions": {"type": "array", "items": {"type": "string"}}
  }
}`

// jsonObjectPattern grabs the outermost {...} block from raw model output.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// Evaluation is the structured result of a resume review.
type Evaluation struct {
	Score       int      `json:"score"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

// InvalidOutputError indicates the model response did not contain a valid
// evaluation object.
type InvalidOutputError struct {
	RawOutput string
	Cause     error
}

func (e *InvalidOutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid response format from LLM: %v", e.Cause)
	}
	return "invalid response format from LLM"
}

func (e *InvalidOutputError) Unwrap() error {
	return e.Cause
}

// Scorer wraps the resume-evaluation LLM call.
type Scorer struct {
	client llm.Client
	schema *gojsonschema.Schema
}

// New creates a resume scorer backed by the given LLM client.
func New(client llm.Client) *Scorer {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(evaluationSchema))
	if err != nil {
		panic(fmt.Sprintf("invalid evaluation schema: %v", err))
	}
	return &Scorer{client: client, schema: schema}
}

// Score evaluates resumeText for job readiness against jobDescription
// (which may be empty). The first JSON object in the raw model output is
// extracted and schema-validated before being returned.
func (s *Scorer) Score(ctx context.Context, resumeText, jobDescription string) (*Evaluation, error) {
	if jobDescription == "" {
		jobDescription = "N/A"
	}

	prompt := prompts.Format(prompts.MustGet("score.json", "evaluate-resume"), map[string]string{
		"Resume":         resumeText,
		"JobDescription": jobDescription,
	})

	raw, err := s.client.Generate(ctx, "", prompt, scoringTemperature)
	if err != nil {
		return nil, fmt.Errorf("resume evaluation failed: %w", err)
	}

	match := jsonObjectPattern.FindString(raw)
	if match == "" {
		return nil, &InvalidOutputError{RawOutput: raw}
	}

	result, err := s.schema.Validate(gojsonschema.NewStringLoader(match))
	if err != nil {
		return nil, &InvalidOutputError{RawOutput: raw, Cause: err}
	}
	if !result.Valid() {
		return nil, &InvalidOutputError{
			RawOutput: raw,
			Cause:     fmt.Errorf("schema violation: %v", result.Errors()),
		}
	}

	var eval Evaluation
	if err := json.Unmarshal([]byte(match), &eval); err != nil {
		return nil, &InvalidOutputError{RawOutput: raw, Cause: err}
	}
	return &eval, nil
}
