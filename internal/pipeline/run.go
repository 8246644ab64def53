// Package pipeline orchestrates the resume-to-jobs aggregation flow:
// extract text, derive skills, fan out to job providers, dedup, rank.
package pipeline

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/careerpilot/backend/internal/jobsearch"
	"github.com/careerpilot/backend/internal/llm"
	"github.com/careerpilot/backend/internal/ranking"
	"github.com/careerpilot/backend/internal/skills"
)

// TextExtractor converts an uploaded document into plain text.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// Filters carries the caller's optional search refinements.
type Filters struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Remote   bool   `json:"remote"`
}

// Result is the aggregation outcome for one request. JobCount always equals
// len(Jobs), and Jobs never contains two postings with the same link.
type Result struct {
	Skills   []string
	Filters  Filters
	JobCount int
	Jobs     []jobsearch.JobPosting
}

// Runner sequences the aggregation pipeline. All collaborators are
// long-lived injected dependencies constructed at process start.
type Runner struct {
	extractor TextExtractor
	skills    *skills.Extractor
	ranker    *ranking.Ranker
	sources   []jobsearch.Source
}

// New creates a pipeline runner.
func New(extractor TextExtractor, client llm.Client, sources []jobsearch.Source) *Runner {
	return &Runner{
		extractor: extractor,
		skills:    skills.NewExtractor(client),
		ranker:    ranking.NewRanker(client),
		sources:   sources,
	}
}

// Run executes the pipeline for one uploaded document.
//
// Every external call is attempt-once: provider and ranking failures
// degrade the result instead of failing the request, while unreadable
// documents and failed skill extraction abort it. There is no retry and no
// timeout beyond the HTTP/LLM client defaults.
func (r *Runner) Run(ctx context.Context, document []byte, f Filters) (*Result, error) {
	runID := uuid.New().String()

	text, err := r.extractor.ExtractText(document)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, &NoTextError{}
	}

	skillList, err := r.skills.Extract(ctx, text)
	if err != nil {
		return nil, &SkillExtractionError{Cause: err}
	}
	if len(skillList) == 0 {
		return nil, &SkillExtractionError{}
	}
	log.Printf("[pipeline] run %s extracted %d skills", runID, len(skillList))

	jobs := jobsearch.Aggregate(ctx, r.sources, jobsearch.Query{
		Skills:   skillList,
		Title:    f.Title,
		Location: f.Location,
		Remote:   f.Remote,
	})
	log.Printf("[pipeline] run %s aggregated %d unique jobs", runID, len(jobs))

	ranked := r.ranker.Rank(ctx, skillList, jobs)

	return &Result{
		Skills:   skillList,
		Filters:  f,
		JobCount: len(ranked),
		Jobs:     ranked,
	}, nil
}
