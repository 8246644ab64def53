// Package ranking reorders aggregated job postings by relevance to the
// candidate's skills using the LLM.
package ranking

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/careerpilot/backend/internal/jobsearch"
	"github.com/careerpilot/backend/internal/llm"
	"github.com/careerpilot/backend/internal/prompts"
)

// maxJobsInPrompt bounds how many postings are serialized into the prompt.
const maxJobsInPrompt = 10

// rankingTemperature allows slightly more variety than extraction.
const rankingTemperature = 0.3

// Ranker wraps the relevance-ranking LLM call.
type Ranker struct {
	client llm.Client
}

// NewRanker creates a ranker backed by the given LLM client.
func NewRanker(client llm.Client) *Ranker {
	return &Ranker{client: client}
}

// Rank reorders jobs by relevance to skills. The output is always a
// permutation of the input: ranking is a best-effort enhancement, and any
// LLM or parse failure returns the input order unchanged.
func (r *Ranker) Rank(ctx context.Context, skills []string, jobs []jobsearch.JobPosting) []jobsearch.JobPosting {
	if len(jobs) == 0 {
		return jobs
	}

	promptJobs := jobs
	if len(promptJobs) > maxJobsInPrompt {
		promptJobs = promptJobs[:maxJobsInPrompt]
	}
	jobsJSON, err := json.MarshalIndent(promptJobs, "", "  ")
	if err != nil {
		log.Printf("[ranking] failed to serialize jobs: %v", err)
		return jobs
	}

	system := prompts.MustGet("jobs.json", "rank-jobs-system")
	prompt := prompts.Format(prompts.MustGet("jobs.json", "rank-jobs"), map[string]string{
		"Skills": strings.Join(skills, ", "),
		"Jobs":   string(jobsJSON),
	})

	raw, err := r.client.Generate(ctx, system, prompt, rankingTemperature)
	if err != nil {
		log.Printf("[ranking] LLM call failed, keeping original order: %v", err)
		return jobs
	}

	var titles []string
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &titles); err != nil {
		log.Printf("[ranking] unparseable ranking output, keeping original order: %v", err)
		return jobs
	}

	return reorderByTitles(jobs, titles)
}

// reorderByTitles re-associates ranked titles with postings. Each ranked
// title claims the first unmatched posting whose own title contains it
// case-insensitively; unmatched postings keep their relative order at the
// end. The matching is deliberately fuzzy and can misassign when titles
// overlap, but it never drops or duplicates a posting.
func reorderByTitles(jobs []jobsearch.JobPosting, titles []string) []jobsearch.JobPosting {
	matched := make([]bool, len(jobs))
	ranked := make([]jobsearch.JobPosting, 0, len(jobs))

	for _, title := range titles {
		needle := strings.ToLower(strings.TrimSpace(title))
		if needle == "" {
			continue
		}
		for i := range jobs {
			if matched[i] {
				continue
			}
			if strings.Contains(strings.ToLower(jobs[i].Title), needle) {
				matched[i] = true
				ranked = append(ranked, jobs[i])
				break
			}
		}
	}

	for i := range jobs {
		if !matched[i] {
			ranked = append(ranked, jobs[i])
		}
	}
	return ranked
}
