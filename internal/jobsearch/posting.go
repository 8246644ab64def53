// Package jobsearch defines the normalized job posting model, the provider
// adapters that produce it, and the aggregator that merges their results.
package jobsearch

import (
	"context"
	"strings"
)

// Source names used in the normalized posting model.
const (
	SourceJSearch = "JSearch"
	SourceGoogle  = "Google"
)

// JobPosting is the common shape every provider adapter normalizes into.
// Link is the canonical identity for deduplication.
type JobPosting struct {
	Source     string `json:"source"`
	Title      string `json:"job_title"`
	Company    string `json:"company_name"`
	Location   string `json:"location"`
	Link       string `json:"job_link"`
	PostedDate string `json:"posted_date"`
}

// Query carries the search inputs shared by every provider.
type Query struct {
	Skills   []string
	Title    string
	Location string
	Remote   bool
}

// Source is a job-search provider adapter. Adapters are independent failure
// domains: an upstream outage degrades result completeness, it never fails
// the whole request.
type Source interface {
	// Name identifies the provider in logs.
	Name() string
	// Search returns up to maxResultsPerSource normalized postings.
	Search(ctx context.Context, q Query) ([]JobPosting, error)
}

// maxResultsPerSource caps how many postings each adapter contributes.
const maxResultsPerSource = 10

// roleTitle returns the requested title, defaulting to a generic role.
func roleTitle(q Query) string {
	if q.Title != "" {
		return q.Title
	}
	return "developer"
}

// topSkills joins the first n skills for use in a search query.
func topSkills(skills []string, n int) string {
	if len(skills) > n {
		skills = skills[:n]
	}
	return strings.Join(skills, ", ")
}
