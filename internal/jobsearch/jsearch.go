package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
)

const (
	jsearchURL  = "https://jsearch.p.rapidapi.com/search"
	jsearchHost = "jsearch.p.rapidapi.com"
)

// JSearchSource adapts the JSearch structured job API (RapidAPI).
type JSearchSource struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewJSearchSource creates a JSearch adapter.
func NewJSearchSource(apiKey string) *JSearchSource {
	return &JSearchSource{
		apiKey:     apiKey,
		baseURL:    jsearchURL,
		httpClient: http.DefaultClient,
	}
}

// NewJSearchSourceWithURL creates a JSearch adapter against a custom
// endpoint. Used by tests.
func NewJSearchSourceWithURL(apiKey, baseURL string, client *http.Client) *JSearchSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &JSearchSource{apiKey: apiKey, baseURL: baseURL, httpClient: client}
}

// Name identifies the provider in logs.
func (s *JSearchSource) Name() string { return SourceJSearch }

// jsearchJob is the subset of the JSearch response we map into JobPosting.
type jsearchJob struct {
	JobTitle      string `json:"job_title"`
	EmployerName  string `json:"employer_name"`
	JobCity       string `json:"job_city"`
	JobCountry    string `json:"job_country"`
	JobApplyLink  string `json:"job_apply_link"`
	JobGoogleLink string `json:"job_google_link"`
	PostedAt      string `json:"job_posted_at_datetime_utc"`
}

type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

// Search queries JSearch for one page of results. A non-success status is
// logged and yields an empty slice rather than an error.
func (s *JSearchSource) Search(ctx context.Context, q Query) ([]JobPosting, error) {
	searchQuery := fmt.Sprintf("%s %s", roleTitle(q), topSkills(q.Skills, 3))
	if q.Location != "" {
		searchQuery += " " + q.Location
	}
	if q.Remote {
		searchQuery += " remote"
	}

	params := url.Values{}
	params.Set("query", searchQuery)
	params.Set("page", "1")
	params.Set("num_pages", "1")
	params.Set("country", "in")
	params.Set("date_posted", "all")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create JSearch request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", s.apiKey)
	req.Header.Set("x-rapidapi-host", jsearchHost)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("JSearch request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[jsearch] API failed: status %d", resp.StatusCode)
		return nil, nil
	}

	var body jsearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode JSearch response: %w", err)
	}

	jobs := body.Data
	if len(jobs) > maxResultsPerSource {
		jobs = jobs[:maxResultsPerSource]
	}

	postings := make([]JobPosting, 0, len(jobs))
	for _, j := range jobs {
		postings = append(postings, JobPosting{
			Source:     SourceJSearch,
			Title:      orDefault(j.JobTitle, "Not specified"),
			Company:    orDefault(j.EmployerName, "Not specified"),
			Location:   firstNonEmpty(j.JobCity, j.JobCountry, "Not specified"),
			Link:       firstNonEmpty(j.JobApplyLink, j.JobGoogleLink, "#"),
			PostedDate: orDefault(j.PostedAt, "N/A"),
		})
	}
	return postings, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
