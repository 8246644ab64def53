package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const googleSearchURL = "https://www.googleapis.com/customsearch/v1"

// jobSites is the fixed allow-list of job-board domains the web search is
// scoped to via site: operators.
var jobSites = []string{
	"site:naukri.com",
	"site:linkedin.com/jobs",
	"site:indeed.com",
	"site:apna.co",
	"site:foundit.in",
	"site:timesjobs.com",
	"site:internshala.com",
	"site:unstop.com",
	"site:glassdoor.co.in",
	"site:wipro.com/careers",
	"site:infosys.com/careers",
	"site:tcs.com/careers",
	"site:accenture.com/in-en/careers",
	"site:microsoft.com/en-in/careers",
	"site:amazon.jobs",
	"site:google.com/about/careers",
}

// defaultRegion is reported as the posting location when the caller did not
// request one; the allow-list is India-centric.
const defaultRegion = "India"

// GoogleSource adapts Google Custom Search as a general web-search provider
// scoped to known job boards.
type GoogleSource struct {
	apiKey     string
	cxID       string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleSource creates a Google Custom Search adapter.
func NewGoogleSource(apiKey, cxID string) *GoogleSource {
	return &GoogleSource{
		apiKey:     apiKey,
		cxID:       cxID,
		baseURL:    googleSearchURL,
		httpClient: http.DefaultClient,
	}
}

// NewGoogleSourceWithURL creates a Google adapter against a custom endpoint.
// Used by tests.
func NewGoogleSourceWithURL(apiKey, cxID, baseURL string, client *http.Client) *GoogleSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &GoogleSource{apiKey: apiKey, cxID: cxID, baseURL: baseURL, httpClient: client}
}

// Name identifies the provider in logs.
func (s *GoogleSource) Name() string { return SourceGoogle }

type googleItem struct {
	Title       string `json:"title"`
	HTMLTitle   string `json:"htmlTitle"`
	DisplayLink string `json:"displayLink"`
	Link        string `json:"link"`
}

type googleResponse struct {
	Items []googleItem `json:"items"`
}

// Search queries the custom search engine across the job-site allow-list.
// Web search results carry no posting date, so PostedDate is always "N/A".
// A non-success status is logged and yields an empty slice, not an error.
func (s *GoogleSource) Search(ctx context.Context, q Query) ([]JobPosting, error) {
	query := fmt.Sprintf("%s %s jobs %s", roleTitle(q), topSkills(q.Skills, 3), strings.Join(jobSites, " OR "))
	if q.Location != "" {
		query += " in " + q.Location
	}
	if q.Remote {
		query += " remote"
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", s.apiKey)
	params.Set("cx", s.cxID)
	params.Set("num", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google search request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Google search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[googlesearch] API failed: status %d", resp.StatusCode)
		return nil, nil
	}

	var body googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode Google search response: %w", err)
	}

	items := body.Items
	if len(items) > maxResultsPerSource {
		items = items[:maxResultsPerSource]
	}

	location := q.Location
	if location == "" {
		location = defaultRegion
	}

	postings := make([]JobPosting, 0, len(items))
	for _, item := range items {
		postings = append(postings, JobPosting{
			Source:     SourceGoogle,
			Title:      itemTitle(item),
			Company:    orDefault(item.DisplayLink, "Unknown"),
			Location:   location,
			Link:       orDefault(item.Link, "#"),
			PostedDate: "N/A",
		})
	}
	return postings, nil
}

// itemTitle picks the plain result title, falling back to the HTML title
// with its markup stripped when the plain one is absent.
func itemTitle(item googleItem) string {
	if item.Title != "" {
		return item.Title
	}
	if item.HTMLTitle != "" {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(item.HTMLTitle))
		if err == nil {
			if text := strings.TrimSpace(doc.Text()); text != "" {
				return text
			}
		}
	}
	return "Not specified"
}
