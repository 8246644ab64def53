package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsearchFixture(jobs []jsearchJob) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(jsearchResponse{Data: jobs})
	}
}

func TestJSearchSearch_MapsFields(t *testing.T) {
	var gotQuery, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotKey = r.Header.Get("x-rapidapi-key")
		jsearchFixture([]jsearchJob{
			{
				JobTitle:     "Backend Engineer",
				EmployerName: "Acme",
				JobCity:      "Bengaluru",
				JobApplyLink: "https://example.com/job/1",
				PostedAt:     "2026-08-01T00:00:00Z",
			},
		})(w, r)
	}))
	defer srv.Close()

	source := NewJSearchSourceWithURL("test-key", srv.URL, srv.Client())
	jobs, err := source.Search(context.Background(), Query{
		Skills:   []string{"Go", "SQL", "Docker", "Kubernetes"},
		Title:    "backend engineer",
		Location: "Bengaluru",
		Remote:   true,
	})
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	assert.Equal(t, "test-key", gotKey)
	// Query uses the title, the top 3 skills, the location, and the remote flag.
	assert.Equal(t, "backend engineer Go, SQL, Docker Bengaluru remote", gotQuery)

	job := jobs[0]
	assert.Equal(t, SourceJSearch, job.Source)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Bengaluru", job.Location)
	assert.Equal(t, "https://example.com/job/1", job.Link)
	assert.Equal(t, "2026-08-01T00:00:00Z", job.PostedDate)
}

func TestJSearchSearch_DefaultsAndFallbacks(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		jsearchFixture([]jsearchJob{
			{JobCountry: "India", JobGoogleLink: "https://google.com/job/2"},
			{},
		})(w, r)
	}))
	defer srv.Close()

	source := NewJSearchSourceWithURL("test-key", srv.URL, srv.Client())
	jobs, err := source.Search(context.Background(), Query{Skills: []string{"Go"}})
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	// No title requested: query falls back to a generic role.
	assert.Equal(t, "developer Go", gotQuery)

	assert.Equal(t, "Not specified", jobs[0].Title)
	assert.Equal(t, "India", jobs[0].Location)
	assert.Equal(t, "https://google.com/job/2", jobs[0].Link)

	assert.Equal(t, "Not specified", jobs[1].Location)
	assert.Equal(t, "#", jobs[1].Link)
	assert.Equal(t, "N/A", jobs[1].PostedDate)
}

func TestJSearchSearch_CapsAtTenResults(t *testing.T) {
	var many []jsearchJob
	for i := 0; i < 25; i++ {
		many = append(many, jsearchJob{
			JobTitle:     fmt.Sprintf("Job %d", i),
			JobApplyLink: fmt.Sprintf("https://example.com/job/%d", i),
		})
	}
	srv := httptest.NewServer(jsearchFixture(many))
	defer srv.Close()

	source := NewJSearchSourceWithURL("test-key", srv.URL, srv.Client())
	jobs, err := source.Search(context.Background(), Query{Skills: []string{"Go"}})
	require.NoError(t, err)
	assert.Len(t, jobs, 10)
	assert.Equal(t, "Job 0", jobs[0].Title)
}

func TestJSearchSearch_NonSuccessStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	source := NewJSearchSourceWithURL("test-key", srv.URL, srv.Client())
	jobs, err := source.Search(context.Background(), Query{Skills: []string{"Go"}})
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestJSearchSearch_TransportErrorIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // force a connection error

	source := NewJSearchSourceWithURL("test-key", srv.URL, nil)
	_, err := source.Search(context.Background(), Query{Skills: []string{"Go"}})
	assert.Error(t, err)
}
