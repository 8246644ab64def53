package tutor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchFixture = `{
	"items": [
		{
			"id": {"videoId": "abc123"},
			"snippet": {
				"title": "Go Tutorial",
				"thumbnails": {"high": {"url": "https://img.example.com/abc123.jpg"}},
				"channelTitle": "GopherAcademy"
			}
		}
	]
}`

func TestSearchVideos_MapsResults(t *testing.T) {
	var gotQuery, gotKey, gotMax string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("key")
		gotMax = r.URL.Query().Get("maxResults")
		_, _ = w.Write([]byte(searchFixture))
	}))
	defer srv.Close()

	client := NewYouTubeClientWithURL("yt-key", srv.URL, srv.Client())
	videos, err := client.SearchVideos(context.Background(), "golang basics")
	require.NoError(t, err)

	assert.Equal(t, "golang basics", gotQuery)
	assert.Equal(t, "yt-key", gotKey)
	assert.Equal(t, "6", gotMax)

	require.Len(t, videos, 1)
	assert.Equal(t, "abc123", videos[0].ID)
	assert.Equal(t, "Go Tutorial", videos[0].Title)
	assert.Equal(t, "https://img.example.com/abc123.jpg", videos[0].Thumbnail)
	assert.Equal(t, "GopherAcademy", videos[0].Channel)
}

func TestSearchVideos_NonSuccessStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewYouTubeClientWithURL("yt-key", srv.URL, srv.Client())
	_, err := client.SearchVideos(context.Background(), "golang")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
