// Package tutor serves learning resources: live YouTube search plus a
// curated catalog of videos and courses.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const youtubeSearchURL = "https://www.googleapis.com/youtube/v3/search"

// maxVideos caps how many search results are returned to the client.
const maxVideos = 6

// Video is a normalized YouTube search result.
type Video struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Channel   string `json:"channel,omitempty"`
}

// YouTubeClient wraps the YouTube Data API v3 search endpoint.
type YouTubeClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewYouTubeClient creates a YouTube search client.
func NewYouTubeClient(apiKey string) *YouTubeClient {
	return &YouTubeClient{
		apiKey:     apiKey,
		baseURL:    youtubeSearchURL,
		httpClient: http.DefaultClient,
	}
}

// NewYouTubeClientWithURL creates a client against a custom endpoint.
// Used by tests.
func NewYouTubeClientWithURL(apiKey, baseURL string, client *http.Client) *YouTubeClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &YouTubeClient{apiKey: apiKey, baseURL: baseURL, httpClient: client}
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

// SearchVideos fetches up to maxVideos results for the search term. Unlike
// the job providers, a failure here is surfaced to the caller.
func (c *YouTubeClient) SearchVideos(ctx context.Context, query string) ([]Video, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", fmt.Sprintf("%d", maxVideos))
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("YouTube request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("YouTube API failed: status %d", resp.StatusCode)
	}

	var body youtubeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode YouTube response: %w", err)
	}

	videos := make([]Video, 0, len(body.Items))
	for _, item := range body.Items {
		videos = append(videos, Video{
			ID:        item.ID.VideoID,
			Title:     item.Snippet.Title,
			Thumbnail: item.Snippet.Thumbnails.High.URL,
			Channel:   item.Snippet.ChannelTitle,
		})
	}
	return videos, nil
}
