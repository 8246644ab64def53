package skills

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient is a deterministic llm.Client for tests.
type stubClient struct {
	response   string
	err        error
	calls      int
	lastPrompt string
	lastTemp   float32
}

func (c *stubClient) Generate(_ context.Context, _, prompt string, temperature float32) (string, error) {
	c.calls++
	c.lastPrompt = prompt
	c.lastTemp = temperature
	return c.response, c.err
}

func (c *stubClient) Close() error { return nil }

func TestExtract_JSONArray(t *testing.T) {
	client := &stubClient{response: `["Python", "Machine Learning", "SQL"]`}
	extractor := NewExtractor(client)

	skills, err := extractor.Extract(context.Background(), "resume text")
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "Machine Learning", "SQL"}, skills)
}

func TestExtract_MarkdownWrappedJSON(t *testing.T) {
	client := &stubClient{response: "```json\n[\"Go\", \"Docker\"]\n```"}
	extractor := NewExtractor(client)

	skills, err := extractor.Extract(context.Background(), "resume text")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Docker"}, skills)
}

func TestExtract_FallbackTokenSplit(t *testing.T) {
	client := &stubClient{response: "Python, SQL\nLeadership,  , Communication\n"}
	extractor := NewExtractor(client)

	skills, err := extractor.Extract(context.Background(), "resume text")
	require.NoError(t, err)
	// Newlines become separators, tokens are trimmed, empties dropped.
	assert.Equal(t, []string{"Python", "SQL", "Leadership", "Communication"}, skills)
}

func TestExtract_LLMFailure(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}
	extractor := NewExtractor(client)

	_, err := extractor.Extract(context.Background(), "resume text")
	require.Error(t, err)

	var extractionErr *ExtractionFailedError
	require.ErrorAs(t, err, &extractionErr)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestExtract_TruncatesLongResumes(t *testing.T) {
	client := &stubClient{response: `["Go"]`}
	extractor := NewExtractor(client)

	marker := "UNIQUE-TAIL-MARKER"
	longText := strings.Repeat("a", maxResumeChars+100) + marker

	_, err := extractor.Extract(context.Background(), longText)
	require.NoError(t, err)
	assert.NotContains(t, client.lastPrompt, marker)
	assert.Contains(t, client.lastPrompt, strings.Repeat("a", 100))
}

func TestExtract_Deterministic(t *testing.T) {
	client := &stubClient{response: `["Python", "SQL"]`}
	extractor := NewExtractor(client)

	first, err := extractor.Extract(context.Background(), "same text")
	require.NoError(t, err)
	second, err := extractor.Extract(context.Background(), "same text")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.InDelta(t, extractionTemperature, client.lastTemp, 0.001)
}
