// Package llm provides the LLM client abstraction used by skill extraction,
// job ranking, and resume scoring.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the model used for all completions.
const DefaultModel = "gemini-2.5-flash"

// Client is an abstraction over LLM providers. Every consumer takes a Client
// so tests can substitute deterministic fakes.
type Client interface {
	// Generate produces a completion for prompt. system sets the system-role
	// instruction (may be empty). Temperature is per-call: extraction wants
	// near-deterministic output, ranking tolerates a little more variety.
	Generate(ctx context.Context, system, prompt string, temperature float32) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client on top of Google Gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed client with the default model.
func NewClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	return NewClientWithModel(ctx, apiKey, DefaultModel)
}

// NewClientWithModel creates a Gemini-backed client for a specific model.
func NewClientWithModel(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Generate produces a completion for prompt at the given temperature.
func (c *GeminiClient) Generate(ctx context.Context, system, prompt string, temperature float32) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(temperature)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
