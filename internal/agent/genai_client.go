package agent

import (
	"context"
	"fmt"

	"book-summarizer/backend/internal/agent/failure"

	"google.golang.org/genai"
)

// GeminiConfig configures the Gemini-backed LLM client
type GeminiConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint; empty uses the SDK default
	BaseURL string
}

// GeminiLLMClient implements LLMClient using the Gemini API
type GeminiLLMClient struct {
	client *genai.Client
	model  string
}

// NewGeminiLLMClient creates a new GeminiLLMClient.
// A missing API key is not an error here: every call fails with a Config
// failure instead, so the process can still serve pages.
func NewGeminiLLMClient(ctx context.Context, cfg GeminiConfig) (*GeminiLLMClient, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	c := &GeminiLLMClient{model: cfg.Model}
	if cfg.APIKey == "" {
		return c, nil
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	c.client = client
	return c, nil
}

// Configured reports whether an API credential is present
func (c *GeminiLLMClient) Configured() bool {
	return c.client != nil
}

// Model returns the model identifier sent with every request
func (c *GeminiLLMClient) Model() string {
	return c.model
}

// GenerateContent generates content using the Gemini API.
// Errors are always *failure.Error.
func (c *GeminiLLMClient) GenerateContent(ctx context.Context, prompt string, temperature float32, maxOutputTokens int32) (string, error) {
	if c.client == nil {
		return "", failure.New(failure.Config, "GEMINI_API_KEY is not set")
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: maxOutputTokens,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}, config)
	if err != nil {
		return "", classifyError(err)
	}

	// Extract text from response
	var text string
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Thought {
				continue
			}
			text += part.Text
		}
	}

	if text == "" {
		return "", failure.New(failure.Request, "empty response from model")
	}
	return text, nil
}
