package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-2.0-flash"
	maxAttempts  = 3
)

var ErrEmptyOutput = errors.New("model returned empty output")

// Client wraps the Gemini API for structured free-text parsing. Construction
// failure only disables the parse endpoints; matching keeps working.
type Client struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

func NewClient(ctx context.Context, apiKey, model string, log *zap.Logger) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if log == nil {
		log = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client, model: model, log: log}, nil
}

// generate sends the prompt and returns the concatenated text parts, retrying
// on transport errors.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
		if err != nil {
			lastErr = err
			c.log.Warn("generate content failed",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			continue
		}

		var b strings.Builder
		for _, cand := range resp.Candidates {
			if cand == nil || cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if part == nil {
					continue
				}
				b.WriteString(part.Text)
			}
		}

		out := strings.TrimSpace(b.String())
		if out == "" {
			lastErr = ErrEmptyOutput
			continue
		}
		return out, nil
	}
	return "", fmt.Errorf("generate content: %w", lastErr)
}
