// Package gemini implements the structured-extraction client using Google
// Gemini.
package gemini

import (
	"context"
	"errors"
	"net/http"

	gpa "github.com/taimg1/game-platform-analyzer"

	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Client implements gpa.ExtractionClient at compile time.
var _ gpa.ExtractionClient = (*Client)(nil)

// Client implements gpa.ExtractionClient using Google Gemini. Transient
// upstream failures are retried according to the injected RetryPolicy;
// permanent failures propagate immediately.
type Client struct {
	client *genai.Client
	model  string
	retry  RetryPolicy
}

// NewClient creates a new Client. An empty model selects DefaultModel.
func NewClient(client *genai.Client, model string, retry RetryPolicy) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{client: client, model: model, retry: retry}
}

// Generate sends the prompt to Gemini and returns the raw response text.
// An empty string with a nil error means the service produced no data.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", gpa.Errorf(gpa.EINVALID, "prompt required")
	}

	var text string
	err := c.retry.Do(ctx, func() error {
		result, err := c.client.Models.GenerateContent(ctx, c.model,
			[]*genai.Content{{
				Parts: []*genai.Part{{Text: prompt}},
			}},
			BuildConfig(),
		)
		if err != nil {
			return err
		}
		if result == nil {
			text = ""
			return nil
		}
		text = result.Text()
		return nil
	})
	if err != nil {
		return "", err
	}

	return text, nil
}

// BuildConfig returns the GenerateContentConfig for extraction calls.
// A low temperature keeps the structured output deterministic.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.1)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a highly intelligent web scraping assistant. You analyze HTML from game store pages and return only the requested JSON, with no commentary.",
			}},
		},
		Temperature: &temp,
	}
}

// IsTransient reports whether an upstream error is worth retrying:
// rate limiting, service unavailability, transient internal errors, and
// deadline expiry. Malformed requests and permanent rejections are not
// transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}
	return false
}
