package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/victorconsulting/diagnosis-engine/internal/resilience"
)

const defaultCommentBaseURL = "https://api.openai.com/v1"

// chatRequest is the chat-completions request payload.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the chat-completions response we read.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// ErrNotConfigured is returned when no API key is set. Callers treat the
// absence of a comment as non-fatal.
var ErrNotConfigured = errors.New("comment generation is not configured")

// CommentClient generates narrative diagnosis comments through an
// OpenAI-compatible chat-completions endpoint.
type CommentClient struct {
	apiKey  string
	model   string
	baseURL string
	pool    *resilience.ConnectionPool
}

// NewCommentClient creates a comment client with connection pooling.
// baseURL may be empty to use the public OpenAI endpoint.
func NewCommentClient(apiKey, model, baseURL string) *CommentClient {
	if baseURL == "" {
		baseURL = defaultCommentBaseURL
	}

	cb := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
		FailureThreshold: 5,
		RecoveryTimeout:  30 * time.Second,
		SuccessThreshold: 3,
	})
	pool := resilience.NewConnectionPool(5, 10, 60*time.Second, cb)

	return &CommentClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		pool:    pool,
	}
}

// IsConfigured reports whether an API key is present.
func (c *CommentClient) IsConfigured() bool {
	return c.apiKey != ""
}

// Generate produces one narrative comment for the given prompts. Sampling
// settings are fixed so repeated runs stay comparable in tone and length.
func (c *CommentClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.4,
		MaxTokens:   420,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
		"Content-Type":  "application/json",
	}

	resp, err := c.pool.DoRequest(ctx, "POST", c.baseURL+"/chat/completions", headers, payload)
	if err != nil {
		return "", fmt.Errorf("failed to call chat completions: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return "", fmt.Errorf("failed to decode chat response: status %d: %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		if chat.Error != nil {
			return "", fmt.Errorf("chat completions error: status %d, type %s: %s", resp.StatusCode, chat.Error.Type, chat.Error.Message)
		}
		return "", fmt.Errorf("chat completions error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("chat completions returned no choices")
	}

	return strings.TrimSpace(chat.Choices[0].Message.Content), nil
}

// GetPoolStats exposes connection pool statistics for the health surface.
func (c *CommentClient) GetPoolStats() map[string]interface{} {
	return c.pool.GetStats()
}
