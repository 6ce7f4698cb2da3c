// Package generation wraps the external chat-completions endpoint that
// writes brief content.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/briefpanel/brief-service/internal/core/domain"
)

const (
	defaultBaseURL = "https://api.openai.com/v1/chat/completions"
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 60 * time.Second

	systemPrompt = "You are a helpful assistant that creates cheat sheets. " +
		"The content of your response will be placed inside an html div, so include html tags."
)

// Config captures the settings for the generation endpoint. Zero values
// fall back to sane defaults; only APIKey is required.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client calls an OpenAI-compatible chat-completions API. It sends exactly
// one request per Generate call: failed generations are never retried here,
// the caller owns any retry policy.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// Generate asks the model for an HTML-fragment cheat sheet on topic,
// appending description as extra context when present. All failure modes,
// transport errors and timeouts included, wrap domain.ErrGenerationFailed.
func (c *Client) Generate(ctx context.Context, topic, description string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: API key not configured", domain.ErrGenerationFailed)
	}

	userPrompt := fmt.Sprintf("Write a detailed and thorough cheat sheet on the topic: %s.", topic)
	if description != "" {
		userPrompt += fmt.Sprintf(" Additional information: %s", description)
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", domain.ErrGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", domain.ErrGenerationFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", domain.ErrGenerationFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		var ae apiError
		if json.Unmarshal(respBody, &ae) == nil && ae.Error.Message != "" {
			return "", fmt.Errorf("%w: api error (%d): %s", domain.ErrGenerationFailed, resp.StatusCode, ae.Error.Message)
		}
		return "", fmt.Errorf("%w: api error (%d)", domain.ErrGenerationFailed, resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(respBody, &cr); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrGenerationFailed, err)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", domain.ErrGenerationFailed)
	}

	return cr.Choices[0].Message.Content, nil
}
