package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/topprix-dz/internal/agent"
	"github.com/topprix-dz/internal/models"
)

// Client represents a Groq chat-completion client.
// Groq speaks the OpenAI chat-completions protocol, so the request is a
// plain JSON POST with a bearer token.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Groq client. An empty API key is allowed and
// produces an unconfigured client; callers must check Configured before
// invoking Complete. An empty model falls back to DefaultModel.
func NewClient(apiKey, model string, timeout int, logger zerolog.Logger) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		logger: logger.With().Str("component", "llm").Logger(),
	}
}

// Configured reports whether an API key is present
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Model returns the completion model in use
func (c *Client) Model() string {
	return c.model
}

// Complete makes a single chat-completion call.
// There are no retries: the call is fire-once and any failure surfaces
// immediately as an agent error with the provider detail attached.
func (c *Client) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	if !c.Configured() {
		return "", agent.NewError(agent.KindUnconfigured, "no API key configured")
	}

	startTime := time.Now()

	payload := chatRequest{
		Model:       c.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemPrompt != "" {
		payload.Messages = append(payload.Messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	payload.Messages = append(payload.Messages, chatMessage{Role: "user", Content: req.UserPrompt})

	body, err := json.Marshal(payload)
	if err != nil {
		return "", agent.NewError(agent.KindProviderError, fmt.Sprintf("encode request: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", agent.NewError(agent.KindProviderError, fmt.Sprintf("build request: %v", err))
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error().Err(err).Str("model", c.model).Msg("Completion request failed")
		return "", agent.NewError(agent.KindProviderError, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail := resp.Status
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			detail = apiErr.Error.Message
		}
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("model", c.model).
			Str("detail", detail).
			Msg("Completion provider returned error")
		return "", agent.NewError(agent.KindProviderError, detail)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", agent.NewError(agent.KindProviderError, fmt.Sprintf("read response: %v", err))
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", agent.NewError(agent.KindProviderError, fmt.Sprintf("decode response: %v", err))
	}

	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		c.logger.Warn().Str("model", c.model).Msg("Completion provider returned no usable content")
		return "", agent.NewError(agent.KindEmptyResponse, "no content in provider response")
	}

	text := out.Choices[0].Message.Content

	c.logger.Info().
		Str("model", c.model).
		Int("response_length", len([]rune(text))).
		Dur("duration", time.Since(startTime)).
		Msg("Completion generated successfully")

	return text, nil
}
