package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

var ErrNoLLMEndpoint = errors.New("no LLM endpoint configured")

type LLMSettings struct {
	BaseURL       string
	APIKey        string
	Model         string
	FallbackURL   string
	FallbackModel string
	Timeout       time.Duration
	MaxTokens     int
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type llmEndpoint struct {
	name    string
	baseURL string
	apiKey  string
	model   string
}

// LLMClient talks to OpenAI-compatible chat completion endpoints. The primary
// endpoint (OpenRouter) is only used when an API key is set; the local Ollama
// endpoint is tried after it.
type LLMClient struct {
	httpClient *http.Client
	endpoints  []llmEndpoint
	timeout    time.Duration
	maxTokens  int
}

func NewLLMClient(settings LLMSettings) *LLMClient {
	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	var endpoints []llmEndpoint
	if settings.APIKey != "" && settings.BaseURL != "" {
		endpoints = append(endpoints, llmEndpoint{
			name:    "openrouter",
			baseURL: settings.BaseURL,
			apiKey:  settings.APIKey,
			model:   settings.Model,
		})
	}
	if settings.FallbackURL != "" && settings.FallbackModel != "" {
		endpoints = append(endpoints, llmEndpoint{
			name:    "ollama",
			baseURL: settings.FallbackURL,
			model:   settings.FallbackModel,
		})
	}

	return &LLMClient{
		httpClient: &http.Client{Timeout: timeout},
		endpoints:  endpoints,
		timeout:    timeout,
		maxTokens:  settings.MaxTokens,
	}
}

// Complete tries each endpoint in order and returns the first non-empty answer.
func (c *LLMClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	if len(c.endpoints) == 0 {
		return "", ErrNoLLMEndpoint
	}

	var lastErr error
	for _, endpoint := range c.endpoints {
		start := time.Now()
		text, err := c.call(ctx, endpoint, system, prompt)
		if err == nil {
			slog.Debug("LLM completion succeeded",
				slog.String("type", "sys"),
				slog.String("endpoint", endpoint.name),
				slog.Duration("took", time.Since(start)))
			return text, nil
		}
		slog.Warn("LLM completion failed",
			slog.String("type", "sys"),
			slog.String("endpoint", endpoint.name),
			slog.Duration("took", time.Since(start)),
			slog.Any("error", err))
		lastErr = err
	}
	return "", lastErr
}

func (c *LLMClient) call(ctx context.Context, endpoint llmEndpoint, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model: endpoint.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: strings.TrimSpace(prompt)},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := strings.TrimSuffix(endpoint.baseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if endpoint.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+endpoint.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call %s: %w", endpoint.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%s returned status %d: %s", endpoint.name, resp.StatusCode, string(raw))
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode %s response: %w", endpoint.name, err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("%s response has no choices", endpoint.name)
	}
	text := strings.TrimSpace(decoded.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%s response has empty content", endpoint.name)
	}
	return text, nil
}

// CompleteOr returns fallback instead of an error.
func CompleteOr(ctx context.Context, completer Completer, system, prompt, fallback string) string {
	if completer == nil {
		return fallback
	}
	text, err := completer.Complete(ctx, system, prompt)
	if err != nil {
		return fallback
	}
	return text
}
