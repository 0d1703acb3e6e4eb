package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// generationTemperature is deliberately elevated: the studio favors varied
// drafts over reproducible ones, and the occasion rubric depends on it.
const generationTemperature = 0.9

// maxErrorBody bounds how much of an error response is carried in errors.
const maxErrorBody = 2048

// openRouterProvider implements Provider against the OpenRouter chat
// completions API (POST /chat/completions, OpenAI wire format).
type openRouterProvider struct {
	config ProviderConfig
	client *http.Client
}

// NewOpenRouter creates the OpenRouter provider. The API key may be empty;
// Generate reports ErrNoAPIKey at call time so the server can still boot
// and serve the non-generation endpoints.
func NewOpenRouter(cfg ProviderConfig) Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://openrouter.ai/api/v1"
	}
	return &openRouterProvider{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *openRouterProvider) Name() string { return "openrouter" }

// Generate sends a chat completion request and returns the assistant's
// response text.
func (p *openRouterProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if p.config.APIKey == "" {
		return "", ErrNoAPIKey
	}

	body := chatRequest{
		Model: p.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: generationTemperature,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("openrouter marshal: %w", err)
	}

	url := p.config.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		b := respBody
		if len(b) > maxErrorBody {
			b = b[:maxErrorBody]
		}
		return "", &TransportError{Status: resp.StatusCode, Body: string(b)}
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &ProtocolError{Reason: "body is not valid JSON"}
	}

	if len(result.Choices) == 0 {
		return "", &ProtocolError{Reason: "no choices returned"}
	}

	return result.Choices[0].Message.Content, nil
}

// --- OpenAI-compatible request/response types ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}
