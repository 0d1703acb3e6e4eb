// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai talks to the chat-completion backend that generates content.
// OpenRouter multiplexes the actual model behind one OpenAI-compatible
// endpoint, so a single provider covers every configured model.
package ai

import (
	"context"
	"errors"
	"fmt"
)

// Provider defines the interface the generation pipeline calls.
// systemPrompt sets the model's voice; userPrompt carries the composed
// rubric instructions.
type Provider interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Name() string
}

// ProviderConfig holds the credentials and settings for a provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// ErrNoAPIKey indicates the backend credential is not configured. This is a
// deployment problem, not a transient one, and is never retried.
var ErrNoAPIKey = errors.New("ai: api key not configured")

// TransportError reports a network failure or a non-2xx HTTP response from
// the backend. The underlying status and body are preserved for the caller.
type TransportError struct {
	Status int    // 0 when the request never reached the backend
	Body   string // response body, truncated by the provider
	Err    error  // underlying transport error, if any
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ai: request failed: %v", e.Err)
	}
	return fmt.Sprintf("ai: backend returned status %d: %s", e.Status, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError reports that the backend answered with 200 but the payload
// did not have the expected choice structure.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "ai: unexpected response format: " + e.Reason
}
