// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package extract recovers a structured record from free-form model output.
// Models wrap their JSON in markdown fences, chatter, or nothing at all;
// extraction tries each wrapping in order of likelihood.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"contentstudio/internal/models"
)

// ErrEmptyResponse indicates the model returned nothing to parse.
var ErrEmptyResponse = errors.New("extract: empty response")

// ParseError reports model output that could not be parsed into the
// required record shape. The payload that was attempted and the underlying
// cause are preserved.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract: %s: %v", e.Reason, e.Err)
	}
	return "extract: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// fencedRe matches a markdown code fence, optionally tagged json, holding a
// brace-delimited payload.
var fencedRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// braceRe matches the first brace-delimited span anywhere in the text.
// Greedy so nested objects stay inside the match.
var braceRe = regexp.MustCompile(`(?s)\{.*\}`)

// requiredKeys are the fields every generated record must carry.
var requiredKeys = []string{"title", "post_text", "image_prompt"}

// Parse extracts the generated record from raw model output. It checks that
// all required keys are present but does not reject empty values — callers
// validate content separately.
func Parse(raw string) (models.GeneratedRecord, error) {
	var record models.GeneratedRecord

	if strings.TrimSpace(raw) == "" {
		return record, ErrEmptyResponse
	}

	payload := payloadFrom(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return record, &ParseError{Reason: "invalid JSON in response", Err: err}
	}

	for _, key := range requiredKeys {
		if _, ok := fields[key]; !ok {
			return record, &ParseError{Reason: fmt.Sprintf("missing required field %q", key)}
		}
	}

	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return record, &ParseError{Reason: "invalid field types in response", Err: err}
	}

	return record, nil
}

// payloadFrom picks the most likely JSON payload out of the raw text:
// a fenced code block first, then the first bare brace span, then the whole
// trimmed text.
func payloadFrom(raw string) string {
	if m := fencedRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := braceRe.FindString(raw); m != "" {
		return strings.TrimSpace(m)
	}
	return strings.TrimSpace(raw)
}
