// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generate orchestrates a content generation request end to end:
// rubric lookup, example conditioning, prompt composition, the model call,
// and structured extraction of the response.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"contentstudio/internal/ai"
	"contentstudio/internal/extract"
	"contentstudio/internal/models"
	"contentstudio/internal/prompt"
)

// exampleLimit is how many recent posts condition each generation.
const exampleLimit = 3

// ErrUnknownRubric indicates the requested rubric does not exist.
var ErrUnknownRubric = errors.New("generate: unknown rubric")

// ErrCityRequired indicates the rubric needs a city and none was given.
var ErrCityRequired = errors.New("generate: city is required for this rubric")

// RubricReader supplies rubric templates and recent example posts. Served
// by the rubric cache in production.
type RubricReader interface {
	Rubric(ctx context.Context, name string) (*models.Rubric, error)
	RecentExamples(ctx context.Context, rubric string, limit int) ([]models.Post, error)
}

// ToneSource supplies the tone-of-voice system prompt.
type ToneSource interface {
	ToneOfVoice() (string, error)
}

// Request is one generation request. City is required for city-scoped
// rubrics. PreviousTitle carries the title of a just-rejected attempt so
// the occasion rubric can steer away from it.
type Request struct {
	Rubric        string `json:"rubric"`
	City          string `json:"city"`
	PreviousTitle string `json:"previous_title"`
}

// Service runs the generation pipeline.
type Service struct {
	rubrics  RubricReader
	tone     ToneSource
	provider ai.Provider
	composer *prompt.Composer
}

// NewService wires a generation service from its collaborators.
func NewService(rubrics RubricReader, tone ToneSource, provider ai.Provider, composer *prompt.Composer) *Service {
	return &Service{rubrics: rubrics, tone: tone, provider: provider, composer: composer}
}

// Generate runs one request through the pipeline and returns the extracted
// record with its rubric name and prompt type attached.
func (s *Service) Generate(ctx context.Context, req Request) (models.GeneratedRecord, error) {
	var zero models.GeneratedRecord

	rubric, err := s.rubrics.Rubric(ctx, req.Rubric)
	if err != nil {
		return zero, fmt.Errorf("load rubric %q: %w", req.Rubric, err)
	}
	if rubric == nil {
		return zero, fmt.Errorf("%w: %q", ErrUnknownRubric, req.Rubric)
	}
	if rubric.RequiresCity() && req.City == "" {
		return zero, fmt.Errorf("%w: %q", ErrCityRequired, rubric.Name)
	}

	// Missing examples degrade the output quality, not the request: the
	// composer falls back to rubric-only instructions.
	examples, err := s.rubrics.RecentExamples(ctx, rubric.Name, exampleLimit)
	if err != nil {
		slog.Warn("loading examples failed, generating without conditioning",
			"rubric", rubric.Name, "error", err)
		examples = nil
	}

	tone, err := s.tone.ToneOfVoice()
	if err != nil {
		return zero, fmt.Errorf("load tone of voice: %w", err)
	}

	userPrompt, err := s.composer.Compose(rubric, examples, req.City, req.PreviousTitle)
	if err != nil {
		return zero, err
	}

	slog.Info("invoking model",
		"rubric", rubric.Name, "city", req.City, "provider", s.provider.Name(),
		"examples", len(examples))

	raw, err := s.provider.Generate(ctx, tone, userPrompt)
	if err != nil {
		return zero, err
	}

	record, err := extract.Parse(raw)
	if err != nil {
		return zero, err
	}
	if err := record.Validate(); err != nil {
		return zero, err
	}

	record.Rubric = rubric.Name
	record.PromptType = rubric.PromptType()
	return record, nil
}
