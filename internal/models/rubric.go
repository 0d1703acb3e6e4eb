// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the domain types shared across the content studio:
// rubrics (authoring templates), saved posts, generated records, and
// geocoded place candidates.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PromptType classifies the media prompt a rubric produces.
type PromptType string

const (
	PromptTypeImage PromptType = "image"
	PromptTypeVideo PromptType = "video"
	PromptTypeNone  PromptType = "none"
)

// noMediaMarker is the phrase a rubric's additional instructions must contain
// for the rubric to resolve to a no-media output type.
const noMediaMarker = "Return '—' for image_prompt"

// Rubric is a content category with its authoring prompt templates.
// Optional fields are pointers so the store can distinguish "absent" from
// "empty" the same way the rubrics table does.
type Rubric struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Icon        *string   `json:"icon,omitempty"`
	TitlePrompt *string   `json:"title_prompt,omitempty"`
	PostPrompt  *string   `json:"post_prompt,omitempty"`
	ImagePrompt *string   `json:"image_prompt,omitempty"`
	VideoPrompt *string   `json:"video_prompt,omitempty"`
	Additional  *string   `json:"additional,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PromptType resolves the media type of the rubric's output. A video prompt
// always wins; a rubric with neither media prompt is image-typed unless its
// additional instructions explicitly declare a no-media output.
func (r *Rubric) PromptType() PromptType {
	if r.VideoPrompt != nil && *r.VideoPrompt != "" {
		return PromptTypeVideo
	}
	if r.Additional != nil && strings.Contains(*r.Additional, noMediaMarker) {
		return PromptTypeNone
	}
	return PromptTypeImage
}

// rubricsWithoutCity names the rubrics that generate city-independent content.
var rubricsWithoutCity = map[string]bool{
	"Best Prompts":    true,
	"The Ask":         true,
	"Tripo Horoscope": true,
	"Occasion":        true,
}

// calendarBoundRubrics names the rubrics whose content targets the upcoming
// calendar month and therefore needs month/year context at compose time.
var calendarBoundRubrics = map[string]bool{
	"Tripo Horoscope": true,
	"Occasion":        true,
}

// RequiresCity reports whether generation requests for this rubric must
// carry a city.
func (r *Rubric) RequiresCity() bool {
	return !rubricsWithoutCity[r.Name]
}

// CalendarBound reports whether this rubric's content is tied to the next
// calendar month.
func (r *Rubric) CalendarBound() bool {
	return calendarBoundRubrics[r.Name]
}
