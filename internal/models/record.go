// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "fmt"

// GeneratedRecord is the structured output recovered from a model response.
// Title, PostText and ImagePrompt come from the model; Rubric and PromptType
// are attached by the generation pipeline before the record is returned.
type GeneratedRecord struct {
	Title       string     `json:"title"`
	PostText    string     `json:"post_text"`
	ImagePrompt string     `json:"image_prompt"`
	Rubric      string     `json:"rubric,omitempty"`
	PromptType  PromptType `json:"prompt_type,omitempty"`
}

// Validate checks that all three model-supplied fields are non-empty.
// Extraction only guarantees key presence; the pipeline calls this before
// handing the record to the caller.
func (g *GeneratedRecord) Validate() error {
	if g.Title == "" {
		return fmt.Errorf("generated record: empty title")
	}
	if g.PostText == "" {
		return fmt.Errorf("generated record: empty post_text")
	}
	if g.ImagePrompt == "" {
		return fmt.Errorf("generated record: empty image_prompt")
	}
	return nil
}
