package handlers

import (
	"strings"
	"unicode/utf8"

	"contentstudio/internal/models"
)

// Validation limits for rubric and post fields.
const (
	maxRubricNameLen = 200
	maxPromptLen     = 10_000
	maxPostTitleLen  = 300
	maxPostTextLen   = 50_000
)

// validateRubric checks rubric inputs and returns the first error found.
func validateRubric(r *models.Rubric) string {
	if strings.TrimSpace(r.Name) == "" {
		return "Rubric name is required."
	}
	if utf8.RuneCountInString(r.Name) > maxRubricNameLen {
		return "Rubric name is too long (max 200 characters)."
	}
	for _, field := range []struct {
		label string
		value *string
	}{
		{"Title prompt", r.TitlePrompt},
		{"Post prompt", r.PostPrompt},
		{"Image prompt", r.ImagePrompt},
		{"Video prompt", r.VideoPrompt},
		{"Additional instructions", r.Additional},
	} {
		if field.value != nil && utf8.RuneCountInString(*field.value) > maxPromptLen {
			return field.label + " is too long (max 10,000 characters)."
		}
	}
	return ""
}

// validatePost checks a post save request and returns the first error found.
// The image prompt may be the no-media placeholder but must be present.
func validatePost(p *models.Post) string {
	if strings.TrimSpace(p.Rubric) == "" {
		return "Rubric is required."
	}
	if strings.TrimSpace(p.Title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(p.Title) > maxPostTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if strings.TrimSpace(p.PostText) == "" {
		return "Post text is required."
	}
	if utf8.RuneCountInString(p.PostText) > maxPostTextLen {
		return "Post text is too long (max 50,000 characters)."
	}
	if strings.TrimSpace(p.ImagePrompt) == "" {
		return "Image prompt is required."
	}
	return ""
}
