// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is an accepted generation that was persisted. Recent posts double as
// style-conditioning examples for subsequent generations in the same rubric.
type Post struct {
	ID          uuid.UUID `json:"id"`
	Rubric      string    `json:"rubric"`
	Title       string    `json:"title"`
	PostText    string    `json:"post_text"`
	ImagePrompt string    `json:"image_prompt"`
	CreatedAt   time.Time `json:"created_at"`
}
