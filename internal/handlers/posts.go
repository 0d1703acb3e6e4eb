// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"contentstudio/internal/models"
)

const (
	defaultPostLimit = 20
	maxPostLimit     = 100
)

// SavePost persists an accepted generation as a post. Saved posts become
// conditioning examples, so the rubric's example cache is invalidated.
func (a *API) SavePost(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := decodeJSON(r, &post); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	if msg := validatePost(&post); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	saved, err := a.posts.Insert(&post)
	if err != nil {
		slog.Error("save post failed", "rubric", post.Rubric, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save post.")
		return
	}

	a.cache.InvalidateRubric(r.Context(), saved.Rubric)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      saved.ID.String(),
	})
}

// ListPosts returns recent posts, newest first, optionally filtered by rubric.
func (a *API) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit := defaultPostLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "Invalid limit.")
			return
		}
		if n > maxPostLimit {
			n = maxPostLimit
		}
		limit = n
	}

	var posts []models.Post
	var err error
	if rubric := strings.TrimSpace(r.URL.Query().Get("rubric")); rubric != "" {
		posts, err = a.posts.RecentByRubric(rubric, limit)
	} else {
		posts, err = a.posts.Recent(limit)
	}
	if err != nil {
		slog.Error("list posts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load posts.")
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}
