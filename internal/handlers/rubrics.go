// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"contentstudio/internal/models"
)

// ListRubrics returns all rubrics ordered by name.
func (a *API) ListRubrics(w http.ResponseWriter, r *http.Request) {
	rubrics, err := a.rubrics.List()
	if err != nil {
		slog.Error("list rubrics failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load rubrics.")
		return
	}

	if rubrics == nil {
		rubrics = []models.Rubric{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"rubrics": rubrics})
}

// GetRubric returns one rubric by name.
func (a *API) GetRubric(w http.ResponseWriter, r *http.Request) {
	name := rubricName(r)

	rubric, err := a.rubrics.FindByName(name)
	if err != nil {
		slog.Error("get rubric failed", "rubric", name, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load rubric.")
		return
	}
	if rubric == nil {
		writeError(w, http.StatusNotFound, "Rubric not found: "+name+".")
		return
	}

	writeJSON(w, http.StatusOK, rubric)
}

// CreateRubric adds a new rubric. Names are unique; a duplicate is a 409.
func (a *API) CreateRubric(w http.ResponseWriter, r *http.Request) {
	var rubric models.Rubric
	if err := decodeJSON(r, &rubric); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	rubric.Name = strings.TrimSpace(rubric.Name)
	if msg := validateRubric(&rubric); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	existing, err := a.rubrics.FindByName(rubric.Name)
	if err != nil {
		slog.Error("create rubric lookup failed", "rubric", rubric.Name, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create rubric.")
		return
	}
	if existing != nil {
		writeError(w, http.StatusConflict, "A rubric named "+rubric.Name+" already exists.")
		return
	}

	created, err := a.rubrics.Create(&rubric)
	if err != nil {
		slog.Error("create rubric failed", "rubric", rubric.Name, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create rubric.")
		return
	}

	a.cache.InvalidateRubric(r.Context(), created.Name)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateRubric replaces a rubric's fields, keyed by its current name.
// Both the old and the new name are invalidated in the cache, since a
// rename leaves entries behind under the old key.
func (a *API) UpdateRubric(w http.ResponseWriter, r *http.Request) {
	name := rubricName(r)

	var rubric models.Rubric
	if err := decodeJSON(r, &rubric); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	rubric.Name = strings.TrimSpace(rubric.Name)
	if rubric.Name == "" {
		rubric.Name = name
	}
	if msg := validateRubric(&rubric); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if rubric.Name != name {
		existing, err := a.rubrics.FindByName(rubric.Name)
		if err != nil {
			slog.Error("update rubric lookup failed", "rubric", rubric.Name, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to update rubric.")
			return
		}
		if existing != nil {
			writeError(w, http.StatusConflict, "A rubric named "+rubric.Name+" already exists.")
			return
		}
	}

	updated, err := a.rubrics.Update(name, &rubric)
	if err != nil {
		slog.Error("update rubric failed", "rubric", name, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update rubric.")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "Rubric not found: "+name+".")
		return
	}

	a.cache.InvalidateRubric(r.Context(), name)
	if updated.Name != name {
		a.cache.InvalidateRubric(r.Context(), updated.Name)
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteRubric removes a rubric and its cached entries.
func (a *API) DeleteRubric(w http.ResponseWriter, r *http.Request) {
	name := rubricName(r)

	deleted, err := a.rubrics.DeleteByName(name)
	if err != nil {
		slog.Error("delete rubric failed", "rubric", name, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete rubric.")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Rubric not found: "+name+".")
		return
	}

	a.cache.InvalidateRubric(r.Context(), name)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// rubricName extracts the rubric name path parameter. Rubric names contain
// spaces, so the segment arrives percent-encoded.
func rubricName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
