// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API surface: content generation,
// post persistence, city resolution, and rubric administration.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"contentstudio/internal/generate"
	"contentstudio/internal/models"
)

// Generator runs the content generation pipeline.
type Generator interface {
	Generate(ctx context.Context, req generate.Request) (models.GeneratedRecord, error)
}

// RubricStore is the rubric persistence surface the admin handlers use.
type RubricStore interface {
	List() ([]models.Rubric, error)
	FindByName(name string) (*models.Rubric, error)
	Create(r *models.Rubric) (*models.Rubric, error)
	Update(name string, r *models.Rubric) (*models.Rubric, error)
	DeleteByName(name string) (bool, error)
}

// PostStore is the saved-post persistence surface.
type PostStore interface {
	Insert(p *models.Post) (*models.Post, error)
	Recent(limit int) ([]models.Post, error)
	RecentByRubric(rubric string, limit int) ([]models.Post, error)
}

// Invalidator drops cached rubric data after writes.
type Invalidator interface {
	InvalidateRubric(ctx context.Context, name string)
}

// CityResolver resolves and validates city names.
type CityResolver interface {
	Search(ctx context.Context, query string) ([]models.PlaceCandidate, error)
	Validate(ctx context.Context, name string) (*models.PlaceCandidate, error)
}

// API is the handler group for all JSON endpoints.
type API struct {
	generator Generator
	rubrics   RubricStore
	posts     PostStore
	cities    CityResolver
	cache     Invalidator
}

// NewAPI wires the handler group from its collaborators.
func NewAPI(generator Generator, rubrics RubricStore, posts PostStore, cities CityResolver, cache Invalidator) *API {
	return &API{
		generator: generator,
		rubrics:   rubrics,
		posts:     posts,
		cities:    cities,
		cache:     cache,
	}
}

// Health returns a simple JSON health check response.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes a request body into v.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
