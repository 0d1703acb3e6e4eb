// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"contentstudio/internal/models"
)

// CitySearch resolves a partial query to ranked city candidates.
func (a *API) CitySearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	cities, err := a.cities.Search(r.Context(), query)
	if err != nil {
		slog.Error("city search failed", "query", query, "error", err)
		writeError(w, http.StatusInternalServerError, "City search failed.")
		return
	}

	if cities == nil {
		cities = []models.PlaceCandidate{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"cities": cities})
}

// CityValidate checks that a submitted city name resolves to a real city.
func (a *API) CityValidate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		City string `json:"city"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	city := strings.TrimSpace(req.City)
	if city == "" {
		writeError(w, http.StatusBadRequest, "City is required.")
		return
	}

	match, err := a.cities.Validate(r.Context(), city)
	if err != nil {
		slog.Error("city validate failed", "city", city, "error", err)
		writeError(w, http.StatusInternalServerError, "City validation failed.")
		return
	}
	if match == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"valid": false,
			"error": "City not found: " + city + ".",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"valid":   true,
		"city":    match.Name,
		"country": match.Country,
		"display": match.Display,
	})
}
