// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"contentstudio/internal/ai"
	"contentstudio/internal/extract"
	"contentstudio/internal/generate"
)

// Generate runs one content generation request through the pipeline and
// returns the extracted record as JSON.
func (a *API) Generate(w http.ResponseWriter, r *http.Request) {
	var req generate.Request
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	req.Rubric = strings.TrimSpace(req.Rubric)
	req.City = strings.TrimSpace(req.City)
	if req.Rubric == "" {
		writeError(w, http.StatusBadRequest, "Rubric is required.")
		return
	}

	record, err := a.generator.Generate(r.Context(), req)
	if err != nil {
		a.writeGenerateError(w, r, req.Rubric, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// writeGenerateError maps pipeline errors to HTTP statuses. Anything the
// caller can fix is a 400; everything else is a 500 with a message that
// does not leak backend internals.
func (a *API) writeGenerateError(w http.ResponseWriter, r *http.Request, rubric string, err error) {
	switch {
	case errors.Is(err, generate.ErrUnknownRubric):
		writeError(w, http.StatusBadRequest, "Unknown rubric: "+rubric+".")
	case errors.Is(err, generate.ErrCityRequired):
		writeError(w, http.StatusBadRequest, "This rubric requires a city.")
	case errors.Is(err, ai.ErrNoAPIKey):
		slog.Error("generate failed: backend not configured", "rubric", rubric)
		writeError(w, http.StatusInternalServerError, "Generation backend is not configured.")
	default:
		var te *ai.TransportError
		var pe *ai.ProtocolError
		var xe *extract.ParseError
		switch {
		case errors.As(err, &te):
			slog.Error("generate failed: backend request", "rubric", rubric, "status", te.Status, "error", err)
			writeError(w, http.StatusInternalServerError, "Generation request failed. Try again.")
		case errors.As(err, &pe), errors.As(err, &xe), errors.Is(err, extract.ErrEmptyResponse):
			slog.Error("generate failed: unusable model output", "rubric", rubric, "error", err)
			writeError(w, http.StatusInternalServerError, "The model returned an unusable response. Try again.")
		default:
			slog.Error("generate failed", "rubric", rubric, "error", err)
			writeError(w, http.StatusInternalServerError, "Generation failed.")
		}
	}
}
