// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package geo resolves partial city queries into ranked real-world city
// candidates using the Nominatim geocoding API.
package geo

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// userAgent identifies the studio to Nominatim, which rejects anonymous
// clients.
const userAgent = "Tripo Content Studio"

// requestTimeout bounds every geocoding call. Autocomplete traffic cannot
// afford to wait longer.
const requestTimeout = 5 * time.Second

// Result is one raw place record from the Nominatim search endpoint.
type Result struct {
	Address     map[string]string `json:"address"`
	DisplayName string            `json:"display_name"`
	Class       string            `json:"class"`
	Type        string            `json:"type"`
	Importance  float64           `json:"importance"`
}

// Client is a thin Nominatim search client.
type Client struct {
	http *resty.Client
}

// NewClient creates a Nominatim client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(requestTimeout).
			SetHeader("User-Agent", userAgent),
	}
}

// Search performs a GET /search with the given query parameters and decodes
// the place records.
func (c *Client) Search(ctx context.Context, params map[string]string) ([]Result, error) {
	var results []Result
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&results).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("nominatim search: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("nominatim search: status %d: %s", resp.StatusCode(), resp.String())
	}
	return results, nil
}
