// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package geo

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"contentstudio/internal/models"
)

// maxCandidates caps how many ranked candidates a search returns.
const maxCandidates = 5

// turkishFold maps Turkish-alphabet characters to their plain Latin
// equivalents. "i̇" (i + combining dot) is what İ lower-cases to in Go.
var turkishFold = strings.NewReplacer(
	"ı", "i", "i̇", "i", "ş", "s", "ğ", "g", "ü", "u", "ö", "o", "ç", "c",
)

// normalize lower-cases and diacritic-folds a name for comparison.
func normalize(s string) string {
	return turkishFold.Replace(strings.ToLower(s))
}

// nonPlaceClasses are Nominatim feature classes that are clearly not cities.
var nonPlaceClasses = map[string]bool{
	"highway":  true,
	"building": true,
	"amenity":  true,
	"shop":     true,
	"leisure":  true,
}

// addressCityFields are checked in priority order when deriving a city name
// from a result's address.
var addressCityFields = []string{"city", "town", "village", "municipality", "county", "state_district"}

// broadAddressCityFields is the shorter priority list the broadened
// fallback pass uses.
var broadAddressCityFields = []string{"city", "town", "village", "municipality"}

// scored pairs a candidate with its transient relevance score.
type scored struct {
	candidate models.PlaceCandidate
	relevance float64
}

// Resolver ranks Nominatim results against a partial city query.
type Resolver struct {
	client *Client
}

// NewResolver creates a Resolver backed by the given client.
func NewResolver(client *Client) *Resolver {
	return &Resolver{client: client}
}

// Search resolves a partial query to at most 5 ranked, deduplicated city
// candidates. Queries under 2 characters return an empty result without an
// outbound call. When the strict pass finds nothing and the query is at
// least 3 characters long, a single broadened pass runs with looser
// filtering and a simpler scoring policy.
func (r *Resolver) Search(ctx context.Context, query string) ([]models.PlaceCandidate, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < 2 {
		return nil, nil
	}

	results, err := r.client.Search(ctx, map[string]string{
		"q":              query,
		"format":         "json",
		"limit":          "20",
		"addressdetails": "1",
		"dedupe":         "1",
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	candidates := r.strictPass(results, query, seen)

	if len(candidates) == 0 && utf8.RuneCountInString(query) >= 3 {
		slog.Debug("strict city search empty, broadening", "query", query)
		broadResults, err := r.client.Search(ctx, map[string]string{
			"q":              query,
			"format":         "json",
			"limit":          "15",
			"addressdetails": "1",
			"dedupe":         "1",
		})
		if err != nil {
			// The strict pass already succeeded at the transport level;
			// a failed broadening degrades to an empty result.
			slog.Warn("broadened city search failed", "query", query, "error", err)
		} else {
			candidates = r.broadPass(broadResults, query, seen)
		}
	}

	sortCandidates(candidates)
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	out := make([]models.PlaceCandidate, 0, len(candidates))
	for _, s := range candidates {
		out = append(out, s.candidate)
	}
	return out, nil
}

// strictPass filters and scores results with diacritic-folded matching.
// Starts-with matches dominate contains matches; within each band,
// provider importance raises and name length lowers the score.
func (r *Resolver) strictPass(results []Result, query string, seen map[string]bool) []scored {
	queryNorm := normalize(query)
	var candidates []scored

	for _, res := range results {
		if nonPlaceClasses[res.Class] {
			continue
		}

		cityName := cityNameFrom(res, addressCityFields, true)
		if cityName == "" {
			continue
		}

		nameNorm := normalize(cityName)
		startsWith := strings.HasPrefix(nameNorm, queryNorm)
		contains := strings.Contains(nameNorm, queryNorm)
		if !startsWith && !contains {
			continue
		}

		country := res.Address["country"]
		if !markSeen(seen, cityName, country) {
			continue
		}

		nameLen := float64(utf8.RuneCountInString(cityName))
		var relevance float64
		if startsWith {
			relevance = 10000 + res.Importance*100 - nameLen
		} else {
			pos := float64(utf8.RuneCountInString(nameNorm[:strings.Index(nameNorm, queryNorm)]))
			relevance = 5000 + res.Importance*50 - pos - nameLen*0.1
		}

		candidates = append(candidates, scored{
			candidate: makeCandidate(cityName, country),
			relevance: relevance,
		})
	}
	return candidates
}

// broadPass is the fallback policy: no class filtering, plain lower-case
// containment, and a binary starts-with/contains score with no position or
// length terms. Kept deliberately distinct from the strict formula — the
// looser ranking is acceptable when the strict pass found nothing at all.
func (r *Resolver) broadPass(results []Result, query string, seen map[string]bool) []scored {
	queryLower := strings.ToLower(query)
	var candidates []scored

	for _, res := range results {
		cityName := cityNameFrom(res, broadAddressCityFields, false)
		if cityName == "" {
			continue
		}

		nameLower := strings.ToLower(cityName)
		if !strings.Contains(nameLower, queryLower) {
			continue
		}

		country := res.Address["country"]
		if !markSeen(seen, cityName, country) {
			continue
		}

		var relevance float64
		if strings.HasPrefix(nameLower, queryLower) {
			relevance = 10000 + res.Importance*100
		} else {
			relevance = 5000 + res.Importance*50
		}

		candidates = append(candidates, scored{
			candidate: makeCandidate(cityName, country),
			relevance: relevance,
		})
	}
	return candidates
}

// Validate checks that a city name resolves to a real city. A match
// requires the resolved name and the input to contain each other in either
// direction, case-insensitively. Returns nil when no match is found.
func (r *Resolver) Validate(ctx context.Context, name string) (*models.PlaceCandidate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	results, err := r.client.Search(ctx, map[string]string{
		"q":              name,
		"format":         "json",
		"limit":          "1",
		"addressdetails": "1",
		"featuretype":    "city",
	})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	found := firstAddressField(results[0], broadAddressCityFields)
	if found == "" {
		return nil, nil
	}

	foundLower, nameLower := strings.ToLower(found), strings.ToLower(name)
	if !strings.Contains(foundLower, nameLower) && !strings.Contains(nameLower, foundLower) {
		return nil, nil
	}

	c := makeCandidate(found, results[0].Address["country"])
	return &c, nil
}

// cityNameFrom derives a city name from a result. Address fields are
// checked in priority order; failing that, the first comma-delimited
// segment of the display name is used. The strict pass additionally strips
// a trailing " Province" suffix and applies a length sanity bound.
func cityNameFrom(res Result, fields []string, strict bool) string {
	if name := firstAddressField(res, fields); name != "" {
		return name
	}

	if res.DisplayName == "" {
		return ""
	}
	segment, _, _ := strings.Cut(res.DisplayName, ",")
	segment = strings.TrimSpace(segment)

	if strict {
		segment = strings.TrimSpace(strings.TrimSuffix(segment, " Province"))
		if n := utf8.RuneCountInString(segment); n < 2 || n >= 50 {
			return ""
		}
	}
	return segment
}

// firstAddressField returns the first non-empty address field in priority order.
func firstAddressField(res Result, fields []string) string {
	for _, f := range fields {
		if v := res.Address[f]; v != "" {
			return v
		}
	}
	return ""
}

// markSeen records the candidate's dedupe key and reports whether it was new.
func markSeen(seen map[string]bool, name, country string) bool {
	key := strings.ToLower(name + "_" + country)
	if seen[key] {
		return false
	}
	seen[key] = true
	return true
}

// makeCandidate builds the wire candidate with its display label.
func makeCandidate(name, country string) models.PlaceCandidate {
	display := name
	if country != "" {
		display = name + ", " + country
	}
	return models.PlaceCandidate{Name: name, Display: display, Country: country}
}

// sortCandidates orders by descending relevance, ties broken by ascending
// lower-cased name.
func sortCandidates(candidates []scored) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].relevance != candidates[j].relevance {
			return candidates[i].relevance > candidates[j].relevance
		}
		return strings.ToLower(candidates[i].candidate.Name) < strings.ToLower(candidates[j].candidate.Name)
	})
}
