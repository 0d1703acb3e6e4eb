// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package prompt turns a rubric template plus request context into the final
// instruction text sent to the model. Expansion is plain textual substitution;
// composition layers the rubric blocks, conditioning examples, and the
// rubric-specific calendar instructions on top.
package prompt

import (
	"strconv"
	"strings"
)

// CalendarInfo carries the month/year a calendar-bound rubric targets.
// Month is the full English month name.
type CalendarInfo struct {
	Month string
	Year  int
}

// placeholderTokens lists every token the expander knows about, used by
// LeftoverPlaceholders to detect templates that expected context the request
// did not supply.
var placeholderTokens = []string{"{city}", "{City}", "{CITY}", "{Month}", "{Year}"}

// ExpandPlaceholders substitutes city and calendar tokens in a template.
// The city is trimmed before substitution; the all-caps variant upper-cases
// the trimmed value, never the template. Tokens with no matching context
// value are left untouched.
func ExpandPlaceholders(template, city string, cal *CalendarInfo) string {
	if city = strings.TrimSpace(city); city != "" {
		template = strings.ReplaceAll(template, "{city}", city)
		template = strings.ReplaceAll(template, "{City}", city)
		template = strings.ReplaceAll(template, "{CITY}", strings.ToUpper(city))
	}
	if cal != nil {
		template = strings.ReplaceAll(template, "{Month}", cal.Month)
		template = strings.ReplaceAll(template, "{Year}", strconv.Itoa(cal.Year))
	}
	return template
}

// LeftoverPlaceholders returns the placeholder tokens still present in an
// expanded template. A non-empty result means the template expected context
// the request did not provide; callers log it as a template/request mismatch.
func LeftoverPlaceholders(s string) []string {
	var leftover []string
	for _, tok := range placeholderTokens {
		if strings.Contains(s, tok) {
			leftover = append(leftover, tok)
		}
	}
	return leftover
}
