// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import (
	"strings"
	"testing"
)

func TestExpandPlaceholders_CityCasings(t *testing.T) {
	template := "Visit {city}, love {City}, shout {CITY}!"
	got := ExpandPlaceholders(template, "Rome", nil)
	want := "Visit Rome, love Rome, shout ROME!"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if leftover := LeftoverPlaceholders(got); leftover != nil {
		t.Errorf("leftover placeholders: %v", leftover)
	}
}

func TestExpandPlaceholders_TrimsCity(t *testing.T) {
	got := ExpandPlaceholders("{city}/{CITY}", "  İstanbul  ", nil)
	want := "İstanbul/İSTANBUL"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExpandPlaceholders_CalendarTokens(t *testing.T) {
	cal := &CalendarInfo{Month: "January", Year: 2027}
	got := ExpandPlaceholders("Travel Horoscope: {Month}, {Year}", "", cal)
	want := "Travel Horoscope: January, 2027"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExpandPlaceholders_MissingContextLeavesTokens(t *testing.T) {
	template := "A day in {City} during {Month} {Year}"

	// No city, no calendar: everything stays.
	got := ExpandPlaceholders(template, "", nil)
	if got != template {
		t.Errorf("got %q, want template unchanged", got)
	}

	leftover := LeftoverPlaceholders(got)
	if len(leftover) != 3 {
		t.Errorf("leftover = %v, want {City}, {Month} and {Year}", leftover)
	}

	// City only: calendar tokens stay behind.
	got = ExpandPlaceholders(template, "Rome", nil)
	if strings.Contains(got, "{City}") {
		t.Errorf("city token not expanded: %q", got)
	}
	if !strings.Contains(got, "{Month}") || !strings.Contains(got, "{Year}") {
		t.Errorf("calendar tokens should remain: %q", got)
	}
}

func TestExpandPlaceholders_UppercaseAppliesToValueOnly(t *testing.T) {
	// The template's own casing must not be folded.
	got := ExpandPlaceholders("lowercase {CITY} stays lowercase", "nice", nil)
	want := "lowercase NICE stays lowercase"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
