// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"contentstudio/internal/models"
)

// knownCities is the fixed city rotation for the occasion rubric.
var knownCities = []string{"Istanbul", "Barcelona", "New York", "San Francisco"}

// eventCategories are the occasion event types the diversity instruction
// rotates through.
var eventCategories = []string{
	"art exhibition", "music festival", "sporting event", "cultural festival",
	"conference", "holiday celebration", "food festival", "film festival",
	"design week", "fashion week",
}

// eventNameSeparator splits "<Event name> — <City, dates>" occasion titles.
const eventNameSeparator = "—"

// exampleDivider visually separates conditioning examples in the prompt.
var exampleDivider = strings.Repeat("=", 60)

// Composer assembles the user prompt for a generation request. The clock and
// randomness source are injectable so the calendar math and the occasion
// diversity instruction are reproducible in tests.
type Composer struct {
	now func() time.Time
	rng *rand.Rand
}

// NewComposer creates a Composer using the real clock and a time-seeded
// randomness source.
func NewComposer() *Composer {
	return &Composer{
		now: time.Now,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewComposerWith creates a Composer with an explicit clock and randomness
// source. Intended for tests.
func NewComposerWith(now func() time.Time, rng *rand.Rand) *Composer {
	return &Composer{now: now, rng: rng}
}

// Compose builds the full user prompt for the rubric with the given
// conditioning examples and request context. city and previousTitle may be
// empty. The output is deterministic given the Composer's clock and
// randomness source.
func (c *Composer) Compose(rubric *models.Rubric, examples []models.Post, city, previousTitle string) (string, error) {
	if rubric == nil {
		return "", fmt.Errorf("compose: rubric is nil")
	}

	city = strings.TrimSpace(city)

	// Calendar-bound rubrics always target the month after the current one.
	var cal *CalendarInfo
	if rubric.CalendarBound() {
		cal = nextMonth(c.now().UTC())
		slog.Info("composing calendar-bound rubric",
			"rubric", rubric.Name, "month", cal.Month, "year", cal.Year)
	}

	rubricPrompt := c.rubricBlock(rubric, city, cal)

	if leftover := LeftoverPlaceholders(rubricPrompt); leftover != nil {
		slog.Warn("placeholders left unexpanded in rubric prompt",
			"rubric", rubric.Name, "placeholders", leftover)
	}

	examplesText := examplesBlock(examples)

	var cityInfo, cityInstruction string
	if city != "" {
		cityInfo = fmt.Sprintf("\n\nCRITICAL: You MUST generate content specifically for the city: %s. "+
			"All references to cities in your generated content must use '%s' as the city name. "+
			"Do not use placeholder names or example cities - use '%s' throughout.\n", city, city, city)
		cityInstruction = fmt.Sprintf(" Use the specified city name (%s) in your generated content.", city)
	}

	var calendarInstruction string
	if cal != nil {
		switch rubric.Name {
		case "Tripo Horoscope":
			calendarInstruction = horoscopeInstruction(cal)
		case "Occasion":
			calendarInstruction = c.occasionInstruction(cal, examples, previousTitle)
		}
	}

	instructionText := "Generate new content following the rubric prompt instructions above."
	if len(examples) > 0 {
		instructionText = "Generate new content following the same style, tone, and format as the examples."
	}

	return fmt.Sprintf(`You are generating content for the %q rubric.%s%s
RUBRIC PROMPT:
%s%s

%s%s Return ONLY valid JSON with these fields:
{
  "title": "...",
  "post_text": "...",
  "image_prompt": "..."
}`, rubric.Name, cityInfo, calendarInstruction, rubricPrompt, examplesText, instructionText, cityInstruction), nil
}

// nextMonth computes the month after t, wrapping December into January of
// the following year.
func nextMonth(t time.Time) *CalendarInfo {
	month, year := t.Month(), t.Year()
	if month == time.December {
		return &CalendarInfo{Month: time.January.String(), Year: year + 1}
	}
	return &CalendarInfo{Month: (month + 1).String(), Year: year}
}

// rubricBlock renders the labeled template sections in their fixed order.
// Video and image prompts are mutually exclusive; video wins when both exist.
func (c *Composer) rubricBlock(rubric *models.Rubric, city string, cal *CalendarInfo) string {
	var parts []string

	if rubric.TitlePrompt != nil {
		parts = append(parts, "TITLE PROMPT:\n"+ExpandPlaceholders(*rubric.TitlePrompt, city, cal))
	}
	if rubric.PostPrompt != nil {
		parts = append(parts, "\nPOST PROMPT:\n"+ExpandPlaceholders(*rubric.PostPrompt, city, cal))
	}
	if rubric.VideoPrompt != nil {
		parts = append(parts, "\nVIDEO PROMPT:\n"+ExpandPlaceholders(*rubric.VideoPrompt, city, cal))
	} else if rubric.ImagePrompt != nil {
		parts = append(parts, "\nIMAGE PROMPT:\n"+ExpandPlaceholders(*rubric.ImagePrompt, city, cal))
	}
	if rubric.Additional != nil {
		parts = append(parts, "\nADDITIONAL:\n"+ExpandPlaceholders(*rubric.Additional, city, cal))
	}

	return strings.Join(parts, "\n")
}

// examplesBlock renders the conditioning examples, or nothing when there
// are none.
func examplesBlock(examples []models.Post) string {
	if len(examples) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n\nEXAMPLES FROM THIS RUBRIC:\n")
	for i, ex := range examples {
		fmt.Fprintf(&sb, "\n--- Example %d ---\n", i+1)
		fmt.Fprintf(&sb, "Title: %s\n\n", ex.Title)
		fmt.Fprintf(&sb, "Post Text:\n%s\n\n", ex.PostText)
		fmt.Fprintf(&sb, "Image Prompt: %s\n", ex.ImagePrompt)
		sb.WriteString("\n" + exampleDivider + "\n")
	}
	return sb.String()
}

// horoscopeInstruction pins the title to the exact target month/year literal.
func horoscopeInstruction(cal *CalendarInfo) string {
	return fmt.Sprintf("\n\nCRITICAL FOR TRIPO HOROSCOPE: The title MUST use EXACTLY '%s, %d'. "+
		"Do NOT use any other month or year. The title must be: 'Travel Horoscope: %s, %d'. "+
		"This is the NEXT month after the current month.\n", cal.Month, cal.Year, cal.Month, cal.Year)
}

// occasionInstruction builds the anti-repetition directive for the occasion
// rubric: it names the events already used, picks a preferred city outside
// the recently-used set, and picks a preferred event category.
func (c *Composer) occasionInstruction(cal *CalendarInfo, examples []models.Post, previousTitle string) string {
	var recentEvents, recentCities []string

	for _, ex := range examples {
		if ex.Title == "" {
			continue
		}
		recentEvents = append(recentEvents, eventName(ex.Title))
		if city := mentionedCity(ex.Title, ex.PostText); city != "" {
			recentCities = append(recentCities, city)
		}
	}

	// The most recent rejected attempt is the most important one to avoid.
	if previousTitle != "" {
		recentEvents = append([]string{eventName(previousTitle)}, recentEvents...)
		if city := mentionedCity(previousTitle, ""); city != "" {
			recentCities = append([]string{city}, recentCities...)
		}
	}

	available := excludeCities(knownCities, recentCities)
	if len(available) == 0 {
		available = knownCities
	}
	preferredCity := available[c.rng.Intn(len(available))]
	preferredCategory := eventCategories[c.rng.Intn(len(eventCategories))]

	var diversity strings.Builder
	diversity.WriteString("\n\nCRITICAL DIVERSITY REQUIREMENT: You MUST choose a DIFFERENT event than any shown in the examples. ")
	if len(recentEvents) > 0 {
		avoid := recentEvents
		if len(avoid) > 3 {
			avoid = avoid[:3]
		}
		fmt.Fprintf(&diversity, "DO NOT use: %s. ", strings.Join(avoid, ", "))
	}
	fmt.Fprintf(&diversity, "STRONGLY PREFER: an event in %s (or another city if %s has no suitable events). ",
		preferredCity, preferredCity)
	fmt.Fprintf(&diversity, "STRONGLY PREFER event type: %s (or similar). ", preferredCategory)
	diversity.WriteString("Rotate between all 4 cities. Vary event types significantly. " +
		"If you see 'Mobile World Congress' or 'conference' in examples, choose a festival, exhibition, " +
		"or sporting event instead. Be creative and diverse.\n")

	return fmt.Sprintf("\n\nCRITICAL FOR OCCASION: You MUST find a significant event happening in %s %d "+
		"in one of the 4 cities (%s). The event dates in the title MUST be in %s %d. "+
		"Do NOT use events from other months. Focus on major events: F1/sporting events, concerts, "+
		"music festivals, art exhibitions, cultural events, conferences, holiday celebrations happening "+
		"specifically in %s %d.%s",
		cal.Month, cal.Year, strings.Join(knownCities, ", "), cal.Month, cal.Year,
		cal.Month, cal.Year, diversity.String())
}

// eventName extracts the event part of an occasion title: the text before
// the em-dash separator, or the whole title when there is none.
func eventName(title string) string {
	if before, _, found := strings.Cut(title, eventNameSeparator); found {
		return strings.TrimSpace(before)
	}
	return strings.TrimSpace(title)
}

// mentionedCity returns the first known city named in the title or body.
func mentionedCity(title, body string) string {
	for _, city := range knownCities {
		if strings.Contains(title, city) || strings.Contains(body, city) {
			return city
		}
	}
	return ""
}

// excludeCities filters out recently-used cities, preserving rotation order.
func excludeCities(all, used []string) []string {
	var out []string
	for _, city := range all {
		skip := false
		for _, u := range used {
			if city == u {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, city)
		}
	}
	return out
}
