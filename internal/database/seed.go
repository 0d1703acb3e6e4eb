package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// seedRubric mirrors the rubrics table columns that carry prompt text.
type seedRubric struct {
	name        string
	icon        string
	titlePrompt string
	postPrompt  string
	imagePrompt string
	videoPrompt string
	additional  string
}

// stockRubrics are the starter content categories installed on first run.
// Placeholders ({city}, {City}, {CITY}, {Month}, {Year}) are expanded by the
// prompt composer at generation time.
var stockRubrics = []seedRubric{
	{
		name:        "City Guide",
		icon:        "🗺️",
		titlePrompt: "Write a punchy title for a weekend guide to {City}. Max 60 characters.",
		postPrompt: "Write a social post (120-180 words) guiding travelers through a perfect day in {City}. " +
			"Cover one morning spot, one lunch pick, and one evening experience. Mention {City} by name at least twice.",
		imagePrompt: "Golden-hour street photograph of {city}, candid travelers, warm tones, shallow depth of field.",
	},
	{
		name:        "Hidden Gems",
		icon:        "💎",
		titlePrompt: "Write an intriguing title about lesser-known spots in {City}.",
		postPrompt: "Write a social post (100-160 words) revealing 3 under-the-radar places in {City} " +
			"that locals love and tourists miss. Keep the tone conspiratorial and warm.",
		imagePrompt: "Atmospheric photo of a quiet alleyway cafe in {city}, soft morning light, no crowds.",
	},
	{
		name:        "Best Prompts",
		icon:        "✨",
		titlePrompt: "Write a title introducing this week's best travel-planning prompt.",
		postPrompt: "Write a social post (80-140 words) sharing one clever prompt readers can paste into a " +
			"travel assistant to plan better trips. Show the prompt verbatim in quotes, then explain in one " +
			"sentence why it works.",
		imagePrompt: "Minimal flat-lay of a traveler's desk with a notebook and phone, clean pastel palette.",
	},
	{
		name:        "The Ask",
		icon:        "💬",
		titlePrompt: "Write a short question-style title that invites the community to share travel experiences.",
		postPrompt: "Write a conversational social post (60-110 words) asking followers one specific, " +
			"answerable question about how they travel. End with the question itself on its own line.",
		additional: "Engagement rubric, no artwork needed. Return '—' for image_prompt.",
	},
	{
		name:        "Tripo Horoscope",
		icon:        "🔮",
		titlePrompt: "Title must be exactly: Travel Horoscope: {Month}, {Year}",
		postPrompt: "Write a playful travel horoscope for {Month} {Year} covering all 12 zodiac signs. " +
			"One short sentence per sign, each pairing the sign with a travel mood or destination type.",
		imagePrompt: "Celestial illustration of zodiac constellations over a world map, deep blues and gold accents.",
	},
	{
		name:        "Occasion",
		icon:        "🎉",
		titlePrompt: "Title format: <Event name> — <City>, <event dates in {Month} {Year}>",
		postPrompt: "Write a social post (120-170 words) spotlighting one real event happening in {Month} {Year}. " +
			"Explain what makes the event worth planning a trip around and give one practical tip for attending.",
		imagePrompt: "Energetic wide shot of a city event crowd at dusk, festival lighting, documentary style.",
	},
}

// defaultToneOfVoice is the system prompt used until an operator customizes it.
const defaultToneOfVoice = `You are the content voice of Tripo, a travel-planning studio.

Voice guidelines:
- Warm, curious, and concrete. Speak to one reader, not an audience.
- Short sentences. Active verbs. No exclamation-mark pileups.
- Specific beats generic: name streets, dishes, and neighborhoods.
- Never invent prices, dates, or opening hours you are not given.
- Avoid cliches: "hidden gem" is allowed only in the Hidden Gems rubric.`

// Seed installs the stock rubrics and the default tone-of-voice setting.
// It is a no-op when rubrics already exist, so it is safe to run on every
// development start.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM rubrics").Scan(&count); err != nil {
		return fmt.Errorf("seed check rubrics: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	for _, r := range stockRubrics {
		_, err := db.Exec(`
			INSERT INTO rubrics (name, icon, title_prompt, post_prompt, image_prompt, video_prompt, additional)
			VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''))
		`, r.name, r.icon, r.titlePrompt, r.postPrompt, r.imagePrompt, r.videoPrompt, r.additional)
		if err != nil {
			return fmt.Errorf("seed insert rubric %q: %w", r.name, err)
		}
	}

	_, err := db.Exec(`
		INSERT INTO settings (key, value) VALUES ('tone_of_voice', $1)
		ON CONFLICT (key) DO NOTHING
	`, defaultToneOfVoice)
	if err != nil {
		return fmt.Errorf("seed insert tone of voice: %w", err)
	}

	slog.Info("database seeded", "rubrics", len(stockRubrics))
	return nil
}
