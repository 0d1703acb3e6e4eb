// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
)

// toneOfVoiceKey is the settings row holding the generation system prompt.
const toneOfVoiceKey = "tone_of_voice"

// SettingStore handles key/value application settings.
type SettingStore struct {
	db *sql.DB
}

// NewSettingStore creates a new SettingStore with the given database connection.
func NewSettingStore(db *sql.DB) *SettingStore {
	return &SettingStore{db: db}
}

// ToneOfVoice returns the tone-of-voice text used as the system prompt for
// every generation. An error is returned if the setting is missing — the
// pipeline cannot run without it.
func (s *SettingStore) ToneOfVoice() (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = $1`, toneOfVoiceKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("tone of voice setting not found")
	}
	if err != nil {
		return "", fmt.Errorf("load tone of voice: %w", err)
	}
	return value, nil
}

// UpsertToneOfVoice replaces the tone-of-voice text.
func (s *SettingStore) UpsertToneOfVoice(value string) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, toneOfVoiceKey, value)
	if err != nil {
		return fmt.Errorf("upsert tone of voice: %w", err)
	}
	return nil
}
