package database

import (
	"testing"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed only inserts when the rubrics table is empty, so calling it
	// twice must not error or duplicate rows.
	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var rubricCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM rubrics").Scan(&rubricCount); err != nil {
		t.Fatalf("count rubrics: %v", err)
	}
	if rubricCount < len(stockRubrics) {
		t.Errorf("expected at least %d rubrics, got %d", len(stockRubrics), rubricCount)
	}

	var tov string
	if err := db.QueryRow("SELECT value FROM settings WHERE key = 'tone_of_voice'").Scan(&tov); err != nil {
		t.Fatalf("read tone of voice: %v", err)
	}
	if tov == "" {
		t.Error("tone_of_voice setting is empty after seeding")
	}
}
