// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"
	"time"

	"contentstudio/internal/models"
)

func strPtr(s string) *string { return &s }

func TestRubricStoreCRUD(t *testing.T) {
	db := testDB(t)
	s := NewRubricStore(db)

	name := "Test Rubric " + time.Now().Format("20060102150405.000")
	created, err := s.Create(&models.Rubric{
		Name:        name,
		Icon:        strPtr("🧪"),
		TitlePrompt: strPtr("Write a title about {City}."),
		PostPrompt:  strPtr("Write a post about {city}."),
		ImagePrompt: strPtr("A photo of {city}."),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { s.DeleteByName(created.Name) })

	if created.Name != name {
		t.Errorf("created name = %q, want %q", created.Name, name)
	}
	if created.VideoPrompt != nil {
		t.Errorf("created video prompt = %v, want nil", *created.VideoPrompt)
	}

	found, err := s.FindByName(name)
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if found == nil {
		t.Fatal("FindByName: rubric not found after create")
	}
	if found.TitlePrompt == nil || *found.TitlePrompt != "Write a title about {City}." {
		t.Errorf("title prompt = %v, want original", found.TitlePrompt)
	}

	// Rename and change a field.
	newName := name + " v2"
	updated, err := s.Update(name, &models.Rubric{
		Name:       newName,
		PostPrompt: strPtr("Changed."),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil {
		t.Fatal("Update: returned nil for existing rubric")
	}
	t.Cleanup(func() { s.DeleteByName(newName) })
	if updated.Name != newName {
		t.Errorf("updated name = %q, want %q", updated.Name, newName)
	}
	if updated.TitlePrompt != nil {
		t.Errorf("updated title prompt = %v, want nil (field cleared)", *updated.TitlePrompt)
	}

	// Old name must be gone.
	gone, err := s.FindByName(name)
	if err != nil {
		t.Fatalf("FindByName after rename: %v", err)
	}
	if gone != nil {
		t.Errorf("rubric still found under old name %q", name)
	}

	deleted, err := s.DeleteByName(newName)
	if err != nil {
		t.Fatalf("DeleteByName: %v", err)
	}
	if !deleted {
		t.Error("DeleteByName: expected true for existing rubric")
	}
}

func TestRubricStoreFindMissing(t *testing.T) {
	db := testDB(t)
	s := NewRubricStore(db)

	r, err := s.FindByName("definitely-not-a-rubric")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if r != nil {
		t.Errorf("FindByName: got %+v, want nil", r)
	}

	ok, err := s.DeleteByName("definitely-not-a-rubric")
	if err != nil {
		t.Fatalf("DeleteByName: %v", err)
	}
	if ok {
		t.Error("DeleteByName: expected false for missing rubric")
	}

	updated, err := s.Update("definitely-not-a-rubric", &models.Rubric{Name: "x"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated != nil {
		t.Errorf("Update: got %+v, want nil", updated)
	}
}

func TestPostStoreInsertAndRecent(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)

	rubric := "Post Test " + time.Now().Format("20060102150405.000")
	for i, title := range []string{"first", "second", "third"} {
		_, err := s.Insert(&models.Post{
			Rubric:      rubric,
			Title:       title,
			PostText:    "body",
			ImagePrompt: "prompt",
		})
		if err != nil {
			t.Fatalf("Insert #%d: %v", i, err)
		}
		// Distinct created_at values so recency ordering is deterministic.
		time.Sleep(5 * time.Millisecond)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM posts WHERE rubric = $1", rubric) })

	recent, err := s.RecentByRubric(rubric, 2)
	if err != nil {
		t.Fatalf("RecentByRubric: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("RecentByRubric: got %d posts, want 2", len(recent))
	}
	if recent[0].Title != "third" || recent[1].Title != "second" {
		t.Errorf("RecentByRubric order = [%s, %s], want [third, second]", recent[0].Title, recent[1].Title)
	}
}

func TestPostStoreRecentOrdering(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)

	rubric := "Recent Test " + time.Now().Format("20060102150405.000")
	for _, title := range []string{"older", "newer"} {
		if _, err := s.Insert(&models.Post{
			Rubric: rubric, Title: title, PostText: "body", ImagePrompt: "prompt",
		}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM posts WHERE rubric = $1", rubric) })

	recent, err := s.Recent(50)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	// Newest first across all rubrics.
	for i := 1; i < len(recent); i++ {
		if recent[i].CreatedAt.After(recent[i-1].CreatedAt) {
			t.Fatalf("Recent not ordered newest-first at index %d", i)
		}
	}
}

func TestSettingStoreToneOfVoice(t *testing.T) {
	db := testDB(t)
	s := NewSettingStore(db)

	if err := s.UpsertToneOfVoice("Speak plainly."); err != nil {
		t.Fatalf("UpsertToneOfVoice: %v", err)
	}
	got, err := s.ToneOfVoice()
	if err != nil {
		t.Fatalf("ToneOfVoice: %v", err)
	}
	if got != "Speak plainly." {
		t.Errorf("ToneOfVoice = %q, want %q", got, "Speak plainly.")
	}

	// Upsert replaces in place.
	if err := s.UpsertToneOfVoice("Speak warmly."); err != nil {
		t.Fatalf("second UpsertToneOfVoice: %v", err)
	}
	got, err = s.ToneOfVoice()
	if err != nil {
		t.Fatalf("ToneOfVoice after upsert: %v", err)
	}
	if got != "Speak warmly." {
		t.Errorf("ToneOfVoice = %q, want %q", got, "Speak warmly.")
	}
}
