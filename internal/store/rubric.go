// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the database access layer. Each store wraps a
// *sql.DB and exposes typed operations for one table.
package store

import (
	"database/sql"
	"fmt"

	"contentstudio/internal/models"
)

// RubricStore handles all rubric-related database operations.
type RubricStore struct {
	db *sql.DB
}

// NewRubricStore creates a new RubricStore with the given database connection.
func NewRubricStore(db *sql.DB) *RubricStore {
	return &RubricStore{db: db}
}

const rubricColumns = `id, name, icon, title_prompt, post_prompt, image_prompt, video_prompt, additional, created_at, updated_at`

func scanRubric(row interface{ Scan(...any) error }) (*models.Rubric, error) {
	r := &models.Rubric{}
	err := row.Scan(
		&r.ID, &r.Name, &r.Icon, &r.TitlePrompt, &r.PostPrompt,
		&r.ImagePrompt, &r.VideoPrompt, &r.Additional,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// List returns all rubrics ordered by name.
func (s *RubricStore) List() ([]models.Rubric, error) {
	rows, err := s.db.Query(`SELECT ` + rubricColumns + ` FROM rubrics ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list rubrics: %w", err)
	}
	defer rows.Close()

	var rubrics []models.Rubric
	for rows.Next() {
		r, err := scanRubric(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rubric: %w", err)
		}
		rubrics = append(rubrics, *r)
	}
	return rubrics, rows.Err()
}

// FindByName retrieves a rubric by its unique name. Returns nil if not found.
func (s *RubricStore) FindByName(name string) (*models.Rubric, error) {
	r, err := scanRubric(s.db.QueryRow(
		`SELECT `+rubricColumns+` FROM rubrics WHERE name = $1`, name,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find rubric by name: %w", err)
	}
	return r, nil
}

// Create inserts a new rubric and returns it with its generated ID and timestamps.
func (s *RubricStore) Create(r *models.Rubric) (*models.Rubric, error) {
	created, err := scanRubric(s.db.QueryRow(`
		INSERT INTO rubrics (name, icon, title_prompt, post_prompt, image_prompt, video_prompt, additional)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+rubricColumns,
		r.Name, r.Icon, r.TitlePrompt, r.PostPrompt, r.ImagePrompt, r.VideoPrompt, r.Additional,
	))
	if err != nil {
		return nil, fmt.Errorf("create rubric: %w", err)
	}
	return created, nil
}

// Update replaces a rubric's fields, keyed by its current name. The name
// itself may change. Returns nil if no rubric with the given name exists.
func (s *RubricStore) Update(name string, r *models.Rubric) (*models.Rubric, error) {
	updated, err := scanRubric(s.db.QueryRow(`
		UPDATE rubrics
		SET name = $2, icon = $3, title_prompt = $4, post_prompt = $5,
		    image_prompt = $6, video_prompt = $7, additional = $8,
		    updated_at = now()
		WHERE name = $1
		RETURNING `+rubricColumns,
		name, r.Name, r.Icon, r.TitlePrompt, r.PostPrompt, r.ImagePrompt, r.VideoPrompt, r.Additional,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update rubric: %w", err)
	}
	return updated, nil
}

// DeleteByName removes a rubric. Returns true if a row was deleted.
func (s *RubricStore) DeleteByName(name string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM rubrics WHERE name = $1`, name)
	if err != nil {
		return false, fmt.Errorf("delete rubric: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete rubric rows affected: %w", err)
	}
	return n > 0, nil
}
