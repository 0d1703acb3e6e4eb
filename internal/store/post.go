// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"contentstudio/internal/models"
)

// PostStore handles saved post persistence and recent-example lookups.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

// Insert saves an accepted post and returns it with its generated ID.
func (s *PostStore) Insert(p *models.Post) (*models.Post, error) {
	saved := &models.Post{}
	err := s.db.QueryRow(`
		INSERT INTO posts (rubric, title, post_text, image_prompt)
		VALUES ($1, $2, $3, $4)
		RETURNING id, rubric, title, post_text, image_prompt, created_at
	`, p.Rubric, p.Title, p.PostText, p.ImagePrompt).Scan(
		&saved.ID, &saved.Rubric, &saved.Title, &saved.PostText,
		&saved.ImagePrompt, &saved.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return saved, nil
}

// Recent returns up to limit posts across all rubrics, newest first.
func (s *PostStore) Recent(limit int) ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT id, rubric, title, post_text, image_prompt, created_at
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent posts: %w", err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

// RecentByRubric returns up to limit posts for the rubric, newest first.
// These double as style-conditioning examples for the prompt composer.
func (s *PostStore) RecentByRubric(rubric string, limit int) ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT id, rubric, title, post_text, image_prompt, created_at
		FROM posts
		WHERE rubric = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, rubric, limit)
	if err != nil {
		return nil, fmt.Errorf("recent posts by rubric: %w", err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

func scanPosts(rows *sql.Rows) ([]models.Post, error) {
	var posts []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Rubric, &p.Title, &p.PostText, &p.ImagePrompt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
