// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"contentstudio/internal/models"
)

const (
	rubricKeyPrefix   = "rubric:"
	examplesKeyPrefix = "examples:"

	// DefaultRubricTTL bounds staleness if an invalidation is ever missed.
	DefaultRubricTTL = 10 * time.Minute
)

// RubricSource is the store-side read interface the cache falls through to.
type RubricSource interface {
	FindByName(name string) (*models.Rubric, error)
}

// ExampleSource supplies recent posts for a rubric, newest first.
type ExampleSource interface {
	RecentByRubric(rubric string, limit int) ([]models.Post, error)
}

// RubricCache is a read-through Valkey cache over rubric and example
// lookups. The admin write path and the post save path invalidate entries
// explicitly; cache failures degrade to direct store reads and never fail
// the request.
type RubricCache struct {
	client   *redis.Client
	rubrics  RubricSource
	examples ExampleSource
	ttl      time.Duration
}

// NewRubricCache creates a rubric cache backed by the given Valkey client.
func NewRubricCache(client *redis.Client, rubrics RubricSource, examples ExampleSource, ttl time.Duration) *RubricCache {
	if ttl == 0 {
		ttl = DefaultRubricTTL
	}
	return &RubricCache{client: client, rubrics: rubrics, examples: examples, ttl: ttl}
}

// Rubric returns the named rubric, serving from Valkey when possible.
// Returns nil (no error) when the rubric does not exist; misses on
// nonexistent rubrics are not negatively cached.
func (c *RubricCache) Rubric(ctx context.Context, name string) (*models.Rubric, error) {
	key := rubricKeyPrefix + name
	if payload, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var r models.Rubric
		if jsonErr := json.Unmarshal(payload, &r); jsonErr == nil {
			slog.Debug("rubric cache hit", "rubric", name)
			return &r, nil
		}
		slog.Warn("rubric cache payload corrupt, falling through", "rubric", name)
	} else if err != redis.Nil {
		slog.Warn("rubric cache get error", "rubric", name, "error", err)
	}

	r, err := c.rubrics.FindByName(name)
	if err != nil || r == nil {
		return r, err
	}

	c.set(ctx, key, r)
	return r, nil
}

// RecentExamples returns up to limit recent posts for the rubric, cached as
// a single entry per (rubric, limit) pair.
func (c *RubricCache) RecentExamples(ctx context.Context, rubric string, limit int) ([]models.Post, error) {
	key := examplesKey(rubric, limit)
	if payload, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var posts []models.Post
		if jsonErr := json.Unmarshal(payload, &posts); jsonErr == nil {
			slog.Debug("examples cache hit", "rubric", rubric)
			return posts, nil
		}
		slog.Warn("examples cache payload corrupt, falling through", "rubric", rubric)
	} else if err != redis.Nil {
		slog.Warn("examples cache get error", "rubric", rubric, "error", err)
	}

	posts, err := c.examples.RecentByRubric(rubric, limit)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, posts)
	return posts, nil
}

// InvalidateRubric drops a rubric's cached template and all its cached
// example lists. Called after admin rubric writes and post saves.
func (c *RubricCache) InvalidateRubric(ctx context.Context, name string) {
	c.deleteByPattern(ctx, examplesKeyPrefix+name+":*")
	if err := c.client.Del(ctx, rubricKeyPrefix+name).Err(); err != nil {
		slog.Warn("rubric cache invalidate error", "rubric", name, "error", err)
	}
	slog.Debug("rubric cache invalidated", "rubric", name)
}

// InvalidateAll drops every cached rubric and example list.
func (c *RubricCache) InvalidateAll(ctx context.Context) {
	c.deleteByPattern(ctx, rubricKeyPrefix+"*")
	c.deleteByPattern(ctx, examplesKeyPrefix+"*")
}

func (c *RubricCache) set(ctx context.Context, key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		slog.Warn("cache marshal error", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("cache set error", "key", key, "error", err)
	}
}

// deleteByPattern removes all keys matching the pattern via SCAN.
func (c *RubricCache) deleteByPattern(ctx context.Context, pattern string) {
	var cursor uint64
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			slog.Warn("cache scan error", "pattern", pattern, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("cache bulk delete error", "error", err)
			}
		}
		cursor = nextCursor
		if cursor == 0 {
			return
		}
	}
}

func examplesKey(rubric string, limit int) string {
	return examplesKeyPrefix + rubric + ":" + strconv.Itoa(limit)
}
