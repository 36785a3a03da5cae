// Package kv implements the platform repositories over a key-value snapshot
// store: each collection is one JSON array under one fixed key, read in full
// and rewritten in full on every mutation. A per-collection mutex makes each
// collection single-writer within the process.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/legalconnect/platform-api/internal/core/ports"
)

// Storage keys, unchanged from the original browser deployment.
const (
	keyUsers         = "legal_platform_users"
	keyAppointments  = "legal_platform_appointments"
	keyCases         = "legal_platform_cases"
	keyDocuments     = "legal_platform_documents"
	keyTasks         = "legal_platform_tasks"
	keyMessages      = "legal_platform_messages"
	keyNotifications = "legal_platform_notifications"

	sessionKeyPrefix = "legal_platform_session_"
)

// collection is the shared snapshot plumbing under every repository. The id
// function extracts a record's identifier for linear-scan lookups.
type collection[T any] struct {
	store ports.KVStore
	key   string
	id    func(*T) string

	mu sync.Mutex
}

func newCollection[T any](store ports.KVStore, key string, id func(*T) string) *collection[T] {
	return &collection[T]{store: store, key: key, id: id}
}

// load re-parses the full snapshot on every call; there is no cache layer.
// A key that has never been written reads as an empty collection.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.key, err)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("write %s: %w", c.key, err)
	}
	return nil
}

func (c *collection[T]) append(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	return c.save(ctx, append(items, item))
}

// filter returns the records keep accepts, preserving storage order.
func (c *collection[T]) filter(ctx context.Context, keep func(*T) bool) ([]T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out, nil
}

func (c *collection[T]) findByID(ctx context.Context, id string) (*T, bool, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range items {
		if c.id(&items[i]) == id {
			item := items[i]
			return &item, true, nil
		}
	}
	return nil, false, nil
}

// update applies fn to the record matched by linear scan and rewrites the
// collection. When no record matches, the snapshot is left untouched and
// found is false.
func (c *collection[T]) update(ctx context.Context, id string, fn func(*T)) (*T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range items {
		if c.id(&items[i]) == id {
			fn(&items[i])
			if err := c.save(ctx, items); err != nil {
				return nil, false, err
			}
			item := items[i]
			return &item, true, nil
		}
	}
	return nil, false, nil
}

// updateAll applies fn to every record match accepts and rewrites the
// collection once. It returns how many records were touched; when none match
// the snapshot is not rewritten.
func (c *collection[T]) updateAll(ctx context.Context, match func(*T) bool, fn func(*T)) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	touched := 0
	for i := range items {
		if match(&items[i]) {
			fn(&items[i])
			touched++
		}
	}
	if touched == 0 {
		return 0, nil
	}
	return touched, c.save(ctx, items)
}

// seed writes the fixtures if and only if the collection is currently empty.
func (c *collection[T]) seed(ctx context.Context, fixtures []T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return false, err
	}
	if len(items) > 0 {
		return false, nil
	}
	return true, c.save(ctx, fixtures)
}
