// Package store persists the planner's named collections. Each collection is
// a single JSON document saved whole on every write, last write wins. The
// three collections are independent: a failure between saving one and the
// next can leave them inconsistent, and the planner accepts that — a restart
// resumes from whatever each collection last durably held.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Collection keys. The _v1 suffixes predate this codebase and stay for
// compatibility with existing databases.
const (
	CollectionMeals     = "meals_v1"
	CollectionInventory = "ingredients_v1"
	CollectionCatalog   = "catalog_v1"
)

type CollectionStore interface {
	Load(ctx context.Context, key string, fallback json.RawMessage) (json.RawMessage, error)
	Save(ctx context.Context, key string, value any) error
}

type SQLiteCollectionStore struct {
	database *sql.DB
}

func NewCollectionStore(database *sql.DB) *SQLiteCollectionStore {
	return &SQLiteCollectionStore{database: database}
}

// Load returns the stored JSON document for key. An absent key or a payload
// that is no longer valid JSON yields the fallback instead of an error: the
// product always shows an empty collection over reporting corruption. Real
// database failures are still returned.
func (store *SQLiteCollectionStore) Load(ctx context.Context, key string, fallback json.RawMessage) (json.RawMessage, error) {
	var payload string
	err := store.database.QueryRowContext(ctx,
		"SELECT payload FROM collections WHERE name = ?", key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading collection %q: %w", key, err)
	}

	if !json.Valid([]byte(payload)) {
		slog.Warn("stored collection is not valid JSON, substituting fallback", "collection", key)
		return fallback, nil
	}
	return json.RawMessage(payload), nil
}

// Save overwrites the whole document for key.
func (store *SQLiteCollectionStore) Save(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding collection %q: %w", key, err)
	}

	_, err = store.database.ExecContext(ctx,
		`INSERT INTO collections (name, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		key, string(payload), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("saving collection %q: %w", key, err)
	}
	return nil
}
