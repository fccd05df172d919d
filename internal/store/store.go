// Package store provides the durable local state of the application: the
// generation history and the UI settings. Backed by pure-Go SQLite
// (modernc.org/sqlite) in a single file under the application home
// directory. A failure to open or use the store is never fatal to the
// application; callers degrade to in-memory operation.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/promptforge/promptforge/internal/types"
)

// Store is the SQLite-backed persistence layer.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the store at path. Use ":memory:" for tests.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}

	// WAL improves concurrent read behavior.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS history (
		id         INTEGER PRIMARY KEY,
		config     TEXT NOT NULL,
		prompt     TEXT NOT NULL,
		created_at TEXT NOT NULL
	);`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close shuts down the store.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetSetting returns the value for key, or "" when unset.
func (s *Store) GetSetting(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

// SetSetting stores or updates a setting.
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// InsertEntry persists one history entry.
func (s *Store) InsertEntry(ctx context.Context, e types.HistoryEntry) error {
	cfg, err := json.Marshal(e.Config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO history (id, config, prompt, created_at) VALUES (?, ?, ?, ?)",
		e.ID, string(cfg), e.Prompt, e.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert history entry %d: %w", e.ID, err)
	}
	return nil
}

// ListEntries returns all persisted entries, newest first. Rows whose
// config blob no longer parses are skipped with a warning rather than
// failing the load.
func (s *Store) ListEntries(ctx context.Context) ([]types.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, config, prompt, created_at FROM history ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []types.HistoryEntry
	for rows.Next() {
		var (
			e       types.HistoryEntry
			cfgJSON string
			created string
		)
		if err := rows.Scan(&e.ID, &cfgJSON, &e.Prompt, &created); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if err := json.Unmarshal([]byte(cfgJSON), &e.Config); err != nil {
			s.logger.Warn("skipping unreadable history entry", "id", e.ID, "error", err)
			continue
		}
		ts, err := time.Parse(time.RFC3339, created)
		if err != nil {
			s.logger.Warn("skipping unreadable history entry", "id", e.ID, "error", err)
			continue
		}
		e.CreatedAt = ts
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteEntry removes one entry by ID. Deleting a nonexistent ID is a no-op.
func (s *Store) DeleteEntry(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM history WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete history entry %d: %w", id, err)
	}
	return nil
}

// ClearEntries removes all history entries.
func (s *Store) ClearEntries(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM history"); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// TrimEntries deletes everything beyond the newest limit entries.
func (s *Store) TrimEntries(ctx context.Context, limit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM history WHERE id NOT IN (
			SELECT id FROM history ORDER BY id DESC LIMIT ?
		)`, limit)
	if err != nil {
		return fmt.Errorf("trim history to %d: %w", limit, err)
	}
	return nil
}
