// Package history keeps the bounded log of past generations: newest first,
// capped, persisted on every change, rehydrated at startup. Persistence
// failures degrade the log to in-memory operation for the session; they are
// logged as warnings and never surfaced to the user.
package history

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/promptforge/promptforge/internal/types"
)

// DefaultCap is the maximum number of retained entries.
const DefaultCap = 20

// Persister is the durable side of the log. *store.Store implements it.
type Persister interface {
	ListEntries(ctx context.Context) ([]types.HistoryEntry, error)
	InsertEntry(ctx context.Context, e types.HistoryEntry) error
	DeleteEntry(ctx context.Context, id int64) error
	ClearEntries(ctx context.Context) error
	TrimEntries(ctx context.Context, limit int) error
}

// Log is the in-memory history with write-through persistence.
type Log struct {
	mu      sync.Mutex
	entries []types.HistoryEntry
	cap     int
	store   Persister // nil means in-memory only
	logger  *slog.Logger
}

// New creates a Log rehydrated from store. A nil store, or a store that
// fails to load, yields an empty in-memory log.
func New(ctx context.Context, store Persister, cap int, logger *slog.Logger) *Log {
	if cap <= 0 {
		cap = DefaultCap
	}
	if logger == nil {
		logger = slog.Default()
	}

	l := &Log{cap: cap, store: store, logger: logger}
	if store == nil {
		return l
	}

	entries, err := store.ListEntries(ctx)
	if err != nil {
		logger.Warn("failed to load history, starting empty", "error", err)
		return l
	}
	if len(entries) > cap {
		entries = entries[:cap]
	}
	l.entries = entries
	return l
}

// Append records a successful generation and returns the new entry. The
// oldest entry beyond the cap is evicted.
func (l *Log) Append(ctx context.Context, cfg types.PromptConfig, prompt string) types.HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	id := now.UnixMilli()
	// IDs are monotonic even when two generations land in the same
	// millisecond.
	if len(l.entries) > 0 && id <= l.entries[0].ID {
		id = l.entries[0].ID + 1
	}

	entry := types.HistoryEntry{
		ID:        id,
		Config:    cfg,
		Prompt:    prompt,
		CreatedAt: now.UTC(),
	}

	l.entries = append([]types.HistoryEntry{entry}, l.entries...)
	if len(l.entries) > l.cap {
		l.entries = l.entries[:l.cap]
	}

	if l.store != nil {
		if err := l.store.InsertEntry(ctx, entry); err != nil {
			l.logger.Warn("failed to persist history entry", "id", entry.ID, "error", err)
		} else if err := l.store.TrimEntries(ctx, l.cap); err != nil {
			l.logger.Warn("failed to trim persisted history", "error", err)
		}
	}

	return entry
}

// List returns a copy of the entries, newest first.
func (l *Log) List() []types.HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]types.HistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Get returns the entry with the given ID, or false.
func (l *Log) Get(id int64) (types.HistoryEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return types.HistoryEntry{}, false
}

// Remove deletes the entry with the given ID. A nonexistent ID is a no-op.
func (l *Log) Remove(ctx context.Context, id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			break
		}
	}

	if l.store != nil {
		if err := l.store.DeleteEntry(ctx, id); err != nil {
			l.logger.Warn("failed to delete persisted history entry", "id", id, "error", err)
		}
	}
}

// Clear empties the log and persists the emptiness.
func (l *Log) Clear(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil

	if l.store != nil {
		if err := l.store.ClearEntries(ctx); err != nil {
			l.logger.Warn("failed to clear persisted history", "error", err)
		}
	}
}
