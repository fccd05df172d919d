package store

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/promptforge/promptforge/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), logger)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEntry(id int64, prompt string) types.HistoryEntry {
	return types.HistoryEntry{
		ID:        id,
		Config:    types.DefaultPromptConfig(),
		Prompt:    prompt,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestSettings(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("unset key returns empty", func(t *testing.T) {
		got, err := s.GetSetting(ctx, "theme")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "" {
			t.Errorf("expected empty value, got %q", got)
		}
	})

	t.Run("set and get", func(t *testing.T) {
		if err := s.SetSetting(ctx, "theme", "light"); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		got, err := s.GetSetting(ctx, "theme")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got != "light" {
			t.Errorf("expected light, got %q", got)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		if err := s.SetSetting(ctx, "theme", "dark"); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		got, _ := s.GetSetting(ctx, "theme")
		if got != "dark" {
			t.Errorf("expected dark after overwrite, got %q", got)
		}
	})
}

func TestHistoryRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		if err := s.InsertEntry(ctx, testEntry(i, "prompt")); err != nil {
			t.Fatalf("insert %d failed: %v", i, err)
		}
	}

	entries, err := s.ListEntries(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].ID != 3 || entries[2].ID != 1 {
		t.Errorf("entries not newest first: %d, %d, %d", entries[0].ID, entries[1].ID, entries[2].ID)
	}
	if entries[0].Config.Tone != "Professional" {
		t.Errorf("config did not round-trip: %+v", entries[0].Config)
	}
}

func TestDeleteEntry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.InsertEntry(ctx, testEntry(1, "keep"))
	s.InsertEntry(ctx, testEntry(2, "remove"))

	if err := s.DeleteEntry(ctx, 2); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	// Nonexistent ID is a no-op.
	if err := s.DeleteEntry(ctx, 999); err != nil {
		t.Fatalf("no-op delete errored: %v", err)
	}

	entries, _ := s.ListEntries(ctx)
	if len(entries) != 1 || entries[0].ID != 1 {
		t.Errorf("unexpected entries after delete: %+v", entries)
	}
}

func TestClearEntries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.InsertEntry(ctx, testEntry(1, "a"))
	s.InsertEntry(ctx, testEntry(2, "b"))

	if err := s.ClearEntries(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	entries, _ := s.ListEntries(ctx)
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestTrimEntries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		s.InsertEntry(ctx, testEntry(i, "p"))
	}

	if err := s.TrimEntries(ctx, 2); err != nil {
		t.Fatalf("trim failed: %v", err)
	}

	entries, _ := s.ListEntries(ctx)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after trim, got %d", len(entries))
	}
	if entries[0].ID != 5 || entries[1].ID != 4 {
		t.Errorf("trim kept wrong entries: %d, %d", entries[0].ID, entries[1].ID)
	}
}

func TestListEntries_SkipsCorruptRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.InsertEntry(ctx, testEntry(1, "good"))

	// Damage one row's config blob and another row's timestamp directly.
	if _, err := s.db.Exec(
		"INSERT INTO history (id, config, prompt, created_at) VALUES (?, ?, ?, ?)",
		2, "{not json", "bad", time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		t.Fatalf("failed to insert corrupt row: %v", err)
	}
	if _, err := s.db.Exec(
		"INSERT INTO history (id, config, prompt, created_at) VALUES (?, ?, ?, ?)",
		3, `{"tone":"Professional"}`, "bad time", "yesterday-ish",
	); err != nil {
		t.Fatalf("failed to insert corrupt row: %v", err)
	}

	entries, err := s.ListEntries(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != 1 {
		t.Errorf("expected only the readable entry, got %+v", entries)
	}
}
