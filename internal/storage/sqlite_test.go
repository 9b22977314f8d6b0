package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	version, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() failed: %v", err)
	}
	if version != 1 {
		t.Errorf("SchemaVersion() = %d, want 1", version)
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveSession(SessionRecord{GameID: "2048", Seed: 7, Rules: "spawn: {}", State: "input"})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	store.Close()

	// Second open must treat the applied migration as no change.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	rec, err := store.Session(id)
	if err != nil {
		t.Fatalf("Session() failed: %v", err)
	}
	if rec.Seed != 7 {
		t.Errorf("Seed = %d, want 7", rec.Seed)
	}
}

func TestSaveAndRetrieveSession(t *testing.T) {
	store := openTestStore(t)

	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ended := started.Add(90 * time.Second)
	in := SessionRecord{
		GameID:    "2048",
		Seed:      42,
		Rules:     "spawn:\n  initial_tiles: 2\n",
		Moves:     "LLUR",
		MoveCount: 4,
		Score:     36,
		MaxRank:   4,
		State:     "input",
		Board:     "1...2...3...4...",
		StartedAt: started,
		EndedAt:   ended,
	}

	id, err := store.SaveSession(in)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("SaveSession() id = %q, want a UUID", id)
	}

	got, err := store.Session(id)
	if err != nil {
		t.Fatalf("Session() failed: %v", err)
	}
	if got.Moves != in.Moves || got.Score != in.Score || got.MaxRank != in.MaxRank {
		t.Errorf("Session() = %+v, want moves/score/rank of %+v", got, in)
	}
	if got.Rules != in.Rules {
		t.Errorf("Rules = %q, want %q", got.Rules, in.Rules)
	}
	if got.Board != in.Board {
		t.Errorf("Board = %q, want %q", got.Board, in.Board)
	}
	if !got.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, want %v", got.StartedAt, started)
	}
	if got.Duration() != 90*time.Second {
		t.Errorf("Duration() = %v, want 90s", got.Duration())
	}
}

func TestSaveSessionUpdatesExisting(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveSession(SessionRecord{GameID: "2048", Seed: 1, Rules: "x", Moves: "L", MoveCount: 1, State: "input"})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	_, err = store.SaveSession(SessionRecord{ID: id, GameID: "2048", Seed: 1, Rules: "x", Moves: "LR", MoveCount: 2, Score: 4, State: "game_over"})
	if err != nil {
		t.Fatalf("SaveSession() update failed: %v", err)
	}

	got, err := store.Session(id)
	if err != nil {
		t.Fatalf("Session() failed: %v", err)
	}
	if got.Moves != "LR" || got.State != "game_over" || got.Score != 4 {
		t.Errorf("Session() after update = %+v", got)
	}

	all, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("RecentSessions() len = %d, want 1", len(all))
	}
}

func TestSessionByPrefix(t *testing.T) {
	store := openTestStore(t)

	ids := []string{"aaaa1111-0000-0000-0000-000000000000", "aaaa2222-0000-0000-0000-000000000000"}
	for _, id := range ids {
		if _, err := store.SaveSession(SessionRecord{ID: id, GameID: "2048", Rules: "x", State: "input"}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	tests := []struct {
		name    string
		id      string
		want    string
		wantErr error
	}{
		{"full id", ids[0], ids[0], nil},
		{"unique prefix", "aaaa2", ids[1], nil},
		{"ambiguous prefix", "aaaa", "", ErrAmbiguous},
		{"no match", "bbbb", "", ErrNotFound},
		{"too short", "aa", "", ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := store.Session(tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Session(%q) error = %v, want %v", tt.id, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Session(%q) failed: %v", tt.id, err)
			}
			if rec.ID != tt.want {
				t.Errorf("Session(%q).ID = %q, want %q", tt.id, rec.ID, tt.want)
			}
		})
	}
}

func TestRecentSessionsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, score := range []int{100, 50, 200} {
		rec := SessionRecord{
			GameID:  "2048",
			Rules:   "x",
			State:   "game_over",
			Score:   score,
			EndedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if _, err := store.SaveSession(rec); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	records, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("RecentSessions(2) len = %d, want 2", len(records))
	}
	// Most recently ended first
	if records[0].Score != 200 {
		t.Errorf("records[0].Score = %d, want 200", records[0].Score)
	}
	if records[1].Score != 50 {
		t.Errorf("records[1].Score = %d, want 50", records[1].Score)
	}
}

func TestDeleteSession(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveSession(SessionRecord{GameID: "2048", Rules: "x", State: "input"})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	if err := store.DeleteSession(id); err != nil {
		t.Fatalf("DeleteSession() failed: %v", err)
	}
	if _, err := store.Session(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Session() after delete error = %v, want ErrNotFound", err)
	}
	if err := store.DeleteSession(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteSession() error = %v, want ErrNotFound", err)
	}
}

func TestShortID(t *testing.T) {
	rec := SessionRecord{ID: "0123456789abcdef"}
	if got := rec.ShortID(); got != "01234567" {
		t.Errorf("ShortID() = %q, want 01234567", got)
	}
}
