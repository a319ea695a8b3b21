package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dir", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	// Reopening runs migrations again without error.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	store.Close()
}

func TestTopSessions(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, score := range []int{12, 40, 7, 40} {
		_, err := store.SaveSession(Session{
			SessionID: "s",
			Mode:      "classic",
			Score:     score,
			Level:     score/5 + 1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}
	if _, err := store.SaveSession(Session{Mode: "walled", Score: 99}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	top, err := store.TopSessions("classic", 3)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("got %d sessions, want 3", len(top))
	}
	if top[0].Score != 40 || top[1].Score != 40 || top[2].Score != 12 {
		t.Errorf("scores = %d,%d,%d, want 40,40,12", top[0].Score, top[1].Score, top[2].Score)
	}
	// Ties keep the earlier session first.
	if !top[0].CreatedAt.Before(top[1].CreatedAt) {
		t.Errorf("tie order: %v then %v", top[0].CreatedAt, top[1].CreatedAt)
	}
	if top[0].Level != 9 {
		t.Errorf("Level = %d, want 9", top[0].Level)
	}

	all, err := store.TopSessions("", 10)
	if err != nil {
		t.Fatalf("TopSessions(all) failed: %v", err)
	}
	if len(all) != 5 || all[0].Mode != "walled" {
		t.Errorf("all modes: got %d sessions, first %q", len(all), all[0].Mode)
	}
}

func TestRecentSessions(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := store.SaveSession(Session{
			SessionID: string(rune('a' + i)),
			Mode:      "classic",
			Score:     i,
			Duration:  90 * time.Second,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d sessions, want 2", len(recent))
	}
	if recent[0].SessionID != "e" || recent[1].SessionID != "d" {
		t.Errorf("order = %q,%q, want e,d", recent[0].SessionID, recent[1].SessionID)
	}
	if recent[0].Duration != 90*time.Second {
		t.Errorf("Duration = %v, want 1m30s", recent[0].Duration)
	}
	if !recent[0].CreatedAt.Equal(base.Add(4 * time.Hour)) {
		t.Errorf("CreatedAt = %v", recent[0].CreatedAt)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	last := time.Date(2024, 6, 2, 8, 30, 0, 0, time.UTC)

	sessions := []Session{
		{Mode: "classic", Score: 10, Level: 3, Duration: time.Minute, CreatedAt: last.Add(-time.Hour)},
		{Mode: "classic", Score: 20, Level: 5, Duration: 2 * time.Minute, CreatedAt: last},
		{Mode: "walled", Score: 100, Level: 21, Duration: time.Hour},
	}
	for _, s := range sessions {
		if _, err := store.SaveSession(s); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	stats, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.HighScore != 20 || stats.BestLevel != 5 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 15 {
		t.Errorf("AvgScore = %v, want 15", stats.AvgScore)
	}
	if stats.TotalTime != 3*time.Minute {
		t.Errorf("TotalTime = %v, want 3m", stats.TotalTime)
	}
	if !stats.LastPlayed.Equal(last) {
		t.Errorf("LastPlayed = %v, want %v", stats.LastPlayed, last)
	}

	all, err := store.Stats("")
	if err != nil {
		t.Fatalf("Stats(all) failed: %v", err)
	}
	if all.Sessions != 3 || all.HighScore != 100 || all.BestLevel != 21 {
		t.Errorf("all stats = %+v", all)
	}

	empty, err := store.Stats("nobody")
	if err != nil {
		t.Fatalf("Stats(empty) failed: %v", err)
	}
	if empty.Sessions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestClearMode(t *testing.T) {
	store := openTestStore(t)
	store.SaveSession(Session{Mode: "classic", Score: 1})
	store.SaveSession(Session{Mode: "walled", Score: 2})

	if err := store.ClearMode("classic"); err != nil {
		t.Fatalf("ClearMode() failed: %v", err)
	}
	left, _ := store.TopSessions("", 10)
	if len(left) != 1 || left[0].Mode != "walled" {
		t.Errorf("remaining = %+v", left)
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	for _, in := range []string{"2024-01-02 03:04:05.000000", "2024-01-02 03:04:05", "2024-01-02T03:04:05Z"} {
		if got := parseTime(in); !got.Equal(want) {
			t.Errorf("parseTime(%q) = %v", in, got)
		}
	}
	if !parseTime("garbage").IsZero() {
		t.Error("garbage should parse to zero time")
	}
}
