package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/watersort/internal/storage"
)

func TestHistoryRows(t *testing.T) {
	start := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	runs := []storage.Run{
		{Player: "ada", StartLevel: 1, LevelReached: 30, LevelsCleared: 29, Pours: 410, Completed: true,
			StartedAt: start, EndedAt: start.Add(90 * time.Second)},
		{Player: "bob", StartLevel: 9, LevelReached: 9, Pours: 3, StartedAt: start, EndedAt: start},
	}

	rows := HistoryRows(runs)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(rows[0]) != len(historyColumns()) {
		t.Fatalf("row has %d cells, table has %d columns", len(rows[0]), len(historyColumns()))
	}

	first := rows[0]
	if first[1] != "ada" || first[2] != "1→30" || first[3] != "29" || first[4] != "410" {
		t.Errorf("unexpected first row: %v", first)
	}
	if first[5] != "1m30s" || first[6] != "yes" {
		t.Errorf("duration/done = %q/%q", first[5], first[6])
	}
	if rows[1][6] != "" {
		t.Errorf("unfinished run should have an empty done cell, got %q", rows[1][6])
	}
}

func TestHistoryModelWithStore(t *testing.T) {
	store := openStore(t)
	for _, p := range []string{"ada", "bob"} {
		if _, err := store.SaveRun(storage.Run{Player: p, StartLevel: 1, LevelReached: 4, TotalLevels: 30, Pours: 12}); err != nil {
			t.Fatal(err)
		}
	}

	all := NewHistoryModel(store, "", 100, 30)
	if len(all.runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(all.runs))
	}
	if !strings.Contains(all.View(), "2 runs") {
		t.Error("view should show the summary")
	}

	bob := NewHistoryModel(store, "bob", 100, 30)
	if len(bob.runs) != 1 || bob.runs[0].Player != "bob" {
		t.Errorf("player filter failed: %+v", bob.runs)
	}
}

func TestHistoryModelWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, "", 80, 24)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("expected an unavailable message")
	}
}
