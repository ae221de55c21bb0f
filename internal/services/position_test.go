package services

import (
	"testing"

	"golf-sim/internal/models"
)

func TestRecomputePositionsOrdersByStrokesThenID(t *testing.T) {
	entries := []*models.TournamentEntry{
		{ID: "b", TournamentStrokes: 70},
		{ID: "a", TournamentStrokes: 70},
		{ID: "c", TournamentStrokes: 68},
	}
	RecomputePositions(entries)

	want := map[string]int{"c": 1, "a": 2, "b": 2}
	for _, e := range entries {
		if e.Position == nil {
			t.Fatalf("entry %s: expected a position, got nil", e.ID)
		}
		if *e.Position != want[e.ID] {
			t.Errorf("entry %s: position = %d, want %d", e.ID, *e.Position, want[e.ID])
		}
	}
}

func TestRecomputePositionsSkipsEntriesWithNoStrokes(t *testing.T) {
	entries := []*models.TournamentEntry{
		{ID: "a", TournamentStrokes: 70},
		{ID: "b", TournamentStrokes: 0},
	}
	RecomputePositions(entries)

	if entries[0].Position == nil || *entries[0].Position != 1 {
		t.Errorf("expected entry a at position 1")
	}
	if entries[1].Position != nil {
		t.Errorf("expected entry b (no strokes recorded) to have nil position, got %v", *entries[1].Position)
	}
}
