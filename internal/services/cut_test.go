package services

import (
	"testing"

	"golf-sim/internal/models"
)

func TestApplyCutMarksOnlyBotsBelowTheLine(t *testing.T) {
	entries := []*models.TournamentEntry{
		{ID: "1", IsHuman: false},
		{ID: "2", IsHuman: false},
		{ID: "3", IsHuman: true},
		{ID: "4", IsHuman: false},
	}
	totals := map[string]int{"1": 140, "2": 150, "3": 160, "4": 170}

	ApplyCut(entries, totals, 2)

	want := map[string]bool{"1": false, "2": false, "3": false, "4": true}
	for _, e := range entries {
		if e.Cut != want[e.ID] {
			t.Errorf("entry %s: Cut = %v, want %v", e.ID, e.Cut, want[e.ID])
		}
	}
}

func TestApplyCutNeverCutsHumans(t *testing.T) {
	entries := []*models.TournamentEntry{
		{ID: "1", IsHuman: true},
		{ID: "2", IsHuman: false},
	}
	totals := map[string]int{"1": 200, "2": 140}

	ApplyCut(entries, totals, 1)

	if entries[0].Cut {
		t.Errorf("human entry should never be marked cut")
	}
	if entries[1].Cut {
		t.Errorf("bot entry leading the field sits inside the cut line and should not be cut")
	}
}

func TestApplyCutNoOpWhenFieldAtOrBelowCutSize(t *testing.T) {
	entries := []*models.TournamentEntry{
		{ID: "1", IsHuman: false},
		{ID: "2", IsHuman: false},
	}
	totals := map[string]int{"1": 150, "2": 160}

	ApplyCut(entries, totals, 2)

	for _, e := range entries {
		if e.Cut {
			t.Errorf("entry %s should not be cut when field size <= cutSize", e.ID)
		}
	}
}

func TestApplyCutTreatsMissingTotalAsWorstCase(t *testing.T) {
	entries := []*models.TournamentEntry{
		{ID: "1", IsHuman: false},
		{ID: "2", IsHuman: false},
		{ID: "3", IsHuman: false},
	}
	totals := map[string]int{"1": 140, "2": 150} // "3" has no recorded total

	ApplyCut(entries, totals, 2)

	if !entries[2].Cut {
		t.Errorf("entry with no recorded rounds 1-2 total should sink below the cut line")
	}
}
