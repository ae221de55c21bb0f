package services

import (
	"testing"

	"golf-sim/internal/models"
)

func TestComputeProjectedCutNilWhenFieldAtOrBelowCutSize(t *testing.T) {
	got, err := ComputeProjectedCut([]int{-2, -1, 0}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil projected cut, got %+v", got)
	}
}

func TestComputeProjectedCutLine(t *testing.T) {
	scores := []int{-5, -3, -2, -1, 0, 1, 2, 5}
	got, err := ComputeProjectedCut(scores, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatalf("expected a non-nil projected cut")
	}
	if got.CutScore != -1 {
		t.Errorf("CutScore = %v, want -1", got.CutScore)
	}
	if got.PlayersInside != 3 {
		t.Errorf("PlayersInside = %d, want 3", got.PlayersInside)
	}
	if got.PlayersAtLine != 1 {
		t.Errorf("PlayersAtLine = %d, want 1", got.PlayersAtLine)
	}
}

func TestScoreToPar(t *testing.T) {
	parByHole := map[int]int{1: 4, 2: 3, 3: 5}
	results := []*models.HoleResult{
		{HoleNumber: 1, Strokes: 5},
		{HoleNumber: 2, Strokes: 2},
		{HoleNumber: 3, Strokes: 5},
	}
	got := ScoreToPar(results, parByHole)
	want := (5 - 4) + (2 - 3) + (5 - 5)
	if got != want {
		t.Errorf("ScoreToPar = %d, want %d", got, want)
	}
}
