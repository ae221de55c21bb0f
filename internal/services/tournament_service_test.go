package services

import (
	"testing"

	"golf-sim/internal/models"
)

func golferWithOverall(id string, overall float64) *models.Golfer {
	return &models.Golfer{
		ID: id,
		DrivingPower: overall, DrivingAccuracy: overall, Approach: overall, ShortGame: overall,
		Putting: overall, BallStriking: overall, Consistency: overall, CourseManagement: overall,
		Discipline: overall, Sand: overall, Clutch: overall, RiskTolerance: overall,
		WeatherHandling: overall, Endurance: overall,
	}
}

func TestSortedByOverallAscendingAndDescending(t *testing.T) {
	golfers := []*models.Golfer{
		golferWithOverall("a", 60),
		golferWithOverall("b", 90),
		golferWithOverall("c", 75),
	}

	asc := sortedByOverall(golfers, false)
	if asc[0].ID != "a" || asc[1].ID != "c" || asc[2].ID != "b" {
		t.Errorf("ascending sort order wrong: %s,%s,%s", asc[0].ID, asc[1].ID, asc[2].ID)
	}

	desc := sortedByOverall(golfers, true)
	if desc[0].ID != "b" || desc[1].ID != "c" || desc[2].ID != "a" {
		t.Errorf("descending sort order wrong: %s,%s,%s", desc[0].ID, desc[1].ID, desc[2].ID)
	}
}

func TestBottomByOverallReturnsWeakestN(t *testing.T) {
	golfers := []*models.Golfer{
		golferWithOverall("a", 60),
		golferWithOverall("b", 90),
		golferWithOverall("c", 75),
	}
	bottom := bottomByOverall(golfers, 2)
	if len(bottom) != 2 || bottom[0].ID != "a" || bottom[1].ID != "c" {
		t.Errorf("bottomByOverall(2) = %v, want [a c]", ids(bottom))
	}
}

func TestBottomByOverallClampsToFieldSize(t *testing.T) {
	golfers := []*models.Golfer{golferWithOverall("a", 60)}
	bottom := bottomByOverall(golfers, 5)
	if len(bottom) != 1 {
		t.Errorf("expected bottomByOverall to clamp to field size, got %d entries", len(bottom))
	}
}

func TestMidByOverallReturnsMiddleN(t *testing.T) {
	golfers := []*models.Golfer{
		golferWithOverall("a", 50),
		golferWithOverall("b", 60),
		golferWithOverall("c", 70),
		golferWithOverall("d", 80),
		golferWithOverall("e", 90),
	}
	mid := midByOverall(golfers, 1)
	if len(mid) != 1 || mid[0].ID != "c" {
		t.Errorf("midByOverall(1) = %v, want [c]", ids(mid))
	}
}

func ids(golfers []*models.Golfer) []string {
	out := make([]string, len(golfers))
	for i, g := range golfers {
		out[i] = g.ID
	}
	return out
}

func TestCombineResultsMergesWithoutMutatingExisting(t *testing.T) {
	existing := map[string]map[int]*models.HoleResult{
		"e1": {1: {EntryID: "e1", HoleNumber: 1, Strokes: 4}},
	}
	fresh := []*models.HoleResult{
		{EntryID: "e1", HoleNumber: 2, Strokes: 5},
		{EntryID: "e2", HoleNumber: 1, Strokes: 3},
	}

	combined := combineResults(existing, fresh)

	if len(combined["e1"]) != 2 {
		t.Errorf("expected entry e1 to have 2 hole results after combining, got %d", len(combined["e1"]))
	}
	if combined["e2"][1].Strokes != 3 {
		t.Errorf("expected new entry e2's hole result to be present")
	}
	if len(existing["e1"]) != 1 {
		t.Errorf("combineResults must not mutate the existing map in place, got %d entries", len(existing["e1"]))
	}
}
