package services

import (
	"math/rand"
	"testing"

	"golf-sim/internal/models"
)

func averageGolfer(name string) *models.Golfer {
	return &models.Golfer{
		ID: name, Name: name,
		DrivingPower: 70, DrivingAccuracy: 70, Approach: 70, ShortGame: 70, Putting: 70,
		BallStriking: 70, Consistency: 70, CourseManagement: 70, Discipline: 70, Sand: 70,
		Clutch: 70, RiskTolerance: 50, WeatherHandling: 70, Endurance: 70,
		Volatility: 1.0,
	}
}

func plainCourse() *models.Course {
	return &models.Course{
		ID: "c1", DifficultyRating: 7.0, GreensSpeed: 10.0, FairwayFirmness: 5.0, RoughSeverity: 5.0,
	}
}

func TestSimulateHoleStaysWithinClampedRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	golfer := averageGolfer("g1")
	course := plainCourse()
	hole := &models.Hole{Number: 1, Par: 4}
	entry := &models.TournamentEntry{ID: "e1"}

	for i := 0; i < 200; i++ {
		strokes, stats := SimulateHole(rng, entry, golfer, course, hole, 1, models.RoundConditions{}, nil)
		if strokes < hole.Par-2 || strokes > hole.Par+4 {
			t.Fatalf("strokes %d out of clamped range [%d,%d]", strokes, hole.Par-2, hole.Par+4)
		}
		if stats.Putts < 0 {
			t.Fatalf("putts should never be negative, got %d", stats.Putts)
		}
	}
}

func TestSimulateHolePar3HasNoFIR(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	golfer := averageGolfer("g2")
	course := plainCourse()
	hole := &models.Hole{Number: 3, Par: 3}
	entry := &models.TournamentEntry{ID: "e2"}

	_, stats := SimulateHole(rng, entry, golfer, course, hole, 1, models.RoundConditions{}, nil)
	if stats.FIR != nil {
		t.Errorf("par-3 holes should not report a FIR stat, got %v", *stats.FIR)
	}
}

func TestSimulateHolePersistsSimStateAcrossCalls(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	golfer := averageGolfer("g3")
	course := plainCourse()
	hole := &models.Hole{Number: 1, Par: 4}
	entry := &models.TournamentEntry{ID: "e3"}

	SimulateHole(rng, entry, golfer, course, hole, 1, models.RoundConditions{}, nil)
	if _, ok := entry.SimState.ForRound(1); !ok {
		t.Errorf("expected round 1 sim state to be initialized after the first hole")
	}
}

func TestCommentaryForHoleInOne(t *testing.T) {
	commentary, excitement := commentaryFor(4, 1, nil, true, 0, 280)
	if commentary != "Hole in one!" || excitement != 10 {
		t.Errorf("commentaryFor(ace) = (%q, %d), want (%q, 10)", commentary, excitement, "Hole in one!")
	}
}

func TestCommentaryForEagle(t *testing.T) {
	commentary, _ := commentaryFor(5, 3, nil, true, 1, 280)
	if commentary != "Eagle!" {
		t.Errorf("commentaryFor(eagle) = %q, want Eagle!", commentary)
	}
}
