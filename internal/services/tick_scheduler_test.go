package services

import (
	"math/rand"
	"testing"
	"time"

	"golf-sim/internal/models"
)

func TestSignificantOutcomeBirdieAndRoutine(t *testing.T) {
	entry := &models.TournamentEntry{TournamentID: "t1", DisplayName: "Bot One"}
	hole := &models.Hole{Number: 5, Par: 4}

	birdie := significantOutcome(entry, hole, 3, 5, 1)
	if birdie == nil || birdie.Importance != models.ImportanceBirdie {
		t.Fatalf("expected a birdie event, got %+v", birdie)
	}

	routine := significantOutcome(entry, hole, 4, 5, 1)
	if routine != nil {
		t.Errorf("expected no event for a routine par, got %+v", routine)
	}

	ace := significantOutcome(entry, &models.Hole{Number: 7, Par: 3}, 1, 7, 1)
	if ace == nil || ace.Text == "" {
		t.Fatalf("expected a hole-in-one event")
	}
}

func TestSimToTeeDeltaFindsHumanGroup(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	human := &models.TournamentEntry{ID: "h1", IsHuman: true}
	groups := []*models.Group{
		{TeeTime: now.Add(30 * time.Minute), Members: []models.GroupMember{{EntryID: human.ID, Entry: human}}},
	}

	delta, found := SimToTeeDelta(now, groups)
	if !found {
		t.Fatalf("expected to find a human group")
	}
	if delta != 31 {
		t.Errorf("delta = %d, want 31", delta)
	}
}

func TestSimToTeeDeltaNoHumans(t *testing.T) {
	_, found := SimToTeeDelta(time.Now(), []*models.Group{{}})
	if found {
		t.Errorf("expected no human group to be found")
	}
}

func TestPlanSimToEndOfDayEndsWithShortCatchUp(t *testing.T) {
	steps := PlanSimToEndOfDay()
	if len(steps) != 1000 {
		t.Fatalf("expected 1000 bounded steps, got %d", len(steps))
	}
	if steps[len(steps)-1].Minutes != 10 {
		t.Errorf("expected final step to be a 10-minute catch-up, got %d", steps[len(steps)-1].Minutes)
	}
	if steps[0].Minutes != 15 {
		t.Errorf("expected leading steps to be 15 minutes, got %d", steps[0].Minutes)
	}
}

func TestRunTickAdvancesBotOnlyGroup(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	course := &models.Course{Holes: []models.Hole{{Number: 1, Par: 4}}}
	bot := &models.TournamentEntry{ID: "b1", IsHuman: false}
	group := &models.Group{
		ID: "g1", StartHole: 1, TeeTime: now,
		Members: []models.GroupMember{{EntryID: bot.ID, Entry: bot}},
	}
	golfer := averageGolfer("g1")

	out := RunTick(TickInput{
		RNG:              rand.New(rand.NewSource(1)),
		CurrentTime:      now,
		DeltaMinutes:     30,
		Course:           course,
		RoundNumber:      1,
		Groups:           []*models.Group{group},
		ExistingResults:  map[string]map[int]*models.HoleResult{},
		PriorRoundsTotal: map[string]int{},
		GolferByEntry:    map[string]*models.Golfer{"b1": golfer},
	})

	if len(out.NewResults) != 1 {
		t.Fatalf("expected 1 new hole result, got %d", len(out.NewResults))
	}
	if out.NewResults[0].HoleNumber != 1 {
		t.Errorf("expected hole 1 to be played, got %d", out.NewResults[0].HoleNumber)
	}
	if !out.NewCurrentTime.Equal(now.Add(30 * time.Minute)) {
		t.Errorf("expected the clock to advance by DeltaMinutes")
	}
}

func TestRunTickSkipsGroupsNotYetTeedOff(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	course := &models.Course{Holes: []models.Hole{{Number: 1, Par: 4}}}
	bot := &models.TournamentEntry{ID: "b1", IsHuman: false}
	group := &models.Group{
		ID: "g1", StartHole: 1, TeeTime: now.Add(time.Hour),
		Members: []models.GroupMember{{EntryID: bot.ID, Entry: bot}},
	}

	out := RunTick(TickInput{
		RNG:              rand.New(rand.NewSource(1)),
		CurrentTime:      now,
		DeltaMinutes:     10,
		Course:           course,
		RoundNumber:      1,
		Groups:           []*models.Group{group},
		ExistingResults:  map[string]map[int]*models.HoleResult{},
		PriorRoundsTotal: map[string]int{},
		GolferByEntry:    map[string]*models.Golfer{},
	})

	if len(out.NewResults) != 0 {
		t.Errorf("expected no results before the group's tee time, got %d", len(out.NewResults))
	}
}
