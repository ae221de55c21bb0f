package services

import (
	"math/rand"
	"testing"
	"time"

	"golf-sim/internal/models"
)

func makeEntries(n int, human func(i int) bool, team func(i int) string) []*models.TournamentEntry {
	entries := make([]*models.TournamentEntry, n)
	for i := 0; i < n; i++ {
		entries[i] = &models.TournamentEntry{
			ID:      string(rune('A' + i)),
			IsHuman: human(i),
			Team:    team(i),
		}
	}
	return entries
}

func TestBuildPairingsStrokePlayGroupsOfFour(t *testing.T) {
	entries := makeEntries(8, func(i int) bool { return false }, func(i int) string { return "" })
	groups := BuildPairings(PairingParams{
		Entries:            entries,
		Format:             models.FormatStroke,
		CurrentTime:        time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
		CurrentRound:       1,
		GroupSize:          4,
		SplitTees:          true,
		TeeIntervalMinutes: 11,
		RNG:                rand.New(rand.NewSource(1)),
	})

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups of 4, got %d", len(groups))
	}
	for _, g := range groups {
		if len(g.Members) != 4 {
			t.Errorf("group %s has %d members, want 4", g.ID, len(g.Members))
		}
	}
}

func TestBuildPairingsMatchPlayInterleavesTeams(t *testing.T) {
	entries := makeEntries(8, func(i int) bool { return false }, func(i int) string {
		if i < 4 {
			return "USA"
		}
		return "EUR"
	})
	groups := BuildPairings(PairingParams{
		Entries:            entries,
		Format:             models.FormatMatch,
		CurrentTime:        time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
		CurrentRound:       1,
		GroupSize:          2,
		TeeIntervalMinutes: 11,
		RNG:                rand.New(rand.NewSource(1)),
	})

	if len(groups) != 4 {
		t.Fatalf("expected 4 two-man groups, got %d", len(groups))
	}
	for _, g := range groups {
		if len(g.Members) != 2 {
			t.Fatalf("expected 2 members per match-play group, got %d", len(g.Members))
		}
		teams := map[string]bool{}
		for _, m := range g.Members {
			teams[m.Entry.Team] = true
		}
		if len(teams) != 2 {
			t.Errorf("group %s should have one USA and one EUR member, got teams %v", g.ID, teams)
		}
	}
}

func TestBuildPairingsCutAppliedExcludesCutEntries(t *testing.T) {
	entries := makeEntries(6, func(i int) bool { return false }, func(i int) string { return "" })
	entries[0].Cut = true
	entries[1].Cut = true

	groups := BuildPairings(PairingParams{
		Entries:            entries,
		Format:             models.FormatStroke,
		CurrentTime:        time.Now(),
		CurrentRound:       3,
		CutApplied:         true,
		GroupSize:          2,
		TeeIntervalMinutes: 11,
		RNG:                rand.New(rand.NewSource(1)),
	})

	total := 0
	for _, g := range groups {
		total += len(g.Members)
	}
	if total != 4 {
		t.Errorf("expected 4 surviving entries across groups, got %d", total)
	}
}

func TestShufflePairingsRejectsAfterPlayStarted(t *testing.T) {
	groups := []*models.Group{{HolesCompleted: 1}}
	err := ShufflePairings(rand.New(rand.NewSource(1)), groups)
	if err != ErrPlayAlreadyStarted {
		t.Errorf("expected ErrPlayAlreadyStarted, got %v", err)
	}
}

func TestShufflePairingsPreservesTeamComposition(t *testing.T) {
	usaA := &models.TournamentEntry{ID: "u1", Team: "USA"}
	usaB := &models.TournamentEntry{ID: "u2", Team: "USA"}
	eurA := &models.TournamentEntry{ID: "e1", Team: "EUR"}
	eurB := &models.TournamentEntry{ID: "e2", Team: "EUR"}
	groups := []*models.Group{
		{ID: "g1", Members: []models.GroupMember{{EntryID: usaA.ID, Entry: usaA}, {EntryID: eurA.ID, Entry: eurA}}},
		{ID: "g2", Members: []models.GroupMember{{EntryID: usaB.ID, Entry: usaB}, {EntryID: eurB.ID, Entry: eurB}}},
	}

	if err := ShufflePairings(rand.New(rand.NewSource(1)), groups); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var usaCount, eurCount int
	for _, g := range groups {
		if len(g.Members) != 2 {
			t.Fatalf("group %s lost members during shuffle: %d", g.ID, len(g.Members))
		}
		teams := map[string]int{}
		for _, m := range g.Members {
			teams[m.Entry.Team]++
		}
		if teams["USA"] != 1 || teams["EUR"] != 1 {
			t.Errorf("group %s should keep one USA and one EUR member, got %v", g.ID, teams)
		}
		usaCount += teams["USA"]
		eurCount += teams["EUR"]
	}
	if usaCount != 2 || eurCount != 2 {
		t.Errorf("expected 2 USA and 2 EUR members total, got usa=%d eur=%d", usaCount, eurCount)
	}
}
