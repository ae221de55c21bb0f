package services

import (
	"testing"

	"golf-sim/internal/models"
)

func TestArchiveMatchPlayUSAWins(t *testing.T) {
	usa := &models.TournamentEntry{ID: "u1", DisplayName: "USA One", Team: "USA"}
	eur := &models.TournamentEntry{ID: "e1", DisplayName: "EUR One", Team: "EUR"}
	group := &models.Group{
		ID: "g1",
		Members: []models.GroupMember{
			{EntryID: usa.ID, Entry: usa},
			{EntryID: eur.ID, Entry: eur},
		},
	}

	strokes := map[string]map[int]int{usa.ID: {}, eur.ID: {}}
	for hole := 1; hole <= 18; hole++ {
		if hole <= 12 {
			strokes[usa.ID][hole] = 4
			strokes[eur.ID][hole] = 5
		} else {
			strokes[usa.ID][hole] = 5
			strokes[eur.ID][hole] = 5
		}
	}

	outcomes := ArchiveMatchPlay([]*models.Group{group}, strokes)
	if len(outcomes) != 1 {
		t.Fatalf("expected 1 outcome, got %d", len(outcomes))
	}
	o := outcomes[0]
	if o.Winner != "USA" {
		t.Errorf("Winner = %q, want USA", o.Winner)
	}
	if o.Margin != 12 {
		t.Errorf("Margin = %d, want 12", o.Margin)
	}
	if o.Score != "12 UP" {
		t.Errorf("Score = %q, want %q", o.Score, "12 UP")
	}
}

func TestArchiveMatchPlayHalved(t *testing.T) {
	usa := &models.TournamentEntry{ID: "u1", Team: "USA"}
	eur := &models.TournamentEntry{ID: "e1", Team: "EUR"}
	group := &models.Group{
		Members: []models.GroupMember{
			{EntryID: usa.ID, Entry: usa},
			{EntryID: eur.ID, Entry: eur},
		},
	}

	strokes := map[string]map[int]int{usa.ID: {}, eur.ID: {}}
	for hole := 1; hole <= 18; hole++ {
		strokes[usa.ID][hole] = 4
		strokes[eur.ID][hole] = 4
	}

	outcomes := ArchiveMatchPlay([]*models.Group{group}, strokes)
	if outcomes[0].Winner != "" || outcomes[0].Score != "Halved" {
		t.Errorf("expected a halved match, got %+v", outcomes[0])
	}
}

func TestDecideRoundTransitionStrokePlayReseeds(t *testing.T) {
	t1 := DecideRoundTransition(models.FormatStroke, 1, 0)
	if t1.NewRound != 2 || t1.NewStatus != models.StatusInProgress {
		t.Fatalf("round 1->2 transition = %+v", t1)
	}
	if t1.Reseed == nil || t1.Reseed.GroupSize != 4 || !t1.Reseed.SplitTees || !t1.Reseed.InvertSplit {
		t.Errorf("round 2 reseed = %+v, want groupSize=4 splitTees=true invertSplit=true", t1.Reseed)
	}

	t2 := DecideRoundTransition(models.FormatStroke, 2, 0)
	if t2.NewRound != 3 {
		t.Fatalf("round 2->3 transition = %+v", t2)
	}
	if t2.Reseed == nil || t2.Reseed.GroupSize != 2 || t2.Reseed.SplitTees || !t2.Reseed.LeadersLast {
		t.Errorf("round 3 reseed = %+v, want groupSize=2 splitTees=false leadersLast=true", t2.Reseed)
	}

	t3 := DecideRoundTransition(models.FormatStroke, 3, 0)
	if t3.Reseed == nil || t3.Reseed.GroupSize != 2 || t3.Reseed.SplitTees || !t3.Reseed.LeadersLast {
		t.Errorf("round 4 reseed = %+v, want groupSize=2 splitTees=false leadersLast=true", t3.Reseed)
	}
}

func TestDecideRoundTransitionMatchPlayTerminatesAfterRoundThree(t *testing.T) {
	tr := DecideRoundTransition(models.FormatMatch, 3, 0)
	if tr.NewStatus != models.StatusFinished {
		t.Errorf("match play should finish after round 3, got status %q", tr.NewStatus)
	}
}

func TestDecideRoundTransitionStrokePlayPlayoffOnTie(t *testing.T) {
	tr := DecideRoundTransition(models.FormatStroke, 4, 2)
	if tr.NewStatus != models.StatusPlayoff {
		t.Errorf("expected playoff status for a 2-way tie, got %q", tr.NewStatus)
	}
	if tr.Reseed == nil || tr.Reseed.GroupSize != 2 || !tr.Reseed.Playoff {
		t.Errorf("playoff reseed = %+v", tr.Reseed)
	}
}

func TestDecideRoundTransitionStrokePlayFinishesOnSoleWinner(t *testing.T) {
	tr := DecideRoundTransition(models.FormatStroke, 4, 1)
	if tr.NewStatus != models.StatusFinished {
		t.Errorf("expected finished status for a sole winner, got %q", tr.NewStatus)
	}
}

func TestAllGroupsFinished(t *testing.T) {
	if AllGroupsFinished(nil) {
		t.Errorf("no groups should not report finished")
	}
	groups := []*models.Group{{IsFinished: true}, {IsFinished: false}}
	if AllGroupsFinished(groups) {
		t.Errorf("expected false when one group is unfinished")
	}
	groups[1].IsFinished = true
	if !AllGroupsFinished(groups) {
		t.Errorf("expected true when every group is finished")
	}
}

func TestCountAtPosition1(t *testing.T) {
	one := 1
	two := 2
	entries := []*models.TournamentEntry{
		{Position: &one}, {Position: &one}, {Position: &two}, {Position: nil},
	}
	if got := CountAtPosition1(entries); got != 2 {
		t.Errorf("CountAtPosition1 = %d, want 2", got)
	}
}
