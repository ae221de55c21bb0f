// internal/services/round_state.go
// Round/tournament state machine and match-play archival (spec.md §4.10)

package services

import (
	"fmt"

	"golf-sim/internal/models"
)

// ArchiveMatchPlay computes the per-group match-play outcome for the
// current round and returns one models.MatchOutcome per group. strokes
// looks up (entryID, holeNumber) -> strokes; a missing entry is treated as
// not having played that hole and is excluded from that hole's comparison.
func ArchiveMatchPlay(groups []*models.Group, strokes map[string]map[int]int) []models.MatchOutcome {
	outcomes := make([]models.MatchOutcome, 0, len(groups))
	for _, g := range groups {
		var usa, eur []*models.TournamentEntry
		for _, m := range g.Members {
			if m.Entry == nil {
				continue
			}
			if m.Entry.Team == "USA" {
				usa = append(usa, m.Entry)
			} else {
				eur = append(eur, m.Entry)
			}
		}

		usaHoles, eurHoles := 0, 0
		for hole := 1; hole <= 18; hole++ {
			usaMin, usaOK := teamMinStrokes(usa, hole, strokes)
			eurMin, eurOK := teamMinStrokes(eur, hole, strokes)
			switch {
			case usaOK && eurOK && usaMin < eurMin:
				usaHoles++
			case usaOK && eurOK && eurMin < usaMin:
				eurHoles++
			case usaOK && !eurOK:
				usaHoles++
			case eurOK && !usaOK:
				eurHoles++
			}
		}

		outcome := models.MatchOutcome{
			GroupID:  g.ID,
			USANames: names(usa),
			EURNames: names(eur),
		}
		switch {
		case usaHoles > eurHoles:
			diff := usaHoles - eurHoles
			outcome.Winner = "USA"
			outcome.Margin = diff
			outcome.Score = fmt.Sprintf("%d UP", diff)
		case eurHoles > usaHoles:
			diff := eurHoles - usaHoles
			outcome.Winner = "EUR"
			outcome.Margin = diff
			outcome.Score = fmt.Sprintf("%d UP", diff)
		default:
			outcome.Winner = ""
			outcome.Margin = 0
			outcome.Score = "Halved"
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func teamMinStrokes(team []*models.TournamentEntry, hole int, strokes map[string]map[int]int) (int, bool) {
	min := 0
	found := false
	for _, e := range team {
		s, ok := strokes[e.ID][hole]
		if !ok {
			continue
		}
		if !found || s < min {
			min = s
			found = true
		}
	}
	return min, found
}

func names(entries []*models.TournamentEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.DisplayName
	}
	return out
}

// ReseedDecision is the pairing configuration the state machine hands to
// BuildPairings when a round rolls over.
type ReseedDecision struct {
	GroupSize   int
	SplitTees   bool
	InvertSplit bool
	LeadersLast bool
	Playoff     bool
}

// RoundTransition is the outcome of DecideRoundTransition: the new round
// number, the new tournament status, and (if the tournament is not
// finishing) the reseed configuration for the new round.
type RoundTransition struct {
	NewRound  int
	NewStatus models.TournamentStatus
	Reseed    *ReseedDecision
}

// DecideRoundTransition implements spec.md §4.10 steps 3-4, given that the
// caller has already archived match results and applied the cut where
// applicable. winnerCount is only consulted when currentRound==4.
func DecideRoundTransition(format models.TournamentFormat, currentRound int, winnerCount int) RoundTransition {
	isMatch := format == models.FormatMatch || format == models.FormatMatchFourball

	if currentRound < 4 {
		now := currentRound + 1
		t := RoundTransition{NewRound: now, NewStatus: models.StatusInProgress}

		if isMatch {
			if now <= 2 {
				t.Reseed = &ReseedDecision{GroupSize: 2, SplitTees: false}
			} else {
				t.NewStatus = models.StatusFinished
			}
			return t
		}

		if now <= 2 {
			t.Reseed = &ReseedDecision{GroupSize: 4, SplitTees: true, InvertSplit: now == 2}
		} else {
			t.Reseed = &ReseedDecision{GroupSize: 2, SplitTees: false, LeadersLast: true}
		}
		return t
	}

	// Round 4 just finished (stroke play only; match play terminates at round 3).
	if winnerCount > 1 {
		return RoundTransition{
			NewRound:  currentRound + 1,
			NewStatus: models.StatusPlayoff,
			Reseed:    &ReseedDecision{GroupSize: winnerCount, SplitTees: false, Playoff: true},
		}
	}
	return RoundTransition{NewRound: currentRound, NewStatus: models.StatusFinished}
}

// AllGroupsFinished reports whether every group in a round has is_finished=true.
func AllGroupsFinished(groups []*models.Group) bool {
	for _, g := range groups {
		if !g.IsFinished {
			return false
		}
	}
	return len(groups) > 0
}

// CountAtPosition1 counts entries with Position == 1, used to detect a
// stroke-play playoff tie.
func CountAtPosition1(entries []*models.TournamentEntry) int {
	n := 0
	for _, e := range entries {
		if e.Position != nil && *e.Position == 1 {
			n++
		}
	}
	return n
}
