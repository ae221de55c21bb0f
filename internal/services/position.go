// internal/services/position.go
// Position engine: dense-rank leaderboard positions (spec.md §4.7)

package services

import (
	"sort"

	"golf-sim/internal/models"
)

// RecomputePositions sorts entries by (tournament_strokes asc, id asc) and
// assigns dense-rank positions. Entries with zero strokes recorded keep a
// nil position. Mutates entry.Position in place.
func RecomputePositions(entries []*models.TournamentEntry) {
	ranked := make([]*models.TournamentEntry, 0, len(entries))
	for _, e := range entries {
		if e.TournamentStrokes > 0 {
			ranked = append(ranked, e)
		} else {
			e.Position = nil
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TournamentStrokes != ranked[j].TournamentStrokes {
			return ranked[i].TournamentStrokes < ranked[j].TournamentStrokes
		}
		return ranked[i].ID < ranked[j].ID
	})

	pos := 0
	for i, e := range ranked {
		if i == 0 || e.TournamentStrokes != ranked[i-1].TournamentStrokes {
			pos = i + 1
		}
		p := pos
		e.Position = &p
	}
}
