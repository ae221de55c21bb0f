// internal/services/cut.go
// Cut engine: elimination of non-human entries after round 2 (spec.md §4.9)

package services

import (
	"sort"

	"golf-sim/internal/models"
)

const missingR12Total = 10_000

// entryR12 is one entry's rounds 1-2 stroke total, used to sort the field
// for the cut line.
type entryR12 struct {
	entry *models.TournamentEntry
	total int
}

// ApplyCut computes each entry's rounds-1-2 stroke total (missing data
// counts as 10,000, sinking it below the cut line), sorts ascending by
// (total, id), and marks non-human entries below the line as cut. The
// caller is responsible for setting tournament.CutApplied=true regardless
// of whether any entry was actually cut.
func ApplyCut(entries []*models.TournamentEntry, r12Totals map[string]int, cutSize int) {
	rows := make([]entryR12, 0, len(entries))
	for _, e := range entries {
		total, ok := r12Totals[e.ID]
		if !ok {
			total = missingR12Total
		}
		rows = append(rows, entryR12{entry: e, total: total})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].total != rows[j].total {
			return rows[i].total < rows[j].total
		}
		return rows[i].entry.ID < rows[j].entry.ID
	})

	if len(rows) <= cutSize {
		return
	}

	cutScore := rows[cutSize-1].total
	for _, row := range rows {
		row.entry.Cut = !row.entry.IsHuman && row.total > cutScore
	}
}
