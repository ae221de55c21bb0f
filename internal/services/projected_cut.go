// internal/services/projected_cut.go
// Projected-cut calculator (spec.md §4.5)

package services

import (
	"sort"

	"github.com/montanaflynn/stats"

	"golf-sim/internal/models"
)

// ProjectedCut is the live cut-line projection shown while rounds 1-2 are
// still in progress, before the cut has actually been applied.
type ProjectedCut struct {
	CutScore      float64 `json:"cut_score"`
	CutToPar      float64 `json:"cut_to_par"`
	CutPosition   int     `json:"cut_position"`
	PlayersAtLine int     `json:"players_at_line"`
	PlayersInside int     `json:"players_inside"`
}

// ScoreToPar sums strokes minus par over a set of hole results, using the
// hole's par looked up from the course.
func ScoreToPar(results []*models.HoleResult, parByHole map[int]int) int {
	total := 0
	for _, hr := range results {
		total += hr.Strokes - parByHole[hr.HoleNumber]
	}
	return total
}

// ComputeProjectedCut computes the live cut line from every entry's
// score-to-par across rounds 1-2. Returns nil if the field is at or below
// cutSize (no cut would bite).
func ComputeProjectedCut(scoresToPar []int, cutSize int) (*ProjectedCut, error) {
	if len(scoresToPar) <= cutSize {
		return nil, nil
	}

	sorted := make([]float64, len(scoresToPar))
	for i, s := range scoresToPar {
		sorted[i] = float64(s)
	}
	sort.Float64s(sorted)

	cutVal, err := stats.Round(sorted[cutSize-1], 0)
	if err != nil {
		return nil, err
	}

	atLine, inside := 0, 0
	for _, v := range sorted {
		switch {
		case v == cutVal:
			atLine++
		case v < cutVal:
			inside++
		}
	}

	return &ProjectedCut{
		CutScore:      cutVal,
		CutToPar:      cutVal,
		CutPosition:   cutSize,
		PlayersAtLine: atLine,
		PlayersInside: inside,
	}, nil
}
