// internal/services/win_probability.go
// Monte-Carlo win-probability engine (spec.md §4.6)

package services

import (
	"math"
	"math/rand"

	"github.com/montanaflynn/stats"
)

const (
	winProbTrials        = 2000
	winProbContenderBand = 15.0
	humanAssumedOverall  = 92.0
)

// WinProbContender is one non-cut entry's projected finishing state, used
// as input to the Monte-Carlo trial.
type WinProbContender struct {
	EntryID        string
	ScoreToPar     int
	CompletedHoles int
	IsHuman        bool
	GolferOverall  float64
}

// ComputeWinProbabilities runs a 2000-trial Monte-Carlo simulation over the
// contenders within 15 strokes of the current projected leader, returning
// win probability per entry ID for every probability > 0.001.
func ComputeWinProbabilities(rng *rand.Rand, contenders []WinProbContender) map[string]float64 {
	type projected struct {
		id    string
		exp   float64
		sigma float64
	}

	projections := make([]projected, 0, len(contenders))
	minExp := math.Inf(1)
	for _, c := range contenders {
		overall := humanAssumedOverall
		if !c.IsHuman {
			overall = c.GolferOverall
		}
		skillAdj := 0.10 - 0.005*(overall-50)
		remaining := float64(72 - c.CompletedHoles)
		if remaining < 0 {
			remaining = 0
		}
		expFinal := float64(c.ScoreToPar) + remaining*skillAdj
		sigma := 0.45 * math.Sqrt(remaining)
		if sigma == 0 {
			sigma = 0.001
		}
		projections = append(projections, projected{id: c.EntryID, exp: expFinal, sigma: sigma})
		if expFinal < minExp {
			minExp = expFinal
		}
	}

	pruned := make([]projected, 0, len(projections))
	for _, p := range projections {
		if p.exp < minExp+winProbContenderBand {
			pruned = append(pruned, p)
		}
	}
	if len(pruned) == 0 {
		return map[string]float64{}
	}

	wins := make(map[string]float64, len(pruned))
	for i := 0; i < winProbTrials; i++ {
		var winners []string
		best := math.Inf(1)
		for _, p := range pruned {
			draw := p.exp + rng.NormFloat64()*p.sigma
			switch {
			case draw < best:
				best = draw
				winners = []string{p.id}
			case draw == best:
				winners = append(winners, p.id)
			}
		}
		share := 1.0 / float64(len(winners))
		for _, w := range winners {
			wins[w] += share
		}
	}

	probs := make(map[string]float64, len(wins))
	for _, p := range pruned {
		credit := wins[p.id]
		if credit == 0 {
			continue
		}
		prob, err := stats.Round(credit/float64(winProbTrials), 4)
		if err != nil {
			prob = credit / float64(winProbTrials)
		}
		if prob > 0.001 {
			probs[p.id] = prob
		}
	}
	return probs
}
