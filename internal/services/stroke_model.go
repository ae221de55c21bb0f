// internal/services/stroke_model.go
// Per-hole stroke generator for bot entries, and its derived stats.
// Grounded on spec.md §4.3; superset of original_source's simpler
// tournaments/services/scoring.py (which only modeled driving/approach/
// putting against par, with no form/momentum/pressure/weather terms).

package services

import (
	"math"
	"math/rand"

	"golf-sim/internal/models"
)

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// parSkillWeights returns the (power, ball_striking, approach, putting)
// weights used by the skill_mix term, per spec.md §4.3 item 10.
func parSkillWeights(par int) (power, ballStriking, approach, putting float64) {
	switch par {
	case 3:
		return 0.15, 0.45, 0.20, 0.20
	case 5:
		return 0.35, 0.25, 0.20, 0.20
	default: // par 4 and any unusual par
		return 0.25, 0.30, 0.20, 0.25
	}
}

// SimulateHole draws a bot's strokes and derived stats for one hole,
// lazily initializing and then advancing the entry's per-round sim state.
// position is the entry's current leaderboard position (nil if none yet),
// used only for the round-4 pressure term.
func SimulateHole(
	rng *rand.Rand,
	entry *models.TournamentEntry,
	golfer *models.Golfer,
	course *models.Course,
	hole *models.Hole,
	roundNumber int,
	conditions models.RoundConditions,
	position *int,
) (strokes int, stats models.HoleStats) {
	par := hole.Par
	consistency := golfer.Consistency / 100.0
	volatility := clampFloat(golfer.Volatility, 0.6, 2.0)

	if entry.SimState == nil {
		entry.SimState = models.SimState{}
	}
	state, known := entry.SimState.ForRound(roundNumber)
	if !known {
		formSigma := (0.18 + (1-consistency)*0.22) * volatility
		state = models.RoundSimState{
			Form:     rng.NormFloat64() * formSigma,
			Momentum: 0,
		}
	}

	water := boolToFloat(hole.WaterInPlay)
	trees := boolToFloat(hole.TreesInPlay)
	bunkers := math.Min(float64(hole.BunkerCount), 6)

	holeDifficulty := bunkers*0.10 + 0.40*water + 0.20*trees + hole.GreenSlope*0.03
	globalDifficultyPenalty := (course.DifficultyRating - 7.5) * 0.10

	drivingAccuracy := golfer.DrivingAccuracy / 100.0
	approachSkill := golfer.Approach / 100.0
	puttingSkill := golfer.Putting / 100.0
	discipline := golfer.Discipline / 100.0
	sand := golfer.Sand / 100.0
	riskTolerance := golfer.RiskTolerance / 100.0
	clutch := golfer.Clutch / 100.0
	weatherHandling := golfer.WeatherHandling / 100.0
	courseManagement := golfer.CourseManagement / 100.0
	shortGame := golfer.ShortGame / 100.0

	roughPenalty := (1 - drivingAccuracy) * (course.RoughSeverity / 10.0) * 0.35
	holdingPenalty := (course.FairwayFirmness / 10.0) * 0.15 * (1 - approachSkill)

	hazardPenalty := 0.0
	if hole.WaterInPlay {
		hazardPenalty += (1-drivingAccuracy)*0.22 + (1-discipline)*0.10
	}
	if hole.TreesInPlay {
		hazardPenalty += (1 - drivingAccuracy) * 0.14
	}

	bunkerPenalty := bunkers * 0.03 * (1 - sand)
	puttingPenalty := hole.GreenSlope*0.02*(1-puttingSkill) + math.Max(0, course.GreensSpeed-10)*0.08*(1-puttingSkill)

	weatherPenalty := 0.0
	if conditions.WindMPH > 5 {
		weatherPenalty += (conditions.WindMPH - 5) * 0.015 * (1.5 - weatherHandling)
	}
	switch conditions.Rain {
	case models.RainLight:
		weatherPenalty += 0.20 * (1 - weatherHandling)
	case models.RainHeavy:
		weatherPenalty += 0.50 * (1 - weatherHandling)
	}

	messy := math.Min(1, holeDifficulty/1.2)

	wPower, wBallStriking, wApproach, wPutting := parSkillWeights(par)
	skillMix := wPower*(golfer.DrivingPower/100.0) +
		wBallStriking*(golfer.BallStriking/100.0) +
		wApproach*approachSkill +
		wPutting*puttingSkill +
		shortGame*messy*0.05 +
		courseManagement*0.05 +
		discipline*0.05
	skillStrokes := (0.70 - skillMix) * 1.15

	riskMean := -(riskTolerance - 0.5) * 0.06
	clutchHelp := -(clutch - 0.5) * (0.04 + 0.04*messy)

	pressurePenalty := 0.0
	if roundNumber == 4 && hole.Number >= 10 && position != nil && *position <= 5 {
		intensity := 0.5
		if *position <= 3 {
			intensity = 1.0
		}
		pressurePenalty = (0.75 - clutch) * 0.6 * intensity
	}

	expected := float64(par) + holeDifficulty + globalDifficultyPenalty + roughPenalty +
		holdingPenalty + hazardPenalty + bunkerPenalty + puttingPenalty + weatherPenalty +
		skillStrokes + state.Form + state.Momentum + riskMean + clutchHelp + pressurePenalty

	baseSigma := 0.38 + (1-consistency)*0.35
	sigma := baseSigma*volatility + riskTolerance*0.06
	if pressurePenalty > 0.05 {
		sigma += 0.20
	}

	raw := math.Round(rng.NormFloat64()*sigma + expected)
	strokes = clampInt(int(raw), par-2, par+4)

	streakFactor := 0.10 + (1-consistency)*0.12
	decay := 0.62 + consistency*0.20
	state.Momentum = clampFloat(state.Momentum*decay+streakFactor*float64(par-strokes), -0.75, 0.75)
	entry.SimState[roundNumber] = state

	stats = deriveHoleStats(rng, golfer, course, hole, strokes)
	return strokes, stats
}

// deriveHoleStats produces the self-consistent (fir, gir, putts, proximity,
// commentary, excitement) record for a sampled strokes value (spec.md §4.3
// "Stats derivation").
func deriveHoleStats(rng *rand.Rand, golfer *models.Golfer, course *models.Course, hole *models.Hole, strokes int) models.HoleStats {
	par := hole.Par
	drivingAccuracy := golfer.DrivingAccuracy / 100.0
	approachSkill := golfer.Approach / 100.0
	shortGame := golfer.ShortGame / 100.0
	riskTolerance := golfer.RiskTolerance / 100.0
	courseManagement := golfer.CourseManagement / 100.0

	driveDistance := int(math.Round(275 + (golfer.DrivingPower/100.0)*45 + rng.NormFloat64()*10 + (course.FairwayFirmness-5)*3))

	var fir *bool
	if par >= 4 {
		base := 0.50 + drivingAccuracy*0.40 - riskTolerance*0.10 + courseManagement*0.05
		if hole.TreesInPlay {
			base -= 0.10
		}
		if strokes >= par+2 {
			base -= 0.40
		}
		if strokes < par {
			base += 0.20
		}
		base = clampFloat(base, 0.10, 0.95)
		hit := rng.Float64() < base
		fir = &hit
	}

	var girProb float64
	switch {
	case strokes < par:
		girProb = 0.95
	case strokes == par:
		girProb = 0.65 + approachSkill*0.15 + shortGame*0.15
	case strokes == par+1:
		girProb = 0.15
	default:
		girProb = 0.05
	}
	gir := rng.Float64() < girProb

	var putts int
	if gir {
		putts = maxInt(0, strokes-(par-2))
	} else {
		putts = maxInt(0, strokes-(par-1))
	}
	if !gir && strokes == par-1 {
		if rng.Float64() < 0.20 {
			putts = 0
		} else {
			putts = 1
		}
	}

	var prox float64
	if gir {
		switch {
		case putts == 0:
			prox = 0
		case putts == 1:
			prox = 3 + rng.Float64()*9
		case putts == 2:
			prox = 15 + rng.Float64()*25
		default:
			prox = 40 + rng.Float64()*30
		}
	} else {
		prox = 25 + rng.Float64()*35
	}

	commentary, excitement := commentaryFor(par, strokes, fir, gir, putts, driveDistance)

	return models.HoleStats{
		FIR:           fir,
		GIR:           gir,
		Putts:         putts,
		DriveDistance: driveDistance,
		ProxToHole:    prox,
		Commentary:    commentary,
		Excitement:    excitement,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// commentaryFor implements the commentary/excitement rule table of spec.md
// §4.3: hole-in-one and eagle-or-better score the max excitement; birdies,
// scrambling pars, and long drives add smaller bumps; anything else is routine.
func commentaryFor(par, strokes int, fir *bool, gir bool, putts, driveDistance int) (string, int) {
	switch {
	case strokes == 1:
		return "Hole in one!", 10
	case strokes <= par-2:
		return "Eagle!", 10
	case strokes == par-1:
		excitement := 3
		if driveDistance > 300 {
			excitement++
		}
		return "Birdie.", excitement
	case strokes == par && !gir:
		excitement := 2
		if driveDistance > 300 {
			excitement++
		}
		return "Scrambles for par.", excitement
	case driveDistance > 300:
		return "Long drive off the tee.", 1
	default:
		return "Routine par.", 0
	}
}
