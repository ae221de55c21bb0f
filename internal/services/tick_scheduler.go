// internal/services/tick_scheduler.go
// Tick scheduler (spec.md §4.11) and sim-to-tee / sim-to-end-of-day (§4.12)

package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"golf-sim/internal/models"
)

const simToEndOfDayMaxIterations = 1000

// TickInput bundles everything RunTick needs to advance a tournament's
// groups by a number of minutes. Groups must have Members[].Entry
// populated. ExistingResults and PriorRoundsTotal are read-only snapshots
// taken before the tick began; RunTick does not mutate them, it returns
// new rows for the caller to persist.
type TickInput struct {
	RNG              *rand.Rand
	CurrentTime      time.Time
	DeltaMinutes     int
	Course           *models.Course
	RoundNumber      int
	Conditions       models.RoundConditions
	Groups           []*models.Group
	ExistingResults  map[string]map[int]*models.HoleResult // entryID -> hole -> result, this round only
	PriorRoundsTotal map[string]int                        // entryID -> strokes summed over prior rounds
	GolferByEntry    map[string]*models.Golfer              // entryID -> golfer, bots only
}

// TickOutput is everything RunTick computed: the new clock, new hole
// results to insert, the groups/entries that changed, and any events to
// log.
type TickOutput struct {
	NewCurrentTime time.Time
	NewResults     []*models.HoleResult
	ChangedGroups  []*models.Group
	ChangedEntries []*models.TournamentEntry
	Events         []*models.TournamentEvent
}

// RunTick advances the virtual clock by DeltaMinutes and simulates every
// non-finished group's cooperative hole-by-hole progress, honoring the
// first-hole guard and the human brake (spec.md §4.11).
func RunTick(in TickInput) TickOutput {
	out := TickOutput{NewCurrentTime: in.CurrentTime.Add(time.Duration(in.DeltaMinutes) * time.Minute)}

	roundResults := make(map[string]map[int]*models.HoleResult, len(in.ExistingResults))
	for entryID, byHole := range in.ExistingResults {
		m := make(map[int]*models.HoleResult, len(byHole))
		for h, r := range byHole {
			m[h] = r
		}
		roundResults[entryID] = m
	}

	changedEntries := map[string]*models.TournamentEntry{}

	for _, g := range in.Groups {
		if g.IsFinished {
			continue
		}
		if g.NextActionTime == nil {
			na := g.TeeTime
			g.NextActionTime = &na
		}
		if g.TeeTime.After(out.NewCurrentTime) {
			continue
		}

		hasHuman := false
		for _, m := range g.Members {
			if m.Entry != nil && m.Entry.IsHuman {
				hasHuman = true
				break
			}
		}

		groupChanged := false
		for !g.IsFinished && !g.NextActionTime.After(out.NewCurrentTime) {
			holeNum := NextHole(g.StartHole, g.HolesCompleted)
			hole := lookupHole(in.Course, holeNum)
			if hole == nil {
				break
			}
			duration := MinutesForHole(hole.Par, len(g.Members))

			if g.HolesCompleted == 0 && g.NextActionTime.Equal(g.TeeTime) {
				completion := g.TeeTime.Add(time.Duration(duration) * time.Minute)
				if completion.After(out.NewCurrentTime) {
					g.NextActionTime = &completion
					break
				}
			}

			for _, m := range g.Members {
				e := m.Entry
				if e == nil || e.IsHuman {
					continue
				}
				if _, ok := roundResults[e.ID][holeNum]; ok {
					continue
				}
				golfer := in.GolferByEntry[e.ID]
				strokes, stats := SimulateHole(in.RNG, e, golfer, in.Course, hole, in.RoundNumber, in.Conditions, e.Position)
				hr := &models.HoleResult{
					ID:          uuid.New().String(),
					EntryID:     e.ID,
					RoundNumber: in.RoundNumber,
					HoleNumber:  holeNum,
					Strokes:     strokes,
					Stats:       stats,
					CreatedAt:   out.NewCurrentTime,
				}
				out.NewResults = append(out.NewResults, hr)
				if roundResults[e.ID] == nil {
					roundResults[e.ID] = map[int]*models.HoleResult{}
				}
				roundResults[e.ID][holeNum] = hr

				if ev := significantOutcome(e, hole, strokes, holeNum, in.RoundNumber); ev != nil {
					out.Events = append(out.Events, ev)
				}
			}

			for _, m := range g.Members {
				e := m.Entry
				if e == nil {
					continue
				}
				if e.IsHuman {
					if _, ok := roundResults[e.ID][holeNum]; ok && e.ThruHole < holeNum {
						e.ThruHole = holeNum
					}
				} else if holeNum > e.ThruHole {
					e.ThruHole = holeNum
				}
				e.TotalStrokes = sumStrokes(roundResults[e.ID])
				e.TournamentStrokes = in.PriorRoundsTotal[e.ID] + e.TotalStrokes
				changedEntries[e.ID] = e
			}

			g.HolesCompleted++
			groupChanged = true
			if g.HolesCompleted >= 18 {
				g.IsFinished = true
			} else {
				g.CurrentHole = NextHole(g.StartHole, g.HolesCompleted)
			}
			na := g.NextActionTime.Add(time.Duration(duration) * time.Minute)
			g.NextActionTime = &na

			if hasHuman {
				break
			}
		}

		if groupChanged {
			out.ChangedGroups = append(out.ChangedGroups, g)
		}
	}

	for _, e := range changedEntries {
		out.ChangedEntries = append(out.ChangedEntries, e)
	}
	return out
}

func lookupHole(course *models.Course, number int) *models.Hole {
	for i := range course.Holes {
		if course.Holes[i].Number == number {
			return &course.Holes[i]
		}
	}
	return nil
}

func sumStrokes(byHole map[int]*models.HoleResult) int {
	total := 0
	for _, r := range byHole {
		total += r.Strokes
	}
	return total
}

func significantOutcome(e *models.TournamentEntry, hole *models.Hole, strokes, holeNum, round int) *models.TournamentEvent {
	diff := strokes - hole.Par
	var importance int
	var label string
	switch {
	case diff <= -3:
		importance, label = models.ImportanceAlbatross, "an albatross"
		if strokes == 1 {
			label = "a hole-in-one"
		}
	case diff == -2:
		importance, label = models.ImportanceEagle, "an eagle"
	case diff == -1:
		importance, label = models.ImportanceBirdie, "a birdie"
	case diff == 2:
		importance, label = models.ImportanceRoutine, "a double bogey"
	case diff >= 3:
		importance, label = models.ImportanceRoutine, "a big number"
	default:
		return nil
	}
	return &models.TournamentEvent{
		ID:           uuid.New().String(),
		TournamentID: e.TournamentID,
		RoundNumber:  round,
		Text:         fmt.Sprintf("%s makes %s on hole %d", e.DisplayName, label, holeNum),
		Importance:   importance,
	}
}

// SimToTeeDelta computes the minutes argument for a sim-to-tee request:
// the gap between now and the tee_time of the group containing any human,
// plus one minute so the tick actually crosses the boundary.
func SimToTeeDelta(currentTime time.Time, groups []*models.Group) (int, bool) {
	for _, g := range groups {
		for _, m := range g.Members {
			if m.Entry != nil && m.Entry.IsHuman {
				delta := int(g.TeeTime.Sub(currentTime).Minutes()) + 1
				return delta, true
			}
		}
	}
	return 0, false
}

// SimToEndOfDayStep describes one 15-minute (or final 10-minute) catch-up
// tick in the sim-to-end-of-day loop.
type SimToEndOfDayStep struct {
	Minutes int
}

// PlanSimToEndOfDay returns the bounded sequence of tick sizes used by
// sim-to-end-of-day: repeated 15-minute ticks with a final 10-minute
// catch-up, bounded by 1000 iterations. The caller stops early as soon as
// the round index changes or status becomes finished.
func PlanSimToEndOfDay() []SimToEndOfDayStep {
	steps := make([]SimToEndOfDayStep, 0, simToEndOfDayMaxIterations)
	for i := 0; i < simToEndOfDayMaxIterations-1; i++ {
		steps = append(steps, SimToEndOfDayStep{Minutes: 15})
	}
	steps = append(steps, SimToEndOfDayStep{Minutes: 10})
	return steps
}
