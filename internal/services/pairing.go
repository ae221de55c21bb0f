// internal/services/pairing.go
// Pairing/reseeder (spec.md §4.8) and shuffle-pairings (spec.md §4.13)

package services

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"golf-sim/internal/models"
)

// ErrPlayAlreadyStarted is returned by ShufflePairings when any group has
// already played a hole.
var ErrPlayAlreadyStarted = errors.New("cannot shuffle pairings: play has already started")

// PairingParams bundles the reseeder's inputs (spec.md §4.8).
type PairingParams struct {
	Entries            []*models.TournamentEntry
	Format             models.TournamentFormat
	CurrentTime        time.Time
	CurrentRound       int
	CutApplied         bool
	SplitTees          bool
	GroupSize          int
	LeadersLast        bool
	InvertSplit        bool
	TeeIntervalMinutes int
	Playoff            bool
	PriorTotals        map[string]int // cumulative strokes in prior rounds, keyed by entry ID
	RNG                *rand.Rand
}

// BuildPairings computes the new field grouping for a round. Deleting the
// prior round's groups and persisting the result is the caller's
// responsibility (repositories.GroupRepository.DeleteAllForTournamentWithTx
// / CreateWithTx).
func BuildPairings(p PairingParams) []*models.Group {
	field := selectField(p)
	ordered := orderField(p, field)

	if p.Format != models.FormatMatch && p.Format != models.FormatMatchFourball {
		ordered = placeHumans(p, ordered)
	}

	groups := chunkIntoGroups(ordered, p.GroupSize)
	result := make([]*models.Group, 0, len(groups))

	for gi, members := range groups {
		g := &models.Group{
			ID:           uuid.New().String(),
			HolesCompleted: 0,
			IsFinished:   false,
		}

		timeSlot := gi
		if p.SplitTees {
			startHole := 1
			wave := 1
			if gi%2 == 1 {
				startHole, wave = 10, 2
			}
			if p.InvertSplit {
				if startHole == 1 {
					startHole, wave = 10, 2
				} else {
					startHole, wave = 1, 1
				}
			}
			g.StartHole, g.Wave = startHole, wave
			timeSlot = gi / 2
		} else {
			g.StartHole, g.Wave = 1, 1
		}
		g.CurrentHole = g.StartHole

		g.TeeTime = p.CurrentTime.Add(time.Duration(p.TeeIntervalMinutes*timeSlot) * time.Minute)

		for _, e := range members {
			g.Members = append(g.Members, models.GroupMember{GroupID: g.ID, EntryID: e.ID, Entry: e})
		}
		result = append(result, g)
	}

	syncHumanTeeTimes(result)
	return result
}

func selectField(p PairingParams) []*models.TournamentEntry {
	field := make([]*models.TournamentEntry, 0, len(p.Entries))
	for _, e := range p.Entries {
		switch {
		case p.Playoff:
			if e.Position != nil && *e.Position == 1 {
				field = append(field, e)
			}
		case p.CutApplied && p.CurrentRound >= 3:
			if !e.Cut {
				field = append(field, e)
			}
		default:
			field = append(field, e)
		}
	}
	return field
}

func orderField(p PairingParams, field []*models.TournamentEntry) []*models.TournamentEntry {
	ordered := make([]*models.TournamentEntry, len(field))
	copy(ordered, field)

	switch {
	case p.Playoff || p.LeadersLast:
		sort.SliceStable(ordered, func(i, j int) bool {
			return p.PriorTotals[ordered[i].ID] < p.PriorTotals[ordered[j].ID]
		})
		reverseEntries(ordered)
	case p.Format == models.FormatMatch || p.Format == models.FormatMatchFourball:
		ordered = interleaveTeams(p.RNG, ordered, p.GroupSize)
	default:
		shuffleEntries(p.RNG, ordered)
	}
	return ordered
}

func reverseEntries(entries []*models.TournamentEntry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}

func shuffleEntries(rng *rand.Rand, entries []*models.TournamentEntry) {
	rng.Shuffle(len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })
}

// interleaveTeams splits entries into USA/EUR sides, shuffles each
// independently, then interleaves them: groups of 2 as (USA_i, EUR_i);
// groups of 4 as (USA_i, USA_i+1, EUR_i, EUR_i+1).
func interleaveTeams(rng *rand.Rand, entries []*models.TournamentEntry, groupSize int) []*models.TournamentEntry {
	var usa, eur []*models.TournamentEntry
	for _, e := range entries {
		if e.Team == "USA" {
			usa = append(usa, e)
		} else {
			eur = append(eur, e)
		}
	}
	shuffleEntries(rng, usa)
	shuffleEntries(rng, eur)

	out := make([]*models.TournamentEntry, 0, len(entries))
	if groupSize == 4 {
		for i := 0; i+1 < len(usa) && i+1 < len(eur); i += 2 {
			out = append(out, usa[i], usa[i+1], eur[i], eur[i+1])
		}
		return out
	}
	n := len(usa)
	if len(eur) < n {
		n = len(eur)
	}
	for i := 0; i < n; i++ {
		out = append(out, usa[i], eur[i])
	}
	return out
}

// placeHumans places the human entries within the bot-filled field per the
// leaders_last / chunked packing rules (spec.md §4.8 step 4).
func placeHumans(p PairingParams, ordered []*models.TournamentEntry) []*models.TournamentEntry {
	var humans, bots []*models.TournamentEntry
	for _, e := range ordered {
		if e.IsHuman {
			humans = append(humans, e)
		} else {
			bots = append(bots, e)
		}
	}
	if len(humans) == 0 {
		return ordered
	}

	if p.LeadersLast {
		bestHuman := humans[0]
		for _, h := range humans {
			if p.PriorTotals[h.ID] < p.PriorTotals[bestHuman.ID] {
				bestHuman = h
			}
		}
		insertAt := len(bots)
		for i, b := range bots {
			if p.PriorTotals[b.ID] <= p.PriorTotals[bestHuman.ID] {
				insertAt = i
				break
			}
		}
		result := make([]*models.TournamentEntry, 0, len(ordered))
		result = append(result, bots[:insertAt]...)
		result = append(result, humans...)
		result = append(result, bots[insertAt:]...)
		return result
	}

	// Non-leaders_last: pack humans into as few full group_size chunks as
	// possible, filling out any partial final chunk with leading bots.
	result := make([]*models.TournamentEntry, 0, len(ordered))
	result = append(result, humans...)
	if rem := len(humans) % p.GroupSize; rem != 0 {
		need := p.GroupSize - rem
		if need > len(bots) {
			need = len(bots)
		}
		result = append(result, bots[:need]...)
		bots = bots[need:]
	}
	result = append(result, bots...)
	return result
}

func chunkIntoGroups(ordered []*models.TournamentEntry, groupSize int) [][]*models.TournamentEntry {
	if groupSize <= 0 {
		groupSize = 4
	}
	groups := make([][]*models.TournamentEntry, 0, (len(ordered)+groupSize-1)/groupSize)
	for i := 0; i < len(ordered); i += groupSize {
		end := i + groupSize
		if end > len(ordered) {
			end = len(ordered)
		}
		groups = append(groups, ordered[i:end])
	}
	return groups
}

// syncHumanTeeTimes sets every human-containing group's tee_time and
// next_action_time to the minimum among them, so humans always play at the
// same clock time (spec.md §4.8 step 6).
func syncHumanTeeTimes(groups []*models.Group) {
	var humanGroups []*models.Group
	for _, g := range groups {
		for _, m := range g.Members {
			if m.Entry != nil && m.Entry.IsHuman {
				humanGroups = append(humanGroups, g)
				break
			}
		}
	}
	if len(humanGroups) < 2 {
		return
	}
	min := humanGroups[0].TeeTime
	for _, g := range humanGroups[1:] {
		if g.TeeTime.Before(min) {
			min = g.TeeTime
		}
	}
	for _, g := range humanGroups {
		g.TeeTime = min
		na := min
		g.NextActionTime = &na
	}
}

// ShufflePairings reshuffles team membership within the existing groups
// without touching tee_times — only legal before any group has played a
// hole (spec.md §4.13).
func ShufflePairings(rng *rand.Rand, groups []*models.Group) error {
	for _, g := range groups {
		if g.HolesCompleted > 0 {
			return ErrPlayAlreadyStarted
		}
	}

	var usa, eur []*models.TournamentEntry
	for _, g := range groups {
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
	}
	shuffleEntries(rng, usa)
	shuffleEntries(rng, eur)

	ui, ei := 0, 0
	for _, g := range groups {
		for mi, m := range g.Members {
			if m.Entry == nil {
				continue
			}
			if m.Entry.Team == "USA" {
				g.Members[mi].Entry = usa[ui]
				g.Members[mi].EntryID = usa[ui].ID
				ui++
			} else {
				g.Members[mi].Entry = eur[ei]
				g.Members[mi].EntryID = eur[ei].ID
				ei++
			}
		}
	}
	return nil
}
