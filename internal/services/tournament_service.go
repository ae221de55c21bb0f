// internal/services/tournament_service.go
// Tournament orchestration: field creation, snapshot reads, and every
// clock-advancing mutation. This is the engine's transactional core; every
// mutating operation here runs under the per-tournament lock (spec.md §5).

package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	"golf-sim/internal/models"
	"golf-sim/internal/repositories"
	"golf-sim/internal/utils"
)

const (
	defaultTickMinutes    = 11
	defaultTeeIntervalMin = 11
	matchPlayFieldSize    = 24 // 12 USA + 12 EUR, spec.md §8 boundary scenario 8
	tournamentLockTTL     = 10 * time.Second
)

// Broadcaster pushes a live update to every WebSocket client subscribed to
// a tournament. Satisfied by *websocket.Hub without an import cycle: the
// server wires it in after construction via SetBroadcaster.
type Broadcaster interface {
	BroadcastTournamentUpdate(tournamentID string, updateType string, data interface{})
}

// TournamentService owns the simulation lifecycle for a single tournament:
// creation, snapshot reads, and every clock-advancing mutation.
type TournamentService struct {
	repos        *repositories.Container
	cache        *CacheService
	notification *NotificationService
	events       *EventService
	logger       *log.Logger
	broadcaster  Broadcaster
}

// NewTournamentService creates a new tournament service
func NewTournamentService(repos *repositories.Container, cache *CacheService, notification *NotificationService, events *EventService, logger *log.Logger) *TournamentService {
	return &TournamentService{
		repos:        repos,
		cache:        cache,
		notification: notification,
		events:       events,
		logger:       logger,
	}
}

// HumanEntryRequest describes one human competitor supplied at creation.
type HumanEntryRequest struct {
	Name        string
	Country     string
	Handedness  string
	AvatarColor string
	Team        string // "USA" or "EUR", only meaningful for match formats
}

// CreateTournamentRequest is the body of POST /api/tournaments/.
type CreateTournamentRequest struct {
	Name        string
	CourseID    string
	GolferCount int
	FieldType   string // top_ranked, amateur, random, mixed, mid_tier
	Format      models.TournamentFormat
	Humans      []HumanEntryRequest
	StartTime   *time.Time
}

// HoleResultRequest is the body of POST /api/tournaments/{id}/hole-result/.
type HoleResultRequest struct {
	EntryID     string
	HoleNumber  int
	Strokes     int
	RoundNumber int // 0 means the tournament's current round
}

// TournamentSnapshot is the read model returned by GetSnapshot, matching
// spec.md §6's GET /api/tournaments/{id}/ payload.
type TournamentSnapshot struct {
	Tournament     *models.Tournament
	Entries        []*models.TournamentEntry
	Groups         []*models.Group
	HoleResults    []*models.HoleResult
	ProjectedCut   *ProjectedCut
	RecentEvents   []*models.TournamentEvent
	BestRounds     []BestRound
	SessionHistory models.SessionHistory
	WinProbability map[string]float64
}

// BestRound is one entry's current-round standing, used for the snapshot's
// top-5 lowest-scores list.
type BestRound struct {
	EntryID     string `json:"entry_id"`
	DisplayName string `json:"display_name"`
	Strokes     int    `json:"strokes"`
}

// SetBroadcaster wires the WebSocket hub in after construction, avoiding an
// import cycle between internal/services and internal/websocket.
func (s *TournamentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

func (s *TournamentService) broadcast(tournamentID, updateType string, data interface{}) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.BroadcastTournamentUpdate(tournamentID, updateType, data)
}

// List returns every tournament owned by an organizer (or all, if empty).
func (s *TournamentService) List(ctx context.Context, organizerID string) ([]*models.Tournament, error) {
	return s.repos.Tournament.List(ctx, organizerID)
}

// Create assembles a new tournament's field, course, and round-1 pairings
// in a single transaction.
func (s *TournamentService) Create(ctx context.Context, organizerID string, req CreateTournamentRequest) (*models.Tournament, error) {
	if err := utils.ValidateTournamentName(req.Name); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	course, err := s.repos.Course.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("course not found: %w", err)
	}
	if len(course.Holes) == 0 {
		return nil, ErrNoCourse
	}

	isMatch := req.Format == models.FormatMatch || req.Format == models.FormatMatchFourball
	total := req.GolferCount
	if isMatch {
		total = matchPlayFieldSize
	}

	entries, err := s.buildField(ctx, req, total, isMatch)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	if req.StartTime != nil {
		startTime = *req.StartTime
	}

	tournament := &models.Tournament{
		ID:           utils.GenerateUUID(),
		OrganizerID:  organizerID,
		Name:         req.Name,
		CourseID:     req.CourseID,
		Status:       models.StatusSetup,
		Format:       req.Format,
		StartTime:    startTime,
		CurrentTime:  startTime,
		CurrentRound: 1,
		CutSize:      65,
	}

	groupSize, splitTees := 4, true
	if isMatch {
		groupSize, splitTees = 2, false
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	groups := BuildPairings(PairingParams{
		Entries:            entries,
		Format:             req.Format,
		CurrentTime:        tournament.CurrentTime,
		CurrentRound:       1,
		SplitTees:          splitTees,
		GroupSize:          groupSize,
		TeeIntervalMinutes: defaultTeeIntervalMin,
		PriorTotals:        map[string]int{},
		RNG:                rng,
	})

	tx, err := s.repos.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.repos.Tournament.CreateWithTx(tx, tournament); err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	for _, e := range entries {
		e.TournamentID = tournament.ID
		if err := s.repos.Entry.CreateWithTx(tx, e); err != nil {
			return nil, fmt.Errorf("failed to create entry: %w", err)
		}
	}
	for _, g := range groups {
		g.TournamentID = tournament.ID
		if err := s.repos.Group.CreateWithTx(tx, g); err != nil {
			return nil, fmt.Errorf("failed to create group: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	s.logger.Printf("created tournament %s (%s, %d entries)", tournament.ID, tournament.Format, len(entries))
	s.broadcast(tournament.ID, "tournament_created", tournament)
	return tournament, nil
}

// buildField selects bot golfers per fieldType and merges them with the
// requested human entries, assigning USA/EUR teams for match formats so
// that both sides end up balanced (spec.md §8 boundary scenario 8).
func (s *TournamentService) buildField(ctx context.Context, req CreateTournamentRequest, total int, isMatch bool) ([]*models.TournamentEntry, error) {
	botsNeeded := total - len(req.Humans)
	if botsNeeded < 0 {
		botsNeeded = 0
	}

	golfers, err := s.selectGolfers(ctx, req.FieldType, botsNeeded)
	if err != nil {
		return nil, err
	}

	entries := make([]*models.TournamentEntry, 0, len(golfers)+len(req.Humans))
	usaCount, eurCount := 0, 0
	nextTeam := func() string {
		if usaCount <= eurCount {
			usaCount++
			return "USA"
		}
		eurCount++
		return "EUR"
	}

	for _, h := range req.Humans {
		team := h.Team
		switch {
		case isMatch && team == "":
			team = nextTeam()
		case isMatch && team == "USA":
			usaCount++
		case isMatch:
			eurCount++
		}
		entries = append(entries, &models.TournamentEntry{
			ID:          utils.GenerateUUID(),
			DisplayName: h.Name,
			IsHuman:     true,
			Team:        team,
			Country:     h.Country,
			Handedness:  h.Handedness,
			AvatarColor: h.AvatarColor,
			SimState:    models.SimState{},
		})
	}

	for _, g := range golfers {
		team := ""
		if isMatch {
			team = nextTeam()
		}
		golferID := g.ID
		entries = append(entries, &models.TournamentEntry{
			ID:          utils.GenerateUUID(),
			GolferID:    &golferID,
			DisplayName: g.Name,
			IsHuman:     false,
			Team:        team,
			Country:     g.Country,
			Handedness:  g.Handedness,
			SimState:    models.SimState{},
		})
	}

	return entries, nil
}

func (s *TournamentService) selectGolfers(ctx context.Context, fieldType string, n int) ([]*models.Golfer, error) {
	if n == 0 {
		return nil, nil
	}
	switch fieldType {
	case "top_ranked":
		return s.repos.Golfer.TopRanked(ctx, n)
	case "amateur":
		all, err := s.repos.Golfer.List(ctx)
		if err != nil {
			return nil, err
		}
		return bottomByOverall(all, n), nil
	case "mid_tier":
		all, err := s.repos.Golfer.List(ctx)
		if err != nil {
			return nil, err
		}
		return midByOverall(all, n), nil
	case "mixed":
		half := n / 2
		top, err := s.repos.Golfer.TopRanked(ctx, half)
		if err != nil {
			return nil, err
		}
		rest, err := s.repos.Golfer.RandomSample(ctx, n-len(top))
		if err != nil {
			return nil, err
		}
		return append(top, rest...), nil
	default: // "random"
		return s.repos.Golfer.RandomSample(ctx, n)
	}
}

func bottomByOverall(golfers []*models.Golfer, n int) []*models.Golfer {
	sorted := sortedByOverall(golfers, false)
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

func midByOverall(golfers []*models.Golfer, n int) []*models.Golfer {
	sorted := sortedByOverall(golfers, false)
	start := len(sorted)/2 - n/2
	if start < 0 {
		start = 0
	}
	end := start + n
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[start:end]
}

func sortedByOverall(golfers []*models.Golfer, descending bool) []*models.Golfer {
	sorted := make([]*models.Golfer, len(golfers))
	copy(sorted, golfers)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			less := sorted[j].Overall() < sorted[i].Overall()
			if descending {
				less = !less
			}
			if less {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	return sorted
}

// GetSnapshot assembles the read model for a tournament. Reads are
// lock-free (spec.md §5).
func (s *TournamentService) GetSnapshot(ctx context.Context, id string) (*TournamentSnapshot, error) {
	t, err := s.repos.Tournament.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	entries, err := s.repos.Entry.ListByTournament(ctx, id)
	if err != nil {
		return nil, err
	}
	groups, err := s.repos.Group.ListByTournament(ctx, id)
	if err != nil {
		return nil, err
	}
	holeResults, err := s.repos.HoleResult.ListByTournamentAndRound(ctx, id, t.CurrentRound)
	if err != nil {
		return nil, err
	}
	recent, err := s.events.Recent(ctx, id, 10)
	if err != nil {
		recent = nil
	}

	snap := &TournamentSnapshot{
		Tournament:     t,
		Entries:        entries,
		Groups:         groups,
		HoleResults:    holeResults,
		RecentEvents:   recent,
		SessionHistory: t.SessionHistory,
		BestRounds:     bestRounds(entries, 5),
	}

	if t.CurrentRound <= 2 && !t.CutApplied {
		if cut, err := s.projectedCut(ctx, entries, t.CourseID, t.CutSize); err == nil {
			snap.ProjectedCut = cut
		}
	}
	wp, err := s.winProbabilities(ctx, entries, t.CourseID, t.CurrentRound)
	if err == nil {
		snap.WinProbability = wp
	}

	return snap, nil
}

func bestRounds(entries []*models.TournamentEntry, n int) []BestRound {
	candidates := make([]*models.TournamentEntry, 0, len(entries))
	for _, e := range entries {
		if e.ThruHole > 0 {
			candidates = append(candidates, e)
		}
	}
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			if candidates[j].TotalStrokes < candidates[i].TotalStrokes {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			}
		}
	}
	if n > len(candidates) {
		n = len(candidates)
	}
	out := make([]BestRound, 0, n)
	for _, e := range candidates[:n] {
		out = append(out, BestRound{EntryID: e.ID, DisplayName: e.DisplayName, Strokes: e.TotalStrokes})
	}
	return out
}

func (s *TournamentService) projectedCut(ctx context.Context, entries []*models.TournamentEntry, courseID string, cutSize int) (*ProjectedCut, error) {
	parByHole, err := s.parByHole(ctx, courseID)
	if err != nil {
		return nil, err
	}

	scores := make([]int, 0, len(entries))
	for _, e := range entries {
		results, err := s.repos.HoleResult.ListByEntryAndRounds(ctx, e.ID, 1, 2)
		if err != nil {
			return nil, err
		}
		if len(results) == 0 {
			continue
		}
		scores = append(scores, ScoreToPar(results, parByHole))
	}
	return ComputeProjectedCut(scores, cutSize)
}

func (s *TournamentService) parByHole(ctx context.Context, courseID string) (map[int]int, error) {
	course, err := s.repos.Course.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	parByHole := make(map[int]int, len(course.Holes))
	for _, h := range course.Holes {
		parByHole[h.Number] = h.Par
	}
	return parByHole, nil
}

func (s *TournamentService) winProbabilities(ctx context.Context, entries []*models.TournamentEntry, courseID string, round int) (map[string]float64, error) {
	parByHole, err := s.parByHole(ctx, courseID)
	if err != nil {
		return nil, err
	}

	rounds := make([]int, round)
	for i := range rounds {
		rounds[i] = i + 1
	}

	contenders := make([]WinProbContender, 0, len(entries))
	for _, e := range entries {
		if e.Cut || e.TournamentStrokes == 0 {
			continue
		}
		results, err := s.repos.HoleResult.ListByEntryAndRounds(ctx, e.ID, rounds...)
		if err != nil {
			return nil, err
		}
		completed := (round-1)*18 + e.ThruHole

		overall := humanAssumedOverall
		if !e.IsHuman && e.GolferID != nil {
			g, err := s.repos.Golfer.GetByID(ctx, *e.GolferID)
			if err == nil {
				overall = float64(g.Overall())
			}
		}

		contenders = append(contenders, WinProbContender{
			EntryID:        e.ID,
			ScoreToPar:     ScoreToPar(results, parByHole),
			CompletedHoles: completed,
			IsHuman:        e.IsHuman,
			GolferOverall:  overall,
		})
	}
	if len(contenders) == 0 {
		return map[string]float64{}, nil
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return ComputeWinProbabilities(rng, contenders), nil
}

// withLock acquires the per-tournament Redis lock (spec.md §5), opens a
// transaction, and loads the tournament row with FOR UPDATE so a second
// worker blocks at the database level even if the Redis lock were to race.
func (s *TournamentService) withLock(ctx context.Context, id string, fn func(tx *sql.Tx, t *models.Tournament) ([]*models.TournamentEvent, error)) ([]*models.TournamentEvent, error) {
	lockKey := "tournament_lock:" + id
	ok, err := s.cache.SetNX(lockKey, true, tournamentLockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire tournament lock: %w", err)
	}
	if !ok {
		return nil, ErrTournamentLocked
	}
	defer s.cache.Delete(lockKey)

	tx, err := s.repos.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	t, err := s.repos.Tournament.GetByIDWithTx(tx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	events, err := fn(tx, t)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return events, nil
}

// Tick advances a tournament's virtual clock by minutes (default 11) and
// simulates every group's cooperative progress (spec.md §4.11).
func (s *TournamentService) Tick(ctx context.Context, id string, minutes int) (*TournamentSnapshot, error) {
	if minutes <= 0 {
		minutes = defaultTickMinutes
	}
	events, err := s.withLock(ctx, id, func(tx *sql.Tx, t *models.Tournament) ([]*models.TournamentEvent, error) {
		return s.runTick(ctx, tx, t, minutes)
	})
	if err != nil {
		return nil, err
	}
	s.events.LogAll(ctx, events)
	snapshot, err := s.GetSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	s.broadcast(id, "tick", snapshot)
	return snapshot, nil
}

func (s *TournamentService) runTick(ctx context.Context, tx *sql.Tx, t *models.Tournament, minutes int) ([]*models.TournamentEvent, error) {
	course, err := s.repos.Course.GetByID(ctx, t.CourseID)
	if err != nil {
		return nil, err
	}
	entries, err := s.repos.Entry.ListByTournament(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	groups, err := s.repos.Group.ListByTournament(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	existingResults := make(map[string]map[int]*models.HoleResult, len(entries))
	for _, e := range entries {
		results, err := s.repos.HoleResult.ListByEntryAndRounds(ctx, e.ID, t.CurrentRound)
		if err != nil {
			return nil, err
		}
		m := make(map[int]*models.HoleResult, len(results))
		for _, r := range results {
			m[r.HoleNumber] = r
		}
		existingResults[e.ID] = m
	}

	priorRounds := make([]int, 0, t.CurrentRound-1)
	for r := 1; r < t.CurrentRound; r++ {
		priorRounds = append(priorRounds, r)
	}
	priorTotals := map[string]int{}
	if len(priorRounds) > 0 {
		for _, e := range entries {
			results, err := s.repos.HoleResult.ListByEntryAndRounds(ctx, e.ID, priorRounds...)
			if err != nil {
				return nil, err
			}
			sum := 0
			for _, r := range results {
				sum += r.Strokes
			}
			priorTotals[e.ID] = sum
		}
	}

	golferByEntry := map[string]*models.Golfer{}
	for _, e := range entries {
		if e.GolferID == nil {
			continue
		}
		g, err := s.repos.Golfer.GetByID(ctx, *e.GolferID)
		if err != nil {
			return nil, err
		}
		golferByEntry[e.ID] = g
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	out := RunTick(TickInput{
		RNG:              rng,
		CurrentTime:      t.CurrentTime,
		DeltaMinutes:     minutes,
		Course:           course,
		RoundNumber:      t.CurrentRound,
		Conditions:       t.RoundConditions[t.CurrentRound],
		Groups:           groups,
		ExistingResults:  existingResults,
		PriorRoundsTotal: priorTotals,
		GolferByEntry:    golferByEntry,
	})

	t.CurrentTime = out.NewCurrentTime
	if t.Status == models.StatusSetup {
		t.Status = models.StatusInProgress
	}

	for _, hr := range out.NewResults {
		if err := s.repos.HoleResult.InsertWithTx(tx, hr); err != nil {
			return nil, err
		}
	}
	for _, g := range out.ChangedGroups {
		if err := s.repos.Group.UpdateWithTx(tx, g); err != nil {
			return nil, err
		}
	}

	combined := combineResults(existingResults, out.NewResults)
	if err := s.refreshProjectedCut(ctx, t, entries, course, combined); err != nil {
		return nil, err
	}

	RecomputePositions(entries)
	events := out.Events

	if AllGroupsFinished(groups) {
		rolloverEvents, err := s.processRoundRollover(ctx, tx, t, entries, groups, rng)
		if err != nil {
			return nil, err
		}
		events = append(events, rolloverEvents...)
	}

	for _, e := range entries {
		if err := s.repos.Entry.UpdateWithTx(tx, e); err != nil {
			return nil, err
		}
	}
	if err := s.repos.Tournament.UpdateWithTx(tx, t); err != nil {
		return nil, err
	}

	return events, nil
}

func combineResults(existing map[string]map[int]*models.HoleResult, fresh []*models.HoleResult) map[string]map[int]*models.HoleResult {
	combined := make(map[string]map[int]*models.HoleResult, len(existing))
	for id, m := range existing {
		cp := make(map[int]*models.HoleResult, len(m))
		for h, r := range m {
			cp[h] = r
		}
		combined[id] = cp
	}
	for _, hr := range fresh {
		if combined[hr.EntryID] == nil {
			combined[hr.EntryID] = map[int]*models.HoleResult{}
		}
		combined[hr.EntryID][hr.HoleNumber] = hr
	}
	return combined
}

// refreshProjectedCut updates tournament.ProjectedCutScore from the
// in-progress rounds-1-2 results (spec.md §4.11 final paragraph).
func (s *TournamentService) refreshProjectedCut(ctx context.Context, t *models.Tournament, entries []*models.TournamentEntry, course *models.Course, roundResults map[string]map[int]*models.HoleResult) error {
	if t.CurrentRound > 2 || t.CutApplied {
		t.ProjectedCutScore = nil
		return nil
	}
	parByHole := make(map[int]int, len(course.Holes))
	for _, h := range course.Holes {
		parByHole[h.Number] = h.Par
	}

	scores := make([]int, 0, len(entries))
	for _, e := range entries {
		var results []*models.HoleResult
		if t.CurrentRound == 2 {
			r1, err := s.repos.HoleResult.ListByEntryAndRounds(ctx, e.ID, 1)
			if err != nil {
				return err
			}
			results = append(results, r1...)
		}
		for _, r := range roundResults[e.ID] {
			results = append(results, r)
		}
		if len(results) == 0 {
			continue
		}
		scores = append(scores, ScoreToPar(results, parByHole))
	}

	cut, err := ComputeProjectedCut(scores, t.CutSize)
	if err != nil {
		return err
	}
	if cut == nil {
		t.ProjectedCutScore = nil
		return nil
	}
	t.ProjectedCutScore = &cut.CutScore
	return nil
}

// processRoundRollover implements spec.md §4.10: match-play archival, the
// round-2 cut, and the round/status transition with its reseed.
func (s *TournamentService) processRoundRollover(ctx context.Context, tx *sql.Tx, t *models.Tournament, entries []*models.TournamentEntry, groups []*models.Group, rng *rand.Rand) ([]*models.TournamentEvent, error) {
	isMatch := t.Format == models.FormatMatch || t.Format == models.FormatMatchFourball

	if isMatch {
		results, err := s.repos.HoleResult.ListByTournamentAndRound(ctx, t.ID, t.CurrentRound)
		if err != nil {
			return nil, err
		}
		strokesMap := map[string]map[int]int{}
		for _, r := range results {
			if strokesMap[r.EntryID] == nil {
				strokesMap[r.EntryID] = map[int]int{}
			}
			strokesMap[r.EntryID][r.HoleNumber] = r.Strokes
		}
		outcomes := ArchiveMatchPlay(groups, strokesMap)
		if t.SessionHistory == nil {
			t.SessionHistory = models.SessionHistory{}
		}
		t.SessionHistory[fmt.Sprintf("R%d", t.CurrentRound)] = outcomes
	}

	if t.CurrentRound == 2 && !t.CutApplied {
		r12 := make(map[string]int, len(entries))
		for _, e := range entries {
			r12[e.ID] = e.TournamentStrokes
		}
		ApplyCut(entries, r12, t.CutSize)
		t.CutApplied = true
		cutScore := 0
		if t.ProjectedCutScore != nil {
			cutScore = int(*t.ProjectedCutScore)
		}
		s.notification.NotifyCutApplied(t, cutScore)
	}

	winnerCount := CountAtPosition1(entries)
	transition := DecideRoundTransition(t.Format, t.CurrentRound, winnerCount)
	t.CurrentRound = transition.NewRound
	t.Status = transition.NewStatus

	if transition.Reseed != nil {
		if err := s.repos.Entry.ResetForRound(tx, t.ID); err != nil {
			return nil, err
		}
		priorTotals := make(map[string]int, len(entries))
		for _, e := range entries {
			priorTotals[e.ID] = e.TournamentStrokes
			e.ThruHole = 0
			e.TotalStrokes = 0
			e.Position = nil
		}

		newGroups := BuildPairings(PairingParams{
			Entries:            entries,
			Format:             t.Format,
			CurrentTime:        t.CurrentTime,
			CurrentRound:       t.CurrentRound,
			CutApplied:         t.CutApplied,
			SplitTees:          transition.Reseed.SplitTees,
			GroupSize:          transition.Reseed.GroupSize,
			LeadersLast:        transition.Reseed.LeadersLast,
			InvertSplit:        transition.Reseed.InvertSplit,
			TeeIntervalMinutes: defaultTeeIntervalMin,
			Playoff:            transition.Reseed.Playoff,
			PriorTotals:        priorTotals,
			RNG:                rng,
		})

		if err := s.repos.Group.DeleteAllForTournamentWithTx(tx, t.ID); err != nil {
			return nil, err
		}
		for _, g := range newGroups {
			g.TournamentID = t.ID
			if err := s.repos.Group.CreateWithTx(tx, g); err != nil {
				return nil, err
			}
		}

		if transition.NewStatus == models.StatusPlayoff {
			s.notification.NotifyPlayoff(t, winnerCount)
		} else {
			s.notification.NotifyRoundRollover(t, t.CurrentRound)
		}
		s.logger.Printf("tournament %s rolled over to round %d (status=%s)", t.ID, t.CurrentRound, t.Status)
	}

	RecomputePositions(entries)
	return nil, nil
}

// SimToTee advances the clock to the tee time of the group containing any
// human (spec.md §4.12).
func (s *TournamentService) SimToTee(ctx context.Context, id string) (*TournamentSnapshot, error) {
	t, err := s.repos.Tournament.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	groups, err := s.repos.Group.ListByTournament(ctx, id)
	if err != nil {
		return nil, err
	}
	minutes, ok := SimToTeeDelta(t.CurrentTime, groups)
	if !ok || minutes <= 0 {
		return s.GetSnapshot(ctx, id)
	}
	return s.Tick(ctx, id, minutes)
}

// SimToEndOfDay repeats 15-minute ticks (a final 10-minute catch-up) until
// the round index changes or the tournament finishes, bounded by 1000
// iterations (spec.md §4.12). If ctx is done before the next tick starts,
// the loop stops and the current snapshot is returned.
func (s *TournamentService) SimToEndOfDay(ctx context.Context, id string) (*TournamentSnapshot, error) {
	startRound := -1
	for _, step := range PlanSimToEndOfDay() {
		if ctx.Err() != nil {
			return s.GetSnapshot(context.WithoutCancel(ctx), id)
		}
		t, err := s.repos.Tournament.GetByID(ctx, id)
		if err != nil {
			return nil, ErrNotFound
		}
		if startRound == -1 {
			startRound = t.CurrentRound
		}
		if t.CurrentRound != startRound || t.Status == models.StatusFinished {
			break
		}
		if _, err := s.Tick(ctx, id, step.Minutes); err != nil {
			return nil, err
		}
	}
	return s.GetSnapshot(ctx, id)
}

// SubmitHoleResult records a human's strokes for a hole, upserting any
// prior submission for the same (entry, round, hole) (spec.md §7).
func (s *TournamentService) SubmitHoleResult(ctx context.Context, tournamentID string, req HoleResultRequest) (*TournamentSnapshot, error) {
	events, err := s.withLock(ctx, tournamentID, func(tx *sql.Tx, t *models.Tournament) ([]*models.TournamentEvent, error) {
		round := req.RoundNumber
		if round == 0 {
			round = t.CurrentRound
		}

		entry, err := s.repos.Entry.GetByID(ctx, req.EntryID)
		if err != nil || entry.TournamentID != tournamentID {
			return nil, ErrNotFound
		}
		hole, err := s.repos.Course.GetHole(ctx, t.CourseID, req.HoleNumber)
		if err != nil {
			return nil, ErrNotFound
		}
		if req.Strokes < hole.Par-2 || req.Strokes > hole.Par+4 {
			return nil, ErrInvalidStrokes
		}

		hr := &models.HoleResult{
			ID:          utils.GenerateUUID(),
			EntryID:     entry.ID,
			RoundNumber: round,
			HoleNumber:  req.HoleNumber,
			Strokes:     req.Strokes,
		}
		if err := s.repos.HoleResult.UpsertWithTx(tx, hr); err != nil {
			return nil, err
		}

		entries, err := s.repos.Entry.ListByTournament(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		var target *models.TournamentEntry
		for _, e := range entries {
			if e.ID == entry.ID {
				target = e
				break
			}
		}
		if target == nil {
			return nil, ErrNotFound
		}

		roundResults, err := s.repos.HoleResult.ListByEntryAndRounds(ctx, entry.ID, round)
		if err != nil {
			return nil, err
		}
		total, maxHole := 0, 0
		for _, r := range roundResults {
			total += r.Strokes
			if r.HoleNumber > maxHole {
				maxHole = r.HoleNumber
			}
		}
		target.TotalStrokes = total
		target.ThruHole = maxHole

		priorRounds := make([]int, 0, round-1)
		for r := 1; r < round; r++ {
			priorRounds = append(priorRounds, r)
		}
		prior := 0
		if len(priorRounds) > 0 {
			priorResults, err := s.repos.HoleResult.ListByEntryAndRounds(ctx, entry.ID, priorRounds...)
			if err != nil {
				return nil, err
			}
			for _, r := range priorResults {
				prior += r.Strokes
			}
		}
		target.TournamentStrokes = prior + total

		RecomputePositions(entries)
		for _, e := range entries {
			if err := s.repos.Entry.UpdateWithTx(tx, e); err != nil {
				return nil, err
			}
		}

		var evs []*models.TournamentEvent
		if ev := significantOutcome(target, hole, req.Strokes, req.HoleNumber, round); ev != nil {
			evs = append(evs, ev)
		}
		return evs, nil
	})
	if err != nil {
		return nil, err
	}
	s.events.LogAll(ctx, events)
	snapshot, err := s.GetSnapshot(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	s.broadcast(tournamentID, "hole_result_recorded", snapshot)
	return snapshot, nil
}

// ShufflePairings reshuffles match-play team membership across the
// existing groups, only legal before any group has played a hole
// (spec.md §4.13).
func (s *TournamentService) ShufflePairings(ctx context.Context, id string) (*TournamentSnapshot, error) {
	_, err := s.withLock(ctx, id, func(tx *sql.Tx, t *models.Tournament) ([]*models.TournamentEvent, error) {
		groups, err := s.repos.Group.ListByTournament(ctx, id)
		if err != nil {
			return nil, err
		}
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		if err := ShufflePairings(rng, groups); err != nil {
			return nil, err
		}
		for _, g := range groups {
			ids := make([]string, 0, len(g.Members))
			for _, m := range g.Members {
				ids = append(ids, m.EntryID)
			}
			if err := s.repos.Group.UpdateMembersWithTx(tx, g.ID, ids); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	snapshot, err := s.GetSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	s.broadcast(id, "pairings_shuffled", snapshot)
	return snapshot, nil
}
