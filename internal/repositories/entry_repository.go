// internal/repositories/entry_repository.go
// TournamentEntry data access

package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"golf-sim/internal/models"
)

// EntryRepository handles tournament entry data access
type EntryRepository struct {
	db *sql.DB
}

// NewEntryRepository creates a new entry repository
func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

const entryColumns = `
	id, tournament_id, golfer_id, display_name, is_human, team,
	total_strokes, tournament_strokes, thru_hole, position, cut,
	sim_state, country, handedness, avatar_color
`

func scanEntry(row interface{ Scan(...interface{}) error }) (*models.TournamentEntry, error) {
	var e models.TournamentEntry
	err := row.Scan(
		&e.ID, &e.TournamentID, &e.GolferID, &e.DisplayName, &e.IsHuman, &e.Team,
		&e.TotalStrokes, &e.TournamentStrokes, &e.ThruHole, &e.Position, &e.Cut,
		&e.SimState, &e.Country, &e.Handedness, &e.AvatarColor,
	)
	return &e, err
}

// CreateWithTx inserts a tournament entry within a transaction
func (r *EntryRepository) CreateWithTx(tx *sql.Tx, e *models.TournamentEntry) error {
	query := `
		INSERT INTO tournament_entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := tx.Exec(query,
		e.ID, e.TournamentID, e.GolferID, e.DisplayName, e.IsHuman, e.Team,
		e.TotalStrokes, e.TournamentStrokes, e.ThruHole, e.Position, e.Cut,
		e.SimState, e.Country, e.Handedness, e.AvatarColor,
	)
	return err
}

// GetByID retrieves an entry by ID
func (r *EntryRepository) GetByID(ctx context.Context, id string) (*models.TournamentEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM tournament_entries WHERE id = ?`
	e, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("entry not found")
	}
	return e, err
}

// ListByTournament retrieves all entries for a tournament
func (r *EntryRepository) ListByTournament(ctx context.Context, tournamentID string) ([]*models.TournamentEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM tournament_entries WHERE tournament_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*models.TournamentEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Update persists the mutable scoreboard fields of an entry (total_strokes,
// tournament_strokes, thru_hole, position, cut, sim_state).
func (r *EntryRepository) Update(ctx context.Context, e *models.TournamentEntry) error {
	query := `
		UPDATE tournament_entries SET
			total_strokes = ?, tournament_strokes = ?, thru_hole = ?, position = ?,
			cut = ?, sim_state = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query,
		e.TotalStrokes, e.TournamentStrokes, e.ThruHole, e.Position, e.Cut, e.SimState, e.ID,
	)
	return err
}

// UpdateWithTx is Update scoped to a transaction, used inside ticks.
func (r *EntryRepository) UpdateWithTx(tx *sql.Tx, e *models.TournamentEntry) error {
	query := `
		UPDATE tournament_entries SET
			total_strokes = ?, tournament_strokes = ?, thru_hole = ?, position = ?,
			cut = ?, sim_state = ?
		WHERE id = ?
	`
	_, err := tx.Exec(query,
		e.TotalStrokes, e.TournamentStrokes, e.ThruHole, e.Position, e.Cut, e.SimState, e.ID,
	)
	return err
}

// ResetForRound clears thru_hole, total_strokes, and position ahead of a new
// round's pairing (spec.md §4.8 step 7).
func (r *EntryRepository) ResetForRound(tx *sql.Tx, tournamentID string) error {
	query := `
		UPDATE tournament_entries SET thru_hole = 0, total_strokes = 0, position = NULL
		WHERE tournament_id = ?
	`
	_, err := tx.Exec(query, tournamentID)
	return err
}
