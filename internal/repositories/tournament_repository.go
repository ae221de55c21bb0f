// internal/repositories/tournament_repository.go
// Tournament data access layer

package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"golf-sim/internal/models"
)

// TournamentRepository handles tournament data access
type TournamentRepository struct {
	db *sql.DB
}

// NewTournamentRepository creates a new tournament repository
func NewTournamentRepository(db *sql.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

const tournamentColumns = `
	id, organizer_id, name, course_id, status, format, start_time, current_time,
	current_round, cut_size, cut_applied, projected_cut_score, session_history,
	round_conditions, created_at, updated_at
`

func scanTournament(row interface{ Scan(...interface{}) error }) (*models.Tournament, error) {
	var t models.Tournament
	err := row.Scan(
		&t.ID, &t.OrganizerID, &t.Name, &t.CourseID, &t.Status, &t.Format,
		&t.StartTime, &t.CurrentTime, &t.CurrentRound, &t.CutSize, &t.CutApplied,
		&t.ProjectedCutScore, &t.SessionHistory, &t.RoundConditions,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return &t, err
}

// Create inserts a new tournament
func (r *TournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	query := `
		INSERT INTO tournaments (` + tournamentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.OrganizerID, t.Name, t.CourseID, t.Status, t.Format,
		t.StartTime, t.CurrentTime, t.CurrentRound, t.CutSize, t.CutApplied,
		t.ProjectedCutScore, t.SessionHistory, t.RoundConditions,
		t.CreatedAt, t.UpdatedAt,
	)
	return err
}

// CreateWithTx creates a tournament within a transaction
func (r *TournamentRepository) CreateWithTx(tx *sql.Tx, t *models.Tournament) error {
	query := `
		INSERT INTO tournaments (` + tournamentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := tx.Exec(query,
		t.ID, t.OrganizerID, t.Name, t.CourseID, t.Status, t.Format,
		t.StartTime, t.CurrentTime, t.CurrentRound, t.CutSize, t.CutApplied,
		t.ProjectedCutScore, t.SessionHistory, t.RoundConditions,
		t.CreatedAt, t.UpdatedAt,
	)
	return err
}

// GetByID retrieves a tournament by ID
func (r *TournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = ?`
	t, err := scanTournament(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("tournament not found")
	}
	return t, err
}

// GetByIDWithTx retrieves a tournament by ID, locking the row for update —
// used by the tick scheduler to read-modify-write tournament state under
// the per-tournament lock (spec.md §5).
func (r *TournamentRepository) GetByIDWithTx(tx *sql.Tx, id string) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = ? FOR UPDATE`
	t, err := scanTournament(tx.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("tournament not found")
	}
	return t, err
}

// List retrieves tournaments, optionally filtered by organizer
func (r *TournamentRepository) List(ctx context.Context, organizerID string) ([]*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments`
	args := []interface{}{}
	if organizerID != "" {
		query += ` WHERE organizer_id = ?`
		args = append(args, organizerID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]*models.Tournament, 0)
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, err
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, nil
}

// Update persists a tournament's full mutable state: status, clock,
// current round, cut state, session history and round conditions.
func (r *TournamentRepository) Update(ctx context.Context, t *models.Tournament) error {
	return r.updateExec(r.db, t)
}

// UpdateWithTx is Update scoped to a transaction, used inside ticks.
func (r *TournamentRepository) UpdateWithTx(tx *sql.Tx, t *models.Tournament) error {
	return r.updateExec(tx, t)
}

func (r *TournamentRepository) updateExec(e execer, t *models.Tournament) error {
	query := `
		UPDATE tournaments SET
			status = ?, current_round = ?, current_time = ?, cut_size = ?,
			cut_applied = ?, projected_cut_score = ?, session_history = ?,
			round_conditions = ?, updated_at = ?
		WHERE id = ?
	`
	_, err := e.Exec(query,
		t.Status, t.CurrentRound, t.CurrentTime, t.CutSize, t.CutApplied,
		t.ProjectedCutScore, t.SessionHistory, t.RoundConditions, t.UpdatedAt, t.ID,
	)
	return err
}

// Delete removes a tournament row. Its dependent rows (tournament_entries,
// groups, group_members, hole_results) are removed with it only where the
// database schema declares them ON DELETE CASCADE; this repository ships
// no schema and issues no deletes for them.
func (r *TournamentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tournaments WHERE id = ?`, id)
	return err
}
