// internal/repositories/hole_result_repository.go
// HoleResult data access. Inserts are once-only for bots (get-or-create)
// and upsert for humans (spec.md §7 conflict policy).

package repositories

import (
	"context"
	"database/sql"

	"golf-sim/internal/models"
)

// HoleResultRepository handles hole result data access
type HoleResultRepository struct {
	db *sql.DB
}

// NewHoleResultRepository creates a new hole result repository
func NewHoleResultRepository(db *sql.DB) *HoleResultRepository {
	return &HoleResultRepository{db: db}
}

// GetWithTx retrieves a hole result for (entry, round, hole) if one exists.
func (r *HoleResultRepository) GetWithTx(tx *sql.Tx, entryID string, round, hole int) (*models.HoleResult, error) {
	query := `
		SELECT id, entry_id, round_number, hole_number, strokes, stats, created_at
		FROM hole_results WHERE entry_id = ? AND round_number = ? AND hole_number = ?
	`
	var hr models.HoleResult
	err := tx.QueryRow(query, entryID, round, hole).Scan(
		&hr.ID, &hr.EntryID, &hr.RoundNumber, &hr.HoleNumber, &hr.Strokes, &hr.Stats, &hr.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &hr, err
}

// InsertWithTx inserts a new hole result. Callers must have already checked
// for an existing row via GetWithTx when get-or-create semantics are required.
func (r *HoleResultRepository) InsertWithTx(tx *sql.Tx, hr *models.HoleResult) error {
	query := `
		INSERT INTO hole_results (id, entry_id, round_number, hole_number, strokes, stats, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
	`
	_, err := tx.Exec(query, hr.ID, hr.EntryID, hr.RoundNumber, hr.HoleNumber, hr.Strokes, hr.Stats)
	return err
}

// UpsertWithTx overwrites an existing (entry, round, hole) result or inserts
// a new one — the human hole-result submission's upsert semantics.
func (r *HoleResultRepository) UpsertWithTx(tx *sql.Tx, hr *models.HoleResult) error {
	query := `
		INSERT INTO hole_results (id, entry_id, round_number, hole_number, strokes, stats, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE strokes = VALUES(strokes), stats = VALUES(stats)
	`
	_, err := tx.Exec(query, hr.ID, hr.EntryID, hr.RoundNumber, hr.HoleNumber, hr.Strokes, hr.Stats)
	return err
}

// ListByEntryAndRounds retrieves all hole results for an entry across a set
// of round numbers, used by the stroke/score aggregation and the projected
// cut and win-probability calculators.
func (r *HoleResultRepository) ListByEntryAndRounds(ctx context.Context, entryID string, rounds ...int) ([]*models.HoleResult, error) {
	if len(rounds) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, entry_id, round_number, hole_number, strokes, stats, created_at
		FROM hole_results WHERE entry_id = ? AND round_number IN (` + placeholders(len(rounds)) + `)
	`
	args := make([]interface{}, 0, len(rounds)+1)
	args = append(args, entryID)
	for _, rnd := range rounds {
		args = append(args, rnd)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]*models.HoleResult, 0)
	for rows.Next() {
		var hr models.HoleResult
		if err := rows.Scan(&hr.ID, &hr.EntryID, &hr.RoundNumber, &hr.HoleNumber, &hr.Strokes, &hr.Stats, &hr.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, &hr)
	}
	return results, nil
}

// ListByTournamentAndRound retrieves every hole result recorded for a
// tournament's entries within a single round (used by match-play archival).
func (r *HoleResultRepository) ListByTournamentAndRound(ctx context.Context, tournamentID string, round int) ([]*models.HoleResult, error) {
	query := `
		SELECT hr.id, hr.entry_id, hr.round_number, hr.hole_number, hr.strokes, hr.stats, hr.created_at
		FROM hole_results hr
		JOIN tournament_entries e ON e.id = hr.entry_id
		WHERE e.tournament_id = ? AND hr.round_number = ?
	`
	rows, err := r.db.QueryContext(ctx, query, tournamentID, round)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]*models.HoleResult, 0)
	for rows.Next() {
		var hr models.HoleResult
		if err := rows.Scan(&hr.ID, &hr.EntryID, &hr.RoundNumber, &hr.HoleNumber, &hr.Strokes, &hr.Stats, &hr.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, &hr)
	}
	return results, nil
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	s := "?"
	for i := 1; i < n; i++ {
		s += ",?"
	}
	return s
}
