// internal/repositories/group_repository.go
// Group and GroupMember data access

package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"golf-sim/internal/models"
)

// GroupRepository handles group and group membership data access
type GroupRepository struct {
	db *sql.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *sql.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// CreateWithTx inserts a group and its members within a transaction
func (r *GroupRepository) CreateWithTx(tx *sql.Tx, g *models.Group) error {
	query := `
		INSERT INTO groups (
			id, tournament_id, tee_time, wave, start_hole, current_hole,
			holes_completed, next_action_time, is_finished
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.Exec(query,
		g.ID, g.TournamentID, g.TeeTime, g.Wave, g.StartHole, g.CurrentHole,
		g.HolesCompleted, g.NextActionTime, g.IsFinished,
	); err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	for _, m := range g.Members {
		if _, err := tx.Exec(`INSERT INTO group_members (group_id, entry_id) VALUES (?, ?)`, g.ID, m.EntryID); err != nil {
			return fmt.Errorf("failed to insert group member: %w", err)
		}
	}
	return nil
}

// DeleteAllForTournamentWithTx removes every group and its members for a
// tournament, used by the reseeder (spec.md §4.8 step 1).
func (r *GroupRepository) DeleteAllForTournamentWithTx(tx *sql.Tx, tournamentID string) error {
	rows, err := tx.Query(`SELECT id FROM groups WHERE tournament_id = ?`, tournamentID)
	if err != nil {
		return err
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		ids = append(ids, id)
	}
	rows.Close()

	for _, id := range ids {
		if _, err := tx.Exec(`DELETE FROM group_members WHERE group_id = ?`, id); err != nil {
			return err
		}
	}
	_, err = tx.Exec(`DELETE FROM groups WHERE tournament_id = ?`, tournamentID)
	return err
}

// ListByTournament retrieves all groups for a tournament, with members, in
// stored iteration order (spec.md §4.11 ordering guarantee).
func (r *GroupRepository) ListByTournament(ctx context.Context, tournamentID string) ([]*models.Group, error) {
	query := `
		SELECT id, tournament_id, tee_time, wave, start_hole, current_hole,
			holes_completed, next_action_time, is_finished
		FROM groups WHERE tournament_id = ? ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]*models.Group, 0)
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.TournamentID, &g.TeeTime, &g.Wave, &g.StartHole,
			&g.CurrentHole, &g.HolesCompleted, &g.NextActionTime, &g.IsFinished); err != nil {
			return nil, err
		}
		groups = append(groups, &g)
	}

	for _, g := range groups {
		members, err := r.getMembers(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		g.Members = members
	}

	return groups, nil
}

func (r *GroupRepository) getMembers(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	query := `SELECT ` + entryColumns + ` FROM tournament_entries e
		JOIN group_members gm ON gm.entry_id = e.id WHERE gm.group_id = ? ORDER BY e.id`
	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]models.GroupMember, 0, 4)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, models.GroupMember{GroupID: groupID, EntryID: e.ID, Entry: e})
	}
	return members, nil
}

// Update persists a group's scheduling state (current_hole, holes_completed,
// next_action_time, is_finished).
func (r *GroupRepository) Update(ctx context.Context, g *models.Group) error {
	return r.updateExec(r.db, g)
}

// UpdateWithTx is Update scoped to a transaction, used inside ticks.
func (r *GroupRepository) UpdateWithTx(tx *sql.Tx, g *models.Group) error {
	return r.updateExec(tx, g)
}

// UpdateMembersWithTx replaces a group's membership list, preserving the
// group's own row (tee_time, wave, ...) — used by the pairing shuffle,
// which reassigns entries to existing groups without recreating them.
func (r *GroupRepository) UpdateMembersWithTx(tx *sql.Tx, groupID string, entryIDs []string) error {
	if _, err := tx.Exec(`DELETE FROM group_members WHERE group_id = ?`, groupID); err != nil {
		return fmt.Errorf("failed to clear group members: %w", err)
	}
	for _, entryID := range entryIDs {
		if _, err := tx.Exec(`INSERT INTO group_members (group_id, entry_id) VALUES (?, ?)`, groupID, entryID); err != nil {
			return fmt.Errorf("failed to insert group member: %w", err)
		}
	}
	return nil
}

type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func (r *GroupRepository) updateExec(e execer, g *models.Group) error {
	query := `
		UPDATE groups SET
			tee_time = ?, current_hole = ?, holes_completed = ?, next_action_time = ?, is_finished = ?
		WHERE id = ?
	`
	_, err := e.Exec(query, g.TeeTime, g.CurrentHole, g.HolesCompleted, g.NextActionTime, g.IsFinished, g.ID)
	return err
}
