// internal/repositories/organizer_repository.go
// Organizer data access, trimmed from the teacher's user_repository.go

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golf-sim/internal/models"
)

// OrganizerRepository handles organizer data access
type OrganizerRepository struct {
	db *sql.DB
}

// NewOrganizerRepository creates a new organizer repository
func NewOrganizerRepository(db *sql.DB) *OrganizerRepository {
	return &OrganizerRepository{db: db}
}

// Create inserts a new organizer
func (r *OrganizerRepository) Create(ctx context.Context, o *models.Organizer) error {
	query := `
		INSERT INTO organizers (id, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, o.ID, o.Email, o.PasswordHash, o.CreatedAt, o.UpdatedAt)
	return err
}

// GetByEmail retrieves an organizer by email
func (r *OrganizerRepository) GetByEmail(ctx context.Context, email string) (*models.Organizer, error) {
	query := `SELECT id, email, password_hash, created_at, updated_at FROM organizers WHERE email = ?`
	var o models.Organizer
	err := r.db.QueryRowContext(ctx, query, email).Scan(&o.ID, &o.Email, &o.PasswordHash, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("organizer not found")
	}
	return &o, err
}

// GetByID retrieves an organizer by ID
func (r *OrganizerRepository) GetByID(ctx context.Context, id string) (*models.Organizer, error) {
	query := `SELECT id, email, password_hash, created_at, updated_at FROM organizers WHERE id = ?`
	var o models.Organizer
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Email, &o.PasswordHash, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("organizer not found")
	}
	return &o, err
}

// ExistsByEmail checks if an organizer exists with the given email
func (r *OrganizerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM organizers WHERE email = ?)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	return exists, err
}

// UpdatePassword updates an organizer's password hash
func (r *OrganizerRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := `UPDATE organizers SET password_hash = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), id)
	return err
}
