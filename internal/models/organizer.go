// internal/models/organizer.go
// Organizer: the single ambient auth principal, trimmed from the teacher's User

package models

import "time"

// Organizer is the principal allowed to create tournaments and call the
// mutating simulation endpoints (tick, hole-result, shuffle-pairings).
// Authentication itself is an external collaborator per spec.md §1 — this
// is the thin mechanism that gates those endpoints, not a full account system.
type Organizer struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// TokenPair represents JWT access and refresh tokens, unchanged from the teacher.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// RegisterRequest represents new organizer registration data.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents organizer login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
