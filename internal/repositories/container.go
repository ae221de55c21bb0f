// internal/repositories/container.go
// Repository container for dependency injection

package repositories

import (
	"context"
	"database/sql"
	"golf-sim/internal/database"
)

// Container holds all repository instances
type Container struct {
	Organizer  *OrganizerRepository
	Tournament *TournamentRepository
	Course     *CourseRepository
	Golfer     *GolferRepository
	Entry      *EntryRepository
	Group      *GroupRepository
	HoleResult *HoleResultRepository
	Event      *EventRepository
	db         *sql.DB
}

// NewContainer creates a new repository container
func NewContainer(conn *database.Connections) *Container {
	return &Container{
		Organizer:  NewOrganizerRepository(conn.MySQL),
		Tournament: NewTournamentRepository(conn.MySQL),
		Course:     NewCourseRepository(conn.MySQL),
		Golfer:     NewGolferRepository(conn.MySQL),
		Entry:      NewEntryRepository(conn.MySQL),
		Group:      NewGroupRepository(conn.MySQL),
		HoleResult: NewHoleResultRepository(conn.MySQL),
		Event:      NewEventRepository(conn.MongoDB),
		db:         conn.MySQL,
	}
}

// BeginTx starts a new database transaction
func (c *Container) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return c.db.BeginTx(ctx, nil)
}
