// internal/repositories/event_repository.go
// TournamentEvent data access, backed by MongoDB (adapted from the
// teacher's AnalyticsService.LogEvent bson collection pattern).

package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"golf-sim/internal/models"
)

const eventsCollection = "tournament_events"

// EventRepository handles tournament commentary event data access
type EventRepository struct {
	db *mongo.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{db: db}
}

// Insert records a commentary event for a tournament
func (r *EventRepository) Insert(ctx context.Context, e *models.TournamentEvent) error {
	_, err := r.db.Collection(eventsCollection).InsertOne(ctx, e)
	return err
}

// Recent returns the most recent n events for a tournament, newest first —
// the "last 10 events" feed used in the tournament snapshot (spec.md §6).
func (r *EventRepository) Recent(ctx context.Context, tournamentID string, n int) ([]*models.TournamentEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(n))
	cursor, err := r.db.Collection(eventsCollection).Find(ctx, bson.M{"tournament_id": tournamentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := make([]*models.TournamentEvent, 0, n)
	for cursor.Next(ctx) {
		var e models.TournamentEvent
		if err := cursor.Decode(&e); err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, cursor.Err()
}

// ListByRound returns all events logged for a specific round, used when
// replaying a round's commentary.
func (r *EventRepository) ListByRound(ctx context.Context, tournamentID string, round int) ([]*models.TournamentEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.db.Collection(eventsCollection).Find(ctx, bson.M{
		"tournament_id": tournamentID,
		"round_number":  round,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := make([]*models.TournamentEvent, 0)
	for cursor.Next(ctx) {
		var e models.TournamentEvent
		if err := cursor.Decode(&e); err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, cursor.Err()
}
