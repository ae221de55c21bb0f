// internal/services/other_services.go
// Supporting services: notifications and the commentary event stream

package services

import (
	"context"
	"log"

	"golf-sim/internal/config"
	"golf-sim/internal/models"
	"golf-sim/internal/repositories"
)

// NotificationService handles the notification hooks the engine actually
// fires: cut applied, round rollover, and playoff entry.
type NotificationService struct {
	config *config.Config
	logger *log.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(config *config.Config, logger *log.Logger) *NotificationService {
	return &NotificationService{
		config: config,
		logger: logger,
	}
}

// NotifyCutApplied fires when the round-2 cut is applied
func (s *NotificationService) NotifyCutApplied(tournament *models.Tournament, cutScore int) {
	s.logger.Printf("Cut applied for tournament %s at score %d", tournament.ID, cutScore)
}

// NotifyRoundRollover fires when a round completes and the next begins
func (s *NotificationService) NotifyRoundRollover(tournament *models.Tournament, newRound int) {
	s.logger.Printf("Tournament %s rolled over to round %d", tournament.ID, newRound)
}

// NotifyPlayoff fires when stroke play enters a sudden-death playoff
func (s *NotificationService) NotifyPlayoff(tournament *models.Tournament, winnerCount int) {
	s.logger.Printf("Tournament %s entering playoff among %d tied leaders", tournament.ID, winnerCount)
}

// ========================================

// EventService logs commentary events to the tournament's event stream,
// adapted from the teacher's AnalyticsService.LogEvent bson pattern.
type EventService struct {
	repos  *repositories.Container
	logger *log.Logger
}

// NewEventService creates a new event service
func NewEventService(repos *repositories.Container, logger *log.Logger) *EventService {
	return &EventService{
		repos:  repos,
		logger: logger,
	}
}

// Log persists a commentary event. Failures are logged, not propagated —
// commentary is informational and must never abort a tick.
func (s *EventService) Log(ctx context.Context, event *models.TournamentEvent) {
	if err := s.repos.Event.Insert(ctx, event); err != nil {
		s.logger.Printf("failed to log tournament event: %v", err)
	}
}

// LogAll persists a batch of commentary events produced by a single tick.
func (s *EventService) LogAll(ctx context.Context, events []*models.TournamentEvent) {
	for _, e := range events {
		s.Log(ctx, e)
	}
}

// Recent returns the most recent n events for a tournament's snapshot.
func (s *EventService) Recent(ctx context.Context, tournamentID string, n int) ([]*models.TournamentEvent, error) {
	return s.repos.Event.Recent(ctx, tournamentID, n)
}
