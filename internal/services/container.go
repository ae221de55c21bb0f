// internal/services/container.go
// Service container provides dependency injection for all business logic services.
// This pattern makes testing easier and keeps services loosely coupled.

package services

import (
	"errors"
	"log"

	"golf-sim/internal/config"
	"golf-sim/internal/database"
	"golf-sim/internal/repositories"
)

// Container holds all service instances and provides them to handlers
type Container struct {
	Auth         *AuthService
	Tournament   *TournamentService
	Course       *CourseService
	Golfer       *GolferService
	Notification *NotificationService
	Cache        *CacheService
	Event        *EventService
}

// NewContainer creates a new service container with all dependencies
func NewContainer(db *database.Connections, cfg *config.Config, logger *log.Logger) *Container {
	repos := repositories.NewContainer(db)

	cache := NewCacheService(db.Redis, logger)
	notification := NewNotificationService(cfg, logger)
	event := NewEventService(repos, logger)

	auth := NewAuthService(repos.Organizer, cfg.Auth, cache, logger)
	course := NewCourseService(repos, logger)
	golfer := NewGolferService(repos, logger)
	tournament := NewTournamentService(repos, cache, notification, event, logger)

	return &Container{
		Auth:         auth,
		Tournament:   tournament,
		Course:       course,
		Golfer:       golfer,
		Notification: notification,
		Cache:        cache,
		Event:        event,
	}
}

// Common errors used across services
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid tournament format")
	ErrTournamentLocked   = errors.New("tournament is busy with another operation")
	ErrNoCourse           = errors.New("course has no holes")
	ErrInvalidStrokes     = errors.New("strokes outside the permitted range for this hole")
)
