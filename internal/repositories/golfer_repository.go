// internal/repositories/golfer_repository.go
// Golfer bot template data access

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golf-sim/internal/models"
)

// GolferRepository handles golfer data access
type GolferRepository struct {
	db *sql.DB
}

// NewGolferRepository creates a new golfer repository
func NewGolferRepository(db *sql.DB) *GolferRepository {
	return &GolferRepository{db: db}
}

func scanGolfer(row interface{ Scan(...interface{}) error }) (*models.Golfer, error) {
	var g models.Golfer
	err := row.Scan(
		&g.ID, &g.Name, &g.Country, &g.IsActive, &g.Handedness,
		&g.DrivingPower, &g.DrivingAccuracy, &g.Approach, &g.ShortGame, &g.Putting,
		&g.BallStriking, &g.Consistency, &g.CourseManagement, &g.Discipline, &g.Sand,
		&g.Clutch, &g.RiskTolerance, &g.WeatherHandling, &g.Endurance, &g.Volatility,
		&g.CreatedAt, &g.UpdatedAt,
	)
	return &g, err
}

const golferColumns = `
	id, name, country, is_active, handedness,
	driving_power, driving_accuracy, approach, short_game, putting,
	ball_striking, consistency, course_management, discipline, sand,
	clutch, risk_tolerance, weather_handling, endurance, volatility,
	created_at, updated_at
`

// Upsert inserts a golfer, or updates it in place if a golfer with the same
// name already exists (the "refresh ratings" endpoint's full-upsert semantics,
// spec.md §9 Open Question (c)).
func (r *GolferRepository) Upsert(ctx context.Context, g *models.Golfer) error {
	query := `
		INSERT INTO golfers (` + golferColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			country = VALUES(country), is_active = VALUES(is_active), handedness = VALUES(handedness),
			driving_power = VALUES(driving_power), driving_accuracy = VALUES(driving_accuracy),
			approach = VALUES(approach), short_game = VALUES(short_game), putting = VALUES(putting),
			ball_striking = VALUES(ball_striking), consistency = VALUES(consistency),
			course_management = VALUES(course_management), discipline = VALUES(discipline),
			sand = VALUES(sand), clutch = VALUES(clutch), risk_tolerance = VALUES(risk_tolerance),
			weather_handling = VALUES(weather_handling), endurance = VALUES(endurance),
			volatility = VALUES(volatility), updated_at = VALUES(updated_at)
	`
	now := time.Now()
	g.UpdatedAt = now
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	_, err := r.db.ExecContext(ctx, query,
		g.ID, g.Name, g.Country, g.IsActive, g.Handedness,
		g.DrivingPower, g.DrivingAccuracy, g.Approach, g.ShortGame, g.Putting,
		g.BallStriking, g.Consistency, g.CourseManagement, g.Discipline, g.Sand,
		g.Clutch, g.RiskTolerance, g.WeatherHandling, g.Endurance, g.Volatility,
		g.CreatedAt, g.UpdatedAt,
	)
	return err
}

// GetByID retrieves a golfer by ID
func (r *GolferRepository) GetByID(ctx context.Context, id string) (*models.Golfer, error) {
	query := `SELECT ` + golferColumns + ` FROM golfers WHERE id = ?`
	g, err := scanGolfer(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("golfer not found")
	}
	return g, err
}

// List retrieves all active golfers
func (r *GolferRepository) List(ctx context.Context) ([]*models.Golfer, error) {
	query := `SELECT ` + golferColumns + ` FROM golfers WHERE is_active = TRUE ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	golfers := make([]*models.Golfer, 0)
	for rows.Next() {
		g, err := scanGolfer(rows)
		if err != nil {
			return nil, err
		}
		golfers = append(golfers, g)
	}
	return golfers, nil
}

// RandomSample retrieves up to n random active golfers, used when seeding a
// tournament field.
func (r *GolferRepository) RandomSample(ctx context.Context, n int) ([]*models.Golfer, error) {
	query := `SELECT ` + golferColumns + ` FROM golfers WHERE is_active = TRUE ORDER BY RAND() LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	golfers := make([]*models.Golfer, 0, n)
	for rows.Next() {
		g, err := scanGolfer(rows)
		if err != nil {
			return nil, err
		}
		golfers = append(golfers, g)
	}
	return golfers, nil
}

// TopRanked retrieves the n highest-overall-rated active golfers.
func (r *GolferRepository) TopRanked(ctx context.Context, n int) ([]*models.Golfer, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[j].Overall() > all[i].Overall() {
				all[i], all[j] = all[j], all[i]
			}
		}
	}
	if n > len(all) {
		n = len(all)
	}
	return all[:n], nil
}
