// internal/services/golfer_service.go
// Golfer catalogue service: list-with-overall plus the ratings refresh
// endpoint and the seed CLI's ranking-CSV ingestion

package services

import (
	"context"
	"log"

	"golf-sim/internal/models"
	"golf-sim/internal/repositories"
	"golf-sim/internal/utils"
)

// GolferOverview is a golfer plus its derived overall, as returned by
// GET /api/golfers/ (spec.md §6).
type GolferOverview struct {
	*models.Golfer
	Overall int `json:"overall"`
}

// GolferService exposes the bot catalogue to the API and the seed CLI.
type GolferService struct {
	repos  *repositories.Container
	logger *log.Logger
}

// NewGolferService creates a new golfer service
func NewGolferService(repos *repositories.Container, logger *log.Logger) *GolferService {
	return &GolferService{repos: repos, logger: logger}
}

// List returns every active golfer with its derived overall rating.
func (s *GolferService) List(ctx context.Context) ([]GolferOverview, error) {
	golfers, err := s.repos.Golfer.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]GolferOverview, 0, len(golfers))
	for _, g := range golfers {
		out = append(out, GolferOverview{Golfer: g, Overall: g.Overall()})
	}
	return out, nil
}

// RankingRow mirrors one data row of the ranking-seed CSV (spec.md §6):
// header columns NAME, RANKING, CTRY.
type RankingRow struct {
	Name    string
	Ranking int
	Country string
}

// topNForSeed is the TOP_N used in ratings_from_rank's t = (rank-1)/(TOP_N-1)
// normalization (spec.md §4.4); the ranking CSV is truncated to this many rows.
const topNForSeed = 1000

// RefreshRatings re-derives every golfer's ratings from a ranking CSV,
// upserting existing golfers by name and inserting new ones (spec.md §9
// Open Question (c): full upsert of the top-N rows).
func (s *GolferService) RefreshRatings(ctx context.Context, rows []RankingRow) (int, error) {
	if len(rows) > topNForSeed {
		rows = rows[:topNForSeed]
	}

	count := 0
	for _, row := range rows {
		ratings := RatingsFromRank(row.Ranking, row.Name, topNForSeed)
		golfer := &models.Golfer{
			ID:               utils.GenerateUUID(),
			Name:             row.Name,
			Country:          row.Country,
			IsActive:         true,
			Handedness:       "right",
			DrivingPower:     ratings.DrivingPower,
			DrivingAccuracy:  ratings.DrivingAccuracy,
			Approach:         ratings.Approach,
			ShortGame:        ratings.ShortGame,
			Putting:          ratings.Putting,
			BallStriking:     ratings.BallStriking,
			Consistency:      ratings.Consistency,
			CourseManagement: ratings.CourseManagement,
			Discipline:       ratings.Discipline,
			Sand:             ratings.Sand,
			Clutch:           ratings.Clutch,
			RiskTolerance:    ratings.RiskTolerance,
			WeatherHandling:  ratings.WeatherHandling,
			Endurance:        ratings.Endurance,
			Volatility:       ratings.Volatility,
		}
		if err := s.repos.Golfer.Upsert(ctx, golfer); err != nil {
			return count, err
		}
		count++
	}
	s.logger.Printf("refreshed ratings for %d golfers", count)
	return count, nil
}
