// internal/services/course_service.go
// Course catalogue service: list/get plus the seed ingestion the CLI drives

package services

import (
	"context"
	"log"

	"golf-sim/internal/models"
	"golf-sim/internal/repositories"
	"golf-sim/internal/utils"
)

// CourseService exposes the course catalogue to the API and the seed CLI.
type CourseService struct {
	repos  *repositories.Container
	logger *log.Logger
}

// NewCourseService creates a new course service
func NewCourseService(repos *repositories.Container, logger *log.Logger) *CourseService {
	return &CourseService{repos: repos, logger: logger}
}

// List returns every seeded course, without nested holes.
func (s *CourseService) List(ctx context.Context) ([]*models.Course, error) {
	return s.repos.Course.List(ctx)
}

// Get returns a course with its nested holes and tee boxes.
func (s *CourseService) Get(ctx context.Context, id string) (*models.Course, error) {
	return s.repos.Course.GetByID(ctx, id)
}

// CourseSeed mirrors one entry of the course-seed JSON file (spec.md §6).
type CourseSeed struct {
	Name             string  `json:"name"`
	Location         string  `json:"location"`
	DifficultyRating float64 `json:"difficulty_rating"`
	GreensSpeed      float64 `json:"greens_speed"`
	FairwayFirmness  float64 `json:"fairway_firmness"`
	RoughSeverity    float64 `json:"rough_severity"`
	Holes            []HoleSeed `json:"holes"`
}

// HoleSeed mirrors one hole entry of the course-seed JSON file.
type HoleSeed struct {
	Number      int  `json:"number"`
	Par         int  `json:"par"`
	StrokeIndex *int `json:"stroke_index,omitempty"`
	Yardage     int  `json:"yardage"`
	Bunkers     int  `json:"bunkers"`
	Water       bool `json:"water"`
}

// IngestCourse builds a Course model from a seed entry and persists it. Two
// tee boxes are generated per hole: "Championship" at the given yardage, and
// "Members" at 90% of it (spec.md §6).
func (s *CourseService) IngestCourse(ctx context.Context, seed CourseSeed) error {
	course := &models.Course{
		ID:               utils.GenerateUUID(),
		Name:             seed.Name,
		Location:         seed.Location,
		DifficultyRating: seed.DifficultyRating,
		GreensSpeed:      seed.GreensSpeed,
		FairwayFirmness:  seed.FairwayFirmness,
		RoughSeverity:    seed.RoughSeverity,
	}

	course.Holes = make([]models.Hole, 0, len(seed.Holes))
	for _, hs := range seed.Holes {
		hole := models.Hole{
			ID:          utils.GenerateUUID(),
			Number:      hs.Number,
			Par:         hs.Par,
			BunkerCount: hs.Bunkers,
			WaterInPlay: hs.Water,
			StrokeIndex: hs.StrokeIndex,
		}
		membersYardage := int(float64(hs.Yardage)*0.9 + 0.5)
		hole.TeeBoxes = []models.TeeBox{
			{ID: utils.GenerateUUID(), Name: "Championship", Color: "black", Yardage: hs.Yardage},
			{ID: utils.GenerateUUID(), Name: "Members", Color: "white", Yardage: membersYardage},
		}
		course.Holes = append(course.Holes, hole)
	}

	if err := s.repos.Course.Create(ctx, course); err != nil {
		return err
	}
	s.logger.Printf("seeded course %q with %d holes", course.Name, len(course.Holes))
	return nil
}
