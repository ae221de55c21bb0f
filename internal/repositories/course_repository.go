// internal/repositories/course_repository.go
// Course/Hole/TeeBox data access. Courses are created by seeding and
// immutable thereafter (spec.md §3 lifecycle).

package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"golf-sim/internal/models"
)

// CourseRepository handles course, hole, and tee box data access
type CourseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a course along with its holes and tee boxes within a transaction
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.CreateWithTx(tx, course); err != nil {
		return err
	}

	return tx.Commit()
}

// CreateWithTx inserts a course along with its holes and tee boxes
func (r *CourseRepository) CreateWithTx(tx *sql.Tx, course *models.Course) error {
	query := `
		INSERT INTO courses (
			id, name, location, difficulty_rating, greens_speed, fairway_firmness, rough_severity, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
	`
	if _, err := tx.Exec(query,
		course.ID, course.Name, course.Location, course.DifficultyRating,
		course.GreensSpeed, course.FairwayFirmness, course.RoughSeverity,
	); err != nil {
		return fmt.Errorf("failed to insert course: %w", err)
	}

	for i := range course.Holes {
		hole := &course.Holes[i]
		hole.CourseID = course.ID
		holeQuery := `
			INSERT INTO holes (
				id, course_id, number, par, bunker_count, water_in_play, trees_in_play,
				green_slope, elevation_change, stroke_index
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		if _, err := tx.Exec(holeQuery,
			hole.ID, hole.CourseID, hole.Number, hole.Par, hole.BunkerCount,
			hole.WaterInPlay, hole.TreesInPlay, hole.GreenSlope, hole.ElevationChange,
			hole.StrokeIndex,
		); err != nil {
			return fmt.Errorf("failed to insert hole %d: %w", hole.Number, err)
		}

		for _, tee := range hole.TeeBoxes {
			teeQuery := `
				INSERT INTO tee_boxes (id, hole_id, name, color, yardage, rating, slope)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`
			if _, err := tx.Exec(teeQuery, tee.ID, hole.ID, tee.Name, tee.Color, tee.Yardage, tee.Rating, tee.Slope); err != nil {
				return fmt.Errorf("failed to insert tee box %s: %w", tee.Name, err)
			}
		}
	}

	return nil
}

// GetByID retrieves a course with its nested holes and tee boxes
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `
		SELECT id, name, location, difficulty_rating, greens_speed, fairway_firmness, rough_severity, created_at
		FROM courses WHERE id = ?
	`
	var course models.Course
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&course.ID, &course.Name, &course.Location, &course.DifficultyRating,
		&course.GreensSpeed, &course.FairwayFirmness, &course.RoughSeverity, &course.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("course not found")
	}
	if err != nil {
		return nil, err
	}

	holes, err := r.getHoles(ctx, id)
	if err != nil {
		return nil, err
	}
	course.Holes = holes

	return &course, nil
}

func (r *CourseRepository) getHoles(ctx context.Context, courseID string) ([]models.Hole, error) {
	query := `
		SELECT id, course_id, number, par, bunker_count, water_in_play, trees_in_play,
			green_slope, elevation_change, stroke_index
		FROM holes WHERE course_id = ? ORDER BY number
	`
	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holes := make([]models.Hole, 0, 18)
	for rows.Next() {
		var h models.Hole
		if err := rows.Scan(&h.ID, &h.CourseID, &h.Number, &h.Par, &h.BunkerCount,
			&h.WaterInPlay, &h.TreesInPlay, &h.GreenSlope, &h.ElevationChange, &h.StrokeIndex); err != nil {
			return nil, err
		}
		tees, err := r.getTeeBoxes(ctx, h.ID)
		if err != nil {
			return nil, err
		}
		h.TeeBoxes = tees
		holes = append(holes, h)
	}
	return holes, nil
}

func (r *CourseRepository) getTeeBoxes(ctx context.Context, holeID string) ([]models.TeeBox, error) {
	query := `SELECT id, hole_id, name, color, yardage, rating, slope FROM tee_boxes WHERE hole_id = ?`
	rows, err := r.db.QueryContext(ctx, query, holeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tees := make([]models.TeeBox, 0, 2)
	for rows.Next() {
		var t models.TeeBox
		if err := rows.Scan(&t.ID, &t.HoleID, &t.Name, &t.Color, &t.Yardage, &t.Rating, &t.Slope); err != nil {
			return nil, err
		}
		tees = append(tees, t)
	}
	return tees, nil
}

// List retrieves all courses (without nested holes, for list views)
func (r *CourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, name, location, difficulty_rating, greens_speed, fairway_firmness, rough_severity, created_at
		FROM courses ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.DifficultyRating,
			&c.GreensSpeed, &c.FairwayFirmness, &c.RoughSeverity, &c.CreatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, &c)
	}
	return courses, nil
}

// GetHole retrieves a single hole by course ID and hole number
func (r *CourseRepository) GetHole(ctx context.Context, courseID string, number int) (*models.Hole, error) {
	query := `
		SELECT id, course_id, number, par, bunker_count, water_in_play, trees_in_play,
			green_slope, elevation_change, stroke_index
		FROM holes WHERE course_id = ? AND number = ?
	`
	var h models.Hole
	err := r.db.QueryRowContext(ctx, query, courseID, number).Scan(
		&h.ID, &h.CourseID, &h.Number, &h.Par, &h.BunkerCount,
		&h.WaterInPlay, &h.TreesInPlay, &h.GreenSlope, &h.ElevationChange, &h.StrokeIndex,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("hole not found")
	}
	return &h, err
}
