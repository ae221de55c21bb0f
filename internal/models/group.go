// internal/models/group.go
// Group scheduling and per-hole scoring records

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Group is an ordered set of 2-4 entries that play together at a tee_time.
type Group struct {
	ID             string    `json:"id" db:"id"`
	TournamentID   string    `json:"tournament_id" db:"tournament_id"`
	TeeTime        time.Time `json:"tee_time" db:"tee_time"`
	Wave           int       `json:"wave" db:"wave"` // 1 (hole 1) or 2 (hole 10)
	StartHole      int       `json:"start_hole" db:"start_hole"` // 1 or 10
	CurrentHole    int       `json:"current_hole" db:"current_hole"`
	HolesCompleted int       `json:"holes_completed" db:"holes_completed"` // 0..18
	NextActionTime *time.Time `json:"next_action_time,omitempty" db:"next_action_time"`
	IsFinished     bool      `json:"is_finished" db:"is_finished"`

	Members []GroupMember `json:"members,omitempty"`
}

// GroupMember is the (group, entry) membership pairing.
type GroupMember struct {
	GroupID string `json:"group_id" db:"group_id"`
	EntryID string `json:"entry_id" db:"entry_id"`

	Entry *TournamentEntry `json:"entry,omitempty"`
}

// HoleResult is one entry's scored outcome for a single hole in a round.
type HoleResult struct {
	ID          string    `json:"id" db:"id"`
	EntryID     string    `json:"entry_id" db:"entry_id"`
	RoundNumber int       `json:"round_number" db:"round_number"`
	HoleNumber  int       `json:"hole_number" db:"hole_number"`
	Strokes     int       `json:"strokes" db:"strokes"`
	Stats       HoleStats `json:"stats" db:"stats"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// HoleStats are the derived, self-consistent per-hole statistics (spec.md §4.3).
type HoleStats struct {
	FIR           *bool   `json:"fir,omitempty"` // fairway in regulation, nil for par-3
	GIR           bool    `json:"gir"`
	Putts         int     `json:"putts"`
	DriveDistance int     `json:"drive_distance"`
	ProxToHole    float64 `json:"prox_to_hole"`
	Commentary    string  `json:"commentary"`
	Excitement    int     `json:"excitement"`
}

// Scan/Value for HoleStats follow the teacher's ScoreDetails JSON-column pattern.
func (h *HoleStats) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into HoleStats", value)
	}
	return json.Unmarshal(bytes, h)
}

func (h HoleStats) Value() (driver.Value, error) {
	return json.Marshal(h)
}
