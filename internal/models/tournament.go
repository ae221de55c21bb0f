// internal/models/tournament.go
// Tournament aggregate: configuration, virtual clock state, and round history

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Tournament represents a single simulated golf tournament
type Tournament struct {
	ID          string `json:"id" db:"id"`
	OrganizerID string `json:"organizer_id" db:"organizer_id"`
	Name        string `json:"name" db:"name"`
	CourseID    string `json:"course_id" db:"course_id"`

	Status TournamentStatus `json:"status" db:"status"`
	Format TournamentFormat `json:"format" db:"format"`

	StartTime   time.Time `json:"start_time" db:"start_time"`
	CurrentTime time.Time `json:"current_time" db:"current_time"`

	CurrentRound int `json:"current_round" db:"current_round"` // 1..4+

	CutSize           int      `json:"cut_size" db:"cut_size"`
	CutApplied        bool     `json:"cut_applied" db:"cut_applied"`
	ProjectedCutScore *float64 `json:"projected_cut_score,omitempty" db:"projected_cut_score"`

	SessionHistory  SessionHistory  `json:"session_history" db:"session_history"`
	RoundConditions RoundConditionsMap `json:"round_conditions" db:"round_conditions"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TournamentFormat distinguishes stroke play from Ryder-Cup-style match play
type TournamentFormat string

const (
	FormatStroke       TournamentFormat = "stroke"
	FormatMatch        TournamentFormat = "match"
	FormatMatchFourball TournamentFormat = "match_fourball"
)

// TournamentStatus is the tournament's lifecycle state
type TournamentStatus string

const (
	StatusSetup      TournamentStatus = "setup"
	StatusInProgress TournamentStatus = "in_progress"
	StatusPlayoff    TournamentStatus = "playoff"
	StatusFinished   TournamentStatus = "finished"
)

// MatchOutcome is one archived group result for a match-play round (§4.10.1)
type MatchOutcome struct {
	GroupID   string   `json:"group_id"`
	Winner    string   `json:"winner"` // "USA", "EUR", or "" for halved
	Margin    int      `json:"margin"`
	Score     string   `json:"score"` // "{diff} UP" or "Halved"
	USANames  []string `json:"usa_names"`
	EURNames  []string `json:"eur_names"`
}

// SessionHistory maps "R{round}" to the list of archived match-play outcomes
type SessionHistory map[string][]MatchOutcome

// RoundConditionsMap maps round number to its weather conditions
type RoundConditionsMap map[int]RoundConditions

// Scan/Value implement sql.Scanner/driver.Valuer, following the teacher's
// FormatConfig pattern in the original models/tournament.go.

func (s *SessionHistory) Scan(value interface{}) error {
	if value == nil {
		*s = SessionHistory{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into SessionHistory", value)
	}
	if len(bytes) == 0 {
		*s = SessionHistory{}
		return nil
	}
	return json.Unmarshal(bytes, s)
}

func (s SessionHistory) Value() (driver.Value, error) {
	if s == nil {
		s = SessionHistory{}
	}
	return json.Marshal(s)
}

func (r *RoundConditionsMap) Scan(value interface{}) error {
	if value == nil {
		*r = RoundConditionsMap{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into RoundConditionsMap", value)
	}
	if len(bytes) == 0 {
		*r = RoundConditionsMap{}
		return nil
	}
	return json.Unmarshal(bytes, r)
}

func (r RoundConditionsMap) Value() (driver.Value, error) {
	if r == nil {
		r = RoundConditionsMap{}
	}
	return json.Marshal(r)
}
