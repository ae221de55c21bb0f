package models

import "testing"

func TestSessionHistoryScanValueRoundTrip(t *testing.T) {
	original := SessionHistory{
		"R1": []MatchOutcome{{GroupID: "g1", Winner: "USA", Margin: 3, Score: "3 UP"}},
	}
	raw, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}

	var restored SessionHistory
	if err := restored.Scan(raw); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(restored["R1"]) != 1 || restored["R1"][0].GroupID != "g1" {
		t.Errorf("round trip mismatch: got %+v", restored)
	}
}

func TestSessionHistoryScanNilYieldsEmptyMap(t *testing.T) {
	var s SessionHistory
	if err := s.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error: %v", err)
	}
	if s == nil {
		t.Errorf("Scan(nil) should leave a non-nil empty map")
	}
}

func TestSessionHistoryScanRejectsWrongType(t *testing.T) {
	var s SessionHistory
	if err := s.Scan(42); err == nil {
		t.Errorf("expected an error scanning a non-[]byte value")
	}
}

func TestRoundConditionsMapScanValueRoundTrip(t *testing.T) {
	original := RoundConditionsMap{1: {WindMPH: 12.5, Rain: RainLight}}
	raw, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}

	var restored RoundConditionsMap
	if err := restored.Scan(raw); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if restored[1].WindMPH != 12.5 || restored[1].Rain != RainLight {
		t.Errorf("round trip mismatch: got %+v", restored[1])
	}
}

func TestGolferOverallIsMeanOfFourteenRatings(t *testing.T) {
	g := &Golfer{
		DrivingPower: 80, DrivingAccuracy: 80, Approach: 80, ShortGame: 80, Putting: 80,
		BallStriking: 80, Consistency: 80, CourseManagement: 80, Discipline: 80, Sand: 80,
		Clutch: 80, RiskTolerance: 80, WeatherHandling: 80, Endurance: 80,
	}
	if got := g.Overall(); got != 80 {
		t.Errorf("Overall() = %d, want 80", got)
	}
}
