package services

import "testing"

func TestRatingsFromRankIsDeterministic(t *testing.T) {
	a := RatingsFromRank(5, "Scottie Scheffler", 1000)
	b := RatingsFromRank(5, "Scottie Scheffler", 1000)
	if a != b {
		t.Errorf("expected identical ratings for identical (rank, name), got %+v vs %+v", a, b)
	}
}

func TestRatingsFromRankDecreasesWithWorseRank(t *testing.T) {
	top := RatingsFromRank(1, "Player One", 1000)
	bottom := RatingsFromRank(1000, "Player One", 1000)
	if bottom.DrivingPower >= top.DrivingPower+wobbleStandard {
		t.Errorf("expected rank 1000 base rating to trail rank 1, got top=%v bottom=%v", top.DrivingPower, bottom.DrivingPower)
	}
}

func TestRatingsFromRankAttributesWobbleIndependently(t *testing.T) {
	r := RatingsFromRank(400, "Jon Rahm", 1000)
	if r.DrivingPower == r.Putting && r.Putting == r.Clutch && r.Clutch == r.RiskTolerance {
		t.Errorf("expected independent per-attribute noise, got every attribute equal: %+v", r)
	}
}

func TestRatingsFromRankClampsToValidRange(t *testing.T) {
	for _, name := range []string{"Alpha", "Bravo Charlie", "Delta-Echo", ""} {
		r := RatingsFromRank(1, name, 1000)
		fields := []float64{
			r.DrivingPower, r.DrivingAccuracy, r.Approach, r.ShortGame, r.Putting,
			r.BallStriking, r.Consistency, r.CourseManagement, r.Discipline, r.Sand,
			r.Clutch, r.RiskTolerance, r.WeatherHandling, r.Endurance,
		}
		for _, v := range fields {
			if v < 0 || v > 100 {
				t.Errorf("name=%q: rating %v out of [0,100] range", name, v)
			}
		}
		if r.Volatility < 0.70 || r.Volatility > 1.30 {
			t.Errorf("name=%q: volatility %v out of [0.70,1.30] range", name, r.Volatility)
		}
	}
}
