package services

import "testing"

func TestMinutesForHoleFoursomeTable(t *testing.T) {
	cases := []struct {
		par, groupSize, want int
	}{
		{3, 4, 12},
		{5, 4, 20},
		{4, 4, 16},
		{6, 4, 16}, // unusual par falls back to par-4 entry
	}
	for _, c := range cases {
		got := MinutesForHole(c.par, c.groupSize)
		if got != c.want {
			t.Errorf("MinutesForHole(%d, %d) = %d, want %d", c.par, c.groupSize, got, c.want)
		}
	}
}

func TestMinutesForHoleSmallGroupIsFaster(t *testing.T) {
	cases := []struct {
		par, groupSize, want int
	}{
		{3, 2, 11},
		{5, 2, 18},
		{4, 3, 14},
	}
	for _, c := range cases {
		got := MinutesForHole(c.par, c.groupSize)
		if got != c.want {
			t.Errorf("MinutesForHole(%d, %d) = %d, want %d", c.par, c.groupSize, got, c.want)
		}
		if fast := MinutesForHole(c.par, c.groupSize); fast >= MinutesForHole(c.par, 4) {
			t.Errorf("expected group size %d to play faster than a foursome for par %d", c.groupSize, c.par)
		}
	}
}
