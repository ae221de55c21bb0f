package services

import "testing"

func TestNextHoleStartingAtOne(t *testing.T) {
	for completed := 0; completed < 18; completed++ {
		got := NextHole(1, completed)
		want := completed + 1
		if got != want {
			t.Errorf("NextHole(1, %d) = %d, want %d", completed, got, want)
		}
	}
}

func TestNextHoleWrapsAfterStartHole(t *testing.T) {
	cases := []struct {
		startHole, completed, want int
	}{
		{10, 0, 10},
		{10, 8, 18},
		{10, 9, 1},
		{10, 17, 9},
	}
	for _, c := range cases {
		got := NextHole(c.startHole, c.completed)
		if got != c.want {
			t.Errorf("NextHole(%d, %d) = %d, want %d", c.startHole, c.completed, got, c.want)
		}
	}
}
