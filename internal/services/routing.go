// internal/services/routing.go
// Routing helper: maps (start hole, holes completed) to the next hole number

package services

// NextHole returns the (holesCompleted)-th element of the sequence formed by
// concatenating [startHole..18] with [1..startHole-1]. holesCompleted=18 is
// never queried because the group has finished by then.
func NextHole(startHole, holesCompleted int) int {
	sequence := make([]int, 0, 18)
	for h := startHole; h <= 18; h++ {
		sequence = append(sequence, h)
	}
	for h := 1; h < startHole; h++ {
		sequence = append(sequence, h)
	}
	return sequence[holesCompleted]
}
