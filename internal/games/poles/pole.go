package poles

import "math"

// Pole is one solid vertical segment covering rows [Y, Y+Length) at column X.
// Poles are spawned in pairs: a top segment starting at row 0 and a bottom
// segment reaching the floor of the lane.
type Pole struct {
	X      int // Column
	Y      int // First covered row
	Length int // Number of covered rows
}

// Position is the bird's cell on the lane grid.
type Position struct {
	X, Y int
}

// IsTop reports whether the pole hangs from the ceiling.
func (p Pole) IsTop() bool {
	return p.Y == 0
}

// End returns the first row below the pole.
func (p Pole) End() int {
	return p.Y + p.Length
}

// Covers reports whether the pole occupies the given row.
func (p Pole) Covers(row int) bool {
	return row >= p.Y && row < p.End()
}

// Hits reports whether a bird at the given row collides with the pole.
// A top segment is hit anywhere above its end, a bottom segment anywhere
// at or below its start.
func (p Pole) Hits(row int) bool {
	if p.IsTop() {
		return row < p.End()
	}
	return row >= p.Y
}

// Shift returns a new slice with every pole moved one column left.
// Poles already at column 0 are dropped, so a pole stays collidable at
// column 0 for exactly one tick.
func Shift(poles []Pole) []Pole {
	shifted := make([]Pole, 0, len(poles))
	for _, p := range poles {
		if p.X > 0 {
			p.X--
			shifted = append(shifted, p)
		}
	}
	return shifted
}

// GapStart maps r in [0, 1) to the first uncovered row of a new pair.
// The result lies in [1, height-gap].
func GapStart(r float64, height, gap int) int {
	return 1 + int(math.Round(r*float64(height-gap-1)))
}

// NewPair builds the top and bottom segments of a pair at column x.
// The bottom segment starts at gapStart+gap-1, which leaves gap-1 rows open.
func NewPair(x, height, gap, gapStart int) (top, bottom Pole) {
	top = Pole{X: x, Y: 0, Length: gapStart}
	bottomY := gapStart + gap - 1
	bottom = Pole{X: x, Y: bottomY, Length: height - bottomY}
	return top, bottom
}
