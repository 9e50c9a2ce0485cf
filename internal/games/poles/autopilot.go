package poles

import "github.com/vovakirdan/tui-poles/internal/core"

// Autopilot steers the bird toward the opening of the nearest pole pair
// still ahead of the bird's column.
type Autopilot struct{}

// Decide returns ActionUp, ActionDown or ActionNone for the given frame.
func (Autopilot) Decide(poles []Pole, bird Position, height int) core.Action {
	target, ok := nextOpening(poles, bird.X, height)
	if !ok {
		target = height / 2
	}

	switch {
	case bird.Y > target:
		return core.ActionUp
	case bird.Y < target:
		return core.ActionDown
	default:
		return core.ActionNone
	}
}

// nextOpening returns the middle row of the open band of the closest pair
// ahead of column x. Pairs already at x have been scored this tick.
func nextOpening(poles []Pole, x, height int) (int, bool) {
	col := -1
	for _, p := range poles {
		if p.X > x && (col < 0 || p.X < col) {
			col = p.X
		}
	}
	if col < 0 {
		return 0, false
	}

	top, bottom := 0, height
	for _, p := range poles {
		if p.X != col {
			continue
		}
		if p.IsTop() {
			top = max(top, p.End())
		} else {
			bottom = min(bottom, p.Y)
		}
	}
	if top >= bottom {
		return 0, false
	}
	return (top + bottom - 1) / 2, true
}
