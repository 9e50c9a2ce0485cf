package poles

import (
	"math"
	"time"
)

// Score thresholds at which each difficulty parameter starts to change.
const (
	speedStep    = 5
	intervalStep = 10
	gapStep      = 15

	speedFactor = 1.2
)

// Difficulty holds the parameters derived from the score.
type Difficulty struct {
	Speed        time.Duration // Delay between ticks
	PoleInterval int           // Ticks between spawns
	PoleGap      int           // Gap size used for new pairs
}

// InitialDifficulty returns the parameters every run starts with.
func InitialDifficulty() Difficulty {
	return Difficulty{
		Speed:        InitialSpeed,
		PoleInterval: InitialPoleInterval,
		PoleGap:      InitialPoleGap,
	}
}

// ForScore recomputes the parameters for the given score.
// Each parameter is an independent step function of the score and is left
// unchanged while the score is below its threshold; below 5 the speed
// formula would divide by zero.
func (d Difficulty) ForScore(score float64) Difficulty {
	if score >= speedStep {
		steps := math.Floor(score / speedStep)
		d.Speed = time.Duration(math.Round(float64(InitialSpeed) / (steps * speedFactor)))
	}
	if score >= intervalStep {
		steps := int(math.Floor(score / intervalStep))
		d.PoleInterval = max(MinPoleInterval, InitialPoleInterval-steps)
	}
	if score >= gapStep {
		steps := int(math.Floor(score / gapStep))
		d.PoleGap = max(MinPoleGap, InitialPoleGap-steps)
	}
	return d
}
