package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-poles/internal/games/poles"
)

var (
	flagRuns         int
	flagMaxTicks     int
	flagSimWidth     int
	flagMovesPerTick int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot games",
	Long: `Play games without a terminal using a simple autopilot that steers
toward the middle of the next gap. Runs use virtual time, so they finish
instantly. Run i uses seed+i, which makes a batch reproducible with --seed.

Examples:
  poles sim
  poles sim --runs 20 --seed 42
  poles sim --moves-per-tick 1 --max-ticks 500 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of runs")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 5000, "Stop a run after this many ticks (0 = until game over)")
	simCmd.Flags().IntVar(&flagSimWidth, "width", poles.MaxLaneWidth, "Lane width")
	simCmd.Flags().IntVar(&flagMovesPerTick, "moves-per-tick", 2, "Autopilot moves between ticks")
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", flagRuns)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Printf("  %-4s  %-20s  %8s  %7s  %10s  %s\n", "Run", "Seed", "Score", "Ticks", "Game time", "Result")
	fmt.Printf("  %-4s  %-20s  %8s  %7s  %10s  %s\n", "---", "----", "-----", "-----", "---------", "------")

	var best, total float64
	for i := range flagRuns {
		res, simErr := poles.Simulate(poles.SimConfig{
			Width:        flagSimWidth,
			Seed:         seed + int64(i),
			MaxTicks:     flagMaxTicks,
			MovesPerTick: flagMovesPerTick,
			Logger:       logger,
		})
		if simErr != nil {
			return simErr
		}

		result := "crashed"
		if !res.Finished {
			result = "tick limit"
		}
		fmt.Printf("  %-4d  %-20d  %8.1f  %7d  %10s  %s\n",
			i+1, res.Seed, res.Score, res.Ticks, res.Elapsed.Round(time.Second), result)

		logger.Debug("simulation finished", "run", res.RunID, "seed", res.Seed, "score", res.Score, "ticks", res.Ticks)

		total += res.Score
		best = max(best, res.Score)
	}

	fmt.Println()
	fmt.Printf("Best score: %.1f  Average: %.2f\n", best, total/float64(flagRuns))
	return nil
}
