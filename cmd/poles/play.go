package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-poles/internal/core"
	"github.com/vovakirdan/tui-poles/internal/registry"
)

var (
	flagFrontend string
	flagNoSound  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on the local terminal",
	Long: `Start a game on the local terminal.

Controls:
  Enter/Space  - Start a run
  Up/W         - Move up
  Down/S       - Move down
  Q/Ctrl+C     - Quit

The lane is 16 rows tall; its width follows the terminal, up to 32 cells.

Examples:
  poles play
  poles play --frontend tcell
  poles play --seed 42 --log-level debug --log-file ./poles.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "", "Frontend to use (default from config)")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	frontendID := appConfig.Frontend
	if flagFrontend != "" {
		frontendID = flagFrontend
	}

	frontend, err := registry.Create(frontendID)
	if err != nil {
		return fmt.Errorf("%w (run 'poles frontends' to see available frontends)", err)
	}

	// The frontend owns the terminal, so logs only go to a file
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	// Get terminal size for the lane width
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := registry.RunOptions{
		Config: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Theme:  themeFromConfig(appConfig.Theme),
		Logger: logger,
		Sound:  appConfig.Sound && !flagNoSound,
	}

	logger.Info("starting game", "frontend", frontend.ID(), "width", width, "height", height)
	return frontend.Run(cmd.Context(), opts)
}
