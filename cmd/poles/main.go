// poles is a terminal side-scroller: steer the bird through the gaps between poles.
//
// Usage:
//
//	poles play               - Play on the local terminal
//	poles frontends          - List available frontends
//	poles serve              - Start SSH server for remote play
//	poles sim                - Run headless autopilot games
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.poles/config.yaml, ./configs/poles.yaml)
//	--seed <value>      - Set RNG seed for reproducible pole layouts
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-poles/internal/config"
	"github.com/vovakirdan/tui-poles/internal/logging"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-poles/internal/platform/cell"
	_ "github.com/vovakirdan/tui-poles/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	// appConfig is loaded before any subcommand runs.
	appConfig = config.Default()
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "poles",
	Short: "Poles - dodge the poles in your terminal",
	Long: `Poles is a terminal side-scroller. The bird flies through a lane
16 rows tall while pole pairs scroll in from the right; move up and down
to pass through the gaps. Every pole passed is worth half a point, and
the game speeds up as the score rises.

Available commands:
  play       - Play on the local terminal
  frontends  - Show available frontends
  serve      - Start SSH server for remote play
  sim        - Run headless autopilot games

Examples:
  poles play
  poles play --frontend tcell
  poles serve --ssh :2222
  poles sim --runs 10 --seed 42`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	appConfig = cfg
	return nil
}

// newLogger builds the command logger from the loaded config.
// fallback receives output when no log file is configured.
func newLogger(fallback *os.File) (*log.Logger, func() error, error) {
	opts := logging.Options{
		Level:  appConfig.Log.Level,
		File:   appConfig.Log.File,
		Prefix: "poles",
	}
	if fallback != nil {
		opts.Fallback = fallback
	}

	if opts.File != "" {
		path, err := config.ExpandHome(opts.File)
		if err != nil {
			return nil, nil, err
		}
		opts.File = path
	}
	return logging.New(opts)
}
