package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-poles/internal/config"
	"github.com/vovakirdan/tui-poles/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the poles SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game.

Host key handling:
  - If --host-key (or ssh.host_key in the config) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.poles/host_key

Examples:
  poles serve                           # Listen on :23234 with auto-generated key
  poles serve --ssh :2222               # Listen on port 2222
  poles serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := serverConfig(appConfig)
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	hostKey, err := config.ExpandHome(cfg.HostKeyPath)
	if err != nil {
		return err
	}
	cfg.HostKeyPath = hostKey

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting poles SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(cmd.Context())
}

// serverConfig builds the SSH server settings from the app config.
func serverConfig(c config.Config) tui.SSHServerConfig {
	return tui.SSHServerConfig{
		Address:     c.SSH.Address,
		HostKeyPath: c.SSH.HostKey,
		IdleTimeout: c.SSH.IdleTimeout,
		Theme:       themeFromConfig(c.Theme),
	}
}
