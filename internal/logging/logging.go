// Package logging builds the charmbracelet/log loggers shared by the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	Level  string // debug, info, warn, error; empty = info
	File   string // Log file path; empty = Fallback
	Prefix string

	// Fallback receives output when File is empty. Nil discards it,
	// which is what interactive frontends want since they own the terminal.
	Fallback io.Writer
}

// New creates a logger and returns a close function for any opened file.
// The close function is never nil.
func New(opts Options) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var (
		out     io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)
	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o700); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	case opts.Fallback != nil:
		out = opts.Fallback
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
	})
	return logger, closeFn, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
