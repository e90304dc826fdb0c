package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"ytfetch/internal/config"
	"ytfetch/internal/logging"
)

// newLogger builds the invocation logger. Output goes to the configured log
// file, or stderr: stdout belongs to the envelope. When the configured file
// cannot be opened, a warning is written to errOut and logging falls back to
// stderr so the invocation still succeeds.
func newLogger(cfg *config.Config, errOut io.Writer) (*slog.Logger, func(), error) {
	var output io.Writer
	cleanup := func() {}
	if cfg.Logging.Path != "" {
		file, err := os.OpenFile(cfg.Logging.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(errOut, "ytfetch: cannot open log file %s (%v); logging to stderr\n", cfg.Logging.Path, err)
		} else {
			output = file
			cleanup = func() { _ = file.Close() }
		}
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: output,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return logger, cleanup, nil
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
