package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// setupLogging installs the default slog handler. Interactive hosts own the
// terminal, so they only log when --log names a file.
func setupLogging(interactive bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}
