package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a logger writing text records to c.LogPath. The terminal
// belongs to the UI, so without a log path records are discarded. The returned
// closer releases the log file.
func (c *Config) NewLogger() (*slog.Logger, io.Closer, error) {
	if c.LogPath == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(c.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: c.LogLevel})
	return slog.New(h), f, nil
}
