// SPDX-License-Identifier: AGPL-3.0-or-later

package slogging

import (
	"io"
	"log/slog"
)

// NewHandler returns the [slog.Handler] writing to w. When format is
// "json", it uses slog.NewJSONHandler; otherwise it uses slog.NewTextHandler.
// When verbose is true, debug records are emitted as well.
func NewHandler(w io.Writer, format string, verbose bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Setup configures the default slog logger to write to w.
func Setup(w io.Writer, format string, verbose bool) {
	slog.SetDefault(slog.New(NewHandler(w, format, verbose)))
}
