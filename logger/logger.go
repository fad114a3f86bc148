// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package logger wraps log/slog the way magistrala's newer services do,
// matching the New(out, level) signature cmd/opcua/main.go already calls.
package logger

import (
	"fmt"
	"io"
	"log/slog"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// New returns a JSON-handler slog.Logger at the given level ("debug", "info",
// "warn" or "error"). An unrecognized level is a configuration error.
func New(out io.Writer, level string) (*slog.Logger, error) {
	lvl, ok := levels[level]
	if !ok {
		return nil, fmt.Errorf("unrecognized log level: %q", level)
	}
	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler), nil
}
