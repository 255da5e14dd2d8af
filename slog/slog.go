// Package slog provides logging decorators for sitesearch services.
// Successful calls are logged at debug level and failed calls at warn level.
package slog

import (
	"context"
	"log/slog"
)

// logResult logs msg at debug level, or at warn level when err is set.
func logResult(ctx context.Context, logger *slog.Logger, msg string, err error, args ...any) {
	level := slog.LevelDebug
	if err != nil {
		level = slog.LevelWarn
		args = append(args, "err", err)
	}
	logger.Log(ctx, level, msg, args...)
}
