package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitesearch"
)

var _ sitesearch.SnapshotService = (*LoggingSnapshotService)(nil)

// LoggingSnapshotService wraps a SnapshotService with logging.
type LoggingSnapshotService struct {
	next   sitesearch.SnapshotService
	logger *slog.Logger
}

// NewLoggingSnapshotService creates a new LoggingSnapshotService.
func NewLoggingSnapshotService(next sitesearch.SnapshotService, logger *slog.Logger) *LoggingSnapshotService {
	return &LoggingSnapshotService{next: next, logger: logger}
}

func (s *LoggingSnapshotService) SaveSnapshot(ctx context.Context, pages []*sitesearch.Page) (err error) {
	defer func(begin time.Time) {
		logResult(ctx, s.logger, "save snapshot", err,
			"count", len(pages),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.SaveSnapshot(ctx, pages)
}

func (s *LoggingSnapshotService) LoadSnapshot(ctx context.Context) (pages []*sitesearch.Page, err error) {
	defer func(begin time.Time) {
		logResult(ctx, s.logger, "load snapshot", err,
			"count", len(pages),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.LoadSnapshot(ctx)
}
