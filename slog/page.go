package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitesearch"
)

var _ sitesearch.PageService = (*LoggingPageService)(nil)

// LoggingPageService wraps a PageService with logging.
type LoggingPageService struct {
	next   sitesearch.PageService
	logger *slog.Logger
}

// NewLoggingPageService creates a new LoggingPageService.
func NewLoggingPageService(next sitesearch.PageService, logger *slog.Logger) *LoggingPageService {
	return &LoggingPageService{next: next, logger: logger}
}

func (s *LoggingPageService) CreatePageIfNotExists(ctx context.Context, page *sitesearch.Page) (inserted bool, err error) {
	defer func(begin time.Time) {
		logResult(ctx, s.logger, "create page", err,
			"url", page.URL,
			"inserted", inserted,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.CreatePageIfNotExists(ctx, page)
}

func (s *LoggingPageService) FindPages(ctx context.Context) (pages []*sitesearch.Page, err error) {
	defer func(begin time.Time) {
		logResult(ctx, s.logger, "find pages", err,
			"count", len(pages),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindPages(ctx)
}

func (s *LoggingPageService) FindPagesByContent(ctx context.Context, substr string) (results []*sitesearch.SearchResult, err error) {
	defer func(begin time.Time) {
		logResult(ctx, s.logger, "find pages by content", err,
			"substr", substr,
			"count", len(results),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindPagesByContent(ctx, substr)
}
