package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/zealdoc"
)

// Ensure LoggingDocsetService implements zealdoc.DocsetService.
var _ zealdoc.DocsetService = (*LoggingDocsetService)(nil)

// LoggingDocsetService wraps a DocsetService with debug logging.
type LoggingDocsetService struct {
	next   zealdoc.DocsetService
	logger *slog.Logger
}

// NewLoggingDocsetService creates a new LoggingDocsetService.
func NewLoggingDocsetService(next zealdoc.DocsetService, logger *slog.Logger) *LoggingDocsetService {
	return &LoggingDocsetService{next: next, logger: logger}
}

// FindDocsets delegates to the wrapped service and logs the operation.
func (s *LoggingDocsetService) FindDocsets(ctx context.Context) (docsets []*zealdoc.Docset, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find docsets",
			"count", len(docsets),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocsets(ctx)
}

// FindDocsetByName delegates to the wrapped service and logs the operation.
func (s *LoggingDocsetService) FindDocsetByName(ctx context.Context, name string) (docset *zealdoc.Docset, err error) {
	defer func(begin time.Time) {
		attrs := []any{"name", name}
		if docset != nil {
			attrs = append(attrs, "path", docset.Path)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		s.logger.Info("find docset", attrs...)
	}(time.Now())
	return s.next.FindDocsetByName(ctx, name)
}
