// Package slog provides logging decorators for zealdoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/zealdoc"
)

// Ensure LoggingSearcher implements zealdoc.Searcher.
var _ zealdoc.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   zealdoc.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next zealdoc.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, docset *zealdoc.Docset, query string, opts zealdoc.SearchOptions) (results []*zealdoc.Result, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"docset", docset.Name,
			"query", query,
			"fullScan", opts.FullScan,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, docset, query, opts)
}
