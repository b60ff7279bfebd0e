package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/zealdoc"
)

// Ensure LoggingIndexOpener implements zealdoc.IndexOpener.
var _ zealdoc.IndexOpener = (*LoggingIndexOpener)(nil)

// LoggingIndexOpener wraps an IndexOpener with debug logging.
type LoggingIndexOpener struct {
	next   zealdoc.IndexOpener
	logger *slog.Logger
}

// NewLoggingIndexOpener creates a new LoggingIndexOpener.
func NewLoggingIndexOpener(next zealdoc.IndexOpener, logger *slog.Logger) *LoggingIndexOpener {
	return &LoggingIndexOpener{next: next, logger: logger}
}

// OpenIndex delegates to the wrapped opener and logs the operation.
func (o *LoggingIndexOpener) OpenIndex(ctx context.Context, docset *zealdoc.Docset) (idx zealdoc.Index, err error) {
	defer func(begin time.Time) {
		o.logger.Info("open index",
			"docset", docset.Name,
			"path", docset.IndexPath(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return o.next.OpenIndex(ctx, docset)
}
