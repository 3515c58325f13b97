// Package slog provides logging decorators for stockwire interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/stockwire/stockwire"
)

// Ensure LoggingFetcher implements stockwire.Fetcher at compile time.
var _ stockwire.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   stockwire.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next stockwire.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	body, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch",
			"url", url,
			"code", stockwire.ErrorCode(err),
			"duration", time.Since(begin),
			"err", stockwire.ErrorMessage(err),
		)
		return "", err
	}
	f.logger.Debug("fetch",
		"url", url,
		"bytes", len(body),
		"duration", time.Since(begin),
	)
	return body, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
