package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/stockwire/stockwire"
)

// Ensure LoggingSource implements stockwire.Source at compile time.
var _ stockwire.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with discovery logging.
type LoggingSource struct {
	next   stockwire.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next stockwire.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Name delegates to the wrapped source.
func (s *LoggingSource) Name() string {
	return s.next.Name()
}

// Discover delegates to the wrapped source and logs the candidate count.
func (s *LoggingSource) Discover(ctx context.Context) ([]stockwire.Candidate, error) {
	begin := time.Now()
	candidates, err := s.next.Discover(ctx)
	if err != nil {
		s.logger.Warn("discover",
			"source", s.next.Name(),
			"code", stockwire.ErrorCode(err),
			"duration", time.Since(begin),
			"err", stockwire.ErrorMessage(err),
		)
		return nil, err
	}
	s.logger.Info("discover",
		"source", s.next.Name(),
		"candidates", len(candidates),
		"duration", time.Since(begin),
	)
	return candidates, nil
}
