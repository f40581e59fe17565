// Package slog provides logging decorators for forumstats interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/forumstats"
)

// Ensure LoggingExtractor implements forumstats.PageExtractor.
var _ forumstats.PageExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a PageExtractor with structured logging.
type LoggingExtractor struct {
	next   forumstats.PageExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next forumstats.PageExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractPage delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractPage(html string, pageNum int) (extraction *forumstats.PageExtraction, err error) {
	defer func(begin time.Time) {
		var messages, failures int
		if extraction != nil {
			messages = len(extraction.Messages)
			failures = len(extraction.Failures)
		}
		e.logger.Info("page extraction",
			"page", pageNum,
			"messages", messages,
			"failures", failures,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractPage(html, pageNum)
}
