// Package extensibility holds decorators that add behavior around the
// runtime's pluggable interfaces without changing them.
package extensibility

import (
	"context"
	"log"
	"time"

	"github.com/comalice/langtour/internal/core"
)

// LoggingPersister wraps a Persister and adds logging around every call.
type LoggingPersister struct {
	inner  core.Persister
	logger *log.Logger
}

// NewLoggingPersister creates a LoggingPersister wrapping inner.
// A nil logger uses the standard logger.
func NewLoggingPersister(inner core.Persister, logger *log.Logger) *LoggingPersister {
	if logger == nil {
		logger = log.Default()
	}
	return &LoggingPersister{inner: inner, logger: logger}
}

// Save logs the transcript size and how long the inner save took.
func (p *LoggingPersister) Save(ctx context.Context, t core.Transcript) error {
	start := time.Now()
	err := p.inner.Save(ctx, t)
	p.logger.Printf("save %s (%d sections) in %v: %v", t.Lesson, len(t.Sections), time.Since(start), errText(err))
	return err
}

func (p *LoggingPersister) Load(ctx context.Context, lesson string) (core.Transcript, error) {
	start := time.Now()
	t, err := p.inner.Load(ctx, lesson)
	p.logger.Printf("load %s in %v: %v", lesson, time.Since(start), errText(err))
	return t, err
}

func errText(err error) string {
	if err == nil {
		return "ok"
	}
	return err.Error()
}
