// Package progress provides ProgressSink implementations for surfacing
// harvest progress to different outputs.
package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
	"github.com/custodia-labs/profscout/internal/logger"
)

// LogSink publishes progress events through the verbose logger.
type LogSink struct{}

var _ driven.ProgressSink = (*LogSink)(nil)

// NewLogSink creates a sink backed by the package logger.
func NewLogSink() *LogSink {
	return &LogSink{}
}

// Publish logs the event at info level.
func (s *LogSink) Publish(event domain.ProgressEvent) {
	logger.Info("[%s] %s: %s", event.Stage, event.Status, event.Message)
}

// WriterSink publishes progress events as lines on a writer, for CLI
// output that should appear without verbose mode.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

var _ driven.ProgressSink = (*WriterSink)(nil)

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Publish writes the event message as one line.
func (s *WriterSink) Publish(event domain.ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, event.Message)
}
