package services

import (
	"sync"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
)

// Ensure Broadcaster implements the sink interface.
var _ driven.ProgressSink = (*Broadcaster)(nil)

// Broadcaster fans progress events out to any number of attached sinks, so
// logs, CLI output, and tests can observe a harvest independently.
type Broadcaster struct {
	mu    sync.RWMutex
	sinks []driven.ProgressSink
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster(sinks ...driven.ProgressSink) *Broadcaster {
	return &Broadcaster{sinks: sinks}
}

// Attach adds a sink. Safe to call while a harvest is publishing.
func (b *Broadcaster) Attach(sink driven.ProgressSink) {
	if sink == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sinks = append(b.sinks, sink)
}

// Publish delivers the event to every attached sink in attach order.
func (b *Broadcaster) Publish(event domain.ProgressEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sink := range b.sinks {
		sink.Publish(event)
	}
}
