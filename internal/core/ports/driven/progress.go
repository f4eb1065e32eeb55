package driven

import "github.com/custodia-labs/profscout/internal/core/domain"

// ProgressSink receives harvest progress events. Publishing is one-way and
// fire-and-forget: implementations must not block the harvest loop, and no
// return value is consumed.
type ProgressSink interface {
	Publish(event domain.ProgressEvent)
}
