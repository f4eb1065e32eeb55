package domain

// ProgressStatus is the lifecycle state carried by a progress event.
type ProgressStatus string

const (
	// StatusRunning marks an in-flight stage.
	StatusRunning ProgressStatus = "running"

	// StatusCompleted marks a finished stage.
	StatusCompleted ProgressStatus = "completed"
)

// ProgressEvent is a one-way notification emitted while harvesting.
// There is no acknowledgement or backpressure channel; publishing is
// fire-and-forget.
type ProgressEvent struct {
	// Stage names the pipeline stage, e.g. "harvest".
	Stage string

	// Status is running or completed.
	Status ProgressStatus

	// Message is a human-readable count summary.
	Message string
}
