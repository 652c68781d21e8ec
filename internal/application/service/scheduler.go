package service

import "context"

// SchedulerService defines the interface for the periodic reminder trigger.
type SchedulerService interface {
	// Start registers the reminder job and starts the underlying scheduler.
	Start(ctx context.Context) error
	// Stop stops the underlying scheduler, waiting for a running cycle.
	Stop()
}
