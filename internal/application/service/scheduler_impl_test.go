package service

import (
	"berries/internal/infrastructure/scheduler"
	appErrors "berries/internal/pkg/errors"
	"berries/internal/pkg/logger"
	"context"
	"errors"
	"testing"
	"time"
)

type countingDispatcher struct {
	cycles chan struct{}
}

func (d *countingDispatcher) Remind(context.Context) CycleReport {
	d.cycles <- struct{}{}
	return CycleReport{}
}

func TestSchedulerServiceTriggersDispatcher(t *testing.T) {
	d := &countingDispatcher{cycles: make(chan struct{}, 10)}
	svc := NewSchedulerService(scheduler.NewScheduler(logger.NewNop()), d, "@every 1s", logger.NewNop())

	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	// A second Start must not register a second job.
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("second Start error: %v", err)
	}
	defer svc.Stop()

	select {
	case <-d.cycles:
	case <-time.After(3 * time.Second):
		t.Fatal("dispatcher was not triggered")
	}
}

func TestSchedulerServiceRejectsBadSpec(t *testing.T) {
	d := &countingDispatcher{cycles: make(chan struct{}, 1)}
	svc := NewSchedulerService(scheduler.NewScheduler(logger.NewNop()), d, "whenever", logger.NewNop())

	if err := svc.Start(context.Background()); !errors.Is(err, appErrors.ErrScheduling) {
		t.Fatalf("Start error = %v, want ErrScheduling", err)
	}
	svc.Stop()
}
