package service

import (
	"berries/internal/domain/entity"
	"berries/internal/domain/repository"
	appErrors "berries/internal/pkg/errors"
	"berries/internal/pkg/logger"
	"berries/internal/pkg/metrics"
	"context"
	"fmt"
	"sync"
	"time"
)

// Dispatcher runs reminder cycles: notify every due berry and reschedule it.
type Dispatcher interface {
	// Remind runs one cycle. Failures are logged and counted, never returned.
	Remind(ctx context.Context) CycleReport
}

// CycleReport summarises one dispatch cycle.
type CycleReport struct {
	Skipped      bool // a previous cycle was still running
	ScanFailed   bool
	Due          int
	Notified     int
	NotifyFailed int
	Rescheduled  int
	WriteFailed  int
}

// DispatcherOption customises a dispatcher.
type DispatcherOption func(*dispatcher)

// WithClock replaces time.Now as the source of the scan instant.
func WithClock(now func() time.Time) DispatcherOption {
	return func(d *dispatcher) { d.now = now }
}

// WithMetrics records cycle outcomes on m.
func WithMetrics(m *metrics.Metrics) DispatcherOption {
	return func(d *dispatcher) { d.metrics = m }
}

type dispatcher struct {
	berryRepo repository.BerryRepository
	notifier  Notifier
	metrics   *metrics.Metrics
	log       logger.Logger
	now       func() time.Time
	running   sync.Mutex // held for the duration of a cycle
}

// NewDispatcher creates a Dispatcher reading and writing berries through berryRepo.
func NewDispatcher(berryRepo repository.BerryRepository, notifier Notifier, log logger.Logger, opts ...DispatcherOption) Dispatcher {
	d := &dispatcher{
		berryRepo: berryRepo,
		notifier:  notifier,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Remind scans for berries due now, notifies their owners and advances their schedule.
// A berry is rescheduled even when its notification fails.
func (d *dispatcher) Remind(ctx context.Context) CycleReport {
	if !d.running.TryLock() {
		d.log.Warn("Previous reminder cycle still running, skipping this trigger.")
		d.metrics.CycleOutcome(metrics.CycleSkipped, 0)
		return CycleReport{Skipped: true}
	}
	defer d.running.Unlock()

	started := time.Now()
	now := d.now()
	report := CycleReport{}
	d.log.Info(fmt.Sprintf("Start reminding, scanning for berries due by %s", now.Format(time.RFC3339)))

	due, err := d.berryRepo.FindDueBy(ctx, now)
	if err != nil {
		d.log.Error("Failed to scan for due berries", fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err))
		report.ScanFailed = true
		d.metrics.CycleOutcome(metrics.CycleScanFailed, time.Since(started))
		return report
	}

	visited := make(map[string]struct{}, len(due))
	for _, berry := range due {
		if _, seen := visited[berry.ID]; seen {
			d.log.Warn(fmt.Sprintf("Berry %s returned twice by the due scan, skipping duplicate", berry.ID))
			continue
		}
		visited[berry.ID] = struct{}{}
		report.Due++
		d.dispatch(ctx, berry, now, &report)
	}

	d.metrics.ItemResult(metrics.ItemNotified, report.Notified)
	d.metrics.ItemResult(metrics.ItemNotifyFailed, report.NotifyFailed)
	d.metrics.ItemResult(metrics.ItemRescheduled, report.Rescheduled)
	d.metrics.ItemResult(metrics.ItemWriteFailed, report.WriteFailed)
	d.metrics.CycleOutcome(metrics.CycleCompleted, time.Since(started))

	d.log.Info(fmt.Sprintf("Done reminding. Due: %d, Notified: %d, Notify failed: %d, Rescheduled: %d, Write failed: %d",
		report.Due, report.Notified, report.NotifyFailed, report.Rescheduled, report.WriteFailed))
	return report
}

// dispatch runs notify, reschedule and write for a single berry, in that order.
func (d *dispatcher) dispatch(ctx context.Context, berry *entity.Berry, now time.Time, report *CycleReport) {
	if err := d.notify(ctx, berry); err != nil {
		d.log.Error(fmt.Sprintf("Failed to notify owner %s for berry %s", berry.OwnerID, berry.ID), err)
		report.NotifyFailed++
	} else {
		report.Notified++
	}

	// Stored rows are a boundary like requests are; never let one crash the cycle.
	if !berry.Period.Valid() {
		d.log.Error(fmt.Sprintf("Berry %s has unknown period %q, leaving it unscheduled", berry.ID, berry.Period), appErrors.ErrInternalServer)
		report.WriteFailed++
		return
	}

	next := NextOccurrence(berry.Period, reanchor(berry.NextOccurrence, now))
	modified, err := d.berryRepo.Reschedule(ctx, berry.ID, next, now)
	switch {
	case err != nil:
		d.log.Error(fmt.Sprintf("Failed to reschedule berry %s", berry.ID), fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err))
		report.WriteFailed++
	case modified == 0:
		d.log.Warn(fmt.Sprintf("Berry %s vanished before it could be rescheduled", berry.ID))
		report.WriteFailed++
	default:
		d.log.Debug(fmt.Sprintf("Rescheduled berry %s to %s", berry.ID, next.Format(time.RFC3339)))
		report.Rescheduled++
	}
}

// notify shields the cycle from panicking notifiers.
func (d *dispatcher) notify(ctx context.Context, berry *entity.Berry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: notifier panicked: %v", appErrors.ErrNotification, r)
		}
	}()
	if err := d.notifier.Notify(ctx, berry.OwnerID, berry.Subject); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrNotification, err)
	}
	return nil
}
