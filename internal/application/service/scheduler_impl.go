package service

import (
	"berries/internal/infrastructure/scheduler"
	appErrors "berries/internal/pkg/errors"
	"berries/internal/pkg/logger"
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
)

type schedulerService struct {
	cronScheduler *scheduler.Scheduler
	dispatcher    Dispatcher
	spec          string
	log           logger.Logger

	mu      sync.Mutex
	entryID cron.EntryID
	started bool
}

// NewSchedulerService creates a SchedulerService that triggers dispatcher on spec.
func NewSchedulerService(cronScheduler *scheduler.Scheduler, dispatcher Dispatcher, spec string, log logger.Logger) SchedulerService {
	return &schedulerService{
		cronScheduler: cronScheduler,
		dispatcher:    dispatcher,
		spec:          spec,
		log:           log,
	}
}

// Start registers the reminder job and starts the underlying scheduler.
// The job runs with a background context: a cycle outlives the caller's context.
func (s *schedulerService) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}

	entryID, err := s.cronScheduler.AddJob(s.spec, func() {
		s.dispatcher.Remind(context.Background())
	})
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}
	s.entryID = entryID
	s.started = true
	s.cronScheduler.Start()

	s.log.Info(fmt.Sprintf("Reminder job scheduled with spec %q (Job ID: %d)", s.spec, entryID))
	return nil
}

// Stop stops the underlying scheduler.
func (s *schedulerService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.cronScheduler.RemoveJob(s.entryID)
	s.cronScheduler.Stop()
	s.started = false
}
