// Package worker runs the scheduled background jobs.
package worker

import (
	"context"
	"fmt"
	"time"

	"edu_crm/internal/logger"
	"edu_crm/internal/metrics"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 10 * time.Minute

// Job is a named unit of work executed on a cron spec.
type Job struct {
	Name string
	Spec string
	Run  func(ctx context.Context) error
}

// Scheduler wraps a cron runner. Runs of the same job never overlap.
type Scheduler struct {
	cron   *cron.Cron
	jobs   []Job
	ids    map[string]cron.EntryID
	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler returns a scheduler for jobs. Nothing runs until Start.
func NewScheduler(jobs ...Job) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		jobs:   jobs,
		ids:    make(map[string]cron.EntryID, len(jobs)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start registers every job and starts the runner. An invalid spec aborts before anything is scheduled.
func (s *Scheduler) Start() error {
	log := logger.WithModule("cron")
	for _, job := range s.jobs {
		job := job
		id, err := s.cron.AddFunc(job.Spec, func() { _ = RunJob(s.ctx, job) })
		if err != nil {
			return fmt.Errorf("schedule %s (%q): %w", job.Name, job.Spec, err)
		}
		s.ids[job.Name] = id
		log.WithFields(map[string]interface{}{"job": job.Name, "spec": job.Spec}).Info("job scheduled")
	}
	s.cron.Start()
	return nil
}

// Stop stops scheduling, cancels running jobs and waits for them to return.
func (s *Scheduler) Stop() {
	done := s.cron.Stop()
	s.cancel()
	<-done.Done()
	logger.WithModule("cron").Info("scheduler stopped")
}

// Entries reports the next run of every scheduled job.
func (s *Scheduler) Entries() map[string]time.Time {
	out := make(map[string]time.Time, len(s.ids))
	for name, id := range s.ids {
		out[name] = s.cron.Entry(id).Next
	}
	return out
}

// RunJob executes one run of job with a timeout. A panic is recovered and reported as an error.
func RunJob(ctx context.Context, job Job) (err error) {
	log := logger.WithModule("cron").WithField("job", job.Name)
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", job.Name, r)
		}
		metrics.CronRuns.WithLabelValues(job.Name, metrics.Outcome(err)).Inc()
		entry := log.WithField("duration", time.Since(start).String())
		if err != nil {
			entry.WithError(err).Error("job failed, will retry on next schedule")
			return
		}
		entry.Info("job finished")
	}()

	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()
	return job.Run(ctx)
}
