package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"
)

// Job is the work run on each tick, typically regenerating a report.
type Job func(ctx context.Context) error

// Scheduler runs a Job on cron schedules. Runs never overlap; a tick that
// fires while the previous run is still going is skipped.
type Scheduler struct {
	Cron *cron.Cron
	Job  Job
	Ctx  context.Context

	mu      sync.Mutex
	running bool
}

// New creates a Scheduler. Cron specs include a seconds field.
func New(ctx context.Context, job Job) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		Job:  job,
		Ctx:  ctx,
	}
}

// Register adds the job under spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.tick); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the job immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() error {
	if !s.acquire() {
		return fmt.Errorf("report task already running")
	}
	defer s.release()
	return s.Job(s.Ctx)
}

func (s *Scheduler) tick() {
	if err := s.Ctx.Err(); err != nil {
		return
	}
	if !s.acquire() {
		log.Println("[WARN] report task still running, skipping tick")
		return
	}
	defer s.release()

	log.Println("[INFO] running report task")
	if err := s.Job(s.Ctx); err != nil {
		log.Printf("[ERROR] report task: %v", err)
	}
}

func (s *Scheduler) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	return true
}

func (s *Scheduler) release() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}
