package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"BrightFeed/internal/ports"
)

// CronScheduler drives recurring refresh cycles from a cron expression.
type CronScheduler struct {
	spec     string
	location *time.Location
	cron     *cron.Cron
}

var _ ports.Scheduler = (*CronScheduler)(nil)

// NewCronScheduler builds a scheduler; location defaults to UTC when nil.
func NewCronScheduler(spec string, location *time.Location) *CronScheduler {
	if location == nil {
		location = time.UTC
	}
	return &CronScheduler{spec: spec, location: location}
}

// Start registers the job and begins scheduling. Fires only on cron ticks;
// callers wanting an immediate run invoke the job themselves first.
func (c *CronScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}
	if c.cron != nil {
		return nil
	}

	runner := cron.New(cron.WithLocation(c.location))
	if _, err := runner.AddFunc(c.spec, func() { job(time.Now().In(c.location)) }); err != nil {
		return fmt.Errorf("register cron job %q: %w", c.spec, err)
	}

	runner.Start()
	c.cron = runner

	go func() {
		<-ctx.Done()
		runner.Stop()
	}()

	return nil
}

// Stop halts scheduling and waits for a running job to finish.
func (c *CronScheduler) Stop(ctx context.Context) error {
	if c.cron == nil {
		return nil
	}

	done := c.cron.Stop().Done()
	c.cron = nil

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
