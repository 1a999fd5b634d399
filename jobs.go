package main

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

const (
	reapInterval  = time.Minute
	purgeInterval = 24 * time.Hour
)

// startJobs schedules idle page reaping and visitor retention cleanup.
func startJobs(s *Server) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	if _, err := sched.NewJob(
		gocron.DurationJob(reapInterval),
		gocron.NewTask(s.reapPages),
		gocron.WithName("reap-pages"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		return nil, fmt.Errorf("failed to create reap job: %w", err)
	}

	if _, err := sched.NewJob(
		gocron.DurationJob(purgeInterval),
		gocron.NewTask(s.admin.PurgeExpired),
		gocron.WithName("purge-visitors"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	); err != nil {
		return nil, fmt.Errorf("failed to create purge job: %w", err)
	}

	sched.Start()
	return sched, nil
}
