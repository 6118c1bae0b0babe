package notify

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Scheduler runs the reporter once per hour.
type Scheduler struct {
	cron     *gocron.Scheduler
	reporter *Reporter
	loc      *time.Location
}

func NewScheduler(loc *time.Location, reporter *Reporter) *Scheduler {
	return &Scheduler{
		cron:     gocron.NewScheduler(loc),
		reporter: reporter,
		loc:      loc,
	}
}

// Start schedules the hourly tick and returns immediately.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.Every(1).Hour().Do(func() {
		if err := s.reporter.Tick(ctx, time.Now().In(s.loc)); err != nil {
			log.Printf("notifier tick: %v", err)
		}
	})
	if err != nil {
		return err
	}
	s.cron.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
