package schedule

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// CronSlots derives the daily modification times from a cron expression.
type CronSlots struct {
	spec     string
	schedule cron.Schedule
}

// NewCronSlots parses a standard five-field cron expression.
func NewCronSlots(spec string) (*CronSlots, error) {
	sche, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", spec, err)
	}

	return &CronSlots{spec: spec, schedule: sche}, nil
}

// MustNewCronSlots is like [NewCronSlots] but panics on errors.
func MustNewCronSlots(spec string) *CronSlots {
	s, err := NewCronSlots(spec)
	if err != nil {
		panic(fmt.Errorf("schedule.MustNewCronSlots failed: %w", err))
	}
	return s
}

// String gives back the original cron expression.
func (s *CronSlots) String() string { return s.spec }

// On lists the times the expression fires during the day of t, in ascending order.
func (s *CronSlots) On(t time.Time) []string {
	start := midnight(t)
	end := midnight(start.AddDate(0, 0, 1))

	var slots []string
	for next := s.schedule.Next(start.Add(-time.Second)); next.Before(end); next = s.schedule.Next(next) {
		label := next.Format(TimeLayout)
		if len(slots) == 0 || slots[len(slots)-1] != label {
			slots = append(slots, label)
		}
	}
	return slots
}
