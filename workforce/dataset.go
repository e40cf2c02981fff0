/*
dataset.go - Full-run orchestration

PURPOSE:
  Runs the three generators in their fixed forward order:
  Config -> Employees -> Shifts -> Timecards. The caller owns the streams
  and the start date, which keeps generation testable and reproducible.
*/
package workforce

import (
	"time"

	"github.com/warp/workforce-engine/config"
)

// Generate produces a complete dataset for cfg, starting at startDate.
// startDate should be a bare UTC date (midnight).
func Generate(cfg *config.Config, streams *Streams, startDate time.Time) (*Dataset, error) {
	employees := NewEmployeeGenerator(cfg, streams).Generate()
	shifts := NewScheduleGenerator(cfg, streams, employees).Generate(startDate)
	timecards, err := NewTimecardGenerator(streams, employees).Generate(shifts)
	if err != nil {
		return nil, err
	}
	return &Dataset{Employees: employees, Shifts: shifts, Timecards: timecards}, nil
}

// DefaultStartDate mirrors the production run: today (UTC) minus the
// simulation horizon, at midnight.
func DefaultStartDate(now time.Time, days int) time.Time {
	d := now.UTC().AddDate(0, 0, -days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
