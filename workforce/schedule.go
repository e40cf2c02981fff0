/*
schedule.go - Shift schedule generation

PURPOSE:
  For every (day, org path) the generator draws a total daily staffing
  demand, splits it across the DAY/EVENING/NIGHT buckets, carves out an
  open-shift fraction, and fills the remainder by sampling the org's
  employee pool without replacement.

DEMAND MODEL:
  baseline = 55 (Nursing) | 22 (EVS) | 10 (other)
             3 for HR on Saturday/Sunday
  demand   = trunc(max(0-clamped) Normal(baseline, 3))
  bucket needed = round(demand * pct), pct = .45/.35/.20
  open          = round(needed * U(0.03, 0.08))
  filled        = min(max(0, needed - open), pool size)

  Bucket sub-totals round independently of the demand draw; the small
  mismatch is intended approximation noise.

DRAW ORDER (per day, org, bucket; part of the determinism contract):
  1. open-ratio uniform draw (consumed even when the pool turns out empty)
  2. employee sample without replacement
  3. start-hour choice, applied to every shift in the group
  4. one job-code choice per open shift

EDGE CASES:
  - An org with zero employees produces no shifts at all for that
    day/bucket (the pool lookup short-circuits before open shifts too).
  - Negative demand draws clamp to zero before any rounding.

SEE ALSO:
  - timecards.go: turns filled shifts into punches
*/
package workforce

import (
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/workforce-engine/config"
)

// Demand baselines per department.
const (
	demandBaseNursing   = 55
	demandBaseEVS       = 22
	demandBaseDefault   = 10
	demandBaseHRWeekend = 3
	demandStdDev        = 3.0
)

// Open-shift ratio bounds.
const (
	openRatioLo = 0.03
	openRatioHi = 0.08
)

// Scheduled shift lengths.
const (
	nursingShiftHours = 12
	defaultShiftHours = 8
)

// bucketShare is the fixed demand proportion for one bucket.
type bucketShare struct {
	Bucket ShiftBucket
	Pct    float64
}

// Iteration order over buckets is fixed.
var bucketShares = []bucketShare{
	{BucketDay, 0.45},
	{BucketEvening, 0.35},
	{BucketNight, 0.20},
}

// Candidate start hours per bucket; one is chosen per (day, org, bucket).
var bucketStartHours = map[ShiftBucket][]int{
	BucketDay:     {6, 7},
	BucketEvening: {14, 15},
	BucketNight:   {22, 23},
}

// ScheduleGenerator produces the shift table.
type ScheduleGenerator struct {
	cfg     *config.Config
	streams *Streams
	byOrg   map[string][]Employee
}

// NewScheduleGenerator creates a schedule generator over a roster.
func NewScheduleGenerator(cfg *config.Config, streams *Streams, employees []Employee) *ScheduleGenerator {
	byOrg := make(map[string][]Employee)
	for _, e := range employees {
		byOrg[e.OrgPath] = append(byOrg[e.OrgPath], e)
	}
	return &ScheduleGenerator{cfg: cfg, streams: streams, byOrg: byOrg}
}

// Generate covers cfg.Days consecutive calendar days starting at startDate,
// for every org path in config order.
func (g *ScheduleGenerator) Generate(startDate time.Time) []Shift {
	var shifts []Shift
	number := ShiftNumberBase

	for d := 0; d < g.cfg.Days; d++ {
		day := startDate.AddDate(0, 0, d)
		for _, orgPath := range g.cfg.Orgs {
			dept := DepartmentOf(orgPath)
			demand := g.drawDemand(dept, day.Weekday())

			for _, share := range bucketShares {
				needed := int(math.Round(float64(demand) * share.Pct))
				openCount := int(math.Round(float64(needed) * g.streams.uniform(openRatioLo, openRatioHi)))

				pool := g.byOrg[orgPath]
				if len(pool) == 0 {
					continue
				}

				toFill := needed - openCount
				if toFill < 0 {
					toFill = 0
				}
				if toFill > len(pool) {
					toFill = len(pool)
				}
				chosen := sampleIndices(g.streams.General, len(pool), toFill)

				startHour := choose(g.streams.General, bucketStartHours[share.Bucket])
				start := time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, time.UTC)
				end := start.Add(shiftDuration(dept))
				hours := decimal.NewFromFloat(end.Sub(start).Hours()).Round(2)

				for _, idx := range chosen {
					e := pool[idx]
					shifts = append(shifts, Shift{
						ID:             ShiftID(shiftIDFor(number)),
						Date:           day,
						EmployeeID:     e.ID,
						OrgPath:        orgPath,
						JobCode:        e.JobCode,
						Start:          start,
						End:            end,
						Bucket:         share.Bucket,
						IsOpen:         false,
						ScheduledHours: hours,
					})
					number++
				}

				for i := 0; i < openCount; i++ {
					shifts = append(shifts, Shift{
						ID:             ShiftID(shiftIDFor(number)),
						Date:           day,
						OrgPath:        orgPath,
						JobCode:        g.openShiftJobCode(dept),
						Start:          start,
						End:            end,
						Bucket:         share.Bucket,
						IsOpen:         true,
						ScheduledHours: hours,
					})
					number++
				}
			}
		}
	}
	return shifts
}

// drawDemand returns the clamped, truncated daily demand for a department.
func (g *ScheduleGenerator) drawDemand(dept string, weekday time.Weekday) int {
	demand := int(g.streams.normal(float64(baselineDemand(dept, weekday)), demandStdDev))
	if demand < 0 {
		demand = 0
	}
	return demand
}

// baselineDemand is the pre-noise demand mean for a department on a weekday.
func baselineDemand(dept string, weekday time.Weekday) int {
	if dept == DeptHR && (weekday == time.Saturday || weekday == time.Sunday) {
		return demandBaseHRWeekend
	}
	switch dept {
	case DeptNursing:
		return demandBaseNursing
	case DeptEVS:
		return demandBaseEVS
	default:
		return demandBaseDefault
	}
}

func shiftDuration(dept string) time.Duration {
	if dept == DeptNursing {
		return nursingShiftHours * time.Hour
	}
	return defaultShiftHours * time.Hour
}

// openShiftJobCode draws a job code for an unassigned shift.
func (g *ScheduleGenerator) openShiftJobCode(dept string) string {
	catalog := g.cfg.Jobs[dept]
	if len(catalog) == 0 {
		return GenericJobCode
	}
	return choose(g.streams.General, catalog).Code
}

func shiftIDFor(number int) string {
	return "S" + strconv.Itoa(number)
}
