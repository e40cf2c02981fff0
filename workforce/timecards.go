/*
timecards.go - Time-clock punch generation

PURPOSE:
  Produces one timecard per filled shift, simulating clock-in/clock-out
  noise around the scheduled boundaries, plus a small number of
  unscheduled "exception" punches with no shift reference.

NOISE MODEL (per filled shift, in schedule order):
  late  ~ Normal(4, 6) minutes, truncated to int
  early ~ Normal(3, 8) minutes, truncated to int
  clock-in  = start + max(-15, late)   (at most 15 minutes early)
  clock-out = end   - max(-30, early)  (at most 30 minutes cut short)
  worked    = max(0, clock-out - clock-in), rounded to 2 decimals

PAYCODE POLICY:
  Nursing, worked > 12h           -> OT
  Nursing, else p=0.18            -> uniform {REG, OT, CALL}
  non-Nursing, p=0.08             -> OT
  otherwise                       -> REG

EXCEPTION ENTRIES:
  floor(2% of filled shifts) extra punches. Each draws a random employee,
  the date of a random filled shift, a start hour from {5,9,13,17,21},
  a duration from {4,6,8} hours, and a uniform {REG, OT, CALL} paycode.

INVARIANT:
  A filled shift whose employee id is missing from the roster is a
  programming error, not a runtime condition; generation fails fast with
  ErrUnknownEmployee.
*/
package workforce

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnknownEmployee is returned when a filled shift references an
// employee id absent from the roster.
var ErrUnknownEmployee = errors.New("shift references unknown employee")

// Punch-noise parameters, in minutes.
const (
	lateMeanMinutes  = 4.0
	lateSdMinutes    = 6.0
	earlyMeanMinutes = 3.0
	earlySdMinutes   = 8.0
	maxEarlyClockIn  = -15
	maxEarlyClockOut = -30
)

// Paycode policy parameters.
const (
	nursingOverrideProb = 0.18
	defaultOvertimeProb = 0.08
	exceptionRate       = 0.02
)

const (
	PaycodeRegular  = "REG"
	PaycodeOvertime = "OT"
	PaycodeOnCall   = "CALL"
)

var exceptionPaycodes = []string{PaycodeRegular, PaycodeOvertime, PaycodeOnCall}

// Unscheduled work shape.
var (
	exceptionStartHours = []int{5, 9, 13, 17, 21}
	exceptionDurations  = []int{4, 6, 8}
)

// TimecardGenerator produces the punch table.
type TimecardGenerator struct {
	streams   *Streams
	employees []Employee
	byID      map[EmployeeID]Employee
}

// NewTimecardGenerator creates a punch generator over a roster.
func NewTimecardGenerator(streams *Streams, employees []Employee) *TimecardGenerator {
	byID := make(map[EmployeeID]Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}
	return &TimecardGenerator{streams: streams, employees: employees, byID: byID}
}

// Generate returns one punch per filled shift plus the exception entries.
func (g *TimecardGenerator) Generate(shifts []Shift) ([]TimecardEntry, error) {
	filled := make([]Shift, 0, len(shifts))
	for _, s := range shifts {
		if !s.IsOpen {
			filled = append(filled, s)
		}
	}

	entries := make([]TimecardEntry, 0, len(filled))
	number := TimecardNumberBase

	for _, s := range filled {
		emp, ok := g.byID[s.EmployeeID]
		if !ok {
			return nil, fmt.Errorf("shift %s: %w: %s", s.ID, ErrUnknownEmployee, s.EmployeeID)
		}
		dept := DepartmentOf(s.OrgPath)

		lateMin := int(g.streams.normal(lateMeanMinutes, lateSdMinutes))
		earlyMin := int(g.streams.normal(earlyMeanMinutes, earlySdMinutes))
		clockIn := s.Start.Add(time.Duration(maxInt(maxEarlyClockIn, lateMin)) * time.Minute)
		clockOut := s.End.Add(-time.Duration(maxInt(maxEarlyClockOut, earlyMin)) * time.Minute)

		worked := clockOut.Sub(clockIn).Hours()
		if worked < 0 {
			worked = 0
		}

		entries = append(entries, TimecardEntry{
			ID:          TimecardID(timecardIDFor(number)),
			EmployeeID:  s.EmployeeID,
			WorkDate:    s.Date,
			OrgPath:     s.OrgPath,
			HomeOrgPath: emp.HomeOrgPath,
			JobCode:     s.JobCode,
			ClockIn:     clockIn,
			ClockOut:    clockOut,
			WorkedHours: decimal.NewFromFloat(worked).Round(2),
			Paycode:     g.drawPaycode(dept, worked),
			ShiftID:     s.ID,
		})
		number++
	}

	for i := 0; i < int(float64(len(filled))*exceptionRate); i++ {
		if len(g.employees) == 0 || len(filled) == 0 {
			break
		}
		e := choose(g.streams.General, g.employees)
		day := choose(g.streams.General, filled).Date
		startHour := choose(g.streams.General, exceptionStartHours)
		durHours := choose(g.streams.General, exceptionDurations)

		start := time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, time.UTC)
		end := start.Add(time.Duration(durHours) * time.Hour)

		entries = append(entries, TimecardEntry{
			ID:          TimecardID(timecardIDFor(number)),
			EmployeeID:  e.ID,
			WorkDate:    day,
			OrgPath:     e.OrgPath,
			HomeOrgPath: e.HomeOrgPath,
			JobCode:     e.JobCode,
			ClockIn:     start,
			ClockOut:    end,
			WorkedHours: decimal.NewFromFloat(end.Sub(start).Hours()).Round(2),
			Paycode:     choose(g.streams.General, exceptionPaycodes),
		})
		number++
	}

	return entries, nil
}

// drawPaycode applies the paycode policy. Probability draws are consumed
// only when the preceding branches fall through, which keeps the stream
// draw count stable.
func (g *TimecardGenerator) drawPaycode(dept string, workedHours float64) string {
	switch {
	case dept == DeptNursing && workedHours > float64(nursingShiftHours):
		return PaycodeOvertime
	case dept == DeptNursing && g.streams.General.Float64() < nursingOverrideProb:
		return choose(g.streams.General, exceptionPaycodes)
	case dept != DeptNursing && g.streams.General.Float64() < defaultOvertimeProb:
		return PaycodeOvertime
	default:
		return PaycodeRegular
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func timecardIDFor(number int) string {
	return "T" + strconv.Itoa(number)
}
