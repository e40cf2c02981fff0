/*
Package workforce implements the synthetic workforce generative model.

PURPOSE:
  This package contains the domain types and the three generators that
  produce an internally consistent synthetic dataset: an employee roster,
  a shift schedule, and time-clock punches. Downstream timekeeping and
  labor-analytics pipelines validate against this data instead of real
  personal data.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee / Shift / TimecardEntry: the three table row types
  - ShiftBucket: coarse time-of-day classification from the start hour
  - Typed string IDs: prevent mixing employee/shift/timecard ids
  - Dataset: the full in-memory result of one generation run

DESIGN PRINCIPLES:
  1. Determinism: identical seed and config produce identical rows.
     Iteration order (org order, ascending days, DAY/EVENING/NIGHT) and
     per-row draw order are part of the contract, not an implementation
     detail.
  2. Immutability: rows are appended once and never mutated.
  3. Precision: decimal.Decimal for rates and hours to avoid
     floating-point drift at the serialization edge.
  4. Forward data flow: Config -> Employees -> Shifts -> Timecards,
     no feedback loops.

SEE ALSO:
  - rand.go: the seeded RNG streams threaded through the generators
  - employees.go, schedule.go, timecards.go: the generators
  - dataset.go: orchestration of a full run
*/
package workforce

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type (
	EmployeeID string
	ShiftID    string
	TimecardID string
)

// Numeric id bases. Ids increase strictly from these in generation order.
const (
	EmployeeNumberBase = 100000
	ShiftNumberBase    = 500000
	TimecardNumberBase = 900000
)

// =============================================================================
// SHIFT BUCKETS
// =============================================================================

// ShiftBucket classifies a shift by its start hour.
type ShiftBucket string

const (
	BucketDay     ShiftBucket = "DAY"
	BucketEvening ShiftBucket = "EVENING"
	BucketNight   ShiftBucket = "NIGHT"
)

// BucketForStartHour maps a start hour to its bucket:
// [6,14) -> DAY, [14,22) -> EVENING, else NIGHT.
func BucketForStartHour(hour int) ShiftBucket {
	switch {
	case hour >= 6 && hour < 14:
		return BucketDay
	case hour >= 14 && hour < 22:
		return BucketEvening
	default:
		return BucketNight
	}
}

// =============================================================================
// EMPLOYMENT
// =============================================================================

// EmploymentStatus is the employee's engagement type.
type EmploymentStatus string

const (
	StatusFullTime EmploymentStatus = "FT"
	StatusPartTime EmploymentStatus = "PT"
	StatusPRN      EmploymentStatus = "PRN"
)

// Departments with special demand or pay rules.
const (
	DeptNursing = "Nursing"
	DeptEVS     = "EVS"
	DeptHR      = "HR"
)

// GenericJobCode is the fallback job for departments without a catalog entry.
const GenericJobCode = "GEN"

// DepartmentOf returns the final segment of a slash-delimited org path.
func DepartmentOf(orgPath string) string {
	if i := strings.LastIndex(orgPath, "/"); i >= 0 {
		return orgPath[i+1:]
	}
	return orgPath
}

// =============================================================================
// TABLE ROWS
// =============================================================================

// Employee is one roster row.
type Employee struct {
	ID          EmployeeID
	Number      int
	Name        string
	OrgPath     string
	Department  string
	JobCode     string
	JobTitle    string
	JobFamily   string
	Status      EmploymentStatus
	HomeOrgPath string
	HourlyRate  decimal.Decimal
}

// Shift is one schedule row. Open shifts have an empty EmployeeID.
type Shift struct {
	ID             ShiftID
	Date           time.Time
	EmployeeID     EmployeeID
	OrgPath        string
	JobCode        string
	Start          time.Time
	End            time.Time
	Bucket         ShiftBucket
	IsOpen         bool
	ScheduledHours decimal.Decimal
}

// TimecardEntry is one punch row. Exception entries (unscheduled work)
// have an empty ShiftID.
type TimecardEntry struct {
	ID          TimecardID
	EmployeeID  EmployeeID
	WorkDate    time.Time
	OrgPath     string
	HomeOrgPath string
	JobCode     string
	ClockIn     time.Time
	ClockOut    time.Time
	WorkedHours decimal.Decimal
	Paycode     string
	ShiftID     ShiftID
}

// Dataset is the complete result of one generation run.
type Dataset struct {
	Employees []Employee
	Shifts    []Shift
	Timecards []TimecardEntry
}

// FilledShiftCount returns the number of non-open shifts.
func (d *Dataset) FilledShiftCount() int {
	n := 0
	for _, s := range d.Shifts {
		if !s.IsOpen {
			n++
		}
	}
	return n
}
