/*
Package output serializes a generated dataset to flat CSV files.

PURPOSE:
  Writes the three tables (employees.csv, schedules.csv, timecards.csv)
  into an output directory, and reads them back for downstream tooling
  (the preview server, determinism tests). Formats are fixed:
    timestamps  2006-01-02 15:04:05
    dates       2006-01-02
    money/hours two decimals
    booleans    true/false
    nullable id empty string

SEE ALSO:
  - reader.go: the inverse parsers
  - cmd/generate/main.go: the production writer call
*/
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/warp/workforce-engine/workforce"
)

// Output file names within the dataset directory.
const (
	EmployeesFile = "employees.csv"
	SchedulesFile = "schedules.csv"
	TimecardsFile = "timecards.csv"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

var employeeHeader = []string{
	"employee_id",
	"employee_number",
	"employee_name",
	"org_path",
	"department",
	"job_code",
	"job_title",
	"job_family",
	"employment_status",
	"home_org_path",
	"hourly_rate",
}

var scheduleHeader = []string{
	"schedule_date",
	"shift_id",
	"employee_id",
	"org_path",
	"job_code",
	"shift_start",
	"shift_end",
	"shift_bucket",
	"is_open_shift",
	"scheduled_hours",
}

var timecardHeader = []string{
	"timecard_entry_id",
	"employee_id",
	"work_date",
	"org_path",
	"home_org_path",
	"job_code",
	"clock_in",
	"clock_out",
	"worked_hours",
	"paycode",
	"scheduled_shift_id",
}

// WriteDataset creates dir if needed and writes all three tables.
func WriteDataset(dir string, ds *workforce.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}
	if err := writeEmployeesCSV(filepath.Join(dir, EmployeesFile), ds.Employees); err != nil {
		return err
	}
	if err := writeSchedulesCSV(filepath.Join(dir, SchedulesFile), ds.Shifts); err != nil {
		return err
	}
	return writeTimecardsCSV(filepath.Join(dir, TimecardsFile), ds.Timecards)
}

func writeEmployeesCSV(path string, rows []workforce.Employee) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(employeeHeader); err != nil {
		return err
	}
	for _, e := range rows {
		rec := []string{
			string(e.ID),
			strconv.Itoa(e.Number),
			e.Name,
			e.OrgPath,
			e.Department,
			e.JobCode,
			e.JobTitle,
			e.JobFamily,
			string(e.Status),
			e.HomeOrgPath,
			e.HourlyRate.StringFixed(2),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

func writeSchedulesCSV(path string, rows []workforce.Shift) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(scheduleHeader); err != nil {
		return err
	}
	for _, s := range rows {
		rec := []string{
			s.Date.Format(dateLayout),
			string(s.ID),
			string(s.EmployeeID), // empty for open shifts
			s.OrgPath,
			s.JobCode,
			s.Start.Format(timestampLayout),
			s.End.Format(timestampLayout),
			string(s.Bucket),
			strconv.FormatBool(s.IsOpen),
			s.ScheduledHours.StringFixed(2),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

func writeTimecardsCSV(path string, rows []workforce.TimecardEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(timecardHeader); err != nil {
		return err
	}
	for _, tc := range rows {
		rec := []string{
			string(tc.ID),
			string(tc.EmployeeID),
			tc.WorkDate.Format(dateLayout),
			tc.OrgPath,
			tc.HomeOrgPath,
			tc.JobCode,
			tc.ClockIn.Format(timestampLayout),
			tc.ClockOut.Format(timestampLayout),
			tc.WorkedHours.StringFixed(2),
			tc.Paycode,
			string(tc.ShiftID), // empty for exception entries
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}
