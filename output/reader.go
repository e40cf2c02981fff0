/*
reader.go - CSV dataset loaders

PURPOSE:
  Parses a previously generated dataset directory back into domain rows.
  Used by the preview server and by round-trip tests. Headers are checked
  against the writer's column lists so schema drift fails loudly.
*/
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/workforce-engine/workforce"
)

// ReadDataset loads all three tables from dir.
func ReadDataset(dir string) (*workforce.Dataset, error) {
	employees, err := readEmployeesCSV(filepath.Join(dir, EmployeesFile))
	if err != nil {
		return nil, err
	}
	shifts, err := readSchedulesCSV(filepath.Join(dir, SchedulesFile))
	if err != nil {
		return nil, err
	}
	timecards, err := readTimecardsCSV(filepath.Join(dir, TimecardsFile))
	if err != nil {
		return nil, err
	}
	return &workforce.Dataset{Employees: employees, Shifts: shifts, Timecards: timecards}, nil
}

func readTable(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: missing header row", path)
	}
	for i, col := range header {
		if records[0][i] != col {
			return nil, fmt.Errorf("read %s: column %d is %q, want %q", path, i, records[0][i], col)
		}
	}
	return records[1:], nil
}

func readEmployeesCSV(path string) ([]workforce.Employee, error) {
	records, err := readTable(path, employeeHeader)
	if err != nil {
		return nil, err
	}
	rows := make([]workforce.Employee, 0, len(records))
	for i, rec := range records {
		number, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: employee_number: %w", path, i+1, err)
		}
		rate, err := decimal.NewFromString(rec[10])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: hourly_rate: %w", path, i+1, err)
		}
		rows = append(rows, workforce.Employee{
			ID:          workforce.EmployeeID(rec[0]),
			Number:      number,
			Name:        rec[2],
			OrgPath:     rec[3],
			Department:  rec[4],
			JobCode:     rec[5],
			JobTitle:    rec[6],
			JobFamily:   rec[7],
			Status:      workforce.EmploymentStatus(rec[8]),
			HomeOrgPath: rec[9],
			HourlyRate:  rate,
		})
	}
	return rows, nil
}

func readSchedulesCSV(path string) ([]workforce.Shift, error) {
	records, err := readTable(path, scheduleHeader)
	if err != nil {
		return nil, err
	}
	rows := make([]workforce.Shift, 0, len(records))
	for i, rec := range records {
		date, err := time.ParseInLocation(dateLayout, rec[0], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: schedule_date: %w", path, i+1, err)
		}
		start, err := time.ParseInLocation(timestampLayout, rec[5], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: shift_start: %w", path, i+1, err)
		}
		end, err := time.ParseInLocation(timestampLayout, rec[6], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: shift_end: %w", path, i+1, err)
		}
		isOpen, err := strconv.ParseBool(rec[8])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: is_open_shift: %w", path, i+1, err)
		}
		hours, err := decimal.NewFromString(rec[9])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: scheduled_hours: %w", path, i+1, err)
		}
		rows = append(rows, workforce.Shift{
			ID:             workforce.ShiftID(rec[1]),
			Date:           date,
			EmployeeID:     workforce.EmployeeID(rec[2]),
			OrgPath:        rec[3],
			JobCode:        rec[4],
			Start:          start,
			End:            end,
			Bucket:         workforce.ShiftBucket(rec[7]),
			IsOpen:         isOpen,
			ScheduledHours: hours,
		})
	}
	return rows, nil
}

func readTimecardsCSV(path string) ([]workforce.TimecardEntry, error) {
	records, err := readTable(path, timecardHeader)
	if err != nil {
		return nil, err
	}
	rows := make([]workforce.TimecardEntry, 0, len(records))
	for i, rec := range records {
		workDate, err := time.ParseInLocation(dateLayout, rec[2], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: work_date: %w", path, i+1, err)
		}
		clockIn, err := time.ParseInLocation(timestampLayout, rec[6], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: clock_in: %w", path, i+1, err)
		}
		clockOut, err := time.ParseInLocation(timestampLayout, rec[7], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: clock_out: %w", path, i+1, err)
		}
		worked, err := decimal.NewFromString(rec[8])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: worked_hours: %w", path, i+1, err)
		}
		rows = append(rows, workforce.TimecardEntry{
			ID:          workforce.TimecardID(rec[0]),
			EmployeeID:  workforce.EmployeeID(rec[1]),
			WorkDate:    workDate,
			OrgPath:     rec[3],
			HomeOrgPath: rec[4],
			JobCode:     rec[5],
			ClockIn:     clockIn,
			ClockOut:    clockOut,
			WorkedHours: worked,
			Paycode:     rec[9],
			ShiftID:     workforce.ShiftID(rec[10]),
		})
	}
	return rows, nil
}
