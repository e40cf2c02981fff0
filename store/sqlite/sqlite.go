/*
Package sqlite provides a SQLite-backed store for a generated dataset.

PURPOSE:
  Backs the preview server: a generated CSV dataset is bulk-loaded into
  SQLite (in-memory by default) so it can be browsed and filtered without
  re-reading flat files per request. The generator itself never touches
  this store - flat CSV files remain the only persisted artifact.

KEY TABLES:
  employees:  one row per roster member
  shifts:     one row per scheduled shift (open or filled)
  timecards:  one row per punch (scheduled or exception)

LOAD SEMANTICS:
  LoadDataset replaces the current contents inside a single transaction.
  Rows are inserted in generation order, so id ordering is preserved.

TIME ENCODING:
  Timestamps are stored as "2006-01-02 15:04:05" strings and dates as
  "2006-01-02", matching the CSV serialization, so SQL date filters work
  with plain string comparison.

CONCURRENCY:
  sync.RWMutex guards load vs read. The preview server loads once at
  startup, so contention is not a concern.

USAGE:
  store, err := sqlite.New(":memory:")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()
  err = store.LoadDataset(ctx, ds)

SEE ALSO:
  - api/handlers.go: the only consumer
  - output/reader.go: loads the CSVs this store is filled from
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/workforce-engine/workforce"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// Store holds one loaded dataset.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a store at dbPath. Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the dataset schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		employee_id TEXT PRIMARY KEY,
		employee_number INTEGER NOT NULL,
		employee_name TEXT NOT NULL,
		org_path TEXT NOT NULL,
		department TEXT NOT NULL,
		job_code TEXT NOT NULL,
		job_title TEXT NOT NULL,
		job_family TEXT NOT NULL,
		employment_status TEXT NOT NULL,
		home_org_path TEXT NOT NULL,
		hourly_rate TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_employees_org ON employees(org_path);

	CREATE TABLE IF NOT EXISTS shifts (
		shift_id TEXT PRIMARY KEY,
		schedule_date TEXT NOT NULL,
		employee_id TEXT,
		org_path TEXT NOT NULL,
		job_code TEXT NOT NULL,
		shift_start TEXT NOT NULL,
		shift_end TEXT NOT NULL,
		shift_bucket TEXT NOT NULL,
		is_open_shift INTEGER NOT NULL,
		scheduled_hours TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_shifts_date_org ON shifts(schedule_date, org_path);

	CREATE TABLE IF NOT EXISTS timecards (
		timecard_entry_id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		work_date TEXT NOT NULL,
		org_path TEXT NOT NULL,
		home_org_path TEXT NOT NULL,
		job_code TEXT NOT NULL,
		clock_in TEXT NOT NULL,
		clock_out TEXT NOT NULL,
		worked_hours TEXT NOT NULL,
		paycode TEXT NOT NULL,
		scheduled_shift_id TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_timecards_date ON timecards(work_date);
	CREATE INDEX IF NOT EXISTS idx_timecards_paycode ON timecards(paycode);
	`
	_, err := s.db.Exec(schema)
	return err
}

// LoadDataset replaces the store contents with ds, atomically.
func (s *Store) LoadDataset(ctx context.Context, ds *workforce.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"timecards", "shifts", "employees"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	empStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO employees (employee_id, employee_number, employee_name,
			org_path, department, job_code, job_title, job_family,
			employment_status, home_org_path, hourly_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer empStmt.Close()
	for _, e := range ds.Employees {
		if _, err := empStmt.ExecContext(ctx,
			string(e.ID), e.Number, e.Name, e.OrgPath, e.Department,
			e.JobCode, e.JobTitle, e.JobFamily, string(e.Status),
			e.HomeOrgPath, e.HourlyRate.StringFixed(2),
		); err != nil {
			return fmt.Errorf("insert employee %s: %w", e.ID, err)
		}
	}

	shiftStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO shifts (shift_id, schedule_date, employee_id, org_path,
			job_code, shift_start, shift_end, shift_bucket, is_open_shift,
			scheduled_hours)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer shiftStmt.Close()
	for _, sh := range ds.Shifts {
		var empID interface{}
		if sh.EmployeeID != "" {
			empID = string(sh.EmployeeID)
		}
		if _, err := shiftStmt.ExecContext(ctx,
			string(sh.ID), sh.Date.Format(dateLayout), empID, sh.OrgPath,
			sh.JobCode, sh.Start.Format(timestampLayout),
			sh.End.Format(timestampLayout), string(sh.Bucket),
			sh.IsOpen, sh.ScheduledHours.StringFixed(2),
		); err != nil {
			return fmt.Errorf("insert shift %s: %w", sh.ID, err)
		}
	}

	tcStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO timecards (timecard_entry_id, employee_id, work_date,
			org_path, home_org_path, job_code, clock_in, clock_out,
			worked_hours, paycode, scheduled_shift_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer tcStmt.Close()
	for _, tc := range ds.Timecards {
		var shiftID interface{}
		if tc.ShiftID != "" {
			shiftID = string(tc.ShiftID)
		}
		if _, err := tcStmt.ExecContext(ctx,
			string(tc.ID), string(tc.EmployeeID),
			tc.WorkDate.Format(dateLayout), tc.OrgPath, tc.HomeOrgPath,
			tc.JobCode, tc.ClockIn.Format(timestampLayout),
			tc.ClockOut.Format(timestampLayout),
			tc.WorkedHours.StringFixed(2), tc.Paycode, shiftID,
		); err != nil {
			return fmt.Errorf("insert timecard %s: %w", tc.ID, err)
		}
	}

	return tx.Commit()
}

// =============================================================================
// QUERIES
// =============================================================================

// Summary is the row-count breakdown of the loaded dataset.
type Summary struct {
	Employees        int `json:"employees"`
	Shifts           int `json:"shifts"`
	OpenShifts       int `json:"open_shifts"`
	FilledShifts     int `json:"filled_shifts"`
	Timecards        int `json:"timecards"`
	ExceptionPunches int `json:"exception_punches"`
}

// GetSummary returns dataset row counts.
func (s *Store) GetSummary(ctx context.Context) (Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum Summary
	queries := []struct {
		dst   *int
		query string
	}{
		{&sum.Employees, "SELECT COUNT(*) FROM employees"},
		{&sum.Shifts, "SELECT COUNT(*) FROM shifts"},
		{&sum.OpenShifts, "SELECT COUNT(*) FROM shifts WHERE is_open_shift"},
		{&sum.FilledShifts, "SELECT COUNT(*) FROM shifts WHERE NOT is_open_shift"},
		{&sum.Timecards, "SELECT COUNT(*) FROM timecards"},
		{&sum.ExceptionPunches, "SELECT COUNT(*) FROM timecards WHERE scheduled_shift_id IS NULL"},
	}
	for _, q := range queries {
		if err := s.db.QueryRowContext(ctx, q.query).Scan(q.dst); err != nil {
			return Summary{}, err
		}
	}
	return sum, nil
}

// EmployeeFilter narrows ListEmployees results.
type EmployeeFilter struct {
	OrgPath string
	Limit   int
}

// ListEmployees returns roster rows in generation order.
func (s *Store) ListEmployees(ctx context.Context, f EmployeeFilter) ([]workforce.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT employee_id, employee_number, employee_name, org_path,
		department, job_code, job_title, job_family, employment_status,
		home_org_path, hourly_rate FROM employees`
	var args []interface{}
	if f.OrgPath != "" {
		query += " WHERE org_path = ?"
		args = append(args, f.OrgPath)
	}
	query += " ORDER BY employee_number"
	query, args = applyLimit(query, args, f.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []workforce.Employee
	for rows.Next() {
		var e workforce.Employee
		var rate string
		if err := rows.Scan(&e.ID, &e.Number, &e.Name, &e.OrgPath,
			&e.Department, &e.JobCode, &e.JobTitle, &e.JobFamily,
			&e.Status, &e.HomeOrgPath, &rate); err != nil {
			return nil, err
		}
		e.HourlyRate, err = decimal.NewFromString(rate)
		if err != nil {
			return nil, fmt.Errorf("employee %s: bad hourly_rate %q: %w", e.ID, rate, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ShiftFilter narrows ListShifts results.
type ShiftFilter struct {
	Date     string // "2006-01-02"
	OrgPath  string
	OpenOnly bool
	Limit    int
}

// ListShifts returns schedule rows in generation order.
func (s *Store) ListShifts(ctx context.Context, f ShiftFilter) ([]workforce.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT shift_id, schedule_date, employee_id, org_path, job_code,
		shift_start, shift_end, shift_bucket, is_open_shift, scheduled_hours
		FROM shifts WHERE 1=1`
	var args []interface{}
	if f.Date != "" {
		query += " AND schedule_date = ?"
		args = append(args, f.Date)
	}
	if f.OrgPath != "" {
		query += " AND org_path = ?"
		args = append(args, f.OrgPath)
	}
	if f.OpenOnly {
		query += " AND is_open_shift"
	}
	query += " ORDER BY shift_id"
	query, args = applyLimit(query, args, f.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []workforce.Shift
	for rows.Next() {
		var sh workforce.Shift
		var date, start, end, hours string
		var empID sql.NullString
		if err := rows.Scan(&sh.ID, &date, &empID, &sh.OrgPath, &sh.JobCode,
			&start, &end, &sh.Bucket, &sh.IsOpen, &hours); err != nil {
			return nil, err
		}
		sh.EmployeeID = workforce.EmployeeID(empID.String)
		if sh.Date, err = parseDate(date); err != nil {
			return nil, fmt.Errorf("shift %s: %w", sh.ID, err)
		}
		if sh.Start, err = parseTimestamp(start); err != nil {
			return nil, fmt.Errorf("shift %s: %w", sh.ID, err)
		}
		if sh.End, err = parseTimestamp(end); err != nil {
			return nil, fmt.Errorf("shift %s: %w", sh.ID, err)
		}
		if sh.ScheduledHours, err = decimal.NewFromString(hours); err != nil {
			return nil, fmt.Errorf("shift %s: bad scheduled_hours %q: %w", sh.ID, hours, err)
		}
		out = append(out, sh)
	}
	return out, rows.Err()
}

// TimecardFilter narrows ListTimecards results.
type TimecardFilter struct {
	Date    string // "2006-01-02"
	Paycode string
	Limit   int
}

// ListTimecards returns punch rows in generation order.
func (s *Store) ListTimecards(ctx context.Context, f TimecardFilter) ([]workforce.TimecardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT timecard_entry_id, employee_id, work_date, org_path,
		home_org_path, job_code, clock_in, clock_out, worked_hours, paycode,
		scheduled_shift_id FROM timecards WHERE 1=1`
	var args []interface{}
	if f.Date != "" {
		query += " AND work_date = ?"
		args = append(args, f.Date)
	}
	if f.Paycode != "" {
		query += " AND paycode = ?"
		args = append(args, f.Paycode)
	}
	query += " ORDER BY timecard_entry_id"
	query, args = applyLimit(query, args, f.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []workforce.TimecardEntry
	for rows.Next() {
		var tc workforce.TimecardEntry
		var workDate, clockIn, clockOut, worked string
		var shiftID sql.NullString
		if err := rows.Scan(&tc.ID, &tc.EmployeeID, &workDate, &tc.OrgPath,
			&tc.HomeOrgPath, &tc.JobCode, &clockIn, &clockOut, &worked,
			&tc.Paycode, &shiftID); err != nil {
			return nil, err
		}
		tc.ShiftID = workforce.ShiftID(shiftID.String)
		if tc.WorkDate, err = parseDate(workDate); err != nil {
			return nil, fmt.Errorf("timecard %s: %w", tc.ID, err)
		}
		if tc.ClockIn, err = parseTimestamp(clockIn); err != nil {
			return nil, fmt.Errorf("timecard %s: %w", tc.ID, err)
		}
		if tc.ClockOut, err = parseTimestamp(clockOut); err != nil {
			return nil, fmt.Errorf("timecard %s: %w", tc.ID, err)
		}
		if tc.WorkedHours, err = decimal.NewFromString(worked); err != nil {
			return nil, fmt.Errorf("timecard %s: bad worked_hours %q: %w", tc.ID, worked, err)
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

func applyLimit(query string, args []interface{}, limit int) (string, []interface{}) {
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return query, args
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(timestampLayout, s, time.UTC)
}
