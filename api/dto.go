/*
dto.go - Data Transfer Objects for API responses

PURPOSE:
  Defines the JSON structures returned by the preview API. These types
  decouple the internal domain model from the external contract; field
  names match the CSV column names so a row looks the same whether you
  read the flat file or the API.

NAMING CONVENTION:
  *DTO: response types returned to clients

SEE ALSO:
  - handlers.go: conversion and serialization
  - output/csv.go: the matching column lists
*/
package api

import (
	"time"

	"github.com/warp/workforce-engine/workforce"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// EmployeeDTO represents one roster row.
type EmployeeDTO struct {
	EmployeeID       string `json:"employee_id"`
	EmployeeNumber   int    `json:"employee_number"`
	EmployeeName     string `json:"employee_name"`
	OrgPath          string `json:"org_path"`
	Department       string `json:"department"`
	JobCode          string `json:"job_code"`
	JobTitle         string `json:"job_title"`
	JobFamily        string `json:"job_family"`
	EmploymentStatus string `json:"employment_status"`
	HomeOrgPath      string `json:"home_org_path"`
	HourlyRate       string `json:"hourly_rate"`
}

// ShiftDTO represents one schedule row.
type ShiftDTO struct {
	ScheduleDate   string `json:"schedule_date"`
	ShiftID        string `json:"shift_id"`
	EmployeeID     string `json:"employee_id,omitempty"`
	OrgPath        string `json:"org_path"`
	JobCode        string `json:"job_code"`
	ShiftStart     string `json:"shift_start"`
	ShiftEnd       string `json:"shift_end"`
	ShiftBucket    string `json:"shift_bucket"`
	IsOpenShift    bool   `json:"is_open_shift"`
	ScheduledHours string `json:"scheduled_hours"`
}

// TimecardDTO represents one punch row.
type TimecardDTO struct {
	TimecardEntryID  string `json:"timecard_entry_id"`
	EmployeeID       string `json:"employee_id"`
	WorkDate         string `json:"work_date"`
	OrgPath          string `json:"org_path"`
	HomeOrgPath      string `json:"home_org_path"`
	JobCode          string `json:"job_code"`
	ClockIn          string `json:"clock_in"`
	ClockOut         string `json:"clock_out"`
	WorkedHours      string `json:"worked_hours"`
	Paycode          string `json:"paycode"`
	ScheduledShiftID string `json:"scheduled_shift_id,omitempty"`
}

func toEmployeeDTO(e workforce.Employee) EmployeeDTO {
	return EmployeeDTO{
		EmployeeID:       string(e.ID),
		EmployeeNumber:   e.Number,
		EmployeeName:     e.Name,
		OrgPath:          e.OrgPath,
		Department:       e.Department,
		JobCode:          e.JobCode,
		JobTitle:         e.JobTitle,
		JobFamily:        e.JobFamily,
		EmploymentStatus: string(e.Status),
		HomeOrgPath:      e.HomeOrgPath,
		HourlyRate:       e.HourlyRate.StringFixed(2),
	}
}

func toShiftDTO(s workforce.Shift) ShiftDTO {
	return ShiftDTO{
		ScheduleDate:   s.Date.Format(dateLayout),
		ShiftID:        string(s.ID),
		EmployeeID:     string(s.EmployeeID),
		OrgPath:        s.OrgPath,
		JobCode:        s.JobCode,
		ShiftStart:     s.Start.Format(timestampLayout),
		ShiftEnd:       s.End.Format(timestampLayout),
		ShiftBucket:    string(s.Bucket),
		IsOpenShift:    s.IsOpen,
		ScheduledHours: s.ScheduledHours.StringFixed(2),
	}
}

func toTimecardDTO(tc workforce.TimecardEntry) TimecardDTO {
	return TimecardDTO{
		TimecardEntryID:  string(tc.ID),
		EmployeeID:       string(tc.EmployeeID),
		WorkDate:         tc.WorkDate.Format(dateLayout),
		OrgPath:          tc.OrgPath,
		HomeOrgPath:      tc.HomeOrgPath,
		JobCode:          tc.JobCode,
		ClockIn:          tc.ClockIn.Format(timestampLayout),
		ClockOut:         tc.ClockOut.Format(timestampLayout),
		WorkedHours:      tc.WorkedHours.StringFixed(2),
		Paycode:          tc.Paycode,
		ScheduledShiftID: string(tc.ShiftID),
	}
}

// HealthDTO is the liveness response.
type HealthDTO struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}
