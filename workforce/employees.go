/*
employees.go - Roster generation

PURPOSE:
  Produces a fixed-size roster per organization unit. Each employee gets a
  job from the department's catalog (or the generic fallback), an
  employment status, and an hourly rate drawn from a department-specific
  range. Orgs are processed in config order; numeric ids increase strictly
  from EmployeeNumberBase.

DRAW ORDER (per employee, part of the determinism contract):
  1. name        (Names stream)
  2. job choice  (General stream, skipped when the catalog is empty)
  3. status      (General stream)
  4. hourly rate (General stream)

SEE ALSO:
  - config/: job catalog shape
  - schedule.go: consumes the roster for shift assignment
*/
package workforce

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/warp/workforce-engine/config"
)

// EmployeesPerOrg is the fixed headcount generated for every org path.
const EmployeesPerOrg = 70

// Hourly rate ranges by department.
const (
	nursingRateLo = 18.0
	nursingRateHi = 55.0
	defaultRateLo = 15.0
	defaultRateHi = 35.0
)

var employmentStatuses = []EmploymentStatus{StatusFullTime, StatusPartTime, StatusPRN}

// EmployeeGenerator produces the roster table.
type EmployeeGenerator struct {
	cfg     *config.Config
	streams *Streams
}

// NewEmployeeGenerator creates a roster generator.
func NewEmployeeGenerator(cfg *config.Config, streams *Streams) *EmployeeGenerator {
	return &EmployeeGenerator{cfg: cfg, streams: streams}
}

// Generate returns exactly EmployeesPerOrg employees per org path, in
// config org order.
func (g *EmployeeGenerator) Generate() []Employee {
	employees := make([]Employee, 0, len(g.cfg.Orgs)*EmployeesPerOrg)
	number := EmployeeNumberBase

	for _, orgPath := range g.cfg.Orgs {
		dept := DepartmentOf(orgPath)
		catalog := g.cfg.Jobs[dept]

		for i := 0; i < EmployeesPerOrg; i++ {
			name := g.streams.Names.Name()

			job := config.Job{Code: GenericJobCode, Title: "General Staff", Family: dept}
			if len(catalog) > 0 {
				job = choose(g.streams.General, catalog)
			}

			lo, hi := defaultRateLo, defaultRateHi
			if dept == DeptNursing {
				lo, hi = nursingRateLo, nursingRateHi
			}

			employees = append(employees, Employee{
				ID:          EmployeeID(employeeIDFor(number)),
				Number:      number,
				Name:        name,
				OrgPath:     orgPath,
				Department:  dept,
				JobCode:     job.Code,
				JobTitle:    job.Title,
				JobFamily:   job.Family,
				Status:      choose(g.streams.General, employmentStatuses),
				HomeOrgPath: orgPath,
				HourlyRate:  decimal.NewFromFloat(g.streams.uniform(lo, hi)).Round(2),
			})
			number++
		}
	}
	return employees
}

func employeeIDFor(number int) string {
	return "E" + strconv.Itoa(number)
}
