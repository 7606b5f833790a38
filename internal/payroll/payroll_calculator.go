package payroll

import (
	"fmt"
	"sort"
	"time"

	"lt-att-backend/internal/attendance"
	"lt-att-backend/internal/employee"
	payrollerrors "lt-att-backend/internal/payroll/errors"
	"lt-att-backend/internal/shared/apperror"
	"lt-att-backend/internal/shared/dateutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Gaji bulanan dinormalisasi ke 22 hari kerja, berapapun panjang periodenya.
const normalizedWorkingDays = 22

const unassignedDepartment = "Unassigned"

var (
	sixty   = decimal.NewFromInt(60)
	monthly = decimal.NewFromInt(normalizedWorkingDays)
)

type tally struct {
	workingMinutes decimal.Decimal
	lateMinutes    decimal.Decimal
	totalDays      int
	presentDays    int
	lateDays       int
	absentDays     int
}

// Reconcile menghitung salary report untuk periode [start, end] dari roster
// dan event attendance. Event tanpa employee di roster dilewati.
func Reconcile(start, end time.Time, roster []employee.Employee, events []attendance.Attendance, logger *zap.Logger) (SalaryReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start = dateutil.CalendarDate(start, time.UTC)
	end = dateutil.CalendarDate(end, time.UTC)
	if start.After(end) {
		return SalaryReport{}, payrollerrors.ErrInvalidDateRange
	}

	tallies := make(map[uuid.UUID]*tally, len(roster))
	for _, e := range roster {
		tallies[e.ID] = &tally{}
	}

	for _, ev := range events {
		t, ok := tallies[ev.EmployeeID]
		if !ok {
			logger.Warn("attendance event without roster employee, skipped",
				zap.String("attendance_id", ev.ID.String()),
				zap.String("employee_id", ev.EmployeeID.String()),
			)
			continue
		}
		accumulate(t, ev, logger)
	}

	expectedDays := dateutil.WorkingDays(start, end)

	rows := make([]SalaryRow, 0, len(roster))
	for _, e := range roster {
		row, err := salaryRow(e, tallies[e.ID], expectedDays)
		if err != nil {
			return SalaryReport{}, err
		}
		rows = append(rows, row)
	}

	report := SalaryReport{
		StartDate:           start.Format(dateutil.DateLayout),
		EndDate:             end.Format(dateutil.DateLayout),
		ExpectedWorkingDays: expectedDays,
		Departments:         groupByDepartment(rows),
	}
	report.Overall = overall(report.Departments)
	return report, nil
}

func accumulate(t *tally, ev attendance.Attendance, logger *zap.Logger) {
	t.totalDays++
	switch ev.Status {
	case attendance.StatusPresent:
		t.presentDays++
	case attendance.StatusLate:
		t.lateDays++
	case attendance.StatusAbsent:
		t.absentDays++
	}

	worked := ev.Status == attendance.StatusPresent || ev.Status == attendance.StatusLate
	if worked && ev.CheckInTime != nil && ev.CheckOutTime != nil {
		d := ev.CheckOutTime.Sub(*ev.CheckInTime)
		if d < 0 {
			logger.Warn("check-out before check-in, working time skipped",
				zap.String("attendance_id", ev.ID.String()),
			)
		} else {
			t.workingMinutes = t.workingMinutes.Add(minutes(d))
		}
	}

	if ev.Status == attendance.StatusLate && ev.CheckInTime != nil {
		// expected_check_in yang tidak bisa di-parse dihitung 0 menit
		if expected, err := time.Parse(time.RFC3339, ev.ExpectedCheckIn); err == nil {
			if late := ev.CheckInTime.Sub(expected); late > 0 {
				t.lateMinutes = t.lateMinutes.Add(minutes(late))
			}
		}
	}
}

func minutes(d time.Duration) decimal.Decimal {
	return decimal.NewFromInt(int64(d / time.Second)).Div(sixty)
}

// ScheduledHoursPerDay returns (end - start) / 60 for an HH:MM work window.
// A window that cannot be parsed or is not positive is a configuration error.
func ScheduledHoursPerDay(e employee.Employee) (decimal.Decimal, error) {
	startMin, err := dateutil.ParseClock(e.WorkStart)
	if err != nil {
		return decimal.Zero, scheduleError(e, err.Error())
	}
	endMin, err := dateutil.ParseClock(e.WorkEnd)
	if err != nil {
		return decimal.Zero, scheduleError(e, err.Error())
	}
	if endMin <= startMin {
		return decimal.Zero, scheduleError(e, fmt.Sprintf("work end %s is not after work start %s", e.WorkEnd, e.WorkStart))
	}
	return decimal.NewFromInt(int64(endMin - startMin)).Div(sixty), nil
}

func scheduleError(e employee.Employee, reason string) error {
	return apperror.WithDetail(payrollerrors.ErrInvalidSchedule,
		fmt.Sprintf("employee %s (%s): %s", e.FullName, e.ID, reason))
}

func salaryRow(e employee.Employee, t *tally, expectedDays int) (SalaryRow, error) {
	hoursPerDay, err := ScheduledHoursPerDay(e)
	if err != nil {
		return SalaryRow{}, err
	}

	expectedHours := decimal.NewFromInt(int64(expectedDays)).Mul(hoursPerDay)
	actualHours := t.workingMinutes.Div(sixty)
	missingHours := decimal.Max(decimal.Zero, expectedHours.Sub(actualHours))

	// hitung tanpa pembulatan; NewMoney membulatkan ke 2 dp hanya saat row dibentuk
	rate := e.Salary.Div(monthly.Mul(hoursPerDay))
	base := actualHours.Mul(rate)
	deduction := missingHours.Mul(rate)
	final := decimal.Max(decimal.Zero, base.Sub(deduction))

	row := SalaryRow{
		EmployeeID:           e.ID.String(),
		EmployeeNumber:       e.EmployeeNumber,
		EmployeeName:         e.FullName,
		Department:           unassignedDepartment,
		Position:             e.Position,
		MonthlySalary:        NewMoney(e.Salary),
		ScheduledHoursPerDay: NewMoney(hoursPerDay),
		ExpectedWorkingDays:  expectedDays,
		ExpectedWorkingHours: NewMoney(expectedHours),
		TotalWorkingHours:    NewMoney(actualHours),
		MissingHours:         NewMoney(missingHours),
		TotalLateMinutes:     NewMoney(t.lateMinutes),
		SalaryPerHour:        NewMoney(rate),
		TotalSalary:          NewMoney(base),
		TotalDeduction:       NewMoney(deduction),
		FinalSalary:          NewMoney(final),
		TotalDays:            t.totalDays,
		PresentDays:          t.presentDays,
		LateDays:             t.lateDays,
		AbsentDays:           t.absentDays,
	}
	if e.DepartmentID != nil {
		row.DepartmentID = e.DepartmentID.String()
		row.Department = row.DepartmentID
		if e.Department != nil && e.Department.Name != "" {
			row.Department = e.Department.Name
		}
	}
	return row, nil
}

// groupByDepartment menjumlahkan row yang sudah dibulatkan sehingga subtotal
// selalu sama persis dengan jumlah row-nya.
func groupByDepartment(rows []SalaryRow) []DepartmentSalarySummary {
	index := make(map[string]int)
	groups := make([]DepartmentSalarySummary, 0)

	for _, row := range rows {
		key := row.DepartmentID
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DepartmentSalarySummary{
				DepartmentID: row.DepartmentID,
				Department:   row.Department,
				Employees:    []SalaryRow{},
			})
		}

		g := &groups[i]
		g.TotalEmployees++
		g.TotalSalary = NewMoney(g.TotalSalary.Add(row.TotalSalary.Decimal))
		g.TotalDeductions = NewMoney(g.TotalDeductions.Add(row.TotalDeduction.Decimal))
		g.TotalFinalSalary = NewMoney(g.TotalFinalSalary.Add(row.FinalSalary.Decimal))
		g.Employees = append(g.Employees, row)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Department < groups[j].Department
	})
	return groups
}

func overall(groups []DepartmentSalarySummary) SalaryOverall {
	var o SalaryOverall
	for _, g := range groups {
		o.TotalEmployees += g.TotalEmployees
		o.TotalSalary = NewMoney(o.TotalSalary.Add(g.TotalSalary.Decimal))
		o.TotalDeductions = NewMoney(o.TotalDeductions.Add(g.TotalDeductions.Decimal))
		o.TotalFinalSalary = NewMoney(o.TotalFinalSalary.Add(g.TotalFinalSalary.Decimal))
	}
	return o
}
