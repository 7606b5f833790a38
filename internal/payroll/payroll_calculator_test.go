package payroll_test

import (
	"encoding/json"
	"testing"
	"time"

	"lt-att-backend/internal/attendance"
	"lt-att-backend/internal/employee"
	"lt-att-backend/internal/payroll"
	payrollerrors "lt-att-backend/internal/payroll/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	// Senin 4 Maret s/d Jumat 8 Maret 2024
	weekStart = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	weekEnd   = time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
)

func worker(salary int64) employee.Employee {
	return employee.Employee{
		ID:             uuid.New(),
		EmployeeNumber: "EMP-001",
		FullName:       "Budi",
		Role:           "employee",
		Salary:         decimal.NewFromInt(salary),
		WorkStart:      "09:00",
		WorkEnd:        "17:00",
	}
}

func shift(employeeID uuid.UUID, day time.Time, in, out time.Duration, status string) attendance.Attendance {
	checkIn := day.Add(in)
	checkOut := day.Add(out)
	return attendance.Attendance{
		ID:              uuid.New(),
		EmployeeID:      employeeID,
		AttendanceDate:  day,
		CheckInTime:     &checkIn,
		CheckOutTime:    &checkOut,
		ExpectedCheckIn: day.Add(2 * time.Hour).Format(time.RFC3339),
		Status:          status,
	}
}

func fullWeek(employeeID uuid.UUID) []attendance.Attendance {
	var events []attendance.Attendance
	for d := 0; d < 5; d++ {
		day := weekStart.AddDate(0, 0, d)
		// 09:00-17:00 WIB = 02:00-10:00 UTC
		events = append(events, shift(employeeID, day, 2*time.Hour, 10*time.Hour, attendance.StatusPresent))
	}
	return events
}

func onlyRow(t *testing.T, report payroll.SalaryReport) payroll.SalaryRow {
	t.Helper()
	require.Len(t, report.Departments, 1)
	require.Len(t, report.Departments[0].Employees, 1)
	return report.Departments[0].Employees[0]
}

func TestReconcile_FullWeekOnTime(t *testing.T) {
	e := worker(3000)

	report, err := payroll.Reconcile(weekStart, weekEnd, []employee.Employee{e}, fullWeek(e.ID), zap.NewNop())

	require.NoError(t, err)
	row := onlyRow(t, report)
	assert.Equal(t, 5, report.ExpectedWorkingDays)
	assert.Equal(t, "8.00", row.ScheduledHoursPerDay.StringFixed(2))
	assert.Equal(t, "40.00", row.ExpectedWorkingHours.StringFixed(2))
	assert.Equal(t, "40.00", row.TotalWorkingHours.StringFixed(2))
	assert.Equal(t, "0.00", row.MissingHours.StringFixed(2))
	assert.Equal(t, "17.05", row.SalaryPerHour.StringFixed(2))
	// 40 x (3000 / 176), dibulatkan hanya di akhir
	assert.Equal(t, "681.82", row.TotalSalary.StringFixed(2))
	assert.Equal(t, "0.00", row.TotalDeduction.StringFixed(2))
	assert.Equal(t, "681.82", row.FinalSalary.StringFixed(2))
	assert.Equal(t, 5, row.TotalDays)
	assert.Equal(t, 5, row.PresentDays)
	assert.Equal(t, "Unassigned", row.Department)
	assert.Equal(t, "681.82", report.Overall.TotalFinalSalary.StringFixed(2))
}

func TestReconcile_FullMonthPaysExactlyMonthlySalary(t *testing.T) {
	e := worker(10000)
	// April 2024: 22 hari kerja, 176 jam
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)

	var events []attendance.Attendance
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		events = append(events, shift(e.ID, d, 2*time.Hour, 10*time.Hour, attendance.StatusPresent))
	}

	report, err := payroll.Reconcile(start, end, []employee.Employee{e}, events, zap.NewNop())

	require.NoError(t, err)
	row := onlyRow(t, report)
	assert.Equal(t, 22, report.ExpectedWorkingDays)
	assert.Equal(t, "176.00", row.TotalWorkingHours.StringFixed(2))
	assert.Equal(t, "56.82", row.SalaryPerHour.StringFixed(2))
	assert.Equal(t, "10000.00", row.TotalSalary.StringFixed(2))
	assert.Equal(t, "10000.00", row.FinalSalary.StringFixed(2))
	assert.Equal(t, "10000.00", report.Overall.TotalFinalSalary.StringFixed(2))
}

func TestReconcile_NoEventsIsFullDeduction(t *testing.T) {
	e := worker(3000)

	report, err := payroll.Reconcile(weekStart, weekEnd, []employee.Employee{e}, nil, nil)

	require.NoError(t, err)
	row := onlyRow(t, report)
	assert.Equal(t, "0.00", row.TotalWorkingHours.StringFixed(2))
	assert.Equal(t, "40.00", row.MissingHours.StringFixed(2))
	assert.Equal(t, "0.00", row.TotalSalary.StringFixed(2))
	assert.Equal(t, "681.82", row.TotalDeduction.StringFixed(2))
	assert.Equal(t, "0.00", row.FinalSalary.StringFixed(2))
	assert.Equal(t, 0, row.TotalDays)
}

func TestReconcile_WeekendOnlyRange(t *testing.T) {
	e := worker(3000)
	saturday := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	events := []attendance.Attendance{
		shift(e.ID, saturday, 2*time.Hour, 10*time.Hour, attendance.StatusPresent),
	}

	report, err := payroll.Reconcile(saturday, sunday, []employee.Employee{e}, events, nil)

	require.NoError(t, err)
	row := onlyRow(t, report)
	assert.Equal(t, 0, report.ExpectedWorkingDays)
	assert.Equal(t, "0.00", row.ExpectedWorkingHours.StringFixed(2))
	assert.Equal(t, "0.00", row.MissingHours.StringFixed(2))
	assert.Equal(t, "136.36", row.TotalSalary.StringFixed(2))
	assert.Equal(t, "136.36", row.FinalSalary.StringFixed(2))
}

func TestReconcile_LateAndStatusCounts(t *testing.T) {
	e := worker(3000)
	mon, tue, wed := weekStart, weekStart.AddDate(0, 0, 1), weekStart.AddDate(0, 0, 2)

	late := shift(e.ID, mon, 2*time.Hour+15*time.Minute, 10*time.Hour, attendance.StatusLate)
	absent := attendance.Attendance{ID: uuid.New(), EmployeeID: e.ID, AttendanceDate: tue, Status: attendance.StatusAbsent}
	halfDay := shift(e.ID, wed, 2*time.Hour, 6*time.Hour, attendance.StatusHalfDay)

	report, err := payroll.Reconcile(weekStart, weekEnd, []employee.Employee{e}, []attendance.Attendance{late, absent, halfDay}, nil)

	require.NoError(t, err)
	row := onlyRow(t, report)
	assert.Equal(t, 3, row.TotalDays)
	assert.Equal(t, 0, row.PresentDays)
	assert.Equal(t, 1, row.LateDays)
	assert.Equal(t, 1, row.AbsentDays)
	assert.Equal(t, "15.00", row.TotalLateMinutes.StringFixed(2))
	// half_day tidak menambah jam kerja
	assert.Equal(t, "7.75", row.TotalWorkingHours.StringFixed(2))
}

func TestReconcile_UnparsableExpectedCheckInCountsZero(t *testing.T) {
	e := worker(3000)
	ev := shift(e.ID, weekStart, 3*time.Hour, 10*time.Hour, attendance.StatusLate)
	ev.ExpectedCheckIn = "09:00"

	report, err := payroll.Reconcile(weekStart, weekEnd, []employee.Employee{e}, []attendance.Attendance{ev}, nil)

	require.NoError(t, err)
	row := onlyRow(t, report)
	assert.Equal(t, 1, row.LateDays)
	assert.Equal(t, "0.00", row.TotalLateMinutes.StringFixed(2))
	assert.Equal(t, "7.00", row.TotalWorkingHours.StringFixed(2))
}

func TestReconcile_SkipsAnomalies(t *testing.T) {
	e := worker(3000)
	orphan := shift(uuid.New(), weekStart, 2*time.Hour, 10*time.Hour, attendance.StatusPresent)
	backwards := shift(e.ID, weekStart, 10*time.Hour, 2*time.Hour, attendance.StatusPresent)

	report, err := payroll.Reconcile(weekStart, weekEnd, []employee.Employee{e}, []attendance.Attendance{orphan, backwards}, nil)

	require.NoError(t, err)
	row := onlyRow(t, report)
	assert.Equal(t, 1, row.TotalDays)
	assert.Equal(t, "0.00", row.TotalWorkingHours.StringFixed(2))
	assert.Equal(t, 1, report.Overall.TotalEmployees)
}

func TestReconcile_MisconfiguredScheduleRejectsReport(t *testing.T) {
	good := worker(3000)
	bad := worker(3000)
	bad.FullName = "Sari"
	bad.WorkEnd = "09:00"

	_, err := payroll.Reconcile(weekStart, weekEnd, []employee.Employee{good, bad}, nil, nil)

	assert.ErrorIs(t, err, payrollerrors.ErrInvalidSchedule)
	assert.Contains(t, err.Error(), "Sari")
}

func TestReconcile_InvalidRange(t *testing.T) {
	_, err := payroll.Reconcile(weekEnd, weekStart, nil, nil, nil)
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidDateRange)
}

func TestReconcile_GroupsByDepartment(t *testing.T) {
	financeID, engID := uuid.New(), uuid.New()

	ani := worker(2200)
	ani.FullName = "Ani"
	ani.DepartmentID = &financeID
	ani.Department = &employee.Department{ID: financeID, Name: "Finance"}

	budi := worker(3000)
	budi.DepartmentID = &engID
	budi.Department = &employee.Department{ID: engID, Name: "Engineering"}

	citra := worker(4400)
	citra.FullName = "Citra"

	events := []attendance.Attendance{
		shift(ani.ID, weekStart, 2*time.Hour, 10*time.Hour, attendance.StatusPresent),
		shift(budi.ID, weekStart, 2*time.Hour, 6*time.Hour, attendance.StatusPresent),
	}

	report, err := payroll.Reconcile(weekStart, weekStart, []employee.Employee{ani, budi, citra}, events, nil)

	require.NoError(t, err)
	require.Len(t, report.Departments, 3)
	assert.Equal(t, "Engineering", report.Departments[0].Department)
	assert.Equal(t, "Finance", report.Departments[1].Department)
	assert.Equal(t, "Unassigned", report.Departments[2].Department)

	// Ani: 8 jam x 12.50
	assert.Equal(t, "100.00", report.Departments[1].TotalFinalSalary.StringFixed(2))
	// Budi: 4 jam kerja, 4 jam hilang, tidak pernah negatif
	assert.Equal(t, "68.18", report.Departments[0].TotalDeductions.StringFixed(2))
	assert.Equal(t, "0.00", report.Departments[0].TotalFinalSalary.StringFixed(2))
	// Citra: tanpa event, potongan penuh 8 x 25
	assert.Equal(t, "200.00", report.Departments[2].TotalDeductions.StringFixed(2))

	sumFinal, sumDeduction, sumSalary := decimal.Zero, decimal.Zero, decimal.Zero
	for _, d := range report.Departments {
		sumFinal = sumFinal.Add(d.TotalFinalSalary.Decimal)
		sumDeduction = sumDeduction.Add(d.TotalDeductions.Decimal)
		sumSalary = sumSalary.Add(d.TotalSalary.Decimal)
		assert.True(t, d.TotalFinalSalary.GreaterThanOrEqual(decimal.Zero))
	}
	assert.True(t, sumFinal.Equal(report.Overall.TotalFinalSalary.Decimal))
	assert.True(t, sumDeduction.Equal(report.Overall.TotalDeductions.Decimal))
	assert.True(t, sumSalary.Equal(report.Overall.TotalSalary.Decimal))
	assert.Equal(t, "268.18", report.Overall.TotalDeductions.StringFixed(2))
	assert.Equal(t, 3, report.Overall.TotalEmployees)
}

func TestMoney_MarshalJSON(t *testing.T) {
	body, err := json.Marshal(struct {
		Final payroll.Money `json:"final_salary"`
	}{payroll.NewMoney(decimal.RequireFromString("682"))})

	require.NoError(t, err)
	assert.JSONEq(t, `{"final_salary":"682.00"}`, string(body))
}
