package payroll

import "github.com/shopspring/decimal"

// Money serialises currency with exactly two fractional digits, e.g. "682.00".
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

type SalaryReportRequest struct {
	StartDate    string `form:"start_date" json:"start_date" binding:"required"`
	EndDate      string `form:"end_date" json:"end_date" binding:"required"`
	DepartmentID string `form:"department_id" json:"department_id" binding:"omitempty,uuid"`
}

type PayslipRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

type SalaryRow struct {
	EmployeeID           string `json:"employee_id"`
	EmployeeNumber       string `json:"employee_number"`
	EmployeeName         string `json:"name"`
	DepartmentID         string `json:"department_id,omitempty"`
	Department           string `json:"department"`
	Position             string `json:"position,omitempty"`
	MonthlySalary        Money  `json:"monthly_salary"`
	ScheduledHoursPerDay Money  `json:"scheduled_hours_per_day"`
	ExpectedWorkingDays  int    `json:"expected_working_days"`
	ExpectedWorkingHours Money  `json:"expected_working_hours"`
	TotalWorkingHours    Money  `json:"total_working_hours"`
	MissingHours         Money  `json:"missing_hours"`
	TotalLateMinutes     Money  `json:"total_late_minutes"`
	SalaryPerHour        Money  `json:"salary_per_hour"`
	TotalSalary          Money  `json:"total_salary"`
	TotalDeduction       Money  `json:"total_deduction"`
	FinalSalary          Money  `json:"final_salary"`
	TotalDays            int    `json:"total_days"`
	PresentDays          int    `json:"present_days"`
	LateDays             int    `json:"late_days"`
	AbsentDays           int    `json:"absent_days"`
}

type DepartmentSalarySummary struct {
	DepartmentID     string      `json:"department_id,omitempty"`
	Department       string      `json:"department"`
	TotalEmployees   int         `json:"total_employees"`
	TotalSalary      Money       `json:"total_salary"`
	TotalDeductions  Money       `json:"total_deductions"`
	TotalFinalSalary Money       `json:"total_final_salary"`
	Employees        []SalaryRow `json:"employees"`
}

type SalaryOverall struct {
	TotalEmployees   int   `json:"total_employees"`
	TotalSalary      Money `json:"total_salary"`
	TotalDeductions  Money `json:"total_deductions"`
	TotalFinalSalary Money `json:"total_final_salary"`
}

type SalaryReport struct {
	StartDate           string                    `json:"start_date"`
	EndDate             string                    `json:"end_date"`
	ExpectedWorkingDays int                       `json:"expected_working_days"`
	Overall             SalaryOverall             `json:"overall"`
	Departments         []DepartmentSalarySummary `json:"departments"`
}

type ExportJobResponse struct {
	ID           string  `json:"id"`
	Status       string  `json:"status"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DepartmentID string  `json:"department_id,omitempty"`
	RequestedBy  string  `json:"requested_by"`
	FileName     string  `json:"file_name,omitempty"`
	Error        *string `json:"error,omitempty"`
	CreatedAt    string  `json:"created_at"`
	CompletedAt  *string `json:"completed_at,omitempty"`
}

// File adalah dokumen hasil render (xlsx / pdf) siap diunduh.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}
