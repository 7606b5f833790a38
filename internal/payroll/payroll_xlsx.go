package payroll

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	salarySheet     = "Salary Report"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var salaryColumns = []any{
	"Department", "Employee No", "Name", "Position",
	"Expected Hours", "Worked Hours", "Missing Hours", "Late Minutes",
	"Salary/Hour", "Total Salary", "Deduction", "Final Salary",
	"Days", "Present", "Late", "Absent",
}

// renderSalaryReportXLSX menulis report ke satu sheet: header periode, row per
// employee, subtotal per department lalu total keseluruhan.
func renderSalaryReportXLSX(report SalaryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", salarySheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	rowNo := 1
	put := func(values []any, styled bool) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNo)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(salarySheet, cell, &values); err != nil {
			return err
		}
		if styled {
			last, _ := excelize.CoordinatesToCellName(len(salaryColumns), rowNo)
			if err := f.SetCellStyle(salarySheet, cell, last, bold); err != nil {
				return err
			}
		}
		rowNo++
		return nil
	}

	header := [][]any{
		{"Period", fmt.Sprintf("%s s/d %s", report.StartDate, report.EndDate)},
		{"Expected Working Days", report.ExpectedWorkingDays},
		{},
	}
	for _, h := range header {
		if err := put(h, false); err != nil {
			return nil, err
		}
	}
	if err := put(salaryColumns, true); err != nil {
		return nil, err
	}

	for _, dept := range report.Departments {
		for _, r := range dept.Employees {
			values := []any{
				r.Department, r.EmployeeNumber, r.EmployeeName, r.Position,
				r.ExpectedWorkingHours.InexactFloat64(), r.TotalWorkingHours.InexactFloat64(),
				r.MissingHours.InexactFloat64(), r.TotalLateMinutes.InexactFloat64(),
				r.SalaryPerHour.InexactFloat64(), r.TotalSalary.InexactFloat64(),
				r.TotalDeduction.InexactFloat64(), r.FinalSalary.InexactFloat64(),
				r.TotalDays, r.PresentDays, r.LateDays, r.AbsentDays,
			}
			if err := put(values, false); err != nil {
				return nil, err
			}
		}

		subtotal := []any{
			dept.Department + " subtotal", "", fmt.Sprintf("%d employees", dept.TotalEmployees), "",
			"", "", "", "", "",
			dept.TotalSalary.InexactFloat64(), dept.TotalDeductions.InexactFloat64(), dept.TotalFinalSalary.InexactFloat64(),
		}
		if err := put(subtotal, true); err != nil {
			return nil, err
		}
	}

	total := []any{
		"Overall", "", fmt.Sprintf("%d employees", report.Overall.TotalEmployees), "",
		"", "", "", "", "",
		report.Overall.TotalSalary.InexactFloat64(), report.Overall.TotalDeductions.InexactFloat64(), report.Overall.TotalFinalSalary.InexactFloat64(),
	}
	if err := put(total, true); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func salaryReportFileName(report SalaryReport) string {
	return fmt.Sprintf("salary-report_%s_%s.xlsx", report.StartDate, report.EndDate)
}
