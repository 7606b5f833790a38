package payroll

import (
	"bytes"
	"fmt"
	"strings"
)

const pdfContentType = "application/pdf"

func payslipLines(report SalaryReport, row SalaryRow) []string {
	return []string{
		"SALARY SLIP",
		fmt.Sprintf("Period            : %s s/d %s", report.StartDate, report.EndDate),
		fmt.Sprintf("Employee          : %s (%s)", row.EmployeeName, row.EmployeeNumber),
		fmt.Sprintf("Department        : %s", row.Department),
		fmt.Sprintf("Position          : %s", row.Position),
		"",
		fmt.Sprintf("Monthly salary    : %s", row.MonthlySalary.StringFixed(2)),
		fmt.Sprintf("Hours per day     : %s", row.ScheduledHoursPerDay.StringFixed(2)),
		fmt.Sprintf("Expected hours    : %s (%d working days)", row.ExpectedWorkingHours.StringFixed(2), row.ExpectedWorkingDays),
		fmt.Sprintf("Worked hours      : %s", row.TotalWorkingHours.StringFixed(2)),
		fmt.Sprintf("Missing hours     : %s", row.MissingHours.StringFixed(2)),
		fmt.Sprintf("Late minutes      : %s", row.TotalLateMinutes.StringFixed(2)),
		fmt.Sprintf("Days present/late/absent : %d/%d/%d of %d", row.PresentDays, row.LateDays, row.AbsentDays, row.TotalDays),
		"",
		fmt.Sprintf("Salary per hour   : %s", row.SalaryPerHour.StringFixed(2)),
		fmt.Sprintf("Earned            : %s", row.TotalSalary.StringFixed(2)),
		fmt.Sprintf("Deduction         : %s", row.TotalDeduction.StringFixed(2)),
		fmt.Sprintf("Take home pay     : %s", row.FinalSalary.StringFixed(2)),
	}
}

// renderPayslipPDF menulis satu halaman PDF dengan font monospace bawaan (Courier).
func renderPayslipPDF(lines []string) []byte {
	if len(lines) == 0 {
		lines = []string{"Salary Slip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 11 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		if i == 0 {
			fmt.Fprintf(&content, "(%s) Tj\n", pdfEscape(line))
			continue
		}
		fmt.Fprintf(&content, "T* (%s) Tj\n", pdfEscape(line))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(objects)+1)
	out.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xref)

	return out.Bytes()
}

func pdfEscape(v string) string {
	return strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)").Replace(v)
}

func payslipFileName(report SalaryReport, row SalaryRow) string {
	name := row.EmployeeNumber
	if name == "" {
		name = row.EmployeeID
	}
	return fmt.Sprintf("payslip_%s_%s_%s.pdf", name, report.StartDate, report.EndDate)
}
