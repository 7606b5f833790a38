package events

import "time"

const (
	SalaryReportExportRequestedType = "salary_report.export_requested"
	SalaryReportExportAggregate     = "salary_report_export"
)

type SalaryReportExportRequestedEvent struct {
	EventType    string    `json:"event_type"`
	ExportID     string    `json:"export_id"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	DepartmentID string    `json:"department_id,omitempty"`
	RequestedBy  string    `json:"requested_by"`
	RequestID    string    `json:"request_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
