package attendance

type ScanRequest struct {
	Code      string   `json:"code" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
}

type MarkStatusRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required"`
	Status     string  `json:"status" binding:"required,oneof=present late absent half_day on_leave"`
	Notes      *string `json:"notes"`
}

// ReportFilter dipakai oleh GET /attendances. Semua field opsional.
type ReportFilter struct {
	StartDate    string `form:"start_date"`
	EndDate      string `form:"end_date"`
	DepartmentID string `form:"department_id"`
	EmployeeID   string `form:"employee_id"`
	Status       string `form:"status"`
}

type SummaryFilter struct {
	StartDate    string `form:"start_date" binding:"required"`
	EndDate      string `form:"end_date" binding:"required"`
	DepartmentID string `form:"department_id"`
}

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AttendanceResponse struct {
	ID               string            `json:"id"`
	EmployeeID       string            `json:"employee_id"`
	EmployeeNumber   string            `json:"employee_number,omitempty"`
	EmployeeName     string            `json:"employee_name,omitempty"`
	DepartmentID     string            `json:"department_id,omitempty"`
	AttendanceDate   string            `json:"attendance_date"`
	CheckInTime      *string           `json:"check_in_time,omitempty"`
	CheckInLocation  *LocationResponse `json:"check_in_location,omitempty"`
	CheckOutTime     *string           `json:"check_out_time,omitempty"`
	CheckOutLocation *LocationResponse `json:"check_out_location,omitempty"`
	ExpectedCheckIn  string            `json:"expected_check_in,omitempty"`
	Status           string            `json:"status"`
	Notes            *string           `json:"notes,omitempty"`
	VerifiedBy       string            `json:"verified_by,omitempty"`
}

// ScanResponse membedakan hasil check-in dan check-out lewat Type.
type ScanResponse struct {
	Type       string             `json:"type"`
	Branch     string             `json:"branch"`
	Attendance AttendanceResponse `json:"attendance"`
}

type MySummary struct {
	TotalDays            int     `json:"total_days"`
	PresentDays          int     `json:"present_days"`
	LateDays             int     `json:"late_days"`
	AbsentDays           int     `json:"absent_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

type MyAttendanceResponse struct {
	Records []AttendanceResponse `json:"records"`
	Summary MySummary            `json:"summary"`
}

type EmployeeSummaryResponse struct {
	EmployeeID        string  `json:"employee_id"`
	EmployeeNumber    string  `json:"employee_number"`
	EmployeeName      string  `json:"employee_name"`
	TotalDays         int     `json:"total_days"`
	PresentDays       int     `json:"present_days"`
	LateDays          int     `json:"late_days"`
	AbsentDays        int     `json:"absent_days"`
	PresentPercentage float64 `json:"present_percentage"`
}

type DashboardStatsResponse struct {
	Date            string `json:"date"`
	TotalEmployees  int64  `json:"total_employees"`
	TodayAttendance int64  `json:"today_attendance"`
	PresentToday    int64  `json:"present_today"`
	AbsentToday     int64  `json:"absent_today"`
}
