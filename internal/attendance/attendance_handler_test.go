package attendance_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lt-att-backend/internal/attendance"
	attendanceerrors "lt-att-backend/internal/attendance/errors"
	attendanceMock "lt-att-backend/internal/attendance/mock"
	"lt-att-backend/internal/domain"
	qrcodeerrors "lt-att-backend/internal/qrcode/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandlerTest(t *testing.T) (*gin.Engine, *attendanceMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := attendanceMock.NewMockService(gomock.NewController(t))
	h := attendance.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "u-1")
		c.Set("employee_id", "e-1")
		c.Set("role", domain.RoleEmployee)
		c.Next()
	})
	r.POST("/attendances/scan", h.Scan)
	r.GET("/attendances/me", h.GetMine)
	r.GET("/attendances", h.GetReport)
	r.GET("/attendances/summary", h.GetSummary)
	r.PUT("/attendances/status", h.MarkStatus)
	r.GET("/dashboard/stats", h.GetDashboardStats)
	r.GET("/dashboard/recent-attendance", h.GetRecentAttendance)
	return r, svc
}

func TestAttendanceHandler_Scan(t *testing.T) {
	body := `{"code":"c0ffee","latitude":-6.2,"longitude":106.8}`

	t.Run("check-in", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		actor := domain.Actor{UserID: "u-1", EmployeeID: "e-1", Role: domain.RoleEmployee}
		svc.EXPECT().ProcessScan(gomock.Any(), actor, gomock.Any()).
			Return(attendance.ScanResponse{Type: "checkIn", Attendance: attendance.AttendanceResponse{Status: "present"}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/attendances/scan", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"type":"checkIn"`)
	})

	errorCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"already checked in", attendanceerrors.ErrAlreadyCheckedIn, http.StatusConflict, "ALREADY_CHECKED_IN"},
		{"not checked in", attendanceerrors.ErrNotCheckedInYet, http.StatusConflict, "NOT_CHECKED_IN"},
		{"expired", qrcodeerrors.ErrCodeExpired, http.StatusGone, "EXPIRED"},
		{"out of range", qrcodeerrors.ErrOutOfRange, http.StatusForbidden, "OUT_OF_RANGE"},
		{"invalid code", qrcodeerrors.ErrInvalidCode, http.StatusNotFound, "INVALID_CODE"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := setupHandlerTest(t)
			svc.EXPECT().ProcessScan(gomock.Any(), gomock.Any(), gomock.Any()).Return(attendance.ScanResponse{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/attendances/scan", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), `"code":"`+tc.code+`"`)
		})
	}

	t.Run("missing code", func(t *testing.T) {
		r, _ := setupHandlerTest(t)

		req := httptest.NewRequest(http.MethodPost, "/attendances/scan", strings.NewReader(`{"latitude":1,"longitude":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAttendanceHandler_GetMine(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().GetMyAttendance(gomock.Any(), gomock.Any(), 7).
		Return(attendance.MyAttendanceResponse{Summary: attendance.MySummary{TotalDays: 1, PresentDays: 1, AttendancePercentage: 100}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attendances/me?limit=7", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"attendance_percentage":100`)
}

func TestAttendanceHandler_GetReport(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().GetAttendanceReport(gomock.Any(), attendance.ReportFilter{StartDate: "2024-03-01", EndDate: "2024-03-31", Status: "late"}).
		Return([]attendance.AttendanceResponse{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attendances?start_date=2024-03-01&end_date=2024-03-31&status=late&page_size=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":3`)
	assert.NotContains(t, w.Body.String(), `"id":"c"`)
}

func TestAttendanceHandler_GetSummary_RequiresRange(t *testing.T) {
	r, _ := setupHandlerTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attendances/summary?start_date=2024-03-01", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttendanceHandler_MarkStatus(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().MarkStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(attendance.AttendanceResponse{Status: "absent"}, nil)

	body := `{"employee_id":"0b0e3c4a-3f7e-4d44-9f3a-51f0f4d0a001","date":"2024-03-04","status":"absent"}`
	req := httptest.NewRequest(http.MethodPut, "/attendances/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAttendanceHandler_GetDashboardStats(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().GetDashboardStats(gomock.Any()).Return(attendance.DashboardStatsResponse{
			Date:            "2024-03-06",
			TotalEmployees:  12,
			TodayAttendance: 9,
			PresentToday:    8,
			AbsentToday:     4,
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"present_today":8`)
		assert.Contains(t, w.Body.String(), `"absent_today":4`)
	})

	t.Run("internal error is not leaked", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().GetDashboardStats(gomock.Any()).Return(attendance.DashboardStatsResponse{}, errors.New("connection reset"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestAttendanceHandler_GetRecentAttendance(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().GetRecentAttendance(gomock.Any()).
		Return([]attendance.AttendanceResponse{{ID: "a", EmployeeName: "Budi", Status: "late"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/recent-attendance", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"employee_name":"Budi"`)
}
