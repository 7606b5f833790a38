package attendance

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	attendanceerrors "lt-att-backend/internal/attendance/errors"
	"lt-att-backend/internal/domain"
	"lt-att-backend/internal/employee"
	"lt-att-backend/internal/qrcode"
	qrcodeerrors "lt-att-backend/internal/qrcode/errors"
	"lt-att-backend/internal/shared/apperror"
	"lt-att-backend/internal/shared/contextutil"
	"lt-att-backend/internal/shared/dateutil"
	"lt-att-backend/internal/shared/geo"
	"lt-att-backend/internal/shared/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	defaultHistoryLimit = 30
	maxHistoryLimit     = 366
	recentLimit         = 10
)

// WindowFinder adalah bagian dari qrcode.Repository yang dibutuhkan scan.
type WindowFinder interface {
	FindActiveByCode(ctx context.Context, code string) (*qrcode.QRCode, error)
}

// EmployeeFinder adalah bagian dari employee.Repository yang dibutuhkan scan dan dashboard.
type EmployeeFinder interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
	CountRoster(ctx context.Context) (int64, error)
}

// Settings mengatur radius geofence, zona waktu bisnis dan sumber waktu.
type Settings struct {
	RadiusMeters float64
	Location     *time.Location
	Now          func() time.Time
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ProcessScan(ctx context.Context, actor domain.Actor, req ScanRequest) (ScanResponse, error)
	GetMyAttendance(ctx context.Context, actor domain.Actor, limit int) (MyAttendanceResponse, error)
	GetAttendanceReport(ctx context.Context, filter ReportFilter) ([]AttendanceResponse, error)
	GetAttendanceSummary(ctx context.Context, filter SummaryFilter) ([]EmployeeSummaryResponse, error)
	MarkStatus(ctx context.Context, actor domain.Actor, req MarkStatusRequest) (AttendanceResponse, error)
	GetDashboardStats(ctx context.Context) (DashboardStatsResponse, error)
	GetRecentAttendance(ctx context.Context) ([]AttendanceResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	windows   WindowFinder
	employees EmployeeFinder
	radius    float64
	loc       *time.Location
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, windows WindowFinder, employees EmployeeFinder, settings Settings, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	loc := settings.Location
	if loc == nil {
		loc = time.UTC
	}
	now := settings.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		db:        db,
		repo:      repo,
		windows:   windows,
		employees: employees,
		radius:    settings.RadiusMeters,
		loc:       loc,
		now:       now,
		logger:    l,
	}
}

// ProcessScan memvalidasi kode QR lalu mencatat check-in atau check-out
// sesuai tipe window. Satu event per employee per tanggal kalender.
func (s *service) ProcessScan(ctx context.Context, actor domain.Actor, req ScanRequest) (resp ScanResponse, err error) {
	defer func() {
		metrics.ScanOutcomes.WithLabelValues(scanOutcome(resp, err)).Inc()
	}()

	log := contextutil.GetLogger(ctx, s.logger)

	if actor.EmployeeID == "" {
		return ScanResponse{}, attendanceerrors.ErrNoEmployeeProfile
	}
	if _, err := uuid.Parse(actor.EmployeeID); err != nil {
		return ScanResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	if req.Latitude == nil || req.Longitude == nil {
		return ScanResponse{}, qrcodeerrors.ErrInvalidLocation
	}

	now := s.now()
	window, err := s.windows.FindActiveByCode(ctx, strings.TrimSpace(req.Code))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ScanResponse{}, err
	}

	at := geo.Point{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if err := qrcode.Admit(window, now, at, s.radius); err != nil {
		log.Warn("scan rejected",
			zap.String("employee_id", actor.EmployeeID),
			zap.Error(err),
		)
		return ScanResponse{}, err
	}

	empl, err := s.employees.FindByID(ctx, actor.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ScanResponse{}, attendanceerrors.ErrEmployeeNotFound
		}
		return ScanResponse{}, err
	}

	today := dateutil.CalendarDate(now, s.loc)
	mark := Mark{Time: now.UTC(), Location: at, Code: window.Code}

	var rec *Attendance
	switch window.Type {
	case qrcode.TypeCheckIn:
		rec, err = s.checkIn(ctx, empl, today, mark)
	case qrcode.TypeCheckOut:
		rec, err = s.checkOut(ctx, empl, today, mark)
	default:
		return ScanResponse{}, qrcodeerrors.ErrInvalidCode
	}
	if err != nil {
		return ScanResponse{}, err
	}

	log.Info("attendance scanned",
		zap.String("employee_id", empl.ID.String()),
		zap.String("type", window.Type),
		zap.String("branch", window.Branch),
		zap.String("status", rec.Status),
	)
	return ScanResponse{Type: window.Type, Branch: window.Branch, Attendance: mapToResponse(*rec)}, nil
}

func (s *service) checkIn(ctx context.Context, empl *employee.Employee, today time.Time, in Mark) (*Attendance, error) {
	startMin, err := dateutil.ParseClock(empl.WorkStart)
	if err != nil {
		return nil, apperror.WithDetail(attendanceerrors.ErrInvalidSchedule, "employee "+empl.ID.String()+": "+err.Error())
	}
	scheduled := dateutil.At(today, startMin, s.loc)
	status := StatusPresent
	if in.Time.After(scheduled) {
		status = StatusLate
	}
	expected := scheduled.Format(time.RFC3339)
	employeeID := empl.ID.String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	checkInAt := in.Time
	lat, lng, code := in.Location.Latitude, in.Location.Longitude, in.Code
	created, err := qtx.CreateIfAbsent(ctx, &Attendance{
		ID:               uuid.New(),
		EmployeeID:       empl.ID,
		DepartmentID:     empl.DepartmentID,
		AttendanceDate:   today,
		CheckInTime:      &checkInAt,
		CheckInLatitude:  &lat,
		CheckInLongitude: &lng,
		CheckInCode:      &code,
		ExpectedCheckIn:  expected,
		Status:           status,
	})
	if err != nil {
		return nil, err
	}

	// row sudah ada (mis. ditandai manual), isi check-in hanya jika masih kosong
	if !created {
		n, err := qtx.MarkCheckIn(ctx, employeeID, today, in, expected, status)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, attendanceerrors.ErrAlreadyCheckedIn
		}
	}

	rec, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *service) checkOut(ctx context.Context, empl *employee.Employee, today time.Time, out Mark) (*Attendance, error) {
	employeeID := empl.ID.String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	n, err := qtx.MarkCheckOut(ctx, employeeID, today, out)
	if err != nil {
		return nil, err
	}

	rec, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrNotCheckedInYet
		}
		return nil, err
	}

	if n == 0 {
		if rec.CheckInTime == nil {
			return nil, attendanceerrors.ErrNotCheckedInYet
		}
		return nil, attendanceerrors.ErrAlreadyCheckedOut
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *service) GetMyAttendance(ctx context.Context, actor domain.Actor, limit int) (MyAttendanceResponse, error) {
	if actor.EmployeeID == "" {
		return MyAttendanceResponse{}, attendanceerrors.ErrNoEmployeeProfile
	}
	if _, err := uuid.Parse(actor.EmployeeID); err != nil {
		return MyAttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	rows, err := s.repo.FindByEmployee(ctx, actor.EmployeeID, limit)
	if err != nil {
		return MyAttendanceResponse{}, err
	}

	return MyAttendanceResponse{
		Records: mapToListResponse(rows),
		Summary: summarize(rows),
	}, nil
}

func (s *service) GetAttendanceReport(ctx context.Context, filter ReportFilter) ([]AttendanceResponse, error) {
	f := Filter{
		DepartmentID: filter.DepartmentID,
		EmployeeID:   filter.EmployeeID,
		Status:       filter.Status,
	}

	if filter.StartDate != "" {
		start, err := dateutil.ParseDate(filter.StartDate)
		if err != nil {
			return nil, apperror.InvalidField("Start Date")
		}
		f.Start = start
	}
	if filter.EndDate != "" {
		end, err := dateutil.ParseDate(filter.EndDate)
		if err != nil {
			return nil, apperror.InvalidField("End Date")
		}
		f.End = end
	}
	if !f.Start.IsZero() && !f.End.IsZero() && f.Start.After(f.End) {
		return nil, attendanceerrors.ErrInvalidDateRange
	}
	if f.DepartmentID != "" {
		if _, err := uuid.Parse(f.DepartmentID); err != nil {
			return nil, apperror.InvalidField("Department ID")
		}
	}
	if f.EmployeeID != "" {
		if _, err := uuid.Parse(f.EmployeeID); err != nil {
			return nil, attendanceerrors.ErrInvalidEmployeeID
		}
	}
	if f.Status != "" && !ValidStatus(f.Status) {
		return nil, attendanceerrors.ErrInvalidStatus
	}

	rows, err := s.repo.FindInRange(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetAttendanceSummary(ctx context.Context, filter SummaryFilter) ([]EmployeeSummaryResponse, error) {
	start, err := dateutil.ParseDate(filter.StartDate)
	if err != nil {
		return nil, apperror.InvalidField("Start Date")
	}
	end, err := dateutil.ParseDate(filter.EndDate)
	if err != nil {
		return nil, apperror.InvalidField("End Date")
	}
	if start.After(end) {
		return nil, attendanceerrors.ErrInvalidDateRange
	}
	if filter.DepartmentID != "" {
		if _, err := uuid.Parse(filter.DepartmentID); err != nil {
			return nil, apperror.InvalidField("Department ID")
		}
	}

	rows, err := s.repo.FindInRange(ctx, Filter{Start: start, End: end, DepartmentID: filter.DepartmentID})
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[uuid.UUID]*EmployeeSummaryResponse)
	for _, r := range rows {
		sum, ok := byEmployee[r.EmployeeID]
		if !ok {
			sum = &EmployeeSummaryResponse{EmployeeID: r.EmployeeID.String()}
			if r.Employee != nil {
				sum.EmployeeNumber = r.Employee.EmployeeNumber
				sum.EmployeeName = r.Employee.FullName
			}
			byEmployee[r.EmployeeID] = sum
		}
		sum.TotalDays++
		switch r.Status {
		case StatusPresent:
			sum.PresentDays++
		case StatusLate:
			sum.LateDays++
		case StatusAbsent:
			sum.AbsentDays++
		}
	}

	res := make([]EmployeeSummaryResponse, 0, len(byEmployee))
	for _, sum := range byEmployee {
		sum.PresentPercentage = percentage(sum.PresentDays, sum.TotalDays)
		res = append(res, *sum)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].EmployeeName != res[j].EmployeeName {
			return res[i].EmployeeName < res[j].EmployeeName
		}
		return res[i].EmployeeID < res[j].EmployeeID
	})
	return res, nil
}

// MarkStatus menandai status satu hari secara manual (absent, on_leave, dst).
func (s *service) MarkStatus(ctx context.Context, actor domain.Actor, req MarkStatusRequest) (AttendanceResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return AttendanceResponse{}, apperror.InvalidField("Date")
	}
	if !ValidStatus(req.Status) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}

	empl, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
		}
		return AttendanceResponse{}, err
	}

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		DepartmentID:   empl.DepartmentID,
		AttendanceDate: date,
		Status:         req.Status,
		Notes:          req.Notes,
		UpdatedAt:      s.now().UTC(),
	}
	if id, err := uuid.Parse(actor.UserID); err == nil {
		row.VerifiedBy = &id
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Upsert(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}

	rec, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance status marked",
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
		zap.String("verified_by", actor.UserID),
	)
	return mapToResponse(*rec), nil
}

// GetDashboardStats merangkum hari ini (zona waktu bisnis): jumlah roster,
// event hari ini, employee yang sudah check-in dan sisanya sebagai absen.
func (s *service) GetDashboardStats(ctx context.Context) (DashboardStatsResponse, error) {
	today := dateutil.CalendarDate(s.now(), s.loc)

	var (
		total  int64
		counts DayCounts
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.employees.CountRoster(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = s.repo.CountDay(gctx, today)
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardStatsResponse{}, err
	}

	// check-in oleh manager/admin ikut terhitung, absen tidak pernah negatif
	absent := total - counts.CheckedIn
	if absent < 0 {
		absent = 0
	}

	return DashboardStatsResponse{
		Date:            today.Format(dateutil.DateLayout),
		TotalEmployees:  total,
		TodayAttendance: counts.Total,
		PresentToday:    counts.CheckedIn,
		AbsentToday:     absent,
	}, nil
}

func (s *service) GetRecentAttendance(ctx context.Context) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func scanOutcome(resp ScanResponse, err error) string {
	if err == nil {
		return resp.Type
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return strings.ToLower(appErr.Code)
	}
	return "internal"
}

func summarize(rows []Attendance) MySummary {
	var sum MySummary
	for _, r := range rows {
		sum.TotalDays++
		switch r.Status {
		case StatusPresent:
			sum.PresentDays++
		case StatusLate:
			sum.LateDays++
		case StatusAbsent:
			sum.AbsentDays++
		}
	}
	sum.AttendancePercentage = percentage(sum.PresentDays+sum.LateDays, sum.TotalDays)
	return sum
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func location(lat, lng *float64) *LocationResponse {
	if lat == nil || lng == nil {
		return nil
	}
	return &LocationResponse{Latitude: *lat, Longitude: *lng}
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:               a.ID.String(),
		EmployeeID:       a.EmployeeID.String(),
		AttendanceDate:   a.AttendanceDate.Format(dateutil.DateLayout),
		CheckInTime:      formatTime(a.CheckInTime),
		CheckInLocation:  location(a.CheckInLatitude, a.CheckInLongitude),
		CheckOutTime:     formatTime(a.CheckOutTime),
		CheckOutLocation: location(a.CheckOutLatitude, a.CheckOutLongitude),
		ExpectedCheckIn:  a.ExpectedCheckIn,
		Status:           a.Status,
		Notes:            a.Notes,
	}
	if a.DepartmentID != nil {
		resp.DepartmentID = a.DepartmentID.String()
	}
	if a.VerifiedBy != nil {
		resp.VerifiedBy = a.VerifiedBy.String()
	}
	if a.Employee != nil {
		resp.EmployeeNumber = a.Employee.EmployeeNumber
		resp.EmployeeName = a.Employee.FullName
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
