package payroll

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"lt-att-backend/internal/attendance"
	"lt-att-backend/internal/domain"
	"lt-att-backend/internal/employee"
	"lt-att-backend/internal/events"
	"lt-att-backend/internal/messaging/kafka"
	payrollerrors "lt-att-backend/internal/payroll/errors"
	"lt-att-backend/internal/shared/apperror"
	"lt-att-backend/internal/shared/contextutil"
	"lt-att-backend/internal/shared/dateutil"
	"lt-att-backend/internal/shared/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// RosterReader adalah bagian dari employee.Repository yang dibaca payroll.
type RosterReader interface {
	FindRoster(ctx context.Context, departmentID string) ([]employee.Employee, error)
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

// EventReader adalah bagian dari attendance.Repository yang dibaca payroll.
type EventReader interface {
	FindInRange(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GenerateSalaryReport(ctx context.Context, req SalaryReportRequest) (SalaryReport, error)
	ExportSalaryReport(ctx context.Context, req SalaryReportRequest) (File, error)
	GetPayslip(ctx context.Context, employeeID string, req PayslipRequest) (File, error)
	RequestSalaryReportExport(ctx context.Context, actor domain.Actor, req SalaryReportRequest) (ExportJobResponse, error)
	ProcessSalaryReportExport(ctx context.Context, exportID string) error
	GetSalaryReportExport(ctx context.Context, exportID string) (ExportJobResponse, error)
	DownloadSalaryReportExport(ctx context.Context, exportID string) (File, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	outbox      kafka.OutboxRepository
	roster      RosterReader
	events      EventReader
	exportTopic string
	group       singleflight.Group
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	roster RosterReader,
	events EventReader,
	exportTopic string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		outbox:      outbox,
		roster:      roster,
		events:      events,
		exportTopic: exportTopic,
		logger:      l,
	}
}

type period struct {
	start        time.Time
	end          time.Time
	departmentID string
}

func parsePeriod(startDate, endDate, departmentID string) (period, error) {
	start, err := dateutil.ParseDate(startDate)
	if err != nil {
		return period{}, payrollerrors.ErrInvalidDateFormat
	}
	end, err := dateutil.ParseDate(endDate)
	if err != nil {
		return period{}, payrollerrors.ErrInvalidDateFormat
	}
	if start.After(end) {
		return period{}, payrollerrors.ErrInvalidDateRange
	}
	departmentID = strings.TrimSpace(departmentID)
	if departmentID != "" {
		if _, err := uuid.Parse(departmentID); err != nil {
			return period{}, payrollerrors.ErrInvalidDepartmentID
		}
	}
	return period{start: start, end: end, departmentID: departmentID}, nil
}

func (p period) key() string {
	return p.start.Format(dateutil.DateLayout) + ":" + p.end.Format(dateutil.DateLayout) + ":" + p.departmentID
}

func (s *service) GenerateSalaryReport(ctx context.Context, req SalaryReportRequest) (SalaryReport, error) {
	p, err := parsePeriod(req.StartDate, req.EndDate, req.DepartmentID)
	if err != nil {
		return SalaryReport{}, err
	}

	// request identik yang datang bersamaan cukup dihitung sekali. Perhitungan
	// bersama tidak ikut batal bila request pertama dibatalkan; tiap caller
	// hanya berhenti menunggu lewat ctx miliknya sendiri.
	ch := s.group.DoChan(p.key(), func() (any, error) {
		return s.generate(context.WithoutCancel(ctx), p)
	})
	select {
	case <-ctx.Done():
		return SalaryReport{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return SalaryReport{}, res.Err
		}
		return res.Val.(SalaryReport), nil
	}
}

func (s *service) generate(ctx context.Context, p period) (SalaryReport, error) {
	timer := prometheus.NewTimer(metrics.ReportDuration)
	defer timer.ObserveDuration()

	log := contextutil.GetLogger(ctx, s.logger)

	var (
		roster  []employee.Employee
		records []attendance.Attendance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.roster.FindRoster(gctx, p.departmentID)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.events.FindInRange(gctx, attendance.Filter{
			Start:        p.start,
			End:          p.end,
			DepartmentID: p.departmentID,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return SalaryReport{}, err
	}

	report, err := Reconcile(p.start, p.end, roster, records, log)
	if err != nil {
		log.Warn("salary report rejected", zap.Error(err))
		return SalaryReport{}, err
	}

	log.Info("salary report generated",
		zap.String("start_date", report.StartDate),
		zap.String("end_date", report.EndDate),
		zap.String("department_id", p.departmentID),
		zap.Int("employees", report.Overall.TotalEmployees),
		zap.Int("events", len(records)),
	)
	return report, nil
}

func (s *service) ExportSalaryReport(ctx context.Context, req SalaryReportRequest) (File, error) {
	report, err := s.GenerateSalaryReport(ctx, req)
	if err != nil {
		return File{}, err
	}
	content, err := renderSalaryReportXLSX(report)
	if err != nil {
		return File{}, err
	}
	return File{Name: salaryReportFileName(report), ContentType: xlsxContentType, Content: content}, nil
}

// GetPayslip menghitung baris satu employee dengan aturan yang sama seperti report penuh.
func (s *service) GetPayslip(ctx context.Context, employeeID string, req PayslipRequest) (File, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return File{}, payrollerrors.ErrInvalidEmployeeID
	}
	p, err := parsePeriod(req.StartDate, req.EndDate, "")
	if err != nil {
		return File{}, err
	}

	empl, err := s.roster.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return File{}, payrollerrors.ErrEmployeeNotFound
		}
		return File{}, err
	}
	if empl.Role != domain.RoleEmployee {
		return File{}, payrollerrors.ErrEmployeeNotFound
	}

	records, err := s.events.FindInRange(ctx, attendance.Filter{Start: p.start, End: p.end, EmployeeID: employeeID})
	if err != nil {
		return File{}, err
	}

	report, err := Reconcile(p.start, p.end, []employee.Employee{*empl}, records, contextutil.GetLogger(ctx, s.logger))
	if err != nil {
		return File{}, err
	}
	row := report.Departments[0].Employees[0]
	return File{
		Name:        payslipFileName(report, row),
		ContentType: pdfContentType,
		Content:     renderPayslipPDF(payslipLines(report, row)),
	}, nil
}

// RequestSalaryReportExport menyimpan job PENDING dan event outbox dalam satu transaksi.
func (s *service) RequestSalaryReportExport(ctx context.Context, actor domain.Actor, req SalaryReportRequest) (ExportJobResponse, error) {
	p, err := parsePeriod(req.StartDate, req.EndDate, req.DepartmentID)
	if err != nil {
		return ExportJobResponse{}, err
	}
	requestedBy, err := uuid.Parse(actor.UserID)
	if err != nil {
		return ExportJobResponse{}, apperror.ErrUnauthorized
	}

	job := &ExportJob{
		ID:          uuid.New(),
		RequestedBy: requestedBy,
		StartDate:   p.start,
		EndDate:     p.end,
		Status:      ExportStatusPending,
	}
	if p.departmentID != "" {
		deptID := uuid.MustParse(p.departmentID)
		job.DepartmentID = &deptID
	}

	requestID := contextutil.GetRequestID(ctx)
	evt, err := kafka.NewOutboxEvent(
		s.exportTopic,
		events.SalaryReportExportAggregate,
		job.ID.String(),
		events.SalaryReportExportRequestedType,
		requestID,
		events.SalaryReportExportRequestedEvent{
			EventType:    events.SalaryReportExportRequestedType,
			ExportID:     job.ID.String(),
			StartDate:    p.start.Format(dateutil.DateLayout),
			EndDate:      p.end.Format(dateutil.DateLayout),
			DepartmentID: p.departmentID,
			RequestedBy:  actor.UserID,
			RequestID:    requestID,
			OccurredAt:   time.Now().UTC(),
		},
	)
	if err != nil {
		return ExportJobResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ExportJobResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateExport(ctx, job); err != nil {
		return ExportJobResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
		return ExportJobResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ExportJobResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("salary report export requested",
		zap.String("export_id", job.ID.String()),
		zap.String("requested_by", actor.UserID),
	)
	return mapExportToResponse(*job), nil
}

// ProcessSalaryReportExport dipanggil consumer. Error bisnis menandai job FAILED
// dan tidak di-retry; error infrastruktur dikembalikan agar pesan dibaca ulang.
func (s *service) ProcessSalaryReportExport(ctx context.Context, exportID string) error {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("export_id", exportID))

	job, err := s.findExport(ctx, exportID)
	if err != nil {
		return err
	}
	if job.Status != ExportStatusPending {
		log.Info("export already processed, skipped", zap.String("status", job.Status))
		return nil
	}

	req := SalaryReportRequest{
		StartDate: job.StartDate.Format(dateutil.DateLayout),
		EndDate:   job.EndDate.Format(dateutil.DateLayout),
	}
	if job.DepartmentID != nil {
		req.DepartmentID = job.DepartmentID.String()
	}

	file, err := s.ExportSalaryReport(ctx, req)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			return err
		}
		if markErr := s.repo.MarkExportFailed(ctx, exportID, err.Error()); markErr != nil {
			return markErr
		}
		metrics.ExportJobs.WithLabelValues("failed").Inc()
		log.Warn("salary report export failed", zap.Error(err))
		return nil
	}

	if err := s.repo.MarkExportReady(ctx, exportID, file.Name, file.Content); err != nil {
		return err
	}
	metrics.ExportJobs.WithLabelValues("ready").Inc()
	log.Info("salary report export ready", zap.String("file_name", file.Name), zap.Int("bytes", len(file.Content)))
	return nil
}

func (s *service) GetSalaryReportExport(ctx context.Context, exportID string) (ExportJobResponse, error) {
	job, err := s.findExport(ctx, exportID)
	if err != nil {
		return ExportJobResponse{}, err
	}
	return mapExportToResponse(*job), nil
}

func (s *service) DownloadSalaryReportExport(ctx context.Context, exportID string) (File, error) {
	job, err := s.findExport(ctx, exportID)
	if err != nil {
		return File{}, err
	}
	switch job.Status {
	case ExportStatusReady:
	case ExportStatusFailed:
		return File{}, payrollerrors.ErrExportFailed
	default:
		return File{}, payrollerrors.ErrExportNotReady
	}

	name := ""
	if job.FileName != nil {
		name = *job.FileName
	}
	return File{Name: name, ContentType: xlsxContentType, Content: job.Content}, nil
}

func (s *service) findExport(ctx context.Context, exportID string) (*ExportJob, error) {
	if _, err := uuid.Parse(exportID); err != nil {
		return nil, payrollerrors.ErrInvalidExportID
	}
	job, err := s.repo.FindExportByID(ctx, exportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrExportNotFound
		}
		return nil, err
	}
	return job, nil
}

func mapExportToResponse(job ExportJob) ExportJobResponse {
	resp := ExportJobResponse{
		ID:          job.ID.String(),
		Status:      job.Status,
		StartDate:   job.StartDate.Format(dateutil.DateLayout),
		EndDate:     job.EndDate.Format(dateutil.DateLayout),
		RequestedBy: job.RequestedBy.String(),
		Error:       job.ErrorMessage,
		CreatedAt:   job.CreatedAt.Format(time.RFC3339),
	}
	if job.DepartmentID != nil {
		resp.DepartmentID = job.DepartmentID.String()
	}
	if job.FileName != nil {
		resp.FileName = *job.FileName
	}
	if job.CompletedAt != nil {
		completed := job.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	return resp
}
