package payroll_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"lt-att-backend/internal/attendance"
	"lt-att-backend/internal/domain"
	"lt-att-backend/internal/employee"
	"lt-att-backend/internal/events"
	"lt-att-backend/internal/messaging/kafka"
	kafkaMock "lt-att-backend/internal/messaging/kafka/mock"
	"lt-att-backend/internal/payroll"
	payrollerrors "lt-att-backend/internal/payroll/errors"
	payrollMock "lt-att-backend/internal/payroll/mock"
	"lt-att-backend/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const exportTopic = "lt.report.salary.export.requested.v1"

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *payrollMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
	roster  *payrollMock.MockRosterReader
	events  *payrollMock.MockEventReader
	service payroll.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    payrollMock.NewMockRepository(ctrl),
		outbox:  kafkaMock.NewMockOutboxRepository(ctrl),
		roster:  payrollMock.NewMockRosterReader(ctrl),
		events:  payrollMock.NewMockEventReader(ctrl),
	}
	deps.service = payroll.NewService(db, deps.repo, deps.outbox, deps.roster, deps.events, exportTopic)
	return deps
}

func weekRequest() payroll.SalaryReportRequest {
	return payroll.SalaryReportRequest{StartDate: "2024-03-04", EndDate: "2024-03-08"}
}

func TestPayrollService_GenerateSalaryReport(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := worker(3000)

		deps.roster.EXPECT().FindRoster(gomock.Any(), "").Return([]employee.Employee{e}, nil)
		deps.events.EXPECT().FindInRange(gomock.Any(), attendance.Filter{Start: weekStart, End: weekEnd}).Return(fullWeek(e.ID), nil)

		report, err := deps.service.GenerateSalaryReport(ctx, weekRequest())

		require.NoError(t, err)
		assert.Equal(t, "2024-03-04", report.StartDate)
		assert.Equal(t, "681.82", report.Overall.TotalFinalSalary.StringFixed(2))
	})

	t.Run("department filter is passed to both reads", func(t *testing.T) {
		deps := setupServiceTest(t)
		deptID := uuid.New().String()
		req := weekRequest()
		req.DepartmentID = deptID

		deps.roster.EXPECT().FindRoster(gomock.Any(), deptID).Return(nil, nil)
		deps.events.EXPECT().FindInRange(gomock.Any(), attendance.Filter{Start: weekStart, End: weekEnd, DepartmentID: deptID}).Return(nil, nil)

		report, err := deps.service.GenerateSalaryReport(ctx, req)

		require.NoError(t, err)
		assert.Empty(t, report.Departments)
		assert.Equal(t, 0, report.Overall.TotalEmployees)
	})

	t.Run("invalid input is rejected before reading", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GenerateSalaryReport(ctx, payroll.SalaryReportRequest{StartDate: "04-03-2024", EndDate: "2024-03-08"})
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidDateFormat)

		_, err = deps.service.GenerateSalaryReport(ctx, payroll.SalaryReportRequest{StartDate: "2024-03-08", EndDate: "2024-03-04"})
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidDateRange)

		req := weekRequest()
		req.DepartmentID = "sales"
		_, err = deps.service.GenerateSalaryReport(ctx, req)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidDepartmentID)
	})

	t.Run("read error", func(t *testing.T) {
		deps := setupServiceTest(t)
		dbErr := errors.New("connection reset")

		deps.roster.EXPECT().FindRoster(gomock.Any(), "").Return(nil, dbErr)
		deps.events.EXPECT().FindInRange(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := deps.service.GenerateSalaryReport(ctx, weekRequest())
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("cancelled caller does not cancel the shared computation", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := worker(3000)
		callerCtx, cancel := context.WithCancel(ctx)

		started := make(chan struct{})
		release := make(chan struct{})
		rangeCalled := make(chan struct{})
		readCtxErr := make(chan error, 1)

		deps.events.EXPECT().FindInRange(gomock.Any(), attendance.Filter{Start: weekStart, End: weekEnd}).
			DoAndReturn(func(ctx context.Context, _ attendance.Filter) ([]attendance.Attendance, error) {
				close(rangeCalled)
				return fullWeek(e.ID), nil
			})
		deps.roster.EXPECT().FindRoster(gomock.Any(), "").
			DoAndReturn(func(ctx context.Context, _ string) ([]employee.Employee, error) {
				close(started)
				<-release
				<-rangeCalled
				readCtxErr <- ctx.Err()
				return []employee.Employee{e}, nil
			})

		result := make(chan error, 1)
		go func() {
			_, err := deps.service.GenerateSalaryReport(callerCtx, weekRequest())
			result <- err
		}()

		<-started
		cancel()
		assert.ErrorIs(t, <-result, context.Canceled)

		close(release)
		assert.NoError(t, <-readCtxErr)
	})
}

func TestPayrollService_ExportSalaryReport(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	e := worker(3000)

	deps.roster.EXPECT().FindRoster(gomock.Any(), "").Return([]employee.Employee{e}, nil)
	deps.events.EXPECT().FindInRange(gomock.Any(), gomock.Any()).Return(fullWeek(e.ID), nil)

	file, err := deps.service.ExportSalaryReport(ctx, weekRequest())

	require.NoError(t, err)
	assert.Equal(t, "salary-report_2024-03-04_2024-03-08.xlsx", file.Name)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer f.Close()

	header, _ := f.GetCellValue("Salary Report", "A4")
	name, _ := f.GetCellValue("Salary Report", "C5")
	subtotal, _ := f.GetCellValue("Salary Report", "A6")
	total, _ := f.GetCellValue("Salary Report", "A7")
	assert.Equal(t, "Department", header)
	assert.Equal(t, "Budi", name)
	assert.Equal(t, "Unassigned subtotal", subtotal)
	assert.Equal(t, "Overall", total)
}

func TestPayrollService_GetPayslip(t *testing.T) {
	ctx := context.Background()
	slip := payroll.PayslipRequest{StartDate: "2024-03-04", EndDate: "2024-03-08"}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := worker(3000)

		deps.roster.EXPECT().FindByID(ctx, e.ID.String()).Return(&e, nil)
		deps.events.EXPECT().FindInRange(ctx, attendance.Filter{Start: weekStart, End: weekEnd, EmployeeID: e.ID.String()}).Return(fullWeek(e.ID), nil)

		file, err := deps.service.GetPayslip(ctx, e.ID.String(), slip)

		require.NoError(t, err)
		assert.Equal(t, "application/pdf", file.ContentType)
		assert.Equal(t, "payslip_EMP-001_2024-03-04_2024-03-08.pdf", file.Name)
		assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF-")))
		assert.Contains(t, string(file.Content), "681.82")
	})

	t.Run("not on roster", func(t *testing.T) {
		deps := setupServiceTest(t)
		manager := worker(5000)
		manager.Role = domain.RoleManager

		deps.roster.EXPECT().FindByID(ctx, manager.ID.String()).Return(&manager, nil)

		_, err := deps.service.GetPayslip(ctx, manager.ID.String(), slip)
		assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New().String()

		deps.roster.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetPayslip(ctx, id, slip)
		assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.GetPayslip(ctx, "budi", slip)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidEmployeeID)
	})
}

func TestPayrollService_RequestSalaryReportExport(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.New().String(), Role: domain.RoleAdmin}

	t.Run("job and outbox event in one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		deptID := uuid.New().String()
		req := weekRequest()
		req.DepartmentID = deptID

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)

		var job payroll.ExportJob
		deps.repo.EXPECT().CreateExport(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, j *payroll.ExportJob) error {
			job = *j
			return nil
		})
		var evt kafka.OutboxEvent
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			evt = e
			return nil
		})

		resp, err := deps.service.RequestSalaryReportExport(ctx, actor, req)

		require.NoError(t, err)
		assert.Equal(t, payroll.ExportStatusPending, resp.Status)
		assert.Equal(t, job.ID.String(), resp.ID)
		assert.Equal(t, deptID, resp.DepartmentID)
		assert.Equal(t, actor.UserID, resp.RequestedBy)

		assert.Equal(t, exportTopic, evt.Topic)
		assert.Equal(t, events.SalaryReportExportRequestedType, evt.EventType)
		assert.Equal(t, job.ID.String(), evt.AggregateID)
		assert.Equal(t, kafka.OutboxStatusPending, evt.Status)

		var payload events.SalaryReportExportRequestedEvent
		require.NoError(t, json.Unmarshal(evt.Payload, &payload))
		assert.Equal(t, job.ID.String(), payload.ExportID)
		assert.Equal(t, "2024-03-04", payload.StartDate)
		assert.Equal(t, deptID, payload.DepartmentID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.repo.EXPECT().CreateExport(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))

		_, err := deps.service.RequestSalaryReportExport(ctx, actor, weekRequest())

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("anonymous actor", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.RequestSalaryReportExport(ctx, domain.Actor{}, weekRequest())
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})
}

func pendingJob() *payroll.ExportJob {
	return &payroll.ExportJob{
		ID:          uuid.New(),
		RequestedBy: uuid.New(),
		StartDate:   weekStart,
		EndDate:     weekEnd,
		Status:      payroll.ExportStatusPending,
		CreatedAt:   time.Date(2024, 3, 11, 1, 0, 0, 0, time.UTC),
	}
}

func TestPayrollService_ProcessSalaryReportExport(t *testing.T) {
	ctx := context.Background()

	t.Run("renders and stores the file", func(t *testing.T) {
		deps := setupServiceTest(t)
		job := pendingJob()
		e := worker(3000)

		deps.repo.EXPECT().FindExportByID(ctx, job.ID.String()).Return(job, nil)
		deps.roster.EXPECT().FindRoster(gomock.Any(), "").Return([]employee.Employee{e}, nil)
		deps.events.EXPECT().FindInRange(gomock.Any(), gomock.Any()).Return(fullWeek(e.ID), nil)
		deps.repo.EXPECT().MarkExportReady(ctx, job.ID.String(), "salary-report_2024-03-04_2024-03-08.xlsx", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, content []byte) error {
				assert.NotEmpty(t, content)
				return nil
			})

		assert.NoError(t, deps.service.ProcessSalaryReportExport(ctx, job.ID.String()))
	})

	t.Run("redelivered message is a no-op", func(t *testing.T) {
		deps := setupServiceTest(t)
		job := pendingJob()
		job.Status = payroll.ExportStatusReady

		deps.repo.EXPECT().FindExportByID(ctx, job.ID.String()).Return(job, nil)

		assert.NoError(t, deps.service.ProcessSalaryReportExport(ctx, job.ID.String()))
	})

	t.Run("misconfigured schedule marks the job failed", func(t *testing.T) {
		deps := setupServiceTest(t)
		job := pendingJob()
		e := worker(3000)
		e.WorkStart = "nine"

		deps.repo.EXPECT().FindExportByID(ctx, job.ID.String()).Return(job, nil)
		deps.roster.EXPECT().FindRoster(gomock.Any(), "").Return([]employee.Employee{e}, nil)
		deps.events.EXPECT().FindInRange(gomock.Any(), gomock.Any()).Return(nil, nil)
		deps.repo.EXPECT().MarkExportFailed(ctx, job.ID.String(), gomock.Any()).Return(nil)

		assert.NoError(t, deps.service.ProcessSalaryReportExport(ctx, job.ID.String()))
	})

	t.Run("infrastructure error is returned for retry", func(t *testing.T) {
		deps := setupServiceTest(t)
		job := pendingJob()
		dbErr := errors.New("connection reset")

		deps.repo.EXPECT().FindExportByID(ctx, job.ID.String()).Return(job, nil)
		deps.roster.EXPECT().FindRoster(gomock.Any(), "").Return(nil, dbErr)
		deps.events.EXPECT().FindInRange(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		assert.ErrorIs(t, deps.service.ProcessSalaryReportExport(ctx, job.ID.String()), dbErr)
	})

	t.Run("unknown job", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New().String()

		deps.repo.EXPECT().FindExportByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.service.ProcessSalaryReportExport(ctx, id), payrollerrors.ErrExportNotFound)
	})
}

func TestPayrollService_DownloadSalaryReportExport(t *testing.T) {
	ctx := context.Background()

	t.Run("ready", func(t *testing.T) {
		deps := setupServiceTest(t)
		job := pendingJob()
		name := "salary-report_2024-03-04_2024-03-08.xlsx"
		job.Status = payroll.ExportStatusReady
		job.FileName = &name
		job.Content = []byte("PK")

		deps.repo.EXPECT().FindExportByID(ctx, job.ID.String()).Return(job, nil)

		file, err := deps.service.DownloadSalaryReportExport(ctx, job.ID.String())

		require.NoError(t, err)
		assert.Equal(t, name, file.Name)
		assert.Equal(t, []byte("PK"), file.Content)
	})

	t.Run("pending", func(t *testing.T) {
		deps := setupServiceTest(t)
		job := pendingJob()

		deps.repo.EXPECT().FindExportByID(ctx, job.ID.String()).Return(job, nil)

		_, err := deps.service.DownloadSalaryReportExport(ctx, job.ID.String())
		assert.ErrorIs(t, err, payrollerrors.ErrExportNotReady)
	})

	t.Run("failed", func(t *testing.T) {
		deps := setupServiceTest(t)
		job := pendingJob()
		job.Status = payroll.ExportStatusFailed

		deps.repo.EXPECT().FindExportByID(ctx, job.ID.String()).Return(job, nil)

		_, err := deps.service.DownloadSalaryReportExport(ctx, job.ID.String())
		assert.ErrorIs(t, err, payrollerrors.ErrExportFailed)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.DownloadSalaryReportExport(ctx, "latest")
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidExportID)
	})
}

func TestPayrollService_GetSalaryReportExport(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	job := pendingJob()

	deps.repo.EXPECT().FindExportByID(ctx, job.ID.String()).Return(job, nil)

	resp, err := deps.service.GetSalaryReportExport(ctx, job.ID.String())

	require.NoError(t, err)
	assert.Equal(t, payroll.ExportStatusPending, resp.Status)
	assert.Equal(t, "2024-03-11T01:00:00Z", resp.CreatedAt)
	assert.Nil(t, resp.CompletedAt)
}
