package payrollerrors

import (
	"net/http"

	"lt-att-backend/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid department id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found in salary roster",
		http.StatusNotFound,
	)
	ErrInvalidSchedule = apperror.New(
		apperror.CodeConfiguration,
		"employee work schedule is misconfigured",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidExportID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid export id",
		http.StatusBadRequest,
	)
	ErrExportNotFound = apperror.New(
		apperror.CodeNotFound,
		"report export not found",
		http.StatusNotFound,
	)
	ErrExportNotReady = apperror.New(
		apperror.CodeInvalidState,
		"report export is not ready yet",
		http.StatusConflict,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeInvalidState,
		"report export failed, request a new one",
		http.StatusConflict,
	)
)
