package qrcodeerrors

import (
	"net/http"

	"lt-att-backend/internal/shared/apperror"
)

var (
	ErrQRCodeNotFound = apperror.New(
		apperror.CodeNotFound,
		"QR code not found",
		http.StatusNotFound,
	)
	ErrInvalidQRCodeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid QR code ID",
		http.StatusBadRequest,
	)
	ErrInvalidCode = apperror.New(
		apperror.CodeInvalidCode,
		"Invalid or inactive QR code",
		http.StatusNotFound,
	)
	ErrCodeExpired = apperror.New(
		apperror.CodeExpired,
		"QR code is outside its validity window",
		http.StatusGone,
	)
	ErrOutOfRange = apperror.New(
		apperror.CodeOutOfRange,
		"You are too far from the attendance location",
		http.StatusForbidden,
	)
	ErrInvalidLocation = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid coordinates",
		http.StatusBadRequest,
	)
	ErrActiveWindowConflict = apperror.New(
		apperror.CodeConflict,
		"Another active QR code already exists for this branch and type",
		http.StatusConflict,
	)
	ErrGenerationInProgress = apperror.New(
		apperror.CodeConflict,
		"QR code generation for this branch is already in progress",
		http.StatusConflict,
	)
)
