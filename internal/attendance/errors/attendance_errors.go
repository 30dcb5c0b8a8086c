package attendanceerrors

import (
	"go-stationops/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be in YYYY-MM format",
		http.StatusBadRequest,
	)

	ErrFutureDate = apperror.New(
		apperror.CodeInvalidInput,
		"Attendance cannot be reported for a future date",
		http.StatusBadRequest,
	)

	ErrInvalidClockTime = apperror.New(
		apperror.CodeInvalidInput,
		"Clock times must be in HH:MM format",
		http.StatusBadRequest,
	)

	ErrClockOutBeforeClockIn = apperror.New(
		apperror.CodeInvalidInput,
		"Clock-out cannot be earlier than clock-in",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of present, late, absent, leave",
		http.StatusBadRequest,
	)

	ErrAlreadyReported = apperror.New(
		apperror.CodeConflict,
		"Attendance for this date has already been reported",
		http.StatusConflict,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)
