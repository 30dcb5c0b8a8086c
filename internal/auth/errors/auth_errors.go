package autherrors

import (
	"go-stationops/internal/shared/apperror"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for every failed login, whichever probe
	// step failed, so callers cannot learn where an email is registered.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)

	ErrMissingToken = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid or expired token",
		http.StatusUnauthorized,
	)

	ErrPrincipalNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Principal not found",
		http.StatusUnauthorized,
	)

	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)
