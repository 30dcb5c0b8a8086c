package profileerrors

import (
	"go-stationops/internal/shared/apperror"
	"net/http"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Profile not found",
		http.StatusNotFound,
	)

	// ErrDuplicateProfile is returned by the repository when the natural key
	// already has a profile.
	ErrDuplicateProfile = apperror.New(
		apperror.CodeConflict,
		"Profile already exists",
		http.StatusConflict,
	)

	ErrNoProfileForRole = apperror.New(
		apperror.CodeForbidden,
		"This account has no profile",
		http.StatusForbidden,
	)

	ErrSkillsNotSupported = apperror.New(
		apperror.CodeInvalidInput,
		"Skills can only be set on employee profiles",
		http.StatusBadRequest,
	)
)
