package accounterrors

import (
	"go-stationops/internal/shared/apperror"
	"net/http"
)

var (
	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"Account not found",
		http.StatusNotFound,
	)
)
