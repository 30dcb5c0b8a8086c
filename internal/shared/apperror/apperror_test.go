package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-stationops/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	conflict := apperror.New(apperror.CodeConflict, "already reported", http.StatusConflict)

	got := apperror.ToHTTP(fmt.Errorf("report: %w", conflict))
	assert.Equal(t, http.StatusConflict, got.Status)
	assert.Equal(t, apperror.CodeConflict, got.Code)

	got = apperror.ToHTTP(errors.New("dial tcp: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, "An unexpected error occurred", got.Message)
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	err := apperror.Wrap(cause, apperror.CodeStoreUnreachable, "store unreachable", http.StatusInternalServerError)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "store unreachable: boom", err.Error())
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "x", http.StatusInternalServerError))
}

type reportInput struct {
	Date   string `validate:"required"`
	Status string `validate:"oneof=present late"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()

	err := apperror.MapValidationError(v.Struct(reportInput{Status: "present"}))
	var appErr *apperror.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, "Date is required", appErr.Message)
	}

	err = apperror.MapValidationError(v.Struct(reportInput{Date: "2024-01-10", Status: "remote"}))
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, "Status is invalid", appErr.Message)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	}

	err = apperror.MapValidationError(errors.New("EOF"))
	assert.Equal(t, "Invalid input", err.Error())
}
