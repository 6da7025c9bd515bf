package payrollconfigerrors

import (
	"net/http"

	"school-admin/internal/shared/apperror"
)

var (
	ErrConfigurationNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll configuration not found",
		http.StatusNotFound,
	)
	ErrNoActiveConfiguration = apperror.New(
		apperror.CodeNotFound,
		"no active payroll configuration",
		http.StatusNotFound,
	)
	ErrConfigurationActive = apperror.New(
		apperror.CodeConflict,
		"cannot delete the active payroll configuration, activate another configuration first",
		http.StatusConflict,
	)
	ErrNegativeValue = apperror.New(
		apperror.CodeInvalidInput,
		"payroll configuration values cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidPayDay = apperror.New(
		apperror.CodeInvalidInput,
		"pay days must be between 1 and 31",
		http.StatusBadRequest,
	)
	ErrInvalidConfigurationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll configuration id",
		http.StatusBadRequest,
	)
)
