package employeeerrors

import (
	"net/http"

	"school-admin/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee type",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid hire_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmployeeEmailExists = apperror.New(
		apperror.CodeConflict,
		"an employee with this email already exists",
		http.StatusConflict,
	)
)
