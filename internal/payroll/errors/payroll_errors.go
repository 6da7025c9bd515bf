package payrollerrors

import (
	"fmt"
	"net/http"

	"school-admin/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNoActiveConfiguration = apperror.New(
		apperror.CodeNotFound,
		"no active payroll configuration",
		http.StatusNotFound,
	)
	ErrPeriodAlreadyGenerated = apperror.New(
		apperror.CodeConflict,
		"a payroll run for this period already exists",
		http.StatusConflict,
	)
	ErrDuplicateEmployeePayment = apperror.New(
		apperror.CodeConflict,
		"employee already has a payment in this run",
		http.StatusConflict,
	)
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll run not found",
		http.StatusNotFound,
	)
	ErrInvalidRunID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll run id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeTypeFilter = apperror.New(
		apperror.CodeInvalidInput,
		"employee_types must be a subset of teacher, administrative, laborer",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"payroll amounts cannot be negative",
		http.StatusBadRequest,
	)
)

// InvalidPayDate names the two days a pay date may fall on for the
// active configuration.
func InvalidPayDate(firstPayDay, secondPayDay int) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("pay date must fall on day %d, day %d or the last day of the month", firstPayDay, secondPayDay),
		http.StatusBadRequest,
	)
}

// InvalidRunEmployee flags the first employee in a manual run that is
// missing or not of a payroll type.
func InvalidRunEmployee(employeeID string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("employee %s is not eligible for payroll", employeeID),
		http.StatusBadRequest,
	)
}
