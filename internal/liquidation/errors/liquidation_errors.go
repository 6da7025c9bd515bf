package liquidationerrors

import (
	"fmt"
	"net/http"

	"school-admin/internal/shared/apperror"
)

var (
	ErrLiquidationNotFound = apperror.New(
		apperror.CodeNotFound,
		"liquidation not found",
		http.StatusNotFound,
	)
	ErrInvalidLiquidationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid liquidation id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end date must not be before start date",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"liquidation amounts cannot be negative",
		http.StatusBadRequest,
	)
	ErrAlreadyPaid = apperror.New(
		apperror.CodeInvalidState,
		"liquidation is already paid",
		http.StatusConflict,
	)
	ErrPaidNotDeletable = apperror.New(
		apperror.CodeConflict,
		"a paid liquidation cannot be deleted",
		http.StatusConflict,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be pending or paid",
		http.StatusBadRequest,
	)
)

// IneligibleEmployee flags a liquidation request for an employee that is
// missing or not of a payroll type.
func IneligibleEmployee(employeeID string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("employee %s is not eligible for liquidation", employeeID),
		http.StatusBadRequest,
	)
}
