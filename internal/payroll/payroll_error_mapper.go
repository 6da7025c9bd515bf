package payroll

import (
	"errors"
	"strings"

	payrollerrors "school-admin/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError converts storage failures into the payroll error
// taxonomy. Unique-index violations become Conflict errors; this is
// what settles the race where two generate calls pass the existence
// pre-check before either commits.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrRunNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_payroll_runs_period_label":
				return payrollerrors.ErrPeriodAlreadyGenerated
			case "uq_employee_payments_run_employee":
				return payrollerrors.ErrDuplicateEmployeePayment
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "uq_payroll_runs_period_label") {
			return payrollerrors.ErrPeriodAlreadyGenerated
		}
		if strings.Contains(errMsg, "uq_employee_payments_run_employee") {
			return payrollerrors.ErrDuplicateEmployeePayment
		}
	}

	return err
}
