package payroll

import (
	"fmt"
	"time"

	payrollerrors "school-admin/internal/payroll/errors"
	"school-admin/internal/payrollconfig"
)

// ResolvePeriodLabel maps a pay date onto one of the two biweekly
// windows of its month. The second window also matches the last day of
// the month so February and 31-day months pay out on configurations
// that name day 30.
func ResolvePeriodLabel(payDate time.Time, cfg payrollconfig.PayrollConfiguration) (string, error) {
	monthYear := fmt.Sprintf("%s %d", payDate.Month(), payDate.Year())

	switch {
	case payDate.Day() == cfg.FirstPayDay:
		return "First Biweekly " + monthYear, nil
	case payDate.Day() == cfg.SecondPayDay || payDate.Day() == lastDayOfMonth(payDate):
		return "Second Biweekly " + monthYear, nil
	}

	return "", payrollerrors.InvalidPayDate(cfg.FirstPayDay, cfg.SecondPayDay)
}

func lastDayOfMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}
