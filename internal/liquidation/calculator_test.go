package liquidation_test

import (
	"testing"
	"time"

	"school-admin/internal/liquidation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculate_FourYearTeacher(t *testing.T) {
	// 2020-01-01 to 2024-01-01 is exactly 1461 days = 4 years at
	// 365.25 days per year.
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)

	b := liquidation.Calculate(dec("500"), start, end, now)

	assert.True(t, b.YearsOfService.Equal(dec("4")), "years: %s", b.YearsOfService)
	assert.True(t, b.SeverancePay.Equal(dec("2000")), "severance: %s", b.SeverancePay)
	assert.Equal(t, 60, b.PendingVacationDays)
	assert.True(t, b.PendingVacationPay.Equal(dec("1000")), "pending pay: %s", b.PendingVacationPay)
	assert.True(t, b.VacationBonus.Equal(dec("250")), "vacation bonus: %s", b.VacationBonus)
	// 500 * 3 * 8 / 12 for an August computation.
	assert.True(t, b.YearEndBonusProrated.Equal(dec("1000")), "year end: %s", b.YearEndBonusProrated)
	assert.True(t, b.TotalAmount.Equal(dec("4250")), "total: %s", b.TotalAmount)
}

func TestCalculate_YearEndProrationFollowsClock(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	january := liquidation.Calculate(dec("500"), start, end,
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	assert.True(t, january.YearEndBonusProrated.Equal(dec("125")))

	december := liquidation.Calculate(dec("500"), start, end,
		time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC))
	assert.True(t, december.YearEndBonusProrated.Equal(dec("1500")))
}

func TestCalculate_PendingDaysFloored(t *testing.T) {
	// 18 months: 15 * 1.5 years rounds down from 22.xx to 22 days.
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	b := liquidation.Calculate(dec("300"), start, end, now)

	days := end.Sub(start).Hours() / 24
	years := days / 365.25
	assert.Equal(t, int(15*years), b.PendingVacationDays)
	assert.True(t, b.YearsOfService.IsPositive())
	assert.True(t, b.SeverancePay.IsPositive())
}

func TestCalculate_ZeroTenure(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	b := liquidation.Calculate(dec("400"), day, day, day)

	assert.True(t, b.YearsOfService.IsZero())
	assert.True(t, b.SeverancePay.IsZero())
	assert.Equal(t, 0, b.PendingVacationDays)
	assert.True(t, b.PendingVacationPay.IsZero())
	// Vacation bonus and clock-based year-end proration do not depend
	// on tenure.
	assert.True(t, b.VacationBonus.Equal(dec("200")))
	assert.True(t, b.YearEndBonusProrated.Equal(dec("600")))
}
