package liquidation

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	daysPerYear   = decimal.NewFromFloat(365.25)
	daysPerMonth  = decimal.NewFromInt(30)
	vacationPerYr = decimal.NewFromInt(15)
	monthsPerYear = decimal.NewFromInt(12)
	yearEndFactor = decimal.NewFromInt(3)
)

// Breakdown is one severance computation, itemized. TotalAmount is the
// estimate total and does not include other benefits; the persisted
// record re-sums with them.
type Breakdown struct {
	YearsOfService decimal.Decimal
	AverageSalary  decimal.Decimal

	SeverancePay         decimal.Decimal
	YearEndBonusProrated decimal.Decimal
	VacationBonus        decimal.Decimal
	PendingVacationDays  int
	PendingVacationPay   decimal.Decimal

	TotalAmount decimal.Decimal
}

// Calculate derives the severance breakdown for one tenure span. Pure:
// the caller resolves the average salary from the employee type and
// supplies the wall clock, which only the year-end proration reads.
//
// The year-end bonus prorates three average salaries over the months of
// the current calendar year elapsed at computation time, not at the end
// date. Multiplications run before divisions so round figures stay
// exact.
func Calculate(averageSalary decimal.Decimal, startDate, endDate, now time.Time) Breakdown {
	days := decimal.NewFromInt(int64(endDate.Sub(startDate).Hours() / 24))
	years := days.Div(daysPerYear)

	severance := averageSalary.Mul(years)

	currentMonth := decimal.NewFromInt(int64(now.Month()))
	yearEnd := averageSalary.Mul(yearEndFactor).Mul(currentMonth).Div(monthsPerYear)

	pendingDays := vacationPerYr.Mul(years).Floor()
	pendingPay := averageSalary.Mul(pendingDays).Div(daysPerMonth)

	vacationBonus := averageSalary.Mul(vacationPerYr).Div(daysPerMonth)

	return Breakdown{
		YearsOfService:       years,
		AverageSalary:        averageSalary,
		SeverancePay:         severance,
		YearEndBonusProrated: yearEnd,
		VacationBonus:        vacationBonus,
		PendingVacationDays:  int(pendingDays.IntPart()),
		PendingVacationPay:   pendingPay,
		TotalAmount:          severance.Add(yearEnd).Add(vacationBonus).Add(pendingPay),
	}
}
