package payroll

import (
	"time"

	"school-admin/internal/benefitconfig"
	"school-admin/internal/employee"
	"school-admin/internal/payrollconfig"

	"github.com/shopspring/decimal"
)

// Names of the statutory deduction lines every payment carries.
const (
	DeductionSocialSecurity = "Social Security"
	DeductionIncomeTax      = "Income Tax"
)

// LineItem is one named bonus or deduction amount.
type LineItem struct {
	Name   string
	Amount decimal.Decimal
}

// Evaluation is the outcome of running one employee through the active
// benefit rules for one pay period. Both deduction lines are always
// present, zero or not; bonus lines only exist for rules that produced
// a value.
type Evaluation struct {
	BaseSalary decimal.Decimal

	MealVoucher         decimal.Decimal
	ResponsibilityBonus decimal.Decimal
	PunctualityBonus    decimal.Decimal
	YearEndBonus        decimal.Decimal
	VacationBonus       decimal.Decimal
	SeveranceAccrual    decimal.Decimal

	Bonuses    []LineItem
	Deductions []LineItem

	GrossAmount     decimal.Decimal
	TotalBonuses    decimal.Decimal
	TotalDeductions decimal.Decimal
	NetAmount       decimal.Decimal
}

// Evaluate computes one employee's bonuses and deductions for a pay
// period. It is a pure function: missing configuration is the caller's
// problem, an empty benefit set just yields no bonus lines.
//
// Employees whose type is not in the base-salary table get a zero base
// salary and accrue nothing, but are still evaluated so the run records
// them with zero amounts.
func Evaluate(
	emp employee.Employee,
	cfg payrollconfig.PayrollConfiguration,
	benefits []benefitconfig.BenefitConfiguration,
	payDate time.Time,
) Evaluation {
	baseSalary := employee.BaseSalaryFor(emp.Type)

	ev := Evaluation{
		BaseSalary:  baseSalary,
		GrossAmount: baseSalary,
	}

	if baseSalary.IsPositive() {
		for _, b := range benefits {
			if !b.Active || !b.AppliesToType(emp.Type) {
				continue
			}

			value := b.EffectiveValue(baseSalary)

			switch b.Type {
			case benefitconfig.TypeMealVoucher:
				ev.MealVoucher = ev.MealVoucher.Add(value)
			case benefitconfig.TypeResponsibilityBonus:
				ev.ResponsibilityBonus = ev.ResponsibilityBonus.Add(value)
			case benefitconfig.TypePunctualityBonus:
				ev.PunctualityBonus = ev.PunctualityBonus.Add(value)
			case benefitconfig.TypeVacationBonus:
				ev.VacationBonus = ev.VacationBonus.Add(value)
			case benefitconfig.TypeSeveranceAccrual:
				ev.SeveranceAccrual = ev.SeveranceAccrual.Add(value)
			case benefitconfig.TypeYearEndBonus:
				// Pays out with the December periods only.
				if payDate.Month() != time.December {
					continue
				}
				ev.YearEndBonus = ev.YearEndBonus.Add(value)
			default:
				// Unrecognized types emit no line.
				continue
			}

			ev.Bonuses = append(ev.Bonuses, LineItem{Name: b.Name, Amount: value})
		}
	}

	hundred := decimal.NewFromInt(100)
	socialSecurity := baseSalary.Mul(cfg.SocialSecurityRate).Div(hundred)
	incomeTax := baseSalary.Mul(cfg.IncomeTaxRate).Div(hundred)

	ev.Deductions = []LineItem{
		{Name: DeductionSocialSecurity, Amount: socialSecurity},
		{Name: DeductionIncomeTax, Amount: incomeTax},
	}

	for _, b := range ev.Bonuses {
		ev.TotalBonuses = ev.TotalBonuses.Add(b.Amount)
	}
	ev.TotalDeductions = socialSecurity.Add(incomeTax)
	ev.NetAmount = ev.GrossAmount.Sub(ev.TotalDeductions).Add(ev.TotalBonuses)

	return ev
}
