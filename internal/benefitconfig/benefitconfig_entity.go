package benefitconfig

import (
	"time"

	"school-admin/internal/employee"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BenefitType routes a configuration through the payroll evaluator.
type BenefitType string

const (
	TypeMealVoucher         BenefitType = "mealVoucher"
	TypeResponsibilityBonus BenefitType = "responsibilityBonus"
	TypePunctualityBonus    BenefitType = "punctualityBonus"
	TypeYearEndBonus        BenefitType = "yearEndBonus"
	TypeVacationBonus       BenefitType = "vacationBonus"
	TypeSeveranceAccrual    BenefitType = "severanceAccrual"
	TypeOther               BenefitType = "other"
)

// AppliesToAll widens a configuration to every payroll employee type.
const AppliesToAll = "all"

// BenefitConfiguration is an independently activatable benefit rule.
// The effective value for an employee is
// baseValue + baseSalary * salaryPercentage / 100.
type BenefitConfiguration struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name             string          `gorm:"not null"`
	Type             BenefitType     `gorm:"type:varchar(30);not null;index"`
	BaseValue        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	SalaryPercentage decimal.Decimal `gorm:"type:numeric(7,2);not null;default:0"`
	AppliesTo        string          `gorm:"type:varchar(20);not null;default:'all'"`
	Formula          *string         `gorm:"type:text"` // informational only, never evaluated
	Active           bool            `gorm:"not null;default:true;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func ParseBenefitType(s string) (BenefitType, bool) {
	switch BenefitType(s) {
	case TypeMealVoucher, TypeResponsibilityBonus, TypePunctualityBonus,
		TypeYearEndBonus, TypeVacationBonus, TypeSeveranceAccrual, TypeOther:
		return BenefitType(s), true
	}
	return "", false
}

// AppliesToType reports whether the rule targets the given employee
// type, either directly or through "all".
func (b BenefitConfiguration) AppliesToType(t employee.Type) bool {
	return b.AppliesTo == AppliesToAll || b.AppliesTo == string(t)
}

// EffectiveValue computes the rule's amount for a base salary.
func (b BenefitConfiguration) EffectiveValue(baseSalary decimal.Decimal) decimal.Decimal {
	return b.BaseValue.Add(baseSalary.Mul(b.SalaryPercentage).Div(decimal.NewFromInt(100)))
}
