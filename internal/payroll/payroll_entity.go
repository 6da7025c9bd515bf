package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollRun is the aggregate root for one generated pay period. The
// unique index on PeriodLabel is the authoritative duplicate-run guard;
// the service pre-check only exists for a friendlier error.
type PayrollRun struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PeriodLabel string    `gorm:"not null;uniqueIndex:uq_payroll_runs_period_label"`
	PayDate     time.Time `gorm:"type:date;not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Payments   []EmployeePayment      `gorm:"foreignKey:PayrollRunID"`
	Deductions []PayrollDeductionLine `gorm:"foreignKey:PayrollRunID"`
	Bonuses    []PayrollBonusLine     `gorm:"foreignKey:PayrollRunID"`
}

// EmployeePayment is one employee's line in a run, with the bonus
// amounts itemized per benefit type.
// NetAmount = GrossAmount - TotalDeductions + TotalBonuses.
type EmployeePayment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PayrollRunID uuid.UUID `gorm:"type:uuid;not null;index:uq_employee_payments_run_employee,unique"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;index:uq_employee_payments_run_employee,unique"`

	BaseSalary          decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	MealVoucher         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	ResponsibilityBonus decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	PunctualityBonus    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	YearEndBonus        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	VacationBonus       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	SeveranceAccrual    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	VacationDays        int             `gorm:"not null;default:0"`
	VacationAmount      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	GrossAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalBonuses    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	NetAmount       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayrollDeductionLine is an itemized deduction. EmployeeID is nil for
// run-scoped general lines (manual runs only).
type PayrollDeductionLine struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PayrollRunID uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID   *uuid.UUID      `gorm:"type:uuid;index"`
	Name         string          `gorm:"not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt    time.Time
}

// PayrollBonusLine mirrors PayrollDeductionLine for bonuses.
type PayrollBonusLine struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PayrollRunID uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID   *uuid.UUID      `gorm:"type:uuid;index"`
	Name         string          `gorm:"not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt    time.Time
}
