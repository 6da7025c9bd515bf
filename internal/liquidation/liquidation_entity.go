package liquidation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusPaid:
		return Status(s), true
	default:
		return "", false
	}
}

// Liquidation is a persisted severance settlement for one departing
// employee. The component amounts are stored itemized so an update can
// rewrite any of them and re-derive the total.
type Liquidation struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Reason    string

	YearsOfService decimal.Decimal `gorm:"type:numeric(10,4);not null"`
	AverageSalary  decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	SeverancePay         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	YearEndBonusProrated decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	VacationBonus        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PendingVacationDays  int             `gorm:"not null"`
	PendingVacationPay   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	OtherBenefits        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalAmount          decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	Status   Status `gorm:"type:varchar(10);not null;default:'pending';index"`
	PaidDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Liquidation) TableName() string {
	return "liquidations"
}
