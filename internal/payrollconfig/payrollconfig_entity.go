package payrollconfig

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollConfiguration holds the pay-period geometry and statutory
// deduction rates. At most one row is active at any time; the service
// enforces that inside the activation transaction.
type PayrollConfiguration struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BiweeklyDays       int             `gorm:"not null;default:15"`
	FirstPayDay        int             `gorm:"not null;default:15"`
	SecondPayDay       int             `gorm:"not null;default:30"`
	SocialSecurityRate decimal.Decimal `gorm:"type:numeric(7,2);not null;default:0"`
	IncomeTaxRate      decimal.Decimal `gorm:"type:numeric(7,2);not null;default:0"`
	Active             bool            `gorm:"not null;default:false;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
