package liquidation

import "github.com/shopspring/decimal"

type EstimateLiquidationRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Reason     string `json:"reason"`
}

type CreateLiquidationRequest struct {
	EmployeeID    string          `json:"employee_id" binding:"required,uuid"`
	StartDate     string          `json:"start_date" binding:"required"`
	EndDate       string          `json:"end_date" binding:"required"`
	Reason        string          `json:"reason"`
	OtherBenefits decimal.Decimal `json:"other_benefits"`
}

// UpdateLiquidationRequest rewrites individual fields of a persisted
// liquidation; omitted fields keep their stored values. The service
// re-sums the total from the resulting components.
type UpdateLiquidationRequest struct {
	Reason               *string          `json:"reason"`
	SeverancePay         *decimal.Decimal `json:"severance_pay"`
	YearEndBonusProrated *decimal.Decimal `json:"year_end_bonus_prorated"`
	VacationBonus        *decimal.Decimal `json:"vacation_bonus"`
	PendingVacationDays  *int             `json:"pending_vacation_days"`
	PendingVacationPay   *decimal.Decimal `json:"pending_vacation_pay"`
	OtherBenefits        *decimal.Decimal `json:"other_benefits"`
	Status               *string          `json:"status"`
}

type MarkPaidRequest struct {
	PaidDate *string `json:"paid_date"`
}

type EstimateResponse struct {
	EmployeeID     string          `json:"employee_id"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	Reason         string          `json:"reason"`
	YearsOfService decimal.Decimal `json:"years_of_service"`
	AverageSalary  decimal.Decimal `json:"average_salary"`

	SeverancePay         decimal.Decimal `json:"severance_pay"`
	YearEndBonusProrated decimal.Decimal `json:"year_end_bonus_prorated"`
	VacationBonus        decimal.Decimal `json:"vacation_bonus"`
	PendingVacationDays  int             `json:"pending_vacation_days"`
	PendingVacationPay   decimal.Decimal `json:"pending_vacation_pay"`

	TotalAmount decimal.Decimal `json:"total_amount"`
}

type LiquidationResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	Reason         string          `json:"reason"`
	YearsOfService decimal.Decimal `json:"years_of_service"`
	AverageSalary  decimal.Decimal `json:"average_salary"`

	SeverancePay         decimal.Decimal `json:"severance_pay"`
	YearEndBonusProrated decimal.Decimal `json:"year_end_bonus_prorated"`
	VacationBonus        decimal.Decimal `json:"vacation_bonus"`
	PendingVacationDays  int             `json:"pending_vacation_days"`
	PendingVacationPay   decimal.Decimal `json:"pending_vacation_pay"`
	OtherBenefits        decimal.Decimal `json:"other_benefits"`
	TotalAmount          decimal.Decimal `json:"total_amount"`

	Status   string  `json:"status"`
	PaidDate *string `json:"paid_date,omitempty"`
}
