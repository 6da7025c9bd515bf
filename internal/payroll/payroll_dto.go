package payroll

import "github.com/shopspring/decimal"

type GeneratePayrollRequest struct {
	PayDate       string   `json:"pay_date" binding:"required"`
	EmployeeTypes []string `json:"employee_types"`
	Description   string   `json:"description"`
}

// ManualEmployeePaymentInput carries pre-computed amounts for one
// employee in a manual run; the service derives the net amount.
type ManualEmployeePaymentInput struct {
	EmployeeID      string          `json:"employee_id" binding:"required,uuid"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	TotalBonuses    decimal.Decimal `json:"total_bonuses"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
}

// ManualLineInput is an itemized line for a manual run. EmployeeID is
// optional: absent means a run-scoped general line.
type ManualLineInput struct {
	EmployeeID *string         `json:"employee_id" binding:"omitempty,uuid"`
	Name       string          `json:"name" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
}

type CreatePayrollRunRequest struct {
	PeriodLabel string                       `json:"period_label" binding:"required"`
	PayDate     string                       `json:"pay_date" binding:"required"`
	Description string                       `json:"description"`
	Employees   []ManualEmployeePaymentInput `json:"employees" binding:"required,min=1,dive"`
	Deductions  []ManualLineInput            `json:"deductions" binding:"dive"`
	Bonuses     []ManualLineInput            `json:"bonuses" binding:"dive"`
}

type EmployeePaymentResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`

	BaseSalary          decimal.Decimal `json:"base_salary"`
	MealVoucher         decimal.Decimal `json:"meal_voucher"`
	ResponsibilityBonus decimal.Decimal `json:"responsibility_bonus"`
	PunctualityBonus    decimal.Decimal `json:"punctuality_bonus"`
	YearEndBonus        decimal.Decimal `json:"year_end_bonus"`
	VacationBonus       decimal.Decimal `json:"vacation_bonus"`
	SeveranceAccrual    decimal.Decimal `json:"severance_accrual"`
	VacationDays        int             `json:"vacation_days"`
	VacationAmount      decimal.Decimal `json:"vacation_amount"`

	GrossAmount     decimal.Decimal `json:"gross_amount"`
	TotalBonuses    decimal.Decimal `json:"total_bonuses"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetAmount       decimal.Decimal `json:"net_amount"`
}

type PayrollLineResponse struct {
	ID         string          `json:"id"`
	EmployeeID *string         `json:"employee_id,omitempty"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
}

type PayrollRunResponse struct {
	ID          string                    `json:"id"`
	PeriodLabel string                    `json:"period_label"`
	PayDate     string                    `json:"pay_date"`
	Description string                    `json:"description"`
	Payments    []EmployeePaymentResponse `json:"payments"`
	Deductions  []PayrollLineResponse     `json:"deductions"`
	Bonuses     []PayrollLineResponse     `json:"bonuses"`
}
