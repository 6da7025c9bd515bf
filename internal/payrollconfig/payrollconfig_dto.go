package payrollconfig

import "github.com/shopspring/decimal"

type CreatePayrollConfigurationRequest struct {
	BiweeklyDays       int             `json:"biweekly_days"`
	FirstPayDay        int             `json:"first_pay_day"`
	SecondPayDay       int             `json:"second_pay_day"`
	SocialSecurityRate decimal.Decimal `json:"social_security_rate"`
	IncomeTaxRate      decimal.Decimal `json:"income_tax_rate"`
}

type UpdatePayrollConfigurationRequest struct {
	BiweeklyDays       int             `json:"biweekly_days" binding:"required"`
	FirstPayDay        int             `json:"first_pay_day" binding:"required"`
	SecondPayDay       int             `json:"second_pay_day" binding:"required"`
	SocialSecurityRate decimal.Decimal `json:"social_security_rate"`
	IncomeTaxRate      decimal.Decimal `json:"income_tax_rate"`
}

type PayrollConfigurationResponse struct {
	ID                 string          `json:"id"`
	BiweeklyDays       int             `json:"biweekly_days"`
	FirstPayDay        int             `json:"first_pay_day"`
	SecondPayDay       int             `json:"second_pay_day"`
	SocialSecurityRate decimal.Decimal `json:"social_security_rate"`
	IncomeTaxRate      decimal.Decimal `json:"income_tax_rate"`
	Active             bool            `json:"active"`
}
