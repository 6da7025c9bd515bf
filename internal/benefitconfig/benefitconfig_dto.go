package benefitconfig

import "github.com/shopspring/decimal"

type CreateBenefitConfigurationRequest struct {
	Name             string          `json:"name" binding:"required"`
	Type             string          `json:"type" binding:"required"`
	BaseValue        decimal.Decimal `json:"base_value"`
	SalaryPercentage decimal.Decimal `json:"salary_percentage"`
	AppliesTo        string          `json:"applies_to"`
	Formula          *string         `json:"formula"`
	Active           *bool           `json:"active"`
}

type UpdateBenefitConfigurationRequest struct {
	Name             string          `json:"name" binding:"required"`
	Type             string          `json:"type" binding:"required"`
	BaseValue        decimal.Decimal `json:"base_value"`
	SalaryPercentage decimal.Decimal `json:"salary_percentage"`
	AppliesTo        string          `json:"applies_to"`
	Formula          *string         `json:"formula"`
	Active           *bool           `json:"active"`
}

type BenefitConfigurationResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Type             string          `json:"type"`
	BaseValue        decimal.Decimal `json:"base_value"`
	SalaryPercentage decimal.Decimal `json:"salary_percentage"`
	AppliesTo        string          `json:"applies_to"`
	Formula          *string         `json:"formula,omitempty"`
	Active           bool            `json:"active"`
}
