package benefitconfig_test

import (
	"context"
	"testing"

	"school-admin/internal/benefitconfig"
	benefitconfigerrors "school-admin/internal/benefitconfig/errors"
	"school-admin/internal/employee"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeBenefitRepository struct {
	createFn            func(ctx context.Context, cfg *benefitconfig.BenefitConfiguration) error
	findAllFn           func(ctx context.Context) ([]benefitconfig.BenefitConfiguration, error)
	findByIDFn          func(ctx context.Context, id string) (*benefitconfig.BenefitConfiguration, error)
	listActiveForTypeFn func(ctx context.Context, empType employee.Type) ([]benefitconfig.BenefitConfiguration, error)
	updateFn            func(ctx context.Context, cfg *benefitconfig.BenefitConfiguration) error
	deleteFn            func(ctx context.Context, id string) error
}

func (f *fakeBenefitRepository) WithTx(tx *gorm.DB) benefitconfig.Repository { return f }

func (f *fakeBenefitRepository) Create(ctx context.Context, cfg *benefitconfig.BenefitConfiguration) error {
	if f.createFn != nil {
		return f.createFn(ctx, cfg)
	}
	return nil
}

func (f *fakeBenefitRepository) FindAll(ctx context.Context) ([]benefitconfig.BenefitConfiguration, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeBenefitRepository) FindByID(ctx context.Context, id string) (*benefitconfig.BenefitConfiguration, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &benefitconfig.BenefitConfiguration{ID: uuid.MustParse(id)}, nil
}

func (f *fakeBenefitRepository) ListActiveForType(ctx context.Context, empType employee.Type) ([]benefitconfig.BenefitConfiguration, error) {
	if f.listActiveForTypeFn != nil {
		return f.listActiveForTypeFn(ctx, empType)
	}
	return nil, nil
}

func (f *fakeBenefitRepository) Update(ctx context.Context, cfg *benefitconfig.BenefitConfiguration) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, cfg)
	}
	return nil
}

func (f *fakeBenefitRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func setupBenefitServiceTest(t *testing.T) (benefitconfig.Service, *fakeBenefitRepository) {
	t.Helper()
	repo := &fakeBenefitRepository{}
	return benefitconfig.NewService(nil, repo), repo
}

func TestBenefitService_Create(t *testing.T) {
	svc, repo := setupBenefitServiceTest(t)

	var created *benefitconfig.BenefitConfiguration
	repo.createFn = func(ctx context.Context, cfg *benefitconfig.BenefitConfiguration) error {
		created = cfg
		return nil
	}

	resp, err := svc.Create(context.Background(), benefitconfig.CreateBenefitConfigurationRequest{
		Name:             "Meal Voucher",
		Type:             "mealVoucher",
		BaseValue:        dec("40"),
		SalaryPercentage: dec("0"),
	})

	assert.NoError(t, err)
	assert.Equal(t, benefitconfig.TypeMealVoucher, created.Type)
	// Omitted applies_to widens to every payroll type, and new rules
	// start active.
	assert.Equal(t, benefitconfig.AppliesToAll, resp.AppliesTo)
	assert.True(t, resp.Active)
}

func TestBenefitService_Create_Validation(t *testing.T) {
	svc, _ := setupBenefitServiceTest(t)

	_, err := svc.Create(context.Background(), benefitconfig.CreateBenefitConfigurationRequest{
		Name: "Mystery",
		Type: "mysteryBonus",
	})
	assert.ErrorIs(t, err, benefitconfigerrors.ErrInvalidBenefitType)

	_, err = svc.Create(context.Background(), benefitconfig.CreateBenefitConfigurationRequest{
		Name:      "Meal Voucher",
		Type:      "mealVoucher",
		AppliesTo: "estudiante",
	})
	assert.ErrorIs(t, err, benefitconfigerrors.ErrInvalidAppliesTo)

	// "other" is a known employee type but not a payroll one.
	_, err = svc.Create(context.Background(), benefitconfig.CreateBenefitConfigurationRequest{
		Name:      "Meal Voucher",
		Type:      "mealVoucher",
		AppliesTo: "other",
	})
	assert.ErrorIs(t, err, benefitconfigerrors.ErrInvalidAppliesTo)

	_, err = svc.Create(context.Background(), benefitconfig.CreateBenefitConfigurationRequest{
		Name:      "Meal Voucher",
		Type:      "mealVoucher",
		BaseValue: dec("-40"),
	})
	assert.ErrorIs(t, err, benefitconfigerrors.ErrNegativeValue)
}

func TestBenefitService_Update_TogglesActive(t *testing.T) {
	svc, repo := setupBenefitServiceTest(t)

	id := uuid.New()
	repo.findByIDFn = func(ctx context.Context, gotID string) (*benefitconfig.BenefitConfiguration, error) {
		return &benefitconfig.BenefitConfiguration{
			ID:     id,
			Name:   "Meal Voucher",
			Type:   benefitconfig.TypeMealVoucher,
			Active: true,
		}, nil
	}

	inactive := false
	resp, err := svc.Update(context.Background(), id.String(), benefitconfig.UpdateBenefitConfigurationRequest{
		Name:   "Meal Voucher",
		Type:   "mealVoucher",
		Active: &inactive,
	})

	assert.NoError(t, err)
	assert.False(t, resp.Active)
}

func TestBenefitService_GetByID_NotFound(t *testing.T) {
	svc, repo := setupBenefitServiceTest(t)
	repo.findByIDFn = func(ctx context.Context, id string) (*benefitconfig.BenefitConfiguration, error) {
		return nil, gorm.ErrRecordNotFound
	}

	_, err := svc.GetByID(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, benefitconfigerrors.ErrBenefitNotFound)
}

func TestBenefitConfiguration_EffectiveValue(t *testing.T) {
	b := benefitconfig.BenefitConfiguration{
		BaseValue:        dec("40"),
		SalaryPercentage: dec("10"),
	}

	assert.True(t, b.EffectiveValue(dec("500")).Equal(dec("90")))
	assert.True(t, b.EffectiveValue(decimal.Zero).Equal(dec("40")))
}
