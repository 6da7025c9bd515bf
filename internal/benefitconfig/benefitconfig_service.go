package benefitconfig

import (
	"context"
	"errors"

	benefitconfigerrors "school-admin/internal/benefitconfig/errors"
	"school-admin/internal/employee"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=benefitconfig_service.go -destination=mock/benefitconfig_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateBenefitConfigurationRequest) (BenefitConfigurationResponse, error)
	GetAll(ctx context.Context) ([]BenefitConfigurationResponse, error)
	GetByID(ctx context.Context, id string) (BenefitConfigurationResponse, error)
	Update(ctx context.Context, id string, req UpdateBenefitConfigurationRequest) (BenefitConfigurationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("benefitconfig.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("benefitconfig.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateBenefitConfigurationRequest,
) (BenefitConfigurationResponse, error) {
	benefitType, ok := ParseBenefitType(req.Type)
	if !ok {
		return BenefitConfigurationResponse{}, benefitconfigerrors.ErrInvalidBenefitType
	}

	appliesTo, err := normalizeAppliesTo(req.AppliesTo)
	if err != nil {
		return BenefitConfigurationResponse{}, err
	}

	if req.BaseValue.IsNegative() || req.SalaryPercentage.IsNegative() {
		return BenefitConfigurationResponse{}, benefitconfigerrors.ErrNegativeValue
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	cfg := &BenefitConfiguration{
		ID:               uuid.New(),
		Name:             req.Name,
		Type:             benefitType,
		BaseValue:        req.BaseValue,
		SalaryPercentage: req.SalaryPercentage,
		AppliesTo:        appliesTo,
		Formula:          req.Formula,
		Active:           active,
	}

	if err := s.repo.Create(ctx, cfg); err != nil {
		s.logger.Error("create benefit configuration failed", zap.Error(err))
		return BenefitConfigurationResponse{}, err
	}

	return mapToResponse(*cfg), nil
}

func (s *service) GetAll(ctx context.Context) ([]BenefitConfigurationResponse, error) {
	configs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]BenefitConfigurationResponse, len(configs))
	for i, cfg := range configs {
		res[i] = mapToResponse(cfg)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (BenefitConfigurationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BenefitConfigurationResponse{}, benefitconfigerrors.ErrInvalidBenefitID
	}

	cfg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return BenefitConfigurationResponse{}, mapNotFound(err)
	}

	return mapToResponse(*cfg), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateBenefitConfigurationRequest,
) (BenefitConfigurationResponse, error) {
	benefitType, ok := ParseBenefitType(req.Type)
	if !ok {
		return BenefitConfigurationResponse{}, benefitconfigerrors.ErrInvalidBenefitType
	}

	appliesTo, err := normalizeAppliesTo(req.AppliesTo)
	if err != nil {
		return BenefitConfigurationResponse{}, err
	}

	if req.BaseValue.IsNegative() || req.SalaryPercentage.IsNegative() {
		return BenefitConfigurationResponse{}, benefitconfigerrors.ErrNegativeValue
	}

	cfg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return BenefitConfigurationResponse{}, mapNotFound(err)
	}

	cfg.Name = req.Name
	cfg.Type = benefitType
	cfg.BaseValue = req.BaseValue
	cfg.SalaryPercentage = req.SalaryPercentage
	cfg.AppliesTo = appliesTo
	cfg.Formula = req.Formula
	if req.Active != nil {
		cfg.Active = *req.Active
	}

	if err := s.repo.Update(ctx, cfg); err != nil {
		return BenefitConfigurationResponse{}, err
	}

	return mapToResponse(*cfg), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapNotFound(err)
	}

	return s.repo.Delete(ctx, id)
}

func normalizeAppliesTo(s string) (string, error) {
	if s == "" || s == AppliesToAll {
		return AppliesToAll, nil
	}
	if t, ok := employee.ParseType(s); ok && employee.IsPayrollType(t) {
		return s, nil
	}
	return "", benefitconfigerrors.ErrInvalidAppliesTo
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return benefitconfigerrors.ErrBenefitNotFound
	}
	return err
}

func mapToResponse(cfg BenefitConfiguration) BenefitConfigurationResponse {
	return BenefitConfigurationResponse{
		ID:               cfg.ID.String(),
		Name:             cfg.Name,
		Type:             string(cfg.Type),
		BaseValue:        cfg.BaseValue,
		SalaryPercentage: cfg.SalaryPercentage,
		AppliesTo:        cfg.AppliesTo,
		Formula:          cfg.Formula,
		Active:           cfg.Active,
	}
}
