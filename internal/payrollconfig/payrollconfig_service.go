package payrollconfig

import (
	"context"
	"errors"

	payrollconfigerrors "school-admin/internal/payrollconfig/errors"
	"school-admin/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payrollconfig_service.go -destination=mock/payrollconfig_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePayrollConfigurationRequest) (PayrollConfigurationResponse, error)
	GetAll(ctx context.Context) ([]PayrollConfigurationResponse, error)
	GetByID(ctx context.Context, id string) (PayrollConfigurationResponse, error)
	GetActive(ctx context.Context) (PayrollConfigurationResponse, error)
	Update(ctx context.Context, id string, req UpdatePayrollConfigurationRequest) (PayrollConfigurationResponse, error)
	Activate(ctx context.Context, id string) (PayrollConfigurationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payrollconfig.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payrollconfig.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// Create stores a new configuration and makes it the active one.
// Deactivating the others and activating the new row happen in the same
// transaction, so there is never a window with zero or two active
// configurations.
func (s *service) Create(
	ctx context.Context,
	req CreatePayrollConfigurationRequest,
) (PayrollConfigurationResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	cfg := &PayrollConfiguration{
		ID:                 uuid.New(),
		BiweeklyDays:       req.BiweeklyDays,
		FirstPayDay:        req.FirstPayDay,
		SecondPayDay:       req.SecondPayDay,
		SocialSecurityRate: req.SocialSecurityRate,
		IncomeTaxRate:      req.IncomeTaxRate,
		Active:             true,
	}
	applyDefaults(cfg)

	if err := validateConfiguration(cfg); err != nil {
		return PayrollConfigurationResponse{}, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.DeactivateAll(ctx); err != nil {
			return err
		}
		return qtx.Create(ctx, cfg)
	})
	if err != nil {
		s.logger.Error("create payroll configuration failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollConfigurationResponse{}, err
	}

	s.logger.Info("payroll configuration created",
		zap.String("request_id", rid),
		zap.String("configuration_id", cfg.ID.String()),
	)

	return mapToResponse(*cfg), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayrollConfigurationResponse, error) {
	configs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]PayrollConfigurationResponse, len(configs))
	for i, cfg := range configs {
		res[i] = mapToResponse(cfg)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollConfigurationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollConfigurationResponse{}, payrollconfigerrors.ErrInvalidConfigurationID
	}

	cfg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollConfigurationResponse{}, mapNotFound(err)
	}

	return mapToResponse(*cfg), nil
}

// GetActive deduplicates concurrent lookups; every payroll generation
// starts with this read.
func (s *service) GetActive(ctx context.Context) (PayrollConfigurationResponse, error) {
	v, err, _ := s.sf.Do("active", func() (any, error) {
		cfg, err := s.repo.FindActive(ctx)
		if err != nil {
			return nil, err
		}
		return *cfg, nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollConfigurationResponse{}, payrollconfigerrors.ErrNoActiveConfiguration
		}
		return PayrollConfigurationResponse{}, err
	}

	return mapToResponse(v.(PayrollConfiguration)), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdatePayrollConfigurationRequest,
) (PayrollConfigurationResponse, error) {
	cfg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollConfigurationResponse{}, mapNotFound(err)
	}

	cfg.BiweeklyDays = req.BiweeklyDays
	cfg.FirstPayDay = req.FirstPayDay
	cfg.SecondPayDay = req.SecondPayDay
	cfg.SocialSecurityRate = req.SocialSecurityRate
	cfg.IncomeTaxRate = req.IncomeTaxRate

	if err := validateConfiguration(cfg); err != nil {
		return PayrollConfigurationResponse{}, err
	}

	if err := s.repo.Update(ctx, cfg); err != nil {
		return PayrollConfigurationResponse{}, err
	}

	return mapToResponse(*cfg), nil
}

// Activate is the explicit state transition for the single-active flag:
// deactivate everything, then activate the target, in one transaction.
func (s *service) Activate(ctx context.Context, id string) (PayrollConfigurationResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	cfg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollConfigurationResponse{}, mapNotFound(err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.DeactivateAll(ctx); err != nil {
			return err
		}
		return qtx.SetActive(ctx, id, true)
	})
	if err != nil {
		s.logger.Error("activate payroll configuration failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollConfigurationResponse{}, err
	}

	cfg.Active = true
	return mapToResponse(*cfg), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	cfg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}

	if cfg.Active {
		return payrollconfigerrors.ErrConfigurationActive
	}

	return s.repo.Delete(ctx, id)
}

func applyDefaults(cfg *PayrollConfiguration) {
	if cfg.BiweeklyDays == 0 {
		cfg.BiweeklyDays = 15
	}
	if cfg.FirstPayDay == 0 {
		cfg.FirstPayDay = 15
	}
	if cfg.SecondPayDay == 0 {
		cfg.SecondPayDay = 30
	}
}

func validateConfiguration(cfg *PayrollConfiguration) error {
	if cfg.BiweeklyDays < 0 ||
		cfg.SocialSecurityRate.IsNegative() ||
		cfg.IncomeTaxRate.IsNegative() {
		return payrollconfigerrors.ErrNegativeValue
	}
	if cfg.FirstPayDay < 1 || cfg.FirstPayDay > 31 ||
		cfg.SecondPayDay < 1 || cfg.SecondPayDay > 31 {
		return payrollconfigerrors.ErrInvalidPayDay
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollconfigerrors.ErrConfigurationNotFound
	}
	return err
}

func mapToResponse(cfg PayrollConfiguration) PayrollConfigurationResponse {
	return PayrollConfigurationResponse{
		ID:                 cfg.ID.String(),
		BiweeklyDays:       cfg.BiweeklyDays,
		FirstPayDay:        cfg.FirstPayDay,
		SecondPayDay:       cfg.SecondPayDay,
		SocialSecurityRate: cfg.SocialSecurityRate,
		IncomeTaxRate:      cfg.IncomeTaxRate,
		Active:             cfg.Active,
	}
}
