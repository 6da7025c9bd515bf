package benefitconfig

import (
	"context"

	"school-admin/internal/employee"

	"gorm.io/gorm"
)

//go:generate mockgen -source=benefitconfig_repo.go -destination=mock/benefitconfig_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, cfg *BenefitConfiguration) error
	FindAll(ctx context.Context) ([]BenefitConfiguration, error)
	FindByID(ctx context.Context, id string) (*BenefitConfiguration, error)
	ListActiveForType(ctx context.Context, empType employee.Type) ([]BenefitConfiguration, error)
	Update(ctx context.Context, cfg *BenefitConfiguration) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, cfg *BenefitConfiguration) error {
	return r.db.WithContext(ctx).Create(cfg).Error
}

func (r *repository) FindAll(ctx context.Context) ([]BenefitConfiguration, error) {
	var configs []BenefitConfiguration
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&configs).Error
	return configs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*BenefitConfiguration, error) {
	var cfg BenefitConfiguration
	err := r.db.WithContext(ctx).First(&cfg, "id = ?", id).Error
	return &cfg, err
}

// ListActiveForType returns the active rules applicable to one employee
// type, in creation order for stable iteration.
func (r *repository) ListActiveForType(ctx context.Context, empType employee.Type) ([]BenefitConfiguration, error) {
	var configs []BenefitConfiguration
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where("applies_to IN ?", []string{AppliesToAll, string(empType)}).
		Order("created_at ASC, id ASC").
		Find(&configs).Error
	return configs, err
}

func (r *repository) Update(ctx context.Context, cfg *BenefitConfiguration) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&BenefitConfiguration{}, "id = ?", id).Error
}
