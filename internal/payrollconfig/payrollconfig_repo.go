package payrollconfig

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payrollconfig_repo.go -destination=mock/payrollconfig_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, cfg *PayrollConfiguration) error
	FindAll(ctx context.Context) ([]PayrollConfiguration, error)
	FindByID(ctx context.Context, id string) (*PayrollConfiguration, error)
	FindActive(ctx context.Context) (*PayrollConfiguration, error)
	Update(ctx context.Context, cfg *PayrollConfiguration) error
	Delete(ctx context.Context, id string) error
	DeactivateAll(ctx context.Context) error
	SetActive(ctx context.Context, id string, active bool) error
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

func (r *repository) Create(ctx context.Context, cfg *PayrollConfiguration) error {
	return r.db.WithContext(ctx).Create(cfg).Error
}

func (r *repository) FindAll(ctx context.Context) ([]PayrollConfiguration, error) {
	var configs []PayrollConfiguration
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&configs).Error
	return configs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayrollConfiguration, error) {
	var cfg PayrollConfiguration
	err := r.db.WithContext(ctx).First(&cfg, "id = ?", id).Error
	return &cfg, err
}

func (r *repository) FindActive(ctx context.Context) (*PayrollConfiguration, error) {
	var cfg PayrollConfiguration
	err := r.db.WithContext(ctx).First(&cfg, "active = ?", true).Error
	return &cfg, err
}

func (r *repository) Update(ctx context.Context, cfg *PayrollConfiguration) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&PayrollConfiguration{}, "id = ?", id).Error
}

func (r *repository) DeactivateAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&PayrollConfiguration{}).
		Where("active = ?", true).
		Update("active", false).Error
}

func (r *repository) SetActive(ctx context.Context, id string, active bool) error {
	return r.db.WithContext(ctx).
		Model(&PayrollConfiguration{}).
		Where("id = ?", id).
		Update("active", active).Error
}
