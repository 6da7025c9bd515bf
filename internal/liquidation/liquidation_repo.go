package liquidation

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=liquidation_repo.go -destination=mock/liquidation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, liq *Liquidation) error
	FindAll(ctx context.Context) ([]Liquidation, error)
	FindByID(ctx context.Context, id string) (*Liquidation, error)
	Update(ctx context.Context, liq *Liquidation) error
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

func (r *repository) Create(ctx context.Context, liq *Liquidation) error {
	return r.db.WithContext(ctx).Create(liq).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Liquidation, error) {
	var liqs []Liquidation
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&liqs).Error
	return liqs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Liquidation, error) {
	var liq Liquidation
	err := r.db.WithContext(ctx).First(&liq, "id = ?", id).Error
	return &liq, err
}

func (r *repository) Update(ctx context.Context, liq *Liquidation) error {
	return r.db.WithContext(ctx).Save(liq).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Liquidation{}, "id = ?", id).Error
}
