package payroll

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateRun(ctx context.Context, run *PayrollRun) error
	CreatePayment(ctx context.Context, payment *EmployeePayment) error
	CreateDeductionLine(ctx context.Context, line *PayrollDeductionLine) error
	CreateBonusLine(ctx context.Context, line *PayrollBonusLine) error
	ExistsByPeriodLabel(ctx context.Context, periodLabel string) (bool, error)
	FindAll(ctx context.Context) ([]PayrollRun, error)
	FindByIDWithChildren(ctx context.Context, id string) (*PayrollRun, error)
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

func (r *repository) CreateRun(ctx context.Context, run *PayrollRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *repository) CreatePayment(ctx context.Context, payment *EmployeePayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *repository) CreateDeductionLine(ctx context.Context, line *PayrollDeductionLine) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *repository) CreateBonusLine(ctx context.Context, line *PayrollBonusLine) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *repository) ExistsByPeriodLabel(ctx context.Context, periodLabel string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayrollRun{}).
		Where("period_label = ?", periodLabel).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindAll(ctx context.Context) ([]PayrollRun, error) {
	var runs []PayrollRun
	err := r.db.WithContext(ctx).
		Order("pay_date DESC").
		Find(&runs).Error
	return runs, err
}

func (r *repository) FindByIDWithChildren(ctx context.Context, id string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).
		Preload("Payments").
		Preload("Deductions").
		Preload("Bonuses").
		First(&run, "id = ?", id).Error
	return &run, err
}
