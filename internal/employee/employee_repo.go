package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, emp *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	ListByTypes(ctx context.Context, types []Type) ([]Employee, error)
	Update(ctx context.Context, emp *Employee) error
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

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).First(&emp, "id = ?", id).Error
	return &emp, err
}

// ListByTypes returns the roster in hire order; payroll generation
// processes employees in whatever order the directory yields.
func (r *repository) ListByTypes(ctx context.Context, types []Type) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Where("type IN ?", types).
		Order("hire_date ASC, id ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}
