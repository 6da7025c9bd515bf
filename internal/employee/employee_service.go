package employee

import (
	"context"
	"time"

	employeeerrors "school-admin/internal/employee/errors"
	"school-admin/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("type", req.Type),
	)

	empType, ok := ParseType(req.Type)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeType
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		s.logger.Warn("create employee invalid hire_date",
			zap.String("hire_date", req.HireDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	emp := &Employee{
		ID:       uuid.New(),
		FullName: req.FullName,
		Email:    req.Email,
		Type:     empType,
		HireDate: hireDate,
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		s.logger.Error("create employee failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	empType, ok := ParseType(req.Type)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeType
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	emp.FullName = req.FullName
	emp.Email = req.Email
	emp.Type = empType
	emp.HireDate = hireDate

	if err := s.repo.Update(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return nil
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       emp.ID.String(),
		FullName: emp.FullName,
		Email:    emp.Email,
		Type:     string(emp.Type),
		HireDate: emp.HireDate.Format("2006-01-02"),
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, emp := range employees {
		res[i] = mapToResponse(emp)
	}
	return res
}
