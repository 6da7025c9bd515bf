package liquidation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"school-admin/internal/employee"
	"school-admin/internal/events"
	liquidationerrors "school-admin/internal/liquidation/errors"
	"school-admin/internal/messaging/kafka"
	"school-admin/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=liquidation_service.go -destination=mock/liquidation_service_mock.go -package=mock
type Service interface {
	Estimate(ctx context.Context, req EstimateLiquidationRequest) (EstimateResponse, error)
	Create(ctx context.Context, req CreateLiquidationRequest) (LiquidationResponse, error)
	GetAll(ctx context.Context) ([]LiquidationResponse, error)
	GetByID(ctx context.Context, id string) (LiquidationResponse, error)
	Update(ctx context.Context, id string, req UpdateLiquidationRequest) (LiquidationResponse, error)
	MarkPaid(ctx context.Context, id string, req MarkPaidRequest) (LiquidationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db           *gorm.DB
	repo         Repository
	employeeRepo employee.Repository
	outbox       kafka.OutboxRepository
	now          func() time.Time
	logger       *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	employeeRepo employee.Repository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, employeeRepo, nil, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	employeeRepo employee.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("liquidation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("liquidation.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		outbox:       outboxRepo,
		now:          time.Now,
		logger:       l,
	}
}

// Estimate computes a severance breakdown without persisting anything.
func (s *service) Estimate(
	ctx context.Context,
	req EstimateLiquidationRequest,
) (EstimateResponse, error) {
	start, end, err := parseTenure(req.StartDate, req.EndDate)
	if err != nil {
		return EstimateResponse{}, err
	}

	avg, err := s.resolveAverageSalary(ctx, req.EmployeeID)
	if err != nil {
		return EstimateResponse{}, err
	}

	b := Calculate(avg, start, end, s.now())

	return EstimateResponse{
		EmployeeID:           req.EmployeeID,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		Reason:               req.Reason,
		YearsOfService:       b.YearsOfService,
		AverageSalary:        b.AverageSalary,
		SeverancePay:         b.SeverancePay,
		YearEndBonusProrated: b.YearEndBonusProrated,
		VacationBonus:        b.VacationBonus,
		PendingVacationDays:  b.PendingVacationDays,
		PendingVacationPay:   b.PendingVacationPay,
		TotalAmount:          b.TotalAmount,
	}, nil
}

// Create runs the same computation as Estimate and persists the
// result. Unlike the estimate total, the stored total includes the
// caller-supplied other benefits.
func (s *service) Create(
	ctx context.Context,
	req CreateLiquidationRequest,
) (LiquidationResponse, error) {
	start, end, err := parseTenure(req.StartDate, req.EndDate)
	if err != nil {
		return LiquidationResponse{}, err
	}
	if req.OtherBenefits.IsNegative() {
		return LiquidationResponse{}, liquidationerrors.ErrNegativeAmount
	}

	avg, err := s.resolveAverageSalary(ctx, req.EmployeeID)
	if err != nil {
		return LiquidationResponse{}, err
	}

	b := Calculate(avg, start, end, s.now())

	liq := &Liquidation{
		ID:                   uuid.New(),
		EmployeeID:           uuid.MustParse(req.EmployeeID),
		StartDate:            start,
		EndDate:              end,
		Reason:               req.Reason,
		YearsOfService:       b.YearsOfService,
		AverageSalary:        b.AverageSalary,
		SeverancePay:         b.SeverancePay,
		YearEndBonusProrated: b.YearEndBonusProrated,
		VacationBonus:        b.VacationBonus,
		PendingVacationDays:  b.PendingVacationDays,
		PendingVacationPay:   b.PendingVacationPay,
		OtherBenefits:        req.OtherBenefits,
		Status:               StatusPending,
	}
	liq.TotalAmount = sumComponents(liq)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return mapRepositoryError(s.repo.WithTx(tx).Create(ctx, liq))
	})
	if err != nil {
		s.logger.Error("create liquidation failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return LiquidationResponse{}, err
	}

	return mapToResponse(*liq), nil
}

func (s *service) GetAll(ctx context.Context) ([]LiquidationResponse, error) {
	liqs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]LiquidationResponse, len(liqs))
	for i, liq := range liqs {
		res[i] = mapToResponse(liq)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LiquidationResponse, error) {
	liq, err := s.findByID(ctx, id)
	if err != nil {
		return LiquidationResponse{}, err
	}
	return mapToResponse(*liq), nil
}

// Update rewrites the supplied fields and re-derives the total from the
// resulting components. Setting status back to pending through an
// explicit update is allowed; only MarkPaid sets the paid date.
func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateLiquidationRequest,
) (LiquidationResponse, error) {
	liq, err := s.findByID(ctx, id)
	if err != nil {
		return LiquidationResponse{}, err
	}

	if req.Reason != nil {
		liq.Reason = *req.Reason
	}
	if req.SeverancePay != nil {
		liq.SeverancePay = *req.SeverancePay
	}
	if req.YearEndBonusProrated != nil {
		liq.YearEndBonusProrated = *req.YearEndBonusProrated
	}
	if req.VacationBonus != nil {
		liq.VacationBonus = *req.VacationBonus
	}
	if req.PendingVacationDays != nil {
		liq.PendingVacationDays = *req.PendingVacationDays
	}
	if req.PendingVacationPay != nil {
		liq.PendingVacationPay = *req.PendingVacationPay
	}
	if req.OtherBenefits != nil {
		liq.OtherBenefits = *req.OtherBenefits
	}
	if req.Status != nil {
		status, ok := ParseStatus(*req.Status)
		if !ok {
			return LiquidationResponse{}, liquidationerrors.ErrInvalidStatus
		}
		liq.Status = status
	}

	if liq.SeverancePay.IsNegative() || liq.YearEndBonusProrated.IsNegative() ||
		liq.VacationBonus.IsNegative() || liq.PendingVacationPay.IsNegative() ||
		liq.OtherBenefits.IsNegative() {
		return LiquidationResponse{}, liquidationerrors.ErrNegativeAmount
	}

	liq.TotalAmount = sumComponents(liq)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return mapRepositoryError(s.repo.WithTx(tx).Update(ctx, liq))
	})
	if err != nil {
		return LiquidationResponse{}, err
	}

	return mapToResponse(*liq), nil
}

// MarkPaid transitions a pending liquidation to paid and records the
// paid date. Paid is terminal for this operation: marking an already
// paid record fails.
func (s *service) MarkPaid(
	ctx context.Context,
	id string,
	req MarkPaidRequest,
) (LiquidationResponse, error) {
	liq, err := s.findByID(ctx, id)
	if err != nil {
		return LiquidationResponse{}, err
	}

	if liq.Status == StatusPaid {
		return LiquidationResponse{}, liquidationerrors.ErrAlreadyPaid
	}

	paidDate := s.now()
	if req.PaidDate != nil && *req.PaidDate != "" {
		paidDate, err = time.Parse("2006-01-02", *req.PaidDate)
		if err != nil {
			return LiquidationResponse{}, liquidationerrors.ErrInvalidDateFormat
		}
	}

	liq.Status = StatusPaid
	liq.PaidDate = &paidDate

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Update(ctx, liq); err != nil {
			return mapRepositoryError(err)
		}
		return s.writePaidEvent(ctx, tx, liq)
	})
	if err != nil {
		s.logger.Error("mark liquidation paid failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("liquidation_id", id),
			zap.Error(err),
		)
		return LiquidationResponse{}, err
	}

	s.logger.Info("liquidation marked paid",
		zap.String("liquidation_id", id),
		zap.String("employee_id", liq.EmployeeID.String()),
		zap.String("total_amount", liq.TotalAmount.String()),
	)

	return mapToResponse(*liq), nil
}

// Delete removes a liquidation. Paid records are settled money and
// cannot be deleted.
func (s *service) Delete(ctx context.Context, id string) error {
	liq, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}

	if liq.Status == StatusPaid {
		return liquidationerrors.ErrPaidNotDeletable
	}

	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func (s *service) findByID(ctx context.Context, id string) (*Liquidation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, liquidationerrors.ErrInvalidLiquidationID
	}

	liq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return liq, nil
}

// resolveAverageSalary checks that the employee exists and is of a
// payroll type, then reads the flat per-type salary table.
func (s *service) resolveAverageSalary(ctx context.Context, employeeID string) (avg decimal.Decimal, err error) {
	emp, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return avg, liquidationerrors.IneligibleEmployee(employeeID)
		}
		return avg, err
	}
	if !employee.IsPayrollType(emp.Type) {
		return avg, liquidationerrors.IneligibleEmployee(employeeID)
	}

	return employee.BaseSalaryFor(emp.Type), nil
}

func (s *service) writePaidEvent(ctx context.Context, tx *gorm.DB, liq *Liquidation) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.LiquidationPaidEvent{
		EventType:     "liquidation.paid",
		LiquidationID: liq.ID.String(),
		EmployeeID:    liq.EmployeeID.String(),
		TotalAmount:   liq.TotalAmount.String(),
		PaidDate:      liq.PaidDate.Format("2006-01-02"),
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "liquidation",
		AggregateID:   liq.ID.String(),
		EventType:     "liquidation.paid",
		Topic:         events.LiquidationPaidTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseTenure(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return time.Time{}, time.Time{}, liquidationerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return time.Time{}, time.Time{}, liquidationerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, liquidationerrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func sumComponents(liq *Liquidation) decimal.Decimal {
	return liq.SeverancePay.
		Add(liq.YearEndBonusProrated).
		Add(liq.VacationBonus).
		Add(liq.PendingVacationPay).
		Add(liq.OtherBenefits)
}

func mapToResponse(liq Liquidation) LiquidationResponse {
	resp := LiquidationResponse{
		ID:                   liq.ID.String(),
		EmployeeID:           liq.EmployeeID.String(),
		StartDate:            liq.StartDate.Format("2006-01-02"),
		EndDate:              liq.EndDate.Format("2006-01-02"),
		Reason:               liq.Reason,
		YearsOfService:       liq.YearsOfService,
		AverageSalary:        liq.AverageSalary,
		SeverancePay:         liq.SeverancePay,
		YearEndBonusProrated: liq.YearEndBonusProrated,
		VacationBonus:        liq.VacationBonus,
		PendingVacationDays:  liq.PendingVacationDays,
		PendingVacationPay:   liq.PendingVacationPay,
		OtherBenefits:        liq.OtherBenefits,
		TotalAmount:          liq.TotalAmount,
		Status:               string(liq.Status),
	}
	if liq.PaidDate != nil {
		s := liq.PaidDate.Format("2006-01-02")
		resp.PaidDate = &s
	}
	return resp
}
