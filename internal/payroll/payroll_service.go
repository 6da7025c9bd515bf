package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"school-admin/internal/benefitconfig"
	"school-admin/internal/employee"
	"school-admin/internal/events"
	"school-admin/internal/messaging/kafka"
	payrollerrors "school-admin/internal/payroll/errors"
	"school-admin/internal/payrollconfig"
	"school-admin/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollRunResponse, error)
	CreateManual(ctx context.Context, req CreatePayrollRunRequest) (PayrollRunResponse, error)
	GetAll(ctx context.Context) ([]PayrollRunResponse, error)
	GetByID(ctx context.Context, id string) (PayrollRunResponse, error)
}

type service struct {
	db           *gorm.DB
	repo         Repository
	configRepo   payrollconfig.Repository
	benefitRepo  benefitconfig.Repository
	employeeRepo employee.Repository
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	configRepo payrollconfig.Repository,
	benefitRepo benefitconfig.Repository,
	employeeRepo employee.Repository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, configRepo, benefitRepo, employeeRepo, nil, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	configRepo payrollconfig.Repository,
	benefitRepo benefitconfig.Repository,
	employeeRepo employee.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		configRepo:   configRepo,
		benefitRepo:  benefitRepo,
		employeeRepo: employeeRepo,
		outbox:       outboxRepo,
		logger:       l,
	}
}

// Generate produces the payroll run for the period the pay date
// resolves to. The run, every employee payment and every itemized line
// are written in one transaction: a failure anywhere rolls the whole
// run back, so a reader never observes a partial run.
//
// Generate is deliberately not idempotent: a second call for the same
// period fails with a conflict instead of returning the existing run.
func (s *service) Generate(
	ctx context.Context,
	req GeneratePayrollRequest,
) (PayrollRunResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	payDate, err := time.Parse("2006-01-02", req.PayDate)
	if err != nil {
		return PayrollRunResponse{}, payrollerrors.ErrInvalidDateFormat
	}

	types, err := resolveEmployeeTypes(req.EmployeeTypes)
	if err != nil {
		return PayrollRunResponse{}, err
	}

	cfg, err := s.configRepo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollRunResponse{}, payrollerrors.ErrNoActiveConfiguration
		}
		return PayrollRunResponse{}, err
	}

	periodLabel, err := ResolvePeriodLabel(payDate, *cfg)
	if err != nil {
		return PayrollRunResponse{}, err
	}

	// Friendly pre-check; the unique index settles concurrent callers.
	exists, err := s.repo.ExistsByPeriodLabel(ctx, periodLabel)
	if err != nil {
		return PayrollRunResponse{}, err
	}
	if exists {
		return PayrollRunResponse{}, payrollerrors.ErrPeriodAlreadyGenerated
	}

	description := req.Description
	if description == "" {
		description = "Payroll " + periodLabel
	}

	run := &PayrollRun{
		ID:          uuid.New(),
		PeriodLabel: periodLabel,
		PayDate:     payDate,
		Description: description,
	}

	var employeeCount int
	err = s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := qtx.CreateRun(ctx, run); err != nil {
			return mapRepositoryError(err)
		}

		roster, err := s.employeeRepo.WithTx(tx).ListByTypes(ctx, types)
		if err != nil {
			return err
		}
		employeeCount = len(roster)

		benefitRepo := s.benefitRepo.WithTx(tx)
		for _, emp := range roster {
			benefits, err := benefitRepo.ListActiveForType(ctx, emp.Type)
			if err != nil {
				return err
			}

			ev := Evaluate(emp, *cfg, benefits, payDate)

			payment := paymentFromEvaluation(run.ID, emp.ID, ev)
			if err := qtx.CreatePayment(ctx, payment); err != nil {
				return mapRepositoryError(err)
			}

			empID := emp.ID
			for _, d := range ev.Deductions {
				if d.Amount.IsZero() {
					continue
				}
				line := &PayrollDeductionLine{
					ID:           uuid.New(),
					PayrollRunID: run.ID,
					EmployeeID:   &empID,
					Name:         d.Name,
					Amount:       d.Amount,
				}
				if err := qtx.CreateDeductionLine(ctx, line); err != nil {
					return mapRepositoryError(err)
				}
			}
			for _, b := range ev.Bonuses {
				if b.Amount.IsZero() {
					continue
				}
				line := &PayrollBonusLine{
					ID:           uuid.New(),
					PayrollRunID: run.ID,
					EmployeeID:   &empID,
					Name:         b.Name,
					Amount:       b.Amount,
				}
				if err := qtx.CreateBonusLine(ctx, line); err != nil {
					return mapRepositoryError(err)
				}
			}
		}

		return s.writeRunGeneratedEvent(ctx, tx, rid, run, employeeCount)
	})
	if err != nil {
		s.logger.Error("generate payroll run failed",
			zap.String("request_id", rid),
			zap.String("period_label", periodLabel),
			zap.Error(err),
		)
		return PayrollRunResponse{}, err
	}

	s.logger.Info("payroll run generated",
		zap.String("request_id", rid),
		zap.String("payroll_run_id", run.ID.String()),
		zap.String("period_label", periodLabel),
		zap.Int("employees", employeeCount),
	)

	loaded, err := s.repo.FindByIDWithChildren(ctx, run.ID.String())
	if err != nil {
		return PayrollRunResponse{}, mapRepositoryError(err)
	}

	return mapRunToResponse(*loaded), nil
}

// CreateManual persists a run from pre-computed amounts instead of
// deriving them, for manual or adjusted runs. It shares Generate's
// all-or-nothing contract and the per-employee-per-run uniqueness.
func (s *service) CreateManual(
	ctx context.Context,
	req CreatePayrollRunRequest,
) (PayrollRunResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	payDate, err := time.Parse("2006-01-02", req.PayDate)
	if err != nil {
		return PayrollRunResponse{}, payrollerrors.ErrInvalidDateFormat
	}

	// Every referenced employee must exist and be of a payroll type;
	// the first offender aborts the whole run.
	seen := make(map[string]bool, len(req.Employees))
	for _, in := range req.Employees {
		if seen[in.EmployeeID] {
			return PayrollRunResponse{}, payrollerrors.ErrDuplicateEmployeePayment
		}
		seen[in.EmployeeID] = true

		if in.BaseSalary.IsNegative() || in.TotalBonuses.IsNegative() || in.TotalDeductions.IsNegative() {
			return PayrollRunResponse{}, payrollerrors.ErrNegativeAmount
		}

		emp, err := s.employeeRepo.FindByID(ctx, in.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return PayrollRunResponse{}, payrollerrors.InvalidRunEmployee(in.EmployeeID)
			}
			return PayrollRunResponse{}, err
		}
		if !employee.IsPayrollType(emp.Type) {
			return PayrollRunResponse{}, payrollerrors.InvalidRunEmployee(in.EmployeeID)
		}
	}

	exists, err := s.repo.ExistsByPeriodLabel(ctx, req.PeriodLabel)
	if err != nil {
		return PayrollRunResponse{}, err
	}
	if exists {
		return PayrollRunResponse{}, payrollerrors.ErrPeriodAlreadyGenerated
	}

	run := &PayrollRun{
		ID:          uuid.New(),
		PeriodLabel: req.PeriodLabel,
		PayDate:     payDate,
		Description: req.Description,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := qtx.CreateRun(ctx, run); err != nil {
			return mapRepositoryError(err)
		}

		for _, in := range req.Employees {
			employeeID := uuid.MustParse(in.EmployeeID)
			payment := &EmployeePayment{
				ID:              uuid.New(),
				PayrollRunID:    run.ID,
				EmployeeID:      employeeID,
				BaseSalary:      in.BaseSalary,
				GrossAmount:     in.BaseSalary,
				TotalBonuses:    in.TotalBonuses,
				TotalDeductions: in.TotalDeductions,
				NetAmount:       in.BaseSalary.Sub(in.TotalDeductions).Add(in.TotalBonuses),
			}
			if err := qtx.CreatePayment(ctx, payment); err != nil {
				return mapRepositoryError(err)
			}
		}

		for _, in := range req.Deductions {
			line := &PayrollDeductionLine{
				ID:           uuid.New(),
				PayrollRunID: run.ID,
				EmployeeID:   parseOptionalUUID(in.EmployeeID),
				Name:         in.Name,
				Amount:       in.Amount,
			}
			if err := qtx.CreateDeductionLine(ctx, line); err != nil {
				return mapRepositoryError(err)
			}
		}

		for _, in := range req.Bonuses {
			line := &PayrollBonusLine{
				ID:           uuid.New(),
				PayrollRunID: run.ID,
				EmployeeID:   parseOptionalUUID(in.EmployeeID),
				Name:         in.Name,
				Amount:       in.Amount,
			}
			if err := qtx.CreateBonusLine(ctx, line); err != nil {
				return mapRepositoryError(err)
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Error("create manual payroll run failed",
			zap.String("request_id", rid),
			zap.String("period_label", req.PeriodLabel),
			zap.Error(err),
		)
		return PayrollRunResponse{}, err
	}

	loaded, err := s.repo.FindByIDWithChildren(ctx, run.ID.String())
	if err != nil {
		return PayrollRunResponse{}, mapRepositoryError(err)
	}

	return mapRunToResponse(*loaded), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayrollRunResponse, error) {
	runs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]PayrollRunResponse, len(runs))
	for i, run := range runs {
		res[i] = mapRunToResponse(run)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollRunResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollRunResponse{}, payrollerrors.ErrInvalidRunID
	}

	run, err := s.repo.FindByIDWithChildren(ctx, id)
	if err != nil {
		return PayrollRunResponse{}, mapRepositoryError(err)
	}

	return mapRunToResponse(*run), nil
}

func (s *service) writeRunGeneratedEvent(
	ctx context.Context,
	tx *gorm.DB,
	requestID string,
	run *PayrollRun,
	employeeCount int,
) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.PayrollRunGeneratedEvent{
		EventType:     "payroll.run.generated",
		PayrollRunID:  run.ID.String(),
		PeriodLabel:   run.PeriodLabel,
		PayDate:       run.PayDate.Format("2006-01-02"),
		EmployeeCount: employeeCount,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     requestID,
		AggregateType: "payroll_run",
		AggregateID:   run.ID.String(),
		EventType:     "payroll.run.generated",
		Topic:         events.PayrollRunGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func resolveEmployeeTypes(raw []string) ([]employee.Type, error) {
	if len(raw) == 0 {
		return employee.PayrollTypes(), nil
	}

	types := make([]employee.Type, 0, len(raw))
	for _, s := range raw {
		t, ok := employee.ParseType(s)
		if !ok || !employee.IsPayrollType(t) {
			return nil, payrollerrors.ErrInvalidEmployeeTypeFilter
		}
		types = append(types, t)
	}
	return types, nil
}

func paymentFromEvaluation(runID, employeeID uuid.UUID, ev Evaluation) *EmployeePayment {
	return &EmployeePayment{
		ID:                  uuid.New(),
		PayrollRunID:        runID,
		EmployeeID:          employeeID,
		BaseSalary:          ev.BaseSalary,
		MealVoucher:         ev.MealVoucher,
		ResponsibilityBonus: ev.ResponsibilityBonus,
		PunctualityBonus:    ev.PunctualityBonus,
		YearEndBonus:        ev.YearEndBonus,
		VacationBonus:       ev.VacationBonus,
		SeveranceAccrual:    ev.SeveranceAccrual,
		GrossAmount:         ev.GrossAmount,
		TotalBonuses:        ev.TotalBonuses,
		TotalDeductions:     ev.TotalDeductions,
		NetAmount:           ev.NetAmount,
	}
}

func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

func mapPaymentToResponse(p EmployeePayment) EmployeePaymentResponse {
	return EmployeePaymentResponse{
		ID:                  p.ID.String(),
		EmployeeID:          p.EmployeeID.String(),
		BaseSalary:          p.BaseSalary,
		MealVoucher:         p.MealVoucher,
		ResponsibilityBonus: p.ResponsibilityBonus,
		PunctualityBonus:    p.PunctualityBonus,
		YearEndBonus:        p.YearEndBonus,
		VacationBonus:       p.VacationBonus,
		SeveranceAccrual:    p.SeveranceAccrual,
		VacationDays:        p.VacationDays,
		VacationAmount:      p.VacationAmount,
		GrossAmount:         p.GrossAmount,
		TotalBonuses:        p.TotalBonuses,
		TotalDeductions:     p.TotalDeductions,
		NetAmount:           p.NetAmount,
	}
}

func mapLineToResponse(id uuid.UUID, employeeID *uuid.UUID, name string, amount decimal.Decimal) PayrollLineResponse {
	resp := PayrollLineResponse{
		ID:     id.String(),
		Name:   name,
		Amount: amount,
	}
	if employeeID != nil {
		s := employeeID.String()
		resp.EmployeeID = &s
	}
	return resp
}

func mapRunToResponse(run PayrollRun) PayrollRunResponse {
	resp := PayrollRunResponse{
		ID:          run.ID.String(),
		PeriodLabel: run.PeriodLabel,
		PayDate:     run.PayDate.Format("2006-01-02"),
		Description: run.Description,
		Payments:    make([]EmployeePaymentResponse, len(run.Payments)),
		Deductions:  make([]PayrollLineResponse, len(run.Deductions)),
		Bonuses:     make([]PayrollLineResponse, len(run.Bonuses)),
	}

	for i, p := range run.Payments {
		resp.Payments[i] = mapPaymentToResponse(p)
	}
	for i, l := range run.Deductions {
		resp.Deductions[i] = mapLineToResponse(l.ID, l.EmployeeID, l.Name, l.Amount)
	}
	for i, l := range run.Bonuses {
		resp.Bonuses[i] = mapLineToResponse(l.ID, l.EmployeeID, l.Name, l.Amount)
	}

	return resp
}
