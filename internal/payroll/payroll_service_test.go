package payroll_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"school-admin/internal/benefitconfig"
	"school-admin/internal/employee"
	"school-admin/internal/events"
	"school-admin/internal/messaging/kafka"
	"school-admin/internal/payroll"
	payrollerrors "school-admin/internal/payroll/errors"
	"school-admin/internal/payrollconfig"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakePayrollRepository struct {
	createRunFn            func(ctx context.Context, run *payroll.PayrollRun) error
	createPaymentFn        func(ctx context.Context, payment *payroll.EmployeePayment) error
	createDeductionLineFn  func(ctx context.Context, line *payroll.PayrollDeductionLine) error
	createBonusLineFn      func(ctx context.Context, line *payroll.PayrollBonusLine) error
	existsByPeriodLabelFn  func(ctx context.Context, periodLabel string) (bool, error)
	findAllFn              func(ctx context.Context) ([]payroll.PayrollRun, error)
	findByIDWithChildrenFn func(ctx context.Context, id string) (*payroll.PayrollRun, error)
}

func (f *fakePayrollRepository) WithTx(tx *gorm.DB) payroll.Repository { return f }

func (f *fakePayrollRepository) CreateRun(ctx context.Context, run *payroll.PayrollRun) error {
	if f.createRunFn != nil {
		return f.createRunFn(ctx, run)
	}
	return nil
}

func (f *fakePayrollRepository) CreatePayment(ctx context.Context, payment *payroll.EmployeePayment) error {
	if f.createPaymentFn != nil {
		return f.createPaymentFn(ctx, payment)
	}
	return nil
}

func (f *fakePayrollRepository) CreateDeductionLine(ctx context.Context, line *payroll.PayrollDeductionLine) error {
	if f.createDeductionLineFn != nil {
		return f.createDeductionLineFn(ctx, line)
	}
	return nil
}

func (f *fakePayrollRepository) CreateBonusLine(ctx context.Context, line *payroll.PayrollBonusLine) error {
	if f.createBonusLineFn != nil {
		return f.createBonusLineFn(ctx, line)
	}
	return nil
}

func (f *fakePayrollRepository) ExistsByPeriodLabel(ctx context.Context, periodLabel string) (bool, error) {
	if f.existsByPeriodLabelFn != nil {
		return f.existsByPeriodLabelFn(ctx, periodLabel)
	}
	return false, nil
}

func (f *fakePayrollRepository) FindAll(ctx context.Context) ([]payroll.PayrollRun, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakePayrollRepository) FindByIDWithChildren(ctx context.Context, id string) (*payroll.PayrollRun, error) {
	if f.findByIDWithChildrenFn != nil {
		return f.findByIDWithChildrenFn(ctx, id)
	}
	return &payroll.PayrollRun{ID: uuid.MustParse(id)}, nil
}

type fakeConfigRepository struct {
	payrollconfig.Repository
	findActiveFn func(ctx context.Context) (*payrollconfig.PayrollConfiguration, error)
}

func (f *fakeConfigRepository) WithTx(tx *gorm.DB) payrollconfig.Repository { return f }

func (f *fakeConfigRepository) FindActive(ctx context.Context) (*payrollconfig.PayrollConfiguration, error) {
	if f.findActiveFn != nil {
		return f.findActiveFn(ctx)
	}
	cfg := defaultConfig()
	return &cfg, nil
}

type fakeBenefitRepository struct {
	benefitconfig.Repository
	listActiveForTypeFn func(ctx context.Context, empType employee.Type) ([]benefitconfig.BenefitConfiguration, error)
}

func (f *fakeBenefitRepository) WithTx(tx *gorm.DB) benefitconfig.Repository { return f }

func (f *fakeBenefitRepository) ListActiveForType(ctx context.Context, empType employee.Type) ([]benefitconfig.BenefitConfiguration, error) {
	if f.listActiveForTypeFn != nil {
		return f.listActiveForTypeFn(ctx, empType)
	}
	return nil, nil
}

type fakeEmployeeRepository struct {
	employee.Repository
	findByIDFn    func(ctx context.Context, id string) (*employee.Employee, error)
	listByTypesFn func(ctx context.Context, types []employee.Type) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *gorm.DB) employee.Repository { return f }

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &employee.Employee{ID: uuid.MustParse(id), Type: employee.TypeTeacher}, nil
}

func (f *fakeEmployeeRepository) ListByTypes(ctx context.Context, types []employee.Type) ([]employee.Employee, error) {
	if f.listByTypesFn != nil {
		return f.listByTypesFn(ctx, types)
	}
	return nil, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func defaultConfig() payrollconfig.PayrollConfiguration {
	return payrollconfig.PayrollConfiguration{
		ID:                 uuid.New(),
		BiweeklyDays:       15,
		FirstPayDay:        15,
		SecondPayDay:       30,
		SocialSecurityRate: dec("4"),
		IncomeTaxRate:      dec("1"),
		Active:             true,
	}
}

type payrollServiceDeps struct {
	sqlMock      sqlmock.Sqlmock
	service      payroll.Service
	repo         *fakePayrollRepository
	configRepo   *fakeConfigRepository
	benefitRepo  *fakeBenefitRepository
	employeeRepo *fakeEmployeeRepository
	outbox       *fakeOutboxRepository
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	deps := &payrollServiceDeps{
		sqlMock:      sqlMock,
		repo:         &fakePayrollRepository{},
		configRepo:   &fakeConfigRepository{},
		benefitRepo:  &fakeBenefitRepository{},
		employeeRepo: &fakeEmployeeRepository{},
		outbox:       &fakeOutboxRepository{},
	}
	deps.service = payroll.NewServiceWithOutbox(
		gormDB, deps.repo, deps.configRepo, deps.benefitRepo, deps.employeeRepo, deps.outbox,
	)
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestPayrollService_Generate(t *testing.T) {
	ctx := context.Background()
	teacherID := uuid.New()
	laborerID := uuid.New()

	deps := setupPayrollServiceTest(t)
	expectTx(t, deps.sqlMock, true)

	deps.employeeRepo.listByTypesFn = func(ctx context.Context, types []employee.Type) ([]employee.Employee, error) {
		assert.ElementsMatch(t, employee.PayrollTypes(), types)
		return []employee.Employee{
			{ID: teacherID, Type: employee.TypeTeacher},
			{ID: laborerID, Type: employee.TypeLaborer},
		}, nil
	}
	deps.benefitRepo.listActiveForTypeFn = func(ctx context.Context, empType employee.Type) ([]benefitconfig.BenefitConfiguration, error) {
		return []benefitconfig.BenefitConfiguration{
			benefit(benefitconfig.TypeMealVoucher, "Meal Voucher", "all", "40", "0"),
		}, nil
	}

	var createdRun *payroll.PayrollRun
	var payments []*payroll.EmployeePayment
	var bonusLines []*payroll.PayrollBonusLine
	var deductionLines []*payroll.PayrollDeductionLine
	var outboxEvent *kafka.OutboxEvent

	deps.repo.createRunFn = func(ctx context.Context, run *payroll.PayrollRun) error {
		createdRun = run
		return nil
	}
	deps.repo.createPaymentFn = func(ctx context.Context, payment *payroll.EmployeePayment) error {
		payments = append(payments, payment)
		return nil
	}
	deps.repo.createBonusLineFn = func(ctx context.Context, line *payroll.PayrollBonusLine) error {
		bonusLines = append(bonusLines, line)
		return nil
	}
	deps.repo.createDeductionLineFn = func(ctx context.Context, line *payroll.PayrollDeductionLine) error {
		deductionLines = append(deductionLines, line)
		return nil
	}
	deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
		outboxEvent = &event
		return nil
	}
	deps.repo.findByIDWithChildrenFn = func(ctx context.Context, id string) (*payroll.PayrollRun, error) {
		run := *createdRun
		for _, p := range payments {
			run.Payments = append(run.Payments, *p)
		}
		return &run, nil
	}

	resp, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{PayDate: "2024-06-15"})

	assert.NoError(t, err)
	assert.Equal(t, "First Biweekly June 2024", resp.PeriodLabel)
	assert.Len(t, resp.Payments, 2)

	// Teacher: 500 base, 40 voucher, 25 deductions.
	assert.True(t, payments[0].NetAmount.Equal(dec("515")))
	// Laborer: 300 base, 40 voucher, 15 deductions.
	assert.True(t, payments[1].NetAmount.Equal(dec("325")))

	// One bonus line each, two statutory deduction lines each.
	assert.Len(t, bonusLines, 2)
	assert.Len(t, deductionLines, 4)
	assert.Equal(t, teacherID, *bonusLines[0].EmployeeID)

	assert.NotNil(t, outboxEvent)
	assert.Equal(t, events.PayrollRunGeneratedTopic, outboxEvent.Topic)
	var payload events.PayrollRunGeneratedEvent
	assert.NoError(t, json.Unmarshal(outboxEvent.Payload, &payload))
	assert.Equal(t, createdRun.ID.String(), payload.PayrollRunID)
	assert.Equal(t, 2, payload.EmployeeCount)

	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Generate_NoActiveConfiguration(t *testing.T) {
	deps := setupPayrollServiceTest(t)
	deps.configRepo.findActiveFn = func(ctx context.Context) (*payrollconfig.PayrollConfiguration, error) {
		return nil, gorm.ErrRecordNotFound
	}

	_, err := deps.service.Generate(context.Background(), payroll.GeneratePayrollRequest{PayDate: "2024-06-15"})

	assert.ErrorIs(t, err, payrollerrors.ErrNoActiveConfiguration)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Generate_DuplicatePeriod(t *testing.T) {
	deps := setupPayrollServiceTest(t)
	deps.repo.existsByPeriodLabelFn = func(ctx context.Context, periodLabel string) (bool, error) {
		assert.Equal(t, "First Biweekly June 2024", periodLabel)
		return true, nil
	}

	_, err := deps.service.Generate(context.Background(), payroll.GeneratePayrollRequest{PayDate: "2024-06-15"})

	assert.ErrorIs(t, err, payrollerrors.ErrPeriodAlreadyGenerated)
	// No transaction is opened when the pre-check fails.
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Generate_InvalidInput(t *testing.T) {
	deps := setupPayrollServiceTest(t)

	_, err := deps.service.Generate(context.Background(), payroll.GeneratePayrollRequest{PayDate: "15-06-2024"})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidDateFormat)

	_, err = deps.service.Generate(context.Background(), payroll.GeneratePayrollRequest{
		PayDate:       "2024-06-15",
		EmployeeTypes: []string{"estudiante"},
	})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidEmployeeTypeFilter)

	// "other" is a known type but not a payroll one.
	_, err = deps.service.Generate(context.Background(), payroll.GeneratePayrollRequest{
		PayDate:       "2024-06-15",
		EmployeeTypes: []string{"other"},
	})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidEmployeeTypeFilter)

	// Day 20 matches neither pay day nor the last day of June.
	_, err = deps.service.Generate(context.Background(), payroll.GeneratePayrollRequest{PayDate: "2024-06-20"})
	assert.Error(t, err)
}

func TestPayrollService_Generate_RollbackOnPaymentFailure(t *testing.T) {
	deps := setupPayrollServiceTest(t)
	expectTx(t, deps.sqlMock, false)

	deps.employeeRepo.listByTypesFn = func(ctx context.Context, types []employee.Type) ([]employee.Employee, error) {
		return []employee.Employee{
			{ID: uuid.New(), Type: employee.TypeTeacher},
			{ID: uuid.New(), Type: employee.TypeLaborer},
		}, nil
	}

	boom := errors.New("payment write failed")
	var paymentCalls int
	deps.repo.createPaymentFn = func(ctx context.Context, payment *payroll.EmployeePayment) error {
		paymentCalls++
		if paymentCalls == 2 {
			return boom
		}
		return nil
	}

	_, err := deps.service.Generate(context.Background(), payroll.GeneratePayrollRequest{PayDate: "2024-06-15"})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_CreateManual(t *testing.T) {
	employeeID := uuid.New()

	deps := setupPayrollServiceTest(t)
	expectTx(t, deps.sqlMock, true)

	var payment *payroll.EmployeePayment
	deps.repo.createPaymentFn = func(ctx context.Context, p *payroll.EmployeePayment) error {
		payment = p
		return nil
	}
	deps.repo.findByIDWithChildrenFn = func(ctx context.Context, id string) (*payroll.PayrollRun, error) {
		return &payroll.PayrollRun{
			ID:          uuid.MustParse(id),
			PeriodLabel: "First Biweekly June 2024",
			PayDate:     time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			Payments:    []payroll.EmployeePayment{*payment},
		}, nil
	}

	resp, err := deps.service.CreateManual(context.Background(), payroll.CreatePayrollRunRequest{
		PeriodLabel: "First Biweekly June 2024",
		PayDate:     "2024-06-15",
		Employees: []payroll.ManualEmployeePaymentInput{
			{
				EmployeeID:      employeeID.String(),
				BaseSalary:      dec("500"),
				TotalBonuses:    dec("90"),
				TotalDeductions: dec("25"),
			},
		},
	})

	assert.NoError(t, err)
	assert.True(t, payment.NetAmount.Equal(dec("565")))
	assert.Len(t, resp.Payments, 1)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_CreateManual_InvalidEmployee(t *testing.T) {
	nonPayrollID := uuid.New()

	deps := setupPayrollServiceTest(t)
	deps.employeeRepo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return &employee.Employee{ID: nonPayrollID, Type: employee.TypeOther}, nil
	}

	_, err := deps.service.CreateManual(context.Background(), payroll.CreatePayrollRunRequest{
		PeriodLabel: "First Biweekly June 2024",
		PayDate:     "2024-06-15",
		Employees: []payroll.ManualEmployeePaymentInput{
			{EmployeeID: nonPayrollID.String(), BaseSalary: dec("500")},
		},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), nonPayrollID.String())
	// Nothing reached the storage layer.
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_CreateManual_MissingEmployee(t *testing.T) {
	missingID := uuid.New()

	deps := setupPayrollServiceTest(t)
	deps.employeeRepo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return nil, gorm.ErrRecordNotFound
	}

	_, err := deps.service.CreateManual(context.Background(), payroll.CreatePayrollRunRequest{
		PeriodLabel: "First Biweekly June 2024",
		PayDate:     "2024-06-15",
		Employees: []payroll.ManualEmployeePaymentInput{
			{EmployeeID: missingID.String(), BaseSalary: dec("500")},
		},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), missingID.String())
}

func TestPayrollService_CreateManual_DuplicateEmployee(t *testing.T) {
	employeeID := uuid.New().String()

	deps := setupPayrollServiceTest(t)

	_, err := deps.service.CreateManual(context.Background(), payroll.CreatePayrollRunRequest{
		PeriodLabel: "First Biweekly June 2024",
		PayDate:     "2024-06-15",
		Employees: []payroll.ManualEmployeePaymentInput{
			{EmployeeID: employeeID, BaseSalary: dec("500")},
			{EmployeeID: employeeID, BaseSalary: dec("500")},
		},
	})

	assert.ErrorIs(t, err, payrollerrors.ErrDuplicateEmployeePayment)
}

func TestPayrollService_GetByID_InvalidID(t *testing.T) {
	deps := setupPayrollServiceTest(t)

	_, err := deps.service.GetByID(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, payrollerrors.ErrInvalidRunID)
}
