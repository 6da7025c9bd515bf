package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"school-admin/internal/payroll"
	payrollerrors "school-admin/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	generateFn     func(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollRunResponse, error)
	createManualFn func(ctx context.Context, req payroll.CreatePayrollRunRequest) (payroll.PayrollRunResponse, error)
	getAllFn       func(ctx context.Context) ([]payroll.PayrollRunResponse, error)
	getByIDFn      func(ctx context.Context, id string) (payroll.PayrollRunResponse, error)
}

func (f *fakePayrollService) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollRunResponse, error) {
	return f.generateFn(ctx, req)
}

func (f *fakePayrollService) CreateManual(ctx context.Context, req payroll.CreatePayrollRunRequest) (payroll.PayrollRunResponse, error) {
	return f.createManualFn(ctx, req)
}

func (f *fakePayrollService) GetAll(ctx context.Context) ([]payroll.PayrollRunResponse, error) {
	return f.getAllFn(ctx)
}

func (f *fakePayrollService) GetByID(ctx context.Context, id string) (payroll.PayrollRunResponse, error) {
	return f.getByIDFn(ctx, id)
}

func TestPayrollHandler_Generate(t *testing.T) {
	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollRunResponse, error) {
			assert.Equal(t, "2024-06-15", req.PayDate)
			assert.Equal(t, []string{"teacher"}, req.EmployeeTypes)
			return payroll.PayrollRunResponse{
				ID:          uuid.New().String(),
				PeriodLabel: "First Biweekly June 2024",
				PayDate:     req.PayDate,
			}, nil
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"pay_date":"2024-06-15","employee_types":["teacher"]}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll-runs/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayrollHandler_Generate_Conflict(t *testing.T) {
	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollRunResponse, error) {
			return payroll.PayrollRunResponse{}, payrollerrors.ErrPeriodAlreadyGenerated
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"pay_date":"2024-06-15"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll-runs/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestPayrollHandler_Generate_BindFailure(t *testing.T) {
	h := payroll.NewHandler(&fakePayrollService{}, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/payroll-runs/generate", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestPayrollHandler_GetById_NotFound(t *testing.T) {
	svc := &fakePayrollService{
		getByIDFn: func(ctx context.Context, id string) (payroll.PayrollRunResponse, error) {
			return payroll.PayrollRunResponse{}, payrollerrors.ErrRunNotFound
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := uuid.New().String()
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll-runs/"+id, nil)
	c.Params = []gin.Param{{Key: "id", Value: id}}

	h.GetById(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestPayrollHandler_Create(t *testing.T) {
	employeeID := uuid.New().String()
	svc := &fakePayrollService{
		createManualFn: func(ctx context.Context, req payroll.CreatePayrollRunRequest) (payroll.PayrollRunResponse, error) {
			assert.Equal(t, "First Biweekly June 2024", req.PeriodLabel)
			assert.Len(t, req.Employees, 1)
			return payroll.PayrollRunResponse{ID: uuid.New().String(), PeriodLabel: req.PeriodLabel}, nil
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{
		"period_label": "First Biweekly June 2024",
		"pay_date": "2024-06-15",
		"employees": [{"employee_id": "` + employeeID + `", "base_salary": "500"}]
	}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll-runs", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}
