package payroll_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-rms/internal/payroll"
	payrollerrors "go-rms/internal/payroll/errors"
	"go-rms/internal/shared/validation"
)

type fakeService struct {
	createFn     func(ctx context.Context, actorID string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, validation.Result, error)
	updateFn     func(ctx context.Context, id string, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, validation.Result, error)
	getByIDFn    func(ctx context.Context, id string) (payroll.PayrollResponse, error)
	getAllFn     func(ctx context.Context, actorID string, canReadAll bool) ([]payroll.PayrollResponse, error)
	approveFn    func(ctx context.Context, id, actorID, role string) (payroll.PayrollResponse, error)
	payFn        func(ctx context.Context, id string, req payroll.PayPayrollRequest) (payroll.PayrollResponse, error)
	cancelFn     func(ctx context.Context, id string) (payroll.PayrollResponse, error)
	complianceFn func(ctx context.Context, id string) (payroll.ComplianceReport, error)
}

func (f *fakeService) Create(ctx context.Context, actorID string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, validation.Result, error) {
	return f.createFn(ctx, actorID, req)
}
func (f *fakeService) Update(ctx context.Context, id string, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, validation.Result, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeService) GetByID(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) GetAll(ctx context.Context, actorID string, canReadAll bool) ([]payroll.PayrollResponse, error) {
	return f.getAllFn(ctx, actorID, canReadAll)
}
func (f *fakeService) Approve(ctx context.Context, id, actorID, role string) (payroll.PayrollResponse, error) {
	return f.approveFn(ctx, id, actorID, role)
}
func (f *fakeService) Pay(ctx context.Context, id string, req payroll.PayPayrollRequest) (payroll.PayrollResponse, error) {
	return f.payFn(ctx, id, req)
}
func (f *fakeService) Cancel(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return f.cancelFn(ctx, id)
}
func (f *fakeService) Compliance(ctx context.Context, id string) (payroll.ComplianceReport, error) {
	return f.complianceFn(ctx, id)
}

const createBody = `{
	"employeeId": "%s",
	"month": 3,
	"year": 2026,
	"periodStart": "2026-03-01",
	"periodEnd": "2026-03-31",
	"baseSalary": 100000
}`

func TestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employeeID := uuid.New().String()
	actorID := uuid.New().String()

	svc := &fakeService{
		createFn: func(ctx context.Context, actor string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, validation.Result, error) {
			assert.Equal(t, actorID, actor)
			assert.Equal(t, employeeID, req.EmployeeID)
			var result validation.Result
			result.AddWarning("base salary deviates 25% from the contract salary")
			return payroll.PayrollResponse{
				ID:       uuid.New(),
				NetPay:   107_100,
				Status:   payroll.StatusDraft,
				Warnings: result.Warnings,
			}, result, nil
		},
	}
	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", actorID)
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls",
		strings.NewReader(strings.ReplaceAll(createBody, "%s", employeeID)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "\"warnings\"")
}

func TestHandler_Create_ValidationFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		createFn: func(ctx context.Context, actor string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, validation.Result, error) {
			var result validation.Result
			result.AddError("netPay", "net pay 11430 is below the minimum wage of 13000")
			return payroll.PayrollResponse{}, result, payrollerrors.ErrValidationFailed
		},
	}
	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls",
		strings.NewReader(strings.ReplaceAll(createBody, "%s", uuid.New().String())))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "minimum wage")
	assert.Contains(t, w.Body.String(), "\"netPay\"")
}

func TestHandler_ApproveAndPay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	payrollID := uuid.New()

	svc := &fakeService{
		approveFn: func(ctx context.Context, id, actorID, role string) (payroll.PayrollResponse, error) {
			assert.Equal(t, payrollID.String(), id)
			assert.Equal(t, "manager", role)
			return payroll.PayrollResponse{ID: payrollID, Status: payroll.StatusApproved}, nil
		},
		payFn: func(ctx context.Context, id string, req payroll.PayPayrollRequest) (payroll.PayrollResponse, error) {
			assert.Equal(t, "TRANSFER", req.PaymentMethod)
			return payroll.PayrollResponse{ID: payrollID, Status: payroll.StatusPaid}, nil
		},
	}
	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", uuid.New().String())
	c.Set("role", "manager")
	c.Params = gin.Params{{Key: "id", Value: payrollID.String()}}
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/"+payrollID.String()+"/approve", nil)
	h.Approve(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "APPROVED")

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Params = gin.Params{{Key: "id", Value: payrollID.String()}}
	c2.Request = httptest.NewRequest(http.MethodPost, "/payrolls/"+payrollID.String()+"/pay",
		strings.NewReader(`{"paymentMethod":"TRANSFER"}`))
	c2.Request.Header.Set("Content-Type", "application/json")
	h.Pay(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "PAID")
}

func TestHandler_GetAll_Paginates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getAllFn: func(ctx context.Context, actorID string, canReadAll bool) ([]payroll.PayrollResponse, error) {
			assert.True(t, canReadAll)
			return []payroll.PayrollResponse{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}, nil
		},
	}
	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", uuid.New().String())
	c.Set("role", "admin")
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls?page=1&page_size=2", nil)
	h.GetAll(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"meta\"")
}
