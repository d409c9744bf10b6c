package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-rms/internal/events"
	"go-rms/internal/messaging/kafka"
	payrollerrors "go-rms/internal/payroll/errors"
)

type fakeRepo struct {
	createFn            func(ctx context.Context, p *Payroll) error
	updateFn            func(ctx context.Context, p *Payroll) error
	replaceDeductionsFn func(ctx context.Context, payrollID string, deductions []Deduction) error
	findByIDFn          func(ctx context.Context, id string) (*Payroll, error)
	findAllFn           func(ctx context.Context) ([]Payroll, error)
	findAllByEmployeeFn func(ctx context.Context, employeeID string) ([]Payroll, error)
	findEmployeeFn      func(ctx context.Context, employeeID string) (*EmployeeRef, error)
	countPresenceFn     func(ctx context.Context, employeeID string, start, end time.Time) (int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, p *Payroll) error {
	return f.createFn(ctx, p)
}
func (f *fakeRepo) Update(ctx context.Context, p *Payroll) error {
	return f.updateFn(ctx, p)
}
func (f *fakeRepo) ReplaceDeductions(ctx context.Context, payrollID string, deductions []Deduction) error {
	return f.replaceDeductionsFn(ctx, payrollID, deductions)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Payroll, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Payroll, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindAllByEmployee(ctx context.Context, employeeID string) ([]Payroll, error) {
	return f.findAllByEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) FindEmployee(ctx context.Context, employeeID string) (*EmployeeRef, error) {
	return f.findEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) CountPresenceDays(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
	return f.countPresenceFn(ctx, employeeID, start, end)
}

type fakeOutbox struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error           { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, reason string) error { return nil }

func baseCreateRequest(employeeID string) CreatePayrollRequest {
	return CreatePayrollRequest{
		EmployeeID:  employeeID,
		Month:       3,
		Year:        2026,
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-31",
		BaseSalary:  100_000,
		Overtime:    10_000,
		Bonuses:     5_000,
		Commissions: 5_000,
		HoursWorked: 176,
	}
}

var serviceNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, repo *fakeRepo, outbox *fakeOutbox) (Service, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	svc := NewService(db, repo, outbox).(*service)
	svc.now = func() time.Time { return serviceNow }
	return svc, mock, func() { db.Close() }
}

func TestService_Create(t *testing.T) {
	employeeID := uuid.New()

	var saved Payroll
	repo := &fakeRepo{
		createFn: func(ctx context.Context, p *Payroll) error { saved = *p; return nil },
		findEmployeeFn: func(ctx context.Context, id string) (*EmployeeRef, error) {
			return &EmployeeRef{ID: id, BaseSalary: 100_000, IsActive: true}, nil
		},
		findAllByEmployeeFn: func(ctx context.Context, id string) ([]Payroll, error) { return nil, nil },
	}
	svc, mock, closeDB := newTestService(t, repo, &fakeOutbox{})
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, result, err := svc.Create(context.Background(), uuid.New().String(), baseCreateRequest(employeeID.String()))
	assert.NoError(t, err)
	assert.True(t, result.IsValid())

	assert.Equal(t, int64(120_000), resp.GrossPay)
	assert.Equal(t, int64(7_200), resp.IncomeTax)
	assert.Equal(t, int64(4_800), resp.SocialSecurity)
	assert.Equal(t, int64(900), resp.Unemployment)
	assert.Equal(t, int64(107_100), resp.NetPay)
	assert.Equal(t, StatusDraft, resp.Status)
	assert.Equal(t, saved.ID, resp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_DuplicatePeriodRejected(t *testing.T) {
	employeeID := uuid.New()

	created := false
	repo := &fakeRepo{
		createFn: func(ctx context.Context, p *Payroll) error { created = true; return nil },
		findEmployeeFn: func(ctx context.Context, id string) (*EmployeeRef, error) {
			return &EmployeeRef{ID: id, BaseSalary: 100_000, IsActive: true}, nil
		},
		findAllByEmployeeFn: func(ctx context.Context, id string) ([]Payroll, error) {
			return []Payroll{{ID: uuid.New(), EmployeeID: employeeID, Month: 3, Year: 2026}}, nil
		},
	}
	svc, mock, closeDB := newTestService(t, repo, &fakeOutbox{})
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, result, err := svc.Create(context.Background(), uuid.New().String(), baseCreateRequest(employeeID.String()))
	assert.ErrorIs(t, err, payrollerrors.ErrValidationFailed)
	assert.False(t, result.IsValid())
	assert.False(t, created, "invalid payrolls must not be persisted")
}

func TestService_Create_WarningsSurvive(t *testing.T) {
	employeeID := uuid.New()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, p *Payroll) error { return nil },
		findEmployeeFn: func(ctx context.Context, id string) (*EmployeeRef, error) {
			// Contract salary far from the requested base salary.
			return &EmployeeRef{ID: id, BaseSalary: 80_000, IsActive: true}, nil
		},
		findAllByEmployeeFn: func(ctx context.Context, id string) ([]Payroll, error) { return nil, nil },
	}
	svc, mock, closeDB := newTestService(t, repo, &fakeOutbox{})
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, result, err := svc.Create(context.Background(), uuid.New().String(), baseCreateRequest(employeeID.String()))
	assert.NoError(t, err)
	assert.True(t, result.IsValid())
	assert.NotEmpty(t, resp.Warnings, "warnings accompany the saved record")
}

func TestService_Approve(t *testing.T) {
	payrollID := uuid.New()
	stored := Payroll{
		ID:         payrollID,
		EmployeeID: uuid.New(),
		Month:      3,
		Year:       2026,
		NetPay:     107_100,
		Status:     StatusDraft,
	}

	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Payroll, error) { return &stored, nil },
		updateFn:   func(ctx context.Context, p *Payroll) error { stored = *p; return nil },
	}
	outbox := &fakeOutbox{}
	svc, mock, closeDB := newTestService(t, repo, outbox)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Approve(context.Background(), payrollID.String(), uuid.New().String(), "manager")
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, resp.Status)
	assert.NotNil(t, resp.ApprovedAt)

	if assert.Len(t, outbox.events, 1) {
		event := outbox.events[0]
		assert.Equal(t, events.PayrollApprovedTopic, event.Topic)

		var payload events.PayrollApprovedEvent
		assert.NoError(t, json.Unmarshal(event.Payload, &payload))
		assert.Equal(t, payrollID.String(), payload.PayrollID)
		assert.Equal(t, int64(107_100), payload.NetCents)
	}
}

func TestService_Approve_Guards(t *testing.T) {
	payrollID := uuid.New()
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Payroll, error) {
			return &Payroll{ID: payrollID, Status: StatusDraft}, nil
		},
	}
	svc, mock, closeDB := newTestService(t, repo, &fakeOutbox{})
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Approve(context.Background(), payrollID.String(), uuid.New().String(), "cashier")
	assert.ErrorIs(t, err, payrollerrors.ErrCannotApprove)

	repo.findByIDFn = func(ctx context.Context, id string) (*Payroll, error) {
		return &Payroll{ID: payrollID, Status: StatusApproved}, nil
	}
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.Approve(context.Background(), payrollID.String(), uuid.New().String(), "manager")
	assert.ErrorIs(t, err, payrollerrors.ErrCannotApprove, "approval is not idempotent")
}

func TestService_Pay(t *testing.T) {
	payrollID := uuid.New()
	stored := Payroll{ID: payrollID, Status: StatusApproved, NetPay: 107_100}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Payroll, error) { return &stored, nil },
		updateFn:   func(ctx context.Context, p *Payroll) error { stored = *p; return nil },
	}
	svc, mock, closeDB := newTestService(t, repo, &fakeOutbox{})
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Pay(context.Background(), payrollID.String(), PayPayrollRequest{PaymentMethod: "TRANSFER"})
	assert.NoError(t, err)
	assert.Equal(t, StatusPaid, resp.Status)
	assert.NotNil(t, resp.PaidAt)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.Pay(context.Background(), payrollID.String(), PayPayrollRequest{PaymentMethod: "TRANSFER"})
	assert.ErrorIs(t, err, payrollerrors.ErrCannotPay, "a paid payroll cannot be paid again")
}

func TestService_Pay_RequiresApproval(t *testing.T) {
	payrollID := uuid.New()
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Payroll, error) {
			return &Payroll{ID: payrollID, Status: StatusDraft}, nil
		},
	}
	svc, mock, closeDB := newTestService(t, repo, &fakeOutbox{})
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Pay(context.Background(), payrollID.String(), PayPayrollRequest{PaymentMethod: "CASH"})
	assert.ErrorIs(t, err, payrollerrors.ErrCannotPay)
}

func TestService_Cancel(t *testing.T) {
	payrollID := uuid.New()
	stored := Payroll{ID: payrollID, Status: StatusApproved}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Payroll, error) { return &stored, nil },
		updateFn:   func(ctx context.Context, p *Payroll) error { stored = *p; return nil },
	}
	svc, mock, closeDB := newTestService(t, repo, &fakeOutbox{})
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Cancel(context.Background(), payrollID.String())
	assert.NoError(t, err)
	assert.Equal(t, StatusCancelled, resp.Status)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.Cancel(context.Background(), payrollID.String())
	assert.ErrorIs(t, err, payrollerrors.ErrCannotCancel)
}

func TestService_Update_OnlyDrafts(t *testing.T) {
	payrollID := uuid.New()
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Payroll, error) {
			return &Payroll{ID: payrollID, Status: StatusApproved}, nil
		},
	}
	svc, mock, closeDB := newTestService(t, repo, &fakeOutbox{})
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, _, err := svc.Update(context.Background(), payrollID.String(), UpdatePayrollRequest{BaseSalary: 100_000})
	assert.ErrorIs(t, err, payrollerrors.ErrNotEditable)
}

func TestService_Compliance(t *testing.T) {
	payrollID := uuid.New()
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Payroll, error) {
			return &Payroll{
				ID:            payrollID,
				EmployeeID:    uuid.New(),
				PeriodStart:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				PeriodEnd:     time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
				NetPay:        107_100,
				GrossPay:      120_000,
				OvertimeHours: 10,
			}, nil
		},
		countPresenceFn: func(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
			return 3, nil // 3 of 5 weekdays
		},
	}
	svc, _, closeDB := newTestService(t, repo, &fakeOutbox{})
	defer closeDB()

	report, err := svc.Compliance(context.Background(), payrollID.String())
	assert.NoError(t, err)
	assert.True(t, report.Compliant)
	assert.NotEmpty(t, report.Recommendations, "60% attendance is flagged")
}
