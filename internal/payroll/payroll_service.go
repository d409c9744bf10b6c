package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-rms/internal/events"
	"go-rms/internal/messaging/kafka"
	payrollerrors "go-rms/internal/payroll/errors"
	"go-rms/internal/shared/contextutil"
	"go-rms/internal/shared/validation"

	"github.com/google/uuid"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreatePayrollRequest) (PayrollResponse, validation.Result, error)
	Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, validation.Result, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	GetAll(ctx context.Context, actorID string, canReadAll bool) ([]PayrollResponse, error)
	Approve(ctx context.Context, id, actorID, role string) (PayrollResponse, error)
	Pay(ctx context.Context, id string, req PayPayrollRequest) (PayrollResponse, error)
	Cancel(ctx context.Context, id string) (PayrollResponse, error)
	Compliance(ctx context.Context, id string) (ComplianceReport, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository) Service {
	return &service{db: db, repo: repo, outbox: outbox, now: time.Now}
}

// Create computes the full salary breakdown, validates it against the
// employee's contract and payroll history, and persists it as a draft.
// A blocking validation error aborts the write; warnings are saved with
// the record and returned to the caller.
func (s *service) Create(ctx context.Context, actorID string, req CreatePayrollRequest) (PayrollResponse, validation.Result, error) {
	creator, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, validation.Result{}, payrollerrors.ErrValidationFailed
	}

	rec, err := buildRecord(req)
	if err != nil {
		return PayrollResponse{}, validation.Result{}, err
	}
	rec.CreatedBy = creator

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, validation.Result{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employee, err := qtx.FindEmployee(ctx, rec.EmployeeID.String())
	if err != nil {
		return PayrollResponse{}, validation.Result{}, mapRepositoryError(err)
	}

	history, err := qtx.FindAllByEmployee(ctx, rec.EmployeeID.String())
	if err != nil {
		return PayrollResponse{}, validation.Result{}, err
	}

	result := ValidateRecord(*rec, employee.BaseSalary, history, s.now().UTC())
	if !result.IsValid() {
		return PayrollResponse{}, result, payrollerrors.ErrValidationFailed
	}

	if err := qtx.Create(ctx, rec); err != nil {
		return PayrollResponse{}, result, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, result, err
	}
	return mapToResponse(*rec, result.Warnings), result, nil
}

// Update recomputes and revalidates a draft. Approved, paid, and
// cancelled payrolls are immutable.
func (s *service) Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, validation.Result, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, validation.Result{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, validation.Result{}, mapRepositoryError(err)
	}
	if rec.Status != StatusDraft {
		return PayrollResponse{}, validation.Result{}, payrollerrors.ErrNotEditable
	}

	rec.BaseSalary = req.BaseSalary
	rec.Overtime = req.Overtime
	rec.Bonuses = req.Bonuses
	rec.Commissions = req.Commissions
	rec.HoursWorked = req.HoursWorked
	rec.OvertimeHours = req.OvertimeHours
	rec.Notes = req.Notes
	rec.Deductions = buildDeductions(rec.ID, req.Deductions)
	recompute(rec)

	employee, err := qtx.FindEmployee(ctx, rec.EmployeeID.String())
	if err != nil {
		return PayrollResponse{}, validation.Result{}, mapRepositoryError(err)
	}

	history, err := qtx.FindAllByEmployee(ctx, rec.EmployeeID.String())
	if err != nil {
		return PayrollResponse{}, validation.Result{}, err
	}

	result := ValidateRecord(*rec, employee.BaseSalary, history, s.now().UTC())
	if !result.IsValid() {
		return PayrollResponse{}, result, payrollerrors.ErrValidationFailed
	}

	if err := qtx.ReplaceDeductions(ctx, rec.ID.String(), rec.Deductions); err != nil {
		return PayrollResponse{}, result, err
	}
	if err := qtx.Update(ctx, rec); err != nil {
		return PayrollResponse{}, result, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, result, err
	}
	return mapToResponse(*rec, result.Warnings), result, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*rec, nil), nil
}

func (s *service) GetAll(ctx context.Context, actorID string, canReadAll bool) ([]PayrollResponse, error) {
	var (
		rows []Payroll
		err  error
	)
	if canReadAll {
		rows, err = s.repo.FindAll(ctx)
	} else {
		rows, err = s.repo.FindAllByEmployee(ctx, actorID)
	}
	if err != nil {
		return nil, err
	}

	res := make([]PayrollResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r, nil)
	}
	return res, nil
}

// Approve moves a draft to APPROVED and records the approval event in
// the outbox within the same transaction.
func (s *service) Approve(ctx context.Context, id, actorID, role string) (PayrollResponse, error) {
	approver, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrCannotApprove
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if !CanApprove(role, rec.Status) {
		return PayrollResponse{}, payrollerrors.ErrCannotApprove
	}

	now := s.now().UTC()
	rec.Status = StatusApproved
	rec.ApprovedBy = &approver
	rec.ApprovedAt = &now

	if err := qtx.Update(ctx, rec); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if err := s.enqueuePayrollApproved(ctx, tx, rec); err != nil {
		return PayrollResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*rec, nil), nil
}

func (s *service) Pay(ctx context.Context, id string, req PayPayrollRequest) (PayrollResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if !CanPay(rec.Status, rec.PaidAt != nil) {
		return PayrollResponse{}, payrollerrors.ErrCannotPay
	}

	now := s.now().UTC()
	rec.Status = StatusPaid
	rec.PaidAt = &now
	rec.PaymentMethod = &req.PaymentMethod

	if err := qtx.Update(ctx, rec); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*rec, nil), nil
}

func (s *service) Cancel(ctx context.Context, id string) (PayrollResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if !rec.Status.CanTransition(StatusCancelled) {
		return PayrollResponse{}, payrollerrors.ErrCannotCancel
	}

	rec.Status = StatusCancelled

	if err := qtx.Update(ctx, rec); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*rec, nil), nil
}

// Compliance audits a payroll against labor rules and the employee's
// attendance for the same period.
func (s *service) Compliance(ctx context.Context, id string) (ComplianceReport, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ComplianceReport{}, mapRepositoryError(err)
	}

	rate := -1.0
	if scheduled := workingDays(rec.PeriodStart, rec.PeriodEnd); scheduled > 0 {
		present, err := s.repo.CountPresenceDays(ctx, rec.EmployeeID.String(), rec.PeriodStart, rec.PeriodEnd)
		if err != nil {
			return ComplianceReport{}, err
		}
		rate = float64(present) / float64(scheduled)
	}

	return CheckLaborCompliance(*rec, rate), nil
}

func (s *service) enqueuePayrollApproved(ctx context.Context, tx *sql.Tx, rec *Payroll) error {
	payload, err := json.Marshal(events.PayrollApprovedEvent{
		EventType:  "payroll.approved",
		PayrollID:  rec.ID.String(),
		EmployeeID: rec.EmployeeID.String(),
		Month:      rec.Month,
		Year:       rec.Year,
		NetCents:   rec.NetPay,
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll",
		AggregateID:   rec.ID.String(),
		EventType:     "payroll.approved",
		Topic:         events.PayrollApprovedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func buildRecord(req CreatePayrollRequest) (*Payroll, error) {
	empID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, payrollerrors.ErrValidationFailed
	}

	start, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		return nil, payrollerrors.ErrValidationFailed
	}
	end, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		return nil, payrollerrors.ErrValidationFailed
	}

	rec := &Payroll{
		ID:            uuid.New(),
		EmployeeID:    empID,
		Month:         req.Month,
		Year:          req.Year,
		PeriodStart:   start,
		PeriodEnd:     end,
		BaseSalary:    req.BaseSalary,
		Overtime:      req.Overtime,
		Bonuses:       req.Bonuses,
		Commissions:   req.Commissions,
		HoursWorked:   req.HoursWorked,
		OvertimeHours: req.OvertimeHours,
		Status:        StatusDraft,
		Notes:         req.Notes,
	}
	rec.Deductions = buildDeductions(rec.ID, req.Deductions)
	recompute(rec)
	return rec, nil
}

func buildDeductions(payrollID uuid.UUID, reqs []DeductionRequest) []Deduction {
	out := make([]Deduction, len(reqs))
	for i, d := range reqs {
		out[i] = Deduction{
			ID:        uuid.New(),
			PayrollID: payrollID,
			Name:      d.Name,
			Amount:    d.Amount,
		}
	}
	return out
}

func recompute(rec *Payroll) {
	gross := CalculateGross(SalaryInput{
		BaseSalary:  rec.BaseSalary,
		Overtime:    rec.Overtime,
		Bonuses:     rec.Bonuses,
		Commissions: rec.Commissions,
	})
	taxes := CalculateTaxes(gross)

	rec.GrossPay = gross
	rec.IncomeTax = taxes.IncomeTax
	rec.SocialSecurity = taxes.SocialSecurity
	rec.Unemployment = taxes.Unemployment
	rec.NetPay = CalculateNet(gross, taxes, rec.Deductions)
}

// workingDays counts the weekdays in [start, end].
func workingDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

func mapToResponse(p Payroll, warnings []string) PayrollResponse {
	resp := PayrollResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		Month:          p.Month,
		Year:           p.Year,
		PeriodStart:    p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:      p.PeriodEnd.Format("2006-01-02"),
		BaseSalary:     p.BaseSalary,
		Overtime:       p.Overtime,
		Bonuses:        p.Bonuses,
		Commissions:    p.Commissions,
		HoursWorked:    p.HoursWorked,
		OvertimeHours:  p.OvertimeHours,
		GrossPay:       p.GrossPay,
		IncomeTax:      p.IncomeTax,
		SocialSecurity: p.SocialSecurity,
		Unemployment:   p.Unemployment,
		NetPay:         p.NetPay,
		Status:         p.Status,
		PaymentMethod:  p.PaymentMethod,
		Notes:          p.Notes,
		ApprovedAt:     p.ApprovedAt,
		PaidAt:         p.PaidAt,
		CreatedAt:      p.CreatedAt,
		Warnings:       warnings,
		Deductions:     make([]DeductionResponse, len(p.Deductions)),
	}
	for i, d := range p.Deductions {
		resp.Deductions[i] = DeductionResponse{Name: d.Name, Amount: d.Amount}
	}
	return resp
}
