package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-rms/internal/attendance/errors"
	"go-rms/internal/shared/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (AttendanceResponse, error)
	CreateManual(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, validation.Result, error)
	GetAll(ctx context.Context, actorID string, canReadAll bool) ([]AttendanceResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
	now  func() time.Time
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo, now: time.Now}
}

func (s *service) CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)

	existing, err := s.findToday(ctx, qtx, employeeID, today)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if err := CanCheckIn(existing); err != nil {
		return AttendanceResponse{}, err
	}

	row := &Attendance{
		ID:         uuid.New(),
		EmployeeID: empID,
		Date:       today,
		CheckIn:    &now,
		Status:     CalculateStatus(&now, nil, StatusPresent),
		Notes:      req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row, nil), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)

	row, err := s.findToday(ctx, qtx, employeeID, today)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if err := CanCheckOut(row); err != nil {
		return AttendanceResponse{}, err
	}

	row.CheckOut = &now
	// A malformed break timestamp must fail the request, not silently turn
	// the shift into one without a break.
	breakStart, err := parseOptionalTime(req.BreakStart)
	if err != nil {
		return AttendanceResponse{}, err
	}
	breakEnd, err := parseOptionalTime(req.BreakEnd)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if breakStart != nil {
		row.BreakStart = breakStart
	}
	if breakEnd != nil {
		row.BreakEnd = breakEnd
	}
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	row.Status = CalculateStatus(row.CheckIn, row.CheckOut, row.Status)
	row.TotalHours, row.OvertimeHours = CalculateHours(row.CheckIn, row.CheckOut, row.BreakStart, row.BreakEnd)

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row, nil), nil
}

// CreateManual runs the full rule set against the employee's history. A
// blocking violation aborts the write; warnings ride along with the saved
// record so the operator always sees them.
func (s *service) CreateManual(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, validation.Result, error) {
	rec, err := s.parseManualRequest(req)
	if err != nil {
		return AttendanceResponse{}, validation.Result{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, validation.Result{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	history, err := qtx.FindAllByEmployee(ctx, rec.EmployeeID.String())
	if err != nil {
		return AttendanceResponse{}, validation.Result{}, err
	}

	result := ValidateRecord(*rec, history, s.now().UTC())
	if !result.IsValid() {
		return AttendanceResponse{}, result, attendanceerrors.ErrValidationFailed
	}

	rec.TotalHours, rec.OvertimeHours = CalculateHours(rec.CheckIn, rec.CheckOut, rec.BreakStart, rec.BreakEnd)

	if err := qtx.Create(ctx, rec); err != nil {
		return AttendanceResponse{}, result, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, result, err
	}
	return mapToResponse(*rec, result.Warnings), result, nil
}

func (s *service) GetAll(ctx context.Context, actorID string, canReadAll bool) ([]AttendanceResponse, error) {
	var (
		rows []Attendance
		err  error
	)
	if canReadAll {
		rows, err = s.repo.FindAll(ctx)
	} else {
		if _, parseErr := uuid.Parse(actorID); parseErr != nil {
			return nil, attendanceerrors.ErrInvalidEmployeeID
		}
		rows, err = s.repo.FindAllByEmployee(ctx, actorID)
	}
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r, nil)
	}
	return res, nil
}

func (s *service) findToday(ctx context.Context, repo Repository, employeeID string, today time.Time) (*Attendance, error) {
	row, err := repo.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

func (s *service) parseManualRequest(req CreateAttendanceRequest) (*Attendance, error) {
	empID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, attendanceerrors.ErrValidationFailed
	}

	rec := &Attendance{
		ID:         uuid.New(),
		EmployeeID: empID,
		Date:       date,
		Status:     Status(req.Status),
		Notes:      req.Notes,
	}

	for _, field := range []struct {
		raw  *string
		dest **time.Time
	}{
		{req.CheckIn, &rec.CheckIn},
		{req.CheckOut, &rec.CheckOut},
		{req.BreakStart, &rec.BreakStart},
		{req.BreakEnd, &rec.BreakEnd},
	} {
		t, err := parseOptionalTime(field.raw)
		if err != nil {
			return nil, err
		}
		if t != nil {
			*field.dest = t
		}
	}

	return rec, nil
}

func parseOptionalTime(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, attendanceerrors.ErrValidationFailed
	}
	return &t, nil
}

func mapToResponse(a Attendance, warnings []string) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            a.ID.String(),
		EmployeeID:    a.EmployeeID.String(),
		Date:          a.Date.Format("2006-01-02"),
		Status:        string(a.Status),
		TotalHours:    a.TotalHours,
		OvertimeHours: a.OvertimeHours,
		Notes:         a.Notes,
		Warnings:      warnings,
	}
	for _, pair := range []struct {
		src  *time.Time
		dest **string
	}{
		{a.CheckIn, &resp.CheckIn},
		{a.CheckOut, &resp.CheckOut},
		{a.BreakStart, &resp.BreakStart},
		{a.BreakEnd, &resp.BreakEnd},
	} {
		if pair.src != nil {
			v := pair.src.Format(time.RFC3339)
			*pair.dest = &v
		}
	}
	return resp
}
