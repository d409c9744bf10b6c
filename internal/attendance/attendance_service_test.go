package attendance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	attendanceerrors "go-rms/internal/attendance/errors"
)

type fakeRepo struct {
	withTxFn                func(tx *sql.Tx) Repository
	createFn                func(ctx context.Context, a *Attendance) error
	findByEmployeeAndDateFn func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	findAllByEmployeeFn     func(ctx context.Context, employeeID string) ([]Attendance, error)
	findAllFn               func(ctx context.Context) ([]Attendance, error)
	updateFn                func(ctx context.Context, a *Attendance) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error {
	return f.createFn(ctx, a)
}
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	return f.findByEmployeeAndDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) FindAllByEmployee(ctx context.Context, employeeID string) ([]Attendance, error) {
	return f.findAllByEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Attendance, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) Update(ctx context.Context, a *Attendance) error {
	return f.updateFn(ctx, a)
}

func fixedClock(t *testing.T, value string) func() time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatal(err)
	}
	return func() time.Time { return parsed }
}

func TestService_CheckInAndCheckOut(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()
	ctx := context.Background()

	var saved Attendance
	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }
	repo.updateFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		if saved.ID == uuid.Nil {
			return nil, gorm.ErrRecordNotFound
		}
		return &saved, nil
	}

	svc := NewService(db, repo).(*service)
	svc.now = fixedClock(t, "2026-03-13T09:05:00Z")

	mock.ExpectBegin()
	mock.ExpectCommit()
	inResp, err := svc.CheckIn(ctx, employeeID, CheckInRequest{})
	assert.NoError(t, err)
	assert.Equal(t, string(StatusPresent), inResp.Status)
	assert.NotNil(t, inResp.CheckIn)

	svc.now = fixedClock(t, "2026-03-13T18:05:00Z")

	mock.ExpectBegin()
	mock.ExpectCommit()
	outResp, err := svc.CheckOut(ctx, employeeID, CheckOutRequest{})
	assert.NoError(t, err)
	assert.NotNil(t, outResp.CheckOut)
	assert.InDelta(t, 9.0, outResp.TotalHours, 0.01)
	assert.InDelta(t, 1.0, outResp.OvertimeHours, 0.01)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CheckIn_Late(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, a *Attendance) error { return nil }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo).(*service)
	svc.now = fixedClock(t, "2026-03-13T09:20:00Z")

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.CheckIn(context.Background(), uuid.New().String(), CheckInRequest{})
	assert.NoError(t, err)
	assert.Equal(t, string(StatusLate), resp.Status)
}

func TestService_CheckIn_Duplicate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return &Attendance{ID: uuid.New()}, nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.CheckIn(context.Background(), uuid.New().String(), CheckInRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CheckOut_WithoutCheckIn(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.CheckOut(context.Background(), uuid.New().String(), CheckOutRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrNotCheckedIn)
}

func TestService_CheckOut_MalformedBreakRejected(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	checkIn, _ := time.Parse(time.RFC3339, "2026-03-13T09:00:00Z")
	repo := &fakeRepo{}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return &Attendance{ID: uuid.New(), CheckIn: &checkIn, Status: StatusPresent}, nil
	}
	repo.updateFn = func(ctx context.Context, a *Attendance) error {
		t.Fatal("a record with a malformed break must not be persisted")
		return nil
	}

	svc := NewService(db, repo).(*service)
	svc.now = fixedClock(t, "2026-03-13T18:00:00Z")

	bad := "not-a-timestamp"
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.CheckOut(context.Background(), uuid.New().String(), CheckOutRequest{BreakStart: &bad})
	assert.ErrorIs(t, err, attendanceerrors.ErrValidationFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CreateManual_RejectsInvalid(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New()
	created := false
	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, a *Attendance) error { created = true; return nil }
	repo.findAllByEmployeeFn = func(ctx context.Context, id string) ([]Attendance, error) {
		return []Attendance{{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			Date:       time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
			Status:     StatusPresent,
		}}, nil
	}

	svc := NewService(db, repo).(*service)
	svc.now = fixedClock(t, "2026-03-16T10:00:00Z")

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, result, err := svc.CreateManual(context.Background(), CreateAttendanceRequest{
		EmployeeID: employeeID.String(),
		Date:       "2026-03-13",
		Status:     string(StatusAbsent),
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrValidationFailed)
	assert.False(t, result.IsValid())
	assert.False(t, created, "invalid records must not be persisted")
}

func TestService_CreateManual_KeepsWarnings(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, a *Attendance) error { return nil }
	repo.findAllByEmployeeFn = func(ctx context.Context, id string) ([]Attendance, error) { return nil, nil }

	svc := NewService(db, repo).(*service)
	svc.now = fixedClock(t, "2026-03-16T10:00:00Z")

	checkIn := "2026-03-14T09:00:00Z"
	checkOut := "2026-03-14T17:00:00Z"

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, result, err := svc.CreateManual(context.Background(), CreateAttendanceRequest{
		EmployeeID: uuid.New().String(),
		Date:       "2026-03-14", // Saturday
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		Status:     string(StatusPresent),
	})
	assert.NoError(t, err)
	assert.True(t, result.IsValid())
	assert.Contains(t, resp.Warnings, "present record falls on a weekend")
	assert.InDelta(t, 8.0, resp.TotalHours, 0.01)
}

func TestService_GetAll_ScopedToActor(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	actorID := uuid.New()
	repo := &fakeRepo{}
	repo.findAllByEmployeeFn = func(ctx context.Context, id string) ([]Attendance, error) {
		assert.Equal(t, actorID.String(), id)
		return []Attendance{{ID: uuid.New(), EmployeeID: actorID, Date: time.Now(), Status: StatusPresent}}, nil
	}
	repo.findAllFn = func(ctx context.Context) ([]Attendance, error) {
		return []Attendance{{}, {}}, nil
	}

	svc := NewService(db, repo)

	mine, err := svc.GetAll(context.Background(), actorID.String(), false)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.GetAll(context.Background(), actorID.String(), true)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}
