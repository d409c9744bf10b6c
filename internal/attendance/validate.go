package attendance

import (
	"fmt"
	"time"

	attendanceerrors "go-rms/internal/attendance/errors"
	"go-rms/internal/shared/validation"

	"github.com/google/uuid"
)

// Shift policy constants. The nominal working day runs 09:00-18:00 with a
// 15 minute grace window on both ends.
const (
	nominalStartHour = 9
	nominalEndHour   = 18
	graceMinutes     = 15

	maxShiftHours    = 12.0
	standardDayHours = 8.0
	minBreakMinutes  = 30.0
	maxBreakMinutes  = 120.0
)

// ValidateRecord checks a prospective record for internal consistency and
// for conflicts against the employee's existing history. Every rule runs;
// nothing short-circuits, so the caller always sees the complete picture.
func ValidateRecord(rec Attendance, existing []Attendance, now time.Time) validation.Result {
	var res validation.Result

	validateRequired(&res, rec)
	if rec.Status.RequiresTimes() {
		validateTimes(&res, rec)
	}
	validateDate(&res, rec, now)
	validateConflicts(&res, rec, existing)

	return res
}

func validateRequired(res *validation.Result, rec Attendance) {
	if rec.EmployeeID == uuid.Nil {
		res.AddError("employeeId", "employee is required")
	}
	if rec.Date.IsZero() {
		res.AddError("date", "date is required")
	}
	if rec.Status == "" {
		res.AddError("status", "status is required")
	} else if !rec.Status.Valid() {
		res.AddError("status", fmt.Sprintf("unknown status %q", rec.Status))
	}
}

func validateTimes(res *validation.Result, rec Attendance) {
	if rec.CheckIn != nil && rec.CheckOut != nil {
		if !rec.CheckOut.After(*rec.CheckIn) {
			res.AddError("checkOut", "check-out must be after check-in")
		} else if rec.CheckOut.Sub(*rec.CheckIn).Hours() > maxShiftHours {
			res.AddWarning("shift longer than 12 hours")
		}
	}

	if rec.BreakStart != nil && rec.BreakEnd != nil {
		if !rec.BreakEnd.After(*rec.BreakStart) {
			res.AddError("breakEnd", "break end must be after break start")
		} else {
			breakMinutes := rec.BreakEnd.Sub(*rec.BreakStart).Minutes()
			if breakMinutes < minBreakMinutes {
				res.AddWarning("break shorter than 30 minutes")
			}
			if breakMinutes > maxBreakMinutes {
				res.AddWarning("break longer than 2 hours")
			}
		}

		if rec.CheckIn != nil && rec.CheckOut != nil {
			if rec.BreakStart.Before(*rec.CheckIn) || rec.BreakEnd.After(*rec.CheckOut) {
				res.AddError("breakStart", "break must fall within the check-in/check-out window")
			}
		}
	}
}

func validateDate(res *validation.Result, rec Attendance, now time.Time) {
	if rec.Date.IsZero() {
		return
	}

	today := now.Truncate(24 * time.Hour)
	date := rec.Date.Truncate(24 * time.Hour)

	if date.After(today) {
		res.AddError("date", "date cannot be in the future")
	}
	if date.Before(today.AddDate(-1, 0, 0)) {
		res.AddWarning("date is more than one year old")
	}
	if rec.Status == StatusPresent {
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			res.AddWarning("present record falls on a weekend")
		}
	}
}

func validateConflicts(res *validation.Result, rec Attendance, existing []Attendance) {
	for _, other := range existing {
		if other.ID == rec.ID || other.EmployeeID != rec.EmployeeID {
			continue
		}

		if sameDay(other.Date, rec.Date) {
			res.AddError("date", "an attendance record already exists for this date")
			continue
		}

		// Overlap across distinct dates is plausible for night shifts, so
		// it only warrants a warning.
		if rangesOverlap(rec.CheckIn, rec.CheckOut, other.CheckIn, other.CheckOut) {
			res.AddWarning(fmt.Sprintf("time range overlaps the record of %s", other.Date.Format("2006-01-02")))
		}
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func rangesOverlap(aStart, aEnd, bStart, bEnd *time.Time) bool {
	if aStart == nil || aEnd == nil || bStart == nil || bEnd == nil {
		return false
	}
	return aStart.Before(*bEnd) && bStart.Before(*aEnd)
}

// CalculateStatus derives the shift status from the punch times: LATE past
// the grace window after nominal start, EARLY_DEPARTURE before the grace
// window ahead of nominal end. Without a check-in it falls back to the
// caller-supplied status.
func CalculateStatus(checkIn, checkOut *time.Time, fallback Status) Status {
	if checkIn == nil {
		return fallback
	}

	lateCutoff := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(),
		nominalStartHour, graceMinutes, 0, 0, checkIn.Location())
	if checkIn.After(lateCutoff) {
		return StatusLate
	}

	if checkOut != nil {
		earlyCutoff := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(),
			nominalEndHour, -graceMinutes, 0, 0, checkOut.Location())
		if checkOut.Before(earlyCutoff) {
			return StatusEarlyDeparture
		}
	}

	return StatusPresent
}

// CalculateHours returns worked hours net of the break, floored at zero,
// and overtime past the standard eight-hour day.
func CalculateHours(checkIn, checkOut, breakStart, breakEnd *time.Time) (totalHours, overtimeHours float64) {
	if checkIn == nil || checkOut == nil {
		return 0, 0
	}

	total := checkOut.Sub(*checkIn).Hours()
	if breakStart != nil && breakEnd != nil && breakEnd.After(*breakStart) {
		total -= breakEnd.Sub(*breakStart).Hours()
	}
	if total < 0 {
		total = 0
	}

	overtime := total - standardDayHours
	if overtime < 0 {
		overtime = 0
	}

	return total, overtime
}

// CanCheckIn fails when the employee already has a record for today.
func CanCheckIn(existingToday *Attendance) error {
	if existingToday != nil {
		return attendanceerrors.ErrAlreadyCheckedIn
	}
	return nil
}

// CanCheckOut fails without a today-record or when it is already closed.
func CanCheckOut(existingToday *Attendance) error {
	if existingToday == nil {
		return attendanceerrors.ErrNotCheckedIn
	}
	if existingToday.CheckOut != nil {
		return attendanceerrors.ErrAlreadyCheckedOut
	}
	return nil
}
