package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPresent        Status = "PRESENT"
	StatusAbsent         Status = "ABSENT"
	StatusLate           Status = "LATE"
	StatusEarlyDeparture Status = "EARLY_DEPARTURE"
	StatusHoliday        Status = "HOLIDAY"
	StatusSickLeave      Status = "SICK_LEAVE"
	StatusVacation       Status = "VACATION"
	StatusMedicalRest    Status = "MEDICAL_REST"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusEarlyDeparture,
		StatusHoliday, StatusSickLeave, StatusVacation, StatusMedicalRest:
		return true
	default:
		return false
	}
}

// RequiresTimes reports whether the status describes a worked shift, i.e.
// the time-window rules apply.
func (s Status) RequiresTimes() bool {
	switch s {
	case StatusPresent, StatusLate, StatusEarlyDeparture:
		return true
	default:
		return false
	}
}

type Attendance struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	// Day granularity; one record per employee per date.
	Date       time.Time  `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2"`
	CheckIn    *time.Time `gorm:"column:check_in;type:timestamptz"`
	CheckOut   *time.Time `gorm:"column:check_out;type:timestamptz"`
	BreakStart *time.Time `gorm:"column:break_start;type:timestamptz"`
	BreakEnd   *time.Time `gorm:"column:break_end;type:timestamptz"`
	Status     Status     `gorm:"column:status;type:varchar(20);not null;default:'PRESENT'"`
	// Derived via CalculateHours, stored for reporting.
	TotalHours    float64        `gorm:"column:total_hours;not null;default:0"`
	OvertimeHours float64        `gorm:"column:overtime_hours;not null;default:0"`
	Notes         *string        `gorm:"column:notes;type:text"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Attendance) TableName() string {
	return "attendances"
}
