package payroll

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payroll is one employee's pay record for one month. All monetary
// amounts are stored in the smallest currency unit.
type Payroll struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_payroll_employee_period,priority:1"`

	Month       int       `gorm:"not null;uniqueIndex:uq_payroll_employee_period,priority:2"`
	Year        int       `gorm:"not null;uniqueIndex:uq_payroll_employee_period,priority:3"`
	PeriodStart time.Time `gorm:"not null"`
	PeriodEnd   time.Time `gorm:"not null"`

	BaseSalary  int64 `gorm:"not null"`
	Overtime    int64 `gorm:"not null;default:0"`
	Bonuses     int64 `gorm:"not null;default:0"`
	Commissions int64 `gorm:"not null;default:0"`

	HoursWorked   float64 `gorm:"not null;default:0"`
	OvertimeHours float64 `gorm:"not null;default:0"`

	GrossPay       int64 `gorm:"not null"`
	IncomeTax      int64 `gorm:"not null"`
	SocialSecurity int64 `gorm:"not null"`
	Unemployment   int64 `gorm:"not null"`
	NetPay         int64 `gorm:"not null"`

	Status        Status  `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	PaymentMethod *string `gorm:"type:varchar(20)"`
	Notes         string  `gorm:"type:text"`

	CreatedBy  uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt *time.Time
	PaidAt     *time.Time

	Deductions []Deduction `gorm:"foreignKey:PayrollID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Deduction is an itemized deduction beyond the statutory taxes,
// e.g. insurance premiums or salary advances.
type Deduction struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayrollID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Amount    int64     `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Payroll) TableName() string   { return "payrolls" }
func (Deduction) TableName() string { return "payroll_deductions" }

func (p *Payroll) TotalDeductions() int64 {
	total := p.IncomeTax + p.SocialSecurity + p.Unemployment
	for _, d := range p.Deductions {
		total += d.Amount
	}
	return total
}
