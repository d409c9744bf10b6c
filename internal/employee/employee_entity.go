package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber string    `gorm:"column:employee_number;type:varchar(20);not null;uniqueIndex:uq_employee_number"`
	FirstName      string    `gorm:"column:first_name;type:varchar(80);not null"`
	LastName       string    `gorm:"column:last_name;type:varchar(80);not null"`
	Role           string    `gorm:"column:role;type:varchar(20);not null;default:'waiter'"`
	// Reference salary in cents, used to sanity-check payroll variance.
	BaseSalary int64          `gorm:"column:base_salary;type:bigint;not null;default:0"`
	PinHash    string         `gorm:"column:pin_hash;type:varchar(100);not null"`
	IsActive   bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
