package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-rms/internal/scope"
	"go-rms/internal/shared/gormtx"

	"gorm.io/gorm"
)

// EmployeeRef is the slice of the employees table the payroll flow needs:
// the contract salary for variance checks and the active flag.
type EmployeeRef struct {
	ID         string
	BaseSalary int64
	IsActive   bool
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payroll) error
	Update(ctx context.Context, p *Payroll) error
	ReplaceDeductions(ctx context.Context, payrollID string, deductions []Deduction) error
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindAll(ctx context.Context) ([]Payroll, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
	FindEmployee(ctx context.Context, employeeID string) (*EmployeeRef, error)
	CountPresenceDays(ctx context.Context, employeeID string, start, end time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: gormtx.Bind(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) Update(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Omit("Deductions").Save(p).Error
}

func (r *repository) ReplaceDeductions(ctx context.Context, payrollID string, deductions []Deduction) error {
	if err := r.db.WithContext(ctx).
		Where("payroll_id = ?", payrollID).
		Delete(&Deduction{}).Error; err != nil {
		return err
	}
	if len(deductions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&deductions).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Preload("Deductions").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindAll(ctx context.Context) ([]Payroll, error) {
	var rows []Payroll
	err := r.db.WithContext(ctx).
		Preload("Deductions").
		Order("year DESC, month DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Payroll, error) {
	var rows []Payroll
	err := r.db.WithContext(ctx).
		Scopes(scope.ByEmployee(employeeID)).
		Preload("Deductions").
		Order("year DESC, month DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindEmployee(ctx context.Context, employeeID string) (*EmployeeRef, error) {
	var ref EmployeeRef
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id, base_salary, is_active").
		Where("id = ? AND deleted_at IS NULL", employeeID).
		First(&ref).Error
	return &ref, err
}

func (r *repository) CountPresenceDays(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("attendances").
		Where("employee_id = ? AND date >= ? AND date <= ?", employeeID, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Where("status IN ?", []string{"PRESENT", "LATE", "EARLY_DEPARTURE"}).
		Count(&count).Error
	return count, err
}
