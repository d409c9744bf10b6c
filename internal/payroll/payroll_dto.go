package payroll

import (
	"time"

	"github.com/google/uuid"
)

type DeductionRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Amount int64  `json:"amount" binding:"required"`
}

type CreatePayrollRequest struct {
	EmployeeID  string `json:"employeeId" binding:"required,uuid"`
	Month       int    `json:"month" binding:"required"`
	Year        int    `json:"year" binding:"required"`
	PeriodStart string `json:"periodStart" binding:"required,datetime=2006-01-02"`
	PeriodEnd   string `json:"periodEnd" binding:"required,datetime=2006-01-02"`

	BaseSalary  int64 `json:"baseSalary" binding:"required"`
	Overtime    int64 `json:"overtime"`
	Bonuses     int64 `json:"bonuses"`
	Commissions int64 `json:"commissions"`

	HoursWorked   float64 `json:"hoursWorked"`
	OvertimeHours float64 `json:"overtimeHours"`

	Deductions []DeductionRequest `json:"deductions" binding:"dive"`
	Notes      string             `json:"notes" binding:"max=500"`
}

type UpdatePayrollRequest struct {
	BaseSalary  int64 `json:"baseSalary" binding:"required"`
	Overtime    int64 `json:"overtime"`
	Bonuses     int64 `json:"bonuses"`
	Commissions int64 `json:"commissions"`

	HoursWorked   float64 `json:"hoursWorked"`
	OvertimeHours float64 `json:"overtimeHours"`

	Deductions []DeductionRequest `json:"deductions" binding:"dive"`
	Notes      string             `json:"notes" binding:"max=500"`
}

type PayPayrollRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=CASH TRANSFER"`
}

type DeductionResponse struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

type PayrollResponse struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employeeId"`

	Month       int    `json:"month"`
	Year        int    `json:"year"`
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`

	BaseSalary  int64 `json:"baseSalary"`
	Overtime    int64 `json:"overtime"`
	Bonuses     int64 `json:"bonuses"`
	Commissions int64 `json:"commissions"`

	HoursWorked   float64 `json:"hoursWorked"`
	OvertimeHours float64 `json:"overtimeHours"`

	GrossPay       int64 `json:"grossPay"`
	IncomeTax      int64 `json:"incomeTax"`
	SocialSecurity int64 `json:"socialSecurity"`
	Unemployment   int64 `json:"unemployment"`
	NetPay         int64 `json:"netPay"`

	Deductions []DeductionResponse `json:"deductions"`

	Status        Status     `json:"status"`
	PaymentMethod *string    `json:"paymentMethod,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	ApprovedAt    *time.Time `json:"approvedAt,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`

	Warnings []string `json:"warnings,omitempty"`
}
