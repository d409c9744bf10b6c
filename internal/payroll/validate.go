package payroll

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"go-rms/internal/shared/validation"
)

// ValidateRecord checks a computed payroll against the employee's
// contract salary and the employee's existing payroll history. Blocking
// errors mean the record must not be persisted; warnings accompany an
// otherwise valid record. All rules run, nothing short-circuits.
func ValidateRecord(p Payroll, contractSalary int64, existing []Payroll, now time.Time) validation.Result {
	var result validation.Result

	validateComponents(p, &result)
	validatePeriod(p, now, &result)
	validateHours(p, &result)
	validateAmounts(p, contractSalary, &result)
	validateDuplicates(p, existing, &result)

	return result
}

func validateComponents(p Payroll, result *validation.Result) {
	if p.EmployeeID == uuid.Nil {
		result.AddError("employeeId", "employee is required")
	}
	if p.BaseSalary < 0 {
		result.AddError("baseSalary", "base salary cannot be negative")
	}
	if p.Overtime < 0 {
		result.AddError("overtime", "overtime pay cannot be negative")
	}
	if p.Bonuses < 0 {
		result.AddError("bonuses", "bonuses cannot be negative")
	}
	if p.Commissions < 0 {
		result.AddError("commissions", "commissions cannot be negative")
	}
	for _, d := range p.Deductions {
		if d.Amount < 0 {
			result.AddError("deductions", fmt.Sprintf("deduction %q cannot be negative", d.Name))
		}
	}
}

func validatePeriod(p Payroll, now time.Time, result *validation.Result) {
	if p.Month < 1 || p.Month > 12 {
		result.AddError("month", "month must be between 1 and 12")
	}
	if p.Year < now.Year()-2 || p.Year > now.Year() {
		result.AddError("year", fmt.Sprintf("year must be between %d and %d", now.Year()-2, now.Year()))
	}
	if !p.PeriodStart.IsZero() && !p.PeriodEnd.IsZero() && !p.PeriodEnd.After(p.PeriodStart) {
		result.AddError("periodEnd", "period end must be after period start")
	}
}

func validateHours(p Payroll, result *validation.Result) {
	if p.HoursWorked < 0 {
		result.AddError("hoursWorked", "hours worked cannot be negative")
	}
	if p.OvertimeHours < 0 {
		result.AddError("overtimeHours", "overtime hours cannot be negative")
	}
	if p.OvertimeHours > p.HoursWorked {
		result.AddError("overtimeHours", "overtime hours cannot exceed total hours worked")
	}
	if p.OvertimeHours > maxOvertimeHours {
		result.AddWarning(fmt.Sprintf("overtime of %.1f hours exceeds the %.0f hour monthly ceiling", p.OvertimeHours, maxOvertimeHours))
	}
}

func validateAmounts(p Payroll, contractSalary int64, result *validation.Result) {
	if p.NetPay < MinimumMonthlyWage {
		result.AddError("netPay", fmt.Sprintf("net pay %d is below the minimum wage of %d", p.NetPay, MinimumMonthlyWage))
	}

	if p.GrossPay > 0 {
		ratio := float64(p.TotalDeductions()) / float64(p.GrossPay)
		if ratio > maxDeductionRatio {
			result.AddWarning(fmt.Sprintf("total deductions are %.0f%% of gross pay, above the usual %.0f%% ceiling", ratio*100, maxDeductionRatio*100))
		}
	}

	if contractSalary > 0 {
		variance := math.Abs(float64(p.BaseSalary-contractSalary)) / float64(contractSalary)
		if variance > salaryVarianceRatio {
			result.AddWarning(fmt.Sprintf("base salary deviates %.0f%% from the contract salary", variance*100))
		}
	}
}

func validateDuplicates(p Payroll, existing []Payroll, result *validation.Result) {
	for _, other := range existing {
		if other.ID == p.ID {
			continue
		}
		if other.EmployeeID == p.EmployeeID && other.Month == p.Month && other.Year == p.Year {
			result.AddError("period", fmt.Sprintf("a payroll for %d/%d already exists for this employee", p.Month, p.Year))
		}
	}
}
