package payroll

import "go-rms/internal/shared/money"

// Statutory rates and thresholds. Thresholds and the minimum wage are in
// the smallest currency unit.
const (
	taxBracketHighThreshold = 100_000
	taxBracketLowThreshold  = 50_000
	taxRateHigh             = 0.06
	taxRateLow              = 0.03
	socialSecurityRate      = 0.04
	unemploymentRate        = 0.0075

	MinimumMonthlyWage = 13_000

	maxDeductionRatio    = 0.30
	maxOvertimeHours     = 60.0
	salaryVarianceRatio  = 0.10
	recommendedDeduction = 0.20
)

// SalaryInput carries the earning components of one pay period.
type SalaryInput struct {
	BaseSalary  int64
	Overtime    int64
	Bonuses     int64
	Commissions int64
}

// TaxBreakdown itemizes the statutory withholdings on a gross amount.
type TaxBreakdown struct {
	IncomeTax      int64
	SocialSecurity int64
	Unemployment   int64
}

func (t TaxBreakdown) Total() int64 {
	return t.IncomeTax + t.SocialSecurity + t.Unemployment
}

// CalculateGross sums the earning components. Component validity is the
// validator's business; this is pure arithmetic.
func CalculateGross(in SalaryInput) int64 {
	return in.BaseSalary + in.Overtime + in.Bonuses + in.Commissions
}

// CalculateTaxes derives the statutory withholdings from a gross amount.
// Income tax is bracketed, not marginal: a single rate applies to the
// whole gross depending on which bracket it falls in.
func CalculateTaxes(gross int64) TaxBreakdown {
	var incomeRate float64
	switch {
	case gross > taxBracketHighThreshold:
		incomeRate = taxRateHigh
	case gross > taxBracketLowThreshold:
		incomeRate = taxRateLow
	}

	return TaxBreakdown{
		IncomeTax:      money.ApplyRate(gross, incomeRate),
		SocialSecurity: money.ApplyRate(gross, socialSecurityRate),
		Unemployment:   money.ApplyRate(gross, unemploymentRate),
	}
}

// CalculateNet subtracts the statutory withholdings and any itemized
// deductions from the gross.
func CalculateNet(gross int64, taxes TaxBreakdown, deductions []Deduction) int64 {
	net := gross - taxes.Total()
	for _, d := range deductions {
		net -= d.Amount
	}
	return net
}
