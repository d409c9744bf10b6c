package payroll

import "fmt"

// ComplianceReport separates hard labor-law violations from advisory
// recommendations. A report with no violations is compliant.
type ComplianceReport struct {
	Compliant       bool     `json:"compliant"`
	Violations      []string `json:"violations"`
	Recommendations []string `json:"recommendations"`
}

// CheckLaborCompliance audits a computed payroll together with the
// employee's attendance rate for the same period. attendanceRate is the
// fraction of scheduled working days with a presence record, in [0, 1].
func CheckLaborCompliance(p Payroll, attendanceRate float64) ComplianceReport {
	report := ComplianceReport{
		Violations:      []string{},
		Recommendations: []string{},
	}

	if p.NetPay < MinimumMonthlyWage {
		report.Violations = append(report.Violations,
			fmt.Sprintf("net pay %d is below the minimum wage of %d", p.NetPay, MinimumMonthlyWage))
	}
	if p.OvertimeHours > maxOvertimeHours {
		report.Violations = append(report.Violations,
			fmt.Sprintf("overtime of %.1f hours exceeds the legal monthly ceiling of %.0f hours", p.OvertimeHours, maxOvertimeHours))
	}

	if p.GrossPay > 0 {
		ratio := float64(p.TotalDeductions()) / float64(p.GrossPay)
		if ratio > recommendedDeduction {
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("deductions are %.0f%% of gross pay; review itemized deductions with the employee", ratio*100))
		}
	}
	if attendanceRate >= 0 && attendanceRate < 0.8 {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("attendance rate of %.0f%% for the pay period is low; verify hours worked before payment", attendanceRate*100))
	}

	report.Compliant = len(report.Violations) == 0
	return report
}
