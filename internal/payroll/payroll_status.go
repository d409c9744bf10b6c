package payroll

import "go-rms/internal/rbac"

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusApproved  Status = "APPROVED"
	StatusPaid      Status = "PAID"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusApproved, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusDraft:
		return next == StatusApproved || next == StatusCancelled
	case StatusApproved:
		return next == StatusPaid || next == StatusCancelled
	default:
		return false
	}
}

// CanApprove gates the DRAFT → APPROVED transition on the approver's role.
func CanApprove(role string, status Status) bool {
	if status != StatusDraft {
		return false
	}
	return role == rbac.RoleManager || role == rbac.RoleAdmin
}

// CanPay gates the APPROVED → PAID transition; a payroll with a payment
// date on record can never be paid twice.
func CanPay(status Status, hasPaymentDate bool) bool {
	return status == StatusApproved && !hasPaymentDate
}
