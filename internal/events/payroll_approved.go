package events

import "time"

const PayrollApprovedTopic = "rms.payroll.lifecycle.v1"

type PayrollApprovedEvent struct {
	EventType  string    `json:"event_type"`
	PayrollID  string    `json:"payroll_id"`
	EmployeeID string    `json:"employee_id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	NetCents   int64     `json:"net_cents"`
	OccurredAt time.Time `json:"occurred_at"`
}
