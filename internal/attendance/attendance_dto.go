package attendance

type CheckInRequest struct {
	Notes *string `json:"notes"`
}

type CheckOutRequest struct {
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
	Notes      *string `json:"notes"`
}

// CreateAttendanceRequest backfills or records leave-type statuses; it runs
// the full validator instead of the punch-clock gates.
type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required"`
	Status     string  `json:"status" binding:"required"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
	Notes      *string `json:"notes"`
}

type AttendanceResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	Date          string   `json:"date"`
	CheckIn       *string  `json:"check_in,omitempty"`
	CheckOut      *string  `json:"check_out,omitempty"`
	BreakStart    *string  `json:"break_start,omitempty"`
	BreakEnd      *string  `json:"break_end,omitempty"`
	Status        string   `json:"status"`
	TotalHours    float64  `json:"total_hours"`
	OvertimeHours float64  `json:"overtime_hours"`
	Notes         *string  `json:"notes,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
}
