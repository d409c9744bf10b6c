package employee

type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number" binding:"required"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Role           string `json:"role" binding:"required,oneof=admin manager cashier waiter chef"`
	BaseSalary     int64  `json:"base_salary" binding:"min=0"`
	Pin            string `json:"pin" binding:"required,len=4,numeric"`
}

type UpdateEmployeeRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Role       *string `json:"role" binding:"omitempty,oneof=admin manager cashier waiter chef"`
	BaseSalary *int64  `json:"base_salary" binding:"omitempty,min=0"`
	Pin        *string `json:"pin" binding:"omitempty,len=4,numeric"`
	IsActive   *bool   `json:"is_active"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Role           string `json:"role"`
	BaseSalary     int64  `json:"base_salary"`
	IsActive       bool   `json:"is_active"`
}
