package auth

type LoginRequest struct {
	EmployeeNumber string `json:"employee_number" binding:"required"`
	Pin            string `json:"pin" binding:"required,len=4,numeric"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	EmployeeID  string `json:"employee_id"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
}
