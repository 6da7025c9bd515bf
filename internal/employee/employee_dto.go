package employee

type CreateEmployeeRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Type     string `json:"type" binding:"required,oneof=teacher administrative laborer other"`
	HireDate string `json:"hire_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Type     string `json:"type" binding:"required,oneof=teacher administrative laborer other"`
	HireDate string `json:"hire_date" binding:"required"`
}

type EmployeeResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Type     string `json:"type"`
	HireDate string `json:"hire_date"`
}
