package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	EmployeeNumber   string          `json:"employee_number"`
	FullName         string          `json:"full_name" binding:"required"`
	Email            string          `json:"email" binding:"required,email"`
	Phone            string          `json:"phone"`
	DepartmentID     string          `json:"department_id" binding:"omitempty,uuid"`
	Position         string          `json:"position"`
	Role             string          `json:"role" binding:"omitempty,oneof=employee manager admin"`
	Salary           decimal.Decimal `json:"salary"`
	WorkStart        string          `json:"work_start" binding:"required,hhmm"`
	WorkEnd          string          `json:"work_end" binding:"required,hhmm"`
	JoiningDate      string          `json:"joining_date"`
	EmploymentStatus string          `json:"employment_status" binding:"omitempty,oneof=active inactive probation"`
}

type UpdateEmployeeRequest = CreateEmployeeRequest

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID               string                      `json:"id"`
	EmployeeNumber   string                      `json:"employee_number"`
	FullName         string                      `json:"full_name"`
	Email            string                      `json:"email"`
	Phone            string                      `json:"phone,omitempty"`
	DepartmentID     string                      `json:"department_id,omitempty"`
	Department       *EmployeeDepartmentResponse `json:"department,omitempty"`
	Position         string                      `json:"position,omitempty"`
	Role             string                      `json:"role"`
	Salary           string                      `json:"salary"`
	WorkStart        string                      `json:"work_start"`
	WorkEnd          string                      `json:"work_end"`
	JoiningDate      string                      `json:"joining_date,omitempty"`
	EmploymentStatus string                      `json:"employment_status"`
}

type EmployeeOptionResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}
