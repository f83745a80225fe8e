package department

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required,uppercase"`
}

type UpdateDepartmentRequest struct {
	Name string `json:"name"`
	Code string `json:"code" binding:"omitempty,uppercase"`
}

type DepartmentResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
}
