package staff

type CreateStaffRequest struct {
	FullName    string  `json:"full_name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	StaffNumber string  `json:"staff_number"`
	Phone       *string `json:"phone"`
	StartDate   *string `json:"start_date"`
}

type UpdateStaffRequest struct {
	FullName         string  `json:"full_name"`
	Phone            *string `json:"phone"`
	StartDate        *string `json:"start_date"`
	EmploymentStatus string  `json:"employment_status"`
}

type StaffResponse struct {
	ID               string  `json:"id"`
	CompanyID        string  `json:"company_id"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	StaffNumber      string  `json:"staff_number"`
	Phone            *string `json:"phone,omitempty"`
	StartDate        *string `json:"start_date,omitempty"`
	EmploymentStatus string  `json:"employment_status"`
}
