package company

type CompanyResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type UpdateCompanyRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active"`
}

type CreateClientContactRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone"`
}

type UpdateClientContactRequest struct {
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"is_active"`
}

type ClientContactResponse struct {
	ID        string  `json:"id"`
	CompanyID string  `json:"company_id"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	IsActive  bool    `json:"is_active"`
	IsPrimary bool    `json:"is_primary"`
}
