package dto

// B2BCreateInput is the body of POST /b2b.
type B2BCreateInput struct {
	CompanyName    string `json:"companyName" form:"companyName" validate:"required,min=2,max=150,no_xss"`
	ContactPerson  string `json:"contactPerson" form:"contactPerson" validate:"required,min=2,max=100,no_xss"`
	Email          string `json:"email" form:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" form:"phone" validate:"required,phone"`
	Designation    string `json:"designation" form:"designation" validate:"omitempty,max=100,no_xss"`
	Requirement    string `json:"requirement" form:"requirement" validate:"omitempty,max=500,no_xss"`
	Message        string `json:"message" form:"message" validate:"omitempty,max=2000,no_xss"`
	ProductCompany string `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
}

// B2BUpdateInput is the body of PUT /b2b/:id. Empty fields are left unchanged.
type B2BUpdateInput struct {
	CompanyName    string `json:"companyName" form:"companyName" validate:"omitempty,min=2,max=150,no_xss"`
	ContactPerson  string `json:"contactPerson" form:"contactPerson" validate:"omitempty,min=2,max=100,no_xss"`
	Email          string `json:"email" form:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" form:"phone" validate:"omitempty,phone"`
	Designation    string `json:"designation" form:"designation" validate:"omitempty,max=100,no_xss"`
	Requirement    string `json:"requirement" form:"requirement" validate:"omitempty,max=500,no_xss"`
	Message        string `json:"message" form:"message" validate:"omitempty,max=2000,no_xss"`
	ProductCompany string `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
}
