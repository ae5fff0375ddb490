package dto

// ComplaintCreateInput is the body of POST /complaint (JSON or multipart with an attachment).
type ComplaintCreateInput struct {
	Name           string `json:"name" form:"name" validate:"required,min=2,max=100,no_xss"`
	Email          string `json:"email" form:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" form:"phone" validate:"required,phone"`
	Subject        string `json:"subject" form:"subject" validate:"required,max=200,no_xss"`
	Description    string `json:"description" form:"description" validate:"required,max=5000,no_xss"`
	ProductCompany string `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	Priority       string `json:"priority" form:"priority" validate:"omitempty,oneof=low medium high"`
}

// ComplaintUpdateInput is the body of PUT /complaint/:id. Empty fields are left unchanged.
type ComplaintUpdateInput struct {
	Name           string `json:"name" form:"name" validate:"omitempty,min=2,max=100,no_xss"`
	Email          string `json:"email" form:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" form:"phone" validate:"omitempty,phone"`
	Subject        string `json:"subject" form:"subject" validate:"omitempty,max=200,no_xss"`
	Description    string `json:"description" form:"description" validate:"omitempty,max=5000,no_xss"`
	ProductCompany string `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	Priority       string `json:"priority" form:"priority" validate:"omitempty,oneof=low medium high"`
}
