package dto

// CompanyCreateInput is the body of POST /companies. The slug is derived from the name when empty.
type CompanyCreateInput struct {
	Name        string `json:"name" form:"name" validate:"required,min=2,max=100,no_xss"`
	Slug        string `json:"slug" form:"slug" validate:"omitempty,max=100"`
	Website     string `json:"website" form:"website" validate:"omitempty,url,max=300"`
	Description string `json:"description" form:"description" validate:"omitempty,max=2000,no_xss"`
	IsActive    *bool  `json:"isActive" form:"isActive"`
}

type CompanyUpdateInput struct {
	Name        string `json:"name" form:"name" validate:"omitempty,min=2,max=100,no_xss"`
	Slug        string `json:"slug" form:"slug" validate:"omitempty,max=100"`
	Website     string `json:"website" form:"website" validate:"omitempty,url,max=300"`
	Description string `json:"description" form:"description" validate:"omitempty,max=2000,no_xss"`
	IsActive    *bool  `json:"isActive" form:"isActive"`
}
