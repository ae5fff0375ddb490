package dto

type ImageCreateInput struct {
	Title          string `json:"title" form:"title" validate:"required,min=2,max=150,no_xss"`
	Category       string `json:"category" form:"category" validate:"omitempty,max=60,no_xss"`
	ProductCompany string `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	AltText        string `json:"altText" form:"altText" validate:"omitempty,max=200,no_xss"`
}

type ImageUpdateInput struct {
	Title          string `json:"title" form:"title" validate:"omitempty,min=2,max=150,no_xss"`
	Category       string `json:"category" form:"category" validate:"omitempty,max=60,no_xss"`
	ProductCompany string `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	AltText        string `json:"altText" form:"altText" validate:"omitempty,max=200,no_xss"`
}
