package dto

type SocialMediaCreateInput struct {
	Platform       string `json:"platform" form:"platform" validate:"required,oneof=facebook instagram linkedin twitter youtube whatsapp"`
	URL            string `json:"url" form:"url" validate:"required,url,max=500"`
	Handle         string `json:"handle" form:"handle" validate:"omitempty,max=100,no_xss"`
	ProductCompany string `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	IsActive       *bool  `json:"isActive" form:"isActive"`
}

type SocialMediaUpdateInput struct {
	Platform       string `json:"platform" form:"platform" validate:"omitempty,oneof=facebook instagram linkedin twitter youtube whatsapp"`
	URL            string `json:"url" form:"url" validate:"omitempty,url,max=500"`
	Handle         string `json:"handle" form:"handle" validate:"omitempty,max=100,no_xss"`
	ProductCompany string `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	IsActive       *bool  `json:"isActive" form:"isActive"`
}
