package dto

type SeoCreateInput struct {
	Page            string   `json:"page" form:"page" validate:"required,max=200"`
	ProductCompany  string   `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	MetaTitle       string   `json:"metaTitle" form:"metaTitle" validate:"required,max=70,no_xss"`
	MetaDescription string   `json:"metaDescription" form:"metaDescription" validate:"omitempty,max=170,no_xss"`
	Keywords        []string `json:"keywords" form:"keywords" validate:"omitempty,max=30,dive,max=60"`
	CanonicalURL    string   `json:"canonicalUrl" form:"canonicalUrl" validate:"omitempty,url,max=500"`
}

type SeoUpdateInput struct {
	Page            string   `json:"page" form:"page" validate:"omitempty,max=200"`
	ProductCompany  string   `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	MetaTitle       string   `json:"metaTitle" form:"metaTitle" validate:"omitempty,max=70,no_xss"`
	MetaDescription string   `json:"metaDescription" form:"metaDescription" validate:"omitempty,max=170,no_xss"`
	Keywords        []string `json:"keywords" form:"keywords" validate:"omitempty,max=30,dive,max=60"`
	CanonicalURL    string   `json:"canonicalUrl" form:"canonicalUrl" validate:"omitempty,url,max=500"`
}
