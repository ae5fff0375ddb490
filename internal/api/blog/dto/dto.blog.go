package dto

// BlogCreateInput is the body of POST /blog. Content is HTML and is sanitized rather than rejected.
type BlogCreateInput struct {
	Title           string   `json:"title" form:"title" validate:"required,min=3,max=200,no_xss"`
	Slug            string   `json:"slug" form:"slug" validate:"omitempty,max=200"`
	Content         string   `json:"content" form:"content" validate:"required"`
	Excerpt         string   `json:"excerpt" form:"excerpt" validate:"omitempty,max=500,no_xss"`
	Author          string   `json:"author" form:"author" validate:"omitempty,max=100,no_xss"`
	Tags            []string `json:"tags" form:"tags" validate:"omitempty,max=20,dive,max=40"`
	Category        string   `json:"category" form:"category" validate:"omitempty,max=60,no_xss"`
	ProductCompany  string   `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	Status          string   `json:"status" form:"status" validate:"omitempty,oneof=draft published"`
	MetaTitle       string   `json:"metaTitle" form:"metaTitle" validate:"omitempty,max=70,no_xss"`
	MetaDescription string   `json:"metaDescription" form:"metaDescription" validate:"omitempty,max=170,no_xss"`
}

type BlogUpdateInput struct {
	Title           string   `json:"title" form:"title" validate:"omitempty,min=3,max=200,no_xss"`
	Slug            string   `json:"slug" form:"slug" validate:"omitempty,max=200"`
	Content         string   `json:"content" form:"content"`
	Excerpt         string   `json:"excerpt" form:"excerpt" validate:"omitempty,max=500,no_xss"`
	Author          string   `json:"author" form:"author" validate:"omitempty,max=100,no_xss"`
	Tags            []string `json:"tags" form:"tags" validate:"omitempty,max=20,dive,max=40"`
	Category        string   `json:"category" form:"category" validate:"omitempty,max=60,no_xss"`
	ProductCompany  string   `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	MetaTitle       string   `json:"metaTitle" form:"metaTitle" validate:"omitempty,max=70,no_xss"`
	MetaDescription string   `json:"metaDescription" form:"metaDescription" validate:"omitempty,max=170,no_xss"`
}

// PublishInput is the body of PATCH /blog/:id/publish. An empty body publishes.
type PublishInput struct {
	Published *bool `json:"published" form:"published"`
}
