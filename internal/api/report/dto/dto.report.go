package dto

// ReportCreateInput is the multipart body of POST /reports. Periods are unix millis.
type ReportCreateInput struct {
	Title          string `json:"title" form:"title" validate:"required,min=2,max=150,no_xss"`
	Description    string `json:"description" form:"description" validate:"omitempty,max=1000,no_xss"`
	Category       string `json:"category" form:"category" validate:"omitempty,max=60,no_xss"`
	ProductCompany string `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	PeriodStart    int64  `json:"periodStart" form:"periodStart" validate:"omitempty,min=0"`
	PeriodEnd      int64  `json:"periodEnd" form:"periodEnd" validate:"omitempty,min=0"`
}

type ReportUpdateInput struct {
	Title          string `json:"title" form:"title" validate:"omitempty,min=2,max=150,no_xss"`
	Description    string `json:"description" form:"description" validate:"omitempty,max=1000,no_xss"`
	Category       string `json:"category" form:"category" validate:"omitempty,max=60,no_xss"`
	ProductCompany string `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	PeriodStart    int64  `json:"periodStart" form:"periodStart" validate:"omitempty,min=0"`
	PeriodEnd      int64  `json:"periodEnd" form:"periodEnd" validate:"omitempty,min=0"`
}
