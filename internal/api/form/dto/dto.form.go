package dto

// FormCreateInput is the body of POST /form (JSON or multipart with a resume).
type FormCreateInput struct {
	Name           string `json:"name" form:"name" validate:"required,min=2,max=100,no_xss"`
	Email          string `json:"email" form:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" form:"phone" validate:"required,phone"`
	Course         string `json:"course" form:"course" validate:"omitempty,max=100,no_xss"`
	Message        string `json:"message" form:"message" validate:"omitempty,max=2000,no_xss"`
	Source         string `json:"source" form:"source" validate:"omitempty,max=50,no_xss"`
	City           string `json:"city" form:"city" validate:"omitempty,max=100,no_xss"`
	ProductCompany string `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	Status         string `json:"status" form:"status" validate:"omitempty,oneof=unread read interested not_interested follow_up converted junk"`
	NextFollowUpAt int64  `json:"nextFollowUpAt" form:"nextFollowUpAt" validate:"omitempty,gt=0"`
}

// FormUpdateInput is the body of PUT /form/:id. Empty fields are left unchanged.
type FormUpdateInput struct {
	Name           string `json:"name" form:"name" validate:"omitempty,min=2,max=100,no_xss"`
	Email          string `json:"email" form:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" form:"phone" validate:"omitempty,phone"`
	Course         string `json:"course" form:"course" validate:"omitempty,max=100,no_xss"`
	Message        string `json:"message" form:"message" validate:"omitempty,max=2000,no_xss"`
	Source         string `json:"source" form:"source" validate:"omitempty,max=50,no_xss"`
	City           string `json:"city" form:"city" validate:"omitempty,max=100,no_xss"`
	ProductCompany string `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	Status         string `json:"status" form:"status" validate:"omitempty,oneof=unread read interested not_interested follow_up converted junk"`
	NextFollowUpAt int64  `json:"nextFollowUpAt" form:"nextFollowUpAt" validate:"omitempty,gt=0"`
}

// ImportResult reports the outcome of a spreadsheet import.
type ImportResult struct {
	Imported int          `json:"imported"`
	Skipped  []SkippedRow `json:"skipped"`
}

// SkippedRow is a spreadsheet row that was not imported.
type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
