package dto

// EducationInput is the completed-education checklist. Nil pointers leave the stored value unchanged on update.
type EducationInput struct {
	Tenth          *bool `json:"tenth" form:"tenth"`
	Twelfth        *bool `json:"twelfth" form:"twelfth"`
	Graduation     *bool `json:"graduation" form:"graduation"`
	PostGraduation *bool `json:"postGraduation" form:"postGraduation"`
}

// EnrollmentCreateInput is the body of POST /enrollment.
type EnrollmentCreateInput struct {
	Name           string          `json:"name" form:"name" validate:"required,min=2,max=100,no_xss"`
	Email          string          `json:"email" form:"email" validate:"omitempty,email"`
	Phone          string          `json:"phone" form:"phone" validate:"required,phone"`
	Course         string          `json:"course" form:"course" validate:"required,max=100,no_xss"`
	ProductCompany string          `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	Qualification  string          `json:"qualification" form:"qualification" validate:"omitempty,max=100,no_xss"`
	Education      *EducationInput `json:"education" form:"education"`
	NextFollowUpAt int64           `json:"nextFollowUpAt" form:"nextFollowUpAt" validate:"omitempty,gt=0"`
}

// EnrollmentUpdateInput is the body of PUT /enrollment/:id. Empty fields are left unchanged.
// Status fields change through PATCH /enrollment/:id/status only.
type EnrollmentUpdateInput struct {
	Name           string          `json:"name" form:"name" validate:"omitempty,min=2,max=100,no_xss"`
	Email          string          `json:"email" form:"email" validate:"omitempty,email"`
	Phone          string          `json:"phone" form:"phone" validate:"omitempty,phone"`
	Course         string          `json:"course" form:"course" validate:"omitempty,max=100,no_xss"`
	ProductCompany string          `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	Qualification  string          `json:"qualification" form:"qualification" validate:"omitempty,max=100,no_xss"`
	Education      *EducationInput `json:"education" form:"education"`
	NextFollowUpAt int64           `json:"nextFollowUpAt" form:"nextFollowUpAt" validate:"omitempty,gt=0"`
}
