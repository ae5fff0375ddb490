package dto

// AdmissionCreateInput is the body of POST /admission-form, usually multipart with a photo.
type AdmissionCreateInput struct {
	StudentName           string  `json:"studentName" form:"studentName" validate:"required,min=2,max=100,no_xss"`
	FatherName            string  `json:"fatherName" form:"fatherName" validate:"omitempty,max=100,no_xss"`
	MotherName            string  `json:"motherName" form:"motherName" validate:"omitempty,max=100,no_xss"`
	DateOfBirth           string  `json:"dateOfBirth" form:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender                string  `json:"gender" form:"gender" validate:"omitempty,oneof=male female other"`
	Email                 string  `json:"email" form:"email" validate:"omitempty,email"`
	Phone                 string  `json:"phone" form:"phone" validate:"required,phone"`
	Address               string  `json:"address" form:"address" validate:"omitempty,max=300,no_xss"`
	Course                string  `json:"course" form:"course" validate:"required,max=100,no_xss"`
	ProductCompany        string  `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	PreviousQualification string  `json:"previousQualification" form:"previousQualification" validate:"omitempty,max=100,no_xss"`
	Percentage            float64 `json:"percentage" form:"percentage" validate:"omitempty,min=0,max=100"`
}

// AdmissionUpdateInput is the body of PUT /admission-form/:id. Empty fields are left unchanged.
type AdmissionUpdateInput struct {
	StudentName           string  `json:"studentName" form:"studentName" validate:"omitempty,min=2,max=100,no_xss"`
	FatherName            string  `json:"fatherName" form:"fatherName" validate:"omitempty,max=100,no_xss"`
	MotherName            string  `json:"motherName" form:"motherName" validate:"omitempty,max=100,no_xss"`
	DateOfBirth           string  `json:"dateOfBirth" form:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender                string  `json:"gender" form:"gender" validate:"omitempty,oneof=male female other"`
	Email                 string  `json:"email" form:"email" validate:"omitempty,email"`
	Phone                 string  `json:"phone" form:"phone" validate:"omitempty,phone"`
	Address               string  `json:"address" form:"address" validate:"omitempty,max=300,no_xss"`
	Course                string  `json:"course" form:"course" validate:"omitempty,max=100,no_xss"`
	ProductCompany        string  `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	PreviousQualification string  `json:"previousQualification" form:"previousQualification" validate:"omitempty,max=100,no_xss"`
	Percentage            float64 `json:"percentage" form:"percentage" validate:"omitempty,min=0,max=100"`
}
