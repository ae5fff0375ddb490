package dto

// InternCreateInput is the body of POST /intern-applied-data, usually multipart with resume and photo.
type InternCreateInput struct {
	Name           string   `json:"name" form:"name" validate:"required,min=2,max=100,no_xss"`
	Email          string   `json:"email" form:"email" validate:"required,email"`
	Phone          string   `json:"phone" form:"phone" validate:"required,phone"`
	Gender         string   `json:"gender" form:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth    string   `json:"dateOfBirth" form:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Address        string   `json:"address" form:"address" validate:"omitempty,max=300,no_xss"`
	City           string   `json:"city" form:"city" validate:"omitempty,max=100,no_xss"`
	State          string   `json:"state" form:"state" validate:"omitempty,max=100,no_xss"`
	College        string   `json:"college" form:"college" validate:"omitempty,max=200,no_xss"`
	Degree         string   `json:"degree" form:"degree" validate:"omitempty,max=100,no_xss"`
	Branch         string   `json:"branch" form:"branch" validate:"omitempty,max=100,no_xss"`
	YearOfPassing  int      `json:"yearOfPassing" form:"yearOfPassing" validate:"omitempty,min=1990,max=2100"`
	CGPA           float64  `json:"cgpa" form:"cgpa" validate:"omitempty,min=0,max=10"`
	Skills         []string `json:"skills" form:"skills" validate:"omitempty,max=30,dive,max=50,no_xss"`
	Domain         string   `json:"domain" form:"domain" validate:"omitempty,max=100,no_xss"`
	Duration       string   `json:"duration" form:"duration" validate:"omitempty,max=50,no_xss"`
	PreferredMode  string   `json:"preferredMode" form:"preferredMode" validate:"omitempty,oneof=remote onsite hybrid"`
	LinkedIn       string   `json:"linkedIn" form:"linkedIn" validate:"omitempty,url"`
	GitHub         string   `json:"gitHub" form:"gitHub" validate:"omitempty,url"`
	Portfolio      string   `json:"portfolio" form:"portfolio" validate:"omitempty,url"`
	ProductCompany string   `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
}

// InternUpdateInput is the body of PUT /intern-applied-data/:id. Empty fields are left unchanged.
type InternUpdateInput struct {
	Name           string   `json:"name" form:"name" validate:"omitempty,min=2,max=100,no_xss"`
	Email          string   `json:"email" form:"email" validate:"omitempty,email"`
	Phone          string   `json:"phone" form:"phone" validate:"omitempty,phone"`
	Gender         string   `json:"gender" form:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth    string   `json:"dateOfBirth" form:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Address        string   `json:"address" form:"address" validate:"omitempty,max=300,no_xss"`
	City           string   `json:"city" form:"city" validate:"omitempty,max=100,no_xss"`
	State          string   `json:"state" form:"state" validate:"omitempty,max=100,no_xss"`
	College        string   `json:"college" form:"college" validate:"omitempty,max=200,no_xss"`
	Degree         string   `json:"degree" form:"degree" validate:"omitempty,max=100,no_xss"`
	Branch         string   `json:"branch" form:"branch" validate:"omitempty,max=100,no_xss"`
	YearOfPassing  int      `json:"yearOfPassing" form:"yearOfPassing" validate:"omitempty,min=1990,max=2100"`
	CGPA           float64  `json:"cgpa" form:"cgpa" validate:"omitempty,min=0,max=10"`
	Skills         []string `json:"skills" form:"skills" validate:"omitempty,max=30,dive,max=50,no_xss"`
	Domain         string   `json:"domain" form:"domain" validate:"omitempty,max=100,no_xss"`
	Duration       string   `json:"duration" form:"duration" validate:"omitempty,max=50,no_xss"`
	PreferredMode  string   `json:"preferredMode" form:"preferredMode" validate:"omitempty,oneof=remote onsite hybrid"`
	LinkedIn       string   `json:"linkedIn" form:"linkedIn" validate:"omitempty,url"`
	GitHub         string   `json:"gitHub" form:"gitHub" validate:"omitempty,url"`
	Portfolio      string   `json:"portfolio" form:"portfolio" validate:"omitempty,url"`
	ProductCompany string   `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
}
