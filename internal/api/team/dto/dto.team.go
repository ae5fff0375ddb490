package dto

// TeamCreateInput is the body of POST /team (JSON or multipart with an avatar).
type TeamCreateInput struct {
	Name     string `json:"name" form:"name" validate:"required,min=2,max=100,no_xss"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Phone    string `json:"phone" form:"phone" validate:"omitempty,phone"`
	Role     string `json:"role" form:"role" validate:"required,role"`
	Password string `json:"password" form:"password" validate:"required,min=8,max=72"`
}

// TeamUpdateInput is the body of PUT /team/:id. Empty fields are left unchanged.
type TeamUpdateInput struct {
	Name     string `json:"name" form:"name" validate:"omitempty,min=2,max=100,no_xss"`
	Email    string `json:"email" form:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" form:"phone" validate:"omitempty,phone"`
	Role     string `json:"role" form:"role" validate:"omitempty,role"`
	Password string `json:"password" form:"password" validate:"omitempty,min=8,max=72"`
}

// TeamStatusInput is the body of PATCH /team/:id/status.
type TeamStatusInput struct {
	IsActive *bool `json:"isActive" form:"isActive" validate:"required"`
}
