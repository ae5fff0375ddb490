package dto

// SendInput is the body of POST /mail/send.
type SendInput struct {
	To       []string `json:"to" form:"to" validate:"required,min=1,max=50,dive,email"`
	Subject  string   `json:"subject" form:"subject" validate:"required,max=200,no_xss"`
	HTML     string   `json:"html" form:"html" validate:"required"`
	ReplyTo  string   `json:"replyTo" form:"replyTo" validate:"omitempty,email"`
	Provider string   `json:"provider" form:"provider" validate:"omitempty,oneof=resend smtp"`
}

// ContactInput is the body of the public contact form.
type ContactInput struct {
	Name           string `json:"name" form:"name" validate:"required,min=2,max=100,no_xss"`
	Email          string `json:"email" form:"email" validate:"required,email"`
	Phone          string `json:"phone" form:"phone" validate:"omitempty,phone"`
	ProductCompany string `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	Message        string `json:"message" form:"message" validate:"required,max=2000,no_xss"`
}

// SendResult reports where a message went.
type SendResult struct {
	Provider   string `json:"provider"`
	Recipients int    `json:"recipients"`
}
