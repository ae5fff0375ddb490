package dto

// BroadcastInput is the body of POST /notifications/broadcast. Roles and recipients are combined;
// when both are empty every active member is notified.
type BroadcastInput struct {
	Title      string   `json:"title" form:"title" validate:"required,max=200,no_xss"`
	Body       string   `json:"body" form:"body" validate:"max=2000,no_xss"`
	Roles      []string `json:"roles" form:"roles" validate:"omitempty,dive,role"`
	Recipients []string `json:"recipients" form:"recipients" validate:"omitempty,dive,objectid"`
}
