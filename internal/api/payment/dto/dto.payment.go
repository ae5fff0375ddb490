package dto

import "github.com/shopspring/decimal"

// PaymentCreateInput is the body of POST /payment-detail, usually multipart with a screenshot.
// amount accepts a JSON number or string and must be positive with at most two decimals.
type PaymentCreateInput struct {
	Name           string          `json:"name" form:"name" validate:"required,min=2,max=100,no_xss"`
	Email          string          `json:"email" form:"email" validate:"omitempty,email"`
	Phone          string          `json:"phone" form:"phone" validate:"required,phone"`
	Course         string          `json:"course" form:"course" validate:"omitempty,max=100,no_xss"`
	ProductCompany string          `json:"productCompany" form:"productCompany" validate:"omitempty,max=100,no_xss"`
	Amount         decimal.Decimal `json:"amount" form:"amount"`
	Currency       string          `json:"currency" form:"currency" validate:"omitempty,iso4217"`
	TransactionID  string          `json:"transactionId" form:"transactionId" validate:"omitempty,max=100,no_xss"`
	PaymentMode    string          `json:"paymentMode" form:"paymentMode" validate:"omitempty,oneof=upi card netbanking cash bank_transfer"`
}

// StatusTotal sums the payments in one status.
type StatusTotal struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// PaymentSummary is the response of GET /payment-detail/summary.
type PaymentSummary struct {
	Currency string          `json:"currency"`
	Total    decimal.Decimal `json:"total"`
	ByStatus []StatusTotal   `json:"byStatus"`
}
