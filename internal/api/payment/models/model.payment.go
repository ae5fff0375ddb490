// Package models - payment confirmations submitted by students (payment_details).
package models

import (
	basemodels "edu_crm/internal/api/base/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending  = "pending"
	StatusSuccess  = "success"
	StatusFailed   = "failed"
	StatusRefunded = "refunded"

	DefaultCurrency = "INR"
)

var Statuses = map[string][]string{
	"status": {StatusPending, StatusSuccess, StatusFailed, StatusRefunded},
}

type PaymentDetail struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name           string               `json:"name" bson:"name" index:"text"`
	Email          string               `json:"email,omitempty" bson:"email,omitempty"`
	Phone          string               `json:"phone" bson:"phone" index:"single"`
	Course         string               `json:"course,omitempty" bson:"course,omitempty"`
	ProductCompany string               `json:"productCompany,omitempty" bson:"productCompany,omitempty" index:"compound:status_company"`
	Amount         primitive.Decimal128 `json:"amount" bson:"amount"`
	Currency       string               `json:"currency" bson:"currency"`
	TransactionID  string               `json:"transactionId,omitempty" bson:"transactionId,omitempty" index:"single"`
	PaymentMode    string               `json:"paymentMode,omitempty" bson:"paymentMode,omitempty"`
	Status         string               `json:"status" bson:"status" index:"single;compound:status_company"`
	PaidAt         int64                `json:"paidAt,omitempty" bson:"paidAt,omitempty"`
	Screenshot     string               `json:"screenshot,omitempty" bson:"screenshot,omitempty"`

	basemodels.Tracking `bson:",inline"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
