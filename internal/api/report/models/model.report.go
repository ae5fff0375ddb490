// Package models - uploaded report files (reports).
package models

import (
	basemodels "edu_crm/internal/api/base/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Report struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Title          string `json:"title" bson:"title" index:"text"`
	Description    string `json:"description,omitempty" bson:"description,omitempty"`
	Category       string `json:"category,omitempty" bson:"category,omitempty" index:"single"`
	ProductCompany string `json:"productCompany,omitempty" bson:"productCompany,omitempty" index:"single"`
	PeriodStart    int64  `json:"periodStart,omitempty" bson:"periodStart,omitempty" index:"single"`
	PeriodEnd      int64  `json:"periodEnd,omitempty" bson:"periodEnd,omitempty"`
	File           string `json:"file" bson:"file"`

	UploadedBy *basemodels.ActorRef `json:"uploadedBy,omitempty" bson:"uploadedBy,omitempty"`
	UpdatedBy  *basemodels.ActorRef `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
