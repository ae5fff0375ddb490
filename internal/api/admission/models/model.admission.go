// Package models - admission applications submitted from the website (admission_forms).
package models

import (
	basemodels "edu_crm/internal/api/base/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusSubmitted   = "submitted"
	StatusUnderReview = "under_review"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
)

var Statuses = map[string][]string{
	"status": {StatusSubmitted, StatusUnderReview, StatusApproved, StatusRejected},
}

type AdmissionForm struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	StudentName           string  `json:"studentName" bson:"studentName" index:"text"`
	FatherName            string  `json:"fatherName,omitempty" bson:"fatherName,omitempty"`
	MotherName            string  `json:"motherName,omitempty" bson:"motherName,omitempty"`
	DateOfBirth           string  `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	Gender                string  `json:"gender,omitempty" bson:"gender,omitempty"`
	Email                 string  `json:"email,omitempty" bson:"email,omitempty" index:"single"`
	Phone                 string  `json:"phone" bson:"phone" index:"single"`
	Address               string  `json:"address,omitempty" bson:"address,omitempty"`
	Course                string  `json:"course" bson:"course"`
	ProductCompany        string  `json:"productCompany,omitempty" bson:"productCompany,omitempty" index:"compound:status_company"`
	PreviousQualification string  `json:"previousQualification,omitempty" bson:"previousQualification,omitempty"`
	Percentage            float64 `json:"percentage,omitempty" bson:"percentage,omitempty"`
	Status                string  `json:"status" bson:"status" index:"single;compound:status_company"`
	Photo                 string  `json:"photo,omitempty" bson:"photo,omitempty"`

	basemodels.Tracking `bson:",inline"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
