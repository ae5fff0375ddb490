// Package models - business partnership enquiries (b2b).
package models

import (
	basemodels "edu_crm/internal/api/base/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusNew          = "new"
	StatusContacted    = "contacted"
	StatusInDiscussion = "in_discussion"
	StatusClosedWon    = "closed_won"
	StatusClosedLost   = "closed_lost"
)

var Statuses = map[string][]string{
	"status": {StatusNew, StatusContacted, StatusInDiscussion, StatusClosedWon, StatusClosedLost},
}

type B2B struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CompanyName    string `json:"companyName" bson:"companyName" index:"text"`
	ContactPerson  string `json:"contactPerson" bson:"contactPerson"`
	Email          string `json:"email,omitempty" bson:"email,omitempty" index:"single"`
	Phone          string `json:"phone" bson:"phone" index:"single"`
	Designation    string `json:"designation,omitempty" bson:"designation,omitempty"`
	Requirement    string `json:"requirement,omitempty" bson:"requirement,omitempty"`
	Message        string `json:"message,omitempty" bson:"message,omitempty"`
	ProductCompany string `json:"productCompany,omitempty" bson:"productCompany,omitempty" index:"compound:status_company"`
	Status         string `json:"status" bson:"status" index:"single;compound:status_company"`

	basemodels.Tracking `bson:",inline"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
