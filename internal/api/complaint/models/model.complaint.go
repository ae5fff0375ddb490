// Package models - student and customer complaints (complaints).
package models

import (
	basemodels "edu_crm/internal/api/base/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var Statuses = map[string][]string{
	"status":   {StatusOpen, StatusInProgress, StatusResolved, StatusClosed},
	"priority": {PriorityLow, PriorityMedium, PriorityHigh},
}

type Complaint struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name           string `json:"name" bson:"name" index:"text"`
	Email          string `json:"email,omitempty" bson:"email,omitempty"`
	Phone          string `json:"phone" bson:"phone" index:"single"`
	Subject        string `json:"subject" bson:"subject"`
	Description    string `json:"description" bson:"description"`
	ProductCompany string `json:"productCompany,omitempty" bson:"productCompany,omitempty" index:"compound:status_company"`
	Priority       string `json:"priority" bson:"priority" index:"single"`
	Status         string `json:"status" bson:"status" index:"single;compound:status_company"`
	Attachment     string `json:"attachment,omitempty" bson:"attachment,omitempty"`
	ResolvedAt     int64  `json:"resolvedAt,omitempty" bson:"resolvedAt,omitempty"`

	Remarks []basemodels.Remark `json:"remarks,omitempty" bson:"remarks,omitempty"`

	basemodels.Tracking `bson:",inline"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
