// Package models - leads captured from website forms, staff entry or spreadsheet import (forms).
package models

import (
	basemodels "edu_crm/internal/api/base/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead statuses.
const (
	StatusUnread        = "unread"
	StatusRead          = "read"
	StatusInterested    = "interested"
	StatusNotInterested = "not_interested"
	StatusFollowUp      = "follow_up"
	StatusConverted     = "converted"
	StatusJunk          = "junk"
)

// Statuses lists the allowed values per status field.
var Statuses = map[string][]string{
	"status": {StatusUnread, StatusRead, StatusInterested, StatusNotInterested, StatusFollowUp, StatusConverted, StatusJunk},
}

// Form is a lead.
type Form struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name           string `json:"name" bson:"name" index:"text"`
	Email          string `json:"email,omitempty" bson:"email,omitempty" index:"single"`
	Phone          string `json:"phone" bson:"phone" index:"single"`
	Course         string `json:"course,omitempty" bson:"course,omitempty"`
	Message        string `json:"message,omitempty" bson:"message,omitempty"`
	Source         string `json:"source,omitempty" bson:"source,omitempty"`
	City           string `json:"city,omitempty" bson:"city,omitempty"`
	ProductCompany string `json:"productCompany,omitempty" bson:"productCompany,omitempty" index:"compound:status_company"`
	Status         string `json:"status" bson:"status" index:"single;compound:status_company"`
	Resume         string `json:"resume,omitempty" bson:"resume,omitempty"`
	NextFollowUpAt int64  `json:"nextFollowUpAt,omitempty" bson:"nextFollowUpAt,omitempty" index:"single"`

	Remarks []basemodels.Remark `json:"remarks,omitempty" bson:"remarks,omitempty"`

	basemodels.Assignment `bson:",inline"`
	basemodels.Tracking   `bson:",inline"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

func (f Form) RecordID() primitive.ObjectID { return f.ID }

func (f Form) Ref() basemodels.AssignedRef {
	return basemodels.AssignedRef{ID: f.ID, Name: f.Name, Email: f.Email, Phone: f.Phone, Status: f.Status}
}
