// Package models - internship applications (intern_applied_data).
package models

import (
	basemodels "edu_crm/internal/api/base/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusApplied     = "applied"
	StatusShortlisted = "shortlisted"
	StatusInterviewed = "interviewed"
	StatusSelected    = "selected"
	StatusRejected    = "rejected"
	StatusOnHold      = "on_hold"
)

var Statuses = map[string][]string{
	"status": {StatusApplied, StatusShortlisted, StatusInterviewed, StatusSelected, StatusRejected, StatusOnHold},
}

type InternAppliedData struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name        string `json:"name" bson:"name" index:"text"`
	Email       string `json:"email" bson:"email" index:"single"`
	Phone       string `json:"phone" bson:"phone" index:"single"`
	Gender      string `json:"gender,omitempty" bson:"gender,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	Address     string `json:"address,omitempty" bson:"address,omitempty"`
	City        string `json:"city,omitempty" bson:"city,omitempty"`
	State       string `json:"state,omitempty" bson:"state,omitempty"`

	College       string   `json:"college,omitempty" bson:"college,omitempty"`
	Degree        string   `json:"degree,omitempty" bson:"degree,omitempty"`
	Branch        string   `json:"branch,omitempty" bson:"branch,omitempty"`
	YearOfPassing int      `json:"yearOfPassing,omitempty" bson:"yearOfPassing,omitempty"`
	CGPA          float64  `json:"cgpa,omitempty" bson:"cgpa,omitempty"`
	Skills        []string `json:"skills,omitempty" bson:"skills,omitempty"`

	Domain        string `json:"domain,omitempty" bson:"domain,omitempty" index:"single"`
	Duration      string `json:"duration,omitempty" bson:"duration,omitempty"`
	PreferredMode string `json:"preferredMode,omitempty" bson:"preferredMode,omitempty"`
	LinkedIn      string `json:"linkedIn,omitempty" bson:"linkedIn,omitempty"`
	GitHub        string `json:"gitHub,omitempty" bson:"gitHub,omitempty"`
	Portfolio     string `json:"portfolio,omitempty" bson:"portfolio,omitempty"`

	ProductCompany string `json:"productCompany,omitempty" bson:"productCompany,omitempty" index:"compound:status_company"`
	Status         string `json:"status" bson:"status" index:"single;compound:status_company"`
	Resume         string `json:"resume,omitempty" bson:"resume,omitempty"`
	Photo          string `json:"photo,omitempty" bson:"photo,omitempty"`

	Remarks []basemodels.Remark `json:"remarks,omitempty" bson:"remarks,omitempty"`

	basemodels.Assignment `bson:",inline"`
	basemodels.Tracking   `bson:",inline"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

func (a InternAppliedData) RecordID() primitive.ObjectID { return a.ID }

func (a InternAppliedData) Ref() basemodels.AssignedRef {
	return basemodels.AssignedRef{ID: a.ID, Name: a.Name, Email: a.Email, Phone: a.Phone, Status: a.Status}
}
