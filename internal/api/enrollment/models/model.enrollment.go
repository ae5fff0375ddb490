// Package models - course enrollments worked through calls, tests, interviews, fees and admission (enrollments).
package models

import (
	basemodels "edu_crm/internal/api/base/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Statuses lists the allowed values per status field.
var Statuses = map[string][]string{
	"status":                {"new", "in_progress", "enrolled", "dropped"},
	"callStatus":            {"pending", "connected", "not_reachable", "call_back", "not_interested"},
	"interviewStatus":       {"pending", "scheduled", "passed", "failed"},
	"aptitudeStatus":        {"pending", "scheduled", "passed", "failed"},
	"hrStatus":              {"pending", "scheduled", "selected", "rejected"},
	"feesStatus":            {"pending", "partial", "paid", "refunded"},
	"admissionLetterStatus": {"pending", "issued", "accepted"},
}

const (
	StatusNew     = "new"
	StatusPending = "pending"
)

// Education records which levels the student has completed.
type Education struct {
	Tenth          bool `json:"tenth" bson:"tenth"`
	Twelfth        bool `json:"twelfth" bson:"twelfth"`
	Graduation     bool `json:"graduation" bson:"graduation"`
	PostGraduation bool `json:"postGraduation" bson:"postGraduation"`
}

type Enrollment struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name           string    `json:"name" bson:"name" index:"text"`
	Email          string    `json:"email,omitempty" bson:"email,omitempty" index:"single"`
	Phone          string    `json:"phone" bson:"phone" index:"single"`
	Course         string    `json:"course" bson:"course"`
	ProductCompany string    `json:"productCompany,omitempty" bson:"productCompany,omitempty" index:"compound:status_company"`
	Qualification  string    `json:"qualification,omitempty" bson:"qualification,omitempty"`
	Education      Education `json:"education" bson:"education"`

	Status                string `json:"status" bson:"status" index:"single;compound:status_company"`
	CallStatus            string `json:"callStatus" bson:"callStatus"`
	InterviewStatus       string `json:"interviewStatus" bson:"interviewStatus"`
	AptitudeStatus        string `json:"aptitudeStatus" bson:"aptitudeStatus"`
	HRStatus              string `json:"hrStatus" bson:"hrStatus"`
	FeesStatus            string `json:"feesStatus" bson:"feesStatus"`
	AdmissionLetterStatus string `json:"admissionLetterStatus" bson:"admissionLetterStatus"`

	NextFollowUpAt int64               `json:"nextFollowUpAt,omitempty" bson:"nextFollowUpAt,omitempty" index:"single"`
	Remarks        []basemodels.Remark `json:"remarks,omitempty" bson:"remarks,omitempty"`

	basemodels.Assignment `bson:",inline"`
	basemodels.Tracking   `bson:",inline"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

func (e Enrollment) RecordID() primitive.ObjectID { return e.ID }

func (e Enrollment) Ref() basemodels.AssignedRef {
	return basemodels.AssignedRef{ID: e.ID, Name: e.Name, Email: e.Email, Phone: e.Phone, Status: e.Status}
}
