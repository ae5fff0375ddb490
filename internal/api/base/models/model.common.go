package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActorRef identifies the team member who created or last changed a record.
type ActorRef struct {
	ID    primitive.ObjectID `json:"id" bson:"id"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email,omitempty" bson:"email,omitempty"`
	Role  string             `json:"role,omitempty" bson:"role,omitempty"`
}

// Remark is a timestamped note appended to a record.
type Remark struct {
	Text    string   `json:"text" bson:"text"`
	AddedBy ActorRef `json:"addedBy" bson:"addedBy"`
	AddedAt int64    `json:"addedAt" bson:"addedAt"`
}

// Assignment is inlined into every assignable record. AssignedTo nil means unassigned.
type Assignment struct {
	AssignedTo     *primitive.ObjectID `json:"assignedTo" bson:"assignedTo" index:"single:1"`
	AssignedBy     *primitive.ObjectID `json:"assignedBy,omitempty" bson:"assignedBy,omitempty"`
	AssignedByName string              `json:"assignedByName,omitempty" bson:"assignedByName,omitempty"`
	AssignedAt     int64               `json:"assignedAt,omitempty" bson:"assignedAt,omitempty"`
}

// AssignmentInfo is promoted to every model embedding Assignment.
func (a Assignment) AssignmentInfo() Assignment {
	return a
}

// IsAssignedTo reports whether the record is assigned to id.
func (a Assignment) IsAssignedTo(id primitive.ObjectID) bool {
	return a.AssignedTo != nil && *a.AssignedTo == id
}

// Tracking is inlined into records that remember their creator and last editor.
type Tracking struct {
	CreatedBy *ActorRef `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy *ActorRef `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
}

// AssignedRef is the projection used when listing the records assigned to a team member.
type AssignedRef struct {
	ID     primitive.ObjectID `json:"id" bson:"_id"`
	Name   string             `json:"name" bson:"name"`
	Email  string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone  string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Status string             `json:"status,omitempty" bson:"status,omitempty"`
}
