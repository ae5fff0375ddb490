// Package models - team members (teams). Every staff account is a team member.
package models

import (
	basemodels "edu_crm/internal/api/base/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team is a staff account. The records assigned to a member are derived from each record's
// assignedTo and only filled on single-member reads.
type Team struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name         string   `json:"name" bson:"name"`
	Email        string   `json:"email" bson:"email" index:"unique"`
	Phone        string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Role         string   `json:"role" bson:"role" index:"single"`
	PasswordHash string   `json:"-" bson:"passwordHash"`
	IsActive     bool     `json:"isActive" bson:"isActive" index:"single"`
	Avatar       string   `json:"avatar,omitempty" bson:"avatar,omitempty"`
	PushTokens   []string `json:"-" bson:"pushTokens,omitempty"`
	LastLoginAt  int64    `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`

	basemodels.Tracking `bson:",inline"`

	AssignedLeads []basemodels.AssignedRef `json:"assignedLeads,omitempty" bson:"-"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
