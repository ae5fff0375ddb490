// Package models - product companies the CRM serves (companies).
package models

import (
	basemodels "edu_crm/internal/api/base/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Company struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name        string `json:"name" bson:"name"`
	Slug        string `json:"slug" bson:"slug" index:"unique"`
	Website     string `json:"website,omitempty" bson:"website,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Logo        string `json:"logo,omitempty" bson:"logo,omitempty"`
	IsActive    bool   `json:"isActive" bson:"isActive" index:"single"`

	basemodels.Tracking `bson:",inline"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
