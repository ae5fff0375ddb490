// Package models - uploaded gallery images (images).
package models

import (
	basemodels "edu_crm/internal/api/base/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Image struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Title          string `json:"title" bson:"title" index:"text"`
	Category       string `json:"category,omitempty" bson:"category,omitempty" index:"single"`
	ProductCompany string `json:"productCompany,omitempty" bson:"productCompany,omitempty" index:"single"`
	AltText        string `json:"altText,omitempty" bson:"altText,omitempty"`
	URL            string `json:"url" bson:"url"`

	basemodels.Tracking `bson:",inline"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
