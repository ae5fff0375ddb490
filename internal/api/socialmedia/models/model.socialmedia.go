// Package models - social media profile links shown on the public sites (social_media).
package models

import (
	basemodels "edu_crm/internal/api/base/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Platforms accepted for a profile link.
var Platforms = []string{"facebook", "instagram", "linkedin", "twitter", "youtube", "whatsapp"}

type SocialMedia struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Platform       string `json:"platform" bson:"platform" index:"single"`
	URL            string `json:"url" bson:"url"`
	Handle         string `json:"handle,omitempty" bson:"handle,omitempty"`
	ProductCompany string `json:"productCompany,omitempty" bson:"productCompany,omitempty" index:"single"`
	IsActive       bool   `json:"isActive" bson:"isActive" index:"single"`

	basemodels.Tracking `bson:",inline"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
