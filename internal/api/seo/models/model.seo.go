// Package models - per-page SEO metadata for the product sites (seo).
package models

import (
	basemodels "edu_crm/internal/api/base/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seo is unique per page and product company.
type Seo struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Page            string   `json:"page" bson:"page" index:"compound:page_company_unique"`
	ProductCompany  string   `json:"productCompany" bson:"productCompany" index:"compound:page_company_unique"`
	MetaTitle       string   `json:"metaTitle" bson:"metaTitle"`
	MetaDescription string   `json:"metaDescription,omitempty" bson:"metaDescription,omitempty"`
	Keywords        []string `json:"keywords,omitempty" bson:"keywords,omitempty"`
	CanonicalURL    string   `json:"canonicalUrl,omitempty" bson:"canonicalUrl,omitempty"`
	OgImage         string   `json:"ogImage,omitempty" bson:"ogImage,omitempty"`

	basemodels.Tracking `bson:",inline"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
