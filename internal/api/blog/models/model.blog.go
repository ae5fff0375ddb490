// Package models - blog posts published on the product sites (blogs).
package models

import (
	basemodels "edu_crm/internal/api/base/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type Blog struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Title           string   `json:"title" bson:"title" index:"text"`
	Slug            string   `json:"slug" bson:"slug" index:"unique"`
	Content         string   `json:"content" bson:"content"`
	Excerpt         string   `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	Author          string   `json:"author,omitempty" bson:"author,omitempty"`
	Tags            []string `json:"tags,omitempty" bson:"tags,omitempty" index:"single"`
	Category        string   `json:"category,omitempty" bson:"category,omitempty" index:"single"`
	ProductCompany  string   `json:"productCompany,omitempty" bson:"productCompany,omitempty" index:"compound:status_company"`
	Status          string   `json:"status" bson:"status" index:"single;compound:status_company"`
	PublishedAt     int64    `json:"publishedAt,omitempty" bson:"publishedAt,omitempty" index:"single,order:-1"`
	MetaTitle       string   `json:"metaTitle,omitempty" bson:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty" bson:"metaDescription,omitempty"`
	CoverImage      string   `json:"coverImage,omitempty" bson:"coverImage,omitempty"`

	basemodels.Tracking `bson:",inline"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
