// Package models - in-app notifications (notifications).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is one message addressed to a team member. Push delivery is attempted after the
// document is stored; pushAttempted/pushDelivered record the outcome.
type Notification struct {
	ID            primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Recipient     primitive.ObjectID  `json:"recipient" bson:"recipient" index:"compound:recipient_read"`
	Title         string              `json:"title" bson:"title"`
	Body          string              `json:"body,omitempty" bson:"body,omitempty"`
	Type          string              `json:"type" bson:"type" index:"single"`
	EntityType    string              `json:"entityType,omitempty" bson:"entityType,omitempty"`
	EntityID      *primitive.ObjectID `json:"entityId,omitempty" bson:"entityId,omitempty"`
	IsRead        bool                `json:"isRead" bson:"isRead" index:"compound:recipient_read"`
	ReadAt        int64               `json:"readAt,omitempty" bson:"readAt,omitempty"`
	PushAttempted bool                `json:"pushAttempted" bson:"pushAttempted"`
	PushDelivered bool                `json:"pushDelivered" bson:"pushDelivered"`
	CreatedAt     int64               `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt     int64               `json:"updatedAt" bson:"updatedAt"`
}
