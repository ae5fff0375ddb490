package access

import (
	basemodels "edu_crm/internal/api/base/models"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocalsKey is the fiber.Ctx locals key holding the *Identity of an authenticated caller.
const LocalsKey = "identity"

// Identity is the caller resolved from the bearer token claims.
type Identity struct {
	ID    primitive.ObjectID `json:"id"`
	Email string             `json:"email"`
	Name  string             `json:"name"`
	Role  string             `json:"role"`
}

// HasRole reports whether the caller holds one of roles. A nil identity has no role.
func (i *Identity) HasRole(roles ...string) bool {
	if i == nil {
		return false
	}
	return contains(roles, i.Role)
}

// IsAdmin reports admin or manager.
func (i *Identity) IsAdmin() bool {
	return i.HasRole(Admins...)
}

// Actor is the ActorRef stamped onto records the caller creates or changes.
func (i *Identity) Actor() *basemodels.ActorRef {
	if i == nil {
		return nil
	}
	return &basemodels.ActorRef{ID: i.ID, Name: i.Name, Email: i.Email, Role: i.Role}
}

// FromCtx returns the identity stored by the auth middleware, or nil for anonymous callers.
func FromCtx(c fiber.Ctx) *Identity {
	id, _ := c.Locals(LocalsKey).(*Identity)
	return id
}

// SetCtx stores the identity for downstream handlers.
func SetCtx(c fiber.Ctx, id *Identity) {
	c.Locals(LocalsKey, id)
	c.Locals("user_id", id.ID.Hex())
}

// IDHex returns the caller's id for logs, or "anonymous".
func (i *Identity) IDHex() string {
	if i == nil {
		return "anonymous"
	}
	return i.ID.Hex()
}

// StampUpdate records the caller as updatedBy on set.
func StampUpdate(set bson.M, i *Identity) bson.M {
	if ref := i.Actor(); ref != nil {
		set["updatedBy"] = ref
	}
	return set
}
