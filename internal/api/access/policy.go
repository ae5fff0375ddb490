package access

import (
	"time"

	basemodels "edu_crm/internal/api/base/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Policy describes who is auto-assigned on create, who sees a scoped view and who may reassign.
type Policy struct {
	AutoAssign []string
	Scoped     []string
	Assigners  []string
}

var (
	// FormPolicy applies to leads.
	FormPolicy = Policy{
		AutoAssign: []string{RoleSales, RoleMarketing},
		Scoped:     []string{RoleSales, RoleMarketing},
		Assigners:  Assigners,
	}

	// ApplicationPolicy applies to enrollments and intern applications.
	ApplicationPolicy = Policy{
		AutoAssign: []string{RoleSales, RoleMarketing, RoleCounsellor, RoleTelecaller, RoleHR},
		Scoped:     []string{RoleSales, RoleMarketing, RoleHR},
		Assigners:  Assigners,
	}
)

// IsScoped reports whether the caller only sees records assigned to them or unassigned.
func (p Policy) IsScoped(id *Identity) bool {
	return id.HasRole(p.Scoped...)
}

// VisibilityFilter returns the filter restricting a scoped caller. Full-view callers get an empty filter.
func (p Policy) VisibilityFilter(id *Identity) bson.M {
	if !p.IsScoped(id) {
		return bson.M{}
	}
	return bson.M{"$or": []bson.M{
		{"assignedTo": id.ID},
		{"assignedTo": nil},
	}}
}

// CanSee reports whether a record with the given assignment is visible to the caller.
func (p Policy) CanSee(id *Identity, a basemodels.Assignment) bool {
	if !p.IsScoped(id) {
		return true
	}
	return a.AssignedTo == nil || *a.AssignedTo == id.ID
}

// CanAssign reports whether the caller may reassign records.
func (p Policy) CanAssign(id *Identity) bool {
	return id.HasRole(p.Assigners...)
}

// AutoAssignment returns the assignment to stamp on a record created by the caller, or the zero value.
func (p Policy) AutoAssignment(id *Identity) basemodels.Assignment {
	if !id.HasRole(p.AutoAssign...) {
		return basemodels.Assignment{}
	}
	return NewAssignment(id.ID, id, time.Now())
}

// NewAssignment builds an assignment of a record to assignee by the caller.
func NewAssignment(assignee primitive.ObjectID, by *Identity, at time.Time) basemodels.Assignment {
	to := assignee
	a := basemodels.Assignment{AssignedTo: &to, AssignedAt: at.UnixMilli()}
	if by != nil {
		byID := by.ID
		a.AssignedBy = &byID
		a.AssignedByName = by.Name
	}
	return a
}

// Merge combines a visibility filter with another filter.
func Merge(filters ...bson.M) bson.M {
	var parts []bson.M
	for _, f := range filters {
		if len(f) > 0 {
			parts = append(parts, f)
		}
	}
	switch len(parts) {
	case 0:
		return bson.M{}
	case 1:
		return parts[0]
	}
	return bson.M{"$and": parts}
}
