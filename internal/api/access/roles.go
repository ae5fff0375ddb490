// Package access holds caller identity, role sets and the assignment/visibility policies.
package access

const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleSales      = "sales"
	RoleMarketing  = "marketing"
	RoleCounsellor = "counsellor"
	RoleTelecaller = "telecaller"
	RoleHR         = "hr"
	RoleDeveloper  = "developer"
	RoleAnalyst    = "analyst"
)

// AllRoles lists every role a team member can hold.
var AllRoles = []string{
	RoleAdmin, RoleManager, RoleSales, RoleMarketing, RoleCounsellor,
	RoleTelecaller, RoleHR, RoleDeveloper, RoleAnalyst,
}

// Route allow-lists.
var (
	Admins    = []string{RoleAdmin, RoleManager}
	AdminOnly = []string{RoleAdmin}
	Assigners = []string{RoleAdmin, RoleManager, RoleCounsellor, RoleTelecaller}
	Staff     = AllRoles

	FormReaders        = []string{RoleAdmin, RoleManager, RoleSales, RoleMarketing, RoleCounsellor, RoleTelecaller, RoleAnalyst}
	FormWriters        = Without(FormReaders, RoleAnalyst)
	ApplicationReaders = append(Clone(FormReaders), RoleHR)
	ApplicationWriters = Without(ApplicationReaders, RoleAnalyst)

	Content     = []string{RoleAdmin, RoleManager, RoleMarketing, RoleDeveloper}
	HR          = []string{RoleAdmin, RoleManager, RoleHR}
	TeamReaders = []string{RoleAdmin, RoleManager, RoleCounsellor, RoleTelecaller}
	Admission   = []string{RoleAdmin, RoleManager, RoleCounsellor, RoleTelecaller}
	Complaints  = []string{RoleAdmin, RoleManager, RoleSales, RoleCounsellor, RoleTelecaller}
	B2B         = []string{RoleAdmin, RoleManager, RoleSales, RoleMarketing}
	Payments    = []string{RoleAdmin, RoleManager, RoleAnalyst}
	Reports     = []string{RoleAdmin, RoleManager, RoleAnalyst}
	Mailers     = []string{RoleAdmin, RoleManager, RoleMarketing, RoleHR}
)

// Clone returns a copy of roles.
func Clone(roles []string) []string {
	return append([]string(nil), roles...)
}

// Without returns roles minus the excluded ones.
func Without(roles []string, excluded ...string) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		if !contains(excluded, r) {
			out = append(out, r)
		}
	}
	return out
}

// IsKnownRole reports whether role is one of AllRoles.
func IsKnownRole(role string) bool {
	return contains(AllRoles, role)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
