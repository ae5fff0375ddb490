package notification

// Notification types.
const (
	TypeLeadAssigned        = "lead_assigned"
	TypeEnrollmentAssigned  = "enrollment_assigned"
	TypeApplicationAssigned = "application_assigned"
	TypeNewLead             = "new_lead"
	TypeFollowUpReminder    = "follow_up_reminder"
	TypeBroadcast           = "broadcast"
)

// Types lists every notification type.
var Types = []string{
	TypeLeadAssigned, TypeEnrollmentAssigned, TypeApplicationAssigned,
	TypeNewLead, TypeFollowUpReminder, TypeBroadcast,
}

// Entity types referenced by notifications and assignment lookups.
const (
	EntityForm       = "form"
	EntityEnrollment = "enrollment"
	EntityIntern     = "intern"
)

// AssignedType returns the notification type sent when a record of entityType is assigned.
func AssignedType(entityType string) string {
	switch entityType {
	case EntityEnrollment:
		return TypeEnrollmentAssigned
	case EntityIntern:
		return TypeApplicationAssigned
	default:
		return TypeLeadAssigned
	}
}
