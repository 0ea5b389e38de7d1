package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Capability is an action a role may be granted.
type Capability string

const (
	CapabilityBookActivity     Capability = "book_activity"
	CapabilityManageActivities Capability = "manage_activities"
)

var roleCapabilities = map[Role][]Capability{
	RoleUser:  {CapabilityBookActivity},
	RoleAdmin: {CapabilityBookActivity, CapabilityManageActivities},
}

func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Allows reports whether the role is granted the capability. Unknown roles are granted nothing.
func (r Role) Allows(c Capability) bool {
	for _, granted := range roleCapabilities[r] {
		if granted == c {
			return true
		}
	}
	return false
}
