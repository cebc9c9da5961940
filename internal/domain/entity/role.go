// Package entity contains the core business objects of the project.
package entity

// Role represents the access level of a dashboard user.
type Role string

const (
	// RoleEditor can manage site content, stations, partners and messages.
	RoleEditor Role = "editor"
	// RoleAdmin can additionally manage dashboard users. Admin implies
	// every editor capability.
	RoleAdmin Role = "admin"
)

// roleRank defines the partial order between roles. A higher rank grants
// every capability of the ranks below it.
var roleRank = map[Role]int{
	RoleEditor: 1,
	RoleAdmin:  2,
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleEditor, RoleAdmin:
		return true
	default:
		return false
	}
}

// AtLeast reports whether r grants all capabilities of required.
// RoleAdmin satisfies both RoleAdmin and RoleEditor requirements.
func (r Role) AtLeast(required Role) bool {
	rank, ok := roleRank[r]
	if !ok {
		return false
	}
	requiredRank, ok := roleRank[required]
	if !ok {
		return false
	}

	return rank >= requiredRank
}

// RoleFromString converts a string to a Role, reporting validity.
func RoleFromString(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
