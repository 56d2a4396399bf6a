package workflow

// Role identifies the actor class attempting a transition
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleEmployee    Role = "employee"
	RoleVerifikator Role = "verifikator"
)

var validRoles = map[Role]bool{
	RoleAdmin:       true,
	RoleEmployee:    true,
	RoleVerifikator: true,
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// IsValid returns true if the role is one of the three defined actor classes
func (r Role) IsValid() bool {
	return validRoles[r]
}
