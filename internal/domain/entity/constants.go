package entity

// Status constants for Employee
const (
	StatusPending            = "pending"
	StatusVerifiedByEmployee = "verified_by_employee"
	StatusApproved           = "approved"
)

// Role constants for workflow actors
const (
	RoleAdmin       = "admin"
	RoleEmployee    = "employee"
	RoleVerifikator = "verifikator"
)
