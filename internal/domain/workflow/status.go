package workflow

// Status represents a record's position in the approval lifecycle
type Status string

const (
	StatusPending            Status = "pending"
	StatusVerifiedByEmployee Status = "verified_by_employee"
	StatusApproved           Status = "approved"
)

var validStatuses = map[Status]bool{
	StatusPending:            true,
	StatusVerifiedByEmployee: true,
	StatusApproved:           true,
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// IsValid returns true if the status is one of the three defined lifecycle
// values. There is no terminal status: approved records remain subject to
// administrative override.
func (s Status) IsValid() bool {
	return validStatuses[s]
}
