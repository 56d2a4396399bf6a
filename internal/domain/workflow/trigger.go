package workflow

// Trigger represents an event that can cause a status transition
type Trigger string

const (
	// TriggerEmployeeEdit is the self-transition that keeps a pending record
	// pending while the owning employee corrects their own data.
	TriggerEmployeeEdit Trigger = "EMPLOYEE_EDIT"

	// TriggerEmployeeSubmit is the employee's confirmed self-certification.
	TriggerEmployeeSubmit Trigger = "EMPLOYEE_SUBMIT"

	// TriggerVerifierApprove is the second-stage approval by the verifikator.
	TriggerVerifierApprove Trigger = "VERIFIER_APPROVE"
)

// String returns the string representation of the trigger
func (t Trigger) String() string {
	return string(t)
}
