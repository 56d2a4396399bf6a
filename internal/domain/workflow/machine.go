package workflow

import "fmt"

// StateMachine tracks a record's current status and validates role-gated
// transitions against the configured transition table.
type StateMachine interface {
	// Status returns the current status
	Status() Status

	// CanFire returns true if the role may fire the trigger in the current status
	CanFire(role Role, trigger Trigger) bool

	// Fire attempts to execute the trigger as the given role, moving to the
	// target status if the transition table permits it
	Fire(role Role, trigger Trigger) error

	// PermittedTriggers returns all triggers the role can fire in the current status
	PermittedTriggers(role Role) []Trigger
}

// Builder builds a configured state machine. Role permissions live in the
// transition table itself, so every calling surface enforces the same rules.
type Builder interface {
	// Configure returns a configuration for transitions out of the given status
	Configure(status Status) StatusConfiguration

	// Build creates a state machine instance positioned at the given status
	Build(current Status) (StateMachine, error)
}

// StatusConfiguration configures transitions out of a specific status
type StatusConfiguration interface {
	// Permit allows the listed roles to fire the trigger, moving to the target status
	Permit(trigger Trigger, to Status, roles ...Role) StatusConfiguration
}

type transition struct {
	to    Status
	roles map[Role]bool
}

type statusConfig struct {
	from        Status
	transitions map[Trigger]transition
}

type builder struct {
	configurations map[Status]*statusConfig
}

type stateMachine struct {
	current        Status
	configurations map[Status]*statusConfig
}

// NewBuilder creates a new state machine builder
func NewBuilder() Builder {
	return &builder{configurations: make(map[Status]*statusConfig)}
}

// NewApprovalMachine builds the contract-record approval machine positioned
// at the given status: pending -> verified_by_employee (employee submit) ->
// approved (verifier approve), with field edits as a pending self-transition.
// Administrative overrides bypass the machine entirely and are validated
// only against Status.IsValid by the caller.
func NewApprovalMachine(current Status) (StateMachine, error) {
	b := NewBuilder()
	b.Configure(StatusPending).
		Permit(TriggerEmployeeEdit, StatusPending, RoleEmployee).
		Permit(TriggerEmployeeSubmit, StatusVerifiedByEmployee, RoleEmployee)
	b.Configure(StatusVerifiedByEmployee).
		Permit(TriggerVerifierApprove, StatusApproved, RoleVerifikator)
	return b.Build(current)
}

func (b *builder) Configure(status Status) StatusConfiguration {
	if !status.IsValid() {
		panic(fmt.Sprintf("invalid status: %s", status))
	}

	config, exists := b.configurations[status]
	if !exists {
		config = &statusConfig{
			from:        status,
			transitions: make(map[Trigger]transition),
		}
		b.configurations[status] = config
	}

	return config
}

func (b *builder) Build(current Status) (StateMachine, error) {
	if !current.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, current)
	}

	// Copy the table so machines stay independent of later builder changes
	configsCopy := make(map[Status]*statusConfig, len(b.configurations))
	for status, config := range b.configurations {
		transitionsCopy := make(map[Trigger]transition, len(config.transitions))
		for trigger, t := range config.transitions {
			rolesCopy := make(map[Role]bool, len(t.roles))
			for role := range t.roles {
				rolesCopy[role] = true
			}
			transitionsCopy[trigger] = transition{to: t.to, roles: rolesCopy}
		}
		configsCopy[status] = &statusConfig{from: status, transitions: transitionsCopy}
	}

	return &stateMachine{current: current, configurations: configsCopy}, nil
}

func (c *statusConfig) Permit(trigger Trigger, to Status, roles ...Role) StatusConfiguration {
	if !to.IsValid() {
		panic(fmt.Sprintf("invalid target status: %s", to))
	}
	if len(roles) == 0 {
		panic(fmt.Sprintf("trigger %s permits no roles", trigger))
	}

	roleSet := make(map[Role]bool, len(roles))
	for _, role := range roles {
		if !role.IsValid() {
			panic(fmt.Sprintf("invalid role: %s", role))
		}
		roleSet[role] = true
	}

	c.transitions[trigger] = transition{to: to, roles: roleSet}
	return c
}

func (m *stateMachine) Status() Status {
	return m.current
}

func (m *stateMachine) CanFire(role Role, trigger Trigger) bool {
	config, exists := m.configurations[m.current]
	if !exists {
		return false
	}

	t, exists := config.transitions[trigger]
	return exists && t.roles[role]
}

func (m *stateMachine) Fire(role Role, trigger Trigger) error {
	config, exists := m.configurations[m.current]
	if !exists {
		return fmt.Errorf("%w: cannot fire %s from status %s", ErrIllegalTransition, trigger, m.current)
	}

	t, exists := config.transitions[trigger]
	if !exists {
		return fmt.Errorf("%w: cannot fire %s from status %s", ErrIllegalTransition, trigger, m.current)
	}

	if !t.roles[role] {
		return fmt.Errorf("%w: role %s may not fire %s from status %s", ErrIllegalTransition, role, trigger, m.current)
	}

	m.current = t.to
	return nil
}

func (m *stateMachine) PermittedTriggers(role Role) []Trigger {
	config, exists := m.configurations[m.current]
	if !exists {
		return []Trigger{}
	}

	triggers := make([]Trigger, 0, len(config.transitions))
	for trigger, t := range config.transitions {
		if t.roles[role] {
			triggers = append(triggers, trigger)
		}
	}

	return triggers
}
