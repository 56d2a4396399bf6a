package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andikurnia/siperjaka/internal/application/port"
	"github.com/andikurnia/siperjaka/internal/domain/entity"
	"github.com/andikurnia/siperjaka/internal/domain/workflow"
	"github.com/andikurnia/siperjaka/internal/format"
	"github.com/andikurnia/siperjaka/pkg/utils"
)

// Logger interface for minimal logging dependency
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Actor identifies who is invoking a workflow operation. Authentication has
// already happened upstream; the core only enforces role and ownership.
type Actor struct {
	Role workflow.Role
	NIP  string
}

// EmployeeInput carries the full field set for administrative create/update.
type EmployeeInput struct {
	NIP             string `json:"nip"`
	Name            string `json:"name"`
	PlaceOfBirth    string `json:"place_of_birth"`
	DateOfBirth     string `json:"date_of_birth"`
	Education       string `json:"education"`
	Address         string `json:"address"`
	Position        string `json:"position"`
	Unit            string `json:"unit"`
	PlacementUnit   string `json:"placement_unit"`
	AgreementNumber string `json:"agreement_number"`
	SalaryAmount    string `json:"salary_amount"`
	SPMTNumber      string `json:"spmt_number"`
	SKNumber        string `json:"sk_number"`
	SKDate          string `json:"sk_date"`
	TMTDate         string `json:"tmt_date"`
	SPMTDate        string `json:"spmt_date"`
}

// EmployeeEdit carries the fields an employee may correct on their own
// pending record. Identity and appointment fields are administrator-only.
type EmployeeEdit struct {
	Name         *string `json:"name,omitempty"`
	PlaceOfBirth *string `json:"place_of_birth,omitempty"`
	DateOfBirth  *string `json:"date_of_birth,omitempty"`
	Education    *string `json:"education,omitempty"`
	Address      *string `json:"address,omitempty"`
}

// BulkRow is one raw row from a bulk import source.
type BulkRow struct {
	NIP             string
	Name            string
	PlaceOfBirth    string
	DateOfBirth     string
	Education       string
	Address         string
	Position        string
	Unit            string
	PlacementUnit   string
	AgreementNumber string
	SalaryAmount    string
}

// ImportResult summarizes a bulk import application.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// EmployeeService is the workflow engine: every status transition and field
// write goes through here, validated against the current status and the
// caller's role.
type EmployeeService interface {
	List(ctx context.Context) ([]*entity.Employee, error)
	Get(ctx context.Context, id string) (*entity.Employee, error)
	Create(ctx context.Context, actor Actor, input EmployeeInput) (*entity.Employee, error)
	EmployeeEdit(ctx context.Context, actor Actor, id string, edit EmployeeEdit) (*entity.Employee, error)
	SubmitForVerification(ctx context.Context, actor Actor, id string) (*entity.Employee, error)
	VerifierApprove(ctx context.Context, actor Actor, id string) (*entity.Employee, error)
	AdminUpdate(ctx context.Context, actor Actor, id string, input EmployeeInput) (*entity.Employee, error)
	AdminSetStatus(ctx context.Context, actor Actor, id, status string) (*entity.Employee, error)
	AdminDelete(ctx context.Context, actor Actor, id string) error
	ApplyImport(ctx context.Context, actor Actor, rows []BulkRow) (*ImportResult, error)
}

type employeeServiceImpl struct {
	repo   port.EmployeeRepository
	logger Logger
}

// NewEmployeeService creates a new EmployeeService backed by the given store.
func NewEmployeeService(repo port.EmployeeRepository, logger Logger) EmployeeService {
	return &employeeServiceImpl{repo: repo, logger: logger}
}

func (s *employeeServiceImpl) List(ctx context.Context) ([]*entity.Employee, error) {
	return s.repo.List(ctx)
}

func (s *employeeServiceImpl) Get(ctx context.Context, id string) (*entity.Employee, error) {
	if id == "" {
		return nil, validationErr("id", "must not be empty")
	}

	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, ErrRecordNotFound
	}
	return emp, nil
}

// Create registers a new record in pending status. Admin only.
func (s *employeeServiceImpl) Create(ctx context.Context, actor Actor, input EmployeeInput) (*entity.Employee, error) {
	if err := requireRole(actor, workflow.RoleAdmin); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, validationErr("name", "must not be empty")
	}
	if err := utils.ValidateNIP(input.NIP); err != nil {
		return nil, validationErr("nip", err.Error())
	}

	existing, err := s.repo.GetByNIP(ctx, input.NIP)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, validationErr("nip", "already registered")
	}

	now := time.Now()
	emp := &entity.Employee{
		ID:        uuid.NewString(),
		Status:    entity.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyInput(emp, input)

	if err := s.repo.Upsert(ctx, emp); err != nil {
		s.logger.Error("Failed to create employee", "nip", input.NIP, "error", err)
		return nil, err
	}

	s.logger.Info("Employee created", "id", emp.ID, "nip", emp.NIP)
	return emp, nil
}

// EmployeeEdit lets the owning employee correct their own data while the
// record is still pending. Once the record leaves pending the employee has
// no write access at all.
func (s *employeeServiceImpl) EmployeeEdit(ctx context.Context, actor Actor, id string, edit EmployeeEdit) (*entity.Employee, error) {
	if err := requireRole(actor, workflow.RoleEmployee); err != nil {
		return nil, err
	}

	emp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp.NIP != actor.NIP {
		return nil, validationErr("nip", "record belongs to another employee")
	}

	machine, err := workflow.NewApprovalMachine(workflow.Status(emp.Status))
	if err != nil {
		return nil, err
	}
	if err := machine.Fire(actor.Role, workflow.TriggerEmployeeEdit); err != nil {
		return nil, err
	}

	if edit.Name != nil {
		emp.Name = *edit.Name
	}
	if edit.PlaceOfBirth != nil {
		emp.PlaceOfBirth = *edit.PlaceOfBirth
	}
	if edit.DateOfBirth != nil {
		emp.DateOfBirth = *edit.DateOfBirth
	}
	if edit.Education != nil {
		emp.Education = *edit.Education
	}
	if edit.Address != nil {
		emp.Address = *edit.Address
	}
	emp.UpdatedAt = time.Now()

	if err := s.repo.Upsert(ctx, emp); err != nil {
		s.logger.Error("Failed to save employee edit", "id", id, "error", err)
		return nil, err
	}
	return emp, nil
}

// SubmitForVerification is the employee's confirmed self-certification,
// moving the record from pending to verified_by_employee.
func (s *employeeServiceImpl) SubmitForVerification(ctx context.Context, actor Actor, id string) (*entity.Employee, error) {
	if err := requireRole(actor, workflow.RoleEmployee); err != nil {
		return nil, err
	}

	emp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp.NIP != actor.NIP {
		return nil, validationErr("nip", "record belongs to another employee")
	}

	return s.fire(ctx, emp, actor.Role, workflow.TriggerEmployeeSubmit)
}

// VerifierApprove is the second-stage approval. Only valid when the current
// status is exactly verified_by_employee.
func (s *employeeServiceImpl) VerifierApprove(ctx context.Context, actor Actor, id string) (*entity.Employee, error) {
	if err := requireRole(actor, workflow.RoleVerifikator); err != nil {
		return nil, err
	}

	emp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.fire(ctx, emp, actor.Role, workflow.TriggerVerifierApprove)
}

// AdminUpdate replaces any field on the record, regardless of status.
func (s *employeeServiceImpl) AdminUpdate(ctx context.Context, actor Actor, id string, input EmployeeInput) (*entity.Employee, error) {
	if err := requireRole(actor, workflow.RoleAdmin); err != nil {
		return nil, err
	}

	emp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.NIP != emp.NIP {
		if err := utils.ValidateNIP(input.NIP); err != nil {
			return nil, validationErr("nip", err.Error())
		}
		other, err := s.repo.GetByNIP(ctx, input.NIP)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != emp.ID {
			return nil, validationErr("nip", "already registered")
		}
	}

	applyInput(emp, input)
	emp.UpdatedAt = time.Now()

	if err := s.repo.Upsert(ctx, emp); err != nil {
		s.logger.Error("Failed to save admin update", "id", id, "error", err)
		return nil, err
	}
	return emp, nil
}

// AdminSetStatus forces any valid status, bypassing the normal flow.
func (s *employeeServiceImpl) AdminSetStatus(ctx context.Context, actor Actor, id, status string) (*entity.Employee, error) {
	if err := requireRole(actor, workflow.RoleAdmin); err != nil {
		return nil, err
	}
	if !workflow.Status(status).IsValid() {
		return nil, validationErr("status", "not a defined lifecycle value")
	}

	emp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	emp.Status = status
	emp.UpdatedAt = time.Now()

	if err := s.repo.Upsert(ctx, emp); err != nil {
		s.logger.Error("Failed to set status", "id", id, "status", status, "error", err)
		return nil, err
	}

	s.logger.Info("Status overridden", "id", id, "status", status)
	return emp, nil
}

// AdminDelete permanently removes the record. Terminal and unrecoverable.
func (s *employeeServiceImpl) AdminDelete(ctx context.Context, actor Actor, id string) error {
	if err := requireRole(actor, workflow.RoleAdmin); err != nil {
		return err
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete employee", "id", id, "error", err)
		return err
	}

	s.logger.Info("Employee deleted", "id", id)
	return nil
}

// ApplyImport upserts a batch of raw rows keyed by NIP. Rows missing both
// name and NIP are skipped; imported records are always forced to pending.
func (s *employeeServiceImpl) ApplyImport(ctx context.Context, actor Actor, rows []BulkRow) (*ImportResult, error) {
	if err := requireRole(actor, workflow.RoleAdmin); err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for _, row := range rows {
		if row.Name == "" && row.NIP == "" {
			result.Skipped++
			continue
		}

		now := time.Now()
		emp := &entity.Employee{
			ID:        uuid.NewString(),
			CreatedAt: now,
		}
		// Rows are keyed by NIP, the empty key included: a row without a NIP
		// replaces the previous NIP-less record instead of colliding with it
		// on the unique constraint.
		existing, err := s.repo.GetByNIP(ctx, row.NIP)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			emp = existing
		}

		emp.NIP = row.NIP
		emp.Name = row.Name
		emp.PlaceOfBirth = row.PlaceOfBirth
		emp.DateOfBirth = row.DateOfBirth
		emp.Education = row.Education
		emp.Address = row.Address
		emp.Position = row.Position
		emp.Unit = row.Unit
		emp.PlacementUnit = row.PlacementUnit
		emp.AgreementNumber = row.AgreementNumber
		emp.SalaryAmount = format.GroupThousands(row.SalaryAmount)
		emp.SalaryText = format.SalaryWords(row.SalaryAmount)
		emp.Status = entity.StatusPending
		emp.UpdatedAt = now

		if err := s.repo.Upsert(ctx, emp); err != nil {
			s.logger.Error("Failed to import row", "nip", row.NIP, "error", err)
			return nil, err
		}
		result.Imported++
	}

	s.logger.Info("Bulk import applied", "imported", result.Imported, "skipped", result.Skipped)
	return result, nil
}

// fire runs one machine transition and persists the new status. A failed
// upsert leaves the stored record untouched; the caller re-presents the
// prior state.
func (s *employeeServiceImpl) fire(ctx context.Context, emp *entity.Employee, role workflow.Role, trigger workflow.Trigger) (*entity.Employee, error) {
	machine, err := workflow.NewApprovalMachine(workflow.Status(emp.Status))
	if err != nil {
		return nil, err
	}
	if err := machine.Fire(role, trigger); err != nil {
		return nil, err
	}

	emp.Status = machine.Status().String()
	emp.UpdatedAt = time.Now()

	if err := s.repo.Upsert(ctx, emp); err != nil {
		s.logger.Error("Failed to persist transition", "id", emp.ID, "trigger", trigger.String(), "error", err)
		return nil, err
	}

	s.logger.Info("Status transition", "id", emp.ID, "trigger", trigger.String(), "status", emp.Status)
	return emp, nil
}

// applyInput copies the administrative field set onto the record and
// re-derives the salary pair: the formatted amount and its terbilang text
// never diverge.
func applyInput(emp *entity.Employee, input EmployeeInput) {
	emp.NIP = input.NIP
	emp.Name = input.Name
	emp.PlaceOfBirth = input.PlaceOfBirth
	emp.DateOfBirth = input.DateOfBirth
	emp.Education = input.Education
	emp.Address = input.Address
	emp.Position = input.Position
	emp.Unit = input.Unit
	emp.PlacementUnit = input.PlacementUnit
	emp.AgreementNumber = input.AgreementNumber
	emp.SPMTNumber = input.SPMTNumber
	emp.SKNumber = input.SKNumber
	emp.SKDate = input.SKDate
	emp.TMTDate = input.TMTDate
	emp.SPMTDate = input.SPMTDate
	emp.SalaryAmount = format.GroupThousands(input.SalaryAmount)
	emp.SalaryText = format.SalaryWords(input.SalaryAmount)
}

func requireRole(actor Actor, role workflow.Role) error {
	if actor.Role != role {
		return validationErr("role", "operation requires role "+role.String())
	}
	return nil
}
