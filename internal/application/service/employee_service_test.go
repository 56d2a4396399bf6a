package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andikurnia/siperjaka/internal/domain/entity"
	"github.com/andikurnia/siperjaka/internal/domain/workflow"
)

// fakeEmployeeRepo is an in-memory stand-in for the record store.
type fakeEmployeeRepo struct {
	records   map[string]*entity.Employee
	upsertErr error
	deleteErr error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{records: make(map[string]*entity.Employee)}
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	out := make([]*entity.Employee, 0, len(f.records))
	for _, emp := range f.records {
		copied := *emp
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	emp, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	copied := *emp
	return &copied, nil
}

func (f *fakeEmployeeRepo) GetByNIP(ctx context.Context, nip string) (*entity.Employee, error) {
	for _, emp := range f.records {
		if emp.NIP == nip {
			copied := *emp
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) Upsert(ctx context.Context, emp *entity.Employee) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	copied := *emp
	f.records[emp.ID] = &copied
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.records, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}

var (
	adminActor    = Actor{Role: workflow.RoleAdmin}
	verifierActor = Actor{Role: workflow.RoleVerifikator}
)

func employeeActor(nip string) Actor {
	return Actor{Role: workflow.RoleEmployee, NIP: nip}
}

func budiInput() EmployeeInput {
	return EmployeeInput{
		NIP:          "198501012022011001",
		Name:         "Budi Santoso",
		PlaceOfBirth: "Demak",
		DateOfBirth:  "1985-01-01",
		Position:     "Pranata Komputer Ahli Pertama",
		Unit:         "Sekretariat Daerah",
		SalaryAmount: "2500000",
	}
}

func newServiceWithBudi(t *testing.T) (EmployeeService, *fakeEmployeeRepo, *entity.Employee) {
	t.Helper()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, nopLogger{})

	emp, err := svc.Create(context.Background(), adminActor, budiInput())
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	return svc, repo, emp
}

func TestCreate_DerivesSalaryPair(t *testing.T) {
	_, _, emp := newServiceWithBudi(t)

	assert.Equal(t, entity.StatusPending, emp.Status)
	assert.Equal(t, "2.500.000", emp.SalaryAmount)
	assert.Equal(t, "Dua Juta Lima Ratus Ribu Rupiah", emp.SalaryText)
	assert.NotEmpty(t, emp.ID)
}

func TestCreate_RejectsDuplicateNIP(t *testing.T) {
	svc, _, _ := newServiceWithBudi(t)

	_, err := svc.Create(context.Background(), adminActor, budiInput())

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "nip", vErr.Field)
}

func TestCreate_RejectsMalformedNIP(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, nopLogger{})

	input := budiInput()
	input.NIP = "12345"
	_, err := svc.Create(context.Background(), adminActor, input)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCreate_RequiresAdmin(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), employeeActor("198501012022011001"), budiInput())

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestSubmitThenApprove_ReachesApproved(t *testing.T) {
	svc, _, emp := newServiceWithBudi(t)
	ctx := context.Background()

	emp, err := svc.SubmitForVerification(ctx, employeeActor(emp.NIP), emp.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusVerifiedByEmployee, emp.Status)

	emp, err = svc.VerifierApprove(ctx, verifierActor, emp.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, emp.Status)
}

func TestVerifierApprove_OnPendingFails(t *testing.T) {
	svc, repo, emp := newServiceWithBudi(t)

	_, err := svc.VerifierApprove(context.Background(), verifierActor, emp.ID)

	assert.ErrorIs(t, err, workflow.ErrIllegalTransition)
	stored, _ := repo.GetByID(context.Background(), emp.ID)
	assert.Equal(t, entity.StatusPending, stored.Status)
}

func TestEmployeeEdit_AfterSubmitFails(t *testing.T) {
	svc, _, emp := newServiceWithBudi(t)
	ctx := context.Background()
	actor := employeeActor(emp.NIP)

	_, err := svc.SubmitForVerification(ctx, actor, emp.ID)
	assert.NoError(t, err)

	name := "Budi S."
	_, err = svc.EmployeeEdit(ctx, actor, emp.ID, EmployeeEdit{Name: &name})
	assert.ErrorIs(t, err, workflow.ErrIllegalTransition)
}

func TestEmployeeEdit_WhilePendingSucceeds(t *testing.T) {
	svc, repo, emp := newServiceWithBudi(t)
	ctx := context.Background()

	address := "Jl. Sultan Fatah No. 10, Demak"
	updated, err := svc.EmployeeEdit(ctx, employeeActor(emp.NIP), emp.ID, EmployeeEdit{Address: &address})

	assert.NoError(t, err)
	assert.Equal(t, address, updated.Address)
	assert.Equal(t, entity.StatusPending, updated.Status)

	stored, _ := repo.GetByID(ctx, emp.ID)
	assert.Equal(t, address, stored.Address)
}

func TestEmployeeEdit_OtherEmployeeRejected(t *testing.T) {
	svc, _, emp := newServiceWithBudi(t)

	name := "Mallory"
	_, err := svc.EmployeeEdit(context.Background(), employeeActor("199901012022011002"), emp.ID, EmployeeEdit{Name: &name})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestAdminSetStatus_Idempotent(t *testing.T) {
	svc, _, emp := newServiceWithBudi(t)
	ctx := context.Background()

	once, err := svc.AdminSetStatus(ctx, adminActor, emp.ID, entity.StatusApproved)
	assert.NoError(t, err)

	twice, err := svc.AdminSetStatus(ctx, adminActor, emp.ID, entity.StatusApproved)
	assert.NoError(t, err)

	assert.Equal(t, once.Status, twice.Status)
	assert.Equal(t, entity.StatusApproved, twice.Status)
}

func TestAdminSetStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, emp := newServiceWithBudi(t)

	_, err := svc.AdminSetStatus(context.Background(), adminActor, emp.ID, "rejected")

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "status", vErr.Field)
}

func TestAdminDelete_RemovesRecord(t *testing.T) {
	svc, repo, emp := newServiceWithBudi(t)
	ctx := context.Background()

	assert.NoError(t, svc.AdminDelete(ctx, adminActor, emp.ID))

	stored, _ := repo.GetByID(ctx, emp.ID)
	assert.Nil(t, stored)

	assert.ErrorIs(t, svc.AdminDelete(ctx, adminActor, emp.ID), ErrRecordNotFound)
}

func TestSubmit_PersistenceFailureLeavesStoredStateUnchanged(t *testing.T) {
	svc, repo, emp := newServiceWithBudi(t)
	ctx := context.Background()

	repo.upsertErr = errors.New("disk full")
	_, err := svc.SubmitForVerification(ctx, employeeActor(emp.NIP), emp.ID)
	assert.Error(t, err)

	repo.upsertErr = nil
	stored, _ := repo.GetByID(ctx, emp.ID)
	assert.Equal(t, entity.StatusPending, stored.Status)
}

func TestApplyImport_SkipsEmptyRowsAndForcesPending(t *testing.T) {
	svc, repo, _ := newServiceWithBudi(t)
	ctx := context.Background()

	result, err := svc.ApplyImport(ctx, adminActor, []BulkRow{
		{NIP: "199001012022011003", Name: "Siti Aminah", SalaryAmount: "1500000"},
		{},
		{NIP: "198501012022011001", Name: "Budi Santoso", SalaryAmount: "2750000"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)

	siti, _ := repo.GetByNIP(ctx, "199001012022011003")
	assert.Equal(t, entity.StatusPending, siti.Status)
	assert.Equal(t, "1.500.000", siti.SalaryAmount)
	assert.Equal(t, "Satu Juta Lima Ratus Ribu Rupiah", siti.SalaryText)

	// Existing record re-imported by NIP keeps its identity
	budi, _ := repo.GetByNIP(ctx, "198501012022011001")
	assert.Equal(t, "2.750.000", budi.SalaryAmount)
	records, _ := repo.List(ctx)
	assert.Len(t, records, 2)
}

func TestApplyImport_NameOnlyRowsShareTheEmptyKey(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, nopLogger{})
	ctx := context.Background()

	result, err := svc.ApplyImport(ctx, adminActor, []BulkRow{
		{Name: "Siti Aminah"},
		{Name: "Rudi Hartono"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)

	// Only one NIP-less record exists; the later row replaced the earlier one
	records, _ := repo.List(ctx)
	assert.Len(t, records, 1)
	assert.Equal(t, "Rudi Hartono", records[0].Name)
	assert.Equal(t, "", records[0].NIP)
}

func TestApplyImport_RequiresAdmin(t *testing.T) {
	svc, _, _ := newServiceWithBudi(t)

	_, err := svc.ApplyImport(context.Background(), verifierActor, []BulkRow{{Name: "X", NIP: "199001012022011003"}})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}
