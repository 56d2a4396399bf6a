package service

import (
	"context"
	"fmt"

	"github.com/andikurnia/siperjaka/internal/document"
	"github.com/andikurnia/siperjaka/internal/domain/entity"
)

// DocumentService renders the legal documents for a record. Rendering never
// mutates state; the only precondition is the approved-status gate on the
// contract-type documents, checked before any formatting work.
type DocumentService interface {
	RenderContract(ctx context.Context, id string) (string, error)
	RenderSPMT(ctx context.Context, id string) (string, error)
	RenderVerification(ctx context.Context, id string, verifier document.VerifierInput) (string, error)
}

type documentServiceImpl struct {
	employees EmployeeService
	settings  SettingsService
	logger    Logger
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(employees EmployeeService, settings SettingsService, logger Logger) DocumentService {
	return &documentServiceImpl{employees: employees, settings: settings, logger: logger}
}

func (s *documentServiceImpl) RenderContract(ctx context.Context, id string) (string, error) {
	emp, set, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	if !emp.Printable() {
		return "", notPrintable("contract", emp)
	}
	return document.RenderContract(emp, set), nil
}

func (s *documentServiceImpl) RenderSPMT(ctx context.Context, id string) (string, error) {
	emp, set, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	if !emp.Printable() {
		return "", notPrintable("spmt", emp)
	}
	return document.RenderSPMT(emp, set), nil
}

// RenderVerification has no status gate: the sheet documents the check
// itself and may be produced at any workflow position.
func (s *documentServiceImpl) RenderVerification(ctx context.Context, id string, verifier document.VerifierInput) (string, error) {
	emp, set, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	return document.RenderVerification(emp, set, verifier), nil
}

func (s *documentServiceImpl) load(ctx context.Context, id string) (*entity.Employee, *entity.Settings, error) {
	emp, err := s.employees.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	set, err := s.settings.Get(ctx)
	if err != nil {
		return nil, nil, err
	}
	return emp, set, nil
}

func notPrintable(doc string, emp *entity.Employee) error {
	return fmt.Errorf("%w: %s requires status %s, record is %s",
		ErrRenderingUnavailable, doc, entity.StatusApproved, emp.Status)
}
