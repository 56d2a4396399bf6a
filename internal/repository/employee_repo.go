package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/andikurnia/siperjaka/internal/domain/entity"
)

const employeeColumns = `
	id, nip, name, place_of_birth, date_of_birth, education, address,
	position, unit, placement_unit, agreement_number, salary_amount,
	salary_text, status, spmt_number, sk_number, sk_date, tmt_date,
	spmt_date, created_at, updated_at`

// EmployeeRepository handles employee record database operations
type EmployeeRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *sql.DB, logger *zap.Logger) *EmployeeRepository {
	return &EmployeeRepository{
		db:     db,
		logger: logger,
	}
}

// List retrieves all employee records, most recent first
func (r *EmployeeRepository) List(ctx context.Context) ([]*entity.Employee, error) {
	query := `SELECT` + employeeColumns + `
		FROM employees
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list employees", zap.Error(err))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*entity.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// GetByID retrieves an employee record by ID. Returns (nil, nil) when the
// record does not exist.
func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `SELECT` + employeeColumns + `
		FROM employees
		WHERE id = ?`

	emp, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get employee by ID", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByNIP retrieves an employee record by NIP. Returns (nil, nil) when the
// record does not exist.
func (r *EmployeeRepository) GetByNIP(ctx context.Context, nip string) (*entity.Employee, error) {
	query := `SELECT` + employeeColumns + `
		FROM employees
		WHERE nip = ?`

	emp, err := scanEmployee(r.db.QueryRowContext(ctx, query, nip))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get employee by NIP", zap.String("nip", nip), zap.Error(err))
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// Upsert inserts the record or replaces every column when the ID exists
func (r *EmployeeRepository) Upsert(ctx context.Context, emp *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			nip = excluded.nip,
			name = excluded.name,
			place_of_birth = excluded.place_of_birth,
			date_of_birth = excluded.date_of_birth,
			education = excluded.education,
			address = excluded.address,
			position = excluded.position,
			unit = excluded.unit,
			placement_unit = excluded.placement_unit,
			agreement_number = excluded.agreement_number,
			salary_amount = excluded.salary_amount,
			salary_text = excluded.salary_text,
			status = excluded.status,
			spmt_number = excluded.spmt_number,
			sk_number = excluded.sk_number,
			sk_date = excluded.sk_date,
			tmt_date = excluded.tmt_date,
			spmt_date = excluded.spmt_date,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		emp.ID,
		emp.NIP,
		emp.Name,
		emp.PlaceOfBirth,
		emp.DateOfBirth,
		emp.Education,
		emp.Address,
		emp.Position,
		emp.Unit,
		emp.PlacementUnit,
		emp.AgreementNumber,
		emp.SalaryAmount,
		emp.SalaryText,
		emp.Status,
		emp.SPMTNumber,
		emp.SKNumber,
		emp.SKDate,
		emp.TMTDate,
		emp.SPMTDate,
		emp.CreatedAt,
		emp.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to upsert employee", zap.String("id", emp.ID), zap.Error(err))
		return fmt.Errorf("failed to upsert employee: %w", err)
	}

	return nil
}

// Delete removes an employee record
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM employees WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.logger.Error("Failed to delete employee", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner) (*entity.Employee, error) {
	var emp entity.Employee

	err := row.Scan(
		&emp.ID,
		&emp.NIP,
		&emp.Name,
		&emp.PlaceOfBirth,
		&emp.DateOfBirth,
		&emp.Education,
		&emp.Address,
		&emp.Position,
		&emp.Unit,
		&emp.PlacementUnit,
		&emp.AgreementNumber,
		&emp.SalaryAmount,
		&emp.SalaryText,
		&emp.Status,
		&emp.SPMTNumber,
		&emp.SKNumber,
		&emp.SKDate,
		&emp.TMTDate,
		&emp.SPMTDate,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &emp, nil
}
