package port

import (
	"context"

	"github.com/andikurnia/siperjaka/internal/domain/entity"
)

// EmployeeRepository defines persistence operations for Employee records.
// The core depends on the backing store only through this contract.
type EmployeeRepository interface {
	// List returns every record, most recently created first.
	List(ctx context.Context) ([]*entity.Employee, error)

	// GetByID retrieves one record by its opaque key.
	GetByID(ctx context.Context, id string) (*entity.Employee, error)

	// GetByNIP retrieves one record by national identifier.
	GetByNIP(ctx context.Context, nip string) (*entity.Employee, error)

	// Upsert inserts the record or replaces it by id. The store enforces a
	// unique constraint on NIP.
	Upsert(ctx context.Context, emp *entity.Employee) error

	// Delete permanently removes the record. Unrecoverable.
	Delete(ctx context.Context, id string) error
}

// SettingsRepository defines persistence operations for the organization
// settings singleton.
type SettingsRepository interface {
	// Get returns the settings row, or (nil, nil) when none has been saved yet.
	Get(ctx context.Context) (*entity.Settings, error)

	// Put inserts or replaces the singleton row.
	Put(ctx context.Context, set *entity.Settings) error
}
