package employee

import (
	"context"
)

// EmployeeRepository reads the externally owned employee table. No writes:
// employee CRUD belongs to the HR system.
type EmployeeRepository interface {
	// GetByID returns one employee or ErrEmployeeNotFound.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive returns all active employees.
	ListActive(ctx context.Context) ([]Employee, error)
}
