// Package records holds the in-memory leave and task stores for employees.
package records

import (
	"errors"
	"fmt"
)

// Standard errors returned by the stores
var (
	ErrNotFound         = errors.New("employee not found")
	ErrTaskNotAssigned  = errors.New("task not assigned")
	ErrAlreadyCompleted = errors.New("task already completed")
)

// InsufficientBalanceError is returned when a deduction exceeds the balance.
type InsufficientBalanceError struct {
	EmployeeID string
	Requested  int
	Available  int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf(
		"insufficient leave balance for %s: requested %d, available %d",
		e.EmployeeID, e.Requested, e.Available,
	)
}

func notFound(id string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, id)
}
