package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/numerology-api/internal/store"
)

// Sentinel errors returned by the services. The API layer maps them to
// status codes with errors.Is.
var (
	// ErrNotCatalogued indicates a number has no catalogue entry (33, 44 and
	// anything that is not a reduced value). It wraps store.ErrNotFound.
	ErrNotCatalogued = fmt.Errorf("%w: number not in catalogue", store.ErrNotFound)

	// ErrMissingDependency is returned by constructors given a nil dependency.
	ErrMissingDependency = errors.New("missing service dependency")
)

// ServiceError wraps an unexpected failure with the service and operation
// it happened in.
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s service %s operation failed", e.Service, e.Operation)
	}
	return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the wrapped error.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a ServiceError.
func NewServiceError(service, operation string, err error) *ServiceError {
	return &ServiceError{Service: service, Operation: operation, Err: err}
}
