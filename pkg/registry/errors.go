package registry

import (
	"errors"
	"fmt"
)

// ErrNotFound allows errors.Is checks without reaching for the concrete
// *NotFoundError type.
var ErrNotFound = errors.New("registry: template not found")

// NotFoundError reports a Create call for a name with no registered master.
// It carries the requested name for diagnostics.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("registry: template %q not found", e.Name)
}

// Is matches the ErrNotFound sentinel.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
