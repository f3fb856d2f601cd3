package env

import (
	"errors"
	"fmt"
)

// ErrNotFound matches any *NotFoundError through errors.Is.
var ErrNotFound = errors.New("environment variable not found")

// NotFoundError reports a variable that is not set.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	if e.Name == "" {
		return "environment variable name is empty"
	}
	return fmt.Sprintf("environment variable %q not found", e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
