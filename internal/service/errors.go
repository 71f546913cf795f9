package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("not found")

// NotFoundError reports that a key resolved to no document.
type NotFoundError struct {
	Entity string
	Label  string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s %s not found", e.Entity, e.Label, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
