// Package validate holds the assertion helpers the data engine runs against
// inbound DTOs. By convention every helper that can fail begins with Confirm
// and reports a 400. Missing entities are never reported here: that is
// repository.FindOrThrow's job, and it maps to 404. Keeping the two apart
// makes the status mapping at every call site mechanical and auditable.
package validate

import (
	"fmt"
	"strconv"

	"backend/pkg/apperr"
)

// Entity marks persisted types. ConfirmNotNil refuses values implementing it,
// because absence of an entity must go through repository.FindOrThrow.
type Entity interface {
	GetID() uint
}

// ConfirmNotEmpty fails with a 400 if s is empty. It returns s so call sites
// can chain it.
func ConfirmNotEmpty(s, label string) (string, error) {
	if s == "" {
		return "", apperr.BadRequest("Null or empty value for : %q", label)
	}
	return s, nil
}

// ConfirmNil fails with a 400 if v is set. Use it for fields that must be
// absent, such as the id of an entity about to be created.
func ConfirmNil[T any](v *T, label string) error {
	if v != nil {
		return apperr.BadRequest("Non null field %s = %v", label, *v)
	}
	return nil
}

// ConfirmNotNil fails with a 400 if v is nil, returning the value otherwise.
// It must only be used on non-entity values; a nil entity should have been a
// FindOrThrow call, so passing one here is a programming error and panics.
func ConfirmNotNil[T any](v *T, label string) (T, error) {
	var zero T
	if _, ok := any(zero).(Entity); ok {
		panic(fmt.Sprintf("ConfirmNotNil is not for entities, use repository.FindOrThrow: %T", zero))
	}
	if _, ok := any(&zero).(Entity); ok {
		panic(fmt.Sprintf("ConfirmNotNil is not for entities, use repository.FindOrThrow: %T", &zero))
	}
	if v == nil {
		return zero, apperr.BadRequest("Missing object: %s", label)
	}
	return *v, nil
}

// ConfirmEqual fails with a 400 if the two values differ.
func ConfirmEqual[T comparable](expected, actual T) error {
	if expected != actual {
		return apperr.BadRequest("Expected %v  Found %v", expected, actual)
	}
	return nil
}

// ConfirmEqualMsg is ConfirmEqual with a caller-supplied message.
func ConfirmEqualMsg[T comparable](message string, expected, actual T) error {
	if expected != actual {
		return apperr.BadRequest("%s", message)
	}
	return nil
}

// DecodeUint parses a path or query id. Any failure is a 400, never a 404: a
// malformed id is the client's fault, not a missing entity.
func DecodeUint(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, apperr.BadRequest("%s", s)
	}
	return uint(n), nil
}
