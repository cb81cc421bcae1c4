// Package esmerr defines the error taxonomy shared by the decoder, the record
// views and the miners.
//
// Two sentinels classify every failure:
//   - ErrMalformedData: a required field is absent or has the wrong shape.
//   - ErrUnresolvedReference: an identifier points at nothing the registry
//     knows, at a place where the link is required.
//
// Absence at the accessor layer is never an error; accessors return (zero,
// false) instead.
package esmerr

import (
	"errors"
	"fmt"
	"strings"
)

// Standard error variables.
var (
	ErrMalformedData       = errors.New("malformed data")
	ErrUnresolvedReference = errors.New("unresolved reference")
)

// Category names the kind of malformation.
type Category string

const (
	CategoryMissingField       Category = "missing field"
	CategoryTypeMismatch       Category = "type mismatch"
	CategoryMissingHeaderField Category = "missing header field"
	CategoryBadIdentifier      Category = "bad identifier"
	CategoryUnresolved         Category = "unresolved reference"
	CategoryMalformedFile      Category = "malformed file"
)

// MalformedDataError reports what was expected, where, and in which record.
type MalformedDataError struct {
	Category Category
	// Field is the field (or field path) that was inspected.
	Field string
	// Expected describes the expected shape, e.g. "number or numeric text".
	Expected string
	// Record identifies the owning record, filled in by InRecord.
	Record string
	// Err is an optional underlying cause.
	Err error
}

// Malformed creates a MalformedDataError without record context.
func Malformed(category Category, field, expected string) *MalformedDataError {
	return &MalformedDataError{Category: category, Field: field, Expected: expected}
}

// Error implements the error interface.
func (e *MalformedDataError) Error() string {
	var b strings.Builder

	b.WriteString(string(e.Category))

	if e.Field != "" {
		fmt.Fprintf(&b, " %q", e.Field)
	}

	if e.Expected != "" {
		b.WriteString(": expected ")
		b.WriteString(e.Expected)
	}

	if e.Record != "" {
		b.WriteString(" in ")
		b.WriteString(e.Record)
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Is reports whether target is ErrMalformedData.
func (e *MalformedDataError) Is(target error) bool {
	return target == ErrMalformedData
}

// Unwrap returns the underlying cause.
func (e *MalformedDataError) Unwrap() error {
	return e.Err
}

// UnresolvedReferenceError describes an identifier-valued field whose target
// is missing or of the wrong type.
type UnresolvedReferenceError struct {
	Field    string
	Ref      string
	Expected string
}

// Error implements the error interface.
func (e *UnresolvedReferenceError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("no %s reference in %q", e.Expected, e.Field)
	}

	return fmt.Sprintf("%q references %s, which is not a known %s record", e.Field, e.Ref, e.Expected)
}

// Is reports whether target is ErrUnresolvedReference.
func (e *UnresolvedReferenceError) Is(target error) bool {
	return target == ErrUnresolvedReference
}

// Required promotes an unresolved link to a MalformedDataError. Call it only
// where the link is required.
func Required(field, ref, expected, record string) *MalformedDataError {
	return &MalformedDataError{
		Category: CategoryUnresolved,
		Field:    field,
		Expected: expected,
		Record:   record,
		Err:      &UnresolvedReferenceError{Field: field, Ref: ref, Expected: expected},
	}
}

// InRecord attaches the owning record to a MalformedDataError that does not
// have one yet. Other errors are returned unchanged.
func InRecord(err error, record string) error {
	var mde *MalformedDataError
	if !errors.As(err, &mde) || mde.Record != "" {
		return err
	}

	// Only a top-level error is copied; a wrapped one keeps its chain.
	if mde == err {
		cp := *mde
		cp.Record = record

		return &cp
	}

	return fmt.Errorf("%w (in %s)", err, record)
}
