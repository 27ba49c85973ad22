package attrail

import (
	"errors"
	"fmt"
)

// InstrumentError represents a failure to instrument a target or to write
// through an instrumented layout.
//
// Layout errors (INCOMPATIBLE_LAYOUT, RESERVED_NAME) surface from
// Instrument, never from a later Set: an unusable target fails at wrap
// time. Write errors (UNKNOWN_ATTRIBUTE, TYPE_MISMATCH) surface from Set
// on fixed-layout targets.
type InstrumentError struct {
	// Code identifies the error category.
	Code InstrumentErrorCode

	// Message is a human-readable description.
	Message string

	// Type is the Go type of the instrumented target, when known.
	Type string

	// Field is the offending attribute name, when applicable.
	Field string
}

// InstrumentErrorCode categorizes instrumentation errors.
type InstrumentErrorCode string

const (
	// ErrCodeIncompatibleLayout indicates the target's layout cannot carry
	// instrumentation: not a non-nil pointer to struct, no exported fields,
	// or an unreachable field behind a nil embedded pointer.
	ErrCodeIncompatibleLayout InstrumentErrorCode = "INCOMPATIBLE_LAYOUT"

	// ErrCodeReservedName indicates the target declares the accessor in a
	// conflicting way, e.g. Journal as a named rather than embedded field.
	ErrCodeReservedName InstrumentErrorCode = "RESERVED_NAME"

	// ErrCodeUnknownAttribute indicates a write to an attribute the fixed
	// layout does not declare.
	ErrCodeUnknownAttribute InstrumentErrorCode = "UNKNOWN_ATTRIBUTE"

	// ErrCodeTypeMismatch indicates the assigned value is not assignable to
	// the attribute's declared type.
	ErrCodeTypeMismatch InstrumentErrorCode = "TYPE_MISMATCH"
)

// Error implements the error interface.
func (e *InstrumentError) Error() string {
	switch {
	case e.Type != "" && e.Field != "":
		return fmt.Sprintf("%s: %s (type=%s, attr=%s)", e.Code, e.Message, e.Type, e.Field)
	case e.Type != "":
		return fmt.Sprintf("%s: %s (type=%s)", e.Code, e.Message, e.Type)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// IsIncompatibleLayout reports whether err is an incompatible-layout error.
// Uses errors.As to handle wrapped errors.
func IsIncompatibleLayout(err error) bool {
	return hasCode(err, ErrCodeIncompatibleLayout)
}

// IsReservedName reports whether err is a reserved-name collision error.
func IsReservedName(err error) bool {
	return hasCode(err, ErrCodeReservedName)
}

// IsUnknownAttribute reports whether err is an unknown-attribute error.
func IsUnknownAttribute(err error) bool {
	return hasCode(err, ErrCodeUnknownAttribute)
}

// IsTypeMismatch reports whether err is a type-mismatch error.
func IsTypeMismatch(err error) bool {
	return hasCode(err, ErrCodeTypeMismatch)
}

func hasCode(err error, code InstrumentErrorCode) bool {
	var ie *InstrumentError
	if errors.As(err, &ie) {
		return ie.Code == code
	}
	return false
}
