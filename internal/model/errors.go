package model

import (
	"errors"
	"fmt"
)

// ErrFinalized is returned for any mutation attempted after the document
// was handed over for serialization.
var ErrFinalized = errors.New("document is finalized")

// ErrNodeMissing marks a call that targeted a node which was never constructed.
var ErrNodeMissing = errors.New("target node is missing")

// ConstructionError represents a primitive that could not be turned into a
// value wrapper
type ConstructionError struct {
	Field   string
	Value   interface{}
	Message string
	Cause   error
}

func (e *ConstructionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot construct %s from %q: %s (%v)", e.Field, fmt.Sprint(e.Value), e.Message, e.Cause)
	}
	return fmt.Sprintf("cannot construct %s from %q: %s", e.Field, fmt.Sprint(e.Value), e.Message)
}

func (e *ConstructionError) Unwrap() error {
	return e.Cause
}

// NewConstructionError creates a new construction error
func NewConstructionError(field string, value interface{}, message string, cause error) *ConstructionError {
	return &ConstructionError{
		Field:   field,
		Value:   value,
		Message: message,
		Cause:   cause,
	}
}

// LogicError represents a dispatch against a node reference that does not exist.
// It is a programming error in the caller and is never swallowed.
type LogicError struct {
	Node  string
	Field string
}

func (e *LogicError) Error() string {
	return fmt.Sprintf("logic error: cannot set %s on %s: %v", e.Field, e.Node, ErrNodeMissing)
}

func (e *LogicError) Unwrap() error {
	return ErrNodeMissing
}

// NewLogicError creates a new logic error
func NewLogicError(node, field string) *LogicError {
	return &LogicError{
		Node:  node,
		Field: field,
	}
}

// CapabilityError reports a field the active profile does not define.
// Only returned in strict mode; the default is a silent skip.
type CapabilityError struct {
	Profile string
	Node    string
	Field   string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("[%s] %s.%s is not supported by this profile", e.Profile, e.Node, e.Field)
}

// NewCapabilityError creates a new capability error
func NewCapabilityError(profile, node, field string) *CapabilityError {
	return &CapabilityError{
		Profile: profile,
		Node:    node,
		Field:   field,
	}
}

// RequiredFieldError represents a builder operation invoked without one of
// its mandatory primitives
type RequiredFieldError struct {
	Operation string
	Field     string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("%s: required field %s is missing", e.Operation, e.Field)
}

// NewRequiredFieldError creates a new required field error
func NewRequiredFieldError(operation, field string) *RequiredFieldError {
	return &RequiredFieldError{
		Operation: operation,
		Field:     field,
	}
}
