package hoist

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for resolution failures.
var (
	// ErrUnknownType is returned when a root type name is not present in
	// the schema graph.
	ErrUnknownType = errors.New("hoist: unknown entity type")

	// ErrDepthExceeded is returned when traversal would need to emit a
	// path longer than the configured depth limit.
	ErrDepthExceeded = errors.New("hoist: max depth exceeded")

	// ErrInvalidDepth is returned when a resolution is configured with a
	// non-positive depth limit.
	ErrInvalidDepth = errors.New("hoist: depth limit must be positive")

	// ErrInvalidSchema indicates a schema definition error.
	ErrInvalidSchema = errors.New("hoist: invalid schema")
)

// UnknownTypeError represents a root type name that the schema graph
// cannot resolve. It is reported before any traversal starts.
type UnknownTypeError struct {
	typ string
}

// Error returns the error string.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("hoist: unknown entity type %q", e.typ)
}

// Is reports whether the target error matches UnknownTypeError.
// This allows errors.Is(err, ErrUnknownType) to return true.
func (e *UnknownTypeError) Is(err error) bool {
	return err == ErrUnknownType
}

// Type returns the type name that failed to resolve.
func (e *UnknownTypeError) Type() string {
	return e.typ
}

// NewUnknownTypeError returns a new UnknownTypeError for the given type name.
func NewUnknownTypeError(typ string) *UnknownTypeError {
	return &UnknownTypeError{typ: typ}
}

// IsUnknownType returns true if the error is an UnknownTypeError.
func IsUnknownType(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownTypeError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownType)
}

// DepthExceededError is returned when a resolution would emit a path with
// more hops than the configured limit. It aborts the whole call (no
// partial path list is returned) and carries the offending path so the
// caller can decide whether to raise the limit or restructure the schema.
type DepthExceededError struct {
	// Path is the first path that exceeded the limit, in resolution order.
	Path string
	// Limit is the configured depth limit.
	Limit int
}

// Error returns the error string.
func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("hoist: path %q exceeds max depth %d", e.Path, e.Limit)
}

// Is reports whether the target error matches DepthExceededError.
// This allows errors.Is(err, ErrDepthExceeded) to return true.
func (e *DepthExceededError) Is(err error) bool {
	return err == ErrDepthExceeded
}

// NewDepthExceededError returns a new DepthExceededError for the given
// path and limit.
func NewDepthExceededError(path string, limit int) *DepthExceededError {
	return &DepthExceededError{Path: path, Limit: limit}
}

// IsDepthExceeded returns true if the error is a DepthExceededError.
func IsDepthExceeded(err error) bool {
	if err == nil {
		return false
	}
	var e *DepthExceededError
	return errors.As(err, &e) || errors.Is(err, ErrDepthExceeded)
}

// SchemaError represents a schema definition error.
type SchemaError struct {
	Type    string // Entity type name
	Nav     string // Navigation name (if applicable)
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("hoist: schema error")
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Nav != "" {
		b.WriteString(" navigation ")
		b.WriteString(e.Nav)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(typeName, navName, message string, cause error) *SchemaError {
	return &SchemaError{
		Type:    typeName,
		Nav:     navName,
		Message: message,
		Cause:   cause,
	}
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	if err == nil {
		return false
	}
	var e *SchemaError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidSchema)
}
