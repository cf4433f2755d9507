package executor

import (
	"fmt"
	"strings"
)

// SchemaError is the sole error kind this package produces: a non-empty
// sequence of human-readable messages. Request.Resolve serializes it into
// the response's "errors" array, one object per message.
type SchemaError struct {
	Messages []string
}

// NewSchemaError builds a SchemaError carrying a single message.
func NewSchemaError(format string, args ...any) *SchemaError {
	return &SchemaError{Messages: []string{fmt.Sprintf(format, args...)}}
}

func (e *SchemaError) Error() string {
	if e == nil {
		return ""
	}
	return strings.Join(e.Messages, "; ")
}

// asSchemaError normalizes any error into a *SchemaError, wrapping a
// plain error (e.g. a panic recovered as an error, or a resolver's own
// error) into a single-message SchemaError.
func asSchemaError(err error) *SchemaError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*SchemaError); ok {
		return se
	}
	return &SchemaError{Messages: []string{err.Error()}}
}
