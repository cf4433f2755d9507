package events

import "time"

// FieldStart is emitted before a resolver is invoked for a single field.
type FieldStart struct {
	TypeName  string
	FieldName string
	Path      string
}

// FieldFinish is emitted after a resolver invocation returns, successfully
// or otherwise.
type FieldFinish struct {
	TypeName  string
	FieldName string
	Path      string
	Err       error
	Duration  time.Duration
}
