package events

import "time"

// RequestStart is emitted by Request.Resolve once the operation and its
// root Object are found, before the operation's root selection set begins
// executing. A Resolve call that fails before that point emits neither
// RequestStart nor RequestFinish.
type RequestStart struct {
	OperationName string
	OperationType string
}

// RequestFinish is emitted after the root selection set has finished
// executing, before Request.Resolve builds its {"data":...,"errors":...}
// envelope.
type RequestFinish struct {
	OperationName string
	OperationType string
	Errors        []error
	Duration      time.Duration
}
