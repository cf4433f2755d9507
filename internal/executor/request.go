package executor

import (
	"context"
	"time"

	eventbus "github.com/oakwire/gqlexec/internal/eventbus"
	events "github.com/oakwire/gqlexec/internal/events"
	language "github.com/oakwire/gqlexec/internal/language"
	reqid "github.com/oakwire/gqlexec/internal/reqid"
	schema "github.com/oakwire/gqlexec/internal/schema"
)

// Request is the engine's single entry point. It is constructed once
// around a read-only TypeMap and reused across calls; TypeMap and the
// Objects it reaches are never mutated during Resolve.
type Request struct {
	Types schema.TypeMap
}

// NewRequest builds a Request over types. types is not copied and must
// not be mutated after construction.
func NewRequest(types schema.TypeMap) *Request {
	return &Request{Types: types}
}

// Resolve is the engine's sole exported operation: it interprets document
// against r.Types, returning a JSON-shaped envelope
// {"data": ..., "errors": [...]}. operationName selects which operation
// in the document to run; an empty string selects the document's sole
// operation, failing if there is more than one. variables supplies the
// top-level $-prefixed variable bindings.
//
// Resolve never panics into its caller: a panicking resolver is
// recovered at the field boundary and reported as a SchemaError.
func (r *Request) Resolve(ctx context.Context, document *language.QueryDocument, operationName string, variables map[string]schema.Value) map[string]schema.Value {
	op, err := selectOperation(document, operationName)
	if err != nil {
		return errorEnvelope(err)
	}

	fragments := collectFragments(document)

	kind := string(op.Operation)
	root, ok := r.Types[kind]
	if !ok {
		return errorEnvelope(NewSchemaError("Unexpected operation type: %s", kind))
	}

	ctx, _ = reqid.NewContext(ctx)

	eventbus.Publish(ctx, events.RequestStart{OperationName: op.Name, OperationType: kind})
	start := time.Now()

	data, err := executeSelectionSetCtx(ctx, root, op.SelectionSet, fragments, variables, "")

	eventbus.Publish(ctx, events.RequestFinish{
		OperationName: op.Name,
		OperationType: kind,
		Errors:        errSlice(err),
		Duration:      time.Since(start),
	})

	if err != nil {
		return errorEnvelope(err)
	}
	return map[string]schema.Value{"data": data}
}

// selectOperation finds the OperationDefinition to run: an explicit name
// selects the first operation with that name and fails if there is none;
// an empty name selects the document's sole operation and fails if there
// is more than one.
func selectOperation(document *language.QueryDocument, operationName string) (*language.OperationDefinition, error) {
	if operationName == "" {
		if len(document.Operations) == 1 {
			return document.Operations[0], nil
		}
		return nil, NewSchemaError("Missing operation name")
	}
	for _, op := range document.Operations {
		if op.Name == operationName {
			return op, nil
		}
	}
	return nil, NewSchemaError("Unknown operation: %s", operationName)
}

// collectFragments walks the document once, indexing every
// FragmentDefinition by name.
func collectFragments(document *language.QueryDocument) schema.FragmentMap {
	fragments := make(schema.FragmentMap, len(document.Fragments))
	for _, f := range document.Fragments {
		fragments[f.Name] = &schema.Fragment{
			TypeCondition: f.TypeCondition,
			Selection:     f.SelectionSet,
		}
	}
	return fragments
}

func errorEnvelope(err error) map[string]schema.Value {
	se := asSchemaError(err)
	errs := make([]schema.Value, 0, len(se.Messages))
	for _, msg := range se.Messages {
		errs = append(errs, map[string]schema.Value{"message": msg})
	}
	return map[string]schema.Value{"data": nil, "errors": errs}
}

func errSlice(err error) []error {
	if err == nil {
		return nil
	}
	return []error{err}
}
