package grpcresolver

import (
	"context"

	executor "github.com/oakwire/gqlexec/internal/executor"
	schema "github.com/oakwire/gqlexec/internal/schema"
)

// NewFieldResolver returns a schema.Resolver that proxies field resolution
// to service/method over t: the field's coerced arguments are sent as a
// structpb.Struct, the structpb.Value response is shaped against ref the
// same way any in-process resolver's return value would be. This is a
// second, I/O-performing Resolver alongside the in-memory example schema —
// a field bound this way looks, to SelectionExecutor, exactly like one
// backed by a local map lookup.
func NewFieldResolver(t *Transport, service, method string, ref schema.TypeRef) schema.Resolver {
	return func(p schema.ResolverParams) (schema.Value, error) {
		// ResolverParams carries no context.Context (schema.Resolver's
		// signature matches every in-process resolver in this package);
		// the transport's own RPCTimeout option bounds the call instead.
		result, err := t.Call(context.Background(), service, method, p.Args)
		if err != nil {
			return nil, executor.NewSchemaError("grpcresolver: %s.%s: %v", service, method, err)
		}
		return executor.Shape(result, ref, p)
	}
}
