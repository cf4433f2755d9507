// Package executor implements the engine's five cooperating components:
// ValueCoercer (value.go), ArgumentCoercer (argument.go), ResultShaper
// (result.go), SelectionExecutor (selection.go), and Request
// (request.go).
//
// # Execution model
//
// Execution is strictly single-threaded and synchronous. There is no
// task queue, no batching, and no suspension point inside the package
// itself: a Resolver is called, runs to completion — however long that
// takes, including its own I/O — and hands back a Value before the next
// selection is dispatched. Concurrency, if any, lives entirely inside
// user-supplied Resolver functions and is invisible to this package.
//
// # Errors
//
// SchemaError (errors.go) is the only error type this package produces.
// A resolver may return one, or panic; either way it is caught at the
// field-invocation boundary in selection.go and eventually serialized by
// Request.Resolve into the response's "errors" array. There is no
// partial-success path: any error aborts the remaining traversal and the
// response's "data" is null.
//
// # Schema-author responsibility
//
// SelectionExecutor invokes a field's Resolver with the field's raw,
// ValueCoercer-decoded arguments; it does not itself call ArgumentCoercer
// or ResultShaper. Those are tools a Resolver's own body uses: to pull a
// typed argument out of ResolverParams.Args (Require/Find in
// argument.go), and to wrap a native return value back into a Value
// according to the field's declared modifier chain (Shape in result.go).
// A schema binding — hand-written or generated — is expected to compose
// them this way when building a schema.ResolverMap.
package executor
