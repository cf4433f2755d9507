// Package schema holds the data model an embedder builds once and hands
// to the executor: Object, ResolverMap, TypeMap, and the TypeModifier
// chain (Nullable/List/None) that drives argument coercion and result
// shaping.
//
// Nothing in this package parses a schema definition language or
// generates resolver bindings — that step is assumed to happen elsewhere
// (by hand, or by a code generator) and to produce values of the types
// defined here. The package is intentionally thin: it is a runtime
// descriptor format, not a schema compiler.
package schema
