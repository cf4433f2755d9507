package schema

import language "github.com/oakwire/gqlexec/internal/language"

// ResolverParams carries everything a Resolver needs to compute a single
// field's value: its coerced arguments, an optional borrowed reference to
// its sub-selection (present only when the field's declared type is
// composite), and borrowed references to the request's FragmentMap and
// top-level variables.
type ResolverParams struct {
	Args      map[string]Value
	Selection language.SelectionSet
	Fragments FragmentMap
	Variables map[string]Value
}

// Resolver computes the value of one field. It may perform I/O; the
// engine treats it as an opaque, synchronous call and never invokes it
// concurrently with itself.
type Resolver func(ResolverParams) (Value, error)

// ResolverMap indexes the resolvers of one object type by field name.
type ResolverMap map[string]Resolver
