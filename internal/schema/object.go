package schema

// Object is the runtime representation of one GraphQL object type.
// TypeNames is the set of type-condition names this object answers to —
// its own name plus every interface and union it participates in — used
// by fragment type-condition checks. Resolvers holds one entry per field
// this object exposes.
//
// Object instances are constructed once at schema-bind time and are
// shared, read-only, for the engine's lifetime; the schema graph they
// form may be cyclic (a field of Object A may itself resolve to A).
type Object struct {
	Name      string
	TypeNames map[string]struct{}
	Resolvers ResolverMap
}

// NewObject builds an Object whose TypeNames set contains name plus every
// entry in extraTypeNames (the interfaces/unions it also satisfies).
func NewObject(name string, resolvers ResolverMap, extraTypeNames ...string) *Object {
	names := make(map[string]struct{}, len(extraTypeNames)+1)
	names[name] = struct{}{}
	for _, n := range extraTypeNames {
		names[n] = struct{}{}
	}
	return &Object{Name: name, TypeNames: names, Resolvers: resolvers}
}

// Satisfies reports whether typeCondition is one of this object's
// type-condition names.
func (o *Object) Satisfies(typeCondition string) bool {
	_, ok := o.TypeNames[typeCondition]
	return ok
}

// TypeMap maps an operation kind ("query", "mutation", "subscription") to
// its root Object. Supplied to Request at construction and never mutated
// during execution.
type TypeMap map[string]*Object
