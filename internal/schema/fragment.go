package schema

import language "github.com/oakwire/gqlexec/internal/language"

// Fragment is a named, reusable selection set scanned once out of the
// document. TypeCondition is the GraphQL type name the fragment is
// defined against; Selection is a borrowed reference into the AST and
// must not be mutated.
type Fragment struct {
	TypeCondition string
	Selection     language.SelectionSet
}

// FragmentMap indexes fragments by name. Built once per request and
// treated as immutable for the remainder of execution.
type FragmentMap map[string]*Fragment
