package executor

import schema "github.com/oakwire/gqlexec/internal/schema"

// A small fixture schema shared by the scenario and property tests below:
// a Query root with hero/human fields, Human and Droid object types
// sharing the Character type-condition, mirroring the illustrative
// schema used throughout this package's design notes.

func fixtureStringResolver(s string) schema.Resolver {
	return func(p schema.ResolverParams) (schema.Value, error) {
		return Shape(s, schema.Scalar(schema.ScalarString), p)
	}
}

func fixtureStringListResolver(items []string) schema.Resolver {
	return func(p schema.ResolverParams) (schema.Value, error) {
		vals := make([]schema.Value, len(items))
		for i, v := range items {
			vals[i] = v
		}
		return Shape(vals, schema.Scalar(schema.ScalarString, schema.List), p)
	}
}

func fixtureFriendsResolver(friends ...*schema.Object) schema.Resolver {
	return func(p schema.ResolverParams) (schema.Value, error) {
		refs := make([]schema.Value, len(friends))
		for i, f := range friends {
			refs[i] = f
		}
		return Shape(refs, schema.ObjectRef(nil, schema.List), p)
	}
}

func fixtureDroid(name, primaryFunction string, friends ...*schema.Object) *schema.Object {
	return schema.NewObject("Droid", schema.ResolverMap{
		"name":            fixtureStringResolver(name),
		"appearsIn":       fixtureStringListResolver([]string{"NEWHOPE", "EMPIRE", "JEDI"}),
		"primaryFunction": fixtureStringResolver(primaryFunction),
		"friends":         fixtureFriendsResolver(friends...),
	}, "Character")
}

func fixtureHuman(name, homePlanet string, friends ...*schema.Object) *schema.Object {
	return schema.NewObject("Human", schema.ResolverMap{
		"name":       fixtureStringResolver(name),
		"appearsIn":  fixtureStringListResolver([]string{"NEWHOPE", "EMPIRE", "JEDI"}),
		"homePlanet": fixtureStringResolver(homePlanet),
		"friends":    fixtureFriendsResolver(friends...),
	}, "Character")
}

// fixtureTypeMap builds a Query root exercising hero (defaults to the
// droid R2-D2), human(id) (requiring id, looking up a single known
// human "1000" -> Luke Skywalker), matching the scenarios in the design
// notes this package is built from.
func fixtureTypeMap() schema.TypeMap {
	r2d2 := fixtureDroid("R2-D2", "Astromech")
	c3po := fixtureDroid("C-3PO", "Protocol")
	luke := fixtureHuman("Luke Skywalker", "Tatooine", r2d2, c3po)
	// R2-D2's friends include Luke, who can only be built after R2-D2.
	r2d2.Resolvers["friends"] = fixtureFriendsResolver(luke, c3po)

	query := schema.NewObject("Query", schema.ResolverMap{
		"hero": func(p schema.ResolverParams) (schema.Value, error) {
			return Shape(r2d2, schema.ObjectRef(nil, schema.Nullable), p)
		},
		"human": func(p schema.ResolverParams) (schema.Value, error) {
			rawID, err := Require("id", p.Args, schema.Scalar(schema.ScalarID))
			if err != nil {
				return nil, err
			}
			if string(rawID.([]byte)) != "1000" {
				return Shape(nil, schema.ObjectRef(nil, schema.Nullable), p)
			}
			return Shape(luke, schema.ObjectRef(nil, schema.Nullable), p)
		},
	})
	return schema.TypeMap{"query": query}
}
