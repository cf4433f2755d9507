package starwars

import (
	executor "github.com/oakwire/gqlexec/internal/executor"
	schema "github.com/oakwire/gqlexec/internal/schema"
)

// idScalar and stringScalar are the field-declaration shorthands used
// throughout this schema binding: the given modifiers followed by the None
// terminal, with the given scalar kind as the base type.
func idScalar(mods ...schema.Modifier) schema.TypeRef {
	return schema.Scalar(schema.ScalarID, mods...)
}

func stringScalar(mods ...schema.Modifier) schema.TypeRef {
	return schema.Scalar(schema.ScalarString, mods...)
}

// characterObject returns the Object standing in for id, whichever
// concrete kind it is, or nil if id names neither a human nor a droid.
func characterObject(id string) *schema.Object {
	if h := findHuman(id); h != nil {
		return humanObject(h)
	}
	if d := findDroid(id); d != nil {
		return droidObject(d)
	}
	return nil
}

func idResolver(id string) schema.Resolver {
	return func(p schema.ResolverParams) (schema.Value, error) {
		return executor.Shape([]byte(id), idScalar(), p)
	}
}

func stringResolver(s string) schema.Resolver {
	return func(p schema.ResolverParams) (schema.Value, error) {
		return executor.Shape(s, stringScalar(), p)
	}
}

func stringListResolver(items []string) schema.Resolver {
	return func(p schema.ResolverParams) (schema.Value, error) {
		vals := make([]schema.Value, len(items))
		for i, it := range items {
			vals[i] = it
		}
		return executor.Shape(vals, stringScalar(schema.List), p)
	}
}

func friendsResolver(ids []string) schema.Resolver {
	return func(p schema.ResolverParams) (schema.Value, error) {
		refs := make([]schema.Value, 0, len(ids))
		for _, id := range ids {
			if obj := characterObject(id); obj != nil {
				refs = append(refs, obj)
			}
		}
		return executor.Shape(refs, schema.ObjectRef(nil, schema.List), p)
	}
}

// characterResolvers builds the fields every Character shares: id, name,
// friends, appearsIn. Human and Droid embed these and add their own.
func characterResolvers(c character) schema.ResolverMap {
	return schema.ResolverMap{
		"id":        idResolver(c.id),
		"name":      stringResolver(c.name),
		"friends":   friendsResolver(c.friends),
		"appearsIn": stringListResolver(c.appearsIn),
	}
}

func humanObject(h *human) *schema.Object {
	resolvers := characterResolvers(h.character)
	resolvers["homePlanet"] = stringResolver(h.homePlanet)
	return schema.NewObject("Human", resolvers, "Character")
}

func droidObject(d *droid) *schema.Object {
	resolvers := characterResolvers(d.character)
	resolvers["primaryFunction"] = stringResolver(d.primaryFunction)
	return schema.NewObject("Droid", resolvers, "Character")
}

// heroResolver mirrors the canonical hero(episode) field: episode 5
// (EMPIRE) resolves to Luke Skywalker, everything else to R2-D2.
func heroResolver(p schema.ResolverParams) (schema.Value, error) {
	episode, present, err := executor.Find("episode", p.Args, stringScalar(schema.Nullable))
	if err != nil {
		return nil, err
	}
	if present && episode == "EMPIRE" {
		return executor.Shape(humanObject(findHuman("1000")), schema.ObjectRef(nil, schema.Nullable), p)
	}
	return executor.Shape(droidObject(findDroid("2001")), schema.ObjectRef(nil, schema.Nullable), p)
}

func humanFieldResolver(p schema.ResolverParams) (schema.Value, error) {
	rawID, err := executor.Require("id", p.Args, idScalar())
	if err != nil {
		return nil, err
	}
	h := findHuman(string(rawID.([]byte)))
	if h == nil {
		return executor.Shape(nil, schema.ObjectRef(nil, schema.Nullable), p)
	}
	return executor.Shape(humanObject(h), schema.ObjectRef(nil, schema.Nullable), p)
}

func droidFieldResolver(p schema.ResolverParams) (schema.Value, error) {
	rawID, err := executor.Require("id", p.Args, idScalar())
	if err != nil {
		return nil, err
	}
	d := findDroid(string(rawID.([]byte)))
	if d == nil {
		return executor.Shape(nil, schema.ObjectRef(nil, schema.Nullable), p)
	}
	return executor.Shape(droidObject(d), schema.ObjectRef(nil, schema.Nullable), p)
}

// NewTypeMap builds the root Query object and the TypeMap wrapping it,
// ready to hand to executor.NewRequest.
func NewTypeMap() schema.TypeMap {
	query := schema.NewObject("Query", schema.ResolverMap{
		"hero":  heroResolver,
		"human": humanFieldResolver,
		"droid": droidFieldResolver,
	})
	return schema.TypeMap{"query": query}
}
