package executor

import schema "github.com/oakwire/gqlexec/internal/schema"

// Shape is ArgumentCoercer's inverse: given a resolver's native return
// value and the field's declared modifier chain, it produces a
// JSON-shaped Value. For a composite (object) base type, the resolver's
// return value is itself a *schema.Object reference — not a plain scalar
// — and Shape dispatches into ExecuteSelectionSet using the
// ResolverParams' sub-selection; that reference, not ref.Obj, decides
// which concrete object type answers the selection (this is how
// polymorphic fields resolve: the resolver picks the concrete Object,
// Shape only asks it to resolve its selection).
func Shape(v schema.Value, ref schema.TypeRef, params schema.ResolverParams) (schema.Value, error) {
	return shapeChain(ref.Modifiers, v, ref, params)
}

func shapeChain(mods []schema.Modifier, v schema.Value, ref schema.TypeRef, params schema.ResolverParams) (schema.Value, error) {
	if len(mods) == 0 {
		return nil, NewSchemaError("Unexpected end of type modifier chain")
	}

	switch mods[0] {
	case schema.Nullable:
		if v == nil {
			return nil, nil
		}
		return shapeChain(mods[1:], v, ref, params)

	case schema.List:
		list, ok := v.([]schema.Value)
		if !ok {
			return nil, NewSchemaError("Invalid result: expected a list")
		}
		out := make([]schema.Value, len(list))
		for i, el := range list {
			sv, err := shapeChain(mods[1:], el, ref, params)
			if err != nil {
				return nil, err
			}
			out[i] = sv
		}
		return out, nil

	case schema.None:
		if ref.IsObject() {
			if v == nil {
				return nil, NewSchemaError("Invalid result: non-null field resolved to no object")
			}
			obj, ok := v.(*schema.Object)
			if !ok {
				return nil, NewSchemaError("Invalid result: expected an object reference")
			}
			if obj == nil {
				return nil, NewSchemaError("Invalid result: non-null field resolved to no object")
			}
			if params.Selection == nil {
				return nil, NewSchemaError("Composite return type requires a selection")
			}
			return ExecuteSelectionSet(obj, params.Selection, params.Fragments, params.Variables)
		}
		return encodeScalar(ref.Kind, v), nil

	default:
		return nil, NewSchemaError("Unknown type modifier")
	}
}
