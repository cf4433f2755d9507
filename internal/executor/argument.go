package executor

import schema "github.com/oakwire/gqlexec/internal/schema"

// Require decodes arguments[name] according to ref's modifier chain,
// outside-in, failing with a *SchemaError when the value is absent (at a
// non-nullable position) or fails scalar conversion. It is the "require"
// half of the ArgumentCoercer contract described in §4.2.
func Require(name string, arguments map[string]schema.Value, ref schema.TypeRef) (schema.Value, error) {
	return decodeArg(name, ref.Modifiers, ref, arguments)
}

// Find is Require with any *SchemaError swallowed into present=false —
// the exception-free path for optional arguments. A non-SchemaError
// (there should be none in this package, but the contract stays general)
// still propagates.
func Find(name string, arguments map[string]schema.Value, ref schema.TypeRef) (schema.Value, bool, error) {
	v, err := Require(name, arguments, ref)
	if err != nil {
		if _, ok := err.(*SchemaError); ok {
			return nil, false, nil
		}
		return nil, false, err
	}
	return v, true, nil
}

// decodeArg walks the modifier chain outside-in. arguments is always the
// map decodeArg looks name up in; for List elements this is a synthetic
// single-entry map so the same lookup-by-name logic applies uniformly at
// every depth, mirroring the recursive ModifiedArgument<T> shape this is
// grounded on.
func decodeArg(name string, mods []schema.Modifier, ref schema.TypeRef, arguments map[string]schema.Value) (schema.Value, error) {
	if len(mods) == 0 {
		return nil, NewSchemaError("Invalid argument: %s", name)
	}

	switch mods[0] {
	case schema.None:
		v, present := arguments[name]
		if !present || v == nil {
			return nil, NewSchemaError("Invalid argument: %s", name)
		}
		if ref.IsObject() {
			// ArgumentCoercer only decodes scalar input; a composite base
			// type here means the schema binding is malformed.
			return nil, NewSchemaError("Invalid argument: %s message: composite argument types are not supported", name)
		}
		return decodeScalar(name, ref.Kind, v)

	case schema.Nullable:
		v, present := arguments[name]
		if !present || v == nil {
			return nil, nil
		}
		return decodeArg(name, mods[1:], ref, arguments)

	case schema.List:
		v, present := arguments[name]
		if !present {
			return nil, NewSchemaError("Invalid argument: %s", name)
		}
		list, ok := v.([]schema.Value)
		if !ok {
			return nil, NewSchemaError("Invalid argument: %s message: expected a list", name)
		}
		out := make([]schema.Value, len(list))
		for i, el := range list {
			dv, err := decodeArg("value", mods[1:], ref, map[string]schema.Value{"value": el})
			if err != nil {
				return nil, err
			}
			out[i] = dv
		}
		return out, nil

	default:
		return nil, NewSchemaError("Invalid argument: %s", name)
	}
}
