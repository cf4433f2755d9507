package executor

import (
	"strconv"

	language "github.com/oakwire/gqlexec/internal/language"
	schema "github.com/oakwire/gqlexec/internal/schema"
)

// CoerceValue walks an AST value node — a literal or a variable reference
// — and produces a JSON-shaped schema.Value, substituting from vars. A
// variable reference to a name absent from vars coerces to nil rather
// than raising: required-variable enforcement is ArgumentCoercer's job,
// not this one's.
//
// No error is ever returned here; a scalar/type mismatch surfaces later,
// when ArgumentCoercer tries to convert the resulting Value to a
// specific Go type.
func CoerceValue(v *language.Value, vars map[string]schema.Value) schema.Value {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case language.Variable:
		return vars[v.Raw]
	case language.IntValue:
		if i, err := strconv.ParseInt(v.Raw, 10, 64); err == nil {
			return i
		}
		return v.Raw
	case language.FloatValue:
		if f, err := strconv.ParseFloat(v.Raw, 64); err == nil {
			return f
		}
		return v.Raw
	case language.StringValue, language.BlockValue, language.EnumValue:
		return v.Raw
	case language.BooleanValue:
		return v.Raw == "true"
	case language.NullValue:
		return nil
	case language.ListValue:
		out := make([]schema.Value, len(v.Children))
		for i, c := range v.Children {
			out[i] = CoerceValue(c.Value, vars)
		}
		return out
	case language.ObjectValue:
		out := make(map[string]schema.Value, len(v.Children))
		for _, c := range v.Children {
			out[c.Name] = CoerceValue(c.Value, vars)
		}
		return out
	default:
		return nil
	}
}

// coerceArguments runs CoerceValue over every AST argument of a field or
// directive, producing the raw (pre-ArgumentCoercer) arguments object
// SelectionExecutor hands to ArgumentCoercer / the resolver.
func coerceArguments(args language.ArgumentList, vars map[string]schema.Value) map[string]schema.Value {
	out := make(map[string]schema.Value, len(args))
	for _, a := range args {
		out[a.Name] = CoerceValue(a.Value, vars)
	}
	return out
}
