package executor

import (
	"context"
	"fmt"
	"time"

	eventbus "github.com/oakwire/gqlexec/internal/eventbus"
	events "github.com/oakwire/gqlexec/internal/events"
	language "github.com/oakwire/gqlexec/internal/language"
	schema "github.com/oakwire/gqlexec/internal/schema"
)

// ExecuteSelectionSet builds the JSON object one selection set produces
// against obj: it iterates selections in source order, evaluates
// @skip/@include, dispatches Field selections to obj's resolvers, and
// expands FragmentSpread/InlineFragment selections subject to their type
// condition. The returned OrderedMap preserves first-write key order;
// a key written again by a later fragment overwrites the earlier value
// in place, matching how GraphQL's field-merging falls out of an object
// map.
//
// Any *SchemaError raised by a resolver aborts traversal immediately —
// there is no per-field partial-result recovery in this engine, only the
// single request-level "data: null, errors: [...]" fallback described in
// Request.Resolve.
func ExecuteSelectionSet(obj *schema.Object, selection language.SelectionSet, fragments schema.FragmentMap, vars map[string]schema.Value) (schema.Value, error) {
	return executeSelectionSetCtx(context.Background(), obj, selection, fragments, vars, "")
}

func executeSelectionSetCtx(ctx context.Context, obj *schema.Object, selection language.SelectionSet, fragments schema.FragmentMap, vars map[string]schema.Value, path string) (*schema.OrderedMap, error) {
	out := schema.NewOrderedMap()
	if err := executeSelections(ctx, out, obj, selection, fragments, vars, path); err != nil {
		return nil, err
	}
	return out, nil
}

func executeSelections(ctx context.Context, out *schema.OrderedMap, obj *schema.Object, selection language.SelectionSet, fragments schema.FragmentMap, vars map[string]schema.Value, path string) error {
	for _, sel := range selection {
		switch s := sel.(type) {
		case *language.Field:
			if shouldSkip(s.Directives, vars) {
				continue
			}
			key := s.Alias
			if key == "" {
				key = s.Name
			}
			fieldPath := appendPath(path, key)

			resolver, ok := obj.Resolvers[s.Name]
			if !ok {
				// Schema-generated resolver maps are assumed exhaustive; an
				// unknown field is not fatal, it simply produces null.
				out.Set(key, nil)
				continue
			}

			args := coerceArguments(s.Arguments, vars)
			params := schema.ResolverParams{
				Args:      args,
				Selection: s.SelectionSet,
				Fragments: fragments,
				Variables: vars,
			}

			v, err := invokeResolver(ctx, obj.Name, s.Name, fieldPath, resolver, params)
			if err != nil {
				return err
			}
			out.Set(key, v)

		case *language.FragmentSpread:
			if shouldSkip(s.Directives, vars) {
				continue
			}
			frag, ok := fragments[s.Name]
			if !ok {
				return NewSchemaError("Unknown fragment: %s", s.Name)
			}
			if !obj.Satisfies(frag.TypeCondition) {
				continue
			}
			if err := executeSelections(ctx, out, obj, frag.Selection, fragments, vars, path); err != nil {
				return err
			}

		case *language.InlineFragment:
			if shouldSkip(s.Directives, vars) {
				continue
			}
			if s.TypeCondition != "" && !obj.Satisfies(s.TypeCondition) {
				continue
			}
			if err := executeSelections(ctx, out, obj, s.SelectionSet, fragments, vars, path); err != nil {
				return err
			}
		}
	}
	return nil
}

// invokeResolver calls resolver, converting a panic into a *SchemaError
// so a misbehaving resolver can never crash Request.Resolve's caller, and
// publishing FieldStart/FieldFinish around the call for tracing.
func invokeResolver(ctx context.Context, typeName, fieldName, path string, resolver schema.Resolver, params schema.ResolverParams) (v schema.Value, err error) {
	eventbus.Publish(ctx, events.FieldStart{TypeName: typeName, FieldName: fieldName, Path: path})
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = NewSchemaError("panic resolving %s: %v", path, r)
		}
		eventbus.Publish(ctx, events.FieldFinish{
			TypeName:  typeName,
			FieldName: fieldName,
			Path:      path,
			Err:       err,
			Duration:  time.Since(start),
		})
	}()

	v, err = resolver(params)
	if err != nil {
		err = asSchemaError(err)
	}
	return v, err
}

func shouldSkip(directives language.DirectiveList, vars map[string]schema.Value) bool {
	if b := directiveIfArg(directives, "skip", vars); b != nil && *b {
		return true
	}
	if b := directiveIfArg(directives, "include", vars); b != nil && !*b {
		return true
	}
	return false
}

func directiveIfArg(directives language.DirectiveList, name string, vars map[string]schema.Value) *bool {
	for _, d := range directives {
		if d.Name != name {
			continue
		}
		for _, a := range d.Arguments {
			if a.Name != "if" {
				continue
			}
			v := CoerceValue(a.Value, vars)
			b, _ := v.(bool)
			return &b
		}
	}
	return nil
}

func appendPath(base, key string) string {
	if base == "" {
		return key
	}
	return fmt.Sprintf("%s.%s", base, key)
}
