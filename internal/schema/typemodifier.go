package schema

// Modifier is one element of a TypeModifier chain, applied outside-in to a
// base scalar or object type. A chain is an ordered []Modifier terminated
// by None; the None terminal is what carries the base type's scalar kind
// or object reference.
type Modifier int

const (
	// Nullable admits an absent value in place of the inner chain's value.
	Nullable Modifier = iota
	// List admits an ordered sequence of the inner chain's value.
	List
	// None is the terminal modifier: decode/shape the base type directly.
	None
)

func (m Modifier) String() string {
	switch m {
	case Nullable:
		return "Nullable"
	case List:
		return "List"
	case None:
		return "None"
	default:
		return "Modifier(?)"
	}
}

// ScalarKind identifies the terminal scalar a None modifier decodes to,
// mirroring the scalar set cppgraphqlgen's ModifiedArgument specializes
// over: Int, Float, String, Boolean, an opaque ID (byte sequence, carried
// on the wire as a string), and a raw-JSON Scalar wildcard.
type ScalarKind int

const (
	ScalarInt ScalarKind = iota
	ScalarFloat
	ScalarString
	ScalarBoolean
	ScalarID
	ScalarRaw
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarInt:
		return "Int"
	case ScalarFloat:
		return "Float"
	case ScalarString:
		return "String"
	case ScalarBoolean:
		return "Boolean"
	case ScalarID:
		return "ID"
	case ScalarRaw:
		return "Scalar"
	default:
		return "ScalarKind(?)"
	}
}

// TypeRef describes the declared type of an argument, input field, or
// resolver output: an ordered Modifier chain terminated by None, plus the
// base type reached at that terminal. Composite marks an object base
// type, in which case a shaped value is a *Object reference rather than
// a scalar; Obj optionally names the field's declared object type for
// documentation, but dispatch always follows the resolver's actual
// returned *Object, not Obj — this is what lets one field resolve to
// different concrete types across calls (interfaces/unions).
type TypeRef struct {
	Modifiers []Modifier
	Kind      ScalarKind
	Composite bool
	Obj       *Object
}

// IsObject reports whether this reference's base type is a composite
// Object rather than a scalar.
func (t TypeRef) IsObject() bool { return t.Composite }

// Scalar builds a TypeRef chain terminated by a scalar base type.
func Scalar(kind ScalarKind, mods ...Modifier) TypeRef {
	return TypeRef{Modifiers: append(append([]Modifier{}, mods...), None), Kind: kind}
}

// ObjectRef builds a TypeRef chain terminated by a composite base type.
// obj may be nil when the field's declared type is an interface or union
// with no single answering Object (see Composite's doc comment).
func ObjectRef(obj *Object, mods ...Modifier) TypeRef {
	return TypeRef{Modifiers: append(append([]Modifier{}, mods...), None), Composite: true, Obj: obj}
}
