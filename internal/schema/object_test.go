package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObject_SatisfiesOwnNameAndInterfaces(t *testing.T) {
	obj := NewObject("Droid", ResolverMap{}, "Character")

	require.True(t, obj.Satisfies("Droid"))
	require.True(t, obj.Satisfies("Character"))
	require.False(t, obj.Satisfies("Human"))
}

func TestObject_SatisfiesWithNoExtraTypeNames(t *testing.T) {
	obj := NewObject("Query", ResolverMap{})

	require.True(t, obj.Satisfies("Query"))
	require.False(t, obj.Satisfies("Mutation"))
}

func TestTypeRef_ScalarChain(t *testing.T) {
	ref := Scalar(ScalarString, Nullable, List)

	require.Equal(t, []Modifier{Nullable, List, None}, ref.Modifiers)
	require.False(t, ref.IsObject())
}

func TestTypeRef_ObjectChainAllowsNilObj(t *testing.T) {
	ref := ObjectRef(nil, List)

	require.Equal(t, []Modifier{List, None}, ref.Modifiers)
	require.True(t, ref.IsObject(), "Composite must not depend on Obj being set")
	require.Nil(t, ref.Obj)
}
