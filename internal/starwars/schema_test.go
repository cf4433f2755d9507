package starwars

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	executor "github.com/oakwire/gqlexec/internal/executor"
	language "github.com/oakwire/gqlexec/internal/language"
	schema "github.com/oakwire/gqlexec/internal/schema"
)

func mustResolve(t *testing.T, query string, variables map[string]schema.Value) map[string]schema.Value {
	t.Helper()
	doc, err := language.ParseQuery(query)
	require.NoError(t, err)
	req := executor.NewRequest(NewTypeMap())
	return req.Resolve(context.Background(), doc, "", variables)
}

func TestHero_DefaultsToR2D2(t *testing.T) {
	result := mustResolve(t, `{ hero { name } }`, nil)
	data := result["data"].(*schema.OrderedMap)
	hero, ok := data.Get("hero")
	require.True(t, ok)
	name, _ := hero.(*schema.OrderedMap).Get("name")
	require.Equal(t, "R2-D2", name)
}

func TestHero_EpisodeEmpireReturnsLuke(t *testing.T) {
	result := mustResolve(t, `{ hero(episode: "EMPIRE") { name } }`, nil)
	data := result["data"].(*schema.OrderedMap)
	hero, ok := data.Get("hero")
	require.True(t, ok)
	name, _ := hero.(*schema.OrderedMap).Get("name")
	require.Equal(t, "Luke Skywalker", name)
}

func TestHuman_ByID(t *testing.T) {
	result := mustResolve(t, `{ human(id: "1000") { name homePlanet } }`, nil)
	data := result["data"].(*schema.OrderedMap)
	human, ok := data.Get("human")
	require.True(t, ok)
	humanObj := human.(*schema.OrderedMap)
	name, _ := humanObj.Get("name")
	planet, _ := humanObj.Get("homePlanet")
	require.Equal(t, "Luke Skywalker", name)
	require.Equal(t, "Tatooine", planet)
}

func TestHuman_UnknownIDReturnsNull(t *testing.T) {
	result := mustResolve(t, `{ human(id: "9999") { name } }`, nil)
	data := result["data"].(*schema.OrderedMap)
	human, ok := data.Get("human")
	require.True(t, ok)
	require.Nil(t, human)
}

func TestDroid_PrimaryFunction(t *testing.T) {
	result := mustResolve(t, `{ droid(id: "2000") { name primaryFunction } }`, nil)
	data := result["data"].(*schema.OrderedMap)
	droid, ok := data.Get("droid")
	require.True(t, ok)
	droidObj := droid.(*schema.OrderedMap)
	pf, _ := droidObj.Get("primaryFunction")
	require.Equal(t, "Protocol", pf)
}

func TestHuman_MissingIDArgument(t *testing.T) {
	result := mustResolve(t, `{ human { name } }`, nil)
	require.Nil(t, result["data"])
	errs := result["errors"].([]schema.Value)
	require.Len(t, errs, 1)
	require.Equal(t, "Invalid argument: id", errs[0].(map[string]schema.Value)["message"])
}

func TestFriends_ResolveToCharacterObjects(t *testing.T) {
	result := mustResolve(t, `{ human(id: "1000") { friends { name } } }`, nil)
	data := result["data"].(*schema.OrderedMap)
	human, ok := data.Get("human")
	require.True(t, ok)
	friends, ok := human.(*schema.OrderedMap).Get("friends")
	require.True(t, ok)
	list := friends.([]schema.Value)
	require.Len(t, list, 2)

	names := make([]string, len(list))
	for i, f := range list {
		n, _ := f.(*schema.OrderedMap).Get("name")
		names[i] = n.(string)
	}
	require.ElementsMatch(t, []string{"C-3PO", "R2-D2"}, names)
}

func TestVariableSubstitution_HumanByVariableID(t *testing.T) {
	result := mustResolve(t, `query($id: ID!) { human(id: $id) { name } }`, map[string]schema.Value{"id": "1001"})
	data := result["data"].(*schema.OrderedMap)
	human, ok := data.Get("human")
	require.True(t, ok)
	name, _ := human.(*schema.OrderedMap).Get("name")
	require.Equal(t, "Darth Vader", name)
}
