package grpcresolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticEndpoints_ReturnsConfiguredEndpoints(t *testing.T) {
	p := NewStaticEndpoints(map[string][]string{
		"starwars.CharacterService": {"10.0.0.1:9000", "10.0.0.2:9000"},
	})

	got, err := p.Endpoints(context.Background(), "starwars.CharacterService")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"10.0.0.1:9000", "10.0.0.2:9000"}, got)
}

func TestStaticEndpoints_UnknownServiceErrsNoEndpoints(t *testing.T) {
	p := NewStaticEndpoints(nil)

	_, err := p.Endpoints(context.Background(), "unknown.Service")
	require.ErrorIs(t, err, ErrNoEndpoints)
}

func TestStaticEndpoints_ReturnsCopyNotSharedSlice(t *testing.T) {
	p := NewStaticEndpoints(map[string][]string{"svc": {"a:1"}})

	got, err := p.Endpoints(context.Background(), "svc")
	require.NoError(t, err)
	got[0] = "mutated"

	got2, err := p.Endpoints(context.Background(), "svc")
	require.NoError(t, err)
	require.Equal(t, "a:1", got2[0])
}

func TestTransport_CallWithoutProviderErrors(t *testing.T) {
	tr := NewTransport()

	_, err := tr.Call(context.Background(), "starwars.CharacterService", "GetHero", nil)
	require.ErrorContains(t, err, "provider not configured")
}

func TestTransport_CallWithNoEndpointsErrors(t *testing.T) {
	tr := NewTransport(WithProvider(NewStaticEndpoints(nil)))

	_, err := tr.Call(context.Background(), "starwars.CharacterService", "GetHero", nil)
	require.ErrorIs(t, err, ErrNoEndpoints)
}
