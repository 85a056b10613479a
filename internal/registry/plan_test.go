package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ipreg/superglue/internal/delegation"
	"github.com/ipreg/superglue/internal/registrant"
	"github.com/ipreg/superglue/internal/registry"
)

func TestNewPlan(t *testing.T) {
	t.Parallel()

	nss := []delegation.NameServer{
		{Name: "ns1.example.ac.uk", Address: "10.0.0.1"},
		{Name: "ns1.example.ac.uk", Address: "10.0.0.2"},
		{Name: "ns2.example.ac.uk", Address: "10.0.0.2"},
	}
	plan := registry.NewPlan(delegation.Set{Origin: "example.ac.uk", NameServers: nss, DS: ""}, registrant.Record{})

	require.True(t, plan.ManagesNameServers())
	require.False(t, plan.ManagesDS())
	require.False(t, plan.ManagesRegistrant())
	require.Equal(t, nss[0], *plan.Primary)
	require.Equal(t, nss[1:], plan.Secondaries)
	require.Equal(t, nss, plan.NameServers())
}

func TestNewPlanUnmanaged(t *testing.T) {
	t.Parallel()

	reg := registrant.NewRecord(registrant.Field{Key: "Town", Value: "Exampleton"})
	plan := registry.NewPlan(delegation.Set{Origin: "example.ac.uk"}, reg)

	require.False(t, plan.ManagesNameServers())
	require.Nil(t, plan.Primary)
	require.Nil(t, plan.NameServers())
	require.False(t, plan.ManagesDS())
	require.True(t, plan.ManagesRegistrant())
}
