package tfvars

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultsFor(t *testing.T) {
	f := NewFile()
	f.Set("resource_group_name", String("rg-prod"))
	f.Set("location", String("westeurope"))
	f.Set("vnet_cidr", String("172.16.0.0/12"))
	f.Set("client_secret", String("hunter2"))
	f.Set("enabled", Bool(true))
	f.Set("zones", List("1", "2"))
	f.Set("tags", Map(Pair{"env", "prod"}, Pair{"owner", "x"}))

	d := DefaultsFor(f)

	require.Equal(t, f.Names(), d.Names())

	v, _ := d.Get("resource_group_name")
	require.Equal(t, String("your-resource-group-name"), v)
	v, _ = d.Get("location")
	require.Equal(t, String("us-east-1"), v)
	v, _ = d.Get("vnet_cidr")
	require.Equal(t, String("10.0.0.0/16"), v)
	v, _ = d.Get("client_secret")
	require.Equal(t, String(""), v)
	v, _ = d.Get("enabled")
	require.Equal(t, Bool(false), v)
	v, _ = d.Get("zones")
	require.Equal(t, KindList, v.Kind)
	require.Empty(t, v.List)

	// Maps keep their key set with blanked values.
	v, _ = d.Get("tags")
	require.Equal(t, Map(Pair{Key: "env"}, Pair{Key: "owner"}), v)
}
