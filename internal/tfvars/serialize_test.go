package tfvars

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerialize_AllKinds(t *testing.T) {
	f := NewFile()
	f.Set("workspace_name", String("bar"))
	f.Set("enabled", Bool(false))
	f.Set("zones", List("a", "b"))
	f.Set("tags", Map(Pair{"env", "prod"}, Pair{"owner", "x"}))

	want := `workspace_name = "bar"
enabled = false
zones = ["a", "b"]
tags = {
  "env" = "prod"
  "owner" = "x"
}
`
	require.Equal(t, want, string(f.Serialize()))
}

func TestSerialize_EmptyCollections(t *testing.T) {
	f := NewFile()
	f.Set("zones", List())
	f.Set("tags", Map())

	want := `zones = []
tags = {
}
`
	require.Equal(t, want, string(f.Serialize()))
}

// Parse(Serialize(Parse(x))) must reproduce Parse(x) for every value shape
// the model can represent.
func TestRoundTrip(t *testing.T) {
	content := `# provisioning inputs
workspace_name = "foo"
enabled = true
destroy_protection = false
subnet_cidrs = [
  "10.0.1.0/24",
  "10.0.2.0/24"
]
tags = {
  "env": "prod",
  "team": "infra"
}
notes = "plain text with spaces"
`
	first := Parse(content)
	second := Parse(string(first.Serialize()))
	require.True(t, first.Equal(second),
		"round trip diverged:\nfirst:  %v\nsecond: %v", first.Names(), second.Names())

	// A second round trip must be byte-stable.
	require.Equal(t, string(first.Serialize()), string(second.Serialize()))
}

// Serialized output must also be acceptable to the strict HCL parser so
// terraform itself can consume the saved file.
func TestSerialize_OutputIsValidHCL(t *testing.T) {
	f := NewFile()
	f.Set("workspace_name", String("foo"))
	f.Set("enabled", Bool(true))
	f.Set("zones", List("a", "b"))
	f.Set("tags", Map(Pair{"env", "prod"}))

	diags := Validate("terraform.tfvars", f.Serialize())
	require.Empty(t, diags)
}
