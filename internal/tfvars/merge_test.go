package tfvars

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func baseFile() *File {
	f := NewFile()
	f.Set("workspace_name", String("foo"))
	f.Set("enabled", Bool(true))
	f.Set("zones", List("a", "b"))
	f.Set("tags", Map(Pair{"env", "prod"}))
	return f
}

func TestMergeForm_CheckboxSemantics(t *testing.T) {
	ctx := context.Background()

	// Scenario: enabled is true, the form carries workspace_name only. An
	// unchecked checkbox submits no field at all, which must read as false.
	f := baseFile()
	MergeForm(ctx, f, url.Values{"workspace_name": {"bar"}})

	v, _ := f.Get("workspace_name")
	require.Equal(t, String("bar"), v)
	v, _ = f.Get("enabled")
	require.Equal(t, Bool(false), v)

	// Presence with any value, even "off", means true.
	MergeForm(ctx, f, url.Values{"enabled": {"off"}})
	v, _ = f.Get("enabled")
	require.Equal(t, Bool(true), v)
}

func TestMergeForm_MapFromJSON(t *testing.T) {
	f := baseFile()
	MergeForm(context.Background(), f, url.Values{"tags": {`{"env":"dev","owner":"x"}`}})

	v, _ := f.Get("tags")
	require.Equal(t, Map(Pair{"env", "dev"}, Pair{"owner", "x"}), v)
}

func TestMergeForm_MapFromPairLines(t *testing.T) {
	f := baseFile()
	MergeForm(context.Background(), f, url.Values{"tags": {"env = dev\nowner: x"}})

	v, _ := f.Get("tags")
	require.Equal(t, Map(Pair{"env", "dev"}, Pair{"owner", "x"}), v)
}

func TestMergeForm_MalformedMapKeepsPrevious(t *testing.T) {
	f := baseFile()
	MergeForm(context.Background(), f, url.Values{"tags": {`{"env": nonsense`}})

	v, _ := f.Get("tags")
	require.Equal(t, Map(Pair{"env", "prod"}), v)
}

func TestMergeForm_NestedJSONMapRejected(t *testing.T) {
	f := baseFile()
	MergeForm(context.Background(), f, url.Values{"tags": {`{"env":{"nested":"x"}}`}})

	v, _ := f.Get("tags")
	require.Equal(t, Map(Pair{"env", "prod"}), v)
}

func TestMergeForm_ListReplacement(t *testing.T) {
	f := baseFile()
	MergeForm(context.Background(), f, url.Values{"zones": {`["c", "d"]`}, "enabled": {"on"}})
	v, _ := f.Get("zones")
	require.Equal(t, List("c", "d"), v)

	MergeForm(context.Background(), f, url.Values{"zones": {"e, f"}, "enabled": {"on"}})
	v, _ = f.Get("zones")
	require.Equal(t, List("e", "f"), v)
}

func TestMergeForm_UnknownKeysIgnored(t *testing.T) {
	f := baseFile()
	MergeForm(context.Background(), f, url.Values{
		"workspace_name": {"bar"},
		"enabled":        {"on"},
		"injected":       {"nope"},
	})

	_, ok := f.Get("injected")
	require.False(t, ok)
	require.Equal(t, 4, f.Len())
}

func TestMergeForm_Idempotent(t *testing.T) {
	form := url.Values{
		"workspace_name": {"bar"},
		"zones":          {"x, y"},
		"tags":           {`{"env":"dev"}`},
	}

	once := baseFile()
	MergeForm(context.Background(), once, form)

	twice := baseFile()
	MergeForm(context.Background(), twice, form)
	MergeForm(context.Background(), twice, form)

	require.True(t, once.Equal(twice))
}
