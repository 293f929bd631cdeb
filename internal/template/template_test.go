package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, root string, rel string) {
	t.Helper()
	dir := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, VarsFileName), []byte("name = \"x\"\n"), 0644))
}

func TestDiscover_MultiTemplateRoot(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "aws-simple")
	writeTemplate(t, root, "azure-simple")
	writeTemplate(t, root, "gcp/simple")
	// A directory without a tfvars file is not a template.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0755))

	c, err := Discover(root)
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	tmpl, ok := c.Get("aws-simple")
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, "aws-simple"), tmpl.Path)
	require.Equal(t, filepath.Join(root, "aws-simple", VarsFileName), tmpl.TfvarsPath)

	_, ok = c.Get("gcp/simple")
	require.True(t, ok)
	_, ok = c.Get("docs")
	require.False(t, ok)
}

func TestDiscover_SingleTemplateWorkspace(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, VarsFileName), []byte(""), 0644))

	c, err := Discover(root)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	tmpl, ok := c.Get(filepath.Base(root))
	require.True(t, ok)
	require.Equal(t, root, tmpl.Path)
}

func TestDiscover_SkipsDotDirectories(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "aws-simple")
	writeTemplate(t, root, "aws-simple/.terraform/modules/vpc")

	c, err := Discover(root)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
