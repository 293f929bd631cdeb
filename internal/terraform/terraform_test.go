package terraform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTool_ArgumentVectors(t *testing.T) {
	tool := NewTool("")
	require.Equal(t, []string{"terraform", "init"}, tool.Init())
	require.Equal(t, []string{"terraform", "plan"}, tool.Plan())
	require.Equal(t, []string{"terraform", "apply", "-auto-approve"}, tool.Apply())
	require.Equal(t, []string{"terraform", "destroy", "-auto-approve"}, tool.Destroy())
}

func TestTool_CustomBinary(t *testing.T) {
	tool := NewTool("tofu")
	require.Equal(t, []string{"tofu", "apply", "-auto-approve"}, tool.Apply())
}

func TestTool_CommandMapping(t *testing.T) {
	tool := NewTool("")
	for _, action := range []string{ActionInit, ActionPlan, ActionApply, ActionDestroy} {
		cmd, err := tool.Command(action)
		require.NoError(t, err)
		require.Equal(t, "terraform", cmd[0])
		require.Equal(t, action, cmd[1])
	}

	_, err := tool.Command("rm -rf /")
	require.Error(t, err)
}

func TestDetect_MissingBinary(t *testing.T) {
	tool := NewTool("definitely-not-a-real-binary-4631")
	dep := tool.Detect(context.Background())
	require.False(t, dep.Installed)
	require.Empty(t, dep.Version)
	require.True(t, dep.Required)
	require.Equal(t, InstallURL, dep.InstallURL)
}

func TestParseVersion(t *testing.T) {
	out := "Terraform v1.9.5\non linux_amd64\n"
	require.Equal(t, "1.9.5", parseVersion(out))

	require.Equal(t, "", parseVersion(""))
	require.Equal(t, "", parseVersion("not a version line"))
}
