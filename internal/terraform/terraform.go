// Package terraform is a thin facade over the terraform CLI: the fixed
// argument vectors the console is allowed to run, plus detection of the
// binary on the execution host. The tool itself is an opaque subprocess;
// nothing here interprets its behavior beyond the exit code.
package terraform

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// InstallURL points users at the official install page when the binary is
// missing.
const InstallURL = "https://developer.hashicorp.com/terraform/install"

// Actions supported by the console, in the order they appear in a normal
// deployment lifecycle.
const (
	ActionInit    = "init"
	ActionPlan    = "plan"
	ActionApply   = "apply"
	ActionDestroy = "destroy"
)

// Tool builds command vectors for one terraform binary. The zero value
// uses "terraform" from PATH.
type Tool struct {
	Binary string
}

// NewTool returns a Tool for the given binary, defaulting to "terraform".
func NewTool(binary string) Tool {
	if binary == "" {
		binary = "terraform"
	}
	return Tool{Binary: binary}
}

// Init returns the argument vector for `terraform init`.
func (t Tool) Init() []string { return []string{t.Binary, ActionInit} }

// Plan returns the argument vector for `terraform plan`.
func (t Tool) Plan() []string { return []string{t.Binary, ActionPlan} }

// Apply returns the argument vector for a non-interactive apply.
func (t Tool) Apply() []string { return []string{t.Binary, ActionApply, "-auto-approve"} }

// Destroy returns the argument vector for a non-interactive destroy.
func (t Tool) Destroy() []string { return []string{t.Binary, ActionDestroy, "-auto-approve"} }

// Command maps an action name from the API onto its fixed argument
// vector. Anything outside the four known actions is rejected; the
// console never passes user text through to the CLI.
func (t Tool) Command(action string) ([]string, error) {
	switch action {
	case ActionInit:
		return t.Init(), nil
	case ActionPlan:
		return t.Plan(), nil
	case ActionApply:
		return t.Apply(), nil
	case ActionDestroy:
		return t.Destroy(), nil
	}
	return nil, fmt.Errorf("unknown action %q", action)
}

// Dependency describes whether the provisioning tool is available on this
// host, for the pre-deployment dependency report.
type Dependency struct {
	Name       string `json:"name"`
	Installed  bool   `json:"installed"`
	Version    string `json:"version,omitempty"`
	Required   bool   `json:"required"`
	InstallURL string `json:"install_url"`
}

// Detect looks the binary up on PATH and, when present, probes
// `terraform version` for its release. A missing binary is reported, not
// an error: absence only matters at run time.
func (t Tool) Detect(ctx context.Context) Dependency {
	dep := Dependency{Name: t.Binary, Required: true, InstallURL: InstallURL}

	path, err := exec.LookPath(t.Binary)
	if err != nil {
		return dep
	}
	dep.Installed = true

	out, err := exec.CommandContext(ctx, path, "version").Output()
	if err != nil {
		return dep
	}
	dep.Version = parseVersion(string(out))
	return dep
}

// parseVersion extracts the release from the first line of `terraform
// version` output, e.g. "Terraform v1.9.5".
func parseVersion(out string) string {
	line, _, _ := strings.Cut(out, "\n")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	raw := strings.TrimPrefix(fields[len(fields)-1], "v")
	v, err := goversion.NewVersion(raw)
	if err != nil {
		return ""
	}
	return v.String()
}
