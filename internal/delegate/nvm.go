package delegate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HeshanSudarshana/devtool-manager/internal/paths"
)

// NVM adapts the Node Version Manager. nvm is a shell function rather than
// a binary, so every invocation sources nvm.sh inside a bash subshell.
type NVM struct {
	Dir    string
	runner Runner
}

// NewNVM creates the node delegate rooted at dir, defaulting to $NVM_DIR or
// ~/.nvm when dir is empty.
func NewNVM(dir string, runner Runner) *NVM {
	if dir == "" {
		dir = os.Getenv("NVM_DIR")
	}
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".nvm")
		}
	}
	return &NVM{Dir: dir, runner: runner}
}

// Name implements Manager.
func (n *NVM) Name() string { return "node" }

// Available implements Manager.
func (n *NVM) Available() bool {
	ok, err := paths.FileExists(filepath.Join(n.Dir, "nvm.sh"))
	return err == nil && ok
}

// InstallHint implements Manager.
func (n *NVM) InstallHint() string {
	return "install nvm from https://github.com/nvm-sh/nvm#installing-and-updating"
}

func (n *NVM) invoke(ctx context.Context, nvmArgs string) error {
	if !n.Available() {
		return fmt.Errorf("nvm.sh not found under %s: %w", n.Dir, ErrMissing)
	}
	script := fmt.Sprintf(". %q && nvm %s", filepath.Join(n.Dir, "nvm.sh"), nvmArgs)
	return n.runner.Run(ctx, "bash", "-c", script)
}

// Install implements Manager.
func (n *NVM) Install(ctx context.Context, spec string) error {
	return n.invoke(ctx, "install "+spec)
}

// Activate implements Manager. The returned snippet re-creates nvm's shell
// hook in the caller's session; static variable bindings alone cannot carry
// nvm's version selection. Every line references NVM_DIR so the env file
// store can prune the whole block on the next activation.
func (n *NVM) Activate(ctx context.Context, spec string) ([]string, error) {
	if !n.Available() {
		return nil, fmt.Errorf("nvm.sh not found under %s: %w", n.Dir, ErrMissing)
	}
	if err := n.invoke(ctx, "use "+spec); err != nil {
		return nil, err
	}
	return []string{
		fmt.Sprintf("export NVM_DIR=\"%s\"", n.Dir),
		"[ -s \"$NVM_DIR/nvm.sh\" ] && \\. \"$NVM_DIR/nvm.sh\"",
		"[ -s \"$NVM_DIR/nvm.sh\" ] && nvm use --silent " + spec,
	}, nil
}

// List implements Manager. nvm has no structured listing, so the adapter
// scrapes `nvm ls --no-colors` for version tokens.
func (n *NVM) List(ctx context.Context) ([]string, error) {
	if !n.Available() {
		return nil, fmt.Errorf("nvm.sh not found under %s: %w", n.Dir, ErrMissing)
	}
	script := fmt.Sprintf(". %q && nvm ls --no-colors --no-alias", filepath.Join(n.Dir, "nvm.sh"))
	out, err := n.runner.Output(ctx, "bash", "-c", script)
	if err != nil {
		return nil, err
	}
	return parseNvmList(out), nil
}

// Remove implements Manager.
func (n *NVM) Remove(ctx context.Context, spec string) error {
	return n.invoke(ctx, "uninstall "+spec)
}

func parseNvmList(out string) []string {
	var versions []string
	for _, line := range strings.Split(out, "\n") {
		for _, field := range strings.Fields(line) {
			field = strings.Trim(field, "->*")
			if strings.HasPrefix(field, "v") && strings.ContainsAny(field, "0123456789") {
				versions = append(versions, strings.TrimPrefix(field, "v"))
				break
			}
		}
	}
	return versions
}
