package toolchain

import (
	"errors"

	"github.com/HeshanSudarshana/devtool-manager/internal/envfile"
	"github.com/HeshanSudarshana/devtool-manager/internal/version"
)

// Activate resolves the specifier against the store, rewrites the env file,
// and returns the applied block so the CLI can echo the same assignments on
// the machine-readable channel. Re-activating the same version is a no-op
// for the file contents: stale lines are always pruned before the fresh
// block is appended.
func (m *Manager) Activate(tool, spec string) (envfile.Block, string, error) {
	def, err := m.definition(tool)
	if err != nil {
		return envfile.Block{}, "", err
	}

	resolved, err := m.ResolveInstalled(tool, spec)
	if err != nil {
		return envfile.Block{}, "", err
	}

	installDir := m.Store.Path(tool, resolved)
	workspaceDir := ""
	if tool == "go" {
		workspaceDir = m.Layout.WorkspaceDir(resolved)
		// The workspace may be missing when the install predates it or was
		// cleaned manually; recreate it here.
		if err := ensureWorkspace(workspaceDir); err != nil {
			return envfile.Block{}, "", err
		}
	}

	block := def.Bindings(installDir, workspaceDir)
	if err := m.Env.Apply(block); err != nil {
		return envfile.Block{}, "", err
	}

	m.Log.Infof("activated %s %s", tool, resolved)
	return block, resolved, nil
}

// ResolveInstalled maps a specifier to an installed version. A failed
// resolution returns a ResolutionError carrying the installed list so the
// caller can print it as a remediation hint.
func (m *Manager) ResolveInstalled(tool, spec string) (string, error) {
	def, err := m.definition(tool)
	if err != nil {
		return "", err
	}

	installed, err := m.Store.List(tool)
	if err != nil {
		return "", err
	}

	// Only directories carrying the marker executable are candidates.
	candidates := installed[:0:0]
	for _, v := range installed {
		ok, err := m.Store.Exists(tool, v, def.Marker())
		if err != nil {
			return "", err
		}
		if ok {
			candidates = append(candidates, v)
		}
	}

	resolved, err := version.Resolve(spec, candidates)
	if err != nil {
		if errors.Is(err, version.ErrNoMatch) {
			return "", &ResolutionError{Tool: tool, Spec: spec, Installed: candidates}
		}
		return "", err
	}
	return resolved, nil
}
