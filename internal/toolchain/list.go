package toolchain

import "fmt"

// Entry is one installed version with its activation annotation.
type Entry struct {
	Version string `json:"version"`
	Active  bool   `json:"active"`
}

// List returns installed versions in directory-iteration order. The active
// annotation compares the store path against the live process environment,
// not the env file, so it reflects the current session and may lag an
// external edit of the file.
func (m *Manager) List(tool string) ([]Entry, error) {
	def, err := m.definition(tool)
	if err != nil {
		return nil, err
	}

	versions, err := m.Store.List(tool)
	if err != nil {
		return nil, err
	}

	activePath := m.Getenv(def.ActiveVar)
	entries := make([]Entry, 0, len(versions))
	for _, v := range versions {
		entries = append(entries, Entry{
			Version: v,
			Active:  activePath != "" && activePath == m.Store.Path(tool, v),
		})
	}
	return entries, nil
}

// Remove deletes an installed version after confirmation. The specifier
// must name an exact installed version; partial specifiers are rejected to
// keep deletion deliberate. The env file is left untouched even when the
// removed version is currently active.
func (m *Manager) Remove(tool, ver string) error {
	def, err := m.definition(tool)
	if err != nil {
		return err
	}

	installed, err := m.Store.Exists(tool, ver, def.Marker())
	if err != nil {
		return err
	}
	if !installed {
		return fmt.Errorf("%s %s: %w", tool, ver, ErrNotInstalled)
	}

	ok, err := m.Confirm(fmt.Sprintf("Remove %s %s?", tool, ver))
	if err != nil {
		return err
	}
	if !ok {
		m.Log.Infof("kept %s %s", tool, ver)
		return nil
	}

	active := m.Getenv(def.ActiveVar) == m.Store.Path(tool, ver)

	if err := m.Store.Delete(tool, ver); err != nil {
		return err
	}
	if tool == "go" {
		if err := removeWorkspace(m.Layout.WorkspaceDir(ver)); err != nil {
			return err
		}
	}

	if active {
		// Known limitation: the env file still points at the deleted path
		// until another version is activated.
		m.Log.Warnf("%s %s was active; environment bindings now reference a deleted path", tool, ver)
	}
	m.Log.Infof("removed %s %s", tool, ver)
	return nil
}
