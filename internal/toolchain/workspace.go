package toolchain

import (
	"fmt"
	"os"
	"path/filepath"
)

// workspaceSubdirs is the classic GOPATH layout created per Go version.
var workspaceSubdirs = []string{"src", "pkg", "bin"}

// ensureWorkspace creates the per-version Go workspace tree if absent. It
// runs at install time and again lazily at activation, since activation may
// encounter a version whose workspace was never created.
func ensureWorkspace(dir string) error {
	for _, sub := range workspaceSubdirs {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return fmt.Errorf("create workspace %s: %w", dir, err)
		}
	}
	return nil
}

// removeWorkspace deletes a version's workspace tree. Missing is fine.
func removeWorkspace(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove workspace %s: %w", dir, err)
	}
	return nil
}
