// Package store tracks installed tool versions on disk. A version counts as
// installed only when its directory contains the tool's marker executable;
// the directory tree itself is the sole source of truth.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HeshanSudarshana/devtool-manager/internal/paths"
)

// ErrNotInstalled indicates an operation targeted a version absent from the
// store.
var ErrNotInstalled = errors.New("not installed")

// Store exposes the filesystem-backed version registry. Implementations are
// not safe for concurrent use; devman runs one command at a time.
type Store interface {
	// List returns installed versions in directory-iteration order.
	List(tool string) ([]string, error)
	// Exists reports whether a version is installed, requiring the marker
	// executable at markerRel inside the version directory.
	Exists(tool, version, markerRel string) (bool, error)
	// Path returns the canonical directory for a tool version.
	Path(tool, version string) string
	// Delete removes a version directory. Returns ErrNotInstalled when the
	// directory is absent.
	Delete(tool, version string) error
}

// Dir is the filesystem implementation of Store rooted at a store root.
type Dir struct {
	Root string
}

// NewDir creates a filesystem store rooted at root.
func NewDir(root string) *Dir {
	return &Dir{Root: root}
}

// FromLayout creates a filesystem store at the layout's store root.
func FromLayout(l paths.Layout) *Dir {
	return NewDir(l.StoreRoot)
}

// List implements Store.
func (d *Dir) List(tool string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(d.Root, tool))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list %s versions: %w", tool, err)
	}

	var versions []string
	for _, entry := range entries {
		if entry.IsDir() {
			versions = append(versions, entry.Name())
		}
	}
	return versions, nil
}

// Exists implements Store.
func (d *Dir) Exists(tool, version, markerRel string) (bool, error) {
	dir := d.Path(tool, version)
	ok, err := paths.DirExists(dir)
	if err != nil || !ok {
		return false, err
	}
	if markerRel == "" {
		return true, nil
	}
	return paths.FileExists(filepath.Join(dir, filepath.FromSlash(markerRel)))
}

// Path implements Store.
func (d *Dir) Path(tool, version string) string {
	return filepath.Join(d.Root, tool, version)
}

// Delete implements Store.
func (d *Dir) Delete(tool, version string) error {
	dir := d.Path(tool, version)
	ok, err := paths.DirExists(dir)
	if err != nil {
		return fmt.Errorf("check %s %s: %w", tool, version, err)
	}
	if !ok {
		return fmt.Errorf("%s %s: %w", tool, version, ErrNotInstalled)
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("delete %s %s: %w", tool, version, err)
	}
	return nil
}
