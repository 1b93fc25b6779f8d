// Package paths resolves the canonical on-disk locations used by devman:
// the store root holding installed versions, the persistent environment
// file, the Go workspace root, and the downloads scratch area.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvHome overrides the devman home directory when set.
const EnvHome = "DEVMAN_HOME"

// Layout captures canonical locations under the devman home directory.
type Layout struct {
	Home          string
	StoreRoot     string
	WorkspaceRoot string
	EnvFile       string
	ConfigFile    string
	DownloadsDir  string
}

// Resolve determines the devman home using the optional --root flag, the
// DEVMAN_HOME environment variable, or ~/.devman in that order.
func Resolve(rootFlag string) (Layout, error) {
	var (
		home string
		err  error
	)

	switch {
	case rootFlag != "":
		home, err = filepath.Abs(rootFlag)
	case os.Getenv(EnvHome) != "":
		home, err = filepath.Abs(os.Getenv(EnvHome))
	default:
		var userHome string
		userHome, err = os.UserHomeDir()
		if err == nil {
			home = filepath.Join(userHome, ".devman")
		}
	}
	if err != nil {
		return Layout{}, fmt.Errorf("resolve devman home: %w", err)
	}

	return newLayout(home), nil
}

func newLayout(home string) Layout {
	return Layout{
		Home:          home,
		StoreRoot:     filepath.Join(home, "tools"),
		WorkspaceRoot: filepath.Join(home, "workspaces", "go"),
		EnvFile:       filepath.Join(home, "env.sh"),
		ConfigFile:    filepath.Join(home, "config.yaml"),
		DownloadsDir:  filepath.Join(home, "downloads"),
	}
}

// EnsureHome makes sure the home and store hierarchy exist on disk.
func (l Layout) EnsureHome() error {
	dirs := []string{l.Home, l.StoreRoot, l.DownloadsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ToolRoot returns the directory holding installed versions of a tool.
func (l Layout) ToolRoot(tool string) string {
	return filepath.Join(l.StoreRoot, tool)
}

// WorkspaceDir returns the Go workspace directory for a version.
func (l Layout) WorkspaceDir(version string) string {
	return filepath.Join(l.WorkspaceRoot, version)
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
