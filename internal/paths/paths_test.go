package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveFlagWinsOverEnv(t *testing.T) {
	flagDir := t.TempDir()
	t.Setenv(EnvHome, t.TempDir())

	layout, err := Resolve(flagDir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if layout.Home != flagDir {
		t.Fatalf("expected home %s, got %s", flagDir, layout.Home)
	}
}

func TestResolveEnvOverride(t *testing.T) {
	envDir := t.TempDir()
	t.Setenv(EnvHome, envDir)

	layout, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if layout.Home != envDir {
		t.Fatalf("expected home %s, got %s", envDir, layout.Home)
	}
	if layout.StoreRoot != filepath.Join(envDir, "tools") {
		t.Fatalf("unexpected store root %s", layout.StoreRoot)
	}
	if layout.EnvFile != filepath.Join(envDir, "env.sh") {
		t.Fatalf("unexpected env file %s", layout.EnvFile)
	}
}

func TestEnsureHomeCreatesHierarchy(t *testing.T) {
	home := filepath.Join(t.TempDir(), "devman")
	t.Setenv(EnvHome, home)

	layout, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if err := layout.EnsureHome(); err != nil {
		t.Fatalf("EnsureHome: %v", err)
	}

	for _, dir := range []string{layout.Home, layout.StoreRoot, layout.DownloadsDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
}

func TestToolRootAndWorkspace(t *testing.T) {
	layout := newLayout("/home/user/.devman")
	if got := layout.ToolRoot("java"); got != filepath.Join("/home/user/.devman", "tools", "java") {
		t.Fatalf("unexpected tool root %s", got)
	}
	if got := layout.WorkspaceDir("1.21.5"); got != filepath.Join("/home/user/.devman", "workspaces", "go", "1.21.5") {
		t.Fatalf("unexpected workspace dir %s", got)
	}
}
