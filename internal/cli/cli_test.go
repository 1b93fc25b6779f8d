package cli

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/HeshanSudarshana/devtool-manager/internal/paths"
)

// resetFlags clears the package-level flag state mutated by prior runs.
func resetFlags() {
	rootDir = ""
	outputJSON = false
	assumeYes = false
	verbose = false
	pullForce = false
	pullNoProgress = false
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// captureStdout runs fn while capturing everything written to os.Stdout.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read pipe: %v", err)
	}
	return string(data), runErr
}

func installFixture(t *testing.T, home, tool, version, markerRel string) string {
	t.Helper()
	dir := filepath.Join(home, "tools", tool, version)
	marker := filepath.Join(dir, filepath.FromSlash(markerRel))
	if err := os.MkdirAll(filepath.Dir(marker), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(marker, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write marker: %v", err)
	}
	return dir
}

func makeJavaArchive(t *testing.T) []byte {
	t.Helper()
	files := map[string]string{
		"jdk-11.0.21+9/bin/java":  "#!/bin/sh\necho java\n",
		"jdk-11.0.21+9/bin/javac": "#!/bin/sh\necho javac\n",
		"jdk-11.0.21+9/release":   "JAVA_VERSION=\"11.0.21\"\n",
	}
	if runtime.GOOS == "windows" {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		for name, content := range files {
			w, err := zw.Create(name)
			if err != nil {
				t.Fatalf("zip create: %v", err)
			}
			if _, err := w.Write([]byte(content)); err != nil {
				t.Fatalf("zip write: %v", err)
			}
		}
		if err := zw.Close(); err != nil {
			t.Fatalf("zip close: %v", err)
		}
		return buf.Bytes()
	}
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		header := &tar.Header{Name: name, Mode: 0o755, Size: int64(len(content))}
		if err := tw.WriteHeader(header); err != nil {
			t.Fatalf("tar header: %v", err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatalf("tar write: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("tar close: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

// javaUpstream emulates the Adoptium index and binary endpoints.
func javaUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	archive := makeJavaArchive(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/v3/info/release_names") {
			_, _ = w.Write([]byte(`{"releases":["jdk-11.0.21+9","jdk-11.0.2+7","jdk-17.0.9+9"]}`))
			return
		}
		if strings.HasPrefix(r.URL.Path, "/v3/binary/version/jdk-11.0.21/") {
			_, _ = w.Write(archive)
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

func writeMirrorConfig(t *testing.T, home, javaURL string) {
	t.Helper()
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	content := fmt.Sprintf("mirrors:\n  java: %s\n", javaURL)
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestEndToEndPullSetListRemove(t *testing.T) {
	home := t.TempDir()
	t.Setenv(paths.EnvHome, home)
	server := javaUpstream(t)
	writeMirrorConfig(t, home, server.URL)

	// pull java 11 creates exactly one directory under the java root whose
	// name starts with 11.
	if _, err := runCommand(t, "pull", "java", "11", "--no-progress", "--yes"); err != nil {
		t.Fatalf("pull: %v", err)
	}
	entries, err := os.ReadDir(filepath.Join(home, "tools", "java"))
	if err != nil {
		t.Fatalf("read java root: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "11.") {
		t.Fatalf("expected one 11.x install, got %v", entries)
	}
	installed := entries[0].Name()

	// set java 11 emits JAVA_HOME and PATH bindings on stdout and writes
	// the same block to the env file.
	stdout, err := captureStdout(t, func() error {
		_, err := runCommand(t, "set", "java", "11")
		return err
	})
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	installDir := filepath.Join(home, "tools", "java", installed)
	if !strings.Contains(stdout, "export JAVA_HOME=\""+installDir+"\"") {
		t.Fatalf("stdout missing JAVA_HOME binding: %q", stdout)
	}
	if !strings.Contains(stdout, "$JAVA_HOME/bin") {
		t.Fatalf("stdout missing PATH binding: %q", stdout)
	}

	envData, err := os.ReadFile(filepath.Join(home, "env.sh"))
	if err != nil {
		t.Fatalf("read env file: %v", err)
	}
	if !strings.Contains(string(envData), "export JAVA_HOME=\""+installDir+"\"") {
		t.Fatalf("env file missing binding: %q", envData)
	}

	// list java marks the installed version active when JAVA_HOME points
	// at it.
	t.Setenv("JAVA_HOME", installDir)
	out, err := runCommand(t, "list", "java")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, installed) || !strings.Contains(out, "active") {
		t.Fatalf("list output missing active annotation: %q", out)
	}

	// remove deletes the directory but leaves the (now dangling) env file
	// bindings untouched.
	if _, err := runCommand(t, "remove", "java", installed, "--yes"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(installDir); !os.IsNotExist(err) {
		t.Fatalf("install dir still present: %v", err)
	}
	after, err := os.ReadFile(filepath.Join(home, "env.sh"))
	if err != nil {
		t.Fatalf("read env file: %v", err)
	}
	if string(after) != string(envData) {
		t.Fatalf("remove rewrote env file:\n%q\n%q", envData, after)
	}
}

func TestSetNodePersistsDelegateSnippet(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires bash")
	}
	home := t.TempDir()
	t.Setenv(paths.EnvHome, home)

	// A stub nvm.sh is enough: the adapter only sources it and calls the
	// nvm function.
	nvmDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(nvmDir, "nvm.sh"), []byte("nvm() { return 0; }\n"), 0o644); err != nil {
		t.Fatalf("write nvm.sh: %v", err)
	}
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	content := fmt.Sprintf("delegates:\n  node_dir: %s\n", nvmDir)
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	stdout, err := captureStdout(t, func() error {
		_, err := runCommand(t, "set", "node", "20")
		return err
	})
	if err != nil {
		t.Fatalf("set node: %v", err)
	}
	if !strings.Contains(stdout, "export NVM_DIR=\""+nvmDir+"\"") {
		t.Fatalf("stdout missing NVM_DIR export: %q", stdout)
	}

	// The emitted snippet is also persisted, so new sessions sourcing the
	// env file get the nvm hook.
	envData, err := os.ReadFile(filepath.Join(home, "env.sh"))
	if err != nil {
		t.Fatalf("read env file: %v", err)
	}
	for _, want := range []string{
		"export NVM_DIR=\"" + nvmDir + "\"",
		"nvm use --silent 20",
	} {
		if !strings.Contains(string(envData), want) {
			t.Fatalf("env file missing %q:\n%s", want, envData)
		}
	}

	// Re-activation replaces the snippet instead of appending to it.
	if _, err := captureStdout(t, func() error {
		_, err := runCommand(t, "set", "node", "20")
		return err
	}); err != nil {
		t.Fatalf("set node again: %v", err)
	}
	after, err := os.ReadFile(filepath.Join(home, "env.sh"))
	if err != nil {
		t.Fatalf("read env file: %v", err)
	}
	if string(after) != string(envData) {
		t.Fatalf("re-activation changed env file:\n%q\n%q", envData, after)
	}
}

func TestSetUnknownVersionPrintsHintAndFails(t *testing.T) {
	home := t.TempDir()
	t.Setenv(paths.EnvHome, home)
	installFixture(t, home, "java", "17.0.9", "bin/java")

	_, err := captureStdout(t, func() error {
		_, err := runCommand(t, "set", "java", "11")
		return err
	})
	if err == nil {
		t.Fatal("expected resolution failure")
	}
}

func TestListEmptyStore(t *testing.T) {
	t.Setenv(paths.EnvHome, t.TempDir())
	out, err := runCommand(t, "list", "gradle")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "(none installed)") {
		t.Fatalf("expected empty marker, got %q", out)
	}
}

func TestListJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv(paths.EnvHome, home)
	installFixture(t, home, "gradle", "8.5", "bin/gradle")

	out, err := runCommand(t, "list", "gradle", "--json")
	if err != nil {
		t.Fatalf("list --json: %v", err)
	}
	if !strings.Contains(out, "\"version\": \"8.5\"") {
		t.Fatalf("json output missing version: %q", out)
	}
}

func TestRemoveMissingVersionFails(t *testing.T) {
	t.Setenv(paths.EnvHome, t.TempDir())
	_, err := runCommand(t, "remove", "gradle", "8.5", "--yes")
	if err == nil {
		t.Fatal("expected not-installed failure")
	}
}

func TestUnknownToolRejected(t *testing.T) {
	t.Setenv(paths.EnvHome, t.TempDir())
	if _, err := runCommand(t, "list", "rust"); err == nil {
		t.Fatal("expected unknown tool failure")
	}
}

func TestDoctorReportsStore(t *testing.T) {
	home := t.TempDir()
	t.Setenv(paths.EnvHome, home)
	installFixture(t, home, "maven", "3.9.6", "bin/mvn")

	out, err := runCommand(t, "doctor")
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !strings.Contains(out, "maven") || !strings.Contains(out, "delegate") {
		t.Fatalf("doctor output incomplete: %q", out)
	}
}
