// Package toolchain implements the managed-tool registry: installing
// versions into the store, activating them through the env file, and
// enumerating or removing installed versions.
package toolchain

import (
	"path/filepath"
	"runtime"
	"sort"

	"github.com/HeshanSudarshana/devtool-manager/internal/envfile"
)

// Definition contains the metadata required to manage one toolchain.
type Definition struct {
	// Name is the tool identifier used on the CLI and in the store.
	Name string
	// Delegated marks tools handled by an external version manager.
	Delegated bool
	// MarkerRel is the executable (slash-separated, relative to the version
	// directory) whose presence makes a directory count as installed.
	MarkerRel string
	// ActiveVar is the environment variable whose live value identifies the
	// currently active install.
	ActiveVar string
	// Families lists the variable names owned by this tool in the env file.
	Families []string
}

var definitions = map[string]Definition{
	"java": {
		Name:      "java",
		MarkerRel: "bin/java",
		ActiveVar: "JAVA_HOME",
		Families:  []string{"JAVA_HOME"},
	},
	"maven": {
		Name:      "maven",
		MarkerRel: "bin/mvn",
		ActiveVar: "MAVEN_HOME",
		Families:  []string{"MAVEN_HOME", "M2_HOME"},
	},
	"gradle": {
		Name:      "gradle",
		MarkerRel: "bin/gradle",
		ActiveVar: "GRADLE_HOME",
		Families:  []string{"GRADLE_HOME"},
	},
	"go": {
		Name:      "go",
		MarkerRel: "bin/go",
		ActiveVar: "GOROOT",
		Families:  []string{"GOROOT", "GOPATH"},
	},
	"node": {
		Name:      "node",
		Delegated: true,
		Families:  []string{"NVM_DIR"},
	},
	"python": {
		Name:      "python",
		Delegated: true,
		Families:  []string{"PYENV_ROOT"},
	},
}

// KnownTools returns every managed tool name, sorted.
func KnownTools() []string {
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the definition for a tool name.
func Lookup(name string) (Definition, bool) {
	def, ok := definitions[name]
	return def, ok
}

// MarkerPath returns the absolute marker executable path inside installDir.
func (d Definition) MarkerPath(installDir string) string {
	dir, base := filepath.Split(filepath.FromSlash(d.MarkerRel))
	return filepath.Join(installDir, dir, executableName(base))
}

// Marker returns the marker path relative to the version directory,
// adjusted for the host platform.
func (d Definition) Marker() string {
	dir, base := filepath.Split(filepath.FromSlash(d.MarkerRel))
	return filepath.Join(dir, executableName(base))
}

// Bindings builds the env file block for an activated install. workspaceDir
// is only meaningful for go; other tools ignore it.
func (d Definition) Bindings(installDir, workspaceDir string) envfile.Block {
	block := envfile.Block{Tool: d.Name, Families: d.Families}
	switch d.Name {
	case "java":
		block.Lines = []string{
			envfile.Export("JAVA_HOME", installDir),
			envfile.PathEntry("JAVA_HOME", "bin"),
		}
	case "maven":
		block.Lines = []string{
			envfile.Export("MAVEN_HOME", installDir),
			envfile.Export("M2_HOME", installDir),
			envfile.PathEntry("MAVEN_HOME", "bin"),
		}
	case "gradle":
		block.Lines = []string{
			envfile.Export("GRADLE_HOME", installDir),
			envfile.PathEntry("GRADLE_HOME", "bin"),
		}
	case "go":
		block.Lines = []string{
			envfile.Export("GOROOT", installDir),
			envfile.Export("GOPATH", workspaceDir),
			envfile.PathEntry("GOROOT", "bin"),
			envfile.PathEntry("GOPATH", "bin"),
		}
	}
	return block
}

func executableName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}
