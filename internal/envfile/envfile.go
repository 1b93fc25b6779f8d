// Package envfile maintains the persistent shell environment file that holds
// each tool's current bindings. Every activation rewrites the whole file:
// lines owned by the activating tool's variable family are pruned, then the
// fresh block is appended, and the result replaces the file via a temp file
// and rename so a partial write never corrupts existing bindings.
package envfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Block is one tool's set of environment bindings. Families lists the
// variable names whose prior lines must be pruned before Lines is appended.
type Block struct {
	Tool     string
	Families []string
	Lines    []string
}

// Export renders a shell export assignment line.
func Export(name, value string) string {
	return fmt.Sprintf("export %s=\"%s\"", name, value)
}

// PathEntry renders a PATH line that prepends dir, expressed through the
// family variable so the line stays tied to its tool.
func PathEntry(family, relBin string) string {
	return fmt.Sprintf("export PATH=\"$%s/%s:$PATH\"", family, relBin)
}

// Owns reports whether a line belongs to this block's variable family:
// either an assignment of a family variable or any line referencing one,
// which covers PATH entries and delegate re-init commands alike.
func (b Block) Owns(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, family := range b.Families {
		if strings.HasPrefix(trimmed, "export "+family+"=") {
			return true
		}
		if strings.Contains(trimmed, "$"+family+"/") || strings.Contains(trimmed, "${"+family+"}") {
			return true
		}
	}
	return false
}

// Store performs atomic read-modify-write cycles against one env file.
type Store struct {
	Path string
}

// NewStore creates a store for the env file at path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Read returns the file's lines, or nil when the file does not exist yet.
func (s *Store) Read() ([]string, error) {
	contents, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read env file: %w", err)
	}
	text := strings.TrimRight(string(contents), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// Apply prunes the block's stale lines and appends the fresh block,
// replacing the file atomically. Lines owned by other tools are preserved
// verbatim and in order.
func (s *Store) Apply(b Block) error {
	existing, err := s.Read()
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(existing)+len(b.Lines))
	for _, line := range existing {
		if b.Owns(line) {
			continue
		}
		kept = append(kept, line)
	}
	kept = append(kept, b.Lines...)

	return s.write(kept)
}

func (s *Store) write(lines []string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("prepare env file directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), "env-*.sh")
	if err != nil {
		return fmt.Errorf("create temp env file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp env file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp env file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("replace env file: %w", err)
	}
	return nil
}
