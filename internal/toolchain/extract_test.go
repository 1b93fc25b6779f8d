package toolchain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStripLeading(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"go/bin/go", "bin/go"},
		{"./go/bin/go", "bin/go"},
		{"apache-maven-3.9.6/bin/mvn", "bin/mvn"},
		{"go/", ""},
		{"go", ""},
	}
	for _, tc := range cases {
		if got := stripLeading(tc.in); got != tc.want {
			t.Errorf("stripLeading(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtractTarGzStripsLeadingComponent(t *testing.T) {
	archive := makeTarGz(t, map[string]string{
		"gradle-8.5/bin/gradle":     "#!/bin/sh\n",
		"gradle-8.5/lib/gradle.jar": "jar-bytes",
	})
	archivePath := filepath.Join(t.TempDir(), "gradle.tar.gz")
	if err := os.WriteFile(archivePath, archive, 0o644); err != nil {
		t.Fatalf("write archive: %v", err)
	}

	dest := t.TempDir()
	if err := extractArchive(archiveFormatTarGz, archivePath, dest); err != nil {
		t.Fatalf("extractArchive: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dest, "bin", "gradle")); err != nil {
		t.Fatalf("expected bin/gradle directly under dest: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "gradle-8.5")); !os.IsNotExist(err) {
		t.Fatal("leading component was not stripped")
	}
}

func TestExtractZipStripsLeadingComponent(t *testing.T) {
	archive := makeZip(t, map[string]string{
		"gradle-8.5/bin/gradle": "#!/bin/sh\n",
	})
	archivePath := filepath.Join(t.TempDir(), "gradle.zip")
	if err := os.WriteFile(archivePath, archive, 0o644); err != nil {
		t.Fatalf("write archive: %v", err)
	}

	dest := t.TempDir()
	if err := extractArchive(archiveFormatZip, archivePath, dest); err != nil {
		t.Fatalf("extractArchive: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "bin", "gradle")); err != nil {
		t.Fatalf("expected bin/gradle directly under dest: %v", err)
	}
}

func TestExtractRejectsEscapingEntries(t *testing.T) {
	archive := makeTarGz(t, map[string]string{
		"dist/../../escape": "bad",
	})
	archivePath := filepath.Join(t.TempDir(), "evil.tar.gz")
	if err := os.WriteFile(archivePath, archive, 0o644); err != nil {
		t.Fatalf("write archive: %v", err)
	}

	err := extractArchive(archiveFormatTarGz, archivePath, t.TempDir())
	if !errors.Is(err, ErrArchive) {
		t.Fatalf("expected ErrArchive for escaping entry, got %v", err)
	}
}

func TestExtractCorruptArchive(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "corrupt.tar.gz")
	if err := os.WriteFile(archivePath, []byte("junk"), 0o644); err != nil {
		t.Fatalf("write archive: %v", err)
	}
	err := extractArchive(archiveFormatTarGz, archivePath, t.TempDir())
	if !errors.Is(err, ErrArchive) {
		t.Fatalf("expected ErrArchive, got %v", err)
	}
}
