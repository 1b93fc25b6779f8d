package toolchain

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/HeshanSudarshana/devtool-manager/internal/version"
)

// InstallOptions configures install behaviour.
type InstallOptions struct {
	// Force overwrites an existing install without prompting.
	Force bool
}

// Install resolves the specifier against the upstream index, downloads the
// artifact, and unpacks it into the store. The keyword "latest" (or an
// empty specifier) selects the greatest upstream version. Returns the exact
// version that was installed.
func (m *Manager) Install(ctx context.Context, tool, spec string, opts InstallOptions) (string, error) {
	def, err := m.definition(tool)
	if err != nil {
		return "", err
	}

	m.progress(StageResolving, spec)
	resolved, err := m.resolveRemote(ctx, tool, spec)
	if err != nil {
		return "", err
	}

	installed, err := m.Store.Exists(tool, resolved, def.Marker())
	if err != nil {
		return "", err
	}
	if installed && !opts.Force {
		ok, err := m.Confirm(fmt.Sprintf("%s %s is already installed. Overwrite?", tool, resolved))
		if err != nil {
			return "", err
		}
		if !ok {
			// Declining an overwrite is a no-op success.
			m.Log.Infof("%s %s left as installed", tool, resolved)
			m.progress(StageDone, resolved)
			return resolved, nil
		}
	}

	rel, err := m.Index.downloadSpec(tool, resolved)
	if err != nil {
		return "", err
	}

	if err := m.Layout.EnsureHome(); err != nil {
		return "", err
	}

	m.progress(StageDownloading, rel.URL)
	m.Log.Debugf("downloading %s", rel.URL)
	archivePath, err := m.download(ctx, tool, rel)
	if err != nil {
		return "", err
	}
	// The scratch artifact goes away on success and failure alike.
	defer func() { _ = os.Remove(archivePath) }()

	destDir := m.Store.Path(tool, resolved)
	if err := os.RemoveAll(destDir); err != nil {
		return "", fmt.Errorf("replace install dir: %w", err)
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("prepare install dir: %w", err)
	}

	m.progress(StageExtracting, resolved)
	if err := extractArchive(rel.Archive, archivePath, destDir); err != nil {
		// A partially-extracted install directory must not survive.
		_ = os.RemoveAll(destDir)
		return "", err
	}

	if tool == "go" {
		if err := ensureWorkspace(m.Layout.WorkspaceDir(resolved)); err != nil {
			return "", err
		}
	}

	m.progress(StageDone, resolved)
	m.Log.Infof("installed %s %s", tool, resolved)
	return resolved, nil
}

// resolveRemote maps a possibly-partial specifier (or "latest") to an exact
// upstream version. Successful latest/partial lookups are cached briefly;
// failures never fall back to the cache.
func (m *Manager) resolveRemote(ctx context.Context, tool, spec string) (string, error) {
	if spec == "latest" {
		spec = ""
	}

	if cached, ok := cachedRemoteVersion(m.Layout.Home, tool, spec); ok {
		return cached, nil
	}

	available, err := m.Index.Versions(ctx, tool)
	if err != nil {
		return "", err
	}
	resolved, err := version.Latest(spec, available)
	if err != nil {
		return "", fmt.Errorf("%s: no upstream version matches %q: %w", tool, spec, err)
	}

	cacheRemoteVersion(m.Layout.Home, tool, spec, resolved)
	return resolved, nil
}

// download fetches the artifact into the scratch area using a temp file and
// rename so an interrupted transfer leaves no partial artifact behind.
func (m *Manager) download(ctx context.Context, tool string, rel releaseSpec) (string, error) {
	dest, err := scratchPath(m.Layout.DownloadsDir, tool, rel)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rel.URL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %v: %w", rel.URL, err, ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("download %s: unexpected status %s: %w", rel.URL, resp.Status, ErrNetwork)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(dest), "download-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("write temp file: %v: %w", err, ErrNetwork)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		return "", fmt.Errorf("finalize download: %w", err)
	}
	return dest, nil
}

func scratchPath(downloadsDir, tool string, rel releaseSpec) (string, error) {
	parsed, err := url.Parse(rel.URL)
	if err != nil {
		return "", fmt.Errorf("parse download url: %w", err)
	}
	base := path.Base(parsed.Path)
	if base == "." || base == "" || base == "/" || !hasArchiveExt(base) {
		base = fmt.Sprintf("%s-%s.%s", tool, rel.Version, rel.Archive)
	}
	return filepath.Join(downloadsDir, base), nil
}

func hasArchiveExt(name string) bool {
	return path.Ext(name) != ""
}
