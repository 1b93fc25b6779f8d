package toolchain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/HeshanSudarshana/devtool-manager/internal/config"
)

const userAgent = "devman/1.0"

// Index queries the upstream version indexes for the non-delegated tools.
// Mirror overrides from the config file replace the default endpoints.
type Index struct {
	client  *http.Client
	mirrors config.MirrorsConfig
}

// NewIndex creates an index client honouring mirror overrides.
func NewIndex(mirrors config.MirrorsConfig) *Index {
	return &Index{
		client:  &http.Client{Timeout: 30 * time.Second},
		mirrors: mirrors,
	}
}

// Versions returns the upstream version list for a tool, newest ordering
// unspecified; callers sort with the dotted-numeric comparator.
func (ix *Index) Versions(ctx context.Context, tool string) ([]string, error) {
	switch tool {
	case "go":
		return ix.goVersions(ctx)
	case "java":
		return ix.javaVersions(ctx)
	case "maven":
		return ix.mavenVersions(ctx)
	case "gradle":
		return ix.gradleVersions(ctx)
	default:
		return nil, fmt.Errorf("%s: %w", tool, ErrUnknownTool)
	}
}

func (ix *Index) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := ix.client.Do(req)
	if err != nil {
		return fmt.Errorf("query %s: %v: %w", url, err, ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("query %s: unexpected status %s: %w", url, resp.Status, ErrNetwork)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

func (ix *Index) goBase() string {
	if ix.mirrors.Go != "" {
		return strings.TrimSuffix(ix.mirrors.Go, "/")
	}
	return "https://go.dev/dl"
}

func (ix *Index) goVersions(ctx context.Context) ([]string, error) {
	var releases []struct {
		Version string `json:"version"`
		Stable  bool   `json:"stable"`
	}
	url := ix.goBase() + "/?mode=json&include=all"
	if err := ix.getJSON(ctx, url, &releases); err != nil {
		return nil, err
	}

	var versions []string
	for _, rel := range releases {
		if !rel.Stable {
			continue
		}
		versions = append(versions, strings.TrimPrefix(rel.Version, "go"))
	}
	return versions, nil
}

func (ix *Index) javaBase() string {
	if ix.mirrors.Java != "" {
		return strings.TrimSuffix(ix.mirrors.Java, "/")
	}
	return "https://api.adoptium.net"
}

// javaVersions pages through the Adoptium GA release listing. The endpoint
// serves at most 50 names per page and answers 404 past the last page, so
// errors after the first page end the walk instead of failing it.
func (ix *Index) javaVersions(ctx context.Context) ([]string, error) {
	const (
		pageSize = 50
		maxPages = 8
	)

	var versions []string
	for page := 0; page < maxPages; page++ {
		var payload struct {
			Releases []string `json:"releases"`
		}
		url := fmt.Sprintf("%s/v3/info/release_names?release_type=ga&page_size=%d&page=%d&sort_order=DESC",
			ix.javaBase(), pageSize, page)
		if err := ix.getJSON(ctx, url, &payload); err != nil {
			if page > 0 {
				break
			}
			return nil, err
		}
		for _, name := range payload.Releases {
			if v := parseAdoptiumRelease(name); v != "" {
				versions = append(versions, v)
			}
		}
		if len(payload.Releases) < pageSize {
			break
		}
	}
	return versions, nil
}

// parseAdoptiumRelease maps release names like jdk-11.0.21+9 or jdk8u392-b08
// to plain dotted versions; names it cannot map are skipped.
func parseAdoptiumRelease(name string) string {
	name = strings.TrimPrefix(name, "jdk-")
	name = strings.TrimPrefix(name, "jdk")
	if idx := strings.IndexAny(name, "+_u-"); idx > 0 {
		name = name[:idx]
	}
	if name == "" || !strings.ContainsAny(name, "0123456789") {
		return ""
	}
	return name
}

func (ix *Index) mavenBase() string {
	if ix.mirrors.Maven != "" {
		return strings.TrimSuffix(ix.mirrors.Maven, "/")
	}
	return "https://api.github.com"
}

func (ix *Index) mavenVersions(ctx context.Context) ([]string, error) {
	var releases []struct {
		TagName    string `json:"tag_name"`
		Prerelease bool   `json:"prerelease"`
	}
	url := ix.mavenBase() + "/repos/apache/maven/releases?per_page=100"
	if err := ix.getJSON(ctx, url, &releases); err != nil {
		return nil, err
	}

	var versions []string
	for _, rel := range releases {
		if rel.Prerelease {
			continue
		}
		tag := strings.TrimPrefix(rel.TagName, "maven-")
		if strings.ContainsAny(tag, "abcdefghijklmnopqrstuvwxyz") {
			continue
		}
		versions = append(versions, tag)
	}
	return versions, nil
}

func (ix *Index) gradleBase() string {
	if ix.mirrors.Gradle != "" {
		return strings.TrimSuffix(ix.mirrors.Gradle, "/")
	}
	return "https://services.gradle.org"
}

func (ix *Index) gradleVersions(ctx context.Context) ([]string, error) {
	var releases []struct {
		Version  string `json:"version"`
		Snapshot bool   `json:"snapshot"`
		RCFor    string `json:"rcFor"`
	}
	url := ix.gradleBase() + "/versions/all"
	if err := ix.getJSON(ctx, url, &releases); err != nil {
		return nil, err
	}

	var versions []string
	for _, rel := range releases {
		if rel.Snapshot || rel.RCFor != "" {
			continue
		}
		if strings.Contains(rel.Version, "-") {
			continue
		}
		versions = append(versions, rel.Version)
	}
	return versions, nil
}
