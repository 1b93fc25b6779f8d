package toolchain

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const (
	releaseCacheFile = "release_cache.json"
	releaseCacheTTL  = 1 * time.Hour
)

type releaseCacheEntry struct {
	Tool      string    `json:"tool"`
	Spec      string    `json:"spec"`
	Version   string    `json:"version"`
	FetchedAt time.Time `json:"fetched_at"`
}

type releaseCache struct {
	Entries map[string]releaseCacheEntry `json:"entries"`
}

func loadReleaseCache(home string) releaseCache {
	data, err := os.ReadFile(filepath.Join(home, releaseCacheFile))
	if err != nil {
		return releaseCache{Entries: map[string]releaseCacheEntry{}}
	}
	var rc releaseCache
	if err := json.Unmarshal(data, &rc); err != nil {
		return releaseCache{Entries: map[string]releaseCacheEntry{}}
	}
	if rc.Entries == nil {
		rc.Entries = map[string]releaseCacheEntry{}
	}
	return rc
}

func saveReleaseCache(home string, rc releaseCache) {
	path := filepath.Join(home, releaseCacheFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	data, err := json.MarshalIndent(rc, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0o644)
}

// cachedRemoteVersion returns a previously resolved remote version for the
// tool and specifier if the entry has not expired. Only successful lookups
// populate the cache; expired entries never substitute for a failed query.
func cachedRemoteVersion(home, tool, spec string) (string, bool) {
	rc := loadReleaseCache(home)
	entry, ok := rc.Entries[tool+"@"+spec]
	if !ok {
		return "", false
	}
	if time.Since(entry.FetchedAt) > releaseCacheTTL {
		return "", false
	}
	return entry.Version, true
}

func cacheRemoteVersion(home, tool, spec, resolved string) {
	rc := loadReleaseCache(home)
	rc.Entries[tool+"@"+spec] = releaseCacheEntry{
		Tool:      tool,
		Spec:      spec,
		Version:   resolved,
		FetchedAt: time.Now(),
	}
	saveReleaseCache(home, rc)
}
