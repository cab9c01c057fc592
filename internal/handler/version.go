package handler

import (
	"net/http"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version       string `json:"version"`
	GoVersion     string `json:"go_version"`
	BuildTime     string `json:"build_time,omitempty"`
	GitCommit     string `json:"git_commit,omitempty"`
	CatalogDigest string `json:"catalog_digest,omitempty"`
	CatalogTiers  int    `json:"catalog_tiers"`
}

// Build-time variables (injected via ldflags)
var (
	BuildTime = "unknown"
	GitCommit = "unset"
)

// CatalogInfo describes the loaded mod catalog
type CatalogInfo interface {
	Digest() string
	Size() int
}

// HandleVersion returns build information plus the digest of the loaded mod
// catalog, so two deployments can be checked for identical outcome tables.
func HandleVersion(version string, catalog CatalogInfo) http.HandlerFunc {
	if version == "" {
		version = "dev"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:       version,
			GoVersion:     runtime.Version(),
			BuildTime:     BuildTime,
			GitCommit:     GitCommit,
			CatalogDigest: catalog.Digest(),
			CatalogTiers:  catalog.Size(),
		})
	}
}
