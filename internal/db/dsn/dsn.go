// Package dsn resolves the effective database connection string for the process.
//
// Resolution prefers a network (Postgres) URL over an embedded sqlite file.
// When only a file URL is available and the deployment filesystem is
// read-only, the database file is relocated to a writable scratch directory.
// Resolve never fails: worst case it returns the configured value unchanged
// and the connection attempt downstream surfaces its own error.
package dsn

import (
	"os"
	"strings"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/config"
)

// readOnlyDeployMarkers are environment variables set by deployment targets
// known to mount the application directory read-only.
var readOnlyDeployMarkers = []string{
	"VERCEL",
	"NETLIFY",
	"AWS_LAMBDA_FUNCTION_NAME",
	"LAMBDA_TASK_ROOT",
}

// Resolve determines the single effective connection string for the process.
// It is called once at startup; the result is process-wide immutable state.
func Resolve(cfg *config.DB) string {
	u := cfg.URL

	// prefer a network URL from the env files when the configured value
	// is not already one
	if !IsNetworkURL(u) {
		if n := ScanEnvFiles(cfg.EnvFiles, os.ReadFile); n != "" {
			u = n
		}
	}

	if IsFileURL(u) && (cfg.ForceRelocate || onReadOnlyFilesystem()) {
		u = Relocate(u, scratchDir(cfg))
	}

	return u
}

// IsNetworkURL reports whether s is a Postgres network connection string.
func IsNetworkURL(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// IsFileURL reports whether s points at an embedded database file.
func IsFileURL(s string) bool {
	return strings.HasPrefix(s, "file:")
}

func onReadOnlyFilesystem() bool {
	for _, marker := range readOnlyDeployMarkers {
		if os.Getenv(marker) != "" {
			return true
		}
	}

	return false
}

func scratchDir(cfg *config.DB) string {
	if cfg.ScratchDir != "" {
		return cfg.ScratchDir
	}

	return os.TempDir()
}
