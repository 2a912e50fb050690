package dsn

import (
	"strings"
)

const envKey = "DATABASE_URL"

// ReadFileFunc reads a file by path. Injected so env-file scanning stays a
// pure function testable without real files.
type ReadFileFunc func(name string) ([]byte, error)

// ScanEnvFiles searches the given files, in priority order, for a network
// database URL assigned to DATABASE_URL. Within a file the LAST matching
// definition wins, mirroring shell-style env-file semantics where later
// lines override earlier ones. Returns "" when no network URL is found.
func ScanEnvFiles(files []string, read ReadFileFunc) string {
	for _, f := range files {
		data, err := read(f)
		if err != nil {
			continue // missing files are not an error
		}

		if u := lastNetworkURL(string(data)); u != "" {
			return u
		}
	}

	return ""
}

// lastNetworkURL returns the last DATABASE_URL assignment in content that
// holds a network URL, or "".
func lastNetworkURL(content string) string {
	var found string

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(key) != envKey {
			continue
		}

		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)

		if IsNetworkURL(value) {
			found = value
		}
	}

	return found
}
