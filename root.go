// root.go
package loadenv

import (
	"fmt"
	"os"
	"path/filepath"
)

// RootEnvVar overrides application root detection.
const RootEnvVar = "APP_ROOT_PATH"

// ConfigDir is the directory under the application root holding .env files.
const ConfigDir = "configs"

// resolveRoot returns an absolute application root. An explicit dir wins,
// then APP_ROOT_PATH as seen through lookup, then the closest go.mod above
// the working directory.
func resolveRoot(dir string, lookup func(string) (string, bool)) (string, error) {
	if dir == "" && lookup != nil {
		dir, _ = lookup(RootEnvVar)
	}
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("resolve root %s: %w", dir, err)
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	for cur := cwd; ; {
		if _, err := os.Stat(filepath.Join(cur, "go.mod")); err == nil {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}
	return cwd, nil
}
