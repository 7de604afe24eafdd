// dotenv.go
package loadenv

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// errNotLoadable marks a candidate file that could not be stat'ed or read.
// Load skips such files.
var errNotLoadable = errors.New("not loadable")

// loadDotenv parses the file at path and copies every key that env does
// not already hold. It returns the keys it wrote.
//
// Returns an error wrapping errNotLoadable if the file is missing, is a
// directory, or cannot be stat'ed or read, and one wrapping ErrParse if
// godotenv rejects its contents.
func loadDotenv(env Environ, path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errNotLoadable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", errNotLoadable, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errNotLoadable, err)
	}

	values, err := godotenv.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	var written []string
	for key, val := range values {
		if _, exists := env.LookupEnv(key); exists {
			continue
		}
		if err := env.Setenv(key, val); err != nil {
			return written, fmt.Errorf("set %s from %s: %w", key, path, err)
		}
		written = append(written, key)
	}
	return written, nil
}
