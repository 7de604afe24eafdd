// metadata.go
package loadenv

import (
	"fmt"
	"os/exec"
	"strings"
)

// Keys written from version-control metadata.
const (
	KeyGitCommit = "_VERSION_GIT_COMMIT"
	KeyGitBranch = "_VERSION_GIT_BRANCH"
)

// MetadataSource supplies process metadata recorded into the environment
// after the config files are merged. Whatever entries are returned are
// recorded, even alongside an error.
type MetadataSource interface {
	Metadata(root string) (map[string]string, error)
}

// GitMetadata reads the current commit and branch with the git binary.
type GitMetadata struct {
	// Binary is the git executable. Defaults to "git" on PATH.
	Binary string
}

// Metadata returns the commit and branch of the repository at root. If
// the branch cannot be read the commit is still returned with the error.
func (g GitMetadata) Metadata(root string) (map[string]string, error) {
	commit, err := g.revParse(root, "HEAD")
	if err != nil {
		return nil, err
	}
	meta := map[string]string{KeyGitCommit: commit}

	branch, err := g.revParse(root, "--abbrev-ref", "HEAD")
	if err != nil {
		return meta, err
	}
	meta[KeyGitBranch] = branch
	return meta, nil
}

func (g GitMetadata) revParse(dir string, args ...string) (string, error) {
	bin := g.Binary
	if bin == "" {
		bin = "git"
	}
	cmd := exec.Command(bin, append([]string{"rev-parse"}, args...)...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// MetadataFunc adapts a function to MetadataSource.
type MetadataFunc func(root string) (map[string]string, error)

func (f MetadataFunc) Metadata(root string) (map[string]string, error) { return f(root) }
