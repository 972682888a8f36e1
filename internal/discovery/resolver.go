// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Resolver locates the nearest-ancestor jazzy configuration for files in a project.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	root  string
	names []string
}

// DefaultConfigNames are the recognized jazzy configuration spellings, primary first.
var DefaultConfigNames = []string{".jazzy.yaml", ".jazzy.yml"}

// NewResolver creates a Resolver rooted at projectRoot. Names are tested in
// order at each directory level; when empty, DefaultConfigNames is used.
func NewResolver(projectRoot string, names ...string) (*Resolver, error) {
	if projectRoot == "" {
		return nil, errors.New("project root is required")
	}
	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}
	if len(names) == 0 {
		names = DefaultConfigNames
	}
	return &Resolver{root: absRoot, names: slices.Clone(names)}, nil
}

// Root returns the absolute project root.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve returns the absolute path of the configuration file closest to
// filePath. Relative paths are interpreted against the project root. The walk
// starts at the directory containing filePath and stops once the project root
// has been checked (or at the filesystem root for files outside the project).
//
// found is false when no configuration applies; that is not an error. err is
// only set when a candidate could not be checked.
func (r *Resolver) Resolve(filePath string) (configPath string, found bool, err error) {
	abs := filePath
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(r.root, abs)
	}
	dir := filepath.Dir(filepath.Clean(abs))

	for {
		for _, name := range r.names {
			candidate := filepath.Join(dir, name)
			info, statErr := os.Stat(candidate)
			if statErr == nil {
				if !info.IsDir() {
					return candidate, true, nil
				}
				continue
			}
			if !errors.Is(statErr, os.ErrNotExist) && !errors.Is(statErr, os.ErrPermission) {
				return "", false, fmt.Errorf("stat %s: %w", candidate, statErr)
			}
		}

		if dir == r.root {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false, nil
}
