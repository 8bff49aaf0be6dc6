package config

import (
	"os"
	"path/filepath"

	"github.com/mrz1836/prpflow/internal/errors"
)

// FindProjectRoot walks upward from startDir looking for a directory that
// contains a .git entry and returns its absolute path. The result is passed
// into Load as the explicit project root.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve start directory")
	}

	for {
		if _, statErr := os.Stat(filepath.Join(dir, ".git")); statErr == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Wrapf(errors.ErrNotInProjectDir, "no .git found above %s", startDir)
		}
		dir = parent
	}
}
