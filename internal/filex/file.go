// Package filex holds filesystem helpers for the client's local data.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDataDir makes sure dir exists and returns its absolute path.
// Relative paths are resolved against the current working directory.
func EnsureDataDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// DataFile creates the data directory if needed and returns the path of
// name inside it.
func DataFile(dir, name string) (string, error) {
	abs, err := EnsureDataDir(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(abs, name), nil
}
