// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// FindFileByName recursively searches the given root path for the first
// file with the specified base name and returns its full path. Directories
// are walked in lexical order, so the result is deterministic.
func FindFileByName(rootPath string, name string) (string, error) {
	if name == "" {
		panic("name must not be empty")
	}

	var found string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == name {
			found = path
			return fs.SkipAll
		}
		return nil
	})

	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("no file named %q found under %s", name, rootPath)
	}

	return found, nil
}
