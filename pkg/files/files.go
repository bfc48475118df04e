// Package files checks that a data directory holds the files a report needs.
package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ConfigError means the user pointed at a directory or file that is not there.
type ConfigError struct {
	Path   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

// Check returns the absolute path of every name inside dir, in the same order.
func Check(dir string, names ...string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", dir)
	}

	info, err := os.Stat(abs)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "stat %s", abs)
	}
	if err != nil || !info.IsDir() {
		return nil, &ConfigError{Path: dir, Reason: "Directory that you provided doesn't exist"}
	}

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(abs, name)

		info, err := os.Stat(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "stat %s", path)
		}
		if err != nil || !info.Mode().IsRegular() {
			return nil, &ConfigError{
				Path:   path,
				Reason: fmt.Sprintf("File %q doesn't exist in the provided directory", name),
			}
		}

		paths = append(paths, path)
	}

	return paths, nil
}
