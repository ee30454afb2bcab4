package store

import (
	"errors"
	"io/fs"
	"os"
)

// osFileSystem is the default [FileSystem] backed by the os package.
type osFileSystem struct{}

// NewOSFileSystem returns a [FileSystem] operating on the local disk.
func NewOSFileSystem() FileSystem {
	return osFileSystem{}
}

func (osFileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (osFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}
