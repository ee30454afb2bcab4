package store

import "os"

//go:generate mockgen -source=interfaces.go -destination=../mock/file_system_mock.go -package=mock

// FileSystem is the file capability a [ConfigStore] reads and writes its
// backing file through. Errors are passed to the caller untouched.
type FileSystem interface {
	// Exists reports whether a file is present at path. A missing file is
	// (false, nil); any other stat failure is returned as an error.
	Exists(path string) (bool, error)

	// ReadFile returns the full content of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the content of the file at path, creating it with
	// perm when it does not exist.
	WriteFile(path string, data []byte, perm os.FileMode) error
}
