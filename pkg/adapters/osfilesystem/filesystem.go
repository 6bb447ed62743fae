// Package osfilesystem provides a FileSystem implementation backed by the OS.
package osfilesystem

import (
	"os"

	"github.com/user/framegrab/pkg/ports"
)

// FileSystem implements ports.FileSystem using standard OS file operations.
type FileSystem struct{}

// New creates a new OS-backed FileSystem.
func New() *FileSystem {
	return &FileSystem{}
}

// ReadFile reads the entire file at path.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to the file at path, creating it if necessary.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// MkdirAll creates the directory at path along with any missing parents.
func (f *FileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

// Exists reports whether a file or directory exists at path.
func (f *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Remove deletes the file at path.
func (f *FileSystem) Remove(path string) error {
	return os.Remove(path)
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
