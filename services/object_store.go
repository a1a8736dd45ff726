package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrObjectNotFound is returned when a stored object does not exist
var ErrObjectNotFound = errors.New("file not found")

// ObjectStore is the durable byte storage the photo store sits on top of.
// Names are flat within a single namespace.
type ObjectStore interface {
	// Put writes bytes under name, overwriting an existing object
	Put(name string, data []byte, contentType string) error

	// Get returns the bytes stored under name, or ErrObjectNotFound
	Get(name string) ([]byte, error)

	// List returns all object names in the namespace
	List() ([]string, error)
}

// LocalStore keeps objects as files in a single directory
type LocalStore struct {
	dir string
}

// NewLocalStore creates the storage directory if needed
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Put writes the bytes to a file under the storage directory
func (s *LocalStore) Put(name string, data []byte, contentType string) error {
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}
	return nil
}

// Get reads a stored file
func (s *LocalStore) Get(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}
	return data, nil
}

// List returns the names of all regular files in the storage directory
func (s *LocalStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list upload directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
