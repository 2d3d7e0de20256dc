// Package localstore provides a file-based implementation of the durable
// key/value store. Each key is one JSON file under the state directory;
// writes go through a temp file and rename so a crash never leaves a
// half-written value.
package localstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"taskman/internal/domain"
)

// Store implements domain.KeyValueStore using files under a state directory.
type Store struct {
	dir      string
	lockPath string
}

// New creates a new Store rooted at dir. The directory does not need to
// exist; it is created on first write.
func New(dir string) *Store {
	return &Store{
		dir:      dir,
		lockPath: filepath.Join(dir, ".lock"),
	}
}

// Get retrieves the value for a key.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value []byte
	found := false
	err := s.withLock(syscall.LOCK_SH, func() error {
		content, err := os.ReadFile(s.keyPath(key))
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return fmt.Errorf("read %s: %w", key, err)
		}
		value = content
		found = true
		return nil
	})
	return value, found, err
}

// Set writes the value for a key.
func (s *Store) Set(key string, value []byte) error {
	return s.withLock(syscall.LOCK_EX, func() error {
		return writeAtomic(s.keyPath(key), value, 0o600)
	})
}

// Remove deletes a key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) error {
	return s.withLock(syscall.LOCK_EX, func() error {
		if err := os.Remove(s.keyPath(key)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", key, err)
		}
		return nil
	})
}

// Ensure Store implements the port.
var _ domain.KeyValueStore = (*Store)(nil)

func (s *Store) keyPath(key string) string {
	// Keys are short identifiers chosen by this program; replace separators
	// defensively so a key can never escape the state directory.
	name := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) withLock(lockType int, fn func() error) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer func() {
		_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
		_ = lock.Close()
	}()

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}

	return fn()
}

func writeAtomic(path string, content []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
