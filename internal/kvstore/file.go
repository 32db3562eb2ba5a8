package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gofrs/flock"
)

const lockFileName = ".kvstore.lock"

// FileStore keeps each key in its own JSON file under a directory. Writes go
// to a temp file and are renamed into place while holding an exclusive
// advisory lock on the directory's lock file; reads take the shared lock.
type FileStore struct {
	dir    string
	lock   *flock.Flock
	closed atomic.Bool
}

// NewFileStore creates dir when missing and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("kvstore: file store directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &FileStore{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, lockFileName)),
	}, nil
}

// Dir returns the directory holding the key files.
func (f *FileStore) Dir() string {
	return f.dir
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	if f.closed.Load() {
		return nil, false, ErrClosed
	}
	if err := f.lock.RLock(); err != nil {
		return nil, false, fmt.Errorf("acquire read lock: %w", err)
	}
	defer func() { _ = f.lock.Unlock() }()
	if err := ensureContext(ctx).Err(); err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read key %q: %w", key, err)
	}
	return data, true, nil
}

func (f *FileStore) Set(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if f.closed.Load() {
		return ErrClosed
	}
	if err := f.lock.Lock(); err != nil {
		return fmt.Errorf("acquire write lock: %w", err)
	}
	defer func() { _ = f.lock.Unlock() }()
	if err := ensureContext(ctx).Err(); err != nil {
		return err
	}

	target := f.path(key)
	tmpPath := target + ".tmp"
	if err := os.WriteFile(tmpPath, value, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Close releases the lock file handle.
func (f *FileStore) Close() error {
	if f.closed.Swap(true) {
		return nil
	}
	return f.lock.Close()
}
