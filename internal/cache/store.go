package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// Store is the durable key -> value layer underneath Cache. Implementations
// must persist values across process runs.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, val []byte) error
}

// DiskStore keeps one file per key inside a billy filesystem. File names are
// the hex sha256 of the storage key, so keys may contain arbitrary characters
// (URLs included) without escaping concerns.
type DiskStore struct {
	fs billy.Filesystem
}

// NewDiskStore wraps an existing filesystem, typically memfs in tests.
func NewDiskStore(fsys billy.Filesystem) *DiskStore {
	return &DiskStore{fs: fsys}
}

// OpenDiskStore creates the directory if needed and returns a store rooted at it.
func OpenDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache dir %q: %w", dir, err)
	}
	return &DiskStore{fs: osfs.New(dir)}, nil
}

func fileName(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func (s *DiskStore) Get(key string) ([]byte, bool, error) {
	data, err := util.ReadFile(s.fs, fileName(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache read %q: %w", key, err)
	}
	return data, true, nil
}

func (s *DiskStore) Set(key string, val []byte) error {
	if err := util.WriteFile(s.fs, fileName(key), val, 0o644); err != nil {
		return fmt.Errorf("cache write %q: %w", key, err)
	}
	return nil
}
