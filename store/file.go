package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps each collection in <dir>/<collection>.json as a
// pretty-printed JSON array. A per-collection RWMutex keeps single
// reads and writes from interleaving mid-file; serializing a full
// read-modify-write cycle is the caller's job.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[Collection]*sync.RWMutex
}

// NewFileStore creates a file store rooted at dir, creating dir and
// an empty document for every missing collection.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	fs := &FileStore{
		dir:   dir,
		locks: make(map[Collection]*sync.RWMutex),
	}
	for _, c := range Collections() {
		if err := fs.ensure(c); err != nil {
			return nil, err
		}
	}
	return fs, nil
}

func (fs *FileStore) path(c Collection) string {
	return filepath.Join(fs.dir, string(c)+".json")
}

func (fs *FileStore) lock(c Collection) *sync.RWMutex {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	l, ok := fs.locks[c]
	if !ok {
		l = &sync.RWMutex{}
		fs.locks[c] = l
	}
	return l
}

// ensure creates the collection file holding an empty array if it
// does not exist yet.
func (fs *FileStore) ensure(c Collection) error {
	path := fs.path(c)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		return fmt.Errorf("initialize %s: %w", path, err)
	}
	return nil
}

// Load reads the whole collection into out.
func (fs *FileStore) Load(c Collection, out interface{}) error {
	l := fs.lock(c)
	l.RLock()
	defer l.RUnlock()

	if err := fs.ensure(c); err != nil {
		return err
	}
	data, err := os.ReadFile(fs.path(c))
	if err != nil {
		return fmt.Errorf("read %s: %w", fs.path(c), err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupted, fs.path(c), err)
	}
	return nil
}

// Save overwrites the whole collection with records.
func (fs *FileStore) Save(c Collection, records interface{}) error {
	l := fs.lock(c)
	l.Lock()
	defer l.Unlock()

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}
	if err := os.WriteFile(fs.path(c), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fs.path(c), err)
	}
	return nil
}
