package storage

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sync"
)

// Storer is a read-only view of a set of validated assets.
// Authored content is fixed for the lifetime of the process, so there is no Save.
type Storer[T ValidatingSpec] interface {
	Get(Identifier) T
	GetAll() map[Identifier]T
}

// FileStore loads every .json asset below a directory of an fs.FS.
type FileStore[T ValidatingSpec] struct {
	fsys    fs.FS
	root    string
	records map[Identifier]T

	mu sync.RWMutex
}

// NewFileStore loads assets from a directory on disk.
func NewFileStore[T ValidatingSpec](dir string) (*FileStore[T], error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening asset directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset path %q is not a directory", dir)
	}
	return NewFSStore[T](os.DirFS(dir), ".")
}

// NewFSStore loads assets from root within fsys. It is used for content
// embedded into the binary.
func NewFSStore[T ValidatingSpec](fsys fs.FS, root string) (*FileStore[T], error) {
	s := &FileStore[T]{
		fsys:    fsys,
		root:    root,
		records: map[Identifier]T{},
	}

	err := s.load()
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore[T]) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = map[Identifier]T{}

	err := fs.WalkDir(s.fsys, s.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() || path.Ext(p) != ".json" {
			return nil
		}

		asset, err := s.loadAsset(p)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path.Base(p), err)
		}

		err = asset.Validate()
		if err != nil {
			return fmt.Errorf("validating %s: %w", path.Base(p), err)
		}

		if _, ok := s.records[asset.Id()]; ok {
			return fmt.Errorf("duplicate key detected: %s", asset.Id())
		}

		s.records[asset.Id()] = asset.Spec
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("loaded assets", "type", typeName[T](), "count", len(s.records))
	return nil
}

func (s *FileStore[T]) Get(id Identifier) T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.records[id]
}

func (s *FileStore[T]) GetAll() map[Identifier]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vals := make(map[Identifier]T, len(s.records))
	for id, v := range s.records {
		vals[id] = v
	}

	return vals
}

func (s *FileStore[T]) loadAsset(p string) (*Asset[T], error) {
	jsonData, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	asset := &Asset[T]{}
	err = json.Unmarshal(jsonData, asset)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling asset: %w", err)
	}

	return asset, nil
}

// MapStore is an in-memory Storer, used when content is assembled in code.
type MapStore[T ValidatingSpec] map[Identifier]T

func (m MapStore[T]) Get(id Identifier) T {
	return m[id]
}

func (m MapStore[T]) GetAll() map[Identifier]T {
	vals := make(map[Identifier]T, len(m))
	for id, v := range m {
		vals[id] = v
	}
	return vals
}
