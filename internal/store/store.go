// Package store persists animal records as one JSON file per record,
// grouped into one directory per kind under a collection root.
//
// The layout is <root>/<collection>/<name>.<ext>, for example
// animals/dogs/Rex.json. Names are used verbatim: a name containing path
// separators resolves outside its collection directory.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/lcrownover/cli-playground/pkg/types"
)

// Store maps records to files under a collection root. It keeps no state
// beyond its configuration; every call reads the filesystem fresh.
type Store struct {
	fs     afero.Fs
	root   string
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for debug events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Store rooted at root on the given filesystem. An empty
// root selects types.DefaultRoot.
func New(fsys afero.Fs, root string, opts ...Option) *Store {
	if root == "" {
		root = types.DefaultRoot
	}
	s := &Store{
		fs:     fsys,
		root:   root,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the collection root.
func (s *Store) Root() string {
	return s.root
}

// DerivePath returns the file path of the record called name of the given
// kind under root. It performs no sanitization of name.
func DerivePath(root string, kind types.Kind, name string) string {
	return filepath.Join(root, kind.Collection(), name+"."+kind.Extension())
}

// Path returns the file path of the record called name of the given kind.
func (s *Store) Path(kind types.Kind, name string) string {
	return DerivePath(s.root, kind, name)
}

// CollectionDir returns the directory holding every record of kind.
func (s *Store) CollectionDir(kind types.Kind) string {
	return filepath.Join(s.root, kind.Collection())
}

// EnsureCollections creates the collection directory of each kind if it
// does not exist. It is safe to call on every start-up.
func (s *Store) EnsureCollections(kinds ...types.Kind) error {
	for _, kind := range kinds {
		dir := s.CollectionDir(kind)
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create %s: %w", types.ErrIO, dir, err)
		}
	}
	return nil
}

// List returns the names of all records of kind, sorted lexicographically.
// Entries that are directories or lack the kind's extension are skipped.
// An empty collection yields an empty slice.
func (s *Store) List(kind types.Kind) ([]string, error) {
	dir := s.CollectionDir(kind)
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", types.ErrIO, dir, err)
	}

	ext := "." + kind.Extension()
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := strings.CutSuffix(entry.Name(), ext)
		if !ok {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	s.logger.Debug("collection listed", "kind", kind.Singular(), "dir", dir, "count", len(names))
	return names, nil
}

// put validates and writes one record, replacing any existing file.
func (s *Store) put(kind types.Kind, animal types.Animal) error {
	if err := animal.Validate(); err != nil {
		return err
	}

	data, err := encode(animal)
	if err != nil {
		return err
	}

	if err := s.requireCollection(kind); err != nil {
		return err
	}

	path := s.Path(kind, animal.Name)
	if err := writeFileAtomic(s.fs, path, data); err != nil {
		return fmt.Errorf("%w: write %s: %w", types.ErrIO, path, err)
	}

	s.logger.Debug("record saved", "kind", kind.Singular(), "path", path)
	return nil
}

// get reads and decodes one record.
func (s *Store) get(kind types.Kind, name string) (types.Animal, error) {
	path := s.Path(kind, name)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return types.Animal{}, fmt.Errorf("%s %q %w", kind.Singular(), name, types.ErrNotFound)
		}
		return types.Animal{}, fmt.Errorf("%w: read %s: %w", types.ErrIO, path, err)
	}

	animal, err := decode(data)
	if err != nil {
		return types.Animal{}, fmt.Errorf("%s: %w", path, err)
	}

	s.logger.Debug("record loaded", "kind", kind.Singular(), "path", path)
	return animal, nil
}

// requireCollection fails with ErrIO unless the collection directory of
// kind exists.
func (s *Store) requireCollection(kind types.Kind) error {
	dir := s.CollectionDir(kind)
	info, err := s.fs.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: collection %s: %w", types.ErrIO, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: collection %s is not a directory", types.ErrIO, dir)
	}
	return nil
}
