package store

import "github.com/lcrownover/cli-playground/pkg/types"

// Save writes rec to its kind's collection, creating or replacing the file
// named after rec.Name.
func Save[R types.Record](s *Store, rec R) error {
	return s.put(types.KindOf[R](), types.Animal(rec))
}

// Load reads the record called name from R's collection. It returns an
// error wrapping types.ErrNotFound when no such file exists.
func Load[R types.Record](s *Store, name string) (R, error) {
	animal, err := s.get(types.KindOf[R](), name)
	if err != nil {
		var zero R
		return zero, err
	}
	return R(animal), nil
}

// List returns the names stored in R's collection.
func List[R types.Record](s *Store) ([]string, error) {
	return s.List(types.KindOf[R]())
}
