package types

import (
	"fmt"
	"strconv"
)

// DefaultExtension is the file extension of every persisted record.
const DefaultExtension = "json"

// Kind describes where the records of one type live on disk.
type Kind interface {
	// Singular is the command and display name, e.g. "dog".
	Singular() string

	// Collection is the directory name under the collection root, e.g. "dogs".
	Collection() string

	// Extension is the file extension without the leading dot.
	Extension() string
}

// Animal is the field set shared by every record kind. Field order is the
// serialization order.
type Animal struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
	Age   uint8  `json:"age"`
}

// NewAnimal builds an Animal from raw command-line values. Age must be a
// decimal integer between 0 and 255; name and owner must not be empty.
func NewAnimal(name, owner, age string) (Animal, error) {
	a, err := ParseAge(age)
	if err != nil {
		return Animal{}, err
	}
	animal := Animal{Name: name, Owner: owner, Age: a}
	if err := animal.Validate(); err != nil {
		return Animal{}, err
	}
	return animal, nil
}

// Validate reports ErrInvalidArgument when a required field is empty.
func (a Animal) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidArgument)
	}
	if a.Owner == "" {
		return fmt.Errorf("%w: owner must not be empty", ErrInvalidArgument)
	}
	return nil
}

// ParseAge parses an age value in the range 0-255.
func ParseAge(s string) (uint8, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: age %q must be an integer between 0 and 255", ErrInvalidArgument, s)
	}
	return uint8(n), nil
}

// Dog is a record in the dogs collection.
type Dog Animal

func (Dog) Singular() string   { return "dog" }
func (Dog) Collection() string { return "dogs" }
func (Dog) Extension() string  { return DefaultExtension }

// Cat is a record in the cats collection.
type Cat Animal

func (Cat) Singular() string   { return "cat" }
func (Cat) Collection() string { return "cats" }
func (Cat) Extension() string  { return DefaultExtension }

// Record is satisfied by every concrete record kind. Generic store
// functions are parameterized over it so that save, load and list are
// written once for all kinds.
type Record interface {
	Dog | Cat
	Kind
}

// Kinds returns every known record kind in display order.
func Kinds() []Kind {
	return []Kind{Dog{}, Cat{}}
}

// KindOf returns the Kind of a record type parameter.
func KindOf[R Record]() Kind {
	var zero R
	return zero
}
