package store

import (
	"encoding/json"
	"fmt"

	"github.com/lcrownover/cli-playground/pkg/types"
)

// wireAnimal mirrors types.Animal with pointer fields so that absent keys
// can be told apart from zero values.
type wireAnimal struct {
	Name  *string `json:"name"`
	Owner *string `json:"owner"`
	Age   *uint8  `json:"age"`
}

// encode serializes an animal as a single-line JSON object with the keys
// name, owner and age in that order.
func encode(animal types.Animal) ([]byte, error) {
	data, err := json.Marshal(animal)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrSerialization, err)
	}
	return data, nil
}

// decode parses a stored record. Every field is required; an age outside
// 0-255 fails as a type error. Unknown keys are ignored.
func decode(data []byte) (types.Animal, error) {
	var w wireAnimal
	if err := json.Unmarshal(data, &w); err != nil {
		return types.Animal{}, fmt.Errorf("%w: %w", types.ErrDeserialization, err)
	}

	switch {
	case w.Name == nil:
		return types.Animal{}, fmt.Errorf("%w: missing field %q", types.ErrDeserialization, "name")
	case w.Owner == nil:
		return types.Animal{}, fmt.Errorf("%w: missing field %q", types.ErrDeserialization, "owner")
	case w.Age == nil:
		return types.Animal{}, fmt.Errorf("%w: missing field %q", types.ErrDeserialization, "age")
	}

	return types.Animal{Name: *w.Name, Owner: *w.Owner, Age: *w.Age}, nil
}
