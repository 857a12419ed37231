package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lcrownover/cli-playground/pkg/types"
)

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrSerialization, err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// printAnimal prints the human-readable form: name, owner, age.
func printAnimal(w io.Writer, a types.Animal) {
	fmt.Fprintf(w, "Name:  %s\n", a.Name)
	fmt.Fprintf(w, "Owner: %s\n", a.Owner)
	fmt.Fprintf(w, "Age:   %d\n", a.Age)
}
