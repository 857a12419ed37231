package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcrownover/cli-playground/internal/store"
	"github.com/lcrownover/cli-playground/pkg/types"
)

// newKindCmd builds the "dog" or "cat" command group for record kind R.
func newKindCmd[R types.Record](a *app) *cobra.Command {
	kind := types.KindOf[R]()

	cmd := &cobra.Command{
		Use:   kind.Singular(),
		Short: fmt.Sprintf("Create, list, and show %s", kind.Collection()),
	}

	cmd.AddCommand(newListCmd[R](a))
	cmd.AddCommand(newNewCmd[R](a))
	cmd.AddCommand(newShowCmd[R](a))

	return cmd
}

func newListCmd[R types.Record](a *app) *cobra.Command {
	kind := types.KindOf[R]()

	return &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List the names of all %s", kind.Collection()),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := store.List[R](a.store)
			if err != nil {
				return fmt.Errorf("list %s: %w", kind.Collection(), err)
			}

			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				return writeJSON(out, names)
			}
			if len(names) == 0 {
				fmt.Fprintf(out, "No %s found\n", kind.Collection())
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

func newNewCmd[R types.Record](a *app) *cobra.Command {
	kind := types.KindOf[R]()

	var opts struct {
		name  string
		owner string
		age   string
	}

	cmd := &cobra.Command{
		Use:     "new",
		Short:   fmt.Sprintf("Create a %s, replacing any %s with the same name", kind.Singular(), kind.Singular()),
		Example: fmt.Sprintf("  animals %s new --name Rex --owner Alice --age 3", kind.Singular()),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			animal, err := types.NewAnimal(opts.name, opts.owner, opts.age)
			if err != nil {
				return err
			}

			if err := store.Save(a.store, R(animal)); err != nil {
				return fmt.Errorf("save %s: %w", kind.Singular(), err)
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), animal)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", fmt.Sprintf("Name of the %s", kind.Singular()))
	cmd.Flags().StringVarP(&opts.owner, "owner", "o", "", "Name of the owner")
	cmd.Flags().StringVarP(&opts.age, "age", "a", "", fmt.Sprintf("Age of the %s (0-255)", kind.Singular()))
	for _, name := range []string{"name", "owner", "age"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newShowCmd[R types.Record](a *app) *cobra.Command {
	kind := types.KindOf[R]()

	return &cobra.Command{
		Use:   "show <name>",
		Short: fmt.Sprintf("Display a %s with all fields", kind.Singular()),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := store.Load[R](a.store, args[0])
			if err != nil {
				return err
			}

			animal := types.Animal(rec)
			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				return writeJSON(out, animal)
			}
			printAnimal(out, animal)
			return nil
		},
	}
}
