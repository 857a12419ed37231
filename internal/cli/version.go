package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcrownover/cli-playground/pkg/animals"
)

const modulePath = "github.com/lcrownover/cli-playground"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the animals version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "animals v%s\nmodule: %s\n", animals.Version, modulePath)
			return nil
		},
	}
}
