package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/emptrack/pkg/emptrack"
)

const modulePath = "github.com/mesh-intelligence/emptrack"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the emptrack version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "emptrack v%s\nmodule: %s\n", emptrack.Version, modulePath)
			return nil
		},
	}
}
