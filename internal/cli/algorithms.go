package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/generate"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the maze generation algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, alg := range generate.Algorithms() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), alg); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
