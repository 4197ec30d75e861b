package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/scaffoldview/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scaffoldview %s\n", version.GetVersion())
			fmt.Fprintf(out, "  commit: %s\n", version.GitCommit)
			fmt.Fprintf(out, "  built:  %s\n", version.BuildDate)
			return nil
		},
	}
}
