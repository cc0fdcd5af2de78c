package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Report dimensions, entry, exit and passable regions of a grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			regions := g.Regions()
			fmt.Fprintf(out, "size: %d×%d\n", g.Rows(), g.Cols())
			fmt.Fprintf(out, "entry: %v\n", g.Entry())
			fmt.Fprintf(out, "exit: %v\n", g.Exit())
			fmt.Fprintf(out, "regions: %d\n", len(regions))
			fmt.Fprintf(out, "connected: %t\n", g.Connected())
			return nil
		},
	}
}
