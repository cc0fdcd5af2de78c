package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRenderCommand(a *app) *cobra.Command {
	var flat bool

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Parse a grid file and write it back in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !flat {
				_, err = g.Encode(out)
				return err
			}
			n, err := g.Render(out)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "%d cells\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&flat, "flat", false, "write terrain row-major on one line and report the count")
	return cmd
}
