package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlmaze/pathfinder"
)

func newSolveCommand(a *app) *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Search from the entry to the exit and print the visit trace and path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			var sink io.Writer
			if trace {
				sink = out
			}

			opts := append(a.cfg.SearchOptions(),
				pathfinder.WithContext(cmd.Context()),
				pathfinder.WithLogger(a.log),
			)
			res, err := pathfinder.Find(g, sink, opts...)
			if err != nil {
				if res != nil {
					a.log.Warn("search failed",
						zap.String("file", args[0]),
						zap.Int("visited", len(res.Order)),
						zap.Bool("unreachable", errors.Is(err, pathfinder.ErrUnreachable)),
						zap.Error(err),
					)
				}
				return err
			}

			path, err := res.Path()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "exit: %v\n", res.Exit)
			fmt.Fprintf(out, "visited: %d\n", len(res.Order))
			fmt.Fprintf(out, "path (%d moves): %v\n", len(path)-1, path)
			a.log.Info("exit found",
				zap.String("file", args[0]),
				zap.Int("visited", len(res.Order)),
				zap.Int("moves", len(path)-1),
			)
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&trace, "trace", true, "print each visited cell")
	f.Int("max-steps", 0, "abort after this many dequeues (0: unlimited)")
	f.Bool("lenient", false, "skip directions leading off the grid instead of failing")
	bindFlag(a.v, "search.max_steps", f, "max-steps")
	bindFlag(a.v, "search.lenient", f, "lenient")
	return cmd
}
