// Package cli defines the lvlmaze command tree: solve, render and inspect
// over grid files in the text format read by grid.Deserialize.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/internal/config"
	"github.com/katalvlaran/lvlmaze/internal/logs"
)

const appName = "lvlmaze"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	log    *zap.Logger
	stderr io.Writer
}

// NewRootCommand builds the command tree. stderr receives log output.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop(), stderr: stderr}
	var cfgPath string

	root := &cobra.Command{
		Use:           appName,
		Short:         "Breadth-first maze solver for text grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, cfgPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logs.New(appName, cfg.Log, a.stderr)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to a YAML config file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-file", "", "also write JSON logs to this file, rotated")
	pf.Int("max-dimension", grid.DefaultMaxDimension, "largest accepted row or column count")
	bindFlag(a.v, "log.level", pf, "log-level")
	bindFlag(a.v, "log.file", pf, "log-file")
	bindFlag(a.v, "grid.max_dimension", pf, "max-dimension")

	root.AddCommand(
		newSolveCommand(a),
		newRenderCommand(a),
		newInspectCommand(a),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute(ctx context.Context) error {
	root := NewRootCommand(os.Stderr)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
	}
	return err
}

// loadGrid opens path and deserializes it with the configured limits.
func (a *app) loadGrid(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := grid.Deserialize(f, a.cfg.GridOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("grid loaded",
		zap.String("file", path),
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()),
	)
	return g, nil
}

// bindFlag makes flag name override config key when it is set.
func bindFlag(v *viper.Viper, key string, fs *pflag.FlagSet, name string) {
	if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %q to %q: %v", name, key, err))
	}
}
