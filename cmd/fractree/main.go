// Command fractree draws fractal trees: "render" writes a fully grown
// tree to a PNG file headlessly, "play" opens a window and animates the
// growth.
//
// Tree parameters come from flags, with defaults overridable through
// FRACTREE_* environment variables (for example FRACTREE_BRANCH_RATIO).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	fractree "github.com/yamamotok/fractal-tree"
)

// params holds the tree parameters shared by all subcommands.
type params struct {
	TrunkHeight float64 `envconfig:"TRUNK_HEIGHT" default:"150"`
	BranchRatio float64 `envconfig:"BRANCH_RATIO" default:"0.7"`
	BranchAngle float64 `envconfig:"BRANCH_ANGLE" default:"30"`
	Width       int     `envconfig:"WIDTH" default:"800"`
	Height      int     `envconfig:"HEIGHT" default:"600"`
}

func (p params) config() fractree.Config {
	return fractree.Config{
		TrunkHeight: p.TrunkHeight,
		BranchRatio: p.BranchRatio,
		BranchAngle: p.BranchAngle,
		Width:       float64(p.Width),
		Height:      float64(p.Height),
	}
}

func mainCmd() (*cobra.Command, error) {
	var p params
	if err := envconfig.Process("fractree", &p); err != nil {
		return nil, fmt.Errorf("read environment defaults: %w", err)
	}

	var verbose bool
	cmd := &cobra.Command{
		Use:   "fractree",
		Short: "Draw recursive fractal trees",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				fractree.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.Float64Var(&p.TrunkHeight, "trunk-height", p.TrunkHeight, "root trunk length in pixels")
	pf.Float64Var(&p.BranchRatio, "ratio", p.BranchRatio, "per-generation shrink factor, in (0, 1)")
	pf.Float64Var(&p.BranchAngle, "angle", p.BranchAngle, "branch spread in degrees")
	pf.IntVar(&p.Width, "width", p.Width, "surface width in pixels")
	pf.IntVar(&p.Height, "height", p.Height, "surface height in pixels")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log scheduler activity to stderr")

	cmd.AddCommand(renderCmd(&p))
	cmd.AddCommand(playCmd(&p))
	return cmd, nil
}

// renderCmd grows the whole tree synchronously, stepping the scheduler
// by hand instead of a timer, and writes the result to a PNG file.
func renderCmd(p *params) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a fully grown tree to a PNG file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			canvas := fractree.NewImageCanvas(p.Width, p.Height)
			grower, err := fractree.NewGrower(p.config(), canvas)
			if err != nil {
				return err
			}
			for grower.Pending() > 0 {
				grower.Step()
			}
			if err := canvas.SavePNG(out); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "tree.png", "output PNG path")
	return cmd
}

// playCmd opens a window and animates the growth. The space bar stops
// and restarts it.
func playCmd(p *params) *cobra.Command {
	var fps bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Animate the growth in a window",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			canvas := fractree.NewEbitenCanvas(p.Width, p.Height)
			grower, err := fractree.NewGrower(p.config(), canvas)
			if err != nil {
				return err
			}
			grower.Start()
			return fractree.Run(grower, canvas, fractree.RunConfig{
				Title:      "fractree",
				Width:      p.Width,
				Height:     p.Height,
				Background: fractree.Color{R: 0.97, G: 0.96, B: 0.93, A: 1},
				ShowFPS:    fps,
			})
		},
	}
	cmd.Flags().BoolVar(&fps, "fps", false, "overlay FPS/TPS counters")
	return cmd
}

func main() {
	cmd, err := mainCmd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		// The error has already been printed by cobra.
		os.Exit(1)
	}
}
