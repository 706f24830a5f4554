package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/clay/engine"
	"github.com/spaghettifunk/clay/engine/math"
	"github.com/spaghettifunk/clay/engine/renderer"
)

func newPlayCmd(opts *options) *cobra.Command {
	var (
		frames  uint64
		fps     float64
		noLimit bool
	)

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Animate the scene for a number of frames",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := opts.loadScene()
			if err != nil {
				printError("failed to load scene", err)
				return err
			}

			game := &engine.Game{
				ApplicationConfig: &engine.ApplicationConfig{
					Name:        "clay play",
					TargetFPS:   fps,
					LimitFrames: !noLimit,
					MaxFrames:   frames,
				},
			}
			e := engine.New(game, s, renderer.NewLogSink())
			if err := e.Initialize(); err != nil {
				printError("failed to initialize", err)
				return err
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()
			if err := e.Run(ctx); err != nil {
				printError("frame loop failed", err)
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render(opts.scenePath))
			avgFPS, frameTime := e.Metrics()
			printStat(w, "frames", "%d", e.Frames())
			printStat(w, "fps", "%.1f", avgFPS)
			printStat(w, "frame time", "%.3fms", frameTime)
			for _, n := range e.Scene().Nodes {
				if n.Animation == nil {
					continue
				}
				rotation := n.Transform.Rotation
				printStat(w, n.Name, "%s (%.1f deg)", rotation, math.RadToDeg(rotation.Angle()))
			}
			return e.Shutdown()
		},
	}

	playCmd.Flags().Uint64VarP(&frames, "frames", "f", 120, "frames to render, 0 runs until interrupted")
	playCmd.Flags().Float64Var(&fps, "fps", 60, "target frames per second")
	playCmd.Flags().BoolVar(&noLimit, "no-limit", false, "do not sleep between frames")
	return playCmd
}
