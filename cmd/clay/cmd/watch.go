package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/clay/engine"
	"github.com/spaghettifunk/clay/engine/config"
	"github.com/spaghettifunk/clay/engine/core"
	"github.com/spaghettifunk/clay/engine/renderer"
	"github.com/spaghettifunk/clay/engine/scene"
)

func newWatchCmd(opts *options) *cobra.Command {
	var fps float64

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Render the scene and reload it whenever the file changes",
		Long: `Runs the frame loop until interrupted (SIGINT, SIGTERM). Every write
to the scene file is decoded and validated; valid scenes replace the running
one between two frames, invalid ones are reported and ignored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := opts.loadScene()
			if err != nil {
				printError("failed to load scene", err)
				return err
			}

			watcher, err := config.NewWatcher(opts.scenePath)
			if err != nil {
				printError("failed to watch scene", err)
				return err
			}
			defer watcher.Close()

			game := &engine.Game{
				ApplicationConfig: &engine.ApplicationConfig{
					Name:        "clay watch",
					TargetFPS:   fps,
					LimitFrames: true,
				},
			}
			e := engine.New(game, s, renderer.NewLogSink())
			if err := e.Initialize(); err != nil {
				printError("failed to initialize", err)
				return err
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render("watching "+watcher.Path()))
			go reload(ctx.Done(), watcher, e, w)

			if err := e.Run(ctx); err != nil {
				printError("frame loop failed", err)
				return err
			}
			return e.Shutdown()
		},
	}

	watchCmd.Flags().Float64Var(&fps, "fps", 30, "target frames per second")
	return watchCmd
}

// reload swaps in every valid config until done is closed or the watcher stops.
func reload(done <-chan struct{}, watcher *config.Watcher, e *engine.Engine, w io.Writer) {
	for {
		select {
		case cfg, ok := <-watcher.Configs():
			if !ok {
				return
			}
			s, err := scene.FromConfig(cfg)
			if err != nil {
				printError("scene rejected", err)
				continue
			}
			if err := core.SetLogLevel(cfg.LogLevel); err != nil {
				core.LogWarn("keeping log level: %s", err)
			}
			e.SetScene(s)
			printStat(w, "reloaded", "%d node(s)", len(s.Nodes))

		case err, ok := <-watcher.Errors():
			if !ok {
				return
			}
			printError("scene rejected", err)

		case <-done:
			return
		}
	}
}
