package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/clay/engine/config"
	"github.com/spaghettifunk/clay/engine/core"
	"github.com/spaghettifunk/clay/engine/scene"
)

const defaultScene = "assets/scenes/triangle.toml"

type options struct {
	scenePath string
	logLevel  string
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "clay",
		Short: "Clay - transform and projection toolkit",
		Long: `Clay builds the projection, view and model matrices of a scene file
and hands them to a uniform sink once per frame.

Commands:
  mvp    - print the matrices uploaded for one frame
  play   - animate the scene for a number of frames
  watch  - re-render whenever the scene file changes
  init   - write the example scene`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logLevel == "" {
				return nil
			}
			return core.SetLogLevel(opts.logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.scenePath, "scene", "s", defaultScene, "scene file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level, overrides the scene file (debug, info, warn, error)")

	rootCmd.AddCommand(
		newMVPCmd(opts),
		newPlayCmd(opts),
		newWatchCmd(opts),
		newInitCmd(opts),
	)
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// loadScene reads the scene file and applies its log level unless the
// flag already set one.
func (o *options) loadScene() (*config.Config, *scene.Scene, error) {
	cfg, err := config.Load(o.scenePath)
	if err != nil {
		return nil, nil, err
	}
	if o.logLevel == "" {
		if err := core.SetLogLevel(cfg.LogLevel); err != nil {
			return nil, nil, err
		}
	}
	s, err := scene.FromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, s, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s %s: %v\n", errorStyle.Render("error:"), msg, err)
}
