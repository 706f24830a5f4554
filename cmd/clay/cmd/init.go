package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/clay/engine/config"
)

func newInitCmd(opts *options) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the example triangle scene to --scene",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.scenePath); err == nil && !force {
				err := fmt.Errorf("%s already exists", opts.scenePath)
				printError("refusing to overwrite, use --force", err)
				return err
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				printError("failed to stat scene", err)
				return err
			}

			if err := config.Example().Save(opts.scenePath); err != nil {
				printError("failed to write scene", err)
				return err
			}
			printStat(cmd.OutOrStdout(), "wrote", "%s", opts.scenePath)
			return nil
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return initCmd
}
