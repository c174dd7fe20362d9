// SPDX-License-Identifier: Unlicense OR MIT

// Command iosdemo shows iOS style check boxes and switches.
//
//	iosdemo checkbox
//	iosdemo switch
//	iosdemo --scene my.yaml
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iosfx/toggle/internal/scene"
)

// launcher opens a window for a scene.
type launcher func(s *scene.Scene, log *slog.Logger) error

func main() {
	if err := newRootCmd(launchWindow).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(launch launcher) *cobra.Command {
	var (
		scenePath string
		verbose   bool
	)
	open := func(cmd *cobra.Command, builtin string) error {
		s, err := loadScene(builtin, scenePath)
		if err != nil {
			return err
		}
		return launch(s, newLogger(cmd, verbose))
	}
	root := &cobra.Command{
		Use:           "iosdemo",
		Short:         "Show iOS style toggles",
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scenePath == "" {
				return cmd.Help()
			}
			return open(cmd, "")
		},
	}
	root.PersistentFlags().StringVar(&scenePath, "scene", "", "load the scene from a YAML file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")

	for _, name := range []string{scene.StyleCheckBox, scene.StyleSwitch} {
		root.AddCommand(&cobra.Command{
			Use:   name,
			Short: fmt.Sprintf("Show the %s demo", name),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return open(cmd, name)
			},
		})
	}
	return root
}

// loadScene reads the scene file at path, or the built in scene when path
// is empty.
func loadScene(builtin, path string) (*scene.Scene, error) {
	if path != "" {
		return scene.Load(path)
	}
	return scene.Builtin(builtin)
}

func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
