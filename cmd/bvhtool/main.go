// Package main is the entry point for the bvhtool CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"bvh-pose-merger/internal/config"
	"bvh-pose-merger/internal/logging"
)

// Global flags.
var (
	configFile string
	logLevel   string
)

// Loaded once per invocation by the root command.
var (
	cfg    config.Config
	logger zerolog.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bvhtool",
		Short: "BVH skeleton parsing, posing and capture merging",
		Long: `bvhtool parses BVH motion files, evaluates joint world transforms,
renders stick-figure previews, and merges directories of captured
*.pose.xml files into single BVH clips on a fixed template skeleton.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (json, yaml or toml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(newMergeCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newPoseCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newTemplateCmd())

	return root
}

func setup(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}
	cfg.Resolve(config.Flags{LogLevel: logLevel})

	logger, err = logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if configFile != "" {
		logger.Debug().Str("config", configFile).Msg("config loaded")
	}
	return nil
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
