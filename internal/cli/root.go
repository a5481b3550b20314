package cli

import (
	"fmt"
	"os"

	"github.com/interpretive-systems/focalview/internal/config"
	"github.com/interpretive-systems/focalview/internal/tuilog"
	"github.com/interpretive-systems/focalview/internal/viewer"
	"github.com/spf13/cobra"
)

func Execute() error {
	defer tuilog.Close()
	if err := newRootCmd().Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "focalview",
		Short:         "Terminal viewer for focal-stack image comparisons",
		Long:          "Focalview: scrub focal stacks, compare methods side by side and magnify regions in a TUI.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logFile := mustGetStringFlag(cmd, "log-file")
			debug, _ := cmd.Flags().GetBool("debug")
			return tuilog.Init(logFile, debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewer(cmd, viewer.DatasetName)
		},
	}

	root.PersistentFlags().StringP("assets", "a", "", "Assets root directory (default from config, else ./assets)")
	root.PersistentFlags().StringP("config", "c", config.DefaultPath, "Path to the YAML config file")
	root.PersistentFlags().String("log-file", "", "Write logs to this file (disabled when empty)")
	root.PersistentFlags().Bool("debug", false, "Log at debug level")
	root.PersistentFlags().Bool("watch-config", false, "Reload the theme when the config file changes")

	// Add subcommands
	root.AddCommand(newViewCmd(viewer.DatasetName, "Open the dataset viewer"))
	root.AddCommand(newViewCmd(viewer.FocalName, "Open the focal-stack comparison viewer"))
	root.AddCommand(newPathsCmd())
	root.AddCommand(newProbeCmd())

	return root
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path := mustGetStringFlag(cmd, "config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if assets := mustGetStringFlag(cmd, "assets"); assets != "" {
		cfg.AssetsRoot = assets
	}
	return cfg, nil
}

// specFor returns the viewer parameters for name.
func specFor(name string, cfg config.Config) (viewer.Spec, error) {
	switch name {
	case viewer.DatasetName:
		return viewer.DatasetSpec(cfg), nil
	case viewer.FocalName:
		return viewer.FocalSpec(cfg), nil
	}
	return viewer.Spec{}, fmt.Errorf("unknown viewer %q (want %s or %s)", name, viewer.DatasetName, viewer.FocalName)
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}
