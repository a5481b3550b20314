package cli

import (
	"github.com/interpretive-systems/focalview/internal/tui"
	"github.com/spf13/cobra"
)

func newViewCmd(name, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewer(cmd, name)
		},
	}
	return cmd
}

func runViewer(cmd *cobra.Command, start string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	watch, _ := cmd.Flags().GetBool("watch-config")
	return tui.Run(tui.Options{
		Config:     cfg,
		Start:      start,
		ConfigPath: mustGetStringFlag(cmd, "config"),
		Watch:      watch,
		Probe:      true,
	})
}
