package cli

import (
	"fmt"

	"github.com/interpretive-systems/focalview/internal/assets"
	"github.com/interpretive-systems/focalview/internal/tuilog"
	"github.com/interpretive-systems/focalview/internal/viewer"
	"github.com/spf13/cobra"
)

func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe [dataset|focal]",
		Short: "Check which referenced images exist and read their sizes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			names := []string{viewer.DatasetName, viewer.FocalName}
			if len(args) == 1 {
				names = args[:1]
			}
			workers, _ := cmd.Flags().GetInt("workers")
			strict, _ := cmd.Flags().GetBool("strict")
			verbose, _ := cmd.Flags().GetBool("verbose")

			out := cmd.OutOrStdout()
			missingTotal := 0
			for _, name := range names {
				spec, err := specFor(name, cfg)
				if err != nil {
					return err
				}
				paths := spec.AllPaths()
				results, err := assets.Probe(cmd.Context(), "", paths, workers)
				if err != nil {
					return err
				}
				missing := assets.Missing(results)
				missingTotal += len(missing)
				for _, r := range results {
					switch {
					case !r.Exists:
						if verbose {
							fmt.Fprintf(out, "missing\t%s\n", r.Path)
						}
					case r.Err != nil:
						fmt.Fprintf(out, "error\t%s\t%v\n", r.Path, r.Err)
					case verbose:
						fmt.Fprintf(out, "ok\t%s\t%s %dx%d\n", r.Path, r.Format, r.Width, r.Height)
					}
				}
				fmt.Fprintf(out, "%s: %d/%d present\n", name, len(paths)-len(missing), len(paths))
				tuilog.Info("probe", "viewer", name, "total", len(paths), "missing", len(missing))
			}
			if strict && missingTotal > 0 {
				return fmt.Errorf("%d assets missing", missingTotal)
			}
			return nil
		},
	}
	cmd.Flags().Int("workers", assets.DefaultProbeWorkers, "Concurrent probes")
	cmd.Flags().Bool("strict", false, "Fail when any asset is missing")
	cmd.Flags().BoolP("verbose", "v", false, "List every path")
	return cmd
}
