package cli

import (
	"fmt"
	"strconv"

	"github.com/interpretive-systems/focalview/internal/viewer"
	"github.com/spf13/cobra"
)

func newPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths <dataset|focal> <item> [frame]",
		Short: "Print the image paths a viewer shows for an item",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			spec, err := specFor(args[0], cfg)
			if err != nil {
				return err
			}
			if !spec.Catalog.Contains(args[1]) {
				fmt.Fprintf(cmd.ErrOrStderr(), "note: %q is not in the %s catalog\n", args[1], spec.Name)
			}
			v := viewer.New(spec, nil, viewer.OptionsFromConfig(cfg))
			v.Select(args[1])
			if len(args) == 3 {
				n, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("frame %q: %w", args[2], err)
				}
				v.SetFrame(n)
			}
			if method := mustGetStringFlag(cmd, "method"); method != "" {
				if !v.SetMethod(method) {
					return fmt.Errorf("unknown method %q", method)
				}
			}

			out := cmd.OutOrStdout()
			snap := v.Snapshot()
			fmt.Fprintf(out, "# %s  frame %d\n", snap.Caption, snap.Frame)
			if spec.Thumbnail != nil {
				fmt.Fprintf(out, "thumbnail\t%s\n", spec.Thumbnail(snap.Item))
			}
			for _, img := range snap.Images {
				fmt.Fprintf(out, "%s\t%s\n", img.Label, img.URL)
			}
			for _, p := range spec.Samples {
				fmt.Fprintf(out, "sample\t%s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringP("method", "m", "", "Comparison method key (focal viewer)")
	return cmd
}
