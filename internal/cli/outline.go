package cli

import (
	"github.com/spf13/cobra"

	"github.com/npillmayer/vdoc/saver/outline"
)

func newOutlineCmd() *cobra.Command {
	var opts outline.Options
	cmd := &cobra.Command{
		Use:   "outline [scene]",
		Short: "Print the object tree of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadScene(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return outline.Write(cmd.OutOrStdout(), doc, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.IDs, "ids", false, "show object ids")
	cmd.Flags().BoolVar(&opts.Styles, "styles", true, "show named styles of objects")
	cmd.Flags().BoolVar(&opts.Interpolation, "interpolations", false, "show interpolated objects")
	return cmd
}
