package cli

import (
	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	var opts outputOpts
	cmd := &cobra.Command{
		Use:   "delete [scene] [predicate]",
		Short: "Remove the objects matching a predicate and write the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			doc, sel, err := selectObjects(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			if len(sel) == 0 {
				logger.Warn("no objects match", "query", args[1])
				return writeOutput(cmd, doc, opts)
			}
			if err = doc.Remove(sel); err != nil {
				return err
			}
			logger.Info("removed objects", "count", len(sel), "undo", doc.UndoText())
			return writeOutput(cmd, doc, opts)
		},
	}
	opts.register(cmd)
	return cmd
}
