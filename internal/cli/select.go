package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/npillmayer/vdoc/graphic"
	"github.com/npillmayer/vdoc/query"
)

func newSelectCmd() *cobra.Command {
	var count bool
	cmd := &cobra.Command{
		Use:   "select [scene] [predicate]",
		Short: "List the objects of a scene matching a predicate",
		Long: `Select lists the paths of all objects matching a predicate, one per line.
Objects below a matching object are not listed. Predicates are expressions
over object attributes, for example

    vdoc select drawing.toml 'kind == "ellipse" && "thick" in styles'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sel, err := selectObjects(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			if count {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), len(sel))
				return err
			}
			for _, e := range sel {
				if _, err = fmt.Fprintf(cmd.OutOrStdout(), "%v\t%s\n", e.Path, e.Node.Kind()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&count, "count", false, "print the number of matches only")
	return cmd
}

// selectObjects loads a scene and selects the objects matching predicate.
func selectObjects(cmd *cobra.Command, path, predicate string) (*graphic.Document, graphic.Selection, error) {
	q, err := query.Compile(predicate)
	if err != nil {
		return nil, nil, err
	}
	doc, err := loadScene(cmd.Context(), path)
	if err != nil {
		return nil, nil, err
	}
	sel, err := q.Select(doc)
	if err != nil {
		return nil, nil, err
	}
	loggerFromContext(cmd.Context()).Debug("selected objects", "query", q, "count", len(sel))
	return doc, sel, nil
}
