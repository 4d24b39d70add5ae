package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/npillmayer/vdoc/graphic"
	"github.com/npillmayer/vdoc/loader/scene"
)

// outputOpts are the flags of commands writing a document.
type outputOpts struct {
	output string // output file, stdout if empty
	format string // one of formats, derived from output if empty
}

func (o *outputOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format: svg, outline or dot")
}

func newConvertCmd() *cobra.Command {
	var opts outputOpts
	cmd := &cobra.Command{
		Use:   "convert [scene]",
		Short: "Convert a scene to SVG, an outline or a GraphViz graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadScene(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeOutput(cmd, doc, opts)
		},
	}
	opts.register(cmd)
	return cmd
}

// loadScene loads a scene file, configured from the context.
func loadScene(ctx context.Context, path string) (*graphic.Document, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	docOpts, err := configFromContext(ctx).documentOptions(logger)
	if err != nil {
		return nil, err
	}
	doc, err := scene.LoadFile(path, docOpts...)
	if err != nil {
		return nil, err
	}
	prog.done("loaded scene", "path", path, "layers", len(doc.Layers()))
	return doc, nil
}

// writeOutput writes doc to the output file or to the command's output.
func writeOutput(cmd *cobra.Command, doc *graphic.Document, opts outputOpts) error {
	logger := loggerFromContext(cmd.Context())
	format, err := resolveFormat(opts.format, opts.output)
	if err != nil {
		return err
	}
	var w io.Writer = cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := writeDocument(w, doc, format); err != nil {
		return err
	}
	if opts.output != "" {
		logger.Info("wrote document", "path", opts.output, "format", format)
	}
	return nil
}
