// Package cli implements the vdoc command-line interface.
//
// vdoc reads drawings from TOML scene files (see package loader/scene) and
// converts them to SVG, to a textual outline or to GraphViz DOT. Objects
// may be picked by predicate (see package query), either for listing them
// or for deleting them before the document is written.
//
// # Commands
//
//   - convert: write a scene as SVG, outline or DOT
//   - outline: print the object tree of a scene
//   - select: list the paths of objects matching a predicate
//   - delete: remove objects matching a predicate, then write the result
//
// # Configuration
//
// An optional TOML file (flag --config, default vdoc.toml) sets the undo
// limit, the log level, CSS style sheets to register and document default
// properties:
//
//	undo_limit = 20
//	log_level  = "debug"
//	styles     = ["styles/base.css"]
//
//	[defaults]
//	line-width = "0.5"
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed to commands through context.Context.
package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/npillmayer/vdoc/graphic"
	"github.com/npillmayer/vdoc/graphic/dbg"
	"github.com/npillmayer/vdoc/saver/outline"
	"github.com/npillmayer/vdoc/saver/svg"
)

const (
	appName       = "vdoc"
	defaultConfig = "vdoc.toml" // looked up in the working directory
)

// Output formats.
const (
	formatSVG     = "svg"
	formatOutline = "outline"
	formatDOT     = "dot"
)

var formats = []string{formatSVG, formatOutline, formatDOT}

// resolveFormat returns the output format, either given explicitly or
// derived from the extension of the output file. It defaults to SVG.
func resolveFormat(format, output string) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".txt":
			return formatOutline, nil
		case ".dot", ".gv":
			return formatDOT, nil
		}
		return formatSVG, nil
	}
	format = strings.ToLower(format)
	for _, f := range formats {
		if f == format {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of %s)", format, strings.Join(formats, ", "))
}

// writeDocument writes doc to w in the given format.
func writeDocument(w io.Writer, doc *graphic.Document, format string) error {
	switch format {
	case formatOutline:
		return outline.Write(w, doc, outline.Options{Styles: true})
	case formatDOT:
		return dbg.ToGraphViz(doc, w, nil)
	}
	return svg.Write(w, doc)
}
