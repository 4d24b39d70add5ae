/*
Package dbg implements helpers to debug drawings.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"testing"
	"text/template"

	"github.com/npillmayer/vdoc/graphic"
	"github.com/npillmayer/vdoc/style"
	"github.com/npillmayer/vdoc/tree"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	style.PGFill,
	style.PGLine,
}

// ToGraphViz outputs a diagram for the object tree of a document. The
// diagram is in GraphViz (DOT) format. Clients have to provide the
// document, a Writer, and an optional list of style property groups.
// For primitives, the diagram will include the effective values of all
// properties belonging to one of the property groups.
//
// If the client does not provide a list of property groups, the following
// default will be used:
//
//   - Fill
//   - Line
func ToGraphViz(doc *graphic.Document, w io.Writer, styleGroups []string) error {
	tmpl, err := template.New("doc").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("objnode").Funcs(
		template.FuncMap{
			"shortid": shortID,
		}).Parse(objNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("objedge").Parse(objEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*tree.Node[graphic.Object]]string, 1024)
	if err = nodes(doc.Root(), w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a document and a testing.T, it will
// create a GraphViz image of the object tree and write it to a file in the
// current folder, choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(doc *graphic.Document, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "doc.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing document digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(doc, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing document tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	Obj  graphic.Object
	Name string
}

func nodes(obj graphic.Object, w io.Writer, dict map[*tree.Node[graphic.Object]]string,
	gparams *graphParamsType) error {
	//
	if err := objNode(obj, w, dict, gparams); err != nil {
		return err
	}
	c, ok := obj.(graphic.Compound)
	if !ok {
		return nil
	}
	for _, ch := range c.Children() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := objEdge(obj, ch, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

func objNode(obj graphic.Object, w io.Writer, dict map[*tree.Node[graphic.Object]]string,
	gparams *graphParamsType) error {
	//
	name := dict[obj.TreeNode()]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[obj.TreeNode()] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{obj, name}); err != nil {
		return err
	}
	return objStyles(obj, w, name, gparams)
}

// propertyGroup is a group of effective property values of an object.
type propertyGroup struct {
	Name       string
	Properties []style.KeyValue
}

func objStyles(obj graphic.Object, w io.Writer, name string, gparams *graphParamsType) error {
	props := obj.Properties()
	if props == nil {
		return nil
	}
	var prev *propertyGroup
	for _, g := range gparams.StyleGroups {
		pg := &propertyGroup{Name: g}
		for _, key := range style.KeysOfGroup(g) {
			pg.Properties = append(pg.Properties, style.KeyValue{Key: key, Value: props.Get(key)})
		}
		if len(pg.Properties) == 0 {
			continue
		}
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = gparams.PgedgeTmpl.Execute(w, pgedge{name, pg})
		} else {
			err = gparams.PgpgTmpl.Execute(w, []*propertyGroup{prev, pg})
		}
		if err != nil {
			return err
		}
		prev = pg
	}
	return nil
}

type edge struct {
	N1, N2 node
}

func objEdge(o1, o2 graphic.Object, w io.Writer, dict map[*tree.Node[graphic.Object]]string,
	gparams *graphParamsType) error {
	//
	name1 := dict[o1.TreeNode()]
	name2 := dict[o2.TreeNode()]
	return gparams.EdgeTmpl.Execute(w, edge{node{o1, name1}, node{o2, name2}})
}

type pgedge struct {
	Name      string
	PropGroup *propertyGroup
}

func shortID(obj graphic.Object) string {
	return obj.ID().String()[:8]
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const objNodeTmpl = `{{ if .Obj.IsCompound }}
{{ .Name }}	[ label="{{ .Obj.Kind }}\n{{ shortid .Obj }}" shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else }}
{{ .Name }}	[ label="{{ .Obj.Kind }}\n{{ shortid .Obj }}" shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const objEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
