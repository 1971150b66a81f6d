/*
Package domdbg implements helpers to debug live and cloned trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/domsnap/clone"
	"github.com/npillmayer/domsnap/dom"
	"github.com/npillmayer/domsnap/dom/style"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// --- Tree dumps -------------------------------------------------------

// Live returns a printable outline of a live tree. Shadow roots, slot
// assignments and nested documents are included.
func Live(n *dom.Node) string {
	p := tp.New()
	p.SetValue(liveLabel(n))
	liveChildren(p, n)
	return p.String()
}

func liveLabel(n *dom.Node) string {
	if n.NodeType() == html.TextNode {
		return shortText(n.Data(), 20)
	}
	label := n.String()
	if n.IsSlot() {
		label += fmt.Sprintf(" [%d assigned]", len(n.AssignedNodes()))
	}
	if l, t := n.Scroll(); l != 0 || t != 0 {
		label += fmt.Sprintf(" [scroll %g,%g]", l, t)
	}
	return label
}

func liveChildren(p tp.Tree, n *dom.Node) {
	if root := n.ShadowRoot(); root != nil {
		liveChildren(p.AddBranch(root.NodeName()), root)
	}
	if doc, err := n.ContentDocument(); err != nil {
		p.AddNode("#document (" + err.Error() + ")")
	} else if doc != nil {
		liveChildren(p.AddBranch("#document"), doc)
	}
	for _, ch := range n.ChildNodes() {
		if len(ch.ChildNodes()) == 0 && ch.ShadowRoot() == nil {
			p.AddNode(liveLabel(ch))
			continue
		}
		liveChildren(p.AddBranch(liveLabel(ch)), ch)
	}
}

// Clone returns a printable outline of a cloned tree, including the style
// of every element.
func Clone(n *clone.Node) string {
	p := tp.New()
	p.SetValue(cloneLabel(n))
	cloneChildren(p, n)
	return p.String()
}

func cloneLabel(n *clone.Node) string {
	if n.Type == html.TextNode {
		return shortText(n.Data, 20)
	}
	label := n.String()
	if css := n.Style.CSSText(); css != "" {
		label += " {" + shortText(css, 60) + "}"
	}
	return label
}

func cloneChildren(p tp.Tree, n *clone.Node) {
	for _, ch := range n.ChildNodes() {
		if ch.ChildCount() == 0 {
			p.AddNode(cloneLabel(ch))
			continue
		}
		cloneChildren(p.AddBranch(cloneLabel(ch)), ch)
	}
}

// --- GraphViz ---------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
}

var defaultGroups = []string{
	"display",
	"margin",
	"padding",
	"border",
	"transform",
}

// ToGraphViz outputs a diagram for a cloned tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the clone, a Writer, and an optional list of style groups. A style
// group is a property prefix, e.g. "margin" for all margin properties.
// The diagram will include all styles belonging to one of the groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - display
//     - margin
//     - padding
//     - border
//     - transform
//
func ToGraphViz(root *clone.Node, w io.Writer, styleGroups []string) error {
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Funcs(
		template.FuncMap{
			"shortstring": func(s string) string { return dotQuote(shortText(s, 10)) },
			"istext":      func(n *clone.Node) bool { return n.Type == html.TextNode },
		}).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	tmpl := template.Must(template.New("clone").Parse(graphHeadTmpl))
	if err := tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*clone.Node]string, 1024)
	if err := nodes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

type node struct {
	N    *clone.Node
	Name string
}

type styleGroup struct {
	Node       string
	Name       string
	Properties []style.KeyValue
}

func nodes(n *clone.Node, w io.Writer, dict map[*clone.Node]string, gparams *graphParamsType) error {
	name := nodeName(n, dict)
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		return err
	}
	if err := styleGroups(n, name, w, gparams); err != nil {
		return err
	}
	for _, ch := range n.ChildNodes() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := struct{ N1, N2 string }{name, nodeName(ch, dict)}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(n *clone.Node, dict map[*clone.Node]string) string {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	return name
}

func styleGroups(n *clone.Node, name string, w io.Writer, gparams *graphParamsType) error {
	props := n.Style.Properties()
	for i, prefix := range gparams.StyleGroups {
		group := styleGroup{Node: name, Name: fmt.Sprintf("%s_pg%d", name, i)}
		for _, kv := range props {
			if strings.HasPrefix(kv.Key, prefix) {
				group.Properties = append(group.Properties, kv)
			}
		}
		if len(group.Properties) == 0 {
			continue
		}
		if err := gparams.StylegroupTmpl.Execute(w, group); err != nil {
			return err
		}
		if err := gparams.PgedgeTmpl.Execute(w, group); err != nil {
			return err
		}
	}
	return nil
}

func shortText(s string, l int) string {
	s = strings.TrimSpace(s)
	if len(s) > l {
		s = s[:l] + "…"
	}
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return fmt.Sprintf("%q", s)
}

func dotQuote(s string) string {
	return strings.ReplaceAll(s, " ", "␣")
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const nodeTmpl = `{{ if istext .N }}
{{ .Name }}	[ label={{ shortstring .N.Data }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.String }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Node }} -> {{ .Name }} [dir=none weight=1 style="dashed"] ;
`
