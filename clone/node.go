package clone

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/domsnap/dom"
	"github.com/npillmayer/domsnap/dom/style"
	"github.com/npillmayer/domsnap/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is a node of a cloned tree. Cloned nodes are detached: they share
// neither identity nor mutable state with the live nodes they have been
// cloned from.
type Node struct {
	tree.Node[*Node] // we build on top of general purpose tree
	Type             html.NodeType      // type of node
	DataAtom         atom.Atom          // atom of an element's tag, if known
	Data             string             // tag name for elements, text for text nodes
	Namespace        string             // "", "svg" or "math" for elements
	Attr             []html.Attribute   // attributes, except a parsed "style"
	Style            *style.Declaration // style of elements; nil for unstyled nodes
}

func newNode(t html.NodeType, data string) *Node {
	n := &Node{Type: t, Data: data}
	n.Payload = n // Payload will always reference the node itself
	return n
}

// NewText creates a text node.
func NewText(text string) *Node {
	return newNode(html.TextNode, text)
}

// NewElement creates an element in a namespace ("" for HTML). Elements of
// namespaces which support styling (HTML, SVG, MathML) get an empty style
// declaration, others don't have one.
func NewElement(tag, namespace string) *Node {
	n := newNode(html.ElementNode, tag)
	n.Namespace = namespace
	if namespace == "" {
		n.Data = strings.ToLower(tag)
	}
	n.DataAtom = atom.Lookup([]byte(n.Data))
	if isStyledNamespace(namespace) {
		n.Style = style.NewDeclaration()
	}
	return n
}

func isStyledNamespace(ns string) bool {
	return ns == "" || ns == "svg" || ns == "math"
}

// shallowClone copies a live node without its children. An element's style
// attribute is moved into the clone's style declaration.
func shallowClone(src *dom.Node) *Node {
	h := src.HTML()
	if h.Type != html.ElementNode {
		n := newNode(h.Type, h.Data)
		n.Attr = src.Attributes()
		return n
	}
	n := NewElement(h.Data, h.Namespace)
	for _, a := range h.Attr {
		if a.Namespace == "" && a.Key == "style" && n.Style != nil {
			if err := n.Style.SetCSSText(a.Val); err == nil {
				continue
			}
			tracer().Debugf("keeping unparsable style attribute of %s", src)
		}
		n.Attr = append(n.Attr, a)
	}
	return n
}

// IsElement is true for element nodes.
func (n *Node) IsElement() bool {
	return n != nil && n.Type == html.ElementNode
}

// Attribute returns the value of an attribute and an indicator if it is set.
func (n *Node) Attribute(key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets an attribute, replacing an existing value.
func (n *Node) SetAttribute(key, value string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttribute deletes an attribute, if present.
func (n *Node) RemoveAttribute(key string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// AppendChild appends a child and returns n.
func (n *Node) AppendChild(ch *Node) *Node {
	if ch != nil {
		n.AddChild(&ch.Node)
	}
	return n
}

// ChildNodes returns the children of a node, in order.
func (n *Node) ChildNodes() []*Node {
	children := n.Node.Children()
	nodes := make([]*Node, len(children))
	for i, ch := range children {
		nodes[i] = ch.Payload
	}
	return nodes
}

// ElementChildren returns the element children of a node, in order.
func (n *Node) ElementChildren() []*Node {
	var elems []*Node
	for _, ch := range n.ChildNodes() {
		if ch.IsElement() {
			elems = append(elems, ch)
		}
	}
	return elems
}

// SetTextContent replaces all children by a single text node.
func (n *Node) SetTextContent(text string) {
	n.RemoveChildren()
	if text != "" {
		n.AppendChild(NewText(text))
	}
}

// TextContent returns the concatenated text of a node and its descendants.
func (n *Node) TextContent() string {
	var b strings.Builder
	_ = tree.Walk(&n.Node, func(t *tree.Node[*Node], _ int) error {
		if t.Payload.Type == html.TextNode {
			b.WriteString(t.Payload.Data)
		}
		return nil
	})
	return b.String()
}

// HTML converts a cloned (sub-)tree into an HTML parse tree. Style
// declarations are serialized into style attributes.
func (n *Node) HTML() *html.Node {
	h := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	css := n.Style.CSSText()
	for _, a := range n.Attr {
		if css != "" && a.Namespace == "" && a.Key == "style" {
			continue // superseded by the projected style
		}
		h.Attr = append(h.Attr, a)
	}
	if css != "" {
		h.Attr = append(h.Attr, html.Attribute{Key: "style", Val: css})
	}
	if n.IsVoid() {
		if n.ChildCount() > 0 {
			tracer().Debugf("dropping children of void element %s", n)
		}
		return h
	}
	for _, ch := range n.ChildNodes() {
		h.AppendChild(ch.HTML())
	}
	return h
}

// IsVoid is true for HTML elements which cannot have children in markup.
// The children of a void element are not serialized.
func (n *Node) IsVoid() bool {
	if !n.IsElement() || n.Namespace != "" {
		return false
	}
	switch n.DataAtom {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img,
		atom.Input, atom.Link, atom.Meta, atom.Param, atom.Source, atom.Track, atom.Wbr:
		return true
	}
	return false
}

// Render writes the markup of a cloned (sub-)tree to w.
func Render(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	if err := html.Render(w, n.HTML()); err != nil {
		return fmt.Errorf("clone: cannot render %s: %w", n, err)
	}
	return nil
}

func (n *Node) String() string {
	switch n.Type {
	case html.TextNode:
		return fmt.Sprintf("%q", n.Data)
	case html.ElementNode:
		return "<" + n.Data + ">"
	case html.CommentNode:
		return "#comment"
	case html.DocumentNode:
		return "#document"
	}
	return n.Data
}
