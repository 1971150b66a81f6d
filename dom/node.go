package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"image"
	"strings"

	"github.com/npillmayer/domsnap/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is a node of a live document, the building block of the live tree.
type Node struct {
	tree.Node[*Node] // we build on top of general purpose tree
	htmlNode         *html.Node // markup: type, tag, attributes, character data
	shadow           *Node      // shadow root, if any
	host             *Node      // for shadow roots: the host element
	assigned         []*Node    // for slots: nodes assigned to the slot
	content          *Node      // for iframes: nested document
	contentErr       error      // for iframes: access error of nested document
	live             liveState
}

type liveState struct {
	scrollLeft, scrollTop     float64
	clientWidth, clientHeight int
	value                     string
	bitmap                    image.Image
	tainted                   bool
	currentSrc                string
	frame                     image.Image
}

func newNode(h *html.Node) *Node {
	n := &Node{htmlNode: h}
	n.Payload = n // Payload will always reference the node itself
	return n
}

// NewElement creates a detached HTML element. Attributes are given as
// key/value pairs.
func NewElement(tag string, keyvals ...string) *Node {
	tag = strings.ToLower(tag)
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for i := 0; i+1 < len(keyvals); i += 2 {
		h.Attr = append(h.Attr, html.Attribute{Key: keyvals[i], Val: keyvals[i+1]})
	}
	n := newNode(h)
	initLiveState(n)
	return n
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return newNode(&html.Node{Type: html.TextNode, Data: text})
}

// NewComment creates a detached comment node.
func NewComment(text string) *Node {
	return newNode(&html.Node{Type: html.CommentNode, Data: text})
}

// NewDocument creates an empty document node.
func NewDocument() *Node {
	return newNode(&html.Node{Type: html.DocumentNode})
}

// TreeNode returns the generic tree node of a live node.
func (n *Node) TreeNode() *tree.Node[*Node] {
	return &n.Node
}

// HTML returns the HTML parse tree node underlying this live node.
func (n *Node) HTML() *html.Node {
	return n.htmlNode
}

// NodeType returns the type of the underlying HTML node (ElementNode,
// TextNode, etc.).
func (n *Node) NodeType() html.NodeType {
	return n.htmlNode.Type
}

// IsElement is true for element nodes.
func (n *Node) IsElement() bool {
	return n != nil && n.htmlNode.Type == html.ElementNode
}

// Tag returns the lower-case tag name of an element, or "" for other nodes.
func (n *Node) Tag() string {
	if !n.IsElement() {
		return ""
	}
	return strings.ToLower(n.htmlNode.Data)
}

// DataAtom returns the atom of an element's tag, 0 for unknown tags.
func (n *Node) DataAtom() atom.Atom {
	return n.htmlNode.DataAtom
}

// Namespace returns the namespace of an element: "" for HTML, "svg" or
// "math" for foreign elements.
func (n *Node) Namespace() string {
	return n.htmlNode.Namespace
}

// Is checks if a node is an HTML element of the given kind.
func (n *Node) Is(a atom.Atom) bool {
	return n.IsElement() && n.htmlNode.Namespace == "" && n.htmlNode.DataAtom == a
}

// Data returns the character data of text and comment nodes.
func (n *Node) Data() string {
	return n.htmlNode.Data
}

// NodeName returns "#text" and "#comment" for text and comment nodes,
// "#document" for documents and the tag name for elements.
func (n *Node) NodeName() string {
	switch n.htmlNode.Type {
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	case html.DocumentNode:
		if n.host != nil {
			return "#shadow-root"
		}
		return "#document"
	case html.DoctypeNode:
		return n.htmlNode.Data
	}
	return n.Tag()
}

// Attributes returns a copy of the attributes of an element.
func (n *Node) Attributes() []html.Attribute {
	if len(n.htmlNode.Attr) == 0 {
		return nil
	}
	attrs := make([]html.Attribute, len(n.htmlNode.Attr))
	copy(attrs, n.htmlNode.Attr)
	return attrs
}

// Attr returns the value of an attribute and an indicator if it is set.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.htmlNode.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the value of an attribute.
func (n *Node) SetAttr(key, value string) {
	for i, a := range n.htmlNode.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			n.htmlNode.Attr[i].Val = value
			return
		}
	}
	n.htmlNode.Attr = append(n.htmlNode.Attr, html.Attribute{Key: key, Val: value})
}

// ParentNode returns the parent node, if any. The parent of a shadow
// root's top-level nodes is the shadow root.
func (n *Node) ParentNode() *Node {
	if p := n.Parent(); p != nil {
		return p.Payload
	}
	return nil
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

// AppendChild appends a child node to n. The HTML parse tree is kept in
// sync, so that selectors keep matching.
// It returns n to allow for chaining.
func (n *Node) AppendChild(ch *Node) *Node {
	if ch == nil {
		return n
	}
	if h := ch.htmlNode; h.Parent != nil {
		h.Parent.RemoveChild(h)
	}
	n.htmlNode.AppendChild(ch.htmlNode)
	n.AddChild(&ch.Node)
	return n
}

// TextContent returns the concatenated text of a node and all of its
// descendents.
func (n *Node) TextContent() string {
	if n.NodeType() == html.TextNode {
		return n.Data()
	}
	var b strings.Builder
	_ = tree.Walk(&n.Node, func(t *tree.Node[*Node], _ int) error {
		if t.Payload.NodeType() == html.TextNode {
			b.WriteString(t.Payload.Data())
		}
		return nil
	})
	return b.String()
}

// OwnerDocument returns the document (or shadow root) node at the top of
// the tree containing n. Shadow roots are not crossed.
func (n *Node) OwnerDocument() *Node {
	d := n
	for d.ParentNode() != nil {
		d = d.ParentNode()
	}
	if d.NodeType() != html.DocumentNode {
		return nil
	}
	return d
}

// Body returns the body element of a document node, if any.
func (n *Node) Body() *Node {
	if n == nil || n.NodeType() != html.DocumentNode {
		return nil
	}
	found := tree.Find(&n.Node, func(t *tree.Node[*Node]) bool {
		return t.Payload.Is(atom.Body)
	})
	if found == nil {
		return nil
	}
	return found.Payload
}

func (n *Node) String() string {
	switch n.NodeType() {
	case html.TextNode:
		return fmt.Sprintf("%q", shortText(n.Data(), 24))
	case html.ElementNode:
		if id, ok := n.Attr("id"); ok {
			return fmt.Sprintf("<%s#%s>", n.Tag(), id)
		}
		return fmt.Sprintf("<%s>", n.Tag())
	}
	return n.NodeName()
}

func shortText(s string, l int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > l {
		return string(r[:l-1]) + "…"
	}
	return s
}
