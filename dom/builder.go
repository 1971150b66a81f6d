package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/domsnap/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads an HTML document and builds a live tree for it.
func Parse(r io.Reader) (*Node, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: cannot parse document: %w", err)
	}
	return FromHTML(h), nil
}

// FromHTML builds a live tree on top of an HTML parse tree. The parse tree
// is adopted, not copied: declarative shadow roots are moved out of their
// template elements.
//
// Live state is initialized from markup, slots of declarative shadow trees
// are assigned and iframes get their nested documents:
// srcdoc is parsed as a same-origin document, a src other than about:blank
// makes the nested document inaccessible, and an iframe with neither gets
// an empty document.
func FromHTML(h *html.Node) *Node {
	if h == nil {
		return nil
	}
	return adopt(h)
}

func adopt(h *html.Node) *Node {
	n := newNode(h)
	initLiveState(n)
	for c := h.FirstChild; c != nil; {
		next := c.NextSibling
		if h.Type == html.ElementNode && n.shadow == nil && isDeclarativeShadowRoot(c) {
			attachDeclarativeShadow(n, c)
		} else {
			n.AddChild(&adopt(c).Node)
		}
		c = next
	}
	if n.Is(atom.Iframe) {
		loadContentDocument(n)
	}
	initFromChildren(n)
	if n.shadow != nil {
		AssignSlots(n)
	}
	return n
}

func isDeclarativeShadowRoot(h *html.Node) bool {
	if h.Type != html.ElementNode || h.DataAtom != atom.Template || h.Namespace != "" {
		return false
	}
	for _, a := range h.Attr {
		if a.Key == "shadowrootmode" || a.Key == "shadowroot" {
			return true
		}
	}
	return false
}

func attachDeclarativeShadow(host *Node, tmpl *html.Node) {
	root := host.AttachShadow()
	tmpl.Parent.RemoveChild(tmpl)
	for c := tmpl.FirstChild; c != nil; {
		next := c.NextSibling
		tmpl.RemoveChild(c)
		root.htmlNode.AppendChild(c)
		c = next
	}
	for c := root.htmlNode.FirstChild; c != nil; c = c.NextSibling {
		root.AddChild(&adopt(c).Node)
	}
	tracer().Debugf("attached declarative shadow root to %s", host)
}

func loadContentDocument(n *Node) {
	if srcdoc, ok := n.Attr("srcdoc"); ok {
		doc, err := Parse(strings.NewReader(srcdoc))
		n.SetContentDocument(doc, err)
		return
	}
	if src, ok := n.Attr("src"); ok {
		src = strings.TrimSpace(src)
		if src != "" && !strings.EqualFold(src, "about:blank") {
			n.SetContentDocument(nil, fmt.Errorf("iframe src=%q: %w", src, ErrCrossOrigin))
			return
		}
	}
	doc, err := Parse(strings.NewReader(""))
	n.SetContentDocument(doc, err)
}

// QuerySelector returns the first descendant element of n (n included)
// matching a CSS selector. Shadow trees and nested documents are not
// searched.
func (n *Node) QuerySelector(selector string) (*Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("dom: invalid selector %q: %w", selector, err)
	}
	found := tree.Find(&n.Node, func(t *tree.Node[*Node]) bool {
		return t.Payload.IsElement() && sel.Match(t.Payload.htmlNode)
	})
	if found == nil {
		return nil, nil
	}
	return found.Payload, nil
}

// MustQuery is like QuerySelector, but panics if the selector is invalid or
// nothing matches. It is intended for tests and examples.
func (n *Node) MustQuery(selector string) *Node {
	found, err := n.QuerySelector(selector)
	if err != nil {
		panic(err)
	}
	if found == nil {
		panic(fmt.Sprintf("dom: no element matches %q", selector))
	}
	return found
}
