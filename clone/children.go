package clone

import (
	"github.com/npillmayer/domsnap/dom"
)

// childSource selects the nodes which become the children of a clone:
// the nodes assigned to a slot, the children of an iframe's nested body,
// the children of a shadow root, or the element's own children, in this
// order of precedence.
func childSource(n *dom.Node, kind Kind) []*dom.Node {
	switch kind {
	case KindSlot:
		return n.AssignedNodes()
	case KindEmbedded:
		if doc, err := n.ContentDocument(); err == nil {
			if body := doc.Body(); body != nil {
				return body.ChildNodes()
			}
		}
	}
	if root := n.ShadowRoot(); root != nil {
		return root.ChildNodes()
	}
	return n.ChildNodes()
}

// cloneChildren clones the child source of n in order and appends every
// non-nil result to clone. Media elements never get children.
func (c *Cloner) cloneChildren(n *dom.Node, kind Kind, clone *Node, opts Options) error {
	if kind == KindMedia {
		return nil
	}
	for _, ch := range childSource(n, kind) {
		cc, err := c.Clone(ch, opts)
		if err != nil {
			return err
		}
		if cc != nil {
			clone.AppendChild(cc)
		}
	}
	return nil
}
