package clone

import (
	"github.com/npillmayer/domsnap/dom"
	"golang.org/x/net/html/atom"
)

// Kind classifies elements by the way they are materialized.
type Kind uint8

// Kinds of elements. Anything not listed explicitly is KindGeneric.
const (
	KindGeneric  Kind = iota // shallow copy of tag and attributes
	KindRaster               // <canvas>, replaced by an image of its pixels
	KindMedia                // <video>, replaced by an image of its current frame
	KindEmbedded             // <iframe>, replaced by a clone of the nested body
	KindSlot                 // <slot>, projects its assigned nodes
)

var kindNames = [...]string{"generic", "raster", "media", "embedded", "slot"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindOf returns the kind of a node. Only HTML elements may have a kind
// other than KindGeneric.
func KindOf(n *dom.Node) Kind {
	if !n.IsElement() || n.Namespace() != "" {
		return KindGeneric
	}
	switch n.DataAtom() {
	case atom.Canvas:
		return KindRaster
	case atom.Video:
		return KindMedia
	case atom.Iframe:
		return KindEmbedded
	}
	if n.IsSlot() {
		return KindSlot
	}
	return KindGeneric
}
