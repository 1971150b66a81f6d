/*
Package dom implements a live document tree on top of HTML parse trees.

Overview

A live document is what script code observes in a browser: next to
markup (tags, attributes, text) every element carries state which is not
reflected in the markup. Form controls have a current value, scroll
containers have a scroll offset, canvases hold a bitmap, videos are
paused at some frame. Elements may host an encapsulated shadow tree,
slots project nodes of their host, and iframes embed nested documents.

Type Node models such a live node. It wraps a node of an HTML parse
tree (package golang.org/x/net/html) and adds the live state. Parse and
FromHTML build a live tree from markup, interpreting declarative shadow
roots (<template shadowrootmode="open">) and iframe srcdoc documents.
The setters of Node let clients (and tests) simulate everything else a
browser would know at runtime.

Tree Implementation

Nodes are built on top of the general purpose tree type of package tree.
In Go we resort to composition, thus including a generic tree node in
every live node, with the payload pointing back to the live node.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'domsnap.dom'
func tracer() tracing.Trace {
	return tracing.Select("domsnap.dom")
}

// ErrCrossOrigin is returned when accessing a nested document which does
// not share the origin of its embedding document.
var ErrCrossOrigin = errors.New("nested document is cross-origin")

// ErrTainted is returned by hosts when exporting pixel data of a surface
// which has been drawn to with cross-origin content.
var ErrTainted = errors.New("surface is tainted by cross-origin data")
