/*
Package clone turns a live document subtree into a static, detached copy.

Overview

A browser page is alive: styles are resolved by the cascade, canvases
hold pixels, videos are paused at a frame, form controls carry values the
user typed, containers are scrolled. None of this survives serializing
the markup. A Cloner walks a live subtree (package dom) and produces a
tree of Nodes which captures the visual state explicitly:

  - the resolved style of every element is copied into the clone's own
    style declaration,
  - canvases and videos are replaced by images with data URIs,
  - iframes are replaced by a clone of their nested document's body,
  - slot projections and shadow trees are flattened into plain children,
  - live form values are written to attributes and text,
  - scroll offsets are turned into transforms on the children.

The result can be serialized (Render) or rasterized without access to the
live document.

Host Capabilities

The cloner does not resolve styles or export pixels itself. Hosts inject
these capabilities with type Host: a StyleResolver (mandatory), a
RasterExporter for canvases, a FrameGrabber for videos, and a
PseudoElementCloner. Package statichost provides all of them for static
documents.

Failures while capturing a single canvas or video are contained: the node
is dropped, a Diagnostic is reported, and cloning continues with its
siblings. Failures of style resolution are returned to the caller.

Concurrency

Cloning is sequential. Children are cloned one after the other, in
order, so at most one offscreen surface is alive at any time. Promise
runs a clone operation on a separate goroutine and hands out a future.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package clone

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domsnap.clone'.
func tracer() tracing.Trace {
	return tracing.Select("domsnap.clone")
}
