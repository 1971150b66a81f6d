/*
Package statichost provides the host capabilities of package clone for
static documents.

A static document is a tree built by dom.Parse, optionally with live state
set by clients (form values, scroll offsets, bitmaps, frames). Host
resolves styles from the document's <style> elements and inline style
attributes, exports canvas bitmaps as PNG data URIs and hands out media
frames.

Style resolution is a simplified cascade: inherited properties of the
parent, the user agent's display default, the matching rules of the
element's style scope ordered by importance, specificity and source order,
and finally the inline style. Every document, nested document and shadow
root is a style scope of its own.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package statichost

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domsnap.host'.
func tracer() tracing.Trace {
	return tracing.Select("domsnap.host")
}

// ErrNoFrame is returned for media elements without a current frame.
var ErrNoFrame = errors.New("statichost: media element has no current frame")

// ErrNotAnElement is returned when resolving the style of a non-element.
var ErrNotAnElement = errors.New("statichost: not an element")
