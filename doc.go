/*
Package domsnap takes static snapshots of HTML documents.

A snapshot is a detached clone of a subtree of a document, with all of
its visual state made explicit: resolved styles are written to style
attributes, canvases and videos become images, iframes are inlined, shadow
trees are flattened and form values are written to markup. See package
clone for the cloning engine and package statichost for the style
resolution of static documents.

Typical usage:

    snap, err := domsnap.Snapshot(r, domsnap.Config{
        Root:    "#main",
        Exclude: []string{".ad", "script"},
    })
    ...
    err = domsnap.Render(w, snap)

Clients which want to simulate live state (scroll offsets, values typed
into form controls, canvas bitmaps) parse the document with dom.Parse,
set up the state, and call SnapshotDocument.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domsnap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domsnap.clone'.
func tracer() tracing.Trace {
	return tracing.Select("domsnap.clone")
}
