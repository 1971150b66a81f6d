package statichost

import (
	"fmt"
	"image"
	"sync"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/domsnap/clone"
	"github.com/npillmayer/domsnap/dom"
	"github.com/npillmayer/domsnap/dom/raster"
	"github.com/npillmayer/domsnap/dom/style/cssom"
	"github.com/npillmayer/domsnap/dom/style/cssom/douceuradapter"
)

// Host serves style resolution, raster export and frame grabbing for a
// static document. It is safe for use from more than one goroutine, but
// stylesheets are read only once per style scope: <style> elements added
// after the first style resolution of a scope are ignored.
type Host struct {
	mu        sync.Mutex
	doc       *dom.Node
	serialize bool
	author    []cssom.StyleSheet
	scopes    map[*dom.Node][]cssom.Rule
	selectors map[string]cascadia.SelectorGroup
	pseudoSeq int
}

// Option configures a Host.
type Option func(*Host)

// WithSerializedStyles makes resolved styles offer their serialized form
// (CSSText), enabling the cloner's fast path.
func WithSerializedStyles() Option {
	return func(h *Host) {
		h.serialize = true
	}
}

// WithStyleSheet adds an author stylesheet to the top-level document.
// Its rules precede the rules of the document's <style> elements.
func WithStyleSheet(sheet cssom.StyleSheet) Option {
	return func(h *Host) {
		if sheet != nil && !sheet.Empty() {
			h.author = append(h.author, sheet)
		}
	}
}

// New creates a host for a document.
func New(doc *dom.Node, opts ...Option) *Host {
	h := &Host{
		doc:       doc,
		scopes:    make(map[*dom.Node][]cssom.Rule),
		selectors: make(map[string]cascadia.SelectorGroup),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Capabilities returns the host as a set of capabilities for a cloner.
func (h *Host) Capabilities() clone.Host {
	return clone.Host{
		Styles: h,
		Raster: h,
		Frames: h,
		Pseudo: h,
	}
}

// ToDataURL exports the bitmap of a canvas as a PNG data URI. Canvases
// without a bitmap export as a blank data URI, tainted canvases fail with
// dom.ErrTainted.
func (h *Host) ToDataURL(el *dom.Node) (string, error) {
	img, tainted := el.Bitmap()
	if tainted {
		return "", fmt.Errorf("cannot export %s: %w", el, dom.ErrTainted)
	}
	if img == nil {
		return raster.Blank, nil
	}
	return raster.SurfaceFor(img).DataURL()
}

// CurrentFrame returns the current frame of a media element.
func (h *Host) CurrentFrame(el *dom.Node) (image.Image, error) {
	frame := el.Frame()
	if frame == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoFrame, el)
	}
	return frame, nil
}

// rulesFor returns the rules of a style scope, in source order. The
// caller must hold the lock.
func (h *Host) rulesFor(scope *dom.Node) []cssom.Rule {
	if rules, ok := h.scopes[scope]; ok {
		return rules
	}
	var rules []cssom.Rule
	if scope == h.doc {
		for _, sheet := range h.author {
			rules = append(rules, sheet.Rules()...)
		}
	}
	for _, sheet := range douceuradapter.ExtractStyleElements(scope) {
		rules = append(rules, sheet.Rules()...)
	}
	tracer().Debugf("style scope %s has %d rules", scope, len(rules))
	h.scopes[scope] = rules
	return rules
}

// selectorGroup compiles and caches a selector group. Selectors which do
// not compile never match. The caller must hold the lock.
func (h *Host) selectorGroup(selector string) cascadia.SelectorGroup {
	if group, ok := h.selectors[selector]; ok {
		return group
	}
	group, err := cascadia.ParseGroupWithPseudoElements(selector)
	if err != nil {
		tracer().Infof("ignoring rule with invalid selector %q: %v", selector, err)
		group = nil
	}
	h.selectors[selector] = group
	return group
}

// scopeOf returns the root of the tree an element belongs to: a document
// or a shadow root.
func scopeOf(n *dom.Node) *dom.Node {
	for p := n.ParentNode(); p != nil; p = p.ParentNode() {
		n = p
	}
	return n
}
