package clone

import (
	"errors"
	"fmt"
	"image"

	"github.com/npillmayer/domsnap/dom"
	"github.com/npillmayer/domsnap/dom/style"
)

// StyleResolver resolves the final style of an element, after the cascade
// and inheritance have been applied.
type StyleResolver interface {
	ComputedStyle(*dom.Node) (style.Computed, error)
}

// RasterExporter exports the pixels of a raster surface (<canvas>) as a
// data URI. A blank surface exports as "data:,".
type RasterExporter interface {
	ToDataURL(*dom.Node) (string, error)
}

// FrameGrabber returns the current, paused frame of a media element.
type FrameGrabber interface {
	CurrentFrame(*dom.Node) (image.Image, error)
}

// PseudoElementCloner materializes the ::before and ::after content of
// src into dst.
type PseudoElementCloner interface {
	ClonePseudoElements(src *dom.Node, dst *Node)
}

// Host bundles the capabilities a Cloner needs from its environment.
// Styles is mandatory, all other fields may be left nil.
type Host struct {
	Styles      StyleResolver
	Raster      RasterExporter
	Frames      FrameGrabber
	Pseudo      PseudoElementCloner
	Diagnostics func(Diagnostic) // sink for contained capture failures
}

// Options control a single clone operation.
type Options struct {
	// Filter decides if an element (and its subtree) is included.
	// A nil filter includes everything.
	Filter func(*dom.Node) bool
}

// Errors returned by the default capabilities.
var (
	ErrNoStyleResolver = errors.New("clone: host has no style resolver")
	ErrNoExporter      = errors.New("clone: host cannot export raster surfaces")
	ErrNoFrameGrabber  = errors.New("clone: host cannot grab media frames")
)

// Diagnostic reports a capture failure which has been contained at a node.
type Diagnostic struct {
	Node *dom.Node // source node
	Kind Kind      // kind of the source node
	Err  error
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case KindRaster:
		return fmt.Sprintf("unable to inline canvas contents of %s: %v", d.Node, d.Err)
	case KindMedia:
		return fmt.Sprintf("unable to capture video frame of %s: %v", d.Node, d.Err)
	}
	return fmt.Sprintf("unable to clone %s: %v", d.Node, d.Err)
}

func traceDiagnostic(d Diagnostic) {
	tracer().Errorf("%s", d)
}

// --- Default capabilities ---------------------------------------------------

type noStyles struct{}

func (noStyles) ComputedStyle(*dom.Node) (style.Computed, error) {
	return nil, ErrNoStyleResolver
}

type noExporter struct{}

func (noExporter) ToDataURL(*dom.Node) (string, error) {
	return "", ErrNoExporter
}

type noFrames struct{}

func (noFrames) CurrentFrame(*dom.Node) (image.Image, error) {
	return nil, ErrNoFrameGrabber
}

type noPseudo struct{}

func (noPseudo) ClonePseudoElements(*dom.Node, *Node) {}
