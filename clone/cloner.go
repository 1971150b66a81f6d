package clone

import (
	"fmt"
	"sync"

	"github.com/npillmayer/domsnap/dom"
	"github.com/npillmayer/domsnap/dom/style"
	"github.com/npillmayer/domsnap/dom/style/css"
	"golang.org/x/net/html"
)

// Cloner clones live subtrees. A Cloner holds no state besides its host
// capabilities and may be used for any number of clone operations.
type Cloner struct {
	host Host
}

// New creates a Cloner for a host. Missing capabilities are replaced by
// defaults which fail with ErrNoStyleResolver, ErrNoExporter or
// ErrNoFrameGrabber. Diagnostics are traced if no sink is given.
func New(host Host) *Cloner {
	if host.Styles == nil {
		host.Styles = noStyles{}
	}
	if host.Raster == nil {
		host.Raster = noExporter{}
	}
	if host.Frames == nil {
		host.Frames = noFrames{}
	}
	if host.Pseudo == nil {
		host.Pseudo = noPseudo{}
	}
	if host.Diagnostics == nil {
		host.Diagnostics = traceDiagnostic
	}
	return &Cloner{host: host}
}

// Clone creates a static copy of n and its subtree.
//
// Text nodes are copied, other non-element nodes are copied without their
// children. Elements which are rejected by opts.Filter or have a resolved
// display of "none" are excluded, together with their subtree; Clone then
// returns nil. Errors of the style resolver abort the operation and are
// returned.
func (c *Cloner) Clone(n *dom.Node, opts Options) (*Node, error) {
	if n == nil {
		return nil, nil
	}
	switch n.NodeType() {
	case html.TextNode:
		return NewText(n.Data()), nil
	case html.ElementNode:
		return c.cloneElement(n, opts)
	}
	return shallowClone(n), nil
}

func (c *Cloner) cloneElement(n *dom.Node, opts Options) (*Node, error) {
	if opts.Filter != nil && !opts.Filter(n) {
		tracer().Debugf("%s rejected by filter", n)
		return nil, nil
	}
	computed, err := c.host.Styles.ComputedStyle(n)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve style of %s: %w", n, err)
	}
	if computed == nil {
		computed = style.NewDeclaration()
	}
	if css.IsDisplayNone(computed.GetPropertyValue("display")) {
		return nil, nil
	}
	kind := KindOf(n)
	clone := c.materialize(n, kind)
	if clone == nil {
		return nil, nil
	}
	projectStyle(kind, clone, computed)
	c.host.Pseudo.ClonePseudoElements(n, clone)
	captureInputValue(n, clone)
	if err := c.cloneChildren(n, kind, clone, opts); err != nil {
		return nil, err
	}
	captureSelectValue(n, clone)
	compensateScroll(n, clone)
	return clone, nil
}

func (c *Cloner) report(n *dom.Node, kind Kind, err error) {
	c.host.Diagnostics(Diagnostic{Node: n, Kind: kind, Err: err})
}

// Promise starts cloning n on a separate goroutine and returns a future.
// Calling the future blocks until the clone is complete. The future may be
// called more than once and will always return the same result.
func (c *Cloner) Promise(n *dom.Node, opts Options) func() (*Node, error) {
	type result struct {
		node *Node
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		node, err := c.Clone(n, opts)
		ch <- result{node, err}
	}()
	var once sync.Once
	var r result
	return func() (*Node, error) {
		once.Do(func() { r = <-ch })
		return r.node, r.err
	}
}
