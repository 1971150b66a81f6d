package domsnap

import (
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/domsnap/clone"
	"github.com/npillmayer/domsnap/dom"
	"github.com/npillmayer/domsnap/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/domsnap/statichost"
)

// ErrNoRoot is returned if the root selector does not match any element.
var ErrNoRoot = errors.New("domsnap: root selector matches nothing")

// Config configures a snapshot.
type Config struct {
	Root        string                 // selector for the root element, default "body"
	Exclude     []string               // selectors for elements to leave out
	StyleSheets []string               // additional author CSS
	Serialize   bool                   // let resolved styles offer a serialized form
	Diagnostics func(clone.Diagnostic) // optional sink for capture failures
}

// Snapshot parses an HTML document and clones the subtree selected by
// cfg.Root. The result is nil if the root itself is excluded.
func Snapshot(r io.Reader, cfg Config) (*clone.Node, error) {
	doc, err := dom.Parse(r)
	if err != nil {
		return nil, err
	}
	return SnapshotDocument(doc, cfg)
}

// SnapshotDocument clones the subtree of a live document selected by
// cfg.Root.
func SnapshotDocument(doc *dom.Node, cfg Config) (*clone.Node, error) {
	selector := cfg.Root
	if selector == "" {
		selector = "body"
	}
	root, err := doc.QuerySelector(selector)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoRoot, selector)
	}
	filter, err := excluding(cfg.Exclude)
	if err != nil {
		return nil, err
	}
	var opts []statichost.Option
	for _, text := range cfg.StyleSheets {
		sheet, err := douceuradapter.Parse(text)
		if err != nil {
			return nil, err
		}
		opts = append(opts, statichost.WithStyleSheet(sheet))
	}
	if cfg.Serialize {
		opts = append(opts, statichost.WithSerializedStyles())
	}
	host := statichost.New(doc, opts...).Capabilities()
	host.Diagnostics = cfg.Diagnostics
	tracer().Debugf("snapshot of %s, excluding %v", root, cfg.Exclude)
	return clone.New(host).Clone(root, clone.Options{Filter: filter})
}

// excluding creates a filter which rejects elements matching any of the
// given selectors. Without selectors, no filter is needed.
func excluding(selectors []string) (func(*dom.Node) bool, error) {
	if len(selectors) == 0 {
		return nil, nil
	}
	matchers := make([]cascadia.Matcher, 0, len(selectors))
	for _, s := range selectors {
		m, err := cascadia.Compile(s)
		if err != nil {
			return nil, fmt.Errorf("domsnap: invalid exclude selector %q: %w", s, err)
		}
		matchers = append(matchers, m)
	}
	return func(n *dom.Node) bool {
		for _, m := range matchers {
			if m.Match(n.HTML()) {
				return false
			}
		}
		return true
	}, nil
}

// Render writes the markup of a snapshot to w.
func Render(w io.Writer, snap *clone.Node) error {
	return clone.Render(w, snap)
}
