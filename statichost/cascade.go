package statichost

import (
	"sort"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/domsnap/dom"
	"github.com/npillmayer/domsnap/dom/style"
	"github.com/npillmayer/domsnap/dom/style/cssom"
	"golang.org/x/net/html"
)

// resolved is a resolved style which may hide its serialized form.
type resolved struct {
	*style.Declaration
	serialize bool
}

func (r resolved) CSSText() string {
	if !r.serialize {
		return ""
	}
	return r.Declaration.CSSText()
}

// ComputedStyle resolves the style of an element.
func (h *Host) ComputedStyle(el *dom.Node) (style.Computed, error) {
	if !el.IsElement() {
		return nil, ErrNotAnElement
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return resolved{Declaration: h.resolve(el), serialize: h.serialize}, nil
}

type match struct {
	rule        cssom.Rule
	specificity cascadia.Specificity
}

// matchingRules returns the rules of el's scope which match el (or one of
// its pseudo-elements), ordered by specificity and source order.
func (h *Host) matchingRules(el *dom.Node, pseudo string) []match {
	var matches []match
	for _, rule := range h.rulesFor(scopeOf(el)) {
		var best cascadia.Specificity
		found := false
		for _, sel := range h.selectorGroup(rule.Selector()) {
			if sel.PseudoElement() != pseudo || !sel.Match(el.HTML()) {
				continue
			}
			if spec := sel.Specificity(); !found || best.Less(spec) {
				best, found = spec, true
			}
		}
		if found {
			matches = append(matches, match{rule: rule, specificity: best})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].specificity.Less(matches[j].specificity)
	})
	return matches
}

func applyRules(decl *style.Declaration, matches []match, important bool) {
	prio := ""
	if important {
		prio = style.Important
	}
	for _, m := range matches {
		for _, key := range m.rule.Properties() {
			if m.rule.IsImportant(key) == important {
				decl.SetProperty(key, m.rule.Value(key), prio)
			}
		}
	}
}

func applyInline(decl, inline *style.Declaration, important bool) {
	for _, kv := range inline.Properties() {
		if (kv.Priority == style.Important) == important {
			decl.SetProperty(kv.Key, kv.Value, kv.Priority)
		}
	}
}

// resolve runs the cascade for an element. The caller must hold the lock.
func (h *Host) resolve(el *dom.Node) *style.Declaration {
	var parent *style.Declaration
	if p := parentElement(el); p != nil {
		parent = h.resolve(p)
	}
	decl := style.NewDeclaration()
	for _, kv := range parent.Properties() {
		if style.IsCascading(kv.Key) {
			decl.SetProperty(kv.Key, kv.Value, "")
		}
	}
	decl.SetProperty("display", style.DisplayPropertyForHTMLNode(el.HTML()), "")
	matches := h.matchingRules(el, "")
	var inline *style.Declaration
	if text, ok := el.Attr("style"); ok {
		var err error
		if inline, err = style.ParseDeclaration(text); err != nil {
			tracer().Infof("ignoring style attribute of %s: %v", el, err)
		}
	}
	applyRules(decl, matches, false)
	applyInline(decl, inline, false)
	applyRules(decl, matches, true)
	applyInline(decl, inline, true)
	resolveKeywords(decl, parent)
	return decl
}

// resolvePseudo resolves the style of a pseudo-element ("before" or
// "after") of el. The caller must hold the lock.
func (h *Host) resolvePseudo(el *dom.Node, pseudo string) *style.Declaration {
	matches := h.matchingRules(el, pseudo)
	if len(matches) == 0 {
		return nil
	}
	decl := style.NewDeclaration()
	applyRules(decl, matches, false)
	applyRules(decl, matches, true)
	resolveKeywords(decl, h.resolve(el))
	return decl
}

// resolveKeywords replaces the CSS-wide keywords inherit, initial and
// unset.
func resolveKeywords(decl, parent *style.Declaration) {
	for _, kv := range decl.Properties() {
		inherit := kv.Value.IsInherit() ||
			kv.Value == "unset" && style.IsCascading(kv.Key)
		switch {
		case inherit:
			decl.SetProperty(kv.Key, parent.GetPropertyValue(kv.Key), kv.Priority)
		case kv.Value.IsInitial() || kv.Value == "unset":
			decl.RemoveProperty(kv.Key)
			if kv.Key == "display" {
				decl.SetProperty("display", "inline", kv.Priority)
			}
		}
	}
}

// parentElement returns the element styles are inherited from: the parent
// element, or the host of a shadow root. Top-level elements of a document
// inherit nothing.
func parentElement(el *dom.Node) *dom.Node {
	p := el.ParentNode()
	if p == nil {
		return nil
	}
	if p.NodeType() == html.DocumentNode {
		return p.Host()
	}
	if !p.IsElement() {
		return nil
	}
	return p
}
