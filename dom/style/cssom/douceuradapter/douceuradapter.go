/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/domsnap/dom"
	"github.com/npillmayer/domsnap/dom/style"
	"github.com/npillmayer/domsnap/dom/style/cssom"
	"github.com/npillmayer/domsnap/tree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'domsnap.style'.
func tracer() tracing.Trace {
	return tracing.Select("domsnap.style")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS text into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("douceuradapter: cannot parse stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok {
		tracer().Errorf("cannot append rules of foreign stylesheet type %T", other)
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the style rules of a stylesheet. At-rules (@media,
// @font-face, …) are skipped.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("skipping at-rule %s", r.Name)
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, style.NormalizeKey(d.Property))
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If a key is declared more than once, the last declaration wins.
func (r Rule) Value(key string) style.Property {
	if d := r.last(key); d != nil {
		return style.Property(d.Value)
	}
	return style.NullStyle
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	if d := r.last(key); d != nil {
		return d.Important
	}
	return false
}

func (r Rule) last(key string) *css.Declaration {
	key = style.NormalizeKey(key)
	decl := r.Declarations
	for i := len(decl) - 1; i >= 0; i-- {
		if style.NormalizeKey(decl[i].Property) == key {
			return decl[i]
		}
	}
	return nil
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements visits a document or shadow root and searches for
// embedded <style>s. It returns the content of style-elements as style
// sheets, in document order. Neither shadow trees nor nested documents
// are entered: they form style scopes of their own.
//
// Style elements which fail to parse are skipped.
func ExtractStyleElements(scope *dom.Node) []*CSSStyles {
	var sheets []*CSSStyles
	_ = tree.Walk(scope.TreeNode(), func(n *tree.Node[*dom.Node], _ int) error {
		if !n.Payload.Is(atom.Style) {
			return nil
		}
		text := n.Payload.TextContent()
		c, err := parser.Parse(text)
		if err != nil {
			tracer().Infof("skipping malformed style element: %v", err)
			return tree.SkipChildren
		}
		sheets = append(sheets, Wrap(c))
		return tree.SkipChildren
	})
	return sheets
}

// IsStyleScope is true for nodes which own stylesheets: documents and
// shadow roots.
func IsStyleScope(n *dom.Node) bool {
	return n != nil && n.NodeType() == html.DocumentNode
}
