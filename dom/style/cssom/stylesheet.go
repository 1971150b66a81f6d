package cssom

import "github.com/npillmayer/domsnap/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// resolution of styles, we introduce an interface for CSS stylesheets.
// Clients will have to provide a concrete implementation of this
// interface (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the style rules of a stylesheet
}

// Rule is the type stylesheets consists of. Only style rules (selectors
// plus declarations) are represented; at-rules are skipped by
// implementations.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}
