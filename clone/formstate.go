package clone

import (
	"github.com/npillmayer/domsnap/dom"
	"golang.org/x/net/html/atom"
)

// captureInputValue writes the live value of a form control into its clone.
func captureInputValue(src *dom.Node, clone *Node) {
	switch {
	case src.Is(atom.Textarea):
		clone.SetTextContent(src.Value())
	case src.Is(atom.Input):
		clone.SetAttribute("value", src.Value())
	}
}

// captureSelectValue marks the cloned option matching the live value of a
// select element as selected. Options are matched by their value attribute.
func captureSelectValue(src *dom.Node, clone *Node) {
	if !src.Is(atom.Select) {
		return
	}
	value := src.Value()
	var options []*Node
	var selected *Node
	for _, ch := range clone.ElementChildren() {
		if ch.DataAtom != atom.Option {
			continue
		}
		options = append(options, ch)
		if v, ok := ch.Attribute("value"); ok && v == value && selected == nil {
			selected = ch
		}
	}
	if selected == nil {
		return
	}
	for _, opt := range options {
		opt.RemoveAttribute("selected")
	}
	selected.SetAttribute("selected", "")
}
