package clone

import (
	"github.com/npillmayer/domsnap/dom"
	"github.com/npillmayer/domsnap/dom/style"
	"github.com/npillmayer/domsnap/dom/style/css"
)

// compensateScroll shifts the element children of a clone by the live
// scroll offsets of its source, so that the clone shows the scrolled
// viewport. Iteration stops at the first child without a style.
func compensateScroll(src *dom.Node, clone *Node) {
	left, top := src.Scroll()
	if left == 0 && top == 0 {
		return
	}
	for _, ch := range clone.ElementChildren() {
		if ch.Style == nil {
			tracer().Debugf("scroll compensation of %s stops at %s", src, ch)
			return
		}
		m, err := css.ParseTransform(ch.Style.GetPropertyValue("transform"))
		if err != nil {
			tracer().Infof("cannot compensate scroll for %s: %v", ch, err)
			continue
		}
		ch.Style.SetProperty("transform", style.Property(m.Translate(-left, -top).String()), "")
	}
}
