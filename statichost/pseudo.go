package statichost

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/domsnap/clone"
	"github.com/npillmayer/domsnap/dom"
)

var pseudoElements = [...]string{"before", "after"}

// ClonePseudoElements materializes generated content of an element. For
// every ::before and ::after with content, the clone gets a unique class
// and a <style> child which re-creates the pseudo-element for that class.
func (h *Host) ClonePseudoElements(src *dom.Node, dst *clone.Node) {
	if dst.Style == nil || dst.IsVoid() {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, pseudo := range pseudoElements {
		decl := h.resolvePseudo(src, pseudo)
		content := decl.GetPropertyValue("content")
		if content.IsEmpty() || content == "none" || content == "normal" {
			continue
		}
		h.pseudoSeq++
		class := "domsnap-" + strconv.FormatInt(int64(h.pseudoSeq), 36)
		classes, _ := dst.Attribute("class")
		dst.SetAttribute("class", strings.TrimSpace(classes+" "+class))
		sheet := clone.NewElement("style", "")
		sheet.AppendChild(clone.NewText(fmt.Sprintf(".%s::%s { %s }", class, pseudo, decl.CSSText())))
		dst.AppendChild(sheet)
		tracer().Debugf("cloned ::%s of %s as .%s", pseudo, src, class)
	}
}
