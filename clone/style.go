package clone

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/domsnap/dom/style"
	"github.com/npillmayer/domsnap/dom/style/css"
)

// projectStyle copies a resolved style into the style declaration of a
// clone. Clones without a style declaration are left alone.
//
// If the resolved style offers a serialized form, it is assigned as a whole
// and transform-origin is copied on top of it. Otherwise properties are
// copied one by one, together with their priority.
func projectStyle(kind Kind, clone *Node, computed style.Computed) {
	target := clone.Style
	if target == nil {
		return
	}
	if text := computed.CSSText(); text != "" {
		if err := target.SetCSSText(text); err == nil {
			target.SetProperty("transform-origin", computed.GetPropertyValue("transform-origin"), "")
			return
		}
		tracer().Debugf("cannot assign serialized style to %s, copying properties", clone)
	}
	for i := 0; i < computed.Length(); i++ {
		key := computed.Item(i)
		value := computed.GetPropertyValue(key)
		switch {
		case key == "font-size" && value.HasUnit("px"):
			value = reduceFontSize(value)
		case key == "display" && kind == KindEmbedded && value == "inline":
			value = "block"
		case key == "d":
			if d, ok := clone.Attribute("d"); ok && d != "" {
				value = style.Property("path(" + d + ")")
			}
		}
		target.SetProperty(key, value, computed.GetPropertyPriority(key))
	}
}

// reduceFontSize rounds a pixel font size down and subtracts a tenth of a
// pixel, which keeps text from wrapping differently when rendered from the
// clone. Values which are not a plain number of pixels are returned as is.
func reduceFontSize(value style.Property) style.Property {
	s := strings.ToLower(strings.TrimSpace(value.String()))
	px, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "px")), 64)
	if err != nil {
		return value
	}
	return style.Property(css.FormatNumber(math.Floor(px)-0.1) + "px")
}
