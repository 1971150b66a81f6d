package style

import (
	"strings"

	"golang.org/x/net/html"
)

// DisplayPropertyForHTMLNode returns the user-agent default `display` CSS
// property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	if node.Namespace == "svg" {
		return "inline"
	}
	switch strings.ToLower(node.Data) {
	case "head", "script", "style", "template", "title", "meta", "link",
		"base", "noscript", "datalist", "param", "source", "track":
		return "none"
	case "html", "address", "article", "aside", "blockquote", "body",
		"details", "dialog", "dd", "div", "dl", "dt", "fieldset",
		"figcaption", "figure", "footer", "form", "h1", "h2", "h3", "h4",
		"h5", "h6", "header", "hgroup", "hr", "main", "menu", "nav", "ol",
		"p", "pre", "section", "summary", "ul":
		return "block"
	case "li":
		return "list-item"
	case "table":
		return "table"
	case "tr":
		return "table-row"
	case "td", "th":
		return "table-cell"
	case "thead":
		return "table-header-group"
	case "tbody":
		return "table-row-group"
	case "tfoot":
		return "table-footer-group"
	case "button", "input", "select", "textarea", "meter", "progress":
		return "inline-block"
	case "slot":
		return "contents"
	}
	return "inline"
}

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "list-style") || strings.HasPrefix(key, "font") {
		return true
	}
	if strings.HasPrefix(key, "--") { // custom properties always inherit
		return true
	}
	switch key {
	case "color", "cursor", "direction", "flow-into", "flow-from":
		return true
	case "letter-spacing", "line-height", "quotes", "visibility", "white-space":
		return true
	case "word-spacing", "word-break", "word-wrap", "overflow-wrap":
		return true
	case "text-align", "text-indent", "text-transform", "text-shadow":
		return true
	case "border-collapse", "border-spacing", "caption-side", "empty-cells":
		return true
	}
	return false
}
