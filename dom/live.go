package dom

import (
	"image"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Default sizes of replaced elements without width/height attributes.
const (
	DefaultReplacedWidth  = 300
	DefaultReplacedHeight = 150
)

// initLiveState sets the live state of an element to what a browser would
// derive from markup alone.
func initLiveState(n *Node) {
	if !n.IsElement() || n.Namespace() != "" {
		return
	}
	switch n.DataAtom() {
	case atom.Input:
		n.live.value, _ = n.Attr("value")
	case atom.Canvas, atom.Video, atom.Iframe:
		n.live.clientWidth = intAttr(n, "width", DefaultReplacedWidth)
		n.live.clientHeight = intAttr(n, "height", DefaultReplacedHeight)
		if n.DataAtom() == atom.Video {
			n.live.currentSrc, _ = n.Attr("src")
		}
	}
}

// initFromChildren completes the live state of elements which depend on
// their children. It is called once the subtree below n is complete.
func initFromChildren(n *Node) {
	if !n.IsElement() || n.Namespace() != "" {
		return
	}
	switch n.DataAtom() {
	case atom.Textarea:
		n.live.value = n.TextContent()
	case atom.Select:
		n.live.value = defaultSelectValue(n)
	case atom.Video:
		if n.live.currentSrc == "" {
			for _, ch := range n.ChildNodes() {
				if src, ok := ch.Attr("src"); ok && ch.Is(atom.Source) {
					n.live.currentSrc = src
					break
				}
			}
		}
	}
}

func defaultSelectValue(sel *Node) string {
	var first *Node
	for _, opt := range options(sel) {
		if first == nil {
			first = opt
		}
		if _, selected := opt.Attr("selected"); selected {
			return OptionValue(opt)
		}
	}
	if first != nil {
		return OptionValue(first)
	}
	return ""
}

// options collects the option elements of a select, including those
// grouped by optgroups.
func options(sel *Node) []*Node {
	var opts []*Node
	for _, ch := range sel.ChildNodes() {
		if ch.Is(atom.Option) {
			opts = append(opts, ch)
		} else if ch.Is(atom.Optgroup) {
			opts = append(opts, options(ch)...)
		}
	}
	return opts
}

// OptionValue returns the value of an option element: its value attribute
// or, lacking one, its text.
func OptionValue(opt *Node) string {
	if v, ok := opt.Attr("value"); ok {
		return v
	}
	return strings.TrimSpace(strings.Join(strings.Fields(opt.TextContent()), " "))
}

func intAttr(n *Node, key string, dflt int) int {
	if v, ok := n.Attr(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && i >= 0 {
			return i
		}
	}
	return dflt
}

// --- Form state ------------------------------------------------------------

// Value returns the live value of a form control.
func (n *Node) Value() string {
	return n.live.value
}

// SetValue sets the live value of a form control. The markup is not
// changed, just as with a user typing into an input.
func (n *Node) SetValue(v string) {
	n.live.value = v
}

// --- Scrolling and geometry ------------------------------------------------

// Scroll returns the live scroll offsets (scrollLeft, scrollTop).
func (n *Node) Scroll() (left, top float64) {
	return n.live.scrollLeft, n.live.scrollTop
}

// SetScroll sets the live scroll offsets.
func (n *Node) SetScroll(left, top float64) {
	n.live.scrollLeft, n.live.scrollTop = left, top
}

// ClientSize returns the size of an element's client box in pixels.
func (n *Node) ClientSize() (width, height int) {
	return n.live.clientWidth, n.live.clientHeight
}

// SetClientSize sets the size of an element's client box.
func (n *Node) SetClientSize(width, height int) {
	n.live.clientWidth, n.live.clientHeight = width, height
}

// --- Raster surfaces and media ---------------------------------------------

// Bitmap returns the current pixel content of a raster surface (canvas)
// and an indicator whether it has been tainted by cross-origin content.
func (n *Node) Bitmap() (image.Image, bool) {
	return n.live.bitmap, n.live.tainted
}

// SetBitmap sets the pixel content of a raster surface.
func (n *Node) SetBitmap(img image.Image, tainted bool) {
	n.live.bitmap, n.live.tainted = img, tainted
}

// CurrentSrc returns the source a media element is currently playing.
func (n *Node) CurrentSrc() string {
	return n.live.currentSrc
}

// SetCurrentSrc sets the current source of a media element.
func (n *Node) SetCurrentSrc(src string) {
	n.live.currentSrc = src
}

// Frame returns the decoded frame a media element is paused at, if any.
func (n *Node) Frame() image.Image {
	return n.live.frame
}

// SetFrame sets the decoded current frame of a media element.
func (n *Node) SetFrame(frame image.Image) {
	n.live.frame = frame
}

// --- Shadow trees and slots ------------------------------------------------

// AttachShadow creates and attaches an empty shadow root to an element.
// An existing shadow root is returned unchanged.
func (n *Node) AttachShadow() *Node {
	if n.shadow == nil {
		n.shadow = newNode(&html.Node{Type: html.DocumentNode})
		n.shadow.host = n
	}
	return n.shadow
}

// ShadowRoot returns the shadow root of an element, or nil.
func (n *Node) ShadowRoot() *Node {
	return n.shadow
}

// Host returns the host element of a shadow root, or nil.
func (n *Node) Host() *Node {
	return n.host
}

// IsSlot is true for HTML slot elements.
func (n *Node) IsSlot() bool {
	return n.IsElement() && n.Namespace() == "" && n.Tag() == "slot"
}

// AssignedNodes returns the nodes assigned to a slot, in order.
func (n *Node) AssignedNodes() []*Node {
	return n.assigned
}

// Assign sets the nodes assigned to a slot (manual slot assignment).
func (n *Node) Assign(nodes ...*Node) {
	n.assigned = nodes
}

// AssignSlots distributes the children of a shadow host to the slots of its
// shadow tree: elements with a slot attribute go to the first slot of that
// name, everything else to the first unnamed slot. Whitespace-only text is
// not assigned.
func AssignSlots(host *Node) {
	root := host.ShadowRoot()
	if root == nil {
		return
	}
	slots := make(map[string]*Node)
	var order []*Node
	collectSlots(root, slots, &order)
	for _, slot := range order {
		slot.assigned = nil
	}
	for _, ch := range host.ChildNodes() {
		name := ""
		switch ch.NodeType() {
		case html.ElementNode:
			name, _ = ch.Attr("slot")
		case html.TextNode:
			if strings.TrimSpace(ch.Data()) == "" {
				continue
			}
		default:
			continue
		}
		if slot, ok := slots[name]; ok {
			slot.assigned = append(slot.assigned, ch)
		}
	}
}

func collectSlots(n *Node, slots map[string]*Node, order *[]*Node) {
	for _, ch := range n.ChildNodes() {
		if ch.IsSlot() {
			name, _ := ch.Attr("name")
			if _, exists := slots[name]; !exists {
				slots[name] = ch
				*order = append(*order, ch)
			}
		}
		collectSlots(ch, slots, order)
	}
}

// --- Nested documents ------------------------------------------------------

// SetContentDocument sets the nested document of an embedding element.
// A non-nil err marks the document as inaccessible.
func (n *Node) SetContentDocument(doc *Node, err error) {
	n.content, n.contentErr = doc, err
}

// ContentDocument returns the nested document of an embedding element.
// For inaccessible documents an error is returned (usually ErrCrossOrigin).
// Elements without a nested document return (nil, nil).
func (n *Node) ContentDocument() (*Node, error) {
	if n.contentErr != nil {
		return nil, n.contentErr
	}
	return n.content, nil
}
