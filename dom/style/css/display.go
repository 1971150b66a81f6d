package css

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/npillmayer/domsnap/dom/style"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	BlockMode       DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // CSS inline context
	ContentsMode    DisplayMode = 0x0008 // CSS display = contents, no box
	FlowRootMode    DisplayMode = 0x0010 // CSS flow-root display property
	ListItemMode    DisplayMode = 0x0020 // CSS list-item display
	FlexMode        DisplayMode = 0x0040 // CSS inner display = flex
	GridMode        DisplayMode = 0x0080 // CSS inner display = grid
	TableMode       DisplayMode = 0x0100 // CSS table display property (inner or outer)
	InnerBlockMode  DisplayMode = 0x0200 // CSS inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, ContentsMode, ListItemMode, FlowRootMode,
	FlexMode, GridMode, TableMode, InnerBlockMode, InnerInlineMode,
}

var displayModeNames = map[DisplayMode]string{
	DisplayNone:     "none",
	BlockMode:       "block",
	InlineMode:      "inline",
	ContentsMode:    "contents",
	ListItemMode:    "list-item",
	FlowRootMode:    "flow-root",
	FlexMode:        "flex",
	GridMode:        "grid",
	TableMode:       "table",
	InnerBlockMode:  "inner-block",
	InnerInlineMode: "inner-inline",
}

func (disp DisplayMode) String() string {
	if name, ok := displayModeNames[disp]; ok {
		return name
	}
	if disp == NoMode {
		return "unset"
	}
	return disp.FullString()
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var b bytes.Buffer
	first := true
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(displayModeNames[m])
		}
	}
	return b.String()
}

// ParseDisplay returns mode flags from a display property string (outer and inner).
// Unknown values are reported as an error, together with BlockMode.
func ParseDisplay(display style.Property) (DisplayMode, error) {
	d := strings.ToLower(strings.TrimSpace(display.String()))
	switch d {
	case "":
		return NoMode, nil
	case "none":
		return DisplayNone, nil
	case "contents":
		return ContentsMode, nil
	case "block":
		return BlockMode | InnerBlockMode, nil
	case "inline":
		return InlineMode | InnerInlineMode, nil
	case "list-item":
		return ListItemMode | BlockMode, nil
	case "block-inline":
		return BlockMode | InnerInlineMode, nil
	case "inline-block":
		return InlineMode | InnerBlockMode, nil
	case "flow-root":
		return BlockMode | FlowRootMode, nil
	case "flex":
		return BlockMode | FlexMode, nil
	case "inline-flex":
		return InlineMode | FlexMode, nil
	case "grid":
		return BlockMode | GridMode, nil
	case "inline-grid":
		return InlineMode | GridMode, nil
	case "table":
		return BlockMode | TableMode, nil
	case "inline-table":
		return InlineMode | TableMode, nil
	}
	if strings.HasPrefix(d, "table-") {
		return TableMode, nil
	}
	return BlockMode, fmt.Errorf("unknown display mode: %s", d)
}

// IsDisplayNone is a predicate for resolved display values which suppress
// the box of an element and of all of its descendants.
func IsDisplayNone(display style.Property) bool {
	mode, err := ParseDisplay(display)
	if err != nil {
		tracer().Debugf("display: %v", err)
	}
	return mode == DisplayNone
}
