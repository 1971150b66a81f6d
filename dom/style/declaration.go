package style

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Computed is a read-only view onto a resolved style, as handed out by a
// host's style resolution. Properties are enumerable in a stable order.
//
// CSSText returns the full serialized form of the style, if the host
// provides one, and the empty string otherwise.
type Computed interface {
	Length() int                       // number of properties
	Item(int) string                   // property key at position i
	GetPropertyValue(string) Property  // value for a key or NullStyle
	GetPropertyPriority(string) string // "important" or ""
	CSSText() string                   // serialized form or ""
}

// Declaration is an ordered block of CSS property declarations, similar to
// a CSSStyleDeclaration of the W3C CSSOM. The zero value is an empty,
// usable block. A nil *Declaration is a legal empty block for all
// read operations.
type Declaration struct {
	props []KeyValue
}

var _ Computed = (*Declaration)(nil)

// NewDeclaration creates an empty declaration block.
func NewDeclaration() *Declaration {
	return &Declaration{}
}

// ParseDeclaration creates a declaration block from CSS text, e.g. the
// value of a style attribute:
//
//     color: red; margin-top: 3px !important
//
func ParseDeclaration(text string) (*Declaration, error) {
	d := NewDeclaration()
	if err := d.SetCSSText(text); err != nil {
		return nil, err
	}
	return d, nil
}

// Length returns the number of properties declared.
func (d *Declaration) Length() int {
	if d == nil {
		return 0
	}
	return len(d.props)
}

// Item returns the key of the i-th property or "" if i is out of range.
func (d *Declaration) Item(i int) string {
	if d == nil || i < 0 || i >= len(d.props) {
		return ""
	}
	return d.props[i].Key
}

func (d *Declaration) index(key string) int {
	if d == nil {
		return -1
	}
	key = NormalizeKey(key)
	for i, kv := range d.props {
		if kv.Key == key {
			return i
		}
	}
	return -1
}

// GetPropertyValue returns the value of a property or NullStyle.
func (d *Declaration) GetPropertyValue(key string) Property {
	if i := d.index(key); i >= 0 {
		return d.props[i].Value
	}
	return NullStyle
}

// GetPropertyPriority returns "important" for important properties and ""
// otherwise.
func (d *Declaration) GetPropertyPriority(key string) string {
	if i := d.index(key); i >= 0 {
		return d.props[i].Priority
	}
	return ""
}

// SetProperty sets a property's value and priority. An existing property
// keeps its position. Setting an empty value removes the property.
// Priorities other than "important" are dropped.
func (d *Declaration) SetProperty(key string, value Property, priority string) {
	key = NormalizeKey(key)
	if key == "" {
		return
	}
	value = Property(strings.TrimSpace(string(value)))
	if value.IsEmpty() {
		d.RemoveProperty(key)
		return
	}
	if !strings.EqualFold(priority, Important) {
		priority = ""
	} else {
		priority = Important
	}
	if i := d.index(key); i >= 0 {
		d.props[i].Value = value
		d.props[i].Priority = priority
		return
	}
	d.props = append(d.props, KeyValue{Key: key, Value: value, Priority: priority})
}

// RemoveProperty deletes a property and returns its former value.
func (d *Declaration) RemoveProperty(key string) Property {
	i := d.index(key)
	if i < 0 {
		return NullStyle
	}
	old := d.props[i].Value
	d.props = append(d.props[:i], d.props[i+1:]...)
	return old
}

// Properties returns a copy of all declared properties, in order.
func (d *Declaration) Properties() []KeyValue {
	if d == nil {
		return nil
	}
	r := make([]KeyValue, len(d.props))
	copy(r, d.props)
	return r
}

// CSSText serializes the declaration block.
func (d *Declaration) CSSText() string {
	if d.Length() == 0 {
		return ""
	}
	var b strings.Builder
	for i, kv := range d.props {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kv.Key)
		b.WriteString(": ")
		b.WriteString(kv.Value.String())
		if kv.Priority != "" {
			b.WriteString(" !")
			b.WriteString(kv.Priority)
		}
		b.WriteByte(';')
	}
	return b.String()
}

// SetCSSText replaces all properties by the declarations parsed from text.
// If text cannot be parsed, the block is left unchanged.
func (d *Declaration) SetCSSText(text string) error {
	text = terminateDeclarations(text)
	if text == "" {
		d.props = nil
		return nil
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		tracer().Debugf("cannot parse declaration block %q: %v", text, err)
		return fmt.Errorf("style: invalid declaration block: %w", err)
	}
	d.props = nil
	for _, decl := range decls {
		prio := ""
		if decl.Important {
			prio = Important
		}
		d.SetProperty(decl.Property, Property(decl.Value), prio)
	}
	return nil
}

// terminateDeclarations drops empty declarations and terminates every
// declaration with a semicolon. douceur rejects empty declarations and
// silently drops a last declaration without a terminating semicolon.
// Semicolons within strings and parentheses (e.g. data URIs) do not
// separate declarations.
func terminateDeclarations(text string) string {
	var b strings.Builder
	var quote rune
	depth, start := 0, 0
	emit := func(decl string) {
		if decl = strings.TrimSpace(decl); decl != "" {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(decl)
			b.WriteByte(';')
		}
	}
	escaped := false
	for i, r := range text {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case r == ';' && depth == 0:
			emit(text[start:i])
			start = i + 1
		}
	}
	emit(text[start:])
	return b.String()
}

// Clone returns a deep copy of a declaration block.
func (d *Declaration) Clone() *Declaration {
	return &Declaration{props: d.Properties()}
}

func (d *Declaration) String() string {
	return "{" + d.CSSText() + "}"
}
