package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
//
// Other than keys, values are never case-folded: they may contain URLs,
// data URIs or path data.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// HasUnit checks if a property value is a single dimension with the given
// unit, e.g. "12.5px" for unit "px".
func (p Property) HasUnit(unit string) bool {
	s := strings.TrimSpace(string(p))
	return len(s) > len(unit) && strings.HasSuffix(strings.ToLower(s), unit)
}

// Important is the only priority CSS knows about.
const Important = "important"

// KeyValue is a container for a style property.
type KeyValue struct {
	Key      string
	Value    Property
	Priority string
}

// NormalizeKey lower-cases a property key. Custom properties ("--x") are
// case-sensitive and are left alone.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if strings.HasPrefix(key, "--") {
		return key
	}
	return strings.ToLower(key)
}
