/*
Package style holds CSS style declarations for document nodes.

Overview

Browsers expose the style of an element through CSSStyleDeclaration
objects: an ordered block of property declarations, each with a value and
an optional priority ("important"). Declaration is our rendition of
this object. Cloned nodes own a Declaration, and hosts hand out resolved
(computed) styles through the read-only view Computed, which a
Declaration implements.

Declaration blocks are parsed with douceur
(https://github.com/aymerick/douceur).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'domsnap.style'
func tracer() tracing.Trace {
	return tracing.Select("domsnap.style")
}
