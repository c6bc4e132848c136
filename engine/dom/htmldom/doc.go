/*
Package htmldom implements a host element tree for the anchor layout engine
on top of an HTML parse tree.

Geometry of elements is held in their inline style. An element's offset
within its coordinate frame is given by 'left' and 'top', its size by
'width' and 'height'. Elements with 'display: none' (or inside such an
element) have zero size and offset. Geometry write-back rewrites the inline
style attribute, which in turn is reported as an attribute mutation, just as
a browser would do.

Selectors are CSS selectors (github.com/andybalholm/cascadia) or, if they
start with a slash, XPath expressions (github.com/antchfx/xpath).

Mutation records are delivered as microtasks of a runloop.Loop, one batch
per observer and turn.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package htmldom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'anchor.dom'.
func tracer() tracing.Trace {
	return tracing.Select("anchor.dom")
}
