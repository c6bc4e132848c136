/*
Package anchor implements a declarative box layout engine. Elements are
positioned by linking one of their nine anchor points to an anchor point of
another element, instead of giving absolute coordinates.

The nine anchors of an element are its corners, the midpoints of its edges
and its center:

	lefttop      top      righttop
	left         center   right
	leftbottom   bottom   rightbottom

A link is declared with an attribute on the host element, named after one of
the anchors:

	<anchor-name>="[target.]<anchor-name>[:<dx>,<dy>]"

where target is one of 'parent' (the default), 'window', 'prev', 'next',
a CSS selector or an XPath expression, optionally enclosed in parentheses.
The engine keeps the geometry of linked elements consistent: whenever a target
element moves or changes size, its dependents are marked dirty and are
re-resolved on a later turn of the run loop.

The engine does not own the elements it positions. It operates on a host
element tree through the interfaces of package dom. Link cycles are neither
detected nor broken during resolution; Engine.Cycles reports them for
diagnostic purposes.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package anchor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'anchor.engine'.
func tracer() tracing.Trace {
	return tracing.Select("anchor.engine")
}
