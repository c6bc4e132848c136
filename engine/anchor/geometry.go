package anchor

import (
	"github.com/npillmayer/anchorlayout/core/dimen"
	"github.com/npillmayer/anchorlayout/engine/dom"
)

// pointValue returns the coordinate of an anchor point of a node on axis a.
// Scale 1 selects the start edge, -1 the end edge and 0 the center.
// If local is false, the node's offset within its coordinate frame is added.
// Hidden nodes report a size of 0. The viewport is always located at (0,0).
func pointValue(n dom.Node, a dimen.Axis, scale int8, local bool) dimen.Dimen {
	multiple := dimen.Dimen(1-scale) / 2
	v := multiple * n.Size().On(a)
	if !local && !n.IsViewport() {
		v += n.Offset().On(a)
	}
	return v
}

// measure returns the rectangle of a node in its coordinate frame.
func measure(n dom.Node) dimen.Rect {
	if n.IsViewport() {
		return dimen.RectFrom(dimen.Origin, n.Size())
	}
	return dimen.RectFrom(n.Offset(), n.Size())
}

// coordinateFrame returns the nearest positioned ancestor of a node. If there
// is none, the viewport establishes the coordinate frame.
func coordinateFrame(n dom.Node, viewport dom.Node) dom.Node {
	if n.IsViewport() {
		return n
	}
	frame := viewport
	dom.Walk(n.Parent(), func(p dom.Node) bool {
		if p.Positioning().IsPositioned() {
			frame = p
			return false
		}
		return true
	})
	return frame
}

// layoutRect collects the geometry of an element during resolution.
// Coordinates start unresolved, sizes start with the measured size.
type layoutRect struct {
	pos      [2]dimen.Dimen
	resolved [2]bool
	size     [2]dimen.Dimen
}

func newLayoutRect(sz dimen.Size) layoutRect {
	return layoutRect{size: [2]dimen.Dimen{sz.W, sz.H}}
}

// combine merges the value v of an anchor point with scale s into the
// rectangle on axis a.
func (r *layoutRect) combine(a dimen.Axis, s int8, v dimen.Dimen) {
	switch s {
	case 1:
		if !r.resolved[a] {
			r.pos[a], r.resolved[a] = v, true
		}
	case 0:
		if !r.resolved[a] {
			r.pos[a], r.resolved[a] = v-r.size[a]/2, true
		} else {
			r.size[a] = (v - r.pos[a]) * 2
		}
	case -1:
		if !r.resolved[a] {
			r.pos[a], r.resolved[a] = v-r.size[a], true
		} else {
			r.size[a] = v - r.pos[a]
		}
	}
}

func (r layoutRect) String() string {
	s := "{"
	for _, a := range []dimen.Axis{dimen.Horizontal, dimen.Vertical} {
		if a == dimen.Vertical {
			s += " "
		}
		if r.resolved[a] {
			s += a.String() + "=" + dimen.Format(r.pos[a])
		} else {
			s += a.String() + "=?"
		}
		s += "/" + dimen.Format(r.size[a])
	}
	return s + "}"
}
