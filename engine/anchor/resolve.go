package anchor

import (
	"github.com/npillmayer/anchorlayout/core/dimen"
)

// Host events dispatched on elements.
const (
	UpdateEvent = "anchor.update" // geometry has been written by the engine
	LayoutEvent = "anchor.layout" // element resolved by a top-level layout
)

// Update resolves the element's links into a rectangle and writes it back
// to the host element. Anchors are evaluated per axis in a fixed order.
// Resolved coordinates are always written, sizes only if they differ from
// the measured size. Errors are traced and passed to the engine's error
// handler; they leave the affected axis unresolved.
//
// Every call dispatches an update event, and additionally a layout event
// if isLayout is set.
func (el *Element) Update(isLayout bool) {
	if el.released {
		return
	}
	sz := el.node.Size()
	r := newLayoutRect(sz)
	for _, ax := range []dimen.Axis{dimen.Horizontal, dimen.Vertical} {
		for _, name := range resolutionOrder[ax] {
			if err := el.Anchor(name).resolve(&r, ax); err != nil {
				el.engine.reportError(err)
			}
		}
	}
	el.trace("resolved %s to %s", el, r)
	if r.resolved[dimen.Horizontal] {
		el.node.SetLeft(r.pos[dimen.Horizontal])
	}
	if r.size[dimen.Horizontal] != sz.W {
		el.node.SetWidth(r.size[dimen.Horizontal])
	}
	if r.resolved[dimen.Vertical] {
		el.node.SetTop(r.pos[dimen.Vertical])
	}
	if r.size[dimen.Vertical] != sz.H {
		el.node.SetHeight(r.size[dimen.Vertical])
	}
	el.node.DispatchEvent(UpdateEvent)
	el.engine.notify(el.engine.onUpdate, el)
	if isLayout {
		el.node.DispatchEvent(LayoutEvent)
		el.engine.notify(el.engine.onLayout, el)
	}
}
