package anchor

import (
	"github.com/npillmayer/anchorlayout/engine/dom"
)

// MarkDirty schedules a recomputation of the element on a later turn of
// the run loop. Marking an element which is already dirty is a no-op, so
// that any number of changes result in a single recomputation.
func (el *Element) MarkDirty() {
	if el.dirty || el.released {
		return
	}
	el.dirty = true
	el.engine.loop.Post(func() {
		el.dirty = false
		el.Update(false)
	})
}

// emitChanged measures the element. If its rectangle changed, change
// handlers are called and all elements linking to one of its anchors are
// marked dirty.
func (el *Element) emitChanged() {
	r := measure(el.node)
	edges := r.Changed(el.rect)
	if edges == 0 {
		return
	}
	el.trace("%s changed %s: %s", el, edges, r)
	el.rect = r
	for _, h := range append([]*changeHandler(nil), el.handlers...) {
		h.f(el, Changes{Edges: edges, Rect: r})
	}
	e := el.engine
	for _, a := range el.anchors {
		for _, id := range e.links.linksTo(a.id()) {
			if dep, ok := e.lookup(id.element); ok {
				dep.MarkDirty()
			}
		}
	}
}

// onMutations receives mutation records for the element's subtree from the
// host. Changes of the element's own anchor attributes re-link the anchor.
// Any other change triggers a measurement.
func (el *Element) onMutations(records []dom.Mutation) {
	if el.released {
		return
	}
	remeasure := false
	for _, m := range records {
		if m.Kind == dom.AttributeMutation && dom.Same(m.Target, el.node) {
			if name, ok := ParseName(m.AttributeName); ok {
				if el.autoRelink() {
					el.relink(name, m)
				}
				continue
			}
			if m.AttributeName == "dbglog" {
				_, el.dbglog = el.node.Attribute("dbglog")
			}
		}
		remeasure = true
	}
	if remeasure {
		el.emitChanged()
	}
}

// relink re-parses an anchor attribute and links the anchor accordingly.
// A removed attribute unlinks the anchor.
func (el *Element) relink(name Name, m dom.Mutation) {
	a := el.Anchor(name)
	value, ok := el.node.Attribute(m.AttributeName)
	if m.Removed || !ok {
		el.trace("%s: attribute %s removed, was %q", el, m.AttributeName, m.OldValue)
		a.Unlink()
		el.MarkDirty()
		return
	}
	el.trace("%s: attribute %s changed from %q to %q", el, m.AttributeName, m.OldValue, value)
	if err := el.engine.linkDeclared(a, value); err != nil {
		el.engine.reportError(err)
	}
	el.MarkDirty()
}
