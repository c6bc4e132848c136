package anchor

import (
	"fmt"

	"github.com/npillmayer/anchorlayout/core/dimen"
	"github.com/npillmayer/anchorlayout/engine/dom"
)

// Anchor is one of the nine anchor points of an element. It may be linked
// to an anchor of another element, with an offset.
type Anchor struct {
	element *Element
	name    Name
	target  *Anchor     // link target, or nil
	last    *Anchor     // most recent link target, kept after unlinking
	offset  dimen.Point // valid if hasOffset
	hasOff  bool
}

func (a *Anchor) id() anchorID {
	return anchorID{element: a.element.node.Key(), name: a.name}
}

// Name returns the name of the anchor.
func (a *Anchor) Name() Name {
	return a.name
}

// Element returns the element the anchor belongs to.
func (a *Anchor) Element() *Element {
	return a.element
}

// Target returns the anchor this anchor is linked to, or nil.
func (a *Anchor) Target() *Anchor {
	return a.target
}

// Scale returns the scale of the anchor.
func (a *Anchor) Scale() Scale {
	return a.name.Scale()
}

func (a *Anchor) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s.%s", a.element.node.Name(), a.name)
}

// Offset returns the link offset of the anchor. If the offset is undefined,
// false is returned.
func (a *Anchor) Offset() (dimen.Point, bool) {
	return a.offset, a.hasOff
}

// SetOffset sets the link offset. If the offset changes, the element is
// scheduled for recomputation.
func (a *Anchor) SetOffset(p dimen.Point) {
	if a.hasOff && a.offset == p {
		return
	}
	a.offset, a.hasOff = p, true
	if a.target != nil {
		a.element.MarkDirty()
	}
}

// Link links the anchor to an anchor of a target element. Omitted parts of
// the request take defaults:
//
// - no target: the element of the most recent link, or the parent
//
// - no anchor name: the name of the most recent link's anchor, or the name
// of this anchor
//
// - no offset: the current offset stays unchanged
//
// An existing link to a different anchor is removed first. If the engine
// is configured to auto-transform, the linking element is switched to
// absolute positioning (fixed, if the target is the viewport). Unless
// req.NoUpdate is set, the element is scheduled for recomputation.
//
// If the target cannot be resolved, the anchor is left unlinked and an
// error with code EMISSING (or EINVALID for a malformed selector) is
// returned.
func (a *Anchor) Link(req LinkRequest) error {
	e := a.element.engine
	if req.Target.Kind == TargetNone {
		if a.last != nil {
			req.Target = To(a.last.element.node)
		} else {
			req.Target = Parent()
		}
	}
	if req.Anchor == NoName {
		if a.last != nil {
			req.Anchor = a.last.name
		} else {
			req.Anchor = a.name
		}
	}
	node, err := a.resolveTarget(req.Target)
	if err != nil {
		a.detach()
		tracer().Debugf("link %s failed: %v", a, err)
		return err
	}
	to := e.element(node).Anchor(req.Anchor)
	if a.target != to {
		a.detach()
		a.target = to
		e.links.add(a.id(), to.id())
		a.element.tracked = true
		if e.closesCycle(a.element, to.element) {
			tracer().Infof("link %s -> %s closes a cycle", a, to)
		}
	}
	a.last = to
	if req.Offset != nil {
		a.offset, a.hasOff = *req.Offset, true
	}
	a.element.trace("link %s -> %s offset=%v", a, to, a.offset)
	if e.opts.AutoTransform {
		p := dom.Absolute
		if node.IsViewport() {
			p = dom.Fixed
		}
		if a.element.node.Positioning() != p {
			a.element.node.SetPositioning(p)
		}
	}
	if !req.NoUpdate {
		a.element.MarkDirty()
	}
	return nil
}

// Unlink removes the link of the anchor and resets its offset to undefined.
// It is a no-op if the anchor is not linked.
func (a *Anchor) Unlink() {
	if a.target == nil {
		return
	}
	a.element.trace("unlink %s", a)
	a.detach()
	a.offset, a.hasOff = dimen.Point{}, false
}

// detach removes the link and its back reference.
func (a *Anchor) detach() {
	if a.target == nil {
		return
	}
	a.element.engine.links.remove(a.id(), a.target.id())
	a.target = nil
}

// resolveTarget finds the host element for a target reference.
func (a *Anchor) resolveTarget(t TargetRef) (dom.Node, error) {
	e := a.element.engine
	var n dom.Node
	switch t.Kind {
	case TargetParent:
		n = a.element.node.Parent()
	case TargetViewport:
		n = e.doc.Viewport()
	case TargetPrevious:
		n = a.element.node.PreviousElement()
	case TargetNext:
		n = a.element.node.NextElement()
	case TargetNode:
		n = t.Node
	case TargetSelector:
		var err error
		if n, err = e.doc.Query(t.Selector); err != nil {
			return nil, invalidSelector(a, err)
		}
	}
	if n == nil {
		return nil, unresolvedTarget(a, t)
	}
	return n, nil
}

// resolve merges the link of the anchor into r on axis ax. Unlinked anchors
// and anchors linked to their own element are skipped.
func (a *Anchor) resolve(r *layoutRect, ax dimen.Axis) error {
	if a.target == nil || a.target.element == a.element {
		return nil
	}
	frame := a.element.frame
	tel := a.target.element
	var v dimen.Dimen
	switch {
	case dom.Same(tel.node, frame):
		v = pointValue(tel.node, ax, a.target.Scale().On(ax), true)
	case tel.node.IsViewport() || dom.Same(tel.frame, frame):
		v = pointValue(tel.node, ax, a.target.Scale().On(ax), false)
	default:
		return frameMismatch(a)
	}
	a.element.trace("%s -> %s %s=%s offset=%v", a.name, a.target, ax, dimen.Format(v), a.offset)
	v += a.offset.On(ax)
	r.combine(ax, a.Scale().On(ax), v)
	return nil
}
