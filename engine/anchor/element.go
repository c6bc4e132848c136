package anchor

import (
	"strings"

	"github.com/npillmayer/anchorlayout/core/dimen"
	"github.com/npillmayer/anchorlayout/engine/dom"
)

// Element is the layout state of a host element. There is at most one
// Element per host element and engine.
type Element struct {
	engine   *Engine
	node     dom.Node
	anchors  [len(AllNames)]*Anchor
	rect     dimen.Rect // last known geometry, in the coordinate frame
	frame    dom.Node   // cached coordinate frame
	dirty    bool
	tracked  bool // has been linked, takes part in Layout
	released bool
	dbglog   bool
	handlers []*changeHandler
	cancel   func() // cancels mutation observation
}

// Changes tells which edges of an element's rectangle changed, and the
// new rectangle.
type Changes struct {
	Edges dimen.Edges
	Rect  dimen.Rect
}

// ChangeHandler is called after the geometry of an element changed.
type ChangeHandler func(el *Element, c Changes)

type changeHandler struct {
	f ChangeHandler
}

// Handle identifies a registered change handler.
type Handle struct {
	h *changeHandler
}

func newElement(e *Engine, n dom.Node) *Element {
	el := &Element{engine: e, node: n}
	for _, name := range AllNames {
		el.anchors[name-1] = &Anchor{element: el, name: name}
	}
	el.frame = coordinateFrame(n, e.doc.Viewport())
	el.rect = measure(n)
	if _, ok := n.Attribute("dbglog"); ok {
		el.dbglog = true
	}
	return el
}

// Node returns the host element.
func (el *Element) Node() dom.Node {
	return el.node
}

// Anchor returns the anchor with a given name, or nil for NoName.
func (el *Element) Anchor(name Name) *Anchor {
	if name == NoName || int(name) > len(el.anchors) {
		return nil
	}
	return el.anchors[name-1]
}

// Frame returns the cached coordinate frame of the element.
func (el *Element) Frame() dom.Node {
	return el.frame
}

// RecomputeFrame refreshes the cached coordinate frame. The cache is not
// invalidated automatically if ancestors change their positioning.
func (el *Element) RecomputeFrame() {
	el.frame = coordinateFrame(el.node, el.engine.doc.Viewport())
}

// Rect returns the last known rectangle of the element.
func (el *Element) Rect() dimen.Rect {
	return el.rect
}

// IsDirty is true while a recomputation of the element is pending.
func (el *Element) IsDirty() bool {
	return el.dirty
}

// IsLinked is true if any anchor of the element is linked.
func (el *Element) IsLinked() bool {
	for _, a := range el.anchors {
		if a.target != nil {
			return true
		}
	}
	return false
}

// On registers a handler for changes of the element's geometry.
func (el *Element) On(f ChangeHandler) Handle {
	h := &changeHandler{f: f}
	el.handlers = append(el.handlers, h)
	return Handle{h}
}

// Off removes a change handler.
func (el *Element) Off(h Handle) {
	for i, x := range el.handlers {
		if x == h.h {
			el.handlers = append(el.handlers[:i], el.handlers[i+1:]...)
			return
		}
	}
}

// autoRelink is false for elements with attribute auto="false".
func (el *Element) autoRelink() bool {
	v, ok := el.node.Attribute("auto")
	return !ok || !strings.EqualFold(strings.TrimSpace(v), "false")
}

func (el *Element) trace(format string, args ...interface{}) {
	if el.dbglog {
		tracer().P("element", el.node.Name()).Infof(format, args...)
	} else {
		tracer().Debugf(format, args...)
	}
}

func (el *Element) String() string {
	return el.node.Name()
}
