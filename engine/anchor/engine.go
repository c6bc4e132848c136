package anchor

import (
	"context"
	"errors"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/anchorlayout/engine/dom"
	"github.com/npillmayer/anchorlayout/engine/runloop"
)

// Engine is an anchor layout engine for a host document. Elements are
// recomputed on the engine's run loop. An engine is not safe for concurrent
// use; it must be driven from the goroutine running the loop.
type Engine struct {
	doc       dom.Document
	loop      *runloop.Loop
	opts      Options
	elements  *linkedhashmap.Map // dom.Key -> *Element, in registration order
	links     *linkGraph
	onUpdate  []func(*Element)
	onLayout  []func(*Element)
	onSettled []func()
}

// New creates a layout engine for a document.
func New(doc dom.Document, loop *runloop.Loop, opts ...Option) *Engine {
	e := &Engine{
		doc:      doc,
		loop:     loop,
		opts:     defaultOptions(),
		elements: linkedhashmap.New(),
		links:    newLinkGraph(),
	}
	for _, opt := range opts {
		opt(&e.opts)
	}
	return e
}

// Document returns the host document of the engine.
func (e *Engine) Document() dom.Document {
	return e.doc
}

// Element returns the layout element for a host element, creating it if
// necessary.
func (e *Engine) Element(n dom.Node) *Element {
	return e.element(n)
}

func (e *Engine) element(n dom.Node) *Element {
	if el, ok := e.lookup(n.Key()); ok {
		return el
	}
	el := newElement(e, n)
	e.elements.Put(n.Key(), el)
	el.cancel = e.doc.Observe(n, el.onMutations)
	tracer().Debugf("tracking element %s in frame %s", n.Name(), el.frame.Name())
	return el
}

func (e *Engine) lookup(key dom.Key) (*Element, bool) {
	v, ok := e.elements.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*Element), true
}

// Lookup returns the layout element for a host element, if there is one.
func (e *Engine) Lookup(n dom.Node) (*Element, bool) {
	return e.lookup(n.Key())
}

// Elements returns all layout elements in registration order.
func (e *Engine) Elements() []*Element {
	els := make([]*Element, 0, e.elements.Size())
	for _, v := range e.elements.Values() {
		els = append(els, v.(*Element))
	}
	return els
}

// Init registers a root scope. All elements below root carrying anchor
// attributes are linked as declared. If root is nil, the document's root is
// used. Afterwards the coordinate frames of all known elements are
// recomputed. Elements are not resolved before Layout is called.
//
// Links which cannot be established are skipped; the errors are returned
// collectively.
func (e *Engine) Init(root dom.Node) error {
	if root == nil {
		root = e.doc.Root()
	}
	if root == nil {
		return nil
	}
	attrs := AttributeNames()
	sel := "[" + strings.Join(attrs, "],[") + "]"
	nodes, err := e.doc.QueryAll(root, sel)
	if err != nil {
		return err
	}
	var errs []error
	for _, n := range nodes {
		el := e.element(n)
		for _, attr := range n.Attributes() {
			name, ok := ParseName(attr.Name)
			if !ok {
				continue
			}
			el.tracked = true
			if err := e.linkDeclared(el.Anchor(name), attr.Value); err != nil {
				tracer().Errorf("%v", err)
				errs = append(errs, err)
			}
		}
	}
	for _, el := range e.Elements() {
		el.RecomputeFrame()
		el.rect = measure(el.node)
	}
	tracer().Infof("anchor layout initialized with %d elements", e.elements.Size())
	return errors.Join(errs...)
}

// linkDeclared links an anchor as declared by an attribute value.
func (e *Engine) linkDeclared(a *Anchor, value string) error {
	req := ParseConstraint(value, a.name)
	req.NoUpdate = true
	return a.Link(req)
}

// Layout resolves every linked element once, in registration order, and
// then runs the loop until no element is dirty any more. Element layout
// events are dispatched for the first pass, a global layout event on the
// viewport when settled.
//
// Link cycles may never settle. Layout returns ctx.Err() if ctx is
// cancelled before the layout is complete.
func (e *Engine) Layout(ctx context.Context) error {
	for _, el := range e.Elements() {
		if el.tracked && !el.node.IsViewport() {
			el.Update(true)
		}
	}
	err := e.loop.RunUntil(ctx, func() bool {
		return !e.anyDirty() && !e.loop.Pending()
	})
	if err != nil {
		tracer().Errorf("layout did not settle: %v", err)
		return err
	}
	tracer().Debugf("layout settled after %d turns", e.loop.Turns())
	e.doc.Viewport().DispatchEvent(LayoutEvent)
	for _, f := range e.onSettled {
		f()
	}
	return nil
}

func (e *Engine) anyDirty() bool {
	for _, v := range e.elements.Values() {
		if v.(*Element).dirty {
			return true
		}
	}
	return false
}

// OnUpdate registers a listener which is called whenever the engine has
// written the geometry of an element.
func (e *Engine) OnUpdate(f func(*Element)) {
	e.onUpdate = append(e.onUpdate, f)
}

// OnLayout registers a listener which is called for every element resolved
// by the first pass of Layout.
func (e *Engine) OnLayout(f func(*Element)) {
	e.onLayout = append(e.onLayout, f)
}

// OnSettled registers a listener which is called once Layout has settled.
func (e *Engine) OnSettled(f func()) {
	e.onSettled = append(e.onSettled, f)
}

func (e *Engine) notify(listeners []func(*Element), el *Element) {
	for _, f := range listeners {
		f(el)
	}
}

func (e *Engine) reportError(err error) {
	tracer().Errorf("%v", err)
	if e.opts.OnError != nil {
		e.opts.OnError(err)
	}
}

// UnlinkAll removes all links of host element n, both the links of its own
// anchors and every link targeting one of its anchors. Hosts must call it
// before they discard an element.
func (e *Engine) UnlinkAll(n dom.Node) {
	el, ok := e.lookup(n.Key())
	if !ok {
		return
	}
	for _, a := range el.anchors {
		a.Unlink()
		for _, id := range e.links.linksTo(a.id()) {
			if dep, ok := e.lookup(id.element); ok {
				dep.Anchor(id.name).Unlink()
			}
		}
	}
}

// Release forgets host element n: all links from and to it are removed and
// its mutations are no longer observed.
func (e *Engine) Release(n dom.Node) {
	el, ok := e.lookup(n.Key())
	if !ok {
		return
	}
	e.UnlinkAll(n)
	for _, other := range e.Elements() {
		for _, a := range other.anchors {
			if a.last != nil && a.last.element == el {
				a.last = nil
			}
		}
	}
	if el.cancel != nil {
		el.cancel()
	}
	el.released = true
	el.dirty = false
	e.elements.Remove(n.Key())
	tracer().Debugf("released element %s", n.Name())
}
