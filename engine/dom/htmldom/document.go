package htmldom

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/anchorlayout/core"
	"github.com/npillmayer/anchorlayout/core/dimen"
	"github.com/npillmayer/anchorlayout/engine/dom"
	"github.com/npillmayer/anchorlayout/engine/runloop"
	"github.com/npillmayer/schuko/gconf"
	"golang.org/x/net/html"
)

// Default viewport dimensions, used if not configured otherwise.
const (
	DefaultViewportWidth  = 1024
	DefaultViewportHeight = 768
)

// Listener receives events dispatched to an element.
type Listener func(target dom.Node, event string)

// Document is an HTML document acting as the host element tree.
// It implements dom.Document.
type Document struct {
	html      *html.Node // document node of the parse tree
	loop      *runloop.Loop
	viewport  *viewport
	nodes     map[*html.Node]*Node
	nextKey   dom.Key
	observers map[dom.Key][]*observer
	listeners map[dom.Key]map[string][]Listener
}

var _ dom.Document = &Document{}

// Parse reads an HTML document. Mutation records are delivered on loop,
// the viewport has size vp.
func Parse(r io.Reader, loop *runloop.Loop, vp dimen.Size) (*Document, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse HTML document")
	}
	doc := &Document{
		html:      h,
		loop:      loop,
		nodes:     make(map[*html.Node]*Node),
		observers: make(map[dom.Key][]*observer),
		listeners: make(map[dom.Key]map[string][]Listener),
	}
	doc.viewport = &viewport{doc: doc, key: doc.newKey(), size: vp}
	return doc, nil
}

// ParseString is a convenience function for parsing an HTML string.
func ParseString(s string, loop *runloop.Loop, vp dimen.Size) (*Document, error) {
	return Parse(strings.NewReader(s), loop, vp)
}

// ViewportFromConfig returns the viewport size from the global configuration
// (keys 'anchor.viewport-width' and 'anchor.viewport-height').
func ViewportFromConfig() dimen.Size {
	vp := dimen.Size{W: DefaultViewportWidth, H: DefaultViewportHeight}
	if w := gconf.GetInt("anchor.viewport-width"); w > 0 {
		vp.W = dimen.Dimen(w)
	}
	if h := gconf.GetInt("anchor.viewport-height"); h > 0 {
		vp.H = dimen.Dimen(h)
	}
	return vp
}

func (doc *Document) newKey() dom.Key {
	doc.nextKey++
	return doc.nextKey
}

// node wraps an element of the parse tree. Non-element nodes yield nil.
func (doc *Document) node(h *html.Node) *Node {
	if h == nil || h.Type != html.ElementNode {
		return nil
	}
	if n, ok := doc.nodes[h]; ok {
		return n
	}
	n := &Node{doc: doc, h: h, key: doc.newKey()}
	doc.nodes[h] = n
	return n
}

// asDOMNode avoids wrapping a nil *Node into a non-nil interface.
func asDOMNode(n *Node) dom.Node {
	if n == nil {
		return nil
	}
	return n
}

// Loop returns the run loop mutation records are delivered on.
func (doc *Document) Loop() *runloop.Loop {
	return doc.loop
}

// Viewport is part of interface dom.Document.
func (doc *Document) Viewport() dom.Node {
	return doc.viewport
}

// Root returns the <body> element, or the document element if there is no body.
func (doc *Document) Root() dom.Node {
	var body, first *html.Node
	var find func(*html.Node)
	find = func(h *html.Node) {
		for c := h.FirstChild; c != nil && body == nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				if first == nil {
					first = c
				}
				if c.Data == "body" {
					body = c
					return
				}
				find(c)
			}
		}
	}
	find(doc.html)
	if body != nil {
		return doc.node(body)
	}
	return asDOMNode(doc.node(first))
}

// Element returns the first element matching a selector, or nil. Errors are
// traced.
func (doc *Document) Element(selector string) *Node {
	n, err := doc.Query(selector)
	if err != nil {
		tracer().Errorf("%v", err)
		return nil
	}
	if n == nil {
		return nil
	}
	return n.(*Node)
}

// Query is part of interface dom.Document. Selectors starting with '/' are
// XPath expressions, all others CSS selectors.
func (doc *Document) Query(selector string) (dom.Node, error) {
	all, err := doc.match(doc.html, selector, true)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

// QueryAll is part of interface dom.Document. The scope element itself is
// not part of the result.
func (doc *Document) QueryAll(scope dom.Node, selector string) ([]dom.Node, error) {
	root := doc.html
	if scope != nil && !scope.IsViewport() {
		sn, ok := scope.(*Node)
		if !ok || sn.doc != doc {
			return nil, core.Error(core.EINVALID, "scope is not an element of this document")
		}
		root = sn.h
	}
	all, err := doc.match(root, selector, false)
	if err != nil {
		return nil, err
	}
	r := make([]dom.Node, 0, len(all))
	for _, n := range all {
		if n.(*Node).h != root {
			r = append(r, n)
		}
	}
	return r, nil
}

func (doc *Document) match(root *html.Node, selector string, first bool) ([]dom.Node, error) {
	selector = strings.TrimSpace(selector)
	if strings.HasPrefix(selector, "/") {
		return doc.evaluateXPath(root, selector, first)
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid selector %q", selector)
	}
	var r []dom.Node
	if first {
		if h := sel.MatchFirst(root); h != nil {
			r = append(r, doc.node(h))
		}
		return r, nil
	}
	for _, h := range sel.MatchAll(root) {
		r = append(r, doc.node(h))
	}
	return r, nil
}

// CreateElement creates a detached element.
func (doc *Document) CreateElement(tag string) *Node {
	h := &html.Node{Type: html.ElementNode, Data: strings.ToLower(tag)}
	return doc.node(h)
}

// ResizeViewport changes the viewport size and notifies observers of the
// viewport.
func (doc *Document) ResizeViewport(w, h dimen.Dimen) {
	if doc.viewport.size.W == w && doc.viewport.size.H == h {
		return
	}
	doc.viewport.size = dimen.Size{W: w, H: h}
	doc.record(dom.Mutation{Kind: dom.ResizeMutation, Target: doc.viewport})
}

// AddEventListener registers a listener for events dispatched to n.
func (doc *Document) AddEventListener(n dom.Node, event string, l Listener) {
	m, ok := doc.listeners[n.Key()]
	if !ok {
		m = make(map[string][]Listener)
		doc.listeners[n.Key()] = m
	}
	m[event] = append(m[event], l)
}

func (doc *Document) dispatch(n dom.Node, event string) {
	tracer().Debugf("event %s on %s", event, n.Name())
	for _, l := range doc.listeners[n.Key()][event] {
		l(n, event)
	}
}

// Render writes the document as HTML.
func (doc *Document) Render(w io.Writer) error {
	return html.Render(w, doc.html)
}

// --- Viewport --------------------------------------------------------------

type viewport struct {
	doc  *Document
	key  dom.Key
	size dimen.Size
}

var _ dom.Node = &viewport{}

func (vp *viewport) Key() dom.Key                    { return vp.key }
func (vp *viewport) IsViewport() bool                { return true }
func (vp *viewport) Name() string                    { return "window" }
func (vp *viewport) Parent() dom.Node                { return nil }
func (vp *viewport) PreviousElement() dom.Node       { return nil }
func (vp *viewport) NextElement() dom.Node           { return nil }
func (vp *viewport) Attribute(string) (string, bool) { return "", false }
func (vp *viewport) Attributes() []dom.Attribute     { return nil }
func (vp *viewport) Positioning() dom.Positioning    { return dom.Fixed }
func (vp *viewport) SetPositioning(dom.Positioning)  {}
func (vp *viewport) Offset() dimen.Point             { return dimen.Origin }
func (vp *viewport) Size() dimen.Size                { return vp.size }
func (vp *viewport) Hidden() bool                    { return false }
func (vp *viewport) SetLeft(dimen.Dimen)             {}
func (vp *viewport) SetTop(dimen.Dimen)              {}
func (vp *viewport) SetWidth(dimen.Dimen)            {}
func (vp *viewport) SetHeight(dimen.Dimen)           {}
func (vp *viewport) DispatchEvent(name string)       { vp.doc.dispatch(vp, name) }
