package htmldom

import (
	"strings"

	"github.com/npillmayer/anchorlayout/core"
	"github.com/npillmayer/anchorlayout/core/dimen"
	"github.com/npillmayer/anchorlayout/engine/dom"
	"golang.org/x/net/html"
)

// Node is an element of an HTML document. It implements dom.Node.
type Node struct {
	doc   *Document
	h     *html.Node
	key   dom.Key
	style *inlineStyle // cache, re-parsed whenever the attribute changes
}

var _ dom.Node = &Node{}

// Key is part of interface dom.Node.
func (n *Node) Key() dom.Key {
	return n.key
}

// IsViewport is part of interface dom.Node.
func (n *Node) IsViewport() bool {
	return false
}

// Name returns the tag name, followed by the element's ID, if any.
func (n *Node) Name() string {
	if id, ok := n.Attribute("id"); ok && id != "" {
		return n.h.Data + "#" + id
	}
	return n.h.Data
}

// Parent is part of interface dom.Node.
func (n *Node) Parent() dom.Node {
	return asDOMNode(n.doc.node(n.h.Parent))
}

// PreviousElement is part of interface dom.Node.
func (n *Node) PreviousElement() dom.Node {
	for s := n.h.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return n.doc.node(s)
		}
	}
	return nil
}

// NextElement is part of interface dom.Node.
func (n *Node) NextElement() dom.Node {
	for s := n.h.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return n.doc.node(s)
		}
	}
	return nil
}

// Attribute is part of interface dom.Node.
func (n *Node) Attribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range n.h.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Attributes is part of interface dom.Node.
func (n *Node) Attributes() []dom.Attribute {
	attrs := make([]dom.Attribute, 0, len(n.h.Attr))
	for _, a := range n.h.Attr {
		attrs = append(attrs, dom.Attribute{Name: a.Key, Value: a.Val})
	}
	return attrs
}

// SetAttribute sets an attribute and reports an attribute mutation, if the
// value changed.
func (n *Node) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	for i, a := range n.h.Attr {
		if a.Namespace == "" && a.Key == name {
			if a.Val == value {
				return
			}
			n.h.Attr[i].Val = value
			n.doc.record(dom.Mutation{
				Kind:          dom.AttributeMutation,
				Target:        n,
				AttributeName: name,
				OldValue:      a.Val,
			})
			return
		}
	}
	n.h.Attr = append(n.h.Attr, html.Attribute{Key: name, Val: value})
	n.doc.record(dom.Mutation{Kind: dom.AttributeMutation, Target: n, AttributeName: name})
}

// RemoveAttribute removes an attribute and reports an attribute mutation,
// if the attribute was present.
func (n *Node) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	for i, a := range n.h.Attr {
		if a.Namespace == "" && a.Key == name {
			n.h.Attr = append(n.h.Attr[:i], n.h.Attr[i+1:]...)
			n.doc.record(dom.Mutation{
				Kind:          dom.AttributeMutation,
				Target:        n,
				AttributeName: name,
				OldValue:      a.Val,
				Removed:       true,
			})
			return
		}
	}
}

func (n *Node) inline() *inlineStyle {
	raw, _ := n.Attribute("style")
	if n.style == nil || n.style.raw != raw {
		n.style = parseInlineStyle(raw)
	}
	return n.style
}

// Style returns the value of an inline style property.
func (n *Node) Style(prop string) (string, bool) {
	return n.inline().get(prop)
}

// SetStyle sets an inline style property. Setting a property to its current
// value does nothing.
func (n *Node) SetStyle(prop, value string) {
	st := n.inline()
	if !st.set(strings.ToLower(prop), value) {
		return
	}
	n.SetAttribute("style", st.raw)
}

// Positioning is part of interface dom.Node.
func (n *Node) Positioning() dom.Positioning {
	p, _ := n.Style("position")
	return dom.ParsePositioning(p)
}

// SetPositioning is part of interface dom.Node.
func (n *Node) SetPositioning(p dom.Positioning) {
	n.SetStyle("position", p.String())
}

// Hidden is true for elements with 'display: none' or inside such an element.
func (n *Node) Hidden() bool {
	for h := n.h; h != nil && h.Type == html.ElementNode; h = h.Parent {
		if d, ok := n.doc.node(h).Style("display"); ok && strings.EqualFold(d, "none") {
			return true
		}
	}
	return false
}

// Offset is part of interface dom.Node.
func (n *Node) Offset() dimen.Point {
	if n.Hidden() {
		return dimen.Origin
	}
	st := n.inline()
	return dimen.Point{X: st.dimension("left"), Y: st.dimension("top")}
}

// Size is part of interface dom.Node.
func (n *Node) Size() dimen.Size {
	if n.Hidden() {
		return dimen.Size{}
	}
	st := n.inline()
	return dimen.Size{W: st.dimension("width"), H: st.dimension("height")}
}

// SetLeft is part of interface dom.Node.
func (n *Node) SetLeft(d dimen.Dimen) { n.SetStyle("left", dimen.Format(d)) }

// SetTop is part of interface dom.Node.
func (n *Node) SetTop(d dimen.Dimen) { n.SetStyle("top", dimen.Format(d)) }

// SetWidth is part of interface dom.Node.
func (n *Node) SetWidth(d dimen.Dimen) { n.SetStyle("width", dimen.Format(d)) }

// SetHeight is part of interface dom.Node.
func (n *Node) SetHeight(d dimen.Dimen) { n.SetStyle("height", dimen.Format(d)) }

// DispatchEvent is part of interface dom.Node.
func (n *Node) DispatchEvent(name string) {
	n.doc.dispatch(n, name)
}

// AppendChild appends child as the last child of n. If child is attached
// elsewhere, it is moved. Both parents receive a child-list mutation.
func (n *Node) AppendChild(child *Node) error {
	if child == nil || child.doc != n.doc {
		return core.Error(core.EINVALID, "cannot append element from another document")
	}
	for h := n.h; h != nil; h = h.Parent {
		if h == child.h {
			return core.Error(core.EINVALID, "cannot append %s to its own descendant", child.Name())
		}
	}
	child.Remove()
	n.h.AppendChild(child.h)
	n.doc.record(dom.Mutation{Kind: dom.ChildListMutation, Target: n})
	return nil
}

// Remove detaches n from its parent.
func (n *Node) Remove() {
	p := n.h.Parent
	if p == nil {
		return
	}
	p.RemoveChild(n.h)
	if pn := n.doc.node(p); pn != nil {
		n.doc.record(dom.Mutation{Kind: dom.ChildListMutation, Target: pn})
	}
}

func (n *Node) String() string {
	return n.Name()
}
