package htmldom

import (
	"bytes"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/anchorlayout/core"
	"github.com/npillmayer/anchorlayout/engine/dom"
	"golang.org/x/net/html"
)

// navigator is an xpath.NodeNavigator on an HTML parse tree. For a
// description of its methods please refer to the documentation of
// antchfx/xpath.
type navigator struct {
	root, current *html.Node
	attr          int // attributes index, -1 if positioned on an element
}

func newNavigator(root *html.Node) *navigator {
	return &navigator{root: root, current: root, attr: -1}
}

var _ xpath.NodeNavigator = &navigator{}

func (nav *navigator) NodeType() xpath.NodeType {
	switch nav.current.Type {
	case html.CommentNode:
		return xpath.CommentNode
	case html.TextNode:
		return xpath.TextNode
	case html.ElementNode:
		if nav.attr != -1 {
			return xpath.AttributeNode
		}
		return xpath.ElementNode
	}
	// document and doctype nodes
	return xpath.RootNode
}

func (nav *navigator) LocalName() string {
	if nav.attr != -1 {
		return nav.current.Attr[nav.attr].Key
	}
	return nav.current.Data
}

func (*navigator) Prefix() string {
	return ""
}

func (nav *navigator) Value() string {
	switch nav.current.Type {
	case html.ElementNode:
		if nav.attr != -1 {
			return nav.current.Attr[nav.attr].Val
		}
		return innerText(nav.current)
	case html.TextNode:
		return nav.current.Data
	}
	return ""
}

func (nav *navigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *navigator) MoveToRoot() {
	nav.current = nav.root
	nav.attr = -1
}

func (nav *navigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1
		return true
	}
	if nav.current == nav.root || nav.current.Parent == nil {
		return false
	}
	nav.current = nav.current.Parent
	return true
}

func (nav *navigator) MoveToNextAttribute() bool {
	if nav.current.Type != html.ElementNode || nav.attr >= len(nav.current.Attr)-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *navigator) MoveToChild() bool {
	if nav.attr != -1 || nav.current.FirstChild == nil {
		return false
	}
	nav.current = nav.current.FirstChild
	return true
}

func (nav *navigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.current == nav.root || nav.current.PrevSibling == nil {
		return false
	}
	nav.current = nav.current.Parent.FirstChild
	return true
}

func (nav *navigator) MoveToNext() bool {
	if nav.attr != -1 || nav.current == nav.root || nav.current.NextSibling == nil {
		return false
	}
	nav.current = nav.current.NextSibling
	return true
}

func (nav *navigator) MoveToPrevious() bool {
	if nav.attr != -1 || nav.current == nav.root || nav.current.PrevSibling == nil {
		return false
	}
	nav.current = nav.current.PrevSibling
	return true
}

func (nav *navigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*navigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.current = n.current
	nav.attr = n.attr
	return true
}

func (nav *navigator) String() string {
	return nav.Value()
}

// innerText returns the text between the start and end tags of an element.
func innerText(n *html.Node) string {
	var output func(*bytes.Buffer, *html.Node)
	output = func(buf *bytes.Buffer, n *html.Node) {
		switch n.Type {
		case html.TextNode:
			buf.WriteString(n.Data)
			return
		case html.CommentNode:
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			output(buf, child)
		}
	}
	var buf bytes.Buffer
	output(&buf, n)
	return buf.String()
}

// evaluateXPath selects elements below root. Attribute and text results
// are mapped to their elements.
func (doc *Document) evaluateXPath(root *html.Node, expr string, first bool) ([]dom.Node, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid XPath expression %q", expr)
	}
	var r []dom.Node
	seen := make(map[*html.Node]bool)
	it := x.Select(newNavigator(root))
	for it.MoveNext() {
		nav, ok := it.Current().(*navigator)
		if !ok {
			continue
		}
		h := nav.current
		for h != nil && h.Type != html.ElementNode {
			h = h.Parent
		}
		if h == nil || seen[h] {
			continue
		}
		seen[h] = true
		r = append(r, doc.node(h))
		if first {
			break
		}
	}
	return r, nil
}
