package anchor

import (
	"strings"

	"github.com/npillmayer/anchorlayout/core/dimen"
	"github.com/npillmayer/anchorlayout/engine/dom"
)

// TargetKind tells how the target element of a link is found.
type TargetKind uint8

// Kinds of link targets. TargetNone denotes an omitted target.
const (
	TargetNone TargetKind = iota
	TargetParent
	TargetViewport
	TargetPrevious
	TargetNext
	TargetSelector
	TargetNode
)

// TargetRef references the target element of a link.
type TargetRef struct {
	Kind     TargetKind
	Selector string   // for TargetSelector
	Node     dom.Node // for TargetNode
}

// Parent references the parent element.
func Parent() TargetRef { return TargetRef{Kind: TargetParent} }

// Viewport references the viewport.
func Viewport() TargetRef { return TargetRef{Kind: TargetViewport} }

// Previous references the previous element sibling.
func Previous() TargetRef { return TargetRef{Kind: TargetPrevious} }

// Next references the next element sibling.
func Next() TargetRef { return TargetRef{Kind: TargetNext} }

// Selector references the first element matching a CSS selector or, if the
// selector starts with a slash, an XPath expression.
func Selector(sel string) TargetRef { return TargetRef{Kind: TargetSelector, Selector: sel} }

// To references a host element directly.
func To(n dom.Node) TargetRef { return TargetRef{Kind: TargetNode, Node: n} }

func (t TargetRef) String() string {
	switch t.Kind {
	case TargetParent:
		return "parent"
	case TargetViewport:
		return "window"
	case TargetPrevious:
		return "prev"
	case TargetNext:
		return "next"
	case TargetSelector:
		return "(" + t.Selector + ")"
	case TargetNode:
		if t.Node != nil {
			return t.Node.Name()
		}
	}
	return "<none>"
}

// LinkRequest describes a link from an anchor to an anchor of a target
// element. Zero values select defaults, see Anchor.Link.
type LinkRequest struct {
	Target   TargetRef
	Anchor   Name
	Offset   *dimen.Point // nil leaves the current offset unchanged
	NoUpdate bool         // do not schedule a recomputation
}

// At is a helper to create an offset for a link request.
func At(dx, dy dimen.Dimen) *dimen.Point {
	return &dimen.Point{X: dx, Y: dy}
}

// ParseConstraint parses the value of an anchor attribute:
//
//	[target.]anchor[:dx,dy]
//
// self is the name of the anchor carrying the attribute; it is the default
// for the target anchor. Parsing is permissive: malformed or missing offsets
// are 0, and a trailing segment which is not an anchor name is taken as part
// of the target. Dots and colons inside parentheses, brackets or quotes do
// not separate segments.
func ParseConstraint(s string, self Name) LinkRequest {
	req := LinkRequest{Anchor: self, Offset: &dimen.Point{}}
	if i := lastIndexOutside(s, ':'); i >= 0 {
		xy := strings.SplitN(s[i+1:], ",", 2)
		req.Offset.X, _ = dimen.LeadingNumber(xy[0])
		if len(xy) > 1 {
			req.Offset.Y, _ = dimen.LeadingNumber(xy[1])
		}
		s = s[:i]
	}
	if i := lastIndexOutside(s, '.'); i >= 0 {
		if n, ok := ParseName(s[i+1:]); ok {
			req.Anchor = n
			s = s[:i]
		}
	} else if n, ok := ParseName(s); ok {
		req.Anchor = n
		s = ""
	}
	req.Target = parseTarget(s)
	return req
}

func parseTarget(s string) TargetRef {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "parent":
		return Parent()
	case "window", "viewport":
		return Viewport()
	case "prev", "previous":
		return Previous()
	case "next":
		return Next()
	}
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return Selector(s)
}

// lastIndexOutside returns the index of the last occurrence of sep which is
// not nested in parentheses, brackets or quotes, or -1.
func lastIndexOutside(s string, sep byte) int {
	depth, last := 0, -1
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			if depth > 0 {
				depth--
			}
		case c == sep && depth == 0:
			last = i
		}
	}
	return last
}
