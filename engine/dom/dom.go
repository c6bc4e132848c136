package dom

import (
	"strings"

	"github.com/npillmayer/anchorlayout/core/dimen"
)

// Key is a stable identity token for a host element. Keys are unique within
// a document and never re-used.
type Key uint64

// Positioning is the CSS positioning scheme of an element.
type Positioning uint8

// Positioning schemes, following CSS 'position'.
const (
	Static Positioning = iota
	Relative
	Absolute
	Fixed
)

var positioningNames = [...]string{"static", "relative", "absolute", "fixed"}

func (p Positioning) String() string {
	if int(p) < len(positioningNames) {
		return positioningNames[p]
	}
	return "static"
}

// IsPositioned is a predicate: does an element with this positioning scheme
// establish a coordinate frame for its descendants?
func (p Positioning) IsPositioned() bool {
	return p == Relative || p == Absolute || p == Fixed
}

// ParsePositioning returns the positioning scheme for a CSS 'position' value.
// Unknown values yield Static.
func ParsePositioning(s string) Positioning {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "relative":
		return Relative
	case "absolute":
		return Absolute
	case "fixed":
		return Fixed
	}
	return Static
}

// Attribute is a name/value pair of an element.
type Attribute struct {
	Name  string
	Value string
}

// Node is a host element. The viewport is a special node without parent,
// positioned at (0,0) and sized to the visible viewport dimensions.
type Node interface {
	Key() Key
	IsViewport() bool
	Name() string                         // short name for diagnostics
	Parent() Node                         // parent element or nil
	PreviousElement() Node                // previous element sibling or nil
	NextElement() Node                    // next element sibling or nil
	Attribute(name string) (string, bool) // attribute value, if present
	Attributes() []Attribute              // all attributes, in document order
	Positioning() Positioning
	SetPositioning(Positioning)
	Offset() dimen.Point // position within the coordinate frame
	Size() dimen.Size    // measured size; zero for hidden elements
	Hidden() bool
	SetLeft(dimen.Dimen)
	SetTop(dimen.Dimen)
	SetWidth(dimen.Dimen)
	SetHeight(dimen.Dimen)
	DispatchEvent(name string)
}

// MutationKind classifies mutations of the host tree.
type MutationKind uint8

// Kinds of mutations.
const (
	AttributeMutation MutationKind = iota // an attribute changed, including 'style'
	ChildListMutation                     // children were added or removed
	ResizeMutation                        // the viewport changed its size
)

func (k MutationKind) String() string {
	switch k {
	case AttributeMutation:
		return "attributes"
	case ChildListMutation:
		return "childList"
	case ResizeMutation:
		return "resize"
	}
	return "unknown"
}

// Mutation is a record of a change to the host tree.
type Mutation struct {
	Kind          MutationKind
	Target        Node
	AttributeName string // for attribute mutations
	OldValue      string // for attribute mutations
	Removed       bool   // for attribute mutations: attribute has been removed
}

// Callback receives a batch of mutation records.
type Callback func([]Mutation)

// Document is a host element tree.
type Document interface {
	Viewport() Node
	Root() Node                                           // default scope for attribute scans
	Query(selector string) (Node, error)                  // first matching element or nil
	QueryAll(scope Node, selector string) ([]Node, error) // matching descendants of scope
	// Observe registers a callback for mutations of n and its subtree.
	// Mutations are delivered asynchronously, in batches. The returned
	// function cancels the registration.
	Observe(n Node, cb Callback) (cancel func())
}

// Walk calls f for n and every ancestor of n, innermost first, until f
// returns false.
func Walk(n Node, f func(Node) bool) {
	for ; n != nil; n = n.Parent() {
		if !f(n) {
			return
		}
	}
}

// Same is a predicate: do a and b denote the same host element?
func Same(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}
