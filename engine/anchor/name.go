package anchor

import (
	"sort"
	"strings"

	"github.com/npillmayer/anchorlayout/core/dimen"
	"golang.org/x/text/cases"
)

// Name identifies one of the nine anchors of an element.
type Name uint8

// The nine anchor names. NoName is used for unset names.
const (
	NoName Name = iota
	LeftTop
	Top
	RightTop
	Left
	Center
	Right
	LeftBottom
	Bottom
	RightBottom
)

// AllNames lists the anchor names in reading order.
var AllNames = [...]Name{LeftTop, Top, RightTop, Left, Center, Right, LeftBottom, Bottom, RightBottom}

var canonicalNames = [...]string{"", "lefttop", "top", "righttop", "left", "center",
	"right", "leftbottom", "bottom", "rightbottom"}

func (n Name) String() string {
	if int(n) < len(canonicalNames) && n != NoName {
		return canonicalNames[n]
	}
	return "<no anchor>"
}

// aliases maps every accepted spelling to its anchor name.
var aliases = map[string]Name{
	"lefttop": LeftTop, "topleft": LeftTop, "lfttop": LeftTop, "toplft": LeftTop,
	"top":      Top,
	"righttop": RightTop, "topright": RightTop, "rgttop": RightTop, "toprgt": RightTop,
	"left": Left, "lft": Left,
	"center": Center,
	"right":  Right, "rgt": Right,
	"leftbottom": LeftBottom, "bottomleft": LeftBottom, "lftbtm": LeftBottom, "btmlft": LeftBottom,
	"bottom": Bottom, "btm": Bottom,
	"rightbottom": RightBottom, "bottomright": RightBottom, "rgtbtm": RightBottom, "btmrgt": RightBottom,
}

// ParseName returns the anchor name for a name or alias. Matching is
// case-insensitive.
func ParseName(s string) (Name, bool) {
	n, ok := aliases[cases.Fold().String(strings.TrimSpace(s))]
	return n, ok
}

// AttributeNames returns all spellings of anchor names which are recognized
// as anchor attributes, sorted by anchor.
func AttributeNames() []string {
	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := aliases[names[i]], aliases[names[j]]
		if a != b {
			return a < b
		}
		if ci, cj := names[i] == a.String(), names[j] == b.String(); ci != cj {
			return ci
		}
		return names[i] < names[j]
	})
	return names
}

// Scale tells which edge or center an anchor represents on each axis:
// 1 is the start edge (left or top), 0 the center, -1 the end edge.
type Scale struct {
	X, Y int8
}

var scales = [...]Scale{
	NoName:      {},
	LeftTop:     {1, 1},
	Top:         {0, 1},
	RightTop:    {-1, 1},
	Left:        {1, 0},
	Center:      {0, 0},
	Right:       {-1, 0},
	LeftBottom:  {1, -1},
	Bottom:      {0, -1},
	RightBottom: {-1, -1},
}

// Scale returns the scale of an anchor name.
func (n Name) Scale() Scale {
	if int(n) < len(scales) {
		return scales[n]
	}
	return Scale{}
}

// On returns the scale on axis a.
func (s Scale) On(a dimen.Axis) int8 {
	if a == dimen.Horizontal {
		return s.X
	}
	return s.Y
}

// Anchors are resolved in a fixed order per axis. Start edges come first,
// so that center and end anchors can derive a size from an already
// resolved coordinate.
var resolutionOrder = [2][9]Name{
	dimen.Horizontal: {LeftTop, Left, LeftBottom, Top, Center, Bottom, RightTop, Right, RightBottom},
	dimen.Vertical:   {LeftTop, Top, RightTop, Left, Center, Right, LeftBottom, Bottom, RightBottom},
}
