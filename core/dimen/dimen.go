// Package dimen implements dimensions, points and rectangles for box layout.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Dimen is a dimension type. Values are CSS pixels.
type Dimen = float64

// Some pre-defined dimensions, expressed in pixels
const (
	Zero Dimen = 0
	PX   Dimen = 1
	IN   Dimen = 96
	PT   Dimen = IN / 72
	CM   Dimen = IN / 2.54
	MM   Dimen = CM / 10
)

// Axis selects the horizontal or the vertical dimension of a point or size.
type Axis uint8

// There are two axis.
const (
	Horizontal Axis = iota // x, width
	Vertical               // y, height
)

func (a Axis) String() string {
	if a == Horizontal {
		return "h"
	}
	return "v"
}

// Point is a point in a coordinate frame.
type Point struct {
	X, Y Dimen
}

// Origin is origin
var Origin = Point{0, 0}

// On returns the coordinate of p on axis a.
func (p Point) On(a Axis) Dimen {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Size is the extent of a box.
type Size struct {
	W, H Dimen
}

// On returns the extent of s on axis a.
func (s Size) On(a Axis) Dimen {
	if a == Horizontal {
		return s.W
	}
	return s.H
}

// Rect is a rectangle, given by its four edges.
type Rect struct {
	Left, Top, Right, Bottom Dimen
}

// RectFrom creates a rectangle from its top-left corner and its size.
func RectFrom(topL Point, sz Size) Rect {
	return Rect{
		Left:   topL.X,
		Top:    topL.Y,
		Right:  topL.X + sz.W,
		Bottom: topL.Y + sz.H,
	}
}

// Width returns the width of a rectangle, i.e. the difference between
// the right and the left edge.
func (r Rect) Width() Dimen {
	return r.Right - r.Left
}

// Height returns the height of a rectangle, i.e. the difference between
// the bottom and the top edge.
func (r Rect) Height() Dimen {
	return r.Bottom - r.Top
}

func (r Rect) String() string {
	return fmt.Sprintf("[l=%g t=%g r=%g b=%g]", r.Left, r.Top, r.Right, r.Bottom)
}

// Edges is a set of rectangle edges.
type Edges uint8

// The four edges of a rectangle.
const (
	LeftEdge Edges = 1 << iota
	TopEdge
	RightEdge
	BottomEdge
)

// Changed returns the set of edges where r differs from other.
func (r Rect) Changed(other Rect) Edges {
	var e Edges
	if r.Left != other.Left {
		e |= LeftEdge
	}
	if r.Top != other.Top {
		e |= TopEdge
	}
	if r.Right != other.Right {
		e |= RightEdge
	}
	if r.Bottom != other.Bottom {
		e |= BottomEdge
	}
	return e
}

func (e Edges) String() string {
	var names []string
	for i, n := range []string{"left", "top", "right", "bottom"} {
		if e&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(px|pt|mm|cm|in)?$`)

// ErrFormat is returned for strings not denoting a dimension.
var ErrFormat = errors.New("format error parsing dimension")

// ParseDimen parses a string to return a dimension. Syntax is CSS Unit,
// restricted to absolute units. Unit-less values are pixels.
func ParseDimen(s string) (Dimen, error) {
	d := dimenPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if len(d) < 2 {
		return 0, ErrFormat
	}
	scale := PX
	if len(d) > 2 {
		switch d[2] {
		case "px", "":
			scale = PX
		case "pt":
			scale = PT
		case "mm":
			scale = MM
		case "cm":
			scale = CM
		case "in":
			scale = IN
		}
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, ErrFormat
	}
	return n * scale, nil
}

var leadingNumber = regexp.MustCompile(`^[+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+\-]?[0-9]+)?`)

// LeadingNumber parses the longest numeric prefix of s, ignoring leading
// white space. Any trailing characters are ignored ("20px" yields 20).
// If s does not start with a number, false is returned.
func LeadingNumber(s string) (Dimen, bool) {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Format returns the CSS pixel notation of a dimension.
func Format(d Dimen) string {
	return strconv.FormatFloat(d, 'f', -1, 64) + "px"
}
