package anchor

import (
	"testing"

	"github.com/npillmayer/anchorlayout/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseConstraint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anchor.engine")
	defer teardown()
	//
	for i, x := range []struct {
		input  string
		target TargetRef
		anchor Name
		offset dimen.Point
	}{
		{"", Parent(), Left, dimen.Point{}},
		{"parent", Parent(), Left, dimen.Point{}},
		{"rgttop", Parent(), RightTop, dimen.Point{}},
		{"window", Viewport(), Left, dimen.Point{}},
		{"window.center:10,-5", Viewport(), Center, dimen.Point{X: 10, Y: -5}},
		{"prev.right", Previous(), Right, dimen.Point{}},
		{"previous", Previous(), Left, dimen.Point{}},
		{"next.lfttop:3", Next(), LeftTop, dimen.Point{X: 3}},
		{"#header.rightbottom:1.5,2px", Selector("#header"), RightBottom, dimen.Point{X: 1.5, Y: 2}},
		{"#header", Selector("#header"), Left, dimen.Point{}},
		{"(div.box).top", Selector("div.box"), Top, dimen.Point{}},
		{"(p:first-child):4,4", Selector("p:first-child"), Left, dimen.Point{X: 4, Y: 4}},
		{"div.menu", Selector("div.menu"), Left, dimen.Point{}},
		{"//div[@id='x.y'].btm", Selector("//div[@id='x.y']"), Bottom, dimen.Point{}},
		{"parent.top:abc,7", Parent(), Top, dimen.Point{X: 0, Y: 7}},
	} {
		req := ParseConstraint(x.input, Left)
		assert.Equal(t, x.target, req.Target, "(%d) target of %q", i, x.input)
		assert.Equal(t, x.anchor, req.Anchor, "(%d) anchor of %q", i, x.input)
		if assert.NotNil(t, req.Offset) {
			assert.Equal(t, x.offset, *req.Offset, "(%d) offset of %q", i, x.input)
		}
	}
}

func TestLastIndexOutside(t *testing.T) {
	assert.Equal(t, 3, lastIndexOutside("a.b.c", '.'))
	assert.Equal(t, -1, lastIndexOutside("(a.b)", '.'))
	assert.Equal(t, 5, lastIndexOutside("(a.b).c", '.'))
	assert.Equal(t, -1, lastIndexOutside("[x=':']", ':'))
}
