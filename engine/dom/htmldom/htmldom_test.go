package htmldom

import (
	"context"
	"strings"
	"testing"

	"github.com/npillmayer/anchorlayout/core/dimen"
	"github.com/npillmayer/anchorlayout/engine/dom"
	"github.com/npillmayer/anchorlayout/engine/runloop"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var page = `<html><body>
<div id="frame" style="position: relative; left: 10px; top: 20px; width: 300px; height: 200px">
  <p id="a" class="box" style="width: 50px; height: 30px">A</p>
  <p id="b" class="box" style="display: none; width: 40px">B</p>
  <span id="c">C</span>
</div>
</body></html>`

func load(t *testing.T) (*Document, *runloop.Loop) {
	loop := runloop.New()
	doc, err := ParseString(page, loop, dimen.Size{W: 800, H: 600})
	require.NoError(t, err)
	return doc, loop
}

func TestQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anchor.dom")
	defer teardown()
	//
	doc, _ := load(t)
	assert.Equal(t, "body", doc.Root().Name())
	n, err := doc.Query("#a")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "p#a", n.Name())
	n, err = doc.Query("#nothing")
	assert.NoError(t, err)
	assert.Nil(t, n)
	_, err = doc.Query("div[")
	assert.Error(t, err)
	//
	frame := doc.Element("#frame")
	all, err := doc.QueryAll(frame, "*")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	all, err = doc.QueryAll(frame, "div, p")
	require.NoError(t, err)
	assert.Len(t, all, 2, "scope must not match itself")
	assert.True(t, dom.Same(frame, doc.Element("#a").Parent()))
}

func TestXPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anchor.dom")
	defer teardown()
	//
	doc, _ := load(t)
	n, err := doc.Query("//p[@class='box']")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "p#a", n.Name())
	all, err := doc.QueryAll(nil, "//div/*")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	_, err = doc.Query("//p[")
	assert.Error(t, err)
}

func TestGeometry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anchor.dom")
	defer teardown()
	//
	doc, _ := load(t)
	frame := doc.Element("#frame")
	assert.Equal(t, dom.Relative, frame.Positioning())
	assert.Equal(t, dimen.Point{X: 10, Y: 20}, frame.Offset())
	assert.Equal(t, dimen.Size{W: 300, H: 200}, frame.Size())
	b := doc.Element("#b")
	assert.True(t, b.Hidden())
	assert.Equal(t, dimen.Size{}, b.Size())
	c := doc.Element("#c")
	assert.Equal(t, dom.Static, c.Positioning())
	assert.Equal(t, dimen.Size{}, c.Size())
	assert.Equal(t, "span#c", c.PreviousElement().NextElement().Name())
	assert.Nil(t, c.NextElement())
	vp := doc.Viewport()
	assert.True(t, vp.IsViewport())
	assert.Equal(t, dimen.Size{W: 800, H: 600}, vp.Size())
}

func TestWriteBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anchor.dom")
	defer teardown()
	//
	doc, _ := load(t)
	a := doc.Element("#a")
	a.SetPositioning(dom.Absolute)
	a.SetLeft(12.5)
	a.SetTop(7)
	assert.Equal(t, dimen.Point{X: 12.5, Y: 7}, a.Offset())
	s, _ := a.Attribute("style")
	assert.True(t, strings.Contains(s, "left: 12.5px;"), s)
	assert.True(t, strings.Contains(s, "position: absolute;"), s)
	assert.Equal(t, dom.Absolute, a.Positioning())
}

func TestUnterminatedStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anchor.dom")
	defer teardown()
	//
	st := parseInlineStyle("width: 10px; height: 20px")
	h, ok := st.get("height")
	assert.True(t, ok)
	assert.Equal(t, "20px", h)
	doc, err := ParseString(`<html><body>
		<div id="s" style="width: 10px; height: 20px"></div>
		<div id="h" style="left: 1px; display: none"></div>
		</body></html>`, runloop.New(), dimen.Size{W: 800, H: 600})
	require.NoError(t, err)
	s := doc.Element("#s")
	assert.Equal(t, dimen.Size{W: 10, H: 20}, s.Size())
	s.SetLeft(5)
	assert.Equal(t, dimen.Size{W: 10, H: 20}, s.Size())
	style, _ := s.Attribute("style")
	assert.True(t, strings.Contains(style, "height: 20px;"), style)
	assert.True(t, strings.Contains(style, "left: 5px;"), style)
	hn := doc.Element("#h")
	assert.True(t, hn.Hidden())
	hn.SetTop(3)
	assert.True(t, hn.Hidden())
	assert.Equal(t, dimen.Size{}, hn.Size())
}

func TestMutationBatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anchor.dom")
	defer teardown()
	//
	doc, loop := load(t)
	var batches [][]dom.Mutation
	cancel := doc.Observe(doc.Element("#frame"), func(m []dom.Mutation) {
		batches = append(batches, m)
	})
	a := doc.Element("#a")
	a.SetLeft(5)
	a.SetLeft(5) // unchanged, no record
	a.SetAttribute("data-x", "1")
	assert.Empty(t, batches, "delivery is asynchronous")
	loop.Turn()
	require.Len(t, batches, 1)
	assert.Len(t, batches[0], 2)
	assert.Equal(t, "style", batches[0][0].AttributeName)
	assert.True(t, dom.Same(a, batches[0][0].Target))
	//
	doc.Element("#c").Remove()
	loop.Turn()
	require.Len(t, batches, 2)
	assert.Equal(t, dom.ChildListMutation, batches[1][0].Kind)
	//
	cancel()
	a.SetTop(99)
	loop.Turn()
	assert.Len(t, batches, 2)
}

func TestViewportResize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anchor.dom")
	defer teardown()
	//
	doc, loop := load(t)
	n := 0
	doc.Observe(doc.Viewport(), func(m []dom.Mutation) {
		n += len(m)
		assert.Equal(t, dom.ResizeMutation, m[0].Kind)
	})
	doc.ResizeViewport(800, 600)
	doc.ResizeViewport(640, 480)
	loop.Drain(context.Background())
	assert.Equal(t, 1, n)
	assert.Equal(t, dimen.Size{W: 640, H: 480}, doc.Viewport().Size())
}

func TestAppendAndEvents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anchor.dom")
	defer teardown()
	//
	doc, _ := load(t)
	frame := doc.Element("#frame")
	n := doc.CreateElement("DIV")
	assert.Nil(t, n.Parent())
	require.NoError(t, frame.AppendChild(n))
	assert.True(t, dom.Same(frame, n.Parent()))
	assert.Error(t, n.AppendChild(frame))
	//
	var events []string
	doc.AddEventListener(n, "anchor.update", func(target dom.Node, ev string) {
		events = append(events, ev)
	})
	n.DispatchEvent("anchor.update")
	n.DispatchEvent("other")
	assert.Equal(t, []string{"anchor.update"}, events)
}

func TestViewportFromConfig(t *testing.T) {
	teardown := testconfig.QuickConfig(t, map[string]string{
		"anchor.viewport-width": "640",
	})
	defer teardown()
	//
	vp := ViewportFromConfig()
	assert.Equal(t, dimen.Size{W: 640, H: DefaultViewportHeight}, vp)
}
