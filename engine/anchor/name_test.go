package anchor

import (
	"testing"

	"github.com/npillmayer/anchorlayout/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anchor.engine")
	defer teardown()
	//
	for alias, want := range map[string]Name{
		"lefttop": LeftTop, "TopLeft": LeftTop, "lfttop": LeftTop, "toplft": LeftTop,
		"rgt": Right, "BTM": Bottom, "center": Center, " bottomright ": RightBottom,
	} {
		n, ok := ParseName(alias)
		assert.True(t, ok, alias)
		assert.Equal(t, want, n, alias)
	}
	_, ok := ParseName("middle")
	assert.False(t, ok)
	assert.Equal(t, "rightbottom", RightBottom.String())
}

func TestScales(t *testing.T) {
	assert.Equal(t, Scale{1, 1}, LeftTop.Scale())
	assert.Equal(t, Scale{0, -1}, Bottom.Scale())
	assert.Equal(t, Scale{-1, 0}, Right.Scale())
	assert.Equal(t, int8(-1), RightTop.Scale().On(dimen.Horizontal))
	assert.Equal(t, int8(1), RightTop.Scale().On(dimen.Vertical))
}

func TestAttributeNames(t *testing.T) {
	names := AttributeNames()
	assert.Len(t, names, len(aliases))
	assert.Equal(t, "lefttop", names[0])
	assert.Equal(t, "rightbottom", names[len(names)-4])
	assert.Contains(t, names, "btmrgt")
}
