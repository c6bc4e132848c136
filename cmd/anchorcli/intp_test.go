package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/anchorlayout/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anchor.cli")
	defer teardown()
	//
	cmd, err := parseCommand("set #menu width 200px")
	require.NoError(t, err)
	assert.Equal(t, SET, cmd.code)
	assert.Equal(t, []string{"#menu", "width", "200px"}, cmd.args)
	cmd, err = parseCommand("attr #badge center #menu.center:0, 10")
	require.NoError(t, err)
	assert.Equal(t, "#menu.center:0, 10", cmd.args[2])
	_, err = parseCommand("resize 100")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = parseCommand("frobnicate")
	assert.Error(t, err)
}

func TestDemoSession(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anchor.cli")
	defer teardown()
	//
	intp, err := load("")
	require.NoError(t, err)
	require.NoError(t, intp.engine.Layout(context.Background()))
	content, err := intp.element("#content")
	require.NoError(t, err)
	assert.Equal(t, "188px", intp.row(content)[2])
	assert.Equal(t, "828px", intp.row(content)[4])
	//
	for _, line := range []string{"set #menu width 200px", "resize 800 600", "cycles", "show #badge"} {
		cmd, err := parseCommand(line)
		require.NoError(t, err)
		quit, err := intp.execute(cmd)
		require.NoError(t, err, line)
		assert.False(t, quit)
	}
	assert.Equal(t, "208px", intp.row(content)[2])
	assert.Equal(t, "584px", intp.row(content)[4])
	//
	var buf bytes.Buffer
	intp.out = &buf
	_, err = intp.execute(&Command{code: HTML})
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), `id="badge"`))
	_, err = intp.element("#nothing")
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestSettleStopsOnCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anchor.cli")
	defer teardown()
	//
	intp, err := load("")
	require.NoError(t, err)
	require.NoError(t, intp.engine.Layout(context.Background()))
	intp.limit = 20 * time.Millisecond
	for _, line := range []string{"attr #badge center", "attr #badge lefttop #menu.lefttop:10,0"} {
		cmd, err := parseCommand(line)
		require.NoError(t, err)
		_, err = intp.execute(cmd)
		require.NoError(t, err, line)
	}
	cmd, err := parseCommand("attr #menu lefttop #badge.lefttop:10,0")
	require.NoError(t, err)
	_, err = intp.execute(cmd)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, core.EINTERNAL, core.Code(err))
	assert.Len(t, intp.engine.Cycles(), 1)
}
