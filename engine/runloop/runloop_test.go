package runloop

import (
	"context"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestMicrotasksBeforeMacrotask(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anchor.loop")
	defer teardown()
	//
	l := New()
	var trace []string
	l.Post(func() { trace = append(trace, "macro1") })
	l.Post(func() { trace = append(trace, "macro2") })
	l.Queue(func() {
		trace = append(trace, "micro1")
		l.Queue(func() { trace = append(trace, "micro2") })
	})
	more := l.Turn()
	assert.True(t, more)
	assert.Equal(t, []string{"micro1", "micro2", "macro1"}, trace)
	more = l.Turn()
	assert.False(t, more)
	assert.Equal(t, []string{"micro1", "micro2", "macro1", "macro2"}, trace)
	assert.Equal(t, 2, l.Turns())
}

func TestPostedDuringTurnRunsLater(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anchor.loop")
	defer teardown()
	//
	l := New()
	count := 0
	l.Post(func() {
		count++
		l.Post(func() { count++ })
	})
	l.Turn()
	assert.Equal(t, 1, count)
	assert.True(t, l.Pending())
	l.Turn()
	assert.Equal(t, 2, count)
	assert.False(t, l.Pending())
}

func TestRunUntil(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anchor.loop")
	defer teardown()
	//
	l := New()
	count := 0
	var step func()
	step = func() {
		count++
		l.Post(step)
	}
	l.Post(step)
	err := l.RunUntil(context.Background(), func() bool { return count >= 5 })
	assert.NoError(t, err)
	assert.Equal(t, 5, count)
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = l.RunUntil(ctx, func() bool { return false })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 5, count)
}

func TestDrainEmpty(t *testing.T) {
	l := New()
	assert.NoError(t, l.Drain(context.Background()))
	assert.Equal(t, 0, l.Turns())
	l.Queue(nil)
	l.Post(nil)
	assert.False(t, l.Pending())
}
