package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweenReachesTarget(t *testing.T) {
	v := float32(-4)
	completed := 0
	tw := To(&v, -1, 1, Power2Out).OnComplete(func() { completed++ })

	assert.False(t, tw.Update(0.5))
	assert.Greater(t, v, float32(-4))
	assert.Less(t, v, float32(-1))
	assert.True(t, tw.Active())

	assert.True(t, tw.Update(0.6))
	assert.Equal(t, float32(-1), v)
	assert.Equal(t, 1, completed)

	// Further updates do nothing.
	assert.True(t, tw.Update(1))
	assert.Equal(t, 1, completed)
}

func TestTweenDelayCapturesStartLate(t *testing.T) {
	v := float32(0)
	tw := To(&v, 10, 1, Linear).Delay(1)

	tw.Update(0.5)
	assert.Equal(t, float32(0), v)
	assert.False(t, tw.Active())

	// Something else moves the value before the tween starts.
	v = 5
	tw.Update(1.0) // local 1.5, half way
	assert.InDelta(t, 7.5, v, 1e-4)
}

func TestTweenKill(t *testing.T) {
	v := float32(0)
	called := false
	tw := To(&v, 10, 1, Linear).OnComplete(func() { called = true })
	tw.Update(0.25)
	tw.Kill()
	before := v
	assert.True(t, tw.Update(1))
	assert.Equal(t, before, v)
	assert.False(t, called)
	assert.False(t, tw.Running())
}

func TestZeroDurationTween(t *testing.T) {
	v := float32(1)
	tw := To(&v, 3, 0, nil)
	assert.True(t, tw.Update(0))
	assert.Equal(t, float32(3), v)
}

func TestTimelineAbsolutePositions(t *testing.T) {
	a, b := float32(0), float32(0)
	tl := NewTimeline().
		Add(To(&a, 1, 1, Linear), At(0)).
		Add(To(&b, 1, 1, Linear), At(0.5))

	assert.InDelta(t, 1.5, tl.Duration(), 1e-6)

	tl.Update(0.25)
	assert.InDelta(t, 0.25, a, 1e-4)
	assert.Equal(t, float32(0), b)

	tl.Update(0.5) // t = 0.75
	assert.InDelta(t, 0.75, a, 1e-4)
	assert.InDelta(t, 0.25, b, 1e-4)

	assert.True(t, tl.Update(1))
	assert.Equal(t, float32(1), a)
	assert.Equal(t, float32(1), b)
	assert.True(t, tl.Done())
}

func TestTimelineLabelsCreatedAtEnd(t *testing.T) {
	var menu, title, head, desc float32
	tl := NewTimeline()
	tl.Add(To(&menu, 1, 1, Linear).Delay(2), Label("b"))
	tl.Add(To(&title, 1, 1, Linear).Delay(2), Label("b"))
	tl.Add(To(&head, 1, 1, Linear), Label("a"))
	tl.Add(To(&desc, 1, 1, Linear), Label("a"))

	b, ok := tl.LabelTime("b")
	require.True(t, ok)
	assert.Equal(t, float32(0), b)
	a, ok := tl.LabelTime("a")
	require.True(t, ok)
	assert.Equal(t, float32(3), a)
	assert.Equal(t, float32(4), tl.Duration())
	assert.Equal(t, tl.StartOf(2), tl.StartOf(3))
}

func TestTimelineEndAppends(t *testing.T) {
	var a, b float32
	tl := NewTimeline()
	tl.Add(To(&a, 1, 2, Linear), nil)
	tl.Add(To(&b, 1, 1, Linear), End())
	assert.Equal(t, float32(2), tl.StartOf(1))
	assert.Equal(t, float32(3), tl.Duration())
}

func TestTimelineKill(t *testing.T) {
	var a float32
	tl := NewTimeline().Add(To(&a, 1, 1, Linear), At(0))
	tl.Update(0.5)
	tl.Kill()
	assert.True(t, tl.Done())
	v := a
	tl.Update(1)
	assert.Equal(t, v, a)
}
