package caption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planet-tour/internal/planets"
)

// step advances c in small frames for secs seconds.
func step(c *Caption, secs float32) {
	const dt = 1.0 / 60
	for t := float32(0); t < secs; t += dt {
		c.Update(dt)
	}
}

func visibleCaption(cat planets.Catalog) *Caption {
	c := New(cat)
	c.Heading.Opacity, c.Heading.OffsetY = 1, RestOffset
	c.Description.Opacity, c.Description.OffsetY = 1, RestOffset
	return c
}

func TestShowSwapsAfterFadeOut(t *testing.T) {
	cat := planets.Default()
	c := visibleCaption(cat)
	require.True(t, c.Settled())
	assert.Equal(t, "Mercury", c.Heading.Text)

	c.Show(3, 1)
	assert.False(t, c.Settled())

	step(c, 0.25)
	assert.Equal(t, "Mercury", c.Heading.Text, "text must not change mid fade-out")
	assert.Greater(t, c.Heading.Opacity, float32(0))

	step(c, 0.3)
	assert.Equal(t, "Mars", c.Heading.Text)
	assert.Equal(t, cat.Planets[3].Description, c.Description.Text)
	assert.Equal(t, 3, c.Index())

	step(c, 0.6)
	assert.True(t, c.Settled())
	assert.Equal(t, float32(1), c.Heading.Opacity)
	assert.Equal(t, float32(RestOffset), c.Heading.OffsetY)
	assert.Equal(t, float32(RestOffset), c.Description.OffsetY)
}

func TestTextHiddenWhenSwapped(t *testing.T) {
	c := visibleCaption(planets.Default())
	c.Show(2, -1)
	const dt = 1.0 / 60
	prev := c.Heading.Text
	for i := 0; i < 120; i++ {
		c.Update(dt)
		if c.Heading.Text != prev {
			assert.Equal(t, float32(0), c.Heading.Opacity, "text swapped while visible")
			assert.Equal(t, float32(-EnterOffset), c.Heading.OffsetY)
			prev = c.Heading.Text
		}
	}
	assert.Equal(t, "Earth", prev)
}

func TestRetargetDuringFadeOut(t *testing.T) {
	cat := planets.Default()
	c := visibleCaption(cat)
	c.Show(1, 1)
	step(c, 0.2)
	c.Show(2, 1)
	step(c, 0.2)
	c.Show(4, -1)
	step(c, 1.5)

	assert.True(t, c.Settled())
	assert.Equal(t, "Jupiter", c.Heading.Text)
	assert.Equal(t, cat.Planets[4].Description, c.Description.Text)
	assert.Equal(t, 4, c.Index())
}

func TestShowDuringFadeInRestarts(t *testing.T) {
	c := visibleCaption(planets.Default())
	c.Show(1, 1)
	step(c, 0.7) // in fade-in
	assert.Equal(t, "Venus", c.Heading.Text)
	c.Show(7, 1)
	step(c, 0.1)
	assert.Equal(t, "Venus", c.Heading.Text)
	step(c, 1.5)
	assert.Equal(t, "Neptune", c.Heading.Text)
	assert.Equal(t, float32(1), c.Heading.Opacity)
}

func TestShowOutOfRangeIgnored(t *testing.T) {
	c := visibleCaption(planets.Default())
	c.Show(8, 1)
	c.Show(-1, 1)
	assert.True(t, c.Settled())
}
