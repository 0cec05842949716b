package nav

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planet-tour/internal/caption"
	"planet-tour/internal/planets"
	"planet-tour/internal/scene"
)

// withCaption wires a controller to a real caption, as the tour does.
func withCaption() (*Controller, *caption.Caption, planets.Catalog, *fakeClock) {
	cat := planets.Default()
	sc := scene.Build(cat, scene.DefaultLayout())
	capt := caption.New(cat)
	clk := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	return New(sc, &sc.Group.Position, capt, clk.now), capt, cat, clk
}

// frames advances the controller and caption together in 60 Hz steps.
func frames(c *Controller, capt *caption.Caption, secs float32) {
	const dt = 1.0 / 60
	for t := float32(0); t < secs; t += dt {
		c.Update(dt)
		capt.Update(dt)
	}
}

func assertCaptionShows(t *testing.T, capt *caption.Caption, cat planets.Catalog, index int) {
	t.Helper()
	require.True(t, capt.Settled())
	assert.Equal(t, index, capt.Index())
	assert.Equal(t, cat.Planets[index].Name, capt.Heading.Text)
	assert.Equal(t, cat.Planets[index].Description, capt.Description.Text)
	assert.InDelta(t, 1, capt.Heading.Opacity, 1e-5)
	assert.InDelta(t, caption.RestOffset, capt.Description.OffsetY, 1e-3)
}

func TestClickDuringFadeOutShowsClickedPlanet(t *testing.T) {
	c, capt, cat, _ := withCaption()
	require.True(t, c.Scroll(1))
	frames(c, capt, 0.2)
	require.False(t, capt.Settled())
	assert.Equal(t, cat.Planets[0].Name, capt.Heading.Text, "text must not change mid fade-out")

	require.True(t, c.Select(5))
	frames(c, capt, 2*caption.FadeDuration+0.1)

	assert.Equal(t, 5, c.Index())
	assertCaptionShows(t, capt, cat, 5)
}

func TestCaptionFollowsRandomNavigation(t *testing.T) {
	c, capt, cat, clk := withCaption()
	rng := rand.New(rand.NewSource(11))
	require.True(t, c.Scroll(1))
	accepted := 1
	for i := 0; i < 300; i++ {
		var ok bool
		if rng.Intn(2) == 0 {
			ok = c.Scroll(float32(rng.Intn(200) - 100))
		} else {
			ok = c.Select(rng.Intn(cat.Count()))
		}
		if ok {
			accepted++
		}
		frames(c, capt, float32(rng.Intn(40))/60)
		clk.advance(time.Duration(rng.Intn(1500)) * time.Millisecond)

		if i%25 == 24 {
			frames(c, capt, 2*caption.FadeDuration+0.1)
			assertCaptionShows(t, capt, cat, c.Index())
		}
	}
	frames(c, capt, 2*caption.FadeDuration+0.1)
	assertCaptionShows(t, capt, cat, c.Index())
	assert.Greater(t, accepted, 20)
}
