package entrance

import (
	"planet-tour/internal/anim"
	"planet-tour/internal/caption"
	"planet-tour/internal/scene"
)

const (
	// Stagger is the start offset between consecutive planets, in seconds.
	Stagger = 0.15
	// Duration is the rise time of each planet.
	Duration = 1.0
	// RingSlot pins the ring's start after the last of eight planets.
	RingSlot = 7

	chromeDelay    = 2.0
	chromeDuration = 1.0
)

// Spheres drops every planet (and the ring) to the layout's start height and returns a
// timeline that raises planet k to its resting height starting at k*Stagger.
func Spheres(s *scene.Scene) *anim.Timeline {
	tl := anim.NewTimeline()
	for k, sp := range s.Spheres {
		sp.Position[1] = s.Layout.StartY
		tl.Add(anim.To(&sp.Position[1], s.Layout.RestY, Duration, anim.Power2Out), anim.At(float32(k)*Stagger))
	}
	if s.Ring != nil {
		s.Ring.Position[1] = s.Layout.StartY
		tl.Add(anim.To(&s.Ring.Position[1], s.Layout.RestY, Duration, anim.Power2Out), anim.At(RingSlot*Stagger))
	}
	return tl
}

// ChromeTargets are the overlay elements revealed after load.
type ChromeTargets struct {
	Menu        *caption.Block
	NavTitle    *caption.Block
	Heading     *caption.Block
	Description *caption.Block
}

// Chrome returns the overlay reveal: the side menu and nav title fade in together at
// label "b" after a delay, then heading and description rise to their resting offset at
// label "a".
func Chrome(c ChromeTargets) *anim.Timeline {
	tl := anim.NewTimeline()
	tl.Add(anim.To(&c.Menu.Opacity, 1, chromeDuration, anim.Power2InOut).Delay(chromeDelay), anim.Label("b"))
	tl.Add(anim.To(&c.NavTitle.Opacity, 1, chromeDuration, anim.Power2InOut).Delay(chromeDelay), anim.Label("b"))
	for _, b := range []*caption.Block{c.Heading, c.Description} {
		tl.Add(anim.To(&b.OffsetY, caption.RestOffset, chromeDuration, anim.Power2InOut), anim.Label("a"))
		tl.Add(anim.To(&b.Opacity, 1, chromeDuration, anim.Power2InOut), anim.Label("a"))
	}
	return tl
}

// Sequencer plays both entrance timelines. Run it once per tour; a second run would
// fight the first over the same properties.
type Sequencer struct {
	spheres *anim.Timeline
	chrome  *anim.Timeline
}

// Start builds both timelines and positions everything at its starting state.
func Start(s *scene.Scene, c ChromeTargets) *Sequencer {
	return &Sequencer{spheres: Spheres(s), chrome: Chrome(c)}
}

// Update advances both timelines by dt seconds.
func (q *Sequencer) Update(dt float32) {
	if !q.spheres.Done() {
		q.spheres.Update(dt)
	}
	if !q.chrome.Done() {
		q.chrome.Update(dt)
	}
}

// Done reports whether the whole entrance has played.
func (q *Sequencer) Done() bool {
	return q.spheres.Done() && q.chrome.Done()
}
