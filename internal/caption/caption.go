package caption

import (
	"planet-tour/internal/anim"
	"planet-tour/internal/planets"
)

const (
	// FadeDuration is the length of each half of the crossfade, in seconds.
	FadeDuration = 0.5
	// RestOffset is the on-screen vertical offset of the text blocks, in pixels.
	RestOffset = 450
	// EnterOffset is how far from zero the text restarts before fading back in.
	EnterOffset = 50
)

// Block is the display state of one text element. The overlay reads it every frame.
type Block struct {
	Text    string
	Opacity float32
	OffsetY float32
}

type phase int

const (
	idle phase = iota
	fadingOut
	fadingIn
)

// Caption crossfades the heading and description between planets. Text is only replaced
// while both blocks are fully transparent, so stale text is never visible after a fade-in.
type Caption struct {
	Heading     *Block
	Description *Block

	cat       planets.Catalog
	phase     phase
	shown     int
	pending   int
	direction int
	tweens    []*anim.Tween
}

// New returns a caption showing planet 0. The blocks start hidden; the entrance
// sequence reveals them.
func New(cat planets.Catalog) *Caption {
	c := &Caption{
		Heading:     &Block{},
		Description: &Block{},
		cat:         cat,
	}
	if cat.Count() > 0 {
		c.Heading.Text = cat.Planets[0].Name
		c.Description.Text = cat.Planets[0].Description
	}
	return c
}

// Show switches the caption to planet index. direction > 0 makes the new text enter from
// below (+EnterOffset), anything else from above.
//
// During a fade-out only the target changes; the swap happens once, at the end of the
// fade, with the latest index. During a fade-in the fade-out restarts from where the
// blocks currently are.
func (c *Caption) Show(index, direction int) {
	if index < 0 || index >= c.cat.Count() {
		return
	}
	c.pending = index
	c.direction = direction
	if c.phase == fadingOut {
		return
	}
	c.stop()
	c.phase = fadingOut
	c.tweens = []*anim.Tween{
		anim.To(&c.Heading.Opacity, 0, FadeDuration, anim.Linear),
		anim.To(&c.Heading.OffsetY, 0, FadeDuration, anim.Linear),
		anim.To(&c.Description.Opacity, 0, FadeDuration, anim.Linear),
		anim.To(&c.Description.OffsetY, 0, FadeDuration, anim.Linear).OnComplete(c.swap),
	}
}

// swap runs when the fade-out completes.
func (c *Caption) swap() {
	p := c.cat.Planets[c.pending]
	c.shown = c.pending
	offset := float32(-EnterOffset)
	if c.direction > 0 {
		offset = EnterOffset
	}
	c.Heading.Text = p.Name
	c.Heading.OffsetY = offset
	c.Description.Text = p.Description
	c.Description.OffsetY = offset

	c.phase = fadingIn
	c.tweens = []*anim.Tween{
		anim.To(&c.Heading.Opacity, 1, FadeDuration, anim.Power1InOut),
		anim.To(&c.Heading.OffsetY, RestOffset, FadeDuration, anim.Power1InOut),
		anim.To(&c.Description.Opacity, 1, FadeDuration, anim.Power1InOut),
		anim.To(&c.Description.OffsetY, RestOffset, FadeDuration, anim.Power1InOut).OnComplete(func() {
			c.phase = idle
		}),
	}
}

func (c *Caption) stop() {
	for _, tw := range c.tweens {
		tw.Kill()
	}
	c.tweens = nil
}

// Update advances the running fade by dt seconds.
func (c *Caption) Update(dt float32) {
	// swap replaces c.tweens from inside a completion callback; iterate a snapshot.
	cur := c.tweens
	for _, tw := range cur {
		tw.Update(dt)
	}
}

// Index returns the planet whose text is currently in the blocks.
func (c *Caption) Index() int {
	return c.shown
}

// Pending returns the planet the caption is heading to.
func (c *Caption) Pending() int {
	return c.pending
}

// Settled reports whether no fade is running.
func (c *Caption) Settled() bool {
	return c.phase == idle
}
