package nav

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"planet-tour/internal/anim"
)

const (
	// Cooldown is the minimum time between two accepted scroll transitions.
	Cooldown = 1000 * time.Millisecond
	// MoveDuration is the container animation length, in seconds.
	MoveDuration = 1.0
)

// Captioner receives the new index after every accepted transition.
type Captioner interface {
	Show(index, direction int)
}

// Layout maps an index to the absolute container offset that frames it.
type Layout interface {
	Count() int
	Offset(index int) mgl32.Vec3
}

// Controller owns the navigation state: the selected planet and the container position.
// All methods run on the frame loop goroutine.
type Controller struct {
	layout    Layout
	container *mgl32.Vec3
	caption   Captioner
	now       func() time.Time

	index      int
	lastScroll time.Time
	scrolled   bool
	moves      []*anim.Tween

	// OnTransition, if set, is called after every accepted transition.
	OnTransition func(from, to int)
}

// New returns a controller at index 0. container is the group position it animates.
// now may be nil to use the wall clock.
func New(layout Layout, container *mgl32.Vec3, caption Captioner, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{layout: layout, container: container, caption: caption, now: now}
}

// Index returns the selected planet.
func (c *Controller) Index() int {
	return c.index
}

// Scroll handles a wheel event. deltaY > 0 moves to the next planet, < 0 to the previous.
// Events inside the cooldown window after the last accepted scroll are dropped, as are
// moves past either end. Reports whether the transition was accepted.
func (c *Controller) Scroll(deltaY float32) bool {
	if deltaY == 0 {
		return false
	}
	t := c.now()
	if c.scrolled && t.Sub(c.lastScroll) < Cooldown {
		return false
	}
	direction := 1
	if deltaY < 0 {
		direction = -1
	}
	next := c.index + direction
	if next < 0 || next >= c.layout.Count() {
		return false
	}
	c.lastScroll = t
	c.scrolled = true
	c.moveTo(next, direction)
	return true
}

// Select jumps straight to index (a click on the planet menu). Out of range indices and
// the current index are ignored. Reports whether a transition started.
func (c *Controller) Select(index int) bool {
	if index < 0 || index >= c.layout.Count() || index == c.index {
		return false
	}
	c.moveTo(index, 0)
	return true
}

// moveTo animates the container to the absolute offset of index. A running move is
// cancelled and the new one starts from the container's current position.
func (c *Controller) moveTo(index, direction int) {
	from := c.index
	c.index = index
	target := c.layout.Offset(index)
	for _, tw := range c.moves {
		tw.Kill()
	}
	c.moves = []*anim.Tween{
		anim.To(&c.container[1], target[1], MoveDuration, anim.Power2InOut),
		anim.To(&c.container[2], target[2], MoveDuration, anim.Power2InOut),
	}
	if c.caption != nil {
		c.caption.Show(index, direction)
	}
	if c.OnTransition != nil {
		c.OnTransition(from, index)
	}
}

// Update advances the container animation by dt seconds.
func (c *Controller) Update(dt float32) {
	if len(c.moves) == 0 {
		return
	}
	done := true
	for _, tw := range c.moves {
		if !tw.Update(dt) {
			done = false
		}
	}
	if done {
		c.moves = nil
	}
}

// Transitioning reports whether the container is still moving.
func (c *Controller) Transitioning() bool {
	return len(c.moves) > 0
}
