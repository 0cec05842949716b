package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Easing curves used by the tour, named after the power curves they replace
// (power1 = quadratic, power2 = cubic).
var (
	Linear      ease.TweenFunc = ease.Linear
	Power1InOut ease.TweenFunc = ease.InOutQuad
	Power2Out   ease.TweenFunc = ease.OutCubic
	Power2InOut ease.TweenFunc = ease.InOutCubic
)

// Tween moves one float32 property to a target value. The start value is read from the
// property when the tween becomes active (after its delay), not when it is created, so a
// tween queued behind another one continues from wherever the first left the value.
type Tween struct {
	target     *float32
	to         float32
	duration   float32
	delay      float32
	easing     ease.TweenFunc
	onComplete func()

	elapsed float32
	g       *gween.Tween
	started bool
	done    bool
	killed  bool
}

// To creates a tween of *target towards to over duration seconds.
// A nil easing is linear.
func To(target *float32, to, duration float32, easing ease.TweenFunc) *Tween {
	if easing == nil {
		easing = Linear
	}
	return &Tween{target: target, to: to, duration: duration, easing: easing}
}

// Delay postpones the start of the tween by d seconds.
func (t *Tween) Delay(d float32) *Tween {
	t.delay = d
	return t
}

// OnComplete registers fn to run once, right after the final value is written.
func (t *Tween) OnComplete(fn func()) *Tween {
	t.onComplete = fn
	return t
}

// Update advances the tween by dt seconds and reports whether it has finished.
func (t *Tween) Update(dt float32) bool {
	return t.seek(t.elapsed + dt)
}

// seek moves the tween to local time (delay included) and applies the value.
// Time only moves forward; a seek into the past is ignored.
func (t *Tween) seek(local float32) bool {
	if t.done || t.killed {
		return true
	}
	if local < t.elapsed {
		return false
	}
	t.elapsed = local
	if local < t.delay {
		return false
	}
	if !t.started {
		t.started = true
		if t.duration <= 0 {
			t.finish()
			return true
		}
		t.g = gween.New(*t.target, t.to, t.duration, t.easing)
	}
	v, finished := t.g.Set(local - t.delay)
	*t.target = v
	if finished {
		t.finish()
	}
	return t.done
}

func (t *Tween) finish() {
	*t.target = t.to
	t.done = true
	if t.onComplete != nil {
		t.onComplete()
	}
}

// Kill stops the tween where it is. The property keeps its current value and the
// completion callback is not run.
func (t *Tween) Kill() {
	t.killed = true
}

// Active reports whether the tween has started moving and has not finished or been killed.
func (t *Tween) Active() bool {
	return t.started && !t.done && !t.killed
}

// Done reports whether the tween reached its target.
func (t *Tween) Done() bool {
	return t.done
}

// Running reports whether the tween still has work to do (waiting on its delay or moving).
func (t *Tween) Running() bool {
	return !t.done && !t.killed
}

// Span is the total time from creation to the final value (delay + duration).
func (t *Tween) Span() float32 {
	return t.delay + t.duration
}
