package anim

// Position places a tween on a timeline.
type Position interface {
	resolve(tl *Timeline) float32
}

// At places a tween at an absolute time in seconds from the timeline start.
type At float32

func (a At) resolve(*Timeline) float32 { return float32(a) }

// Label places a tween at a named anchor. If the label does not exist yet it is created
// at the current end of the timeline, so later tweens can share it.
type Label string

func (l Label) resolve(tl *Timeline) float32 {
	if t, ok := tl.labels[string(l)]; ok {
		return t
	}
	end := tl.Duration()
	tl.labels[string(l)] = end
	return end
}

type endPosition struct{}

func (endPosition) resolve(tl *Timeline) float32 { return tl.Duration() }

// End appends a tween after everything already on the timeline.
func End() Position { return endPosition{} }

type entry struct {
	tween *Tween
	start float32
}

// Timeline plays tweens at fixed offsets from its own start.
// Nothing moves until Update is called; callers drive it once per frame.
type Timeline struct {
	entries []entry
	labels  map[string]float32
	time    float32
	killed  bool
}

// NewTimeline returns an empty timeline at time zero.
func NewTimeline() *Timeline {
	return &Timeline{labels: make(map[string]float32)}
}

// Add schedules tw at pos and returns the timeline for chaining.
func (tl *Timeline) Add(tw *Tween, pos Position) *Timeline {
	if pos == nil {
		pos = End()
	}
	tl.entries = append(tl.entries, entry{tween: tw, start: pos.resolve(tl)})
	return tl
}

// LabelTime returns the time of a label and whether it exists.
func (tl *Timeline) LabelTime(name string) (float32, bool) {
	t, ok := tl.labels[name]
	return t, ok
}

// StartOf returns the scheduled start of the i-th added tween, delay excluded.
func (tl *Timeline) StartOf(i int) float32 {
	return tl.entries[i].start
}

// Duration is the time at which the last tween finishes.
func (tl *Timeline) Duration() float32 {
	var d float32
	for _, e := range tl.entries {
		if end := e.start + e.tween.Span(); end > d {
			d = end
		}
	}
	return d
}

// Time returns the current playhead in seconds.
func (tl *Timeline) Time() float32 {
	return tl.time
}

// Update advances the playhead by dt and applies every tween whose start has been reached.
// Tweens are applied in the order they were added. Returns true once all tweens are done.
func (tl *Timeline) Update(dt float32) bool {
	if tl.killed {
		return true
	}
	tl.time += dt
	done := true
	for _, e := range tl.entries {
		if tl.time < e.start {
			done = false
			continue
		}
		if !e.tween.seek(tl.time - e.start) {
			done = false
		}
	}
	return done
}

// Done reports whether every tween has finished (or the timeline was killed).
func (tl *Timeline) Done() bool {
	if tl.killed {
		return true
	}
	for _, e := range tl.entries {
		if e.tween.Running() {
			return false
		}
	}
	return true
}

// Kill stops all tweens in place.
func (tl *Timeline) Kill() {
	tl.killed = true
	for _, e := range tl.entries {
		e.tween.Kill()
	}
}
