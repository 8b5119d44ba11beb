// Package anim drives progress values from an externally advanced frame clock.
package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Clock is a monotonically increasing time in milliseconds. The host advances
// it once per frame; effects only read it.
type Clock struct {
	now float64
}

// Advance moves the clock forward. Negative steps are ignored.
func (c *Clock) Advance(dt float64) {
	if dt > 0 {
		c.now += dt
	}
}

func (c *Clock) Now() float64 { return c.now }

// Easing is a gween easing function (elapsed, begin, change, duration).
type Easing = ease.TweenFunc

var (
	Linear    Easing = ease.Linear
	EaseInOut Easing = ease.InOutCubic
)

// Value is a number animated toward a target over a fixed duration.
type Value struct {
	current float64
	target  float64

	tween   *gween.Tween
	last    float64
	running bool
	done    func()
}

func NewValue(v float64) *Value {
	return &Value{current: v, target: v}
}

// RunTiming animates from the current value to target starting at now.
// done, when non-nil, runs once after the value reaches target.
// A running animation is replaced without firing its callback.
func (v *Value) RunTiming(now, target, duration float64, easing Easing, done func()) {
	if easing == nil {
		easing = Linear
	}
	v.target = target
	v.last = now
	v.done = done
	v.running = true
	if duration <= 0 {
		v.finish()
		return
	}
	v.tween = gween.New(float32(v.current), float32(target), float32(duration), easing)
}

// Tick advances the tween to clock time now.
func (v *Value) Tick(now float64) {
	if !v.running {
		return
	}
	dt := now - v.last
	if dt < 0 {
		dt = 0
	}
	v.last = now
	cur, finished := v.tween.Update(float32(dt))
	if finished {
		v.finish()
		return
	}
	v.current = float64(cur)
}

func (v *Value) finish() {
	v.current = v.target
	v.running = false
	v.tween = nil
	if done := v.done; done != nil {
		v.done = nil
		done()
	}
}

func (v *Value) Current() float64 { return v.current }
func (v *Value) Target() float64  { return v.target }
func (v *Value) Running() bool    { return v.running }
