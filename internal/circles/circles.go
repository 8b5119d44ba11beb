// Package circles animates three multiply-blended circles over a tinted
// background. Every color channel drifts toward a fresh random target.
package circles

import (
	"math/rand"

	"github.com/iburimskiy/vector-effects/internal/anim"
	"github.com/iburimskiy/vector-effects/internal/colormix"
)

// Durations in milliseconds of a single channel transition.
const (
	MinDuration = 2000
	MaxDuration = 4000

	// Offset of each circle from the center.
	Offset = 50
)

// Range is an inclusive integer channel range.
type Range struct {
	Lo, Hi int
}

var (
	BackgroundRange = Range{Lo: 200, Hi: 255}
	CircleRange     = Range{Lo: 0, Hi: 255}
)

// randIn returns a uniformly drawn integer in [lo, hi].
func randIn(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// RGBChannels is a color whose three channels animate independently.
type RGBChannels struct {
	rnd      *rand.Rand
	rng      Range
	channels [3]*anim.Value
}

func NewRGBChannels(r *rand.Rand, rng Range) *RGBChannels {
	c := &RGBChannels{rnd: r, rng: rng}
	for i := range c.channels {
		c.channels[i] = anim.NewValue(float64(randIn(r, rng.Lo, rng.Hi)))
	}
	return c
}

// Start kicks off every channel at clock time now. Each channel restarts with
// a new target and duration when it completes.
func (c *RGBChannels) Start(now float64) {
	for _, v := range c.channels {
		c.run(v, now)
	}
}

func (c *RGBChannels) run(v *anim.Value, now float64) {
	target := float64(randIn(c.rnd, c.rng.Lo, c.rng.Hi))
	duration := float64(randIn(c.rnd, MinDuration, MaxDuration))
	v.RunTiming(now, target, duration, anim.Linear, func() {
		c.run(v, now+duration)
	})
}

func (c *RGBChannels) Tick(now float64) {
	for _, v := range c.channels {
		v.Tick(now)
	}
}

// Color is the current color with channels truncated to integers.
func (c *RGBChannels) Color() colormix.Color {
	return colormix.RGB(
		float64(int(c.channels[0].Current())),
		float64(int(c.channels[1].Current())),
		float64(int(c.channels[2].Current())),
	)
}

// Circle is a disc in panel coordinates.
type Circle struct {
	CX, CY, R float64
}

// Layout positions the three circles for a panel of the given size: one
// above the center and two below it to either side.
func Layout(width, height float64) [3]Circle {
	cx, cy := width/2, height/2
	r := min(width, height) / 4
	if r < 0 {
		r = 0
	}
	return [3]Circle{
		{CX: cx, CY: cy - Offset, R: r},
		{CX: cx - Offset, CY: cy + Offset, R: r},
		{CX: cx + Offset, CY: cy + Offset, R: r},
	}
}

// Scene is the circles effect state.
type Scene struct {
	Background *RGBChannels
	Colors     [3]*RGBChannels
}

func NewScene(r *rand.Rand) *Scene {
	s := &Scene{Background: NewRGBChannels(r, BackgroundRange)}
	for i := range s.Colors {
		s.Colors[i] = NewRGBChannels(r, CircleRange)
	}
	return s
}

func (s *Scene) Start(now float64) {
	s.Background.Start(now)
	for _, c := range s.Colors {
		c.Start(now)
	}
}

func (s *Scene) Tick(now float64) {
	s.Background.Tick(now)
	for _, c := range s.Colors {
		c.Tick(now)
	}
}
