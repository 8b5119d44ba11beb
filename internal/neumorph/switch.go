// Package neumorph models the neumorphic toggle switch: an on/off state driven
// by touch events and an eased progress value.
package neumorph

import (
	"github.com/iburimskiy/vector-effects/internal/anim"
	"github.com/iburimskiy/vector-effects/internal/colormix"
)

// Duration of the on/off transition in milliseconds.
const Duration = 150

// Theme colors. Channels are 0-255, alpha 0-1.
var (
	WhiteBackground = colormix.RGB(240, 240, 243)
	WhiteForeground = colormix.RGB(238, 238, 238)
	ShadowLight     = colormix.RGB(174, 174, 192)
	ShadowDark      = colormix.RGB(255, 255, 255)
	DotOff          = colormix.RGBA(238, 238, 238, 0)
	DotOn           = colormix.RGBA(95, 242, 147, 0.2)
)

// Switch is a two-state toggle. Its progress is 0 when off and 1 when on.
type Switch struct {
	pressed *anim.Value
}

func NewSwitch() *Switch {
	return &Switch{pressed: anim.NewValue(0)}
}

// TouchStart flips the animation target and returns it.
func (s *Switch) TouchStart(now float64) float64 {
	target := 1.0
	if s.pressed.Current() > 0.5 {
		target = 0
	}
	s.pressed.RunTiming(now, target, Duration, anim.EaseInOut, nil)
	return target
}

func (s *Switch) Tick(now float64) { s.pressed.Tick(now) }

// Progress is the current value in [0, 1].
func (s *Switch) Progress() float64 { return s.pressed.Current() }

// On reports whether the switch is past its midpoint.
func (s *Switch) On() bool { return s.pressed.Current() > 0.5 }

func (s *Switch) Animating() bool { return s.pressed.Running() }

// Visuals are the progress-dependent parts of the switch.
type Visuals struct {
	ThumbOffset float64
	ThumbRadius float64
	InnerShadow colormix.Color
	DotOpacity  float64
}

// VisualsAt derives the switch visuals from progress p.
func VisualsAt(p float64) Visuals {
	r := DotRadius()
	return Visuals{
		ThumbOffset: colormix.Mix(p, 0, Travel),
		ThumbRadius: colormix.Mix(p, r/2, r),
		InnerShadow: colormix.MixColor(p, DotOff, DotOn),
		DotOpacity:  p,
	}
}
