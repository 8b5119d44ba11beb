package neumorph

import (
	"math"
	"testing"

	"github.com/iburimskiy/vector-effects/internal/colormix"
)

func TestTouchStartAlternates(t *testing.T) {
	s := NewSwitch()
	if got := s.TouchStart(0); got != 1 {
		t.Fatalf("from off: target = %v, want 1", got)
	}
	s.Tick(Duration)
	if s.Progress() != 1 || !s.On() {
		t.Fatalf("after transition: progress=%v on=%v", s.Progress(), s.On())
	}
	if got := s.TouchStart(200); got != 0 {
		t.Fatalf("from on: target = %v, want 0", got)
	}
	s.Tick(200 + Duration)
	if s.Progress() != 0 || s.On() {
		t.Errorf("after second transition: progress=%v on=%v", s.Progress(), s.On())
	}
}

func TestTouchStartMidAnimation(t *testing.T) {
	s := NewSwitch()
	s.TouchStart(0)
	s.Tick(30)
	if s.Progress() >= 0.5 {
		t.Fatalf("progress %v should still be below half", s.Progress())
	}
	// Still below the midpoint, so a second touch keeps heading on.
	if got := s.TouchStart(30); got != 1 {
		t.Errorf("target = %v, want 1", got)
	}
	s.Tick(120)
	if s.Progress() <= 0.5 {
		t.Fatalf("progress %v should be past half", s.Progress())
	}
	if got := s.TouchStart(120); got != 0 {
		t.Errorf("target = %v, want 0", got)
	}
	if !s.Animating() {
		t.Error("expected animation in flight")
	}
}

func TestVisualsEndpoints(t *testing.T) {
	off := VisualsAt(0)
	if off.ThumbOffset != 0 || off.ThumbRadius != 3 || off.DotOpacity != 0 {
		t.Errorf("off visuals = %+v", off)
	}
	if off.InnerShadow != DotOff {
		t.Errorf("off shadow = %+v", off.InnerShadow)
	}

	on := VisualsAt(1)
	if on.ThumbOffset != Travel || on.ThumbRadius != 6 || on.DotOpacity != 1 {
		t.Errorf("on visuals = %+v", on)
	}
	if on.InnerShadow != DotOn {
		t.Errorf("on shadow = %+v", on.InnerShadow)
	}
}

func TestVisualsContinuous(t *testing.T) {
	prev := VisualsAt(0)
	for i := 1; i <= 100; i++ {
		cur := VisualsAt(float64(i) / 100)
		if cur.ThumbOffset-prev.ThumbOffset > 0.25+1e-9 {
			t.Errorf("offset jumped at %d: %v -> %v", i, prev.ThumbOffset, cur.ThumbOffset)
		}
		if math.Abs(cur.InnerShadow.R-prev.InnerShadow.R) > 2 {
			t.Errorf("shadow jumped at %d", i)
		}
		prev = cur
	}
	mid := VisualsAt(0.5)
	if mid.InnerShadow != colormix.MixColor(0.5, DotOff, DotOn) {
		t.Errorf("mid shadow = %+v", mid.InnerShadow)
	}
}

func TestFit(t *testing.T) {
	tr := Fit(Frame, Rect{X: 10, Y: 20, Width: 96, Height: 96})
	if tr.Scale != 2 {
		t.Fatalf("scale = %v, want 2", tr.Scale)
	}
	x, y := tr.Apply(0, 0)
	if x != 10 || y != 44 {
		t.Errorf("origin -> (%v, %v), want (10, 44)", x, y)
	}
	x, y = tr.Apply(48, 24)
	if x != 106 || y != 92 {
		t.Errorf("corner -> (%v, %v), want (106, 92)", x, y)
	}
	r := tr.ApplyRRect(Dot)
	if r.Width != 24 || r.RX != 24 {
		t.Errorf("dot = %+v", r)
	}
}

func TestFitDegenerate(t *testing.T) {
	tr := Fit(Frame, Rect{X: 5, Y: 5})
	if tr.Scale != 0 {
		t.Errorf("scale = %v, want 0", tr.Scale)
	}
	tr = Layout(10, 10, 8)
	if tr.Scale != 0 {
		t.Errorf("layout scale = %v, want 0", tr.Scale)
	}
}
