package anim

import (
	"math"
	"testing"
)

func TestClockMonotonic(t *testing.T) {
	var c Clock
	c.Advance(16)
	c.Advance(-100)
	c.Advance(17)
	if c.Now() != 33 {
		t.Errorf("Now() = %v, want 33", c.Now())
	}
}

// at evaluates e as a unit curve at progress p.
func at(e Easing, p float64) float64 {
	return float64(e(float32(p), 0, 1, 1))
}

func TestEasingEndpoints(t *testing.T) {
	for name, e := range map[string]Easing{"linear": Linear, "easeInOut": EaseInOut} {
		if at(e, 0) != 0 || at(e, 1) != 1 {
			t.Errorf("%s: e(0)=%v e(1)=%v", name, at(e, 0), at(e, 1))
		}
		prev := at(e, 0)
		for i := 1; i <= 100; i++ {
			cur := at(e, float64(i)/100)
			if cur < prev {
				t.Errorf("%s not monotonic at %d", name, i)
			}
			prev = cur
		}
	}
	if math.Abs(at(EaseInOut, 0.5)-0.5) > 1e-6 {
		t.Errorf("EaseInOut(0.5) = %v", at(EaseInOut, 0.5))
	}
}

func TestValueEased(t *testing.T) {
	v := NewValue(0)
	v.RunTiming(0, 1, 100, EaseInOut, nil)
	v.Tick(25)
	if got := v.Current(); got <= 0 || got >= 0.25 {
		t.Errorf("eased quarter = %v, want in (0, 0.25)", got)
	}
	v.Tick(75)
	if got := v.Current(); got <= 0.75 || got >= 1 {
		t.Errorf("eased three quarters = %v, want in (0.75, 1)", got)
	}
}

func TestValueRunTiming(t *testing.T) {
	v := NewValue(0)
	calls := 0
	v.RunTiming(1000, 1, 150, Linear, func() { calls++ })

	v.Tick(1000)
	if v.Current() != 0 {
		t.Errorf("at start = %v, want 0", v.Current())
	}
	v.Tick(1075)
	if math.Abs(v.Current()-0.5) > 1e-9 {
		t.Errorf("halfway = %v, want 0.5", v.Current())
	}
	if !v.Running() {
		t.Error("expected running")
	}
	v.Tick(1150)
	v.Tick(1200)
	if v.Current() != 1 || v.Running() {
		t.Errorf("after end = %v running=%v", v.Current(), v.Running())
	}
	if calls != 1 {
		t.Errorf("done called %d times, want 1", calls)
	}
}

func TestValueRetargetStartsFromCurrent(t *testing.T) {
	v := NewValue(0)
	v.RunTiming(0, 1, 100, Linear, nil)
	v.Tick(50)
	v.RunTiming(50, 0, 100, Linear, nil)
	v.Tick(100)
	if math.Abs(v.Current()-0.25) > 1e-9 {
		t.Errorf("Current() = %v, want 0.25", v.Current())
	}
	if v.Target() != 0 {
		t.Errorf("Target() = %v, want 0", v.Target())
	}
}

func TestValueZeroDuration(t *testing.T) {
	v := NewValue(3)
	done := false
	v.RunTiming(0, 7, 0, nil, func() { done = true })
	if v.Current() != 7 || !done || v.Running() {
		t.Errorf("zero duration: current=%v done=%v running=%v", v.Current(), done, v.Running())
	}
}

func TestValueChainedCallback(t *testing.T) {
	v := NewValue(0)
	var restart func()
	n := 0
	restart = func() {
		n++
		v.RunTiming(float64(n)*10, float64(n%2), 10, Linear, restart)
	}
	v.RunTiming(0, 1, 10, Linear, restart)
	for now := 0.0; now <= 50; now += 5 {
		v.Tick(now)
	}
	if n != 5 {
		t.Errorf("restarts = %d, want 5", n)
	}
}
