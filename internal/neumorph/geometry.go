package neumorph

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// RRect is a rectangle with uniform corner radii.
type RRect struct {
	Rect
	RX, RY float64
}

// Travel is how far the thumb moves between off and on.
const Travel = 24

// Switch geometry in frame units.
var (
	Frame     = Rect{Width: 48, Height: 24}
	Border    = RRect{Rect: Frame, RX: 12, RY: 12}
	Container = RRect{Rect: Rect{X: 1, Y: 1, Width: 46, Height: 22}, RX: 12, RY: 12}
	Dot       = RRect{Rect: Rect{X: 6, Y: 6, Width: 12, Height: 12}, RX: 12, RY: 12}
)

// DotRadius is the radius of a circle inscribed in the dot.
func DotRadius() float64 {
	return (Dot.Width + Dot.Height) / 4
}

// DotCenter is the center of the dot before translation.
func DotCenter() (float64, float64) {
	return 12, 12
}

// Transform maps frame units onto the screen.
type Transform struct {
	Scale, TX, TY float64
}

func (t Transform) Apply(x, y float64) (float64, float64) {
	return x*t.Scale + t.TX, y*t.Scale + t.TY
}

// ApplyRRect maps an rrect and its radii.
func (t Transform) ApplyRRect(r RRect) RRect {
	x, y := t.Apply(r.X, r.Y)
	return RRect{
		Rect: Rect{X: x, Y: y, Width: r.Width * t.Scale, Height: r.Height * t.Scale},
		RX:   r.RX * t.Scale,
		RY:   r.RY * t.Scale,
	}
}

// Fit scales src uniformly to fit inside dst, centered, preserving aspect
// ratio. An empty rectangle yields a zero scale.
func Fit(src, dst Rect) Transform {
	if src.Width <= 0 || src.Height <= 0 || dst.Width <= 0 || dst.Height <= 0 {
		return Transform{TX: dst.X, TY: dst.Y}
	}
	s := min(dst.Width/src.Width, dst.Height/src.Height)
	return Transform{
		Scale: s,
		TX:    dst.X + (dst.Width-src.Width*s)/2 - src.X*s,
		TY:    dst.Y + (dst.Height-src.Height*s)/2 - src.Y*s,
	}
}

// Layout centers the switch inside a padded panel.
func Layout(panelWidth, panelHeight, padding float64) Transform {
	return Fit(Frame, Rect{
		X:      padding,
		Y:      padding,
		Width:  panelWidth - 2*padding,
		Height: panelHeight - 2*padding,
	})
}
