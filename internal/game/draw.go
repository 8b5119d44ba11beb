package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/vector-effects/internal/circles"
	"github.com/iburimskiy/vector-effects/internal/colormix"
	"github.com/iburimskiy/vector-effects/internal/config"
	"github.com/iburimskiy/vector-effects/internal/neumorph"
)

func (g *Game) drawButton(screen *ebiten.Image, i int) {
	r := buttonRect(i, g.width, g.height)
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())

	var bg color.Color
	switch {
	case buttons[i].inert:
		bg = color.RGBA{R: 90, G: 100, B: 120, A: 255}
	case g.pressed == i:
		bg = color.RGBA{R: 20, G: 110, B: 200, A: 255}
	case g.hovered == i || buttons[i].panel == g.show:
		bg = color.RGBA{R: 40, G: 130, B: 220, A: 255}
	default:
		bg = color.RGBA{R: 33, G: 150, B: 243, A: 255}
	}
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)

	title := buttons[i].title
	textWidth := len(title) * 6 // debug font glyph width
	ebitenutil.DebugPrintAt(screen, title, r.Min.X+(r.Dx()-textWidth)/2, r.Min.Y+(r.Dy()-16)/2)
}

func (g *Game) drawMesh(panel *ebiten.Image) {
	frame := g.grid.Frame(g.elapsed())
	panel.Fill(color.White)

	// Gradient: one vertex per grid point, colors interpolated by the GPU.
	vs := make([]ebiten.Vertex, len(frame.Points))
	for i, p := range frame.Points {
		c := frame.Colors[i].NRGBA()
		vs[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(c.R) / 255,
			ColorG: float32(c.G) / 255,
			ColorB: float32(c.B) / 255,
			ColorA: 1,
		}
	}
	is := make([]uint16, len(frame.Indices))
	for i, idx := range frame.Indices {
		is[i] = uint16(idx)
	}
	panel.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	for _, s := range frame.Triangles {
		strokePath(panel, outlinePath(s.Outline), config.StrokeWidth, s.Color.NRGBA())
	}
	for _, s := range frame.Markers {
		strokePath(panel, outlinePath(s.Outline), config.StrokeWidth, s.Color.NRGBA())
	}
}

func (g *Game) drawCircles(panel *ebiten.Image) {
	size := g.panelSize()
	panel.Fill(g.scene.Background.Color().NRGBA())

	for i, c := range circles.Layout(size.Width, size.Height) {
		var p vector.Path
		p.Arc(float32(c.CX), float32(c.CY), float32(c.R), 0, 2*math.Pi, vector.Clockwise)
		p.Close()
		fillPath(panel, &p, g.scene.Colors[i].Color().NRGBA(), multiply)
	}
}

// shadow is a blurred drop shadow approximated by stacked translucent layers.
type shadow struct {
	dx, dy, blur float64
	color        colormix.Color
}

const shadowLayers = 4

func drawShadow(dst *ebiten.Image, tr neumorph.Transform, box neumorph.RRect, s shadow) {
	for l := shadowLayers; l >= 1; l-- {
		spread := s.blur * float64(l) / shadowLayers
		r := box
		r.X += s.dx - spread/2
		r.Y += s.dy - spread/2
		r.Width += spread
		r.Height += spread
		r.RX += spread / 2
		r.RY += spread / 2
		layer := s.color.WithAlpha(s.color.A / shadowLayers)
		fillPath(dst, rrectPath(tr.ApplyRRect(r)), layer.NRGBA(), ebiten.BlendSourceOver)
	}
}

// drawInnerShadow approximates an inset shadow by stroking inside the edge
// on the side the shadow falls.
func drawInnerShadow(dst *ebiten.Image, tr neumorph.Transform, box neumorph.RRect, s shadow) {
	r := box
	r.X += s.dx + s.blur/2
	r.Y += s.dy + s.blur/2
	r.Width -= s.blur
	r.Height -= s.blur
	w := float32(s.blur * tr.Scale / 2)
	if w <= 0 {
		return
	}
	strokePath(dst, rrectPath(tr.ApplyRRect(r)), w, s.color.NRGBA())
}

func (g *Game) drawNeumorphism(panel *ebiten.Image) {
	size := g.panelSize()
	panel.Fill(neumorph.WhiteBackground.NRGBA())

	p := g.sw.Progress()
	v := neumorph.VisualsAt(p)
	tr := neumorph.Layout(size.Width, size.Height, config.SwitchPadding)

	drawShadow(panel, tr, neumorph.Border, shadow{dx: -1, dy: -1, blur: 3, color: neumorph.ShadowDark.WithAlpha(1)})
	drawShadow(panel, tr, neumorph.Border, shadow{dx: 1.5, dy: 1.5, blur: 3, color: neumorph.ShadowLight.WithAlpha(0.6)})
	fillPath(panel, rrectPath(tr.ApplyRRect(neumorph.Border)), neumorph.WhiteBackground.NRGBA(), ebiten.BlendSourceOver)

	fillPath(panel, rrectPath(tr.ApplyRRect(neumorph.Container)), neumorph.WhiteForeground.NRGBA(), ebiten.BlendSourceOver)
	drawInnerShadow(panel, tr, neumorph.Container, shadow{dx: -1, dy: -1, blur: 3, color: neumorph.ShadowDark.WithAlpha(0.6)})
	drawInnerShadow(panel, tr, neumorph.Container, shadow{dx: 1.5, dy: 1.5, blur: 3, color: neumorph.ShadowLight.WithAlpha(0.4)})
	fillPath(panel, rrectPath(tr.ApplyRRect(neumorph.Container)), v.InnerShadow.NRGBA(), ebiten.BlendSourceOver)

	// Thumb, translated by the progress-driven offset.
	thumb := neumorph.Transform{Scale: tr.Scale, TX: tr.TX + v.ThumbOffset*tr.Scale, TY: tr.TY}
	drawShadow(panel, thumb, neumorph.Dot, shadow{dx: 0, dy: 1, blur: 4, color: neumorph.ShadowLight.WithAlpha(0.25)})
	drawShadow(panel, thumb, neumorph.Dot, shadow{dx: 2, dy: 2, blur: 3, color: neumorph.ShadowLight.WithAlpha(0.25)})
	fillPath(panel, rrectPath(thumb.ApplyRRect(neumorph.Dot)), neumorph.WhiteBackground.NRGBA(), ebiten.BlendSourceOver)

	if v.DotOpacity > 0 {
		cx, cy := thumb.Apply(neumorph.DotCenter())
		dot := neumorph.DotOn.WithAlpha(neumorph.DotOn.A * v.DotOpacity)
		var c vector.Path
		c.Arc(float32(cx), float32(cy), float32(v.ThumbRadius*thumb.Scale), 0, 2*math.Pi, vector.Clockwise)
		c.Close()
		fillPath(panel, &c, dot.NRGBA(), ebiten.BlendSourceOver)
	}

	g.drawWaveform(panel, size.Width, size.Height)
}

// drawWaveform plots the most recent speaker output along the panel bottom.
func (g *Game) drawWaveform(panel *ebiten.Image, width, height float64) {
	if !g.player.Enabled() {
		return
	}
	samples := g.player.Tap().Snapshot(int(width))
	if len(samples) < 2 {
		return
	}
	const amp = 20.0
	base := height - amp - 8
	clr := neumorph.ShadowLight.NRGBA()
	step := width / float64(len(samples)-1)
	for i := 1; i < len(samples); i++ {
		x0, x1 := float64(i-1)*step, float64(i)*step
		y0, y1 := base-samples[i-1]*amp, base-samples[i]*amp
		vector.StrokeLine(panel, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
	}
}
