package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/vector-effects/internal/mesh"
	"github.com/iburimskiy/vector-effects/internal/neumorph"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// multiply blends like the canvas "multiply" mode for opaque sources.
var multiply = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// colorVertices paints every vertex with clr.
func colorVertices(vs []ebiten.Vertex, clr color.NRGBA) {
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}

func fillPath(dst *ebiten.Image, path *vector.Path, clr color.NRGBA, blend ebiten.Blend) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	colorVertices(vs, clr)
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		Blend:     blend,
	})
}

func strokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.NRGBA) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	colorVertices(vs, clr)
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// outlinePath converts a mesh outline into an ebiten path.
func outlinePath(o mesh.Outline) *vector.Path {
	var p vector.Path
	for _, c := range o {
		switch c.Op {
		case mesh.MoveTo:
			p.MoveTo(float32(c.Point.X), float32(c.Point.Y))
		case mesh.LineTo:
			p.LineTo(float32(c.Point.X), float32(c.Point.Y))
		case mesh.Close:
			p.Close()
		}
	}
	return &p
}

// rrectPath traces a rounded rectangle. Radii larger than half a side are
// clamped, so a square with a large radius becomes a circle.
func rrectPath(r neumorph.RRect) *vector.Path {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height)
	rad := float32(math.Min(r.RX, math.Min(r.Width, r.Height)/2))

	var p vector.Path
	if w <= 0 || h <= 0 {
		return &p
	}
	p.MoveTo(x+rad, y)
	p.LineTo(x+w-rad, y)
	p.Arc(x+w-rad, y+rad, rad, -math.Pi/2, 0, vector.Clockwise)
	p.LineTo(x+w, y+h-rad)
	p.Arc(x+w-rad, y+h-rad, rad, 0, math.Pi/2, vector.Clockwise)
	p.LineTo(x+rad, y+h)
	p.Arc(x+rad, y+h-rad, rad, math.Pi/2, math.Pi, vector.Clockwise)
	p.LineTo(x, y+rad)
	p.Arc(x+rad, y+rad, rad, math.Pi, 3*math.Pi/2, vector.Clockwise)
	p.Close()
	return &p
}

// formatClock formats milliseconds as MM:SS.
func formatClock(ms float64) string {
	s := int(ms / 1000)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
