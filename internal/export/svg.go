// Package export writes mesh frames as standalone SVG documents.
package export

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/iburimskiy/vector-effects/internal/colormix"
	"github.com/iburimskiy/vector-effects/internal/mesh"
)

// WriteSVG renders frame. SVG has no per-vertex color interpolation, so
// every triangle is filled with the mean of its corner colors.
func WriteSVG(w io.Writer, size mesh.Size, frame mesh.Frame, strokeWidth float64) {
	width := int(math.Ceil(math.Max(size.Width, 0)))
	height := int(math.Ceil(math.Max(size.Height, 0)))

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title(fmt.Sprintf("mesh at %.0fms", frame.Clock))

	canvas.Gid("gradient")
	for i := 0; i+2 < len(frame.Indices); i += 3 {
		a, b, c := frame.Indices[i], frame.Indices[i+1], frame.Indices[i+2]
		fill := meanColor(frame.Colors[a], frame.Colors[b], frame.Colors[c])
		d := mesh.TriangleOutline(frame.Points[a], frame.Points[b], frame.Points[c]).SVG()
		canvas.Path(d, "fill:"+fill.CSS()+";stroke:none")
	}
	canvas.Gend()

	stroke := fmt.Sprintf("fill:none;stroke-width:%g;stroke:", strokeWidth)
	canvas.Gid("triangles")
	for _, s := range frame.Triangles {
		canvas.Path(s.Outline.SVG(), stroke+s.Color.Hex())
	}
	canvas.Gend()

	canvas.Gid("points")
	for _, s := range frame.Markers {
		canvas.Path(s.Outline.SVG(), stroke+s.Color.Hex())
	}
	canvas.Gend()

	canvas.End()
}

// SaveSVG writes frame to path.
func SaveSVG(path string, size mesh.Size, frame mesh.Frame, strokeWidth float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	WriteSVG(bw, size, frame, strokeWidth)
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func meanColor(cs ...colormix.Color) colormix.Color {
	var r, g, b float64
	for _, c := range cs {
		r += c.R
		g += c.G
		b += c.B
	}
	n := float64(len(cs))
	return colormix.RGB(math.Round(r/n), math.Round(g/n), math.Round(b/n))
}
