package mesh

import (
	"slices"

	"github.com/iburimskiy/vector-effects/internal/colormix"
	"github.com/iburimskiy/vector-effects/internal/noise"
)

// Shape is an outline with its stroke color.
type Shape struct {
	Outline Outline
	Color   colormix.Color
}

// Frame is everything the mesh effect draws for one clock value. Each
// recomputed frame owns its slices; repeated calls for the same clock
// return the same frame.
type Frame struct {
	Clock float64

	// Vertex-colored gradient mesh.
	Points  []Point
	Indices []int
	Colors  []colormix.Color

	Triangles []Shape
	Markers   []Shape
}

// Grid owns the control grid of the mesh effect. Points and triangles are
// rebuilt only when the size changes; frames are rebuilt only when the clock
// changes.
type Grid struct {
	n         int
	displacer *noise.Displacer
	palette   []colormix.Color

	size      Size
	sized     bool
	points    []Point
	triangles []Triangle
	indices   []int
	colors    []colormix.Color

	frame      Frame
	framed     bool
	rebuilds   int
	recomputes int
}

func NewGrid(d *noise.Displacer, palette []colormix.Color) *Grid {
	if len(palette) == 0 {
		palette = []colormix.Color{colormix.RGB(255, 255, 255)}
	}
	return &Grid{n: d.N, displacer: d, palette: palette}
}

// Resize rebuilds the grid for size. It reports whether anything changed.
func (g *Grid) Resize(size Size) bool {
	if g.sized && size == g.size {
		return false
	}
	g.size = size
	g.sized = true
	g.points = CreatePoints(size, g.n)
	g.triangles = CreateTriangles(g.points, g.n)
	g.indices = Indices(g.triangles)
	g.colors = make([]colormix.Color, len(g.points))
	for i := range g.points {
		g.colors[i] = g.color(i)
	}
	g.framed = false
	g.rebuilds++
	return true
}

func (g *Grid) Size() Size { return g.size }
func (g *Grid) Points() []Point { return g.points }
func (g *Grid) Triangles() []Triangle { return g.triangles }
func (g *Grid) Displacer() *noise.Displacer { return g.displacer }

func (g *Grid) color(i int) colormix.Color {
	return g.palette[i%len(g.palette)]
}

// Frame returns the displaced geometry at clock time t.
func (g *Grid) Frame(t float64) Frame {
	if g.framed && g.frame.Clock == t {
		return g.frame
	}

	displaced := make([]Point, len(g.points))
	for i, p := range g.points {
		displaced[i] = g.displacer.Displace(p, i, t)
	}

	triangles := make([]Shape, len(g.triangles))
	for i, tri := range g.triangles {
		triangles[i] = Shape{
			Outline: TriangleOutline(
				displaced[tri.P0.Seed],
				displaced[tri.P1.Seed],
				displaced[tri.P2.Seed],
			),
			Color: g.color(i),
		}
	}

	markers := make([]Shape, len(displaced))
	for i, p := range displaced {
		markers[i] = Shape{Outline: PointOutline(p), Color: g.color(i)}
	}

	g.frame = Frame{
		Clock:     t,
		Points:    displaced,
		Indices:   slices.Clone(g.indices),
		Colors:    slices.Clone(g.colors),
		Triangles: triangles,
		Markers:   markers,
	}
	g.framed = true
	g.recomputes++
	return g.frame
}
