package mesh

import (
	"strconv"
	"strings"
)

// Op is a path drawing command.
type Op int

const (
	MoveTo Op = iota
	LineTo
	Close
)

type Command struct {
	Op    Op
	Point Point
}

// Outline is a drawable path.
type Outline []Command

const markerHalf = 5

// PointOutline is a 10x10 square centered on p.
func PointOutline(p Point) Outline {
	return Outline{
		{Op: MoveTo, Point: Point{X: p.X - markerHalf, Y: p.Y - markerHalf}},
		{Op: LineTo, Point: Point{X: p.X + markerHalf, Y: p.Y - markerHalf}},
		{Op: LineTo, Point: Point{X: p.X + markerHalf, Y: p.Y + markerHalf}},
		{Op: LineTo, Point: Point{X: p.X - markerHalf, Y: p.Y + markerHalf}},
		{Op: Close},
	}
}

// TriangleOutline is the closed path p0 -> p1 -> p2.
func TriangleOutline(p0, p1, p2 Point) Outline {
	return Outline{
		{Op: MoveTo, Point: p0},
		{Op: LineTo, Point: p1},
		{Op: LineTo, Point: p2},
		{Op: Close},
	}
}

// SVG formats the outline as SVG path data, e.g. "M0 0 L10 0 L10 10 Z".
func (o Outline) SVG() string {
	parts := make([]string, 0, len(o))
	for _, c := range o {
		switch c.Op {
		case MoveTo:
			parts = append(parts, "M"+coord(c.Point))
		case LineTo:
			parts = append(parts, "L"+coord(c.Point))
		case Close:
			parts = append(parts, "Z")
		}
	}
	return strings.Join(parts, " ")
}

// Vertices returns the points visited by the outline, in order.
func (o Outline) Vertices() []Point {
	out := make([]Point, 0, len(o))
	for _, c := range o {
		if c.Op != Close {
			out = append(out, c.Point)
		}
	}
	return out
}

func coord(p Point) string {
	return strconv.FormatFloat(p.X, 'f', -1, 64) + " " + strconv.FormatFloat(p.Y, 'f', -1, 64)
}
