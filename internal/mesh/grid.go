// Package mesh builds the triangulated control grid of the mesh effect and
// turns its noise-displaced geometry into drawable frames.
package mesh

import "github.com/iburimskiy/vector-effects/internal/noise"

type Point = noise.Point

// Size is a container size in device-independent units.
type Size struct {
	Width, Height float64
}

// Vertex is a grid point together with its row-major identity.
type Vertex struct {
	Point Point
	Seed  int
}

// Triangle references three grid points.
type Triangle struct {
	P0, P1, P2 Vertex
}

// Seeds returns the identities of the triangle's corners in winding order.
func (t Triangle) Seeds() [3]int {
	return [3]int{t.P0.Seed, t.P1.Seed, t.P2.Seed}
}

// index is the identity of grid point (nx, ny); columns are outer.
func index(n, nx, ny int) int {
	return ny + (n+1)*nx
}

// CreatePoints lays out (n+1)^2 points evenly over size. A zero or negative
// size produces degenerate points rather than an error.
func CreatePoints(size Size, n int) []Point {
	if n < 0 {
		return nil
	}
	if n == 0 {
		return []Point{{}}
	}
	stepX := size.Width / float64(n)
	stepY := size.Height / float64(n)
	points := make([]Point, 0, (n+1)*(n+1))
	for nx := 0; nx <= n; nx++ {
		for ny := 0; ny <= n; ny++ {
			points = append(points, Point{X: float64(nx) * stepX, Y: float64(ny) * stepY})
		}
	}
	return points
}

// CreateTriangles splits every grid cell along its diagonal into two
// triangles, (p0, p1, p2) and (p3, p2, p1). points must hold (n+1)^2 entries
// as returned by CreatePoints; otherwise no triangles are produced.
func CreateTriangles(points []Point, n int) []Triangle {
	if n <= 0 || len(points) < (n+1)*(n+1) {
		return nil
	}
	vertex := func(i int) Vertex { return Vertex{Point: points[i], Seed: i} }

	triangles := make([]Triangle, 0, 2*n*n)
	for nx := 0; nx < n; nx++ {
		for ny := 0; ny < n; ny++ {
			v0 := vertex(index(n, nx, ny))
			v1 := vertex(index(n, nx+1, ny))
			v2 := vertex(index(n, nx, ny+1))
			v3 := vertex(index(n, nx+1, ny+1))
			triangles = append(triangles,
				Triangle{P0: v0, P1: v1, P2: v2},
				Triangle{P0: v3, P1: v2, P2: v1},
			)
		}
	}
	return triangles
}

// Indices flattens triangle identities into a vertex index list.
func Indices(triangles []Triangle) []int {
	out := make([]int, 0, 3*len(triangles))
	for _, t := range triangles {
		s := t.Seeds()
		out = append(out, s[0], s[1], s[2])
	}
	return out
}
