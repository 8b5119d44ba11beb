package mesh

import (
	"testing"

	"github.com/iburimskiy/vector-effects/internal/colormix"
	"github.com/iburimskiy/vector-effects/internal/noise"
)

func testPalette() []colormix.Color {
	return []colormix.Color{
		colormix.MustHex("#61dafb"),
		colormix.MustHex("#fb61da"),
		colormix.MustHex("#dafb61"),
	}
}

func newTestGrid(n int) *Grid {
	d := &noise.Displacer{N: n, Frequency: 5000, Amplitude: 50, Source: noise.NewSource(99)}
	return NewGrid(d, testPalette())
}

func TestCreatePointsLayout(t *testing.T) {
	points := CreatePoints(Size{Width: 500, Height: 250}, 5)
	if len(points) != 36 {
		t.Fatalf("len = %d, want 36", len(points))
	}
	// Columns are outer: index = ny + 6*nx.
	tests := []struct {
		i    int
		want Point
	}{
		{0, Point{X: 0, Y: 0}},
		{1, Point{X: 0, Y: 50}},
		{5, Point{X: 0, Y: 250}},
		{6, Point{X: 100, Y: 0}},
		{35, Point{X: 500, Y: 250}},
	}
	for _, tt := range tests {
		if points[tt.i] != tt.want {
			t.Errorf("points[%d] = %+v, want %+v", tt.i, points[tt.i], tt.want)
		}
	}
}

func TestCreatePointsDegenerate(t *testing.T) {
	if got := CreatePoints(Size{Width: 100, Height: 100}, 0); len(got) != 1 || got[0] != (Point{}) {
		t.Errorf("n=0: %+v", got)
	}
	for _, p := range CreatePoints(Size{}, 3) {
		if p != (Point{}) {
			t.Errorf("zero size produced %+v", p)
		}
	}
	if got := CreatePoints(Size{Width: 10, Height: 10}, -1); got != nil {
		t.Errorf("n<0: %+v", got)
	}
}

func TestCreateTrianglesCount(t *testing.T) {
	for n := 0; n <= 8; n++ {
		points := CreatePoints(Size{Width: 300, Height: 300}, n)
		triangles := CreateTriangles(points, n)
		if len(triangles) != 2*n*n {
			t.Errorf("n=%d: %d triangles, want %d", n, len(triangles), 2*n*n)
		}
		for _, tri := range triangles {
			for _, v := range []Vertex{tri.P0, tri.P1, tri.P2} {
				if v.Seed < 0 || v.Seed >= len(points) {
					t.Fatalf("n=%d: seed %d out of range", n, v.Seed)
				}
				if points[v.Seed] != v.Point {
					t.Errorf("n=%d: vertex %d point mismatch", n, v.Seed)
				}
			}
		}
	}
}

func TestCreateTrianglesWinding(t *testing.T) {
	points := CreatePoints(Size{Width: 500, Height: 500}, 5)
	triangles := CreateTriangles(points, 5)
	if got := triangles[0].Seeds(); got != [3]int{0, 6, 1} {
		t.Errorf("first triangle = %v, want [0 6 1]", got)
	}
	if got := triangles[1].Seeds(); got != [3]int{7, 1, 6} {
		t.Errorf("second triangle = %v, want [7 1 6]", got)
	}
	if got := len(Indices(triangles)); got != 150 {
		t.Errorf("indices = %d, want 150", got)
	}
}

func TestCreateTrianglesShortPoints(t *testing.T) {
	if got := CreateTriangles(make([]Point, 3), 5); got != nil {
		t.Errorf("expected no triangles, got %d", len(got))
	}
}

func TestOutlines(t *testing.T) {
	if got := PointOutline(Point{X: 10, Y: 20}).SVG(); got != "M5 15 L15 15 L15 25 L5 25 Z" {
		t.Errorf("PointOutline = %q", got)
	}
	tri := TriangleOutline(Point{X: 0, Y: 0}, Point{X: 1.5, Y: 0}, Point{X: 0, Y: 2.25})
	if got := tri.SVG(); got != "M0 0 L1.5 0 L0 2.25 Z" {
		t.Errorf("TriangleOutline = %q", got)
	}
	if n := len(tri.Vertices()); n != 3 {
		t.Errorf("triangle vertices = %d, want 3", n)
	}
}

func TestGridEndToEnd(t *testing.T) {
	g := newTestGrid(5)
	g.Resize(Size{Width: 500, Height: 500})
	if len(g.Points()) != 36 || len(g.Triangles()) != 50 {
		t.Fatalf("points=%d triangles=%d", len(g.Points()), len(g.Triangles()))
	}

	moved := false
	for _, clock := range []float64{1000, 2000, 3000, 4000} {
		f := g.Frame(clock)
		if f.Points[0] != g.Points()[0] {
			t.Errorf("point 0 moved at %v", clock)
		}
		if f.Points[6] != g.Points()[6] {
			t.Errorf("point 6 lies on the top row and moved at %v", clock)
		}
		if f.Points[7] != g.Points()[7] {
			moved = true
		}
	}
	if !moved {
		t.Error("interior point 7 never moved")
	}
}

func TestGridFrameContents(t *testing.T) {
	g := newTestGrid(5)
	g.Resize(Size{Width: 500, Height: 500})
	f := g.Frame(2500)

	if len(f.Colors) != len(f.Points) || len(f.Indices) != 150 {
		t.Fatalf("colors=%d points=%d indices=%d", len(f.Colors), len(f.Points), len(f.Indices))
	}
	palette := testPalette()
	for i, c := range f.Colors {
		if c != palette[i%len(palette)] {
			t.Errorf("color %d = %+v", i, c)
		}
	}
	if len(f.Triangles) != 50 || len(f.Markers) != 36 {
		t.Fatalf("triangles=%d markers=%d", len(f.Triangles), len(f.Markers))
	}
	for i, tri := range g.Triangles() {
		vs := f.Triangles[i].Outline.Vertices()
		d := g.Displacer()
		want := []Point{
			d.Displace(tri.P0.Point, tri.P0.Seed, 2500),
			d.Displace(tri.P1.Point, tri.P1.Seed, 2500),
			d.Displace(tri.P2.Point, tri.P2.Seed, 2500),
		}
		for k := range want {
			if vs[k] != want[k] {
				t.Errorf("triangle %d vertex %d = %+v, want %+v", i, k, vs[k], want[k])
			}
		}
		if f.Triangles[i].Color != palette[i%len(palette)] {
			t.Errorf("triangle %d color mismatch", i)
		}
	}
}

func TestGridMemoization(t *testing.T) {
	g := newTestGrid(5)
	size := Size{Width: 500, Height: 500}
	if !g.Resize(size) {
		t.Fatal("first resize should rebuild")
	}
	if g.Resize(size) {
		t.Error("same size should not rebuild")
	}
	g.Frame(10)
	g.Frame(10)
	if g.recomputes != 1 {
		t.Errorf("recomputes = %d, want 1", g.recomputes)
	}
	g.Frame(20)
	if g.recomputes != 2 {
		t.Errorf("recomputes = %d, want 2", g.recomputes)
	}
	g.Resize(Size{Width: 400, Height: 500})
	g.Frame(20)
	if g.rebuilds != 2 || g.recomputes != 3 {
		t.Errorf("rebuilds=%d recomputes=%d", g.rebuilds, g.recomputes)
	}
}

func TestFrameSlicesNotSharedWithGrid(t *testing.T) {
	g := newTestGrid(5)
	g.Resize(Size{Width: 500, Height: 500})
	f := g.Frame(100)
	f.Indices[0] = 35
	f.Colors[0] = colormix.RGB(1, 2, 3)

	next := g.Frame(200)
	if next.Indices[0] != 0 {
		t.Errorf("next frame index 0 = %d, want 0", next.Indices[0])
	}
	if next.Colors[0] != testPalette()[0] {
		t.Errorf("next frame color 0 = %+v", next.Colors[0])
	}
}
