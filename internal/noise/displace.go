package noise

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Displacer moves interior grid points along per-seed noise trajectories.
// Grid boundary points stay pinned so mesh edges never show seams.
type Displacer struct {
	N         int
	Frequency float64
	Amplitude float64
	Source    *Source
}

// IsBoundary reports whether the row-major grid index seed lies on the first
// or last row or column of an (n+1)x(n+1) grid.
func IsBoundary(seed, n int) bool {
	side := n + 1
	return seed%side == 0 ||
		seed%side == n ||
		seed <= n ||
		seed >= n*side
}

// Displace returns p moved by the noise field of seed at clock time t.
func (d *Displacer) Displace(p Point, seed int, t float64) Point {
	if IsBoundary(seed, d.N) {
		return p
	}
	f := d.Source.Field(int64(seed))
	s := t / d.Frequency
	return Point{
		X: p.X + d.Amplitude*f.Eval2(s, 0),
		Y: p.Y + d.Amplitude*f.Eval2(0, s),
	}
}
