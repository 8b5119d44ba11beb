// Package noise displaces mesh points along seed-stable coherent noise
// trajectories.
package noise

import (
	"math/rand"

	"github.com/ojrac/opensimplex-go"
)

// MaxOffset bounds the random offset picked at startup.
const MaxOffset = 10000

// Field is a deterministic 2D noise function.
type Field interface {
	Eval2(x, y float64) float64
}

// Source hands out one Field per seed. Fields are keyed by offset+seed and
// built once; a Source is not safe for concurrent use.
type Source struct {
	offset int64
	fields map[int64]opensimplex.Noise
}

func NewSource(offset int64) *Source {
	return &Source{
		offset: offset,
		fields: make(map[int64]opensimplex.Noise),
	}
}

// RandomOffset picks the per-run offset in [0, MaxOffset).
func RandomOffset(r *rand.Rand) int64 {
	return r.Int63n(MaxOffset)
}

func (s *Source) Offset() int64 { return s.offset }

// Field returns the noise field for seed.
func (s *Source) Field(seed int64) Field {
	key := s.offset + seed
	f, ok := s.fields[key]
	if !ok {
		f = opensimplex.New(key)
		s.fields[key] = f
	}
	return f
}

// Len reports how many fields have been built.
func (s *Source) Len() int { return len(s.fields) }
