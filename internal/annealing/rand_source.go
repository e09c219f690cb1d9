package annealing

import "math/rand"

// MathRandSource adapts math/rand to UniformSource. It wraps a private
// *rand.Rand rather than the shared global source so a caller can seed it
// deterministically (spec.md §5: "tests must seed it deterministically
// via an injected source").
type MathRandSource struct {
	r *rand.Rand
}

// NewMathRandSource builds a source seeded with seed.
func NewMathRandSource(seed int64) *MathRandSource {
	return &MathRandSource{r: rand.New(rand.NewSource(seed))}
}

func (s *MathRandSource) Intn(n int) int    { return s.r.Intn(n) }
func (s *MathRandSource) Float32() float32 { return s.r.Float32() }
