// internal/parabola/generator.go
package parabola

import (
	"math"
	"math/rand/v2"
	"time"
)

const (
	// targetASpan is the width of the interval A is drawn from, centred on zero.
	targetASpan = 4.0
	// targetShiftSpan is the width of the interval H and K are drawn from, centred on zero.
	targetShiftSpan = 10.0
)

// Source supplies uniform draws in [0, 1). *rand.Rand from math/rand and
// math/rand/v2 both satisfy it.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic Source for seed, or a time-seeded one when
// seed is zero.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Generator draws random target parabolas.
type Generator struct {
	src Source
}

// NewGenerator builds a Generator over src. A nil src falls back to a
// time-seeded source.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = NewSource(0)
	}
	return &Generator{src: src}
}

// Generate returns a new target. A lands on the 0.1 grid in [-2, 2]; H and K
// are integers in [-5, 5]. The draws are taken in the order A, H, K. A may be
// exactly zero, which produces a flat target line.
func (g *Generator) Generate() Params {
	a := roundHalfUp((g.src.Float64()*targetASpan-targetASpan/2)*10) / 10
	h := roundHalfUp(g.src.Float64()*targetShiftSpan - targetShiftSpan/2)
	k := roundHalfUp(g.src.Float64()*targetShiftSpan - targetShiftSpan/2)
	return Params{A: a, H: h, K: k}
}

// roundHalfUp rounds ties toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
