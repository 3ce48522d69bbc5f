// internal/parabola/sample.go
package parabola

// DefaultGraphRange is the half-width of the sampled domain: x runs over the
// integers in [-20, 20], 41 points in total.
const DefaultGraphRange = 20

// Point is one sampled (x, y) pair on the curve.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// EvaluateAt returns a(x-h)^2 + k.
func EvaluateAt(p Params, x float64) float64 {
	d := x - p.H
	return p.A*d*d + p.K
}

// Sample evaluates p at every integer x in [-graphRange, graphRange]. A
// non-positive range yields the single point at x = 0.
func Sample(p Params, graphRange int) []Point {
	if graphRange < 0 {
		graphRange = 0
	}
	points := make([]Point, 0, 2*graphRange+1)
	for i := -graphRange; i <= graphRange; i++ {
		x := float64(i)
		points = append(points, Point{X: x, Y: EvaluateAt(p, x)})
	}
	return points
}
