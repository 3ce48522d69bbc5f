// internal/plot/plot.go
// Package plot rasterises a sampled parabola onto a character grid with the
// axes drawn through the origin. Both axes span [-Range, Range].
package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/parabolic/internal/parabola"
)

const (
	// DefaultWidth and DefaultHeight are sized to fit next to the TUI side panel.
	DefaultWidth  = 61
	DefaultHeight = 25

	minWidth  = 11
	minHeight = 7
)

const (
	cellEmpty rune = ' '
	cellAxisX rune = '─'
	cellAxisY rune = '│'
	cellAxisO rune = '┼'
	cellCurve rune = '•'
)

var (
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	curveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
)

// Plot describes the viewport and output size.
type Plot struct {
	Range  int
	Width  int
	Height int
}

// New returns a Plot, substituting defaults for non-positive values and
// enforcing a minimum size.
func New(graphRange, width, height int) Plot {
	if graphRange <= 0 {
		graphRange = parabola.DefaultGraphRange
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return Plot{Range: graphRange, Width: max(width, minWidth), Height: max(height, minHeight)}
}

// Resize returns a copy sized to width x height, keeping odd dimensions so the
// axes land on a cell.
func (p Plot) Resize(width, height int) Plot {
	if width%2 == 0 {
		width--
	}
	if height%2 == 0 {
		height--
	}
	return New(p.Range, width, height)
}

// column maps a grid column to its x coordinate.
func (p Plot) column(c int) float64 {
	span := float64(2 * p.Range)
	return -float64(p.Range) + float64(c)*span/float64(p.Width-1)
}

// row maps a y value to a fractional grid row; row 0 is the top edge.
func (p Plot) row(y float64) float64 {
	span := float64(2 * p.Range)
	return (float64(p.Range) - y) / span * float64(p.Height-1)
}

// Grid draws params into a fresh Height x Width grid. The curve is sampled at
// the integer x values only and joined by straight segments.
func (p Plot) Grid(params parabola.Params) [][]rune {
	grid := make([][]rune, p.Height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(string(cellEmpty), p.Width))
	}

	originRow := int(math.Round(p.row(0)))
	originCol := int(math.Round(float64(p.Width-1) / 2))
	for c := 0; c < p.Width; c++ {
		grid[originRow][c] = cellAxisX
	}
	for r := 0; r < p.Height; r++ {
		grid[r][originCol] = cellAxisY
	}
	grid[originRow][originCol] = cellAxisO

	points := parabola.Sample(params, p.Range)
	prev := math.NaN()
	for c := 0; c < p.Width; c++ {
		cur := p.row(interpolate(points, p.column(c), p.Range))
		lo, hi := cur, cur
		if !math.IsNaN(prev) {
			lo, hi = math.Min(prev, cur), math.Max(prev, cur)
			// leave the previous column's own cell to it
			if prev < cur {
				lo = math.Min(prev+1, cur)
			} else if prev > cur {
				hi = math.Max(prev-1, cur)
			}
		}
		lo = math.Max(lo, -1)
		hi = math.Min(hi, float64(p.Height))
		for r := int(math.Round(lo)); r <= int(math.Round(hi)); r++ {
			if r >= 0 && r < p.Height {
				grid[r][c] = cellCurve
			}
		}
		prev = cur
	}
	return grid
}

// interpolate returns the linearly interpolated y at x between the integer
// samples, which start at x = -graphRange.
func interpolate(points []parabola.Point, x float64, graphRange int) float64 {
	pos := x + float64(graphRange)
	i := int(math.Floor(pos))
	if i < 0 {
		return points[0].Y
	}
	if i >= len(points)-1 {
		return points[len(points)-1].Y
	}
	t := pos - float64(i)
	return points[i].Y + t*(points[i+1].Y-points[i].Y)
}

// Render returns the styled grid followed by a range caption.
func (p Plot) Render(params parabola.Params) string {
	var b strings.Builder
	for i, line := range p.Grid(params) {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range line {
			switch cell {
			case cellCurve:
				b.WriteString(curveStyle.Render(string(cell)))
			case cellEmpty:
				b.WriteRune(cell)
			default:
				b.WriteString(axisStyle.Render(string(cell)))
			}
		}
	}
	b.WriteString("\n" + axisStyle.Render(fmt.Sprintf("x, y ∈ [-%d, %d]", p.Range, p.Range)))
	return b.String()
}
