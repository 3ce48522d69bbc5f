// internal/parabola/params.go
// Package parabola holds the game rules for matching a vertex-form quadratic:
// parameter stepping, random targets, answer checking and equation formatting.
// It has no terminal or rendering dependencies so every rule can be tested on
// its own.
package parabola

import "strings"

const (
	// TranslateStep is how far a single up/down/left/right command moves the vertex.
	TranslateStep = 1.0
	// ScaleStep is how much a single wider/narrower command changes the leading coefficient.
	ScaleStep = 0.1
)

// Params describes y = A(x - H)^2 + K.
type Params struct {
	A float64 `json:"a" yaml:"a"`
	H float64 `json:"h" yaml:"h"`
	K float64 `json:"k" yaml:"k"`
}

// Default returns the parabola every session starts from: y = x^2.
func Default() Params {
	return Params{A: 1, H: 0, K: 0}
}

// Direction is a discrete step command.
type Direction string

const (
	Up       Direction = "up"
	Down     Direction = "down"
	Left     Direction = "left"
	Right    Direction = "right"
	Wider    Direction = "wider"
	Narrower Direction = "narrower"
)

// Directions lists every recognised step command.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right, Wider, Narrower}
}

// ParseDirection normalises user input into a Direction. The second return
// value is false when the input names no known command.
func ParseDirection(s string) (Direction, bool) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	return d, d.Valid()
}

// Valid reports whether d is one of the six step commands.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right, Wider, Narrower:
		return true
	}
	return false
}

// Opposite returns the command that undoes d. Unknown directions are their own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case Wider:
		return Narrower
	case Narrower:
		return Wider
	default:
		return d
	}
}

// Apply returns p moved one step in direction d. Values are never clamped, so
// A may pass through zero and go negative. An unknown direction returns p
// unchanged.
func Apply(p Params, d Direction) Params {
	switch d {
	case Up:
		p.K += TranslateStep
	case Down:
		p.K -= TranslateStep
	case Left:
		p.H -= TranslateStep
	case Right:
		p.H += TranslateStep
	case Wider:
		p.A -= ScaleStep
	case Narrower:
		p.A += ScaleStep
	default:
	}
	return p
}
