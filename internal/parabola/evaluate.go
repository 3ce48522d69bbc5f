// internal/parabola/evaluate.go
package parabola

import "math"

const (
	// ToleranceA is the exclusive bound on |target.A - current.A| for a match.
	ToleranceA = 0.1
	// ToleranceShift is the exclusive bound on the H and K differences for a match.
	ToleranceShift = 1.0
)

// Outcome is the result of comparing an answer to its target.
type Outcome int

const (
	Incorrect Outcome = iota
	Correct
)

// String returns the outcome name.
func (o Outcome) String() string {
	if o == Correct {
		return "correct"
	}
	return "incorrect"
}

const (
	correctMessage   = "Correct, try again?"
	incorrectMessage = "Incorrect, try again."
)

// Verdict is what the player is told after submitting.
type Verdict struct {
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message"`
}

// Correct reports whether the verdict is a match.
func (v Verdict) Correct() bool { return v.Outcome == Correct }

// Matches reports whether current is within tolerance of target on all three
// parameters. The comparisons are strict, so a difference equal to the
// tolerance does not match.
func Matches(current, target Params) bool {
	return math.Abs(target.A-current.A) < ToleranceA &&
		math.Abs(target.H-current.H) < ToleranceShift &&
		math.Abs(target.K-current.K) < ToleranceShift
}

// Evaluate compares current against target and returns the verdict.
func Evaluate(current, target Params) Verdict {
	if Matches(current, target) {
		return Verdict{Outcome: Correct, Message: correctMessage}
	}
	return Verdict{Outcome: Incorrect, Message: incorrectMessage}
}
