package session

import (
	"testing"

	"github.com/mwiater/parabolic/internal/parabola"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fixedSource []float64

func (f *fixedSource) Float64() float64 {
	v := (*f)[0]
	*f = append((*f)[1:], v)
	return v
}

// newTestSession builds a session whose target is (0.5, 2, -3).
func newTestSession(t *testing.T, opts ...Option) (*Session, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	src := fixedSource{0.625, 0.7, 0.2}
	opts = append([]Option{WithLogger(zap.New(core))}, opts...)
	return New(parabola.NewGenerator(&src), opts...), logs
}

func TestNewSessionDefaults(t *testing.T) {
	s, logs := newTestSession(t)

	if s.Current != parabola.Default() {
		t.Fatalf("expected default params, got %+v", s.Current)
	}
	want := parabola.Params{A: 0.5, H: 2, K: -3}
	if s.Target != want {
		t.Fatalf("expected target %+v, got %+v", want, s.Target)
	}
	if !s.ShowEquation {
		t.Fatalf("expected equation visible by default")
	}
	if s.AwaitingAcknowledgement() {
		t.Fatalf("new session should not await acknowledgement")
	}
	if s.TargetEquation() != "y = 0.50(x - 2.00)^2 + (-3.00)" {
		t.Fatalf("unexpected target equation %q", s.TargetEquation())
	}
	if logs.FilterMessage("session started").Len() != 1 {
		t.Fatalf("expected a session started log entry")
	}
}

func TestStepAndUndo(t *testing.T) {
	s, _ := newTestSession(t)

	if !s.Step(parabola.Right) || !s.Step(parabola.Right) {
		t.Fatalf("expected steps to apply")
	}
	if s.Current.H != 2 || s.Steps != 2 {
		t.Fatalf("expected h=2 after two rights, got %+v (steps=%d)", s.Current, s.Steps)
	}
	if s.Step("sideways") {
		t.Fatalf("unknown direction should be ignored")
	}
	if s.Current.H != 2 || s.Steps != 2 {
		t.Fatalf("unknown direction changed state: %+v", s.Current)
	}

	if !s.Undo() {
		t.Fatalf("expected undo to apply")
	}
	if s.Current.H != 1 {
		t.Fatalf("expected h=1 after undo, got %v", s.Current.H)
	}
	if s.Undo() {
		t.Fatalf("second undo should be a no-op")
	}
}

func TestScenarioEquation(t *testing.T) {
	s, _ := newTestSession(t)
	for _, d := range []parabola.Direction{parabola.Wider, parabola.Wider, parabola.Left, parabola.Up} {
		s.Step(d)
	}
	if got := s.Equation(); got != "y = 0.80(x - (-1.00))^2 + 1.00" {
		t.Fatalf("unexpected equation %q", got)
	}
	if len(s.Curve(20)) != 41 {
		t.Fatalf("expected 41 curve samples")
	}
}

func TestToggleEquation(t *testing.T) {
	s, _ := newTestSession(t, WithShowEquation(false))
	if s.ShowEquation {
		t.Fatalf("expected hidden equation from option")
	}
	if !s.ToggleEquation() || !s.ShowEquation {
		t.Fatalf("expected toggle to show equation")
	}
	if s.ToggleEquation() {
		t.Fatalf("expected toggle to hide equation")
	}
}

func TestSubmitCorrectBlocksFurtherInput(t *testing.T) {
	s, logs := newTestSession(t)
	for _, d := range []parabola.Direction{parabola.Right, parabola.Right, parabola.Down, parabola.Down, parabola.Down} {
		s.Step(d)
	}
	for i := 0; i < 5; i++ {
		s.Step(parabola.Wider)
	}

	v := s.Submit()
	if !v.Correct() {
		t.Fatalf("expected correct verdict for %+v vs %+v", s.Current, s.Target)
	}
	if !s.AwaitingAcknowledgement() {
		t.Fatalf("expected verdict to be pending")
	}
	before := s.Current
	if s.Step(parabola.Up) || s.Undo() {
		t.Fatalf("input should be ignored while verdict pending")
	}
	if s.Current != before {
		t.Fatalf("state changed while verdict pending")
	}
	if again := s.Submit(); again != v {
		t.Fatalf("resubmit changed verdict: %+v", again)
	}
	if logs.FilterMessage("answer submitted").Len() != 1 {
		t.Fatalf("expected exactly one submit log entry")
	}
}

func TestSubmitIncorrect(t *testing.T) {
	s, _ := newTestSession(t)
	v := s.Submit()
	if v.Correct() || v.Message != "Incorrect, try again." {
		t.Fatalf("expected incorrect verdict, got %+v", v)
	}
}

func TestRestartBuildsFreshSession(t *testing.T) {
	s, logs := newTestSession(t, WithShowEquation(false))
	s.Step(parabola.Up)
	s.ToggleEquation()
	s.Submit()

	next := s.Restart()
	if next == s || next.ID == s.ID {
		t.Fatalf("expected a new session")
	}
	if next.Current != parabola.Default() || next.Verdict != nil || next.Steps != 0 {
		t.Fatalf("restarted session not reset: %+v", next)
	}
	if next.ShowEquation {
		t.Fatalf("restart should restore the configured visibility")
	}
	if logs.FilterMessage("session started").Len() != 2 {
		t.Fatalf("expected restart to log a new session")
	}
}

func TestScoreboard(t *testing.T) {
	var b Scoreboard
	b.Record(parabola.Evaluate(parabola.Default(), parabola.Default()))
	b.Record(parabola.Evaluate(parabola.Default(), parabola.Params{A: 2}))
	if b.Rounds != 2 || b.Correct != 1 {
		t.Fatalf("unexpected tally %+v", b)
	}
	if b.String() != "1/2 correct" {
		t.Fatalf("unexpected string %q", b.String())
	}
}
