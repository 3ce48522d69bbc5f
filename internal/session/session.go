// internal/session/session.go
// Package session tracks one play-through: the adjustable parabola, the
// target it must match, and the verdict once the player submits.
package session

import (
	"github.com/google/uuid"
	"github.com/mwiater/parabolic/internal/logging"
	"github.com/mwiater/parabolic/internal/parabola"
	"go.uber.org/zap"
)

// Option customises a new Session.
type Option func(*options)

type options struct {
	showEquation bool
	logger       *zap.Logger
}

// WithShowEquation sets whether the helper equation starts visible.
func WithShowEquation(show bool) Option {
	return func(o *options) { o.showEquation = show }
}

// WithLogger routes session events to l instead of the shared logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Session is a single round. It is not safe for concurrent use.
type Session struct {
	ID           uuid.UUID
	Current      parabola.Params
	Target       parabola.Params
	ShowEquation bool
	// Verdict is set by Submit and cleared only by restarting.
	Verdict *parabola.Verdict
	Steps   int

	lastStep parabola.Direction
	gen      *parabola.Generator
	opts     options
	log      *zap.Logger
}

// New starts a session with the default parabola and a fresh target from gen.
func New(gen *parabola.Generator, opts ...Option) *Session {
	o := options{showEquation: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Logger()
	}
	if gen == nil {
		gen = parabola.NewGenerator(nil)
	}

	s := &Session{
		ID:           uuid.New(),
		Current:      parabola.Default(),
		Target:       gen.Generate(),
		ShowEquation: o.showEquation,
		gen:          gen,
		opts:         o,
	}
	s.log = o.logger.With(zap.String("session", s.ID.String()))
	s.log.Info("session started",
		zap.Float64("target_a", s.Target.A),
		zap.Float64("target_h", s.Target.H),
		zap.Float64("target_k", s.Target.K),
	)
	return s
}

// AwaitingAcknowledgement reports whether a verdict is showing. While it is,
// steps, undo and toggles are ignored.
func (s *Session) AwaitingAcknowledgement() bool {
	return s.Verdict != nil
}

// Step moves the current parabola one step. It returns false, leaving the
// session unchanged, for unknown directions or while a verdict is pending.
func (s *Session) Step(d parabola.Direction) bool {
	if s.AwaitingAcknowledgement() || !d.Valid() {
		s.log.Debug("step ignored", zap.String("direction", string(d)))
		return false
	}
	s.Current = parabola.Apply(s.Current, d)
	s.lastStep = d
	s.Steps++
	s.log.Debug("step", zap.String("direction", string(d)), zap.String("equation", s.Equation()))
	return true
}

// Undo reverts the most recent step. Only one level of undo is kept.
func (s *Session) Undo() bool {
	if s.AwaitingAcknowledgement() || s.lastStep == "" {
		return false
	}
	s.Current = parabola.Apply(s.Current, s.lastStep.Opposite())
	s.log.Debug("undo", zap.String("direction", string(s.lastStep)))
	s.lastStep = ""
	s.Steps++
	return true
}

// ToggleEquation flips helper equation visibility and returns the new state.
func (s *Session) ToggleEquation() bool {
	if s.AwaitingAcknowledgement() {
		return s.ShowEquation
	}
	s.ShowEquation = !s.ShowEquation
	return s.ShowEquation
}

// Equation is the vertex-form rendering of the current parabola.
func (s *Session) Equation() string {
	return parabola.Format(s.Current)
}

// TargetEquation is the vertex-form rendering of the target.
func (s *Session) TargetEquation() string {
	return parabola.Format(s.Target)
}

// Curve samples the current parabola over [-graphRange, graphRange].
func (s *Session) Curve(graphRange int) []parabola.Point {
	return parabola.Sample(s.Current, graphRange)
}

// Submit evaluates the current parabola against the target. Submitting again
// while a verdict is pending returns the same verdict.
func (s *Session) Submit() parabola.Verdict {
	if s.Verdict != nil {
		return *s.Verdict
	}
	v := parabola.Evaluate(s.Current, s.Target)
	s.Verdict = &v
	s.log.Info("answer submitted",
		zap.Stringer("outcome", v.Outcome),
		zap.String("equation", s.Equation()),
		zap.String("target", s.TargetEquation()),
		zap.Int("steps", s.Steps),
	)
	return v
}

// Restart discards this session and returns a new one built with the same
// generator and options.
func (s *Session) Restart() *Session {
	s.log.Info("session restarted")
	return New(s.gen, WithShowEquation(s.opts.showEquation), WithLogger(s.opts.logger))
}
