package aegraph

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	loamAdapter "github.com/aretw0/aegraph/pkg/adapters/loam"
	"github.com/aretw0/aegraph/pkg/domain"
	"github.com/aretw0/aegraph/pkg/graph"
	"github.com/aretw0/aegraph/pkg/ports"
	"github.com/aretw0/aegraph/pkg/proof"
	"github.com/aretw0/aegraph/pkg/rules"
)

// ErrNoLibrary is returned by exercise operations when the engine was built
// without a library directory or loader.
var ErrNoLibrary = errors.New("no exercise library configured")

// Engine is the high-level entry point for the aegraph library.
// It wraps the graph, rules and proof packages behind one API, applies the
// legality policy and reports every move to the lifecycle hooks.
type Engine struct {
	loader ports.ExerciseLoader
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	strict bool
	now    func() time.Time
	Name   string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
// Calling it more than once chains the hooks in registration order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLoader injects a custom ExerciseLoader, bypassing the default Loam initialization.
func WithLoader(l ports.ExerciseLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStrict controls whether Apply refuses moves that are not in the legal
// set of their rule (default true). A lenient engine only enforces the
// structural preconditions of each rule.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// New initializes a new Engine.
// When libraryDir is set and no loader is injected, exercises are read from
// that directory through a read-only Loam repository. An empty libraryDir
// with no loader gives an engine that works on graphs only.
func New(libraryDir string, opts ...Option) (*Engine, error) {
	eng := &Engine{strict: true, now: time.Now}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil && libraryDir != "" {
		loader, err := loamAdapter.NewFromDir(libraryDir)
		if err != nil {
			return nil, err
		}
		eng.loader = loader
	}
	if libraryDir != "" {
		eng.Name = filepath.Base(libraryDir)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("library", eng.Name)
	}

	return eng, nil
}

// Strict reports the legality policy of the engine.
func (e *Engine) Strict() bool {
	return e.strict
}

// Parse reads a graph in the textual grammar.
func (e *Engine) Parse(text string) (*graph.Graph, error) {
	g, err := graph.Parse(text)
	if err != nil {
		e.logger.Debug("parse failed", "input", text, "error", err)
		return nil, err
	}
	return g, nil
}

// Moves lists the legal moves of one rule on g.
func (e *Engine) Moves(_ context.Context, g *graph.Graph, r rules.Rule) ([]rules.Move, error) {
	return rules.Enumerate(g, r)
}

// AllMoves lists the legal moves of every removal rule on g.
func (e *Engine) AllMoves(_ context.Context, g *graph.Graph) []rules.Move {
	return rules.EnumerateAll(g)
}

// Apply performs m on g. In strict mode a move outside the legal set fails
// with rules.ErrNotApplicable. g is never modified.
func (e *Engine) Apply(ctx context.Context, g *graph.Graph, m rules.Move) (*graph.Graph, error) {
	if e.strict {
		ok, err := rules.Legal(g, m)
		if err == nil && !ok {
			err = fmt.Errorf("%w: %s", rules.ErrNotApplicable, m)
		}
		if err != nil {
			e.reject(ctx, g, m, err)
			return nil, err
		}
	}

	out, err := rules.Apply(g, m)
	if err != nil {
		e.reject(ctx, g, m, err)
		return nil, err
	}
	e.applied(ctx, g, m, out)
	return out, nil
}

// Check replays the recorded steps of ex. The report is returned even when a
// step is refused; see proof.Proof.Check.
func (e *Engine) Check(ctx context.Context, ex domain.Exercise) (*proof.Report, error) {
	p, err := proof.Compile(ex)
	if err != nil {
		return nil, err
	}

	report, checkErr := p.Check()

	before := p.Premise
	for _, s := range report.Steps {
		after := graph.MustParse(s.Result)
		e.applied(ctx, before, s.Move, after)
		before = after
	}
	var stepErr *proof.StepError
	if errors.As(checkErr, &stepErr) {
		e.reject(ctx, before, stepErr.Move, stepErr.Err)
	}

	e.logger.Info("proof checked",
		"exercise", ex.ID,
		"steps", len(report.Steps),
		"complete", report.Complete,
		"goal_reached", report.GoalReached,
	)
	return report, checkErr
}

// Exercises lists the IDs available in the library.
func (e *Engine) Exercises(ctx context.Context) ([]string, error) {
	if e.loader == nil {
		return nil, ErrNoLibrary
	}
	return e.loader.ListExercises(ctx)
}

// Exercise fetches one exercise from the library.
func (e *Engine) Exercise(ctx context.Context, id string) (*domain.Exercise, error) {
	if e.loader == nil {
		return nil, ErrNoLibrary
	}
	return e.loader.GetExercise(ctx, id)
}

// CheckExercise loads an exercise and checks its recorded proof.
func (e *Engine) CheckExercise(ctx context.Context, id string) (*proof.Report, error) {
	ex, err := e.Exercise(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.Check(ctx, *ex)
}

// Loader returns the underlying ExerciseLoader, or nil.
func (e *Engine) Loader() ports.ExerciseLoader {
	return e.loader
}

func (e *Engine) applied(ctx context.Context, before *graph.Graph, m rules.Move, after *graph.Graph) {
	e.logger.Debug("rule applied", "rule", m.Rule, "path", m.Path.String(), "result", after.String())
	if e.hooks.OnApply != nil {
		evt := e.event(domain.EventRuleApplied, before, m)
		evt.After = after.String()
		e.hooks.OnApply(ctx, evt)
	}
}

func (e *Engine) reject(ctx context.Context, before *graph.Graph, m rules.Move, err error) {
	e.logger.Warn("move rejected", "rule", m.Rule, "path", m.Path.String(), "error", err)
	if e.hooks.OnReject != nil {
		evt := e.event(domain.EventRuleRejected, before, m)
		evt.Reason = err.Error()
		e.hooks.OnReject(ctx, evt)
	}
}

func (e *Engine) event(t domain.EventType, before *graph.Graph, m rules.Move) *domain.RuleEvent {
	return &domain.RuleEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: t},
		Rule:      string(m.Rule),
		Path:      []int(m.Path.Clone()),
		Members:   m.Members,
		Before:    before.String(),
	}
}
