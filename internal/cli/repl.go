package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/aegraph/internal/dto"
	"github.com/aretw0/aegraph/internal/logging"
	"github.com/aretw0/aegraph/internal/presentation/tui"
	"github.com/aretw0/aegraph/pkg/domain"
	"github.com/aretw0/aegraph/pkg/graph"
	"github.com/aretw0/aegraph/pkg/proof"
	"github.com/aretw0/aegraph/pkg/rules"
)

// Engine is what the REPL needs from the aegraph engine.
type Engine interface {
	Parse(text string) (*graph.Graph, error)
	Moves(ctx context.Context, g *graph.Graph, r rules.Rule) ([]rules.Move, error)
	AllMoves(ctx context.Context, g *graph.Graph) []rules.Move
	Apply(ctx context.Context, g *graph.Graph, m rules.Move) (*graph.Graph, error)
	Exercise(ctx context.Context, id string) (*domain.Exercise, error)
}

// errQuit ends the loop.
var errQuit = errors.New("quit")

// REPL is an interactive driver over one current graph with an undo stack.
type REPL struct {
	engine  Engine
	out     io.Writer
	render  func(string) (string, error)
	prompt  string
	logger  *slog.Logger
	current *graph.Graph
	goal    *graph.Graph
	history []snapshot
}

// snapshot is one undo entry. The goal travels with the graph so that undoing
// past an exercise load also restores the goal in force before it.
type snapshot struct {
	graph *graph.Graph
	goal  *graph.Graph
}

// Option configures a REPL.
type Option func(*REPL)

// WithRenderer sets the markdown renderer (default tui.Plain).
func WithRenderer(render func(string) (string, error)) Option {
	return func(r *REPL) {
		r.render = render
	}
}

// WithPrompt sets the prompt printed before each line. An empty prompt
// suits piped input.
func WithPrompt(prompt string) Option {
	return func(r *REPL) {
		r.prompt = prompt
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *REPL) {
		r.logger = logger
	}
}

// NewREPL creates a REPL starting from start, or from the empty sheet when
// start is nil.
func NewREPL(engine Engine, out io.Writer, start *graph.Graph, opts ...Option) *REPL {
	if start == nil {
		start = graph.Empty()
	}
	r := &REPL{
		engine:  engine,
		out:     out,
		render:  tui.Plain,
		current: start,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Current returns the graph the REPL is working on.
func (r *REPL) Current() *graph.Graph {
	return r.current
}

// Run reads commands from in until "quit", end of input or ctx is done.
func (r *REPL) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(r.out, r.prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(r.out)
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if err := r.Execute(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				r.logger.Debug("command failed", "line", line, "error", err)
				fmt.Fprintf(r.out, "error: %v\n", err)
			}
		}
	}
}

// Execute runs a single command line.
func (r *REPL) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))

	switch cmd {
	case "show", "s":
		r.show()
	case "moves", "m":
		return r.moves(ctx, args)
	case "apply", "a":
		return r.apply(ctx, args, rest)
	case "undo", "u":
		return r.undo()
	case "load", "l":
		return r.load(rest)
	case "exercise", "e":
		return r.exercise(ctx, args)
	case "help", "h", "?":
		fmt.Fprint(r.out, helpText)
	case "quit", "q", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
	return nil
}

const helpText = `Commands:
  show                          print the current graph
  moves [rule]                  list legal moves (all removal rules by default)
  apply <rule> <path> [members] apply a move, e.g. "apply erasure 0,1"
  undo                          return to the previous graph
  load <graph>                  replace the current graph, e.g. "load (A, [B])"
  exercise <id>                 load the premise of a library exercise
  help                          show this text
  quit                          leave
`

func (r *REPL) show() {
	fmt.Fprintln(r.out, r.current)
	if r.goal != nil {
		if r.current.Equal(r.goal) {
			fmt.Fprintln(r.out, "goal reached")
		} else {
			fmt.Fprintf(r.out, "goal: %s\n", r.goal)
		}
	}
}

func (r *REPL) moves(ctx context.Context, args []string) error {
	var moves []rules.Move
	if len(args) == 0 {
		moves = r.engine.AllMoves(ctx, r.current)
	} else {
		rule, err := rules.ParseRule(args[0])
		if err != nil {
			return err
		}
		if moves, err = r.engine.Moves(ctx, r.current, rule); err != nil {
			return err
		}
	}
	return r.print(tui.MovesMarkdown(r.current, moves))
}

func (r *REPL) apply(ctx context.Context, args []string, rest string) error {
	if len(args) == 0 {
		return errors.New("usage: apply <rule> <path> [members]")
	}
	step, err := dto.DecodeStep(rest)
	if err != nil {
		return err
	}
	move, err := proof.MoveFromStep(step)
	if err != nil {
		return err
	}

	next, err := r.engine.Apply(ctx, r.current, move)
	if err != nil {
		return err
	}
	r.push()
	r.current = next
	r.show()
	return nil
}

func (r *REPL) undo() error {
	if len(r.history) == 0 {
		return errors.New("nothing to undo")
	}
	last := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	r.current, r.goal = last.graph, last.goal
	r.show()
	return nil
}

func (r *REPL) load(text string) error {
	g, err := r.engine.Parse(text)
	if err != nil {
		return err
	}
	r.reset(g, nil)
	r.show()
	return nil
}

func (r *REPL) exercise(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: exercise <id>")
	}
	ex, err := r.engine.Exercise(ctx, args[0])
	if err != nil {
		return err
	}
	premise, err := r.engine.Parse(ex.Premise)
	if err != nil {
		return fmt.Errorf("premise: %w", err)
	}
	goal, err := r.engine.Parse(ex.Goal)
	if err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	if ex.Title != "" {
		fmt.Fprintln(r.out, ex.Title)
	}
	r.reset(premise, goal)
	r.show()
	return nil
}

func (r *REPL) reset(g, goal *graph.Graph) {
	r.push()
	r.current = g
	r.goal = goal
}

func (r *REPL) push() {
	r.history = append(r.history, snapshot{graph: r.current, goal: r.goal})
}

func (r *REPL) print(markdown string) error {
	out, err := r.render(markdown)
	if err != nil {
		return err
	}
	fmt.Fprint(r.out, out)
	return nil
}
