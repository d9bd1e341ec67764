package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/aegraph"
	"github.com/aretw0/aegraph/internal/dto"
	"github.com/aretw0/aegraph/pkg/domain"
	"github.com/aretw0/aegraph/pkg/graph"
	"github.com/aretw0/aegraph/pkg/proof"
	"github.com/aretw0/aegraph/pkg/rules"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// GraphResult describes a parsed graph.
type GraphResult struct {
	Graph        string `json:"graph" jsonschema_description:"Canonical text of the graph"`
	Size         int    `json:"size" jsonschema_description:"Number of members on the sheet"`
	NumAtoms     int    `json:"num_atoms" jsonschema_description:"Atoms directly on the sheet"`
	NumSubgraphs int    `json:"num_subgraphs" jsonschema_description:"Cuts directly on the sheet"`
}

// MovesResult lists legal moves.
type MovesResult struct {
	Graph string       `json:"graph" jsonschema_description:"Canonical text of the graph"`
	Moves []rules.Move `json:"moves" jsonschema_description:"Legal moves, each with a rule and a path"`
}

// ApplyResult carries the outcome of a move.
type ApplyResult struct {
	Move   rules.Move `json:"move"`
	Before string     `json:"before" jsonschema_description:"Graph before the move"`
	Graph  string     `json:"graph" jsonschema_description:"Graph after the move"`
}

// Engine defines the interface required by the MCP server.
type Engine interface {
	Parse(text string) (*graph.Graph, error)
	Moves(ctx context.Context, g *graph.Graph, r rules.Rule) ([]rules.Move, error)
	AllMoves(ctx context.Context, g *graph.Graph) []rules.Move
	Apply(ctx context.Context, g *graph.Graph, m rules.Move) (*graph.Graph, error)
	Check(ctx context.Context, ex domain.Exercise) (*proof.Report, error)
	Exercises(ctx context.Context) ([]string, error)
	Exercise(ctx context.Context, id string) (*domain.Exercise, error)
	CheckExercise(ctx context.Context, id string) (*proof.Report, error)
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("aegraph-mcp", strings.TrimSpace(aegraph.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when
// ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("parse_graph",
		mcp.WithDescription("Parse an Alpha existential graph such as \"(A, [B, [C]])\" and return its canonical form."),
		mcp.WithString("graph", mcp.Required(), mcp.Description("Graph text: ( ) is the sheet, [ ] is a cut, commas separate members")),
		mcp.WithOutputSchema[GraphResult](),
	), mcp.NewStructuredToolHandler(s.handleParse))

	s.mcpServer.AddTool(mcp.NewTool("list_moves",
		mcp.WithDescription("List every legal move on a graph, optionally for a single rule."),
		mcp.WithString("graph", mcp.Required(), mcp.Description("Graph text")),
		mcp.WithString("rule", mcp.Description("double-cut, erasure or deiteration (optional)")),
		mcp.WithOutputSchema[MovesResult](),
	), mcp.NewStructuredToolHandler(s.handleMoves))

	s.mcpServer.AddTool(mcp.NewTool("apply_move",
		mcp.WithDescription("Apply one inference rule at a path and return the new graph."),
		mcp.WithString("graph", mcp.Required(), mcp.Description("Graph text")),
		mcp.WithString("rule", mcp.Required(), mcp.Description("double-cut, insert-double-cut, erasure or deiteration")),
		mcp.WithString("path", mcp.Required(), mcp.Description("Member path as comma separated indices, e.g. \"0,1\"; empty for the sheet")),
		mcp.WithString("members", mcp.Description("For insert-double-cut: indices of the members to wrap, e.g. \"0,2\"")),
		mcp.WithOutputSchema[ApplyResult](),
	), mcp.NewStructuredToolHandler(s.handleApply))

	s.mcpServer.AddTool(mcp.NewTool("check_proof",
		mcp.WithDescription("Replay a proof from premise to goal, refusing any illegal step."),
		mcp.WithString("premise", mcp.Required(), mcp.Description("Graph text of the premise")),
		mcp.WithString("goal", mcp.Required(), mcp.Description("Graph text of the goal")),
		mcp.WithArray("steps",
			mcp.Description("Moves written as \"<rule> <path> [members]\", e.g. \"deiteration 0,1\""),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithOutputSchema[proof.Report](),
	), mcp.NewStructuredToolHandler(s.handleCheck))

	s.mcpServer.AddTool(mcp.NewTool("check_exercise",
		mcp.WithDescription("Check the recorded proof of an exercise from the library."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Exercise ID")),
		mcp.WithOutputSchema[proof.Report](),
	), mcp.NewStructuredToolHandler(s.handleCheckExercise))

	s.mcpServer.AddTool(mcp.NewTool("list_exercises",
		mcp.WithDescription("List the exercises available in the library."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ids, err := s.engine.Exercises(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(ids)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleParse(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (GraphResult, error) {
	text, _ := args["graph"].(string)
	g, err := s.engine.Parse(text)
	if err != nil {
		return GraphResult{}, err
	}
	return GraphResult{
		Graph:        g.String(),
		Size:         g.Size(),
		NumAtoms:     g.NumAtoms(),
		NumSubgraphs: g.NumSubgraphs(),
	}, nil
}

func (s *Server) handleMoves(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (MovesResult, error) {
	text, _ := args["graph"].(string)
	name, _ := args["rule"].(string)

	g, err := s.engine.Parse(text)
	if err != nil {
		return MovesResult{}, err
	}

	var moves []rules.Move
	if name == "" {
		moves = s.engine.AllMoves(ctx, g)
	} else {
		r, err := rules.ParseRule(name)
		if err != nil {
			return MovesResult{}, err
		}
		if moves, err = s.engine.Moves(ctx, g, r); err != nil {
			return MovesResult{}, err
		}
	}
	if moves == nil {
		moves = []rules.Move{}
	}
	return MovesResult{Graph: g.String(), Moves: moves}, nil
}

func (s *Server) handleApply(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ApplyResult, error) {
	text, _ := args["graph"].(string)
	name, _ := args["rule"].(string)

	g, err := s.engine.Parse(text)
	if err != nil {
		return ApplyResult{}, err
	}
	path, err := dto.DecodePath(args["path"])
	if err != nil {
		return ApplyResult{}, fmt.Errorf("path: %w", err)
	}
	var members []int
	if raw, ok := args["members"]; ok {
		if members, err = dto.DecodePath(raw); err != nil {
			return ApplyResult{}, fmt.Errorf("members: %w", err)
		}
	}

	move, err := proof.MoveFromStep(domain.Step{Rule: name, Path: path, Members: members})
	if err != nil {
		return ApplyResult{}, err
	}
	out, err := s.engine.Apply(ctx, g, move)
	if err != nil {
		slog.Debug("MCP apply_move refused", "move", move.String(), "error", err)
		return ApplyResult{}, err
	}
	return ApplyResult{Move: move, Before: g.String(), Graph: out.String()}, nil
}

func (s *Server) handleCheck(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (proof.Report, error) {
	meta, err := dto.Decode(args)
	if err != nil {
		return proof.Report{}, err
	}
	ex, err := meta.ToDomain("adhoc", "")
	if err != nil {
		return proof.Report{}, err
	}
	return reportOrError(s.engine.Check(ctx, *ex))
}

func (s *Server) handleCheckExercise(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (proof.Report, error) {
	id, _ := args["id"].(string)
	return reportOrError(s.engine.CheckExercise(ctx, id))
}

// reportOrError turns a refused step into a tool error that still names the
// last graph reached.
func reportOrError(report *proof.Report, err error) (proof.Report, error) {
	if err != nil {
		if report != nil {
			return proof.Report{}, fmt.Errorf("%w (last graph: %s)", err, report.Final)
		}
		return proof.Report{}, err
	}
	return *report, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("aegraph://exercises", "Exercise Library",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ids, err := s.engine.Exercises(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list exercises: %w", err)
		}
		exercises := make([]*domain.Exercise, 0, len(ids))
		for _, id := range ids {
			ex, err := s.engine.Exercise(ctx, id)
			if err != nil {
				return nil, err
			}
			exercises = append(exercises, ex)
		}
		jsonBytes, _ := json.Marshal(exercises)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "aegraph://exercises",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
