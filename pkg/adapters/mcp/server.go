// Package mcp exposes graph analysis as Model Context Protocol tools,
// so agent hosts can query flows the same way the HTTP API does.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/uhaseeb85/stategraph"
	"github.com/uhaseeb85/stategraph/pkg/condition"
	"github.com/uhaseeb85/stategraph/pkg/diff"
	"github.com/uhaseeb85/stategraph/pkg/domain"
	"github.com/uhaseeb85/stategraph/pkg/pathfind"
	"github.com/uhaseeb85/stategraph/pkg/ports"
)

// PathsResponse is the structured output of the find_paths tool.
type PathsResponse struct {
	Paths     []pathfind.Path  `json:"paths" jsonschema_description:"Discovered paths in traversal order"`
	Cycles    []pathfind.Cycle `json:"cycles" jsonschema_description:"Cycles encountered during the search"`
	Truncated bool             `json:"truncated" jsonschema_description:"True when result or depth limits cut the search short"`
}

// ParseResponse is the structured output of the parse_condition tool.
type ParseResponse struct {
	Parsed     condition.Parsed `json:"parsed" jsonschema_description:"The condition split into logical parts"`
	Normalized string           `json:"normalized" jsonschema_description:"Canonical form of the condition text"`
	Issue      string           `json:"issue,omitempty" jsonschema_description:"Validation problem, if any"`
}

// Server wraps the Analyzer and exposes it as an MCP Server.
type Server struct {
	analyzer  *stategraph.Analyzer
	store     ports.SnapshotStore
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. The store may be nil,
// which disables the snapshot comparison tool.
func NewServer(analyzer *stategraph.Analyzer, store ports.SnapshotStore) *Server {
	s := &Server{
		analyzer:  analyzer,
		store:     store,
		mcpServer: server.NewMCPServer("stategraph-mcp", strings.TrimSpace(stategraph.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
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
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
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
	// TOOL: get_graph
	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get all states and transition rules of the loaded graph."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		g, err := s.analyzer.Graph(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("graph load failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(g.States())
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: find_paths
	pathsTool := mcp.NewTool("find_paths",
		mcp.WithDescription("Find all paths from a start state, either to dead ends or to a specific target."),
		mcp.WithString("start", mcp.Required(), mcp.Description("ID of the state to start from")),
		mcp.WithString("target", mcp.Description("ID of the target state (omit to search to dead ends)")),
		mcp.WithString("via", mcp.Description("ID of a state every path must pass through")),
		mcp.WithNumber("max_paths", mcp.Description("Cap on paths plus cycles recorded")),
		mcp.WithNumber("max_depth", mcp.Description("Cap on traversal depth")),
		mcp.WithOutputSchema[PathsResponse](),
	)
	s.mcpServer.AddTool(pathsTool, mcp.NewStructuredToolHandler(s.handleFindPaths))

	// TOOL: split_graph
	splitTool := mcp.NewTool("split_graph",
		mcp.WithDescription("Partition the graph into roughly balanced, connectivity-preserving groups."),
		mcp.WithNumber("count", mcp.Required(), mcp.Description("Requested number of partitions")),
	)
	s.mcpServer.AddTool(splitTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		count, ok := request.GetArguments()["count"].(float64)
		if !ok {
			return mcp.NewToolResultError("count must be a number"), nil
		}
		parts, err := s.analyzer.Split(ctx, int(count))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("split failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(parts)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: compare_graphs
	diffTool := mcp.NewTool("compare_graphs",
		mcp.WithDescription("Compare the current graph against a stored snapshot and report changes."),
		mcp.WithString("snapshot", mcp.Required(), mcp.Description("Name of the stored snapshot to compare against")),
		mcp.WithString("status", mcp.Description("Filter by change status: added, removed, modified, unchanged")),
		mcp.WithString("kind", mcp.Description("Filter by entity kind: state or rule")),
		mcp.WithString("search", mcp.Description("Case-insensitive substring filter")),
	)
	s.mcpServer.AddTool(diffTool, s.handleCompare)

	// TOOL: parse_condition
	parseTool := mcp.NewTool("parse_condition",
		mcp.WithDescription("Parse a natural-language rule condition into its logical parts."),
		mcp.WithString("description", mcp.Required(), mcp.Description("The condition text")),
		mcp.WithOutputSchema[ParseResponse](),
	)
	s.mcpServer.AddTool(parseTool, mcp.NewStructuredToolHandler(s.handleParseCondition))

	// TOOL: validate_graph
	s.mcpServer.AddTool(mcp.NewTool("validate_graph",
		mcp.WithDescription("Run structural consistency checks over the loaded graph."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report, err := s.analyzer.Validate(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("validation failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(report)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleFindPaths(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PathsResponse, error) {
	opts := pathfind.Options{Mode: pathfind.ModeToEnd}
	opts.Start, _ = args["start"].(string)
	opts.Target, _ = args["target"].(string)
	opts.Via, _ = args["via"].(string)
	if v, ok := args["max_paths"].(float64); ok {
		opts.MaxPaths = int(v)
	}
	if v, ok := args["max_depth"].(float64); ok {
		opts.MaxDepth = int(v)
	}
	if opts.Target != "" {
		opts.Mode = pathfind.ModeToTarget
	}

	result, err := s.analyzer.FindPaths(ctx, opts)
	if err != nil {
		return PathsResponse{}, fmt.Errorf("path search failed: %w", err)
	}

	return PathsResponse{
		Paths:     result.Paths(),
		Cycles:    result.Cycles(),
		Truncated: result.Truncated,
	}, nil
}

func (s *Server) handleCompare(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.store == nil {
		return mcp.NewToolResultError("no snapshot store configured"), nil
	}

	// Decode the filter arguments through mapstructure so the tool and
	// the HTTP API share one filter shape.
	var spec diff.FilterSpec
	if err := mapstructure.Decode(request.GetArguments(), &spec); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid filter arguments: %v", err)), nil
	}

	name, _ := request.GetArguments()["snapshot"].(string)
	snap, err := s.store.Load(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("snapshot %q not found", name)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("snapshot load failed: %v", err)), nil
	}

	report, err := s.analyzer.Compare(ctx, snap)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	if spec != (diff.FilterSpec{}) {
		report = report.Filter(spec)
	}

	jsonBytes, _ := json.Marshal(report)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleParseCondition(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ParseResponse, error) {
	description, _ := args["description"].(string)

	resp := ParseResponse{
		Parsed:     condition.Parse(description),
		Normalized: condition.Normalize(description),
	}
	if err := condition.Validate(description); err != nil {
		resp.Issue = err.Error()
	}
	return resp, nil
}
