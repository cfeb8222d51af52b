// Package http exposes graph analysis over a JSON API. Handlers are
// written against small interfaces so tests can drive them with the
// in-memory adapters.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	oapiruntime "github.com/oapi-codegen/runtime"

	"github.com/uhaseeb85/stategraph/internal/presentation/graph"
	"github.com/uhaseeb85/stategraph/internal/validator"
	"github.com/uhaseeb85/stategraph/pkg/condition"
	"github.com/uhaseeb85/stategraph/pkg/diff"
	"github.com/uhaseeb85/stategraph/pkg/domain"
	"github.com/uhaseeb85/stategraph/pkg/partition"
	"github.com/uhaseeb85/stategraph/pkg/pathfind"
	"github.com/uhaseeb85/stategraph/pkg/ports"
)

//go:embed openapi.yaml
var specYAML []byte

var (
	specOnce sync.Once
	specDoc  *openapi3.T
	specErr  error
)

// rawSpec parses and validates the embedded OpenAPI document once.
func rawSpec() (*openapi3.T, error) {
	specOnce.Do(func() {
		loader := openapi3.NewLoader()
		specDoc, specErr = loader.LoadFromData(specYAML)
		if specErr != nil {
			return
		}
		specErr = specDoc.Validate(loader.Context)
	})
	return specDoc, specErr
}

// Analyzer defines the interface for the stategraph analysis core.
type Analyzer interface {
	Graph(ctx context.Context) (*domain.Graph, error)
	FindPaths(ctx context.Context, opts pathfind.Options) (*pathfind.Result, error)
	Split(ctx context.Context, targetCount int) ([]partition.Partition, error)
	Compare(ctx context.Context, snap *domain.Snapshot) (*diff.Report, error)
	Validate(ctx context.Context) (*validator.Report, error)
	Snapshot(ctx context.Context, name string) (*domain.Snapshot, error)
}

// Server wires the analyzer and snapshot store into HTTP handlers.
type Server struct {
	Analyzer Analyzer
	Store    ports.SnapshotStore
	Logger   *slog.Logger
}

type Option func(*config)

type config struct {
	metricsHandler http.Handler
	logger         *slog.Logger
}

// WithMetricsHandler mounts a handler (e.g. promhttp.Handler()) at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(c *config) {
		c.metricsHandler = h
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// NewHandler creates the HTTP handler. The embedded OpenAPI document is
// validated here so a malformed spec fails at startup, not on the first
// documentation request.
func NewHandler(analyzer Analyzer, store ports.SnapshotStore, opts ...Option) (http.Handler, error) {
	if _, err := rawSpec(); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}

	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	server := &Server{
		Analyzer: analyzer,
		Store:    store,
		Logger:   cfg.logger,
	}

	r := chi.NewRouter()

	r.Get("/healthz", server.Healthz)
	r.Get("/graph", server.GetGraph)
	r.Get("/graph/mermaid", server.GetGraphMermaid)
	r.Get("/validate", server.ValidateGraph)
	r.Get("/paths", server.FindPaths)
	r.Get("/partitions", server.SplitGraph)
	r.Get("/diff/{snapshot}", server.DiffSnapshot)
	r.Get("/snapshots", server.ListSnapshots)
	r.Post("/snapshots", server.SaveSnapshot)
	r.Delete("/snapshots/{name}", server.DeleteSnapshot)
	r.Post("/condition/parse", server.ParseCondition)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(specYAML)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	if cfg.metricsHandler != nil {
		r.Handle("/metrics", cfg.metricsHandler)
	}

	return enableCORS(r), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Custom-Header")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Stategraph API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// Healthz handles GET /healthz.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetGraph handles GET /graph.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	g, err := s.Analyzer.Graph(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}
	s.respondJSON(w, http.StatusOK, g.States())
}

// GetGraphMermaid handles GET /graph/mermaid.
func (s *Server) GetGraphMermaid(w http.ResponseWriter, r *http.Request) {
	g, err := s.Analyzer.Graph(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}

	var overlay *graph.Overlay
	var count int
	if err := bindQuery(r, "partitions", &count); err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}
	if count > 0 {
		parts, err := s.Analyzer.Split(r.Context(), count)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err)
			return
		}
		overlay = &graph.Overlay{Partitions: parts}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(g, overlay))
}

// ValidateGraph handles GET /validate.
func (s *Server) ValidateGraph(w http.ResponseWriter, r *http.Request) {
	report, err := s.Analyzer.Validate(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}
	s.respondJSON(w, http.StatusOK, report)
}

// FindPaths handles GET /paths.
func (s *Server) FindPaths(w http.ResponseWriter, r *http.Request) {
	opts := pathfind.Options{Mode: pathfind.ModeToEnd}

	if err := bindQuery(r, "start", &opts.Start); err != nil || opts.Start == "" {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("start parameter is required"))
		return
	}
	if err := errors.Join(
		bindQuery(r, "target", &opts.Target),
		bindQuery(r, "via", &opts.Via),
		bindQuery(r, "max_paths", &opts.MaxPaths),
		bindQuery(r, "max_depth", &opts.MaxDepth),
	); err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}
	if opts.Target != "" {
		opts.Mode = pathfind.ModeToTarget
	}

	var offset, limit int
	if err := errors.Join(
		bindQuery(r, "offset", &offset),
		bindQuery(r, "limit", &limit),
	); err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.Analyzer.FindPaths(r.Context(), opts)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			s.respondError(w, http.StatusNotFound, err)
			return
		}
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}

	paths := result.Paths()
	if offset > 0 || limit > 0 {
		paths = result.Page(offset, limit)
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"paths":     paths,
		"cycles":    result.Cycles(),
		"total":     len(result.Paths()),
		"truncated": result.Truncated,
	})
}

// SplitGraph handles GET /partitions.
func (s *Server) SplitGraph(w http.ResponseWriter, r *http.Request) {
	var count int
	if err := bindQuery(r, "count", &count); err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}

	parts, err := s.Analyzer.Split(r.Context(), count)
	if err != nil {
		var validation *domain.ValidationError
		if errors.As(err, &validation) {
			s.respondError(w, http.StatusBadRequest, err)
			return
		}
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}
	s.respondJSON(w, http.StatusOK, parts)
}

// DiffSnapshot handles GET /diff/{snapshot}.
func (s *Server) DiffSnapshot(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "snapshot")

	snap, err := s.Store.Load(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			s.respondError(w, http.StatusNotFound, err)
			return
		}
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}

	report, err := s.Analyzer.Compare(r.Context(), snap)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}

	var spec diff.FilterSpec
	var status, kind string
	if err := errors.Join(
		bindQuery(r, "status", &status),
		bindQuery(r, "kind", &kind),
		bindQuery(r, "search", &spec.Search),
	); err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}
	spec.Status = diff.Status(status)
	spec.Kind = diff.Kind(kind)

	if spec != (diff.FilterSpec{}) {
		report = report.Filter(spec)
	}
	s.respondJSON(w, http.StatusOK, report)
}

// ListSnapshots handles GET /snapshots.
func (s *Server) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	names, err := s.Store.List(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	s.respondJSON(w, http.StatusOK, names)
}

// SaveSnapshot handles POST /snapshots.
func (s *Server) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("request body must include a snapshot name"))
		return
	}

	snap, err := s.Analyzer.Snapshot(r.Context(), body.Name)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}
	if err := s.Store.Save(r.Context(), snap); err != nil {
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]any{
		"name":     snap.Name,
		"saved_at": snap.SavedAt,
		"states":   len(snap.States),
	})
}

// DeleteSnapshot handles DELETE /snapshots/{name}.
func (s *Server) DeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.Store.Delete(r.Context(), name); err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			s.respondError(w, http.StatusNotFound, err)
			return
		}
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ParseCondition handles POST /condition/parse.
func (s *Server) ParseCondition(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	parsed := condition.Parse(body.Description)
	resp := map[string]any{
		"parsed":     parsed,
		"normalized": condition.Normalize(body.Description),
	}
	if err := condition.Validate(body.Description); err != nil {
		resp["issue"] = err.Error()
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// bindQuery decodes one optional query parameter using OpenAPI form
// style. Absent parameters leave dest untouched.
func bindQuery(r *http.Request, name string, dest any) error {
	if !r.URL.Query().Has(name) {
		return nil
	}
	if err := oapiruntime.BindQueryParameter("form", true, false, name, r.URL.Query(), dest); err != nil {
		return fmt.Errorf("invalid %s parameter: %w", name, err)
	}
	return nil
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.Logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "status", status, "error", err)
	}
	s.respondJSON(w, status, map[string]string{"error": err.Error()})
}
