package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhaseeb85/stategraph"
	httpAdapter "github.com/uhaseeb85/stategraph/pkg/adapters/http"
	"github.com/uhaseeb85/stategraph/pkg/adapters/memory"
	"github.com/uhaseeb85/stategraph/pkg/domain"
	"github.com/uhaseeb85/stategraph/pkg/ports"
)

func testStates() []domain.State {
	return []domain.State{
		{ID: "1", Name: "Start", Rules: []domain.Rule{
			{ID: "r1", Condition: "go", NextState: "2"},
			{ID: "r2", Condition: "skip", NextState: "3"},
		}},
		{ID: "2", Name: "Review", Rules: []domain.Rule{
			{ID: "r3", Condition: "approved", NextState: "3"},
		}},
		{ID: "3", Name: "Done"},
	}
}

func newTestHandler(t *testing.T) (http.Handler, ports.SnapshotStore) {
	t.Helper()

	analyzer, err := stategraph.New("", stategraph.WithLoader(memory.NewLoader(testStates()...)))
	require.NoError(t, err)

	store := memory.NewStore()
	handler, err := httpAdapter.NewHandler(analyzer, store)
	require.NoError(t, err)
	return handler, store
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	handler, _ := newTestHandler(t)
	rec := doRequest(t, handler, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetGraph(t *testing.T) {
	handler, _ := newTestHandler(t)
	rec := doRequest(t, handler, http.MethodGet, "/graph", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var states []domain.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &states))
	assert.Len(t, states, 3)
	assert.Equal(t, "Start", states[0].Name)
}

func TestGetGraphMermaid(t *testing.T) {
	handler, _ := newTestHandler(t)
	rec := doRequest(t, handler, http.MethodGet, "/graph/mermaid?partitions=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "graph TD")
	assert.Contains(t, rec.Body.String(), "classDef partition0")
}

func TestFindPaths(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := doRequest(t, handler, http.MethodGet, "/paths?start=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Paths     []json.RawMessage `json:"paths"`
		Total     int               `json:"total"`
		Truncated bool              `json:"truncated"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.False(t, resp.Truncated)
}

func TestFindPaths_BadRequests(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := doRequest(t, handler, http.MethodGet, "/paths", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/paths?start=ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/paths?start=1&max_paths=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSplitGraph(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := doRequest(t, handler, http.MethodGet, "/partitions?count=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/partitions?count=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSnapshotLifecycleAndDiff(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := doRequest(t, handler, http.MethodPost, "/snapshots", `{"name":"baseline"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/snapshots", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Contains(t, names, "baseline")

	// Graph has not changed, so the diff against the snapshot is clean.
	rec = doRequest(t, handler, http.MethodGet, "/diff/baseline", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var report struct {
		Summary struct {
			AddedStates   int `json:"added_states"`
			RemovedStates int `json:"removed_states"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Zero(t, report.Summary.AddedStates)
	assert.Zero(t, report.Summary.RemovedStates)

	rec = doRequest(t, handler, http.MethodDelete, "/snapshots/baseline", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, handler, http.MethodDelete, "/snapshots/baseline", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/diff/baseline", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDiffWithFilter(t *testing.T) {
	handler, store := newTestHandler(t)

	// A snapshot missing state 3 makes the live graph show one addition.
	snap := &domain.Snapshot{Name: "old", States: testStates()[:2]}
	require.NoError(t, store.Save(context.Background(), snap))

	rec := doRequest(t, handler, http.MethodGet, "/diff/old?status=added&kind=state", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var report struct {
		States []struct {
			Status string `json:"status"`
			ID     string `json:"id"`
		} `json:"states"`
		Rules []json.RawMessage `json:"rules"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.States, 1)
	assert.Equal(t, "added", report.States[0].Status)
	assert.Equal(t, "3", report.States[0].ID)
	assert.Empty(t, report.Rules)
}

func TestParseCondition(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := doRequest(t, handler, http.MethodPost, "/condition/parse", `{"description":"a AND b"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Parsed struct {
			IsCompound bool     `json:"is_compound"`
			Parts      []string `json:"parts"`
		} `json:"parsed"`
		Normalized string `json:"normalized"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Parsed.IsCompound)
	assert.Equal(t, []string{"a", "b"}, resp.Parsed.Parts)
	assert.Equal(t, "a AND b", resp.Normalized)
}

func TestOpenAPISpecServed(t *testing.T) {
	handler, _ := newTestHandler(t)
	rec := doRequest(t, handler, http.MethodGet, "/openapi.yaml", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
}

func TestCORSPreflight(t *testing.T) {
	handler, _ := newTestHandler(t)
	rec := doRequest(t, handler, http.MethodOptions, "/graph", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
