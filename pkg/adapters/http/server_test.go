package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/aegraph"
	"github.com/aretw0/aegraph/pkg/adapters/memory"
	"github.com/aretw0/aegraph/pkg/domain"
	"github.com/aretw0/aegraph/pkg/observability"
	"github.com/aretw0/aegraph/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, opts ...Option) http.Handler {
	t.Helper()
	loader, err := memory.NewLoader(domain.Exercise{
		ID:      "double-negation",
		Premise: "([[A]])",
		Goal:    "(A)",
		Steps:   []domain.Step{{Rule: "double-cut", Path: []int{0}}},
	})
	require.NoError(t, err)

	streams := NewStreamManager()
	metrics := observability.NewMetrics()
	eng, err := aegraph.New("",
		aegraph.WithLoader(loader),
		aegraph.WithLifecycleHooks(streams.Hooks()),
		aegraph.WithLifecycleHooks(metrics.Hooks()),
	)
	require.NoError(t, err)

	opts = append([]Option{WithStreams(streams), WithMetrics(metrics.Handler())}, opts...)
	return NewHandler(eng, opts...)
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestParse(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "POST", "/parse", GraphRequest{Graph: "([B], A)"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp GraphResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, GraphResponse{Graph: "(A, [B])", Size: 2, NumAtoms: 1, NumSubgraphs: 1}, resp)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestParse_Malformed(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "POST", "/parse", GraphRequest{Graph: "(A, [B)"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "malformed input")
	assert.NotEmpty(t, resp.RequestID)
}

func TestMoves(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "POST", "/moves", MovesRequest{Graph: "([[A]])", Rule: "dc"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp MovesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Moves, 1)
	assert.Equal(t, rules.RuleDoubleCut, resp.Moves[0].Rule)
	assert.Equal(t, []int{0}, []int(resp.Moves[0].Path))

	w = do(t, h, "POST", "/moves", MovesRequest{Graph: "()"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"moves":[]`)

	w = do(t, h, "POST", "/moves", MovesRequest{Graph: "()", Rule: "iteration"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApply(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "POST", "/apply", ApplyRequest{Graph: "(A, [A])", Rule: "deiteration", Path: []int{0, 0}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ApplyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "(A, [])", resp.Graph)
	assert.Equal(t, "(A, [A])", resp.Before)
}

func TestApply_Refused(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "POST", "/apply", ApplyRequest{Graph: "([A, B])", Rule: "erasure", Path: []int{0, 0}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, h, "POST", "/apply", ApplyRequest{Graph: "(A)", Rule: "insert-double-cut", Path: []int{7}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestApply_InvalidBody(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("POST", "/apply", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheck(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "POST", "/check", domain.Exercise{
		Premise: "(A, B)",
		Goal:    "(A)",
		Steps:   []domain.Step{{Rule: "erasure", Path: []int{1}}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"goal_reached":true`)

	w = do(t, h, "POST", "/check", domain.Exercise{
		Premise: "([A])",
		Goal:    "()",
		Steps:   []domain.Step{{Rule: "erasure", Path: []int{0, 0}}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Report)
}

func TestExercises(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "GET", "/exercises", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["double-negation"]`, w.Body.String())

	w = do(t, h, "GET", "/exercises/double-negation", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"premise":"([[A]])"`)

	w = do(t, h, "GET", "/exercises/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, "POST", "/exercises/double-negation/check", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"final":"(A)"`)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t)

	do(t, h, "POST", "/apply", ApplyRequest{Graph: "([[A]])", Rule: "dc", Path: []int{0}})

	w := do(t, h, "GET", "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `aegraph_rule_applications_total{rule="double-cut"} 1`)
}

func TestRequestID_Propagated(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestSubscribeEvents(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(t))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	lines := bufio.NewScanner(resp.Body)
	// The ping is written after the subscription is registered.
	for lines.Scan() && lines.Text() != "data: connected" {
	}

	body, _ := json.Marshal(ApplyRequest{Graph: "([[A]])", Rule: "dc", Path: []int{0}})
	applyResp, err := srv.Client().Post(srv.URL+"/apply", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	applyResp.Body.Close()

	var data string
	for lines.Scan() {
		if strings.HasPrefix(lines.Text(), "data: ") {
			data = strings.TrimPrefix(lines.Text(), "data: ")
			break
		}
	}

	var evt domain.RuleEvent
	require.NoError(t, json.Unmarshal([]byte(data), &evt))
	assert.Equal(t, domain.EventRuleApplied, evt.Type)
	assert.Equal(t, "(A)", evt.After)
}

func TestStreamManager_Close(t *testing.T) {
	sm := NewStreamManager()
	ch, unsubscribe := sm.Subscribe()

	sm.Close()
	_, ok := <-ch
	assert.False(t, ok, "open streams are ended")
	assert.NotPanics(t, unsubscribe)

	late, _ := sm.Subscribe()
	_, ok = <-late
	assert.False(t, ok, "no new streams after Close")
}

func TestShutdown_EndsEventStreams(t *testing.T) {
	loader, err := memory.NewLoader()
	require.NoError(t, err)
	eng, err := aegraph.New("", aegraph.WithLoader(loader))
	require.NoError(t, err)

	streams := NewStreamManager()
	srv := httptest.NewUnstartedServer(NewHandler(eng, WithStreams(streams)))
	srv.Config.RegisterOnShutdown(streams.Close)
	srv.Start()
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/events")
	require.NoError(t, err)
	defer resp.Body.Close()

	lines := bufio.NewScanner(resp.Body)
	for lines.Scan() && lines.Text() != "data: connected" {
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Config.Shutdown(ctx), "an open /events stream must not hold up shutdown")
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusFor(aegraph.ErrNoLibrary))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(context.Canceled))
}
