package mcp

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	json "github.com/goccy/go-json"

	chartservice "github.com/chartsmith-labs/chartsmith/app/modules/chart/application"
)

type memStore struct {
	mu    sync.Mutex
	count int
}

func (m *memStore) Save(chartType string, png []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count++
	return fmt.Sprintf("http://localhost:8081/%s_%d.png", chartType, m.count), nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	charts := chartservice.NewService(logger, &memStore{}, nil)
	return NewServer(logger, charts)
}

func post(t *testing.T, srv *Server, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/mcp", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) jsonrpcResponse {
	t.Helper()
	var resp jsonrpcResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return resp
}

func TestInitialize(t *testing.T) {
	srv := newTestServer(t)

	rec := post(t, srv, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	session := rec.Header().Get("Mcp-Session-Id")
	if session == "" {
		t.Fatal("initialize did not set Mcp-Session-Id")
	}

	resp := decodeResponse(t, rec)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	result := resp.Result.(map[string]any)
	if result["protocolVersion"] != protocolVersion {
		t.Errorf("protocolVersion = %v", result["protocolVersion"])
	}
	if _, leaked := result["_sessionId"]; leaked {
		t.Error("internal session id leaked into the result body")
	}
	info := result["serverInfo"].(map[string]any)
	if info["name"] != serverName {
		t.Errorf("serverInfo.name = %v", info["name"])
	}
}

func TestInvalidSessionRejected(t *testing.T) {
	srv := newTestServer(t)

	rec := post(t, srv, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		map[string]string{"Mcp-Session-Id": "bogus"})
	resp := decodeResponse(t, rec)
	if resp.Error == nil || resp.Error.Code != -32600 {
		t.Fatalf("expected -32600 for invalid session, got %+v", resp.Error)
	}
}

func TestPing(t *testing.T) {
	srv := newTestServer(t)

	rec := post(t, srv, `{"jsonrpc":"2.0","id":3,"method":"ping"}`, nil)
	resp := decodeResponse(t, rec)
	if resp.Error != nil {
		t.Fatalf("ping failed: %+v", resp.Error)
	}
}

func TestToolsList(t *testing.T) {
	srv := newTestServer(t)

	rec := post(t, srv, `{"jsonrpc":"2.0","id":4,"method":"tools/list"}`, nil)
	resp := decodeResponse(t, rec)
	if resp.Error != nil {
		t.Fatalf("tools/list failed: %+v", resp.Error)
	}

	result := resp.Result.(map[string]any)
	tools := result["tools"].([]any)
	if len(tools) != 15 {
		t.Fatalf("listed %d tools, want 15", len(tools))
	}
	first := tools[0].(map[string]any)
	if first["name"] != "generate_line_chart" {
		t.Errorf("first tool = %v", first["name"])
	}
	if first["inputSchema"] == nil {
		t.Error("tool definition has no inputSchema")
	}
}

func TestToolsCallEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	body := `{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{
		"name":"generate_pie_chart",
		"arguments":{
			"data":[{"name":"a","value":60},{"name":"b","value":40}],
			"label_field":"name",
			"value_field":"value",
			"title":"Split"
		}
	}}`
	rec := post(t, srv, body, nil)
	resp := decodeResponse(t, rec)
	if resp.Error != nil {
		t.Fatalf("tools/call failed: %+v", resp.Error)
	}

	result := resp.Result.(map[string]any)
	if result["isError"] != false {
		t.Fatalf("isError = %v", result["isError"])
	}
	content := result["content"].([]any)
	text := content[0].(map[string]any)["text"].(string)

	var env chartservice.Envelope
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		t.Fatalf("content is not an envelope: %v", err)
	}
	if !env.Success || env.ImageURL == "" {
		t.Errorf("envelope = %+v", env)
	}
	if env.Message != "Pie chart generated: Split" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestToolsCallValidationFailure(t *testing.T) {
	srv := newTestServer(t)

	body := `{"jsonrpc":"2.0","id":6,"method":"tools/call","params":{
		"name":"generate_line_chart",
		"arguments":{"data":[{"x":1,"y":2}],"x_field":"x"}
	}}`
	rec := post(t, srv, body, nil)
	resp := decodeResponse(t, rec)
	if resp.Error != nil {
		t.Fatalf("validation failures must be tool results, got %+v", resp.Error)
	}

	result := resp.Result.(map[string]any)
	if result["isError"] != true {
		t.Fatalf("isError = %v", result["isError"])
	}
}

func TestToolsCallUnknownTool(t *testing.T) {
	srv := newTestServer(t)

	body := `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"generate_hologram","arguments":{}}}`
	rec := post(t, srv, body, nil)
	resp := decodeResponse(t, rec)
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Fatalf("expected -32602, got %+v", resp.Error)
	}
}

func TestNotificationGets202(t *testing.T) {
	srv := newTestServer(t)

	rec := post(t, srv, `{"jsonrpc":"2.0","method":"notifications/initialized"}`, nil)
	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want 202", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("notification response has a body: %q", rec.Body.String())
	}
}

func TestParseError(t *testing.T) {
	srv := newTestServer(t)

	rec := post(t, srv, `{not json`, nil)
	resp := decodeResponse(t, rec)
	if resp.Error == nil || resp.Error.Code != -32700 {
		t.Fatalf("expected -32700, got %+v", resp.Error)
	}
}

func TestMethodNotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := post(t, srv, `{"jsonrpc":"2.0","id":8,"method":"resources/list"}`, nil)
	resp := decodeResponse(t, rec)
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Fatalf("expected -32601, got %+v", resp.Error)
	}
}

func TestWrongJSONRPCVersion(t *testing.T) {
	srv := newTestServer(t)

	rec := post(t, srv, `{"jsonrpc":"1.0","id":9,"method":"ping"}`, nil)
	resp := decodeResponse(t, rec)
	if resp.Error == nil || resp.Error.Code != -32600 {
		t.Fatalf("expected -32600, got %+v", resp.Error)
	}
}

func TestGetNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	init := post(t, srv, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`, nil)
	session := init.Header().Get("Mcp-Session-Id")

	rec := post(t, srv, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		map[string]string{"Mcp-Session-Id": session})
	resp := decodeResponse(t, rec)
	if resp.Error != nil {
		t.Fatalf("valid session rejected: %+v", resp.Error)
	}
}
