package mcp

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	chartservice "github.com/chartsmith-labs/chartsmith/app/modules/chart/application"
)

const (
	protocolVersion = "2025-03-26"
	serverName      = "chartsmith"
	serverVersion   = "0.1.0"
)

// Server implements the MCP protocol over HTTP POST. Every chart tool
// the chart service registers is exposed through tools/list and
// tools/call.
type Server struct {
	logger   *slog.Logger
	charts   *chartservice.Service
	sessions sync.Map
}

func NewServer(logger *slog.Logger, charts *chartservice.Service) *Server {
	return &Server{logger: logger, charts: charts}
}

// --- response writer wrapper ---

type responseWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
	rpcMethod   string
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.status = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.wroteHeader = true
		rw.status = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

// --- JSON-RPC types ---

type jsonrpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type jsonrpcResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func rpcResult(id any, result any) *jsonrpcResponse {
	return &jsonrpcResponse{JSONRPC: "2.0", ID: id, Result: result}
}

func rpcErr(id any, code int, msg string) *jsonrpcResponse {
	return &jsonrpcResponse{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: msg}}
}

// --- HTTP handler ---

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

	s.serveRequest(rw, r)

	s.logger.Info("mcp request",
		"method", r.Method,
		"status", rw.status,
		"duration_ms", time.Since(start).Milliseconds(),
		"rpc_method", rw.rpcMethod,
		"response_bytes", rw.bytes,
	)
}

func (s *Server) serveRequest(w *responseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req jsonrpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, rpcErr(nil, -32700, "Parse error"))
		return
	}

	w.rpcMethod = req.Method

	if req.JSONRPC != "2.0" {
		writeJSON(w, http.StatusOK, rpcErr(req.ID, -32600, "Invalid request: jsonrpc must be 2.0"))
		return
	}

	// Notifications carry no ID and get 202 Accepted with no body.
	if req.ID == nil {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	if req.Method != "initialize" {
		if sessionID := r.Header.Get("Mcp-Session-Id"); sessionID != "" {
			if _, ok := s.sessions.Load(sessionID); !ok {
				writeJSON(w, http.StatusOK, rpcErr(req.ID, -32600, "Invalid session"))
				return
			}
		}
	}

	resp := s.dispatch(r, req)

	if req.Method == "initialize" && resp.Error == nil {
		if result, ok := resp.Result.(map[string]any); ok {
			if sid, ok := result["_sessionId"].(string); ok {
				w.Header().Set("Mcp-Session-Id", sid)
				delete(result, "_sessionId")
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) dispatch(r *http.Request, req jsonrpcRequest) *jsonrpcResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "ping":
		return rpcResult(req.ID, map[string]any{})
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(r, req)
	default:
		return rpcErr(req.ID, -32601, "Method not found: "+req.Method)
	}
}

func (s *Server) handleInitialize(req jsonrpcRequest) *jsonrpcResponse {
	sessionID := strings.ReplaceAll(uuid.New().String(), "-", "")
	s.sessions.Store(sessionID, true)

	result := map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    serverName,
			"version": serverVersion,
		},
		"_sessionId": sessionID, // stripped by serveRequest and set as header
	}
	return rpcResult(req.ID, result)
}

func (s *Server) handleToolsList(req jsonrpcRequest) *jsonrpcResponse {
	tools := s.charts.Tools()
	defs := make([]map[string]any, 0, len(tools))
	for _, t := range tools {
		defs = append(defs, map[string]any{
			"name":        t.Name,
			"description": t.Description,
			"inputSchema": t.InputSchema,
		})
	}
	return rpcResult(req.ID, map[string]any{"tools": defs})
}

func (s *Server) handleToolsCall(r *http.Request, req jsonrpcRequest) *jsonrpcResponse {
	var params struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return rpcErr(req.ID, -32602, "Invalid params: "+err.Error())
	}

	if _, ok := s.charts.Tool(params.Name); !ok {
		return rpcErr(req.ID, -32602, "Unknown tool: "+params.Name)
	}

	env := s.charts.Call(r.Context(), params.Name, params.Arguments)
	body, err := json.Marshal(env)
	if err != nil {
		return rpcErr(req.ID, -32603, "Internal error: "+err.Error())
	}

	return rpcResult(req.ID, map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": string(body)},
		},
		"isError": !env.Success,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
