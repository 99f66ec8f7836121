package chartservice

import (
	"context"
	"log/slog"
	"time"
)

// Store persists a rendered PNG and returns the URL a client can fetch
// it from. The URL is only handed back after the write completed, so a
// client read never races the write.
type Store interface {
	Save(chartType string, png []byte) (url string, err error)
}

// Recorder observes render outcomes. A nil Recorder disables metrics.
type Recorder interface {
	ObserveRender(chartType, status string, elapsed time.Duration)
}

// Handler consumes normalized arguments and returns a result envelope.
type Handler func(ctx context.Context, args map[string]any) Envelope

// Tool is the explicit per-handler configuration: the tool surface name,
// its declared required fields, the JSON schema advertised over MCP, and
// the handler itself.
type Tool struct {
	Name        string
	ChartType   string
	Description string
	Required    []string
	InputSchema map[string]any
	Handler     Handler `json:"-"`
}

// Service owns the chart tool registry and runs every invocation through
// the validation pipeline. It is safe for concurrent use: the registry
// is read-only after construction and calls share no mutable state.
type Service struct {
	logger   *slog.Logger
	store    Store
	recorder Recorder
	tools    []Tool
	byName   map[string]*Tool
}

// NewService builds the service and registers all chart tools.
func NewService(logger *slog.Logger, store Store, recorder Recorder) *Service {
	s := &Service{
		logger:   logger,
		store:    store,
		recorder: recorder,
		byName:   make(map[string]*Tool),
	}
	s.registerTools()
	return s
}

func (s *Service) register(t Tool) {
	s.tools = append(s.tools, t)
	s.byName[t.Name] = &s.tools[len(s.tools)-1]
}

// Tools returns the registered tools in registration order.
func (s *Service) Tools() []Tool { return s.tools }

// Tool looks up a tool by its surface name.
func (s *Service) Tool(name string) (*Tool, bool) {
	t, ok := s.byName[name]
	return t, ok
}

// Call validates and dispatches one tool invocation. Every failure,
// including a panic anywhere in the pipeline or handler, is converted
// into a failure envelope; nothing escapes to the transport layer.
func (s *Service) Call(ctx context.Context, name string, args map[string]any) (env Envelope) {
	tool, ok := s.byName[name]
	if !ok {
		return Envelope{Success: false, Error: "unknown tool: " + name}
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("chart call panicked", "tool", name, "panic", r)
			env = Fail(processingErr(r))
		}
		status := "ok"
		if !env.Success {
			status = "error"
		}
		if s.recorder != nil {
			s.recorder.ObserveRender(tool.ChartType, status, time.Since(start))
		}
	}()

	normalized, verr := normalize(args, tool.Required)
	if verr != nil {
		s.logger.Warn("chart call rejected",
			"tool", name,
			"kind", string(verr.Kind),
			"error", verr.Message,
		)
		return Fail(verr)
	}

	env = tool.Handler(ctx, normalized)
	if env.Success {
		s.logger.Info("chart generated", "tool", name, "image_url", env.ImageURL)
	} else {
		s.logger.Warn("chart call failed", "tool", name, "error", env.Error)
	}
	return env
}

// finish renders nothing itself; it persists the PNG bytes a handler
// produced and wraps the outcome into the uniform envelope.
func (s *Service) finish(chartType, message string, png []byte, err error) Envelope {
	if err != nil {
		return Fail(err)
	}
	url, err := s.store.Save(chartType, png)
	if err != nil {
		return Fail(err)
	}
	return OK(url, message)
}
