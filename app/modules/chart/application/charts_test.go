package chartservice

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

// callOK runs one tool call through the full pipeline and fails the test
// on anything but a success envelope with a stored PNG.
func callOK(t *testing.T, s *Service, store *memStore, tool string, args map[string]any) Envelope {
	t.Helper()
	env := s.Call(context.Background(), tool, args)
	if !env.Success {
		t.Fatalf("%s failed: %s", tool, env.Error)
	}
	if env.ImageURL == "" {
		t.Fatalf("%s returned no image URL", tool)
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	for _, png := range store.saved {
		if len(png) == 0 {
			t.Fatalf("%s stored an empty PNG", tool)
		}
		if !strings.HasPrefix(string(png[:8]), "\x89PNG\r\n\x1a\n") {
			t.Fatalf("%s stored bytes without a PNG signature", tool)
		}
	}
	return env
}

func monthlyData() string {
	return `[
		{"month":"Jan","sales":120,"returns":8},
		{"month":"Feb","sales":145,"returns":12},
		{"month":"Mar","sales":98,"returns":5},
		{"month":"Apr","sales":171,"returns":14},
		{"month":"May","sales":160,"returns":9}
	]`
}

func TestLineChart(t *testing.T) {
	s, store, _ := newTestService(t)
	env := callOK(t, s, store, "generate_line_chart", map[string]any{
		"data":    monthlyData(),
		"x_field": "month",
		"y_field": "sales",
		"title":   "Monthly Sales",
	})
	if env.Message != "Line chart generated: Monthly Sales" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestAreaChartWithTemperatureContext(t *testing.T) {
	s, store, _ := newTestService(t)
	callOK(t, s, store, "generate_area_chart", map[string]any{
		"data":         `[{"h":0,"t":12.5},{"h":6,"t":14.1},{"h":12,"t":21.3},{"h":18,"t":17.8}]`,
		"x_field":      "h",
		"y_field":      "t",
		"data_context": "temperature",
	})
}

func TestColumnChart(t *testing.T) {
	s, store, _ := newTestService(t)
	callOK(t, s, store, "generate_column_chart", map[string]any{
		"data":    monthlyData(),
		"x_field": "month",
		"y_field": "sales",
		"palette": "forest",
	})
}

func TestBarChart(t *testing.T) {
	s, store, _ := newTestService(t)
	callOK(t, s, store, "generate_bar_chart", map[string]any{
		"data":    monthlyData(),
		"x_field": "month",
		"y_field": "sales",
	})
}

func TestBarChartRejectsNonPositiveValues(t *testing.T) {
	s, _, _ := newTestService(t)
	env := s.Call(context.Background(), "generate_bar_chart", map[string]any{
		"data":    `[{"k":"a","v":0},{"k":"b","v":-3}]`,
		"x_field": "k",
		"y_field": "v",
	})
	if env.Success {
		t.Fatal("expected failure for non-positive values")
	}
	if !strings.Contains(env.Error, "no positive values") {
		t.Errorf("error = %q", env.Error)
	}
}

func TestScatterChartWithSizeField(t *testing.T) {
	s, store, _ := newTestService(t)

	rows := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		rows = append(rows, fmt.Sprintf(`{"x":%f,"y":%f,"weight":%f}`,
			gofakeit.Float64Range(0, 100),
			gofakeit.Float64Range(0, 100),
			gofakeit.Float64Range(1, 10)))
	}
	callOK(t, s, store, "generate_scatter_chart", map[string]any{
		"data":       "[" + strings.Join(rows, ",") + "]",
		"x_field":    "x",
		"y_field":    "y",
		"size_field": "weight",
	})
}

func TestHistogramChart(t *testing.T) {
	s, store, _ := newTestService(t)

	samples := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		samples = append(samples, fmt.Sprintf("%f", gofakeit.Float64Range(-3, 3)))
	}
	callOK(t, s, store, "generate_histogram_chart", map[string]any{
		"data": "[" + strings.Join(samples, ",") + "]",
		"bins": 15.0,
	})
}

func TestHistogramChartIdenticalSamples(t *testing.T) {
	s, store, _ := newTestService(t)
	callOK(t, s, store, "generate_histogram_chart", map[string]any{
		"data": `[5, 5, 5, 5]`,
	})
}

func TestDualAxesChart(t *testing.T) {
	s, store, _ := newTestService(t)
	callOK(t, s, store, "generate_dual_axes_chart", map[string]any{
		"data":     monthlyData(),
		"x_field":  "month",
		"y1_field": "sales",
		"y2_field": "returns",
	})
}

func TestPieChart(t *testing.T) {
	s, store, _ := newTestService(t)
	env := callOK(t, s, store, "generate_pie_chart", map[string]any{
		"data":        `[{"name":"alpha","value":40},{"name":"beta","value":35},{"name":"gamma","value":25}]`,
		"label_field": "name",
		"value_field": "value",
		"title":       "Share",
	})
	if env.Message != "Pie chart generated: Share" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestRadarChart(t *testing.T) {
	s, store, _ := newTestService(t)
	callOK(t, s, store, "generate_radar_chart", map[string]any{
		"data": `[
			{"skill":"speed","p1":8,"p2":6},
			{"skill":"power","p1":5,"p2":9},
			{"skill":"control","p1":7,"p2":7},
			{"skill":"stamina","p1":6,"p2":8}
		]`,
		"category_field": "skill",
		"value_fields":   []any{"p1", "p2"},
	})
}

func TestRadarChartNeedsThreeCategories(t *testing.T) {
	s, _, _ := newTestService(t)
	env := s.Call(context.Background(), "generate_radar_chart", map[string]any{
		"data":           `[{"c":"a","v":1},{"c":"b","v":2}]`,
		"category_field": "c",
		"value_fields":   []any{"v"},
	})
	if env.Success {
		t.Fatal("expected failure with two categories")
	}
}

func TestTreemapChart(t *testing.T) {
	s, store, _ := newTestService(t)
	callOK(t, s, store, "generate_treemap_chart", map[string]any{
		"data": `[
			{"name":"search","size":420},
			{"name":"ads","size":310},
			{"name":"cloud","size":180},
			{"name":"other","size":90}
		]`,
		"path_field":  "name",
		"value_field": "size",
	})
}

func TestWordCloudChart(t *testing.T) {
	s, store, _ := newTestService(t)
	callOK(t, s, store, "generate_word_cloud_chart", map[string]any{
		"words": `[
			{"word":"golang","freq":50},
			{"word":"charts","freq":30},
			{"word":"server","freq":20},
			{"word":"render","freq":10},
			{"word":"theme","freq":5}
		]`,
	})
}

func TestNetworkGraph(t *testing.T) {
	s, store, _ := newTestService(t)
	callOK(t, s, store, "generate_network_graph", map[string]any{
		"nodes": []any{
			map[string]any{"id": "a", "label": "API"},
			map[string]any{"id": "b", "label": "Worker"},
			map[string]any{"id": "c", "label": "DB"},
		},
		"edges": []any{
			map[string]any{"source": "a", "target": "b"},
			map[string]any{"source": "b", "target": "c"},
			map[string]any{"source": "x", "target": "c"}, // dangling source is skipped
		},
	})
}

func TestMindMap(t *testing.T) {
	s, store, _ := newTestService(t)
	callOK(t, s, store, "generate_mind_map", map[string]any{
		"topic":    "Release",
		"branches": []any{"Build", "Test", "Deploy", "Monitor"},
	})
}

func TestFishboneDiagram(t *testing.T) {
	s, store, _ := newTestService(t)
	callOK(t, s, store, "generate_fishbone_diagram", map[string]any{
		"problem": "Slow deploys",
		"causes":  []any{"CI queue", "Large images", "Flaky tests", "Manual approvals"},
	})
}

func TestFlowDiagram(t *testing.T) {
	s, store, _ := newTestService(t)
	env := callOK(t, s, store, "generate_flow_diagram", map[string]any{
		"steps": []any{
			map[string]any{"id": "1", "text": "Receive request"},
			map[string]any{"id": "2", "text": "Validate input"},
			map[string]any{"id": "3", "text": "Render chart"},
			map[string]any{"id": "4", "text": "Return URL"},
		},
	})
	if env.Message != "Flow diagram generated: Flow Diagram" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestExplicitColorOverridesPalette(t *testing.T) {
	s, store, _ := newTestService(t)
	callOK(t, s, store, "generate_line_chart", map[string]any{
		"data":    monthlyData(),
		"x_field": "month",
		"y_field": "sales",
		"color":   "#FF00FF",
	})
}
