package chartservice

import "strings"

// registerTools declares the full tool surface. Required lists drive the
// normalizer; InputSchema is what tools/list advertises.
func (s *Service) registerTools() {
	s.register(Tool{
		Name:        "generate_line_chart",
		ChartType:   "line",
		Description: "Generate a line chart with an area fill from tabular data.",
		Required:    []string{"data", "x_field", "y_field"},
		InputSchema: xySchema(),
		Handler:     s.lineChart,
	})
	s.register(Tool{
		Name:        "generate_area_chart",
		ChartType:   "area",
		Description: "Generate an area chart from tabular data.",
		Required:    []string{"data", "x_field", "y_field"},
		InputSchema: xySchema(),
		Handler:     s.areaChart,
	})
	s.register(Tool{
		Name:        "generate_column_chart",
		ChartType:   "column",
		Description: "Generate a vertical column chart from tabular data.",
		Required:    []string{"data", "x_field", "y_field"},
		InputSchema: xySchema(),
		Handler:     s.columnChart,
	})
	s.register(Tool{
		Name:        "generate_bar_chart",
		ChartType:   "bar",
		Description: "Generate a horizontal bar chart from tabular data.",
		Required:    []string{"data", "x_field", "y_field"},
		InputSchema: xySchema(),
		Handler:     s.barChart,
	})
	s.register(Tool{
		Name:        "generate_scatter_chart",
		ChartType:   "scatter",
		Description: "Generate a scatter chart; optional size_field scales the dots.",
		Required:    []string{"data", "x_field", "y_field"},
		InputSchema: objectSchema(map[string]any{
			"data":       dataProp(),
			"x_field":    strProp("X axis field name"),
			"y_field":    strProp("Y axis field name"),
			"size_field": strProp("Optional field controlling dot size"),
			"title":      strProp("Chart title"),
		}, styleProps(), "data", "x_field", "y_field"),
		Handler: s.scatterChart,
	})
	s.register(Tool{
		Name:        "generate_histogram_chart",
		ChartType:   "histogram",
		Description: "Generate a histogram from a list of numeric samples.",
		Required:    []string{"data"},
		InputSchema: objectSchema(map[string]any{
			"data":  prop("array", "Numeric samples, or a JSON-encoded array of numbers"),
			"bins":  prop("integer", "Number of bins (default 30)"),
			"title": strProp("Chart title"),
		}, styleProps(), "data"),
		Handler: s.histogramChart,
	})
	s.register(Tool{
		Name:        "generate_dual_axes_chart",
		ChartType:   "dual_axes",
		Description: "Generate a chart with two Y axes sharing one X axis.",
		Required:    []string{"data", "x_field", "y1_field", "y2_field"},
		InputSchema: objectSchema(map[string]any{
			"data":     dataProp(),
			"x_field":  strProp("X axis field name"),
			"y1_field": strProp("Primary Y axis field name"),
			"y2_field": strProp("Secondary Y axis field name"),
			"title":    strProp("Chart title"),
			"color1":   strProp("Hex color for the primary series"),
			"color2":   strProp("Hex color for the secondary series"),
		}, styleProps(), "data", "x_field", "y1_field", "y2_field"),
		Handler: s.dualAxesChart,
	})
	s.register(Tool{
		Name:        "generate_pie_chart",
		ChartType:   "pie",
		Description: "Generate a donut-style pie chart from labeled values.",
		Required:    []string{"data", "label_field", "value_field"},
		InputSchema: objectSchema(map[string]any{
			"data":        dataProp(),
			"label_field": strProp("Field holding slice labels"),
			"value_field": strProp("Field holding slice values"),
			"title":       strProp("Chart title"),
		}, styleProps(), "data", "label_field", "value_field"),
		Handler: s.pieChart,
	})
	s.register(Tool{
		Name:        "generate_radar_chart",
		ChartType:   "radar",
		Description: "Generate a radar chart comparing one or more value fields across categories.",
		Required:    []string{"data", "category_field", "value_fields"},
		InputSchema: objectSchema(map[string]any{
			"data":           dataProp(),
			"category_field": strProp("Field holding the category axis labels"),
			"value_fields": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Value field names, one polygon each",
			},
			"title": strProp("Chart title"),
		}, styleProps(), "data", "category_field", "value_fields"),
		Handler: s.radarChart,
	})
	s.register(Tool{
		Name:        "generate_treemap_chart",
		ChartType:   "treemap",
		Description: "Generate a treemap of labeled values.",
		Required:    []string{"data", "path_field", "value_field"},
		InputSchema: objectSchema(map[string]any{
			"data":        dataProp(),
			"path_field":  strProp("Field holding tile labels"),
			"value_field": strProp("Field holding tile sizes"),
			"title":       strProp("Chart title"),
		}, nil, "data", "path_field", "value_field"),
		Handler: s.treemapChart,
	})
	s.register(Tool{
		Name:        "generate_word_cloud_chart",
		ChartType:   "wordcloud",
		Description: "Generate a word cloud from word/frequency pairs.",
		Required:    []string{"words"},
		InputSchema: objectSchema(map[string]any{
			"words": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": strProp("The word"),
						"freq": prop("number", "Relative frequency"),
					},
					"required": []string{"word", "freq"},
				},
				"description": "Word frequency entries, or a JSON-encoded array of them",
			},
			"title": strProp("Chart title"),
		}, nil, "words"),
		Handler: s.wordCloudChart,
	})
	s.register(Tool{
		Name:        "generate_network_graph",
		ChartType:   "network",
		Description: "Generate a network graph from nodes and edges.",
		Required:    []string{"nodes", "edges"},
		InputSchema: objectSchema(map[string]any{
			"nodes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":    strProp("Node identifier"),
						"label": strProp("Display label (defaults to id)"),
					},
					"required": []string{"id"},
				},
				"description": "Graph nodes",
			},
			"edges": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"source": strProp("Source node id"),
						"target": strProp("Target node id"),
					},
					"required": []string{"source", "target"},
				},
				"description": "Graph edges",
			},
			"title": strProp("Chart title"),
		}, nil, "nodes", "edges"),
		Handler: s.networkGraph,
	})
	s.register(Tool{
		Name:        "generate_mind_map",
		ChartType:   "mindmap",
		Description: "Generate a mind map of a central topic and its branches.",
		Required:    []string{"topic", "branches"},
		InputSchema: objectSchema(map[string]any{
			"topic": strProp("Central topic"),
			"branches": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Branch topics",
			},
			"title": strProp("Chart title"),
		}, nil, "topic", "branches"),
		Handler: s.mindMap,
	})
	s.register(Tool{
		Name:        "generate_fishbone_diagram",
		ChartType:   "fishbone",
		Description: "Generate a fishbone (cause and effect) diagram.",
		Required:    []string{"problem", "causes"},
		InputSchema: objectSchema(map[string]any{
			"problem": strProp("The main problem statement"),
			"causes": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Contributing causes (up to six are drawn)",
			},
			"title": strProp("Chart title"),
		}, nil, "problem", "causes"),
		Handler: s.fishboneDiagram,
	})
	s.register(Tool{
		Name:        "generate_flow_diagram",
		ChartType:   "flow",
		Description: "Generate a top-down flow diagram from ordered steps.",
		Required:    []string{"steps"},
		InputSchema: objectSchema(map[string]any{
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":   strProp("Step identifier"),
						"text": strProp("Step label"),
						"next": strProp("Identifier of the following step"),
					},
				},
				"description": "Ordered flow steps",
			},
			"title": strProp("Chart title"),
		}, nil, "steps"),
		Handler: s.flowDiagram,
	})
}

// xySchema is the shared schema for the plain x/y tabular charts.
func xySchema() map[string]any {
	return objectSchema(map[string]any{
		"data":    dataProp(),
		"x_field": strProp("X axis field name"),
		"y_field": strProp("Y axis field name"),
		"title":   strProp("Chart title"),
	}, styleProps(), "data", "x_field", "y_field")
}

func objectSchema(props map[string]any, extra map[string]any, required ...string) map[string]any {
	for k, v := range extra {
		props[k] = v
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// styleProps are the palette hints shared by the series charts.
func styleProps() map[string]any {
	return map[string]any{
		"color":        strProp("Explicit hex color, overrides the palette"),
		"palette":      strProp("Palette name: " + strings.Join(paletteNames(), ", ")),
		"data_context": strProp("Semantic hint biasing palette choice, e.g. temperature, sales, progress"),
	}
}

func prop(typ, desc string) map[string]any {
	return map[string]any{"type": typ, "description": desc}
}

func strProp(desc string) map[string]any { return prop("string", desc) }

func dataProp() map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "object"},
		"description": "Records to plot, or a JSON-encoded array of records",
	}
}
