package chartservice

import (
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/chartsmith-labs/chartsmith/app/modules/theme"
)

func (s *Service) scatterChart(ctx context.Context, args map[string]any) Envelope {
	data := dataset(args)
	if data == nil {
		return Fail(fmt.Errorf("data must be a list of records"))
	}
	xField := str(args, "x_field")
	yField := str(args, "y_field")
	title := strOr(args, "title", "Scatter Chart")

	pal := theme.Resolve("scatter", str(args, "palette"), str(args, "data_context"))
	dot := pal.Primary.Drawing()
	if c := str(args, "color"); c != "" {
		dot = theme.Color(c).Drawing()
	}

	ys, err := data.Floats(yField)
	if err != nil {
		return Fail(err)
	}
	xs, formatter := xValues(data, xField)

	style := chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    8,
		DotColor:    dot,
	}
	if sizeField := str(args, "size_field"); sizeField != "" {
		sizes, err := data.Floats(sizeField)
		if err != nil {
			return Fail(err)
		}
		maxSize := 0.0
		for _, v := range sizes {
			if v > maxSize {
				maxSize = v
			}
		}
		if maxSize > 0 {
			style.DotWidthProvider = func(_, _ chart.Range, index int, _, _ float64) float64 {
				return 4 + 20*sizes[index]/maxSize
			}
		}
	}

	graph := baseChart(title)
	graph.XAxis.Name = xField
	graph.YAxis.Name = yField
	if formatter != nil {
		graph.XAxis.ValueFormatter = formatter
	}
	graph.Series = []chart.Series{
		chart.ContinuousSeries{
			Name:    yField,
			XValues: xs,
			YValues: ys,
			Style:   style,
		},
	}

	png, err := renderPNG(graph)
	return s.finish("scatter", "Scatter chart generated: "+title, png, err)
}
