package chartservice

import (
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/chartsmith-labs/chartsmith/app/modules/theme"
)

func (s *Service) areaChart(ctx context.Context, args map[string]any) Envelope {
	data := dataset(args)
	if data == nil {
		return Fail(fmt.Errorf("data must be a list of records"))
	}
	xField := str(args, "x_field")
	yField := str(args, "y_field")
	title := strOr(args, "title", "Area Chart")

	pal := theme.Resolve("area", str(args, "palette"), str(args, "data_context"))
	fill := pal.Primary.Drawing()
	if c := str(args, "color"); c != "" {
		fill = theme.Color(c).Drawing()
	}

	ys, err := data.Floats(yField)
	if err != nil {
		return Fail(err)
	}
	xs, formatter := xValues(data, xField)

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
			Style: chart.Style{
				StrokeColor: fill,
				StrokeWidth: 2,
				FillColor:   fill.WithAlpha(110),
			},
		},
	}

	png, err := renderPNG(graph)
	return s.finish("area", "Area chart generated: "+title, png, err)
}
