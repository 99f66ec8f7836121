package chartservice

import (
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/chartsmith-labs/chartsmith/app/modules/theme"
)

func (s *Service) dualAxesChart(ctx context.Context, args map[string]any) Envelope {
	data := dataset(args)
	if data == nil {
		return Fail(fmt.Errorf("data must be a list of records"))
	}
	xField := str(args, "x_field")
	y1Field := str(args, "y1_field")
	y2Field := str(args, "y2_field")
	title := strOr(args, "title", "Dual Axes Chart")

	pal := theme.Resolve("dual_axes", str(args, "palette"), str(args, "data_context"))
	color1 := pal.Primary.Drawing()
	color2 := pal.Secondary.Drawing()
	if c := str(args, "color1"); c != "" {
		color1 = theme.Color(c).Drawing()
	}
	if c := str(args, "color2"); c != "" {
		color2 = theme.Color(c).Drawing()
	}

	y1, err := data.Floats(y1Field)
	if err != nil {
		return Fail(err)
	}
	y2, err := data.Floats(y2Field)
	if err != nil {
		return Fail(err)
	}
	xs, formatter := xValues(data, xField)

	graph := baseChart(title)
	graph.XAxis.Name = xField
	graph.YAxis.Name = y1Field
	graph.YAxisSecondary = chart.YAxis{
		Name:  y2Field,
		Style: axisStyle(),
	}
	if formatter != nil {
		graph.XAxis.ValueFormatter = formatter
	}
	graph.Series = []chart.Series{
		chart.ContinuousSeries{
			Name:    y1Field,
			XValues: xs,
			YValues: y1,
			Style: chart.Style{
				StrokeColor: color1,
				StrokeWidth: 3,
				FillColor:   color1.WithAlpha(76),
			},
		},
		chart.ContinuousSeries{
			Name:    y2Field,
			YAxis:   chart.YAxisSecondary,
			XValues: xs,
			YValues: y2,
			Style: chart.Style{
				StrokeColor: color2,
				StrokeWidth: 3,
			},
		},
	}

	png, err := renderPNG(graph)
	return s.finish("dual_axes", "Dual axes chart generated: "+title, png, err)
}
