package chartservice

import (
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/chartsmith-labs/chartsmith/app/modules/theme"
)

func (s *Service) columnChart(ctx context.Context, args map[string]any) Envelope {
	data := dataset(args)
	if data == nil {
		return Fail(fmt.Errorf("data must be a list of records"))
	}
	xField := str(args, "x_field")
	yField := str(args, "y_field")
	title := strOr(args, "title", "Column Chart")

	pal := theme.Resolve("column", str(args, "palette"), str(args, "data_context"))
	fill := pal.Primary.Drawing()
	if c := str(args, "color"); c != "" {
		fill = theme.Color(c).Drawing()
	}

	ys, err := data.Floats(yField)
	if err != nil {
		return Fail(err)
	}
	labels := data.Strings(xField)

	bars := make([]chart.Value, len(labels))
	for i := range labels {
		bars[i] = chart.Value{
			Label: labels[i],
			Value: ys[i],
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: fill,
			},
		}
	}

	graph := chart.BarChart{
		Title:      title,
		TitleStyle: titleStyle(),
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   60,
		Background: chart.Style{
			FillColor: theme.White.Drawing(),
			Padding:   chart.Box{Top: 60, Left: 40, Right: 40, Bottom: 40},
		},
		Canvas: chart.Style{FillColor: theme.White.Drawing()},
		XAxis:  axisStyle(),
		YAxis: chart.YAxis{
			Style:          axisStyle(),
			GridMajorStyle: gridStyle(),
		},
		Bars: bars,
	}

	png, err := renderPNG(graph)
	return s.finish("column", "Column chart generated: "+title, png, err)
}
