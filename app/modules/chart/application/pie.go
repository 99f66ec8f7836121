package chartservice

import (
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/chartsmith-labs/chartsmith/app/modules/theme"
)

func (s *Service) pieChart(ctx context.Context, args map[string]any) Envelope {
	data := dataset(args)
	if data == nil {
		return Fail(fmt.Errorf("data must be a list of records"))
	}
	labelField := str(args, "label_field")
	valueField := str(args, "value_field")
	title := strOr(args, "title", "Pie Chart")

	pal := theme.Resolve("pie", str(args, "palette"), str(args, "data_context"))
	colors := theme.PaletteColors(pal.Name, data.Len())

	values, err := data.Floats(valueField)
	if err != nil {
		return Fail(err)
	}
	labels := data.Strings(labelField)

	slices := make([]chart.Value, len(labels))
	for i := range labels {
		slices[i] = chart.Value{
			Label: labels[i],
			Value: values[i],
			Style: chart.Style{
				FillColor:   colors[i].Drawing(),
				StrokeColor: theme.White.Drawing(),
				StrokeWidth: 3,
				FontColor:   theme.Dark.Drawing(),
				FontSize:    14,
			},
		}
	}

	// Donut rather than a solid pie, matching the house style.
	graph := chart.DonutChart{
		Title:      title,
		TitleStyle: titleStyle(),
		Width:      chartHeight,
		Height:     chartHeight,
		Background: chart.Style{
			FillColor: theme.White.Drawing(),
			Padding:   chart.Box{Top: 60, Left: 40, Right: 40, Bottom: 40},
		},
		Canvas: chart.Style{FillColor: theme.White.Drawing()},
		Values: slices,
	}

	png, err := renderPNG(graph)
	return s.finish("pie", "Pie chart generated: "+title, png, err)
}
