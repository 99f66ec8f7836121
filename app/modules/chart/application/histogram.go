package chartservice

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/chartsmith-labs/chartsmith/app/modules/theme"
)

const defaultBins = 30

func (s *Service) histogramChart(ctx context.Context, args map[string]any) Envelope {
	values, err := samples(args)
	if err != nil {
		return Fail(err)
	}
	bins := intVal(args, "bins", defaultBins)
	if bins < 1 {
		bins = defaultBins
	}
	if bins > len(values) {
		bins = len(values)
	}
	title := strOr(args, "title", "Histogram")

	pal := theme.Resolve("histogram", str(args, "palette"), str(args, "data_context"))
	fill := pal.Primary.Drawing()
	if c := str(args, "color"); c != "" {
		fill = theme.Color(c).Drawing()
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		hi = lo + 1
	}

	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	// stat.Histogram bins half-open intervals; nudge the last divider so
	// the maximum sample lands in the final bin.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)

	bars := make([]chart.Value, bins)
	for i := 0; i < bins; i++ {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%.4g", (dividers[i]+dividers[i+1])/2),
			Value: counts[i],
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: theme.White.Drawing(),
				StrokeWidth: 1,
			},
		}
	}

	graph := chart.BarChart{
		Title:      title,
		TitleStyle: titleStyle(),
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   (chartWidth - 200) / bins,
		BarSpacing: 2,
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
	return s.finish("histogram", "Histogram generated: "+title, png, err)
}
