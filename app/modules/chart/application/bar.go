package chartservice

import (
	"context"
	"fmt"
	"strconv"

	"github.com/chartsmith-labs/chartsmith/app/modules/theme"
)

// barChart renders horizontal bars. The rendering backend only ships a
// vertical bar chart, so this one is drawn directly on the raster
// canvas.
func (s *Service) barChart(ctx context.Context, args map[string]any) Envelope {
	data := dataset(args)
	if data == nil {
		return Fail(fmt.Errorf("data must be a list of records"))
	}
	xField := str(args, "x_field")
	yField := str(args, "y_field")
	title := strOr(args, "title", "Bar Chart")

	pal := theme.Resolve("bar", str(args, "palette"), str(args, "data_context"))
	fill := pal.Primary.Drawing()
	if c := str(args, "color"); c != "" {
		fill = theme.Color(c).Drawing()
	}

	values, err := data.Floats(yField)
	if err != nil {
		return Fail(err)
	}
	labels := data.Strings(xField)

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal <= 0 {
		return Fail(fmt.Errorf("field '%s' has no positive values to plot", yField))
	}

	c, err := newCanvas(chartWidth, chartHeight)
	if err != nil {
		return Fail(err)
	}
	c.title(title)

	labelWidth := 0
	for _, l := range labels {
		if w := c.measure(l, 13).Width(); w > labelWidth {
			labelWidth = w
		}
	}

	left := 80 + labelWidth
	top, bottom := 110, 60
	plotWidth := chartWidth - left - 140
	rowHeight := (chartHeight - top - bottom) / len(labels)
	barHeight := rowHeight * 6 / 10
	if barHeight < 2 {
		barHeight = 2
	}

	dark := theme.Dark.Drawing()
	for i := range labels {
		y := top + i*rowHeight + rowHeight/2
		box := c.measure(labels[i], 13)
		c.text(labels[i], left-20-box.Width(), y+box.Height()/2, dark, 13)

		barWidth := int(float64(plotWidth) * values[i] / maxVal)
		if barWidth < 0 {
			barWidth = 0
		}
		c.fillRect(left, y-barHeight/2, barWidth, barHeight, fill, fill, 1)

		value := strconv.FormatFloat(values[i], 'f', -1, 64)
		c.text(value, left+barWidth+12, y+c.measure(value, 12).Height()/2, dark, 12)
	}
	c.line(left-8, top-10, left-8, chartHeight-bottom+10, dark, 2)

	png, err := c.bytes()
	return s.finish("bar", "Bar chart generated: "+title, png, err)
}
