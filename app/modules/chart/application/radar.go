package chartservice

import (
	"context"
	"fmt"
	"math"

	"github.com/chartsmith-labs/chartsmith/app/modules/theme"
)

func (s *Service) radarChart(ctx context.Context, args map[string]any) Envelope {
	data := dataset(args)
	if data == nil {
		return Fail(fmt.Errorf("data must be a list of records"))
	}
	categoryField := str(args, "category_field")
	valueFields := strSlice(args, "value_fields")
	if len(valueFields) == 0 {
		return Fail(fmt.Errorf("value_fields must name at least one field"))
	}
	title := strOr(args, "title", "Radar Chart")

	pal := theme.Resolve("radar", str(args, "palette"), str(args, "data_context"))

	categories := data.Strings(categoryField)
	if len(categories) < 3 {
		return Fail(fmt.Errorf("radar charts need at least 3 categories, got %d", len(categories)))
	}

	series := make([][]float64, len(valueFields))
	maxVal := 0.0
	for i, field := range valueFields {
		vals, err := data.Floats(field)
		if err != nil {
			return Fail(err)
		}
		series[i] = vals
		for _, v := range vals {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if maxVal <= 0 {
		return Fail(fmt.Errorf("radar values must include a positive maximum"))
	}

	c, err := newCanvas(chartWidth, chartHeight)
	if err != nil {
		return Fail(err)
	}
	c.title(title)

	cx, cy := chartWidth/2, chartHeight/2+30
	radius := 330.0
	n := len(categories)
	dark := theme.Dark.Drawing()
	lightGray := theme.LightGray.Drawing()

	angle := func(i int) float64 {
		return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	}
	vertex := func(i int, dist float64) (int, int) {
		a := angle(i)
		return cx + int(dist*math.Cos(a)), cy + int(dist*math.Sin(a))
	}

	// Grid rings and spokes.
	for ring := 1; ring <= 4; ring++ {
		c.ring(cx, cy, radius*float64(ring)/4, lightGray, 1)
	}
	for i := 0; i < n; i++ {
		x, y := vertex(i, radius)
		c.line(cx, cy, x, y, dark, 2)
		lx, ly := vertex(i, radius+36)
		c.textCentered(categories[i], lx, ly, dark, 12)
	}

	// One polygon per value field.
	for si, vals := range series {
		color := pal.Gradient[si%len(pal.Gradient)]
		pts := make([][2]int, n)
		for i := 0; i < n; i++ {
			v := 0.0
			if i < len(vals) {
				v = vals[i]
			}
			x, y := vertex(i, radius*v/maxVal)
			pts[i] = [2]int{x, y}
		}
		c.polygon(pts, color.WithAlpha(100), color.Drawing(), 3)
	}

	// Legend top-left.
	for si, field := range valueFields {
		color := pal.Gradient[si%len(pal.Gradient)]
		y := 100 + si*28
		c.fillRect(60, y-8, 16, 16, color.Drawing(), dark, 1)
		c.text(field, 86, y+6, dark, 13)
	}

	png, err := c.bytes()
	return s.finish("radar", "Radar chart generated: "+title, png, err)
}
